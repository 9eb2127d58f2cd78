package utils

/**
 * env.go - env vars helpers
 */

import (
	"os"
	"regexp"
)

var envPlaceholder = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?::-([^}]*))?\}`)

/**
 * SubstituteEnvVars replaces placeholders ${NAME} with env var value.
 * ${NAME:-default} falls back to default when NAME is unset or empty.
 */
func SubstituteEnvVars(data string) string {
	return substitute(data, os.Getenv)
}

func substitute(data string, getenv func(string) string) string {
	return envPlaceholder.ReplaceAllStringFunc(data, func(v string) string {
		m := envPlaceholder.FindStringSubmatch(v)
		if value := getenv(m[1]); value != "" {
			return value
		}
		return m[2]
	})
}
