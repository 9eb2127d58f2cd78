package utils

/**
 * duration.go - duration parse helpers
 */

import (
	"time"
)

/**
 * ParseDurationOrDefault parses s, returning def if s is empty or malformed
 */
func ParseDurationOrDefault(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}
