package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSubstitute(t *testing.T) {
	env := map[string]string{
		"MT_USER": "admin",
		"EMPTY":   "",
	}
	getenv := func(k string) string { return env[k] }

	in := `username = "${MT_USER}"
password = "${MT_PASS:-secret}"
host = "${EMPTY:-http://10.0.0.1}"
port = "${MISSING}"
literal = "$MT_USER"`

	expected := `username = "admin"
password = "secret"
host = "http://10.0.0.1"
port = ""
literal = "$MT_USER"`

	assert.Equal(t, expected, substitute(in, getenv))
}

func TestSubstituteEnvVars(t *testing.T) {
	t.Setenv("IFGRAPH_TEST_VAR", "value")
	assert.Equal(t, "a=value", SubstituteEnvVars("a=${IFGRAPH_TEST_VAR}"))
}

func TestParseDurationOrDefault(t *testing.T) {
	assert.Equal(t, 2*time.Second, ParseDurationOrDefault("2s", time.Minute))
	assert.Equal(t, time.Minute, ParseDurationOrDefault("", time.Minute))
	assert.Equal(t, time.Minute, ParseDurationOrDefault("soon", time.Minute))
}
