package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("RATCHET_TEST_HOST", "db.internal")
	t.Setenv("RATCHET_TEST_PORT", "5433")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single variable",
			input:    "host: {{.RATCHET_TEST_HOST}}",
			expected: "host: db.internal",
		},
		{
			name:     "multiple variables",
			input:    "dsn: {{.RATCHET_TEST_HOST}}:{{.RATCHET_TEST_PORT}}",
			expected: "dsn: db.internal:5433",
		},
		{
			name:     "missing variable expands to empty",
			input:    "token: {{.RATCHET_TEST_DOES_NOT_EXIST}}",
			expected: "token: ",
		},
		{
			name:     "no template syntax passes through",
			input:    "binary: claude\nmax_line_bytes: 10485760",
			expected: "binary: claude\nmax_line_bytes: 10485760",
		},
		{
			name:     "literal dollar signs preserved",
			input:    `pattern: 'rm\s+-rf\s+\$HOME'`,
			expected: `pattern: 'rm\s+-rf\s+\$HOME'`,
		},
		{
			name:     "shell variables in setup commands preserved",
			input:    "setup:\n  - export PATH=$PATH:/usr/local/bin",
			expected: "setup:\n  - export PATH=$PATH:/usr/local/bin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := ExpandEnv([]byte(tt.input))
			assert.Equal(t, tt.expected, string(out))
		})
	}
}

func TestExpandEnv_MalformedTemplatePassesThrough(t *testing.T) {
	// Unclosed action cannot parse as a template; the original bytes come
	// back so the YAML parser can produce its own error.
	input := "value: {{.UNCLOSED"
	out := ExpandEnv([]byte(input))
	assert.Equal(t, input, string(out))
}
