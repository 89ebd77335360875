package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		name     string
		args     []string
		expected *Config
	}{
		{
			name: "all flags set",
			args: []string{"cmd", "-d", "postgres://x/y", "-s", "secret", "-t", "15", "-w", "4"},
			expected: &Config{
				DatabaseDSN:           "postgres://x/y",
				SecretKey:             "secret",
				TokenValidityDuration: 15 * time.Minute,
				BCryptCost:            4,
			},
		},
		{
			name: "unknown flags ignored",
			args: []string{"cmd", "-d", "postgres://x/y", "-unknown", "whatever"},
			expected: &Config{
				DatabaseDSN:           "postgres://x/y",
				TokenValidityDuration: 0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Equal(t, tt.expected, config)
		})
	}
}
