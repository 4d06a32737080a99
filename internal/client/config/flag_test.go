package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"cmd", "-a", "http://10.0.0.1:9090", "-i", "5", "-f", "/tmp/s.db"},
			expected: &Config{ServerEndpointAddr: "http://10.0.0.1:9090", RequestTimeout: 5 * time.Second, SessionDBPath: "/tmp/s.db"}},
		{name: "unknown flags are ignored", args: []string{"cmd", "-x", "1", "-a", "http://h"},
			expected: &Config{ServerEndpointAddr: "http://h"}},
		{name: "incorrect timeout", args: []string{"cmd", "-i", "abc"}, expectPanic: true, expected: &Config{}},
	}

	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
