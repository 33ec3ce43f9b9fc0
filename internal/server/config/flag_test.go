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
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		start       *Config
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"cmd",
			"-d", "db", "-o", "5", "-i", "2", "-l", "30", "-v", "debug", "-m=false", "-w",
		}, expected: &Config{
			DatabaseDSN:     "db",
			MaxOpenConns:    5,
			MaxIdleConns:    2,
			ConnMaxLifetime: 30 * time.Minute,
			MigrateOnStart:  false,
			LogLevel:        "debug",
			Wait:            true,
		}},
		{name: "config flag is ignored", args: []string{"cmd", "-c", "cfg.json", "-d", "db"},
			expected: &Config{DatabaseDSN: "db"}},
		{name: "absent -l keeps sub-minute lifetime", args: []string{"cmd", "-d", "db"},
			start:    &Config{ConnMaxLifetime: 30 * time.Second},
			expected: &Config{DatabaseDSN: "db", ConnMaxLifetime: 30 * time.Second}},
		{name: "explicit -l 0 disables lifetime", args: []string{"cmd", "-l", "0"},
			start:    &Config{ConnMaxLifetime: 5 * time.Minute},
			expected: &Config{}},
		{name: "bad int panics", args: []string{"cmd", "-o", "many"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}
			if tt.start != nil {
				*config = *tt.start
			}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}
