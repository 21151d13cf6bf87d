package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "harness.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "runs: 12\nseed: 99\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	want := DefaultConfig()
	want.Runs = 12
	want.Seed = 99
	assert.Equal(t, want, cfg)
}

func TestLoadConfigAllFields(t *testing.T) {
	path := writeConfig(t, `
runs: 3
data_size: 1024
min_repeat: 1
max_repeat: 300
seed: 7
print_data: false
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Runs:      3,
		DataSize:  1024,
		MinRepeat: 1,
		MaxRepeat: 300,
		Seed:      7,
		PrintData: false,
	}, cfg)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadConfig(writeConfig(t, "runs: [1, 2"))
	require.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "max_repeat: 1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_repeat 1 is below min_repeat 2")
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"zero runs", func(c *Config) { c.Runs = 0 }, "runs must be positive"},
		{"negative size", func(c *Config) { c.DataSize = -1 }, "data_size cannot be negative"},
		{"zero size", func(c *Config) { c.DataSize = 0 }, ""},
		{"zero min repeat", func(c *Config) { c.MinRepeat = 0 }, "min_repeat must be at least 1"},
		{"inverted repeat range", func(c *Config) { c.MinRepeat = 5; c.MaxRepeat = 4 }, "below min_repeat"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
