package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sortnet.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultConfig_Valid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
scheme = "batcher_odd_even_merge"
format = "json"
max_exhaustive = 12
workers = 2
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Config{Scheme: "batcher_odd_even_merge", Format: "json", MaxExhaustive: 12, Workers: 2}, cfg)
}

func TestLoadConfig_PartialKeepsDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `workers = 8`))
	require.NoError(t, err)
	want := DefaultConfig()
	want.Workers = 8
	assert.Equal(t, want, cfg)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown scheme", `scheme = "quicksort"`},
		{"unknown format", `format = "png"`},
		{"exhaustive too large", `max_exhaustive = 30`},
		{"zero workers", `workers = 0`},
		{"unknown key", `colour = "red"`},
		{"bad syntax", `scheme = `},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			require.ErrorIs(t, err, ErrConfig)
		})
	}

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, ErrConfig)
}
