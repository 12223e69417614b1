package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "tokyo-night", cfg.TUI.Theme)
	assert.Equal(t, 55, cfg.TUI.SplitRatio)
	assert.Equal(t, 50, cfg.Transcript.ChunkSize)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
tui:
  theme: gruvbox
files:
  exclude:
    - "**/*_test.go"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "gruvbox", cfg.TUI.Theme)
	assert.Equal(t, 50, cfg.Transcript.ChunkSize, "unset chunk size falls back to default")
	assert.Equal(t, []string{"**/*_test.go"}, cfg.Files.Exclude)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tui: [broken"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "unknown theme",
			mutate:  func(c *Config) { c.TUI.Theme = "solarized" },
			wantErr: "unknown theme",
		},
		{
			name:    "split ratio too small",
			mutate:  func(c *Config) { c.TUI.SplitRatio = 10 },
			wantErr: "between 20 and 80",
		},
		{
			name:    "chunk size zero after defaults bypassed",
			mutate:  func(c *Config) { c.Transcript.ChunkSize = -5 },
			wantErr: "at least 1",
		},
		{
			name:    "bad include glob",
			mutate:  func(c *Config) { c.Files.Include = []string{"[unclosed"} },
			wantErr: "invalid glob pattern",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
