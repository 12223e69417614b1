// Package config handles configuration loading and validation for traceview.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hay-kot/traceview/internal/core/styles"
)

// Config holds the application configuration.
type Config struct {
	TUI        TUIConfig        `yaml:"tui"`
	Transcript TranscriptConfig `yaml:"transcript"`
	Files      FilesConfig      `yaml:"files"`
}

// TUIConfig holds appearance and layout settings.
type TUIConfig struct {
	Theme string `yaml:"theme"`
	// SplitRatio is the share of the content width given to the code pane,
	// in percent. The file tree takes a fixed column; the transcript gets
	// the remainder.
	SplitRatio int `yaml:"split_ratio"`
}

// TranscriptConfig controls chunked materialization of the message list.
type TranscriptConfig struct {
	// ChunkSize bounds how many messages are rendered per near-edge
	// trigger.
	ChunkSize int `yaml:"chunk_size"`
}

// FilesConfig filters which bundle files appear in the tree.
type FilesConfig struct {
	Include []string `yaml:"include"` // doublestar globs; empty = all
	Exclude []string `yaml:"exclude"` // doublestar globs
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		TUI: TUIConfig{
			Theme:      styles.DefaultTheme,
			SplitRatio: 55,
		},
		Transcript: TranscriptConfig{
			ChunkSize: 50,
		},
	}
}

// Load reads the config file at configPath, falling back to defaults when
// the file does not exist.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults fills zero values left by a partial config file.
func (c *Config) applyDefaults() {
	if c.TUI.Theme == "" {
		c.TUI.Theme = styles.DefaultTheme
	}
	if c.TUI.SplitRatio == 0 {
		c.TUI.SplitRatio = 55
	}
	if c.Transcript.ChunkSize == 0 {
		c.Transcript.ChunkSize = 50
	}
}
