package config

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"

	"github.com/hay-kot/traceview/internal/core/styles"
)

// Validate performs structural validation of the configuration.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("tui.theme", c.TUI.Theme, themeExists),
		criterio.Run("tui.split_ratio", c.TUI.SplitRatio, ratioInBounds),
		criterio.Run("transcript.chunk_size", c.Transcript.ChunkSize, chunkSizePositive),
		c.validateGlobs("files.include", c.Files.Include),
		c.validateGlobs("files.exclude", c.Files.Exclude),
	)
}

func themeExists(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(styles.ThemeNames(), ", "))
	}
	return nil
}

func ratioInBounds(ratio int) error {
	if ratio < 20 || ratio > 80 {
		return fmt.Errorf("must be between 20 and 80, got %d", ratio)
	}
	return nil
}

func chunkSizePositive(size int) error {
	if size < 1 {
		return fmt.Errorf("must be at least 1, got %d", size)
	}
	return nil
}

func (c *Config) validateGlobs(field string, patterns []string) error {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return criterio.NewFieldErrors(field, fmt.Errorf("invalid glob pattern %q", p))
		}
	}
	return nil
}
