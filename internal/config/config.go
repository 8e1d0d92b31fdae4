// Package config holds runtime configuration: defaults, optional TOML file
// overlay, width-list parsing, and validation. All defaults match the legacy
// gallery script for parity.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [Default], optionally
// overlaid by [LoadFile], then mutated by the CLI layer before being passed
// (by pointer) to packages that need it.
type Config struct {
	// Paths.
	InputDir  string `toml:"input"`
	OutputDir string `toml:"output"`

	// Variant widths (px), ascending and deduplicated. Populated from the
	// --widths flag or the config file via [ParseWidths].
	Widths []int `toml:"widths"`

	// Encoder quality knobs.
	JpegQuality int `toml:"jpeg_quality"` // sips formatOptions, 0-100. Default: 72.
	WebpQuality int `toml:"webp_quality"` // cwebp -q, 0-100. Default: 75.
	AvifQuality int `toml:"avif_quality"` // avifenc -q, 0-100. Default: 45.
	AvifSpeed   int `toml:"avif_speed"`   // avifenc --speed, 0-10. Default: 6.

	// Behavior flags.
	Overwrite bool `toml:"overwrite"` // Regenerate even if outputs are up-to-date.
	DryRun    bool `toml:"-"`

	// Display and logging.
	Verbose   bool      `toml:"-"`
	ColorMode ColorMode `toml:"color"`
	LogFile   string    `toml:"log_file"` // Optional log file path.
}

// DefaultWidths is the raw form of the default width list, shared with the
// CLI flag definition so help text and parsing stay in sync.
const DefaultWidths = "320,640,960,1600"

// Default returns a Config with all defaults matching the legacy
// optimize-gallery-images script.
func Default() Config {
	return Config{
		InputDir:    "images/inner_images",
		OutputDir:   "images/inner_images_opt",
		Widths:      []int{320, 640, 960, 1600},
		JpegQuality: 72,
		WebpQuality: 75,
		AvifQuality: 45,
		AvifSpeed:   6,
		ColorMode:   ColorAuto,
	}
}

// ParseWidths parses a comma-separated width list. Empty segments are
// ignored, non-positive values are filtered out, and the result is
// deduplicated and sorted ascending. An unparsable segment or an empty
// result is an error that echoes the raw input.
func ParseWidths(raw string) ([]int, error) {
	seen := make(map[int]bool)
	var widths []int
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		w, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid widths value %q", raw)
		}
		if w <= 0 || seen[w] {
			continue
		}
		seen[w] = true
		widths = append(widths, w)
	}
	if len(widths) == 0 {
		return nil, fmt.Errorf("no valid widths in %q", raw)
	}
	sort.Ints(widths)
	return widths, nil
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks widths and the numeric quality/speed ranges, and requires
// non-empty input/output paths.
func (c *Config) Validate() error {
	if c.InputDir == "" || c.OutputDir == "" {
		return errors.New("input and output directories must not be empty")
	}
	if len(c.Widths) == 0 {
		return errors.New("no target widths configured")
	}
	for _, w := range c.Widths {
		if w <= 0 {
			return fmt.Errorf("invalid target width %d (must be positive)", w)
		}
	}
	if err := checkRange("jpeg quality", c.JpegQuality, 0, 100); err != nil {
		return err
	}
	if err := checkRange("webp quality", c.WebpQuality, 0, 100); err != nil {
		return err
	}
	if err := checkRange("avif quality", c.AvifQuality, 0, 100); err != nil {
		return err
	}
	if err := checkRange("avif speed", c.AvifSpeed, 0, 10); err != nil {
		return err
	}
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}
	return nil
}

func checkRange(name string, v, lo, hi int) error {
	if v < lo || v > hi {
		return fmt.Errorf("%s must be between %d and %d (got %d)", name, lo, hi, v)
	}
	return nil
}

// ValidatePaths ensures the resolved output directory is not inside (or equal
// to) the resolved input directory. This prevents the batch from discovering
// its own output files on a re-run. Both arguments must be absolute,
// symlink-resolved paths.
func (c *Config) ValidatePaths(inputAbs, outputAbs string) error {
	sep := string(filepath.Separator)
	if outputAbs == inputAbs || strings.HasPrefix(outputAbs+sep, inputAbs+sep) {
		return errors.New("output directory must not be inside input directory")
	}
	return nil
}
