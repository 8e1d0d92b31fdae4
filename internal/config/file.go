package config

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"
)

// LoadFile overlays TOML settings from path onto cfg. Unknown keys are
// rejected so typos fail loudly instead of silently keeping a default.
// CLI flags are applied after the overlay, so explicit flags always win.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	cfg.InputDir = NormalizeDirArg(cfg.InputDir)
	cfg.OutputDir = NormalizeDirArg(cfg.OutputDir)
	cfg.Widths = normalizeWidths(cfg.Widths)
	return nil
}

// normalizeWidths sorts and deduplicates a width list. Non-positive values
// are kept so Validate can report them instead of dropping file-provided
// values silently.
func normalizeWidths(widths []int) []int {
	if len(widths) == 0 {
		return widths
	}
	seen := make(map[int]bool, len(widths))
	out := widths[:0]
	for _, w := range widths {
		if seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	sort.Ints(out)
	return out
}
