// Package probe queries an image's native pixel width via sips. The width is
// queried lazily per image and never cached across runs; filesystem mtimes
// are the only cache signal the batch uses.
package probe

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// PixelWidth runs `sips -g pixelWidth` against path and returns the parsed
// native width.
func PixelWidth(ctx context.Context, sips, path string) (int, error) {
	cmd := exec.CommandContext(ctx, sips, "-g", "pixelWidth", path)

	out, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("sips -g pixelWidth %q: %w", path, err)
	}
	return ParsePixelWidth(out, path)
}

// ParsePixelWidth extracts the pixelWidth value from sips output, which looks
// like:
//
//	/path/to/image.jpg
//	  pixelWidth: 2000
//
// Exported for testing without a real sips binary.
func ParsePixelWidth(out []byte, path string) (int, error) {
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		rest, found := strings.CutPrefix(line, "pixelWidth:")
		if !found {
			continue
		}
		w, err := strconv.Atoi(strings.TrimSpace(rest))
		if err != nil {
			return 0, fmt.Errorf("parse pixelWidth for %q: %w", path, err)
		}
		if w <= 0 {
			return 0, fmt.Errorf("non-positive pixelWidth %d for %q", w, path)
		}
		return w, nil
	}
	return 0, fmt.Errorf("no pixelWidth in sips output for %q", path)
}
