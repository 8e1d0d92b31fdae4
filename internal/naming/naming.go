// Package naming maps a source image and target width onto the output
// artifact triple. Output files follow `<stem>-<width>.<ext>` for ext in
// {jpg, webp, avif}, flat inside the output directory. Files are only ever
// created, never renamed or mutated in place.
package naming

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Stem returns the base name of path without its extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Triple holds the three sibling output paths for one (source, width) pair.
type Triple struct {
	Width int
	JPEG  string
	WebP  string
	AVIF  string
}

// NewTriple computes the output triple for a source stem at one width.
func NewTriple(outputDir, stem string, width int) Triple {
	name := func(ext string) string {
		return filepath.Join(outputDir, fmt.Sprintf("%s-%d.%s", stem, width, ext))
	}
	return Triple{
		Width: width,
		JPEG:  name("jpg"),
		WebP:  name("webp"),
		AVIF:  name("avif"),
	}
}

// Paths returns the triple's files in pipeline order: JPEG first (the other
// two are derived from it), then WebP, then AVIF.
func (t Triple) Paths() []string {
	return []string{t.JPEG, t.WebP, t.AVIF}
}
