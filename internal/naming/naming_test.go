package naming

import (
	"path/filepath"
	"testing"
)

func TestStem(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"jpg", "/photos/sunset.jpg", "sunset"},
		{"jpeg", "beach.JPEG", "beach"},
		{"png", "gallery/icon.png", "icon"},
		{"dotted name", "trip.2024.summary.png", "trip.2024.summary"},
		{"no extension", "/photos/raw", "raw"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Stem(tt.in); got != tt.want {
				t.Errorf("Stem(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewTriple(t *testing.T) {
	tr := NewTriple("out", "sunset", 640)

	if tr.Width != 640 {
		t.Errorf("Width = %d, want 640", tr.Width)
	}
	if want := filepath.Join("out", "sunset-640.jpg"); tr.JPEG != want {
		t.Errorf("JPEG = %q, want %q", tr.JPEG, want)
	}
	if want := filepath.Join("out", "sunset-640.webp"); tr.WebP != want {
		t.Errorf("WebP = %q, want %q", tr.WebP, want)
	}
	if want := filepath.Join("out", "sunset-640.avif"); tr.AVIF != want {
		t.Errorf("AVIF = %q, want %q", tr.AVIF, want)
	}

	paths := tr.Paths()
	if len(paths) != 3 || paths[0] != tr.JPEG || paths[1] != tr.WebP || paths[2] != tr.AVIF {
		t.Errorf("Paths() = %v, want JPEG, WebP, AVIF order", paths)
	}
}
