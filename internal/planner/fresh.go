package planner

import "os"

// Fresh reports whether every output exists and none is older than the
// reference file, by modification time. A missing or unreadable reference
// counts as stale, which forces regeneration rather than skipping work.
//
// The pipeline applies this at two levels: the whole triple against the
// source image, and each derived format against the resized JPEG it is
// encoded from.
func Fresh(reference string, outputs ...string) bool {
	ref, err := os.Stat(reference)
	if err != nil {
		return false
	}
	for _, out := range outputs {
		fi, err := os.Stat(out)
		if err != nil {
			return false
		}
		if fi.ModTime().Before(ref.ModTime()) {
			return false
		}
	}
	return true
}
