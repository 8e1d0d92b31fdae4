package planner

import "sort"

// TargetWidths derives the output widths for an image of the given native
// width. Every requested width strictly smaller than nativeWidth is kept,
// plus the native width itself when it does not exceed the largest requested
// width, otherwise the largest requested width. The result is deduplicated,
// ascending, and never empty: outputs are never upscaled beyond the native
// resolution and never wider than the largest requested width.
//
// requested must be non-empty, positive, and ascending (the config layer
// guarantees this).
func TargetWidths(nativeWidth int, requested []int) []int {
	maxRequested := requested[len(requested)-1]

	var widths []int
	for _, w := range requested {
		if w < nativeWidth {
			widths = append(widths, w)
		}
	}

	top := nativeWidth
	if nativeWidth > maxRequested {
		top = maxRequested
	}
	if !contains(widths, top) {
		widths = append(widths, top)
	}

	sort.Ints(widths)
	return widths
}

func contains(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
