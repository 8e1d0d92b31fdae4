// Package planner derives the per-image work plan: which target widths to
// generate and which output triples they map to. The decisions here are pure;
// the pipeline package decides what actually runs based on freshness.
package planner

import (
	"github.com/lumafold/srcsetgen/internal/naming"
)

// ImagePlan describes the variants one source image should have.
type ImagePlan struct {
	Source      string
	Stem        string
	NativeWidth int
	Triples     []naming.Triple
}

// BuildPlan derives the target widths for a source image and maps each onto
// its output triple. requested must be the validated config width set
// (distinct, positive, ascending).
func BuildPlan(outputDir, source string, nativeWidth int, requested []int) *ImagePlan {
	stem := naming.Stem(source)
	widths := TargetWidths(nativeWidth, requested)

	plan := &ImagePlan{
		Source:      source,
		Stem:        stem,
		NativeWidth: nativeWidth,
		Triples:     make([]naming.Triple, 0, len(widths)),
	}
	for _, w := range widths {
		plan.Triples = append(plan.Triples, naming.NewTriple(outputDir, stem, w))
	}
	return plan
}
