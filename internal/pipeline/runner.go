// Package pipeline orchestrates image discovery, per-image conversion, and
// batch accounting. Execution is strictly sequential: images one at a time,
// widths within an image one at a time, each tool invocation blocking until
// the child exits. The first tool failure aborts the whole batch.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lumafold/srcsetgen/internal/config"
	"github.com/lumafold/srcsetgen/internal/encode"
	"github.com/lumafold/srcsetgen/internal/logging"
	"github.com/lumafold/srcsetgen/internal/naming"
	"github.com/lumafold/srcsetgen/internal/planner"
	"github.com/lumafold/srcsetgen/internal/probe"
	"github.com/lumafold/srcsetgen/internal/toolchain"
)

// Run is the top-level batch entry point. It discovers source images and
// converts them in order, accumulating stats. It returns an error, with the
// stats gathered so far, on the first failure: unreadable input, no matching
// images, a failed width probe, or a non-zero tool exit. Nothing is retried
// and previously produced files are left on disk.
func Run(ctx context.Context, cfg *config.Config, tc *toolchain.Toolchain, log *logging.Logger) (RunStats, error) {
	var stats RunStats

	sources, err := Discover(cfg.InputDir)
	if err != nil {
		return stats, fmt.Errorf("enumerate input: %w", err)
	}
	if len(sources) == 0 {
		return stats, fmt.Errorf("no images found in %s", cfg.InputDir)
	}
	stats.Images = len(sources)

	logBatchHeader(cfg, log, &stats)

	for i, src := range sources {
		stats.Current = i + 1

		if err := ctx.Err(); err != nil {
			return stats, err
		}

		log.Info("[%d/%d] %s", stats.Current, stats.Images, filepath.Base(src))
		if err := convertImage(ctx, cfg, tc, log, src, &stats); err != nil {
			return stats, fmt.Errorf("%s: %w", filepath.Base(src), err)
		}
	}

	return stats, nil
}

// convertImage processes one source image: probe native width, derive the
// target widths, and per width conditionally run the three encoder steps.
// The resize+JPEG step depends on the source's freshness; the WebP and AVIF
// steps each depend on the freshly produced JPEG, not the original source.
func convertImage(
	ctx context.Context,
	cfg *config.Config,
	tc *toolchain.Toolchain,
	log *logging.Logger,
	src string,
	stats *RunStats,
) error {
	nativeWidth, err := probe.PixelWidth(ctx, tc.Sips, src)
	if err != nil {
		return err
	}

	plan := planner.BuildPlan(cfg.OutputDir, src, nativeWidth, cfg.Widths)
	log.Debug("  native %dpx, target widths %v", nativeWidth, planWidths(plan))

	result := ImageResult{Name: filepath.Base(src), NativeWidth: nativeWidth}

	for _, tr := range plan.Triples {
		if err := ctx.Err(); err != nil {
			return err
		}

		if !cfg.Overwrite && planner.Fresh(src, tr.Paths()...) {
			log.Debug("  %dpx up-to-date", tr.Width)
			result.Skipped++
			continue
		}

		if cfg.DryRun {
			log.Info("  [DRY] would generate %dpx variants", tr.Width)
			result.Generated++
			continue
		}

		if err := generateTriple(ctx, cfg, tc, src, tr); err != nil {
			return err
		}

		stats.TotalOutputBytes += tripleBytes(tr)
		result.Generated++
	}

	stats.Generated += result.Generated
	stats.Skipped += result.Skipped
	stats.Results = append(stats.Results, result)

	if result.Generated > 0 {
		log.Success("  %d width(s) generated, %d skipped", result.Generated, result.Skipped)
	} else {
		log.Info("  up-to-date (%d width(s) skipped)", result.Skipped)
	}
	return nil
}

// generateTriple runs the conditional three-step chain for one width:
// source → JPEG, then JPEG → WebP and JPEG → AVIF.
func generateTriple(ctx context.Context, cfg *config.Config, tc *toolchain.Toolchain, src string, tr naming.Triple) error {
	if cfg.Overwrite || !planner.Fresh(src, tr.JPEG) {
		args := encode.SipsResizeArgs(tc, cfg, src, tr.JPEG, tr.Width)
		if err := encode.Run(ctx, cfg.Verbose, args); err != nil {
			return err
		}
	}

	if cfg.Overwrite || !planner.Fresh(tr.JPEG, tr.WebP) {
		args := encode.CwebpArgs(tc, cfg, tr.JPEG, tr.WebP)
		if err := encode.Run(ctx, cfg.Verbose, args); err != nil {
			return err
		}
	}

	if cfg.Overwrite || !planner.Fresh(tr.JPEG, tr.AVIF) {
		args := encode.AvifencArgs(tc, cfg, tr.JPEG, tr.AVIF)
		if err := encode.Run(ctx, cfg.Verbose, args); err != nil {
			return err
		}
	}
	return nil
}

func tripleBytes(tr naming.Triple) int64 {
	var total int64
	for _, p := range tr.Paths() {
		if fi, err := os.Stat(p); err == nil {
			total += fi.Size()
		}
	}
	return total
}

func planWidths(plan *planner.ImagePlan) []int {
	widths := make([]int, 0, len(plan.Triples))
	for _, tr := range plan.Triples {
		widths = append(widths, tr.Width)
	}
	return widths
}

func logBatchHeader(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("Found %d image(s)", stats.Images)
	log.Info("Widths: %v", cfg.Widths)
	log.Info("Quality: jpeg %d, webp %d, avif %d (speed %d)",
		cfg.JpegQuality, cfg.WebpQuality, cfg.AvifQuality, cfg.AvifSpeed)
	if cfg.Overwrite {
		log.Info("Overwrite: regenerating all variants")
	}
	if cfg.DryRun {
		log.Warn("DRY RUN: no files will be written")
	}
}
