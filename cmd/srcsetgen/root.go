package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/lumafold/srcsetgen/internal/config"
	"github.com/lumafold/srcsetgen/internal/display"
	"github.com/lumafold/srcsetgen/internal/logging"
	"github.com/lumafold/srcsetgen/internal/pipeline"
	"github.com/lumafold/srcsetgen/internal/runlock"
	"github.com/lumafold/srcsetgen/internal/toolchain"
)

// version and commit are injected at build time via -ldflags. When built with
// plain "go build" these retain their defaults.
var (
	version = "1.0.0-dev"
	commit  = "unknown"
)

// flagValues holds raw flag state separately from Config so that the optional
// config file can be overlaid first and only flags the user actually set win.
type flagValues struct {
	configPath string
	input      string
	output     string
	widths     string
	jpegQ      int
	webpQ      int
	avifQ      int
	avifSpeed  int
	overwrite  bool
	dryRun     bool
	verbose    bool
	logFile    string
	forceColor bool
	noColor    bool
}

func newRootCommand() *cobra.Command {
	var fv flagValues

	rootCmd := &cobra.Command{
		Use:           "srcsetgen",
		Short:         "Generate responsive AVIF/WebP/JPEG variants for gallery images",
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, &fv)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	defaults := config.Default()
	fl := rootCmd.Flags()
	fl.StringVarP(&fv.configPath, "config", "c", "", "Optional TOML config file")
	fl.StringVar(&fv.input, "input", defaults.InputDir, "Input directory")
	fl.StringVar(&fv.output, "output", defaults.OutputDir, "Output directory")
	fl.StringVar(&fv.widths, "widths", config.DefaultWidths, "Comma-separated target widths (px)")
	fl.IntVar(&fv.jpegQ, "jpeg-quality", defaults.JpegQuality, "JPEG quality (sips formatOptions, 0-100)")
	fl.IntVar(&fv.webpQ, "webp-quality", defaults.WebpQuality, "WebP quality (cwebp -q, 0-100)")
	fl.IntVar(&fv.avifQ, "avif-quality", defaults.AvifQuality, "AVIF quality (avifenc -q, 0-100; lower = smaller)")
	fl.IntVar(&fv.avifSpeed, "avif-speed", defaults.AvifSpeed, "AVIF speed (avifenc --speed, 0=slowest..10=fastest)")
	fl.BoolVar(&fv.overwrite, "overwrite", false, "Regenerate even if outputs are up-to-date")
	fl.BoolVarP(&fv.dryRun, "dry-run", "d", false, "Preview only; do not run any tool")
	fl.BoolVarP(&fv.verbose, "verbose", "v", false, "Verbose output (tool stderr, per-width detail)")
	fl.StringVarP(&fv.logFile, "log", "l", "", "Append plain logs to file")
	fl.BoolVar(&fv.forceColor, "color", false, "Force colored logs")
	fl.BoolVar(&fv.noColor, "no-color", false, "Disable colored logs")

	rootCmd.AddCommand(newCheckCommand())

	return rootCmd
}

// resolveConfig builds the effective Config: defaults, then the optional TOML
// file, then explicitly set flags, then validation.
func resolveConfig(cmd *cobra.Command, fv *flagValues) (*config.Config, error) {
	cfg := config.Default()

	if fv.configPath != "" {
		if err := config.LoadFile(fv.configPath, &cfg); err != nil {
			return nil, err
		}
	}

	fl := cmd.Flags()
	if fl.Changed("input") {
		cfg.InputDir = config.NormalizeDirArg(fv.input)
	}
	if fl.Changed("output") {
		cfg.OutputDir = config.NormalizeDirArg(fv.output)
	}
	if fl.Changed("widths") {
		widths, err := config.ParseWidths(fv.widths)
		if err != nil {
			return nil, err
		}
		cfg.Widths = widths
	}
	if fl.Changed("jpeg-quality") {
		cfg.JpegQuality = fv.jpegQ
	}
	if fl.Changed("webp-quality") {
		cfg.WebpQuality = fv.webpQ
	}
	if fl.Changed("avif-quality") {
		cfg.AvifQuality = fv.avifQ
	}
	if fl.Changed("avif-speed") {
		cfg.AvifSpeed = fv.avifSpeed
	}
	if fl.Changed("log") {
		cfg.LogFile = fv.logFile
	}
	if fv.overwrite {
		cfg.Overwrite = true
	}
	cfg.DryRun = fv.dryRun
	cfg.Verbose = fv.verbose

	// --no-color wins over --color; otherwise the config value holds.
	if fv.noColor {
		cfg.ColorMode = config.ColorNever
	} else if fv.forceColor {
		cfg.ColorMode = config.ColorAlways
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// run drives one batch: logger, paths, toolchain, lock, signal handling,
// pipeline, summary.
func run(ctx context.Context, cfg *config.Config) error {
	log, err := logging.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	display.PrintBanner()

	// Resolve and validate paths: input must exist, output is created if
	// needed, and output must not be inside input (a re-run would otherwise
	// discover its own variants).
	inputAbs, err := absPath(cfg.InputDir)
	if err != nil {
		return fmt.Errorf("input not found: %s", cfg.InputDir)
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("cannot create output directory %s: %w", cfg.OutputDir, err)
	}
	outputAbs, err := absPath(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("cannot resolve output path: %s", cfg.OutputDir)
	}
	if err := cfg.ValidatePaths(inputAbs, outputAbs); err != nil {
		return err
	}

	// Fail fast if any of the three tools is missing; every image needs all
	// of them.
	tc, err := toolchain.Resolve()
	if err != nil {
		return err
	}
	log.Debug("tools: sips=%s cwebp=%s avifenc=%s", tc.Sips, tc.Cwebp, tc.Avifenc)

	lock, err := runlock.Acquire(cfg.OutputDir)
	if err != nil {
		return err
	}
	defer lock.Release()

	runID := uuid.NewString()
	log.Info("=== srcsetgen v%s ===", version)
	log.Info("Run: %s", runID)
	log.Info("In:  %s", cfg.InputDir)
	log.Info("Out: %s", cfg.OutputDir)
	log.Info("")

	// Cancel the context on SIGINT/SIGTERM so the pipeline stops between
	// tool invocations instead of mid-batch cleanup.
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, stopping…")
		cancel()
	}()

	stats, err := pipeline.Run(ctx, cfg, tc, log)
	if err != nil {
		return err
	}

	fmt.Println()
	if tbl := display.RenderSummaryTable(stats.Results); tbl != "" {
		fmt.Println(tbl)
	}
	log.Success("Done. Generated: %d, skipped (up-to-date): %d", stats.Generated, stats.Skipped)
	if stats.TotalOutputBytes > 0 {
		log.Info("Output size: %s", display.FormatBytes(stats.TotalOutputBytes))
	}
	log.Info("Output directory: %s", outputAbs)
	return nil
}

// absPath returns the absolute, symlink-resolved path for safe comparison
// of input vs output directory hierarchies.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
