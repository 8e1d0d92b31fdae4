// Package encode builds and runs the external tool invocations that produce
// variants: sips for resize+JPEG, cwebp and avifenc for the derived formats.
// No image processing happens in-process.
package encode

import (
	"strconv"

	"github.com/lumafold/srcsetgen/internal/config"
	"github.com/lumafold/srcsetgen/internal/toolchain"
)

// SipsResizeArgs constructs the sips command that resizes source to width and
// recompresses it as JPEG at the configured quality.
func SipsResizeArgs(tc *toolchain.Toolchain, cfg *config.Config, source, outJPEG string, width int) []string {
	return []string{
		tc.Sips,
		"--resampleWidth", strconv.Itoa(width),
		"-s", "formatOptions", strconv.Itoa(cfg.JpegQuality),
		source,
		"--out", outJPEG,
	}
}

// CwebpArgs constructs the cwebp command that transcodes the resized JPEG to
// lossy WebP with metadata stripped.
func CwebpArgs(tc *toolchain.Toolchain, cfg *config.Config, inJPEG, outWebP string) []string {
	return []string{
		tc.Cwebp,
		"-quiet",
		"-q", strconv.Itoa(cfg.WebpQuality),
		"-metadata", "none",
		inJPEG,
		"-o", outWebP,
	}
}

// AvifencArgs constructs the avifenc command that transcodes the resized JPEG
// to AVIF with EXIF/XMP/ICC stripped, using all cores.
func AvifencArgs(tc *toolchain.Toolchain, cfg *config.Config, inJPEG, outAVIF string) []string {
	return []string{
		tc.Avifenc,
		"--jobs", "all",
		"--speed", strconv.Itoa(cfg.AvifSpeed),
		"-q", strconv.Itoa(cfg.AvifQuality),
		"--ignore-exif",
		"--ignore-xmp",
		"--ignore-icc",
		inJPEG,
		outAVIF,
	}
}
