package encode

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/lumafold/srcsetgen/internal/config"
	"github.com/lumafold/srcsetgen/internal/toolchain"
)

func testToolchain() *toolchain.Toolchain {
	return &toolchain.Toolchain{
		Sips:    "/usr/bin/sips",
		Cwebp:   "/opt/homebrew/bin/cwebp",
		Avifenc: "/opt/homebrew/bin/avifenc",
	}
}

func TestSipsResizeArgs(t *testing.T) {
	cfg := config.Default()
	got := SipsResizeArgs(testToolchain(), &cfg, "in/sunset.jpg", "out/sunset-640.jpg", 640)

	want := []string{
		"/usr/bin/sips",
		"--resampleWidth", "640",
		"-s", "formatOptions", "72",
		"in/sunset.jpg",
		"--out", "out/sunset-640.jpg",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SipsResizeArgs = %v, want %v", got, want)
	}
}

func TestCwebpArgs(t *testing.T) {
	cfg := config.Default()
	cfg.WebpQuality = 80
	got := CwebpArgs(testToolchain(), &cfg, "out/sunset-640.jpg", "out/sunset-640.webp")

	want := []string{
		"/opt/homebrew/bin/cwebp",
		"-quiet",
		"-q", "80",
		"-metadata", "none",
		"out/sunset-640.jpg",
		"-o", "out/sunset-640.webp",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CwebpArgs = %v, want %v", got, want)
	}
}

func TestAvifencArgs(t *testing.T) {
	cfg := config.Default()
	got := AvifencArgs(testToolchain(), &cfg, "out/sunset-640.jpg", "out/sunset-640.avif")

	want := []string{
		"/opt/homebrew/bin/avifenc",
		"--jobs", "all",
		"--speed", "6",
		"-q", "45",
		"--ignore-exif",
		"--ignore-xmp",
		"--ignore-icc",
		"out/sunset-640.jpg",
		"out/sunset-640.avif",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AvifencArgs = %v, want %v", got, want)
	}
}

// writeScript creates an executable shell stub for executor tests.
func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun_Success(t *testing.T) {
	dir := t.TempDir()
	tool := writeScript(t, dir, "oktool", "exit 0\n")

	if err := Run(context.Background(), false, []string{tool}); err != nil {
		t.Errorf("Run: %v", err)
	}
}

func TestRun_FailureCarriesStderrTail(t *testing.T) {
	dir := t.TempDir()
	tool := writeScript(t, dir, "badtool", "echo 'cannot open input' >&2\nexit 3\n")

	err := Run(context.Background(), false, []string{tool})
	if err == nil {
		t.Fatal("Run should fail on non-zero exit")
	}
	if !strings.Contains(err.Error(), "badtool") {
		t.Errorf("error %q should name the tool", err)
	}
	if !strings.Contains(err.Error(), "cannot open input") {
		t.Errorf("error %q should carry stderr tail", err)
	}
}

func TestRun_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	tool := writeScript(t, dir, "slowtool", "sleep 10\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, false, []string{tool})
	if err == nil {
		t.Fatal("Run should fail when the context is cancelled")
	}
	if err != context.Canceled {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestStderrTail(t *testing.T) {
	if got := stderrTail(""); got != "" {
		t.Errorf("empty stderr should produce empty tail, got %q", got)
	}
	long := strings.Repeat("line\n", 30) + "final error"
	got := stderrTail(long)
	if !strings.Contains(got, "final error") {
		t.Errorf("tail %q should keep the last line", got)
	}
	if strings.Count(got, "|") > stderrTailLines {
		t.Errorf("tail %q should be bounded", got)
	}
}
