package toolchain

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// withStubPath points PATH at a temp dir containing executable stubs for the
// named tools, so resolution succeeds without the real binaries.
func withStubPath(t *testing.T, tools ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, tool := range tools {
		stub := filepath.Join(dir, tool)
		if err := os.WriteFile(stub, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
			t.Fatalf("write stub %s: %v", tool, err)
		}
	}
	t.Setenv("PATH", dir)
	return dir
}

func TestResolve_AllPresent(t *testing.T) {
	dir := withStubPath(t, "sips", "cwebp", "avifenc")

	tc, err := Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if tc.Sips != filepath.Join(dir, "sips") {
		t.Errorf("Sips = %q, want path under %q", tc.Sips, dir)
	}
	if tc.Cwebp == "" || tc.Avifenc == "" {
		t.Errorf("unresolved tool paths: %+v", tc)
	}
}

func TestResolve_ReportsAllMissing(t *testing.T) {
	withStubPath(t, "sips") // cwebp and avifenc absent

	_, err := Resolve()
	if err == nil {
		t.Fatal("Resolve should fail when tools are missing")
	}
	msg := err.Error()
	for _, want := range []string{"cwebp", "avifenc", "brew install webp", "brew install libavif"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q should mention %q", msg, want)
		}
	}
	if strings.Contains(msg, "sips") {
		t.Errorf("error %q should not mention the present tool", msg)
	}
}

func TestCheck_StatusOrder(t *testing.T) {
	withStubPath(t, "cwebp")

	statuses := Check()
	if len(statuses) != 3 {
		t.Fatalf("got %d statuses, want 3", len(statuses))
	}
	want := []string{"sips", "cwebp", "avifenc"}
	for i, s := range statuses {
		if s.Name != want[i] {
			t.Errorf("statuses[%d].Name = %q, want %q", i, s.Name, want[i])
		}
	}
	if statuses[0].Available {
		t.Error("sips should be unavailable")
	}
	if !statuses[1].Available {
		t.Error("cwebp should be available")
	}
}
