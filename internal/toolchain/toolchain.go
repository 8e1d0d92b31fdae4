// Package toolchain resolves the external image tools (sips, cwebp, avifenc)
// and provides the `check` diagnostics. Every image needs all three tools, so
// a partial toolchain is useless and resolution fails as a whole, reporting
// every missing binary with install guidance.
package toolchain

import (
	"fmt"
	"os/exec"
	"strings"
)

// Requirement defines one external binary the batch relies on.
type Requirement struct {
	Name        string
	Description string
	InstallHint string
}

// Status reports the availability of one requirement.
type Status struct {
	Requirement
	Path      string
	Available bool
}

// requirements lists the three tools in invocation order. The install hints
// match the platforms the legacy gallery script targeted.
var requirements = []Requirement{
	{
		Name:        "sips",
		Description: "pixel-width query and resize/recompress to JPEG",
		InstallHint: "ships with macOS",
	},
	{
		Name:        "cwebp",
		Description: "lossy WebP encoding",
		InstallHint: "brew install webp",
	},
	{
		Name:        "avifenc",
		Description: "AVIF encoding",
		InstallHint: "brew install libavif",
	},
}

// Toolchain holds the resolved paths of the three external tools.
type Toolchain struct {
	Sips    string
	Cwebp   string
	Avifenc string
}

// Check evaluates every requirement against PATH and reports availability.
func Check() []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		status := Status{Requirement: req}
		if path, err := exec.LookPath(req.Name); err == nil {
			status.Path = path
			status.Available = true
		}
		results = append(results, status)
	}
	return results
}

// Resolve looks up all three tools and returns their paths. When any are
// missing it returns a single error naming every missing tool with its
// install hint, so the user can fix the whole environment in one pass.
func Resolve() (*Toolchain, error) {
	statuses := Check()

	var missing []string
	byName := make(map[string]string, len(statuses))
	for _, s := range statuses {
		if !s.Available {
			missing = append(missing, fmt.Sprintf("%s (%s)", s.Name, s.InstallHint))
			continue
		}
		byName[s.Name] = s.Path
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required tools: %s", strings.Join(missing, ", "))
	}

	return &Toolchain{
		Sips:    byName["sips"],
		Cwebp:   byName["cwebp"],
		Avifenc: byName["avifenc"],
	}, nil
}

// Logger is the minimal logging interface needed by RunCheck. Defined here
// (rather than importing the logging package) so that toolchain remains
// dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// RunCheck runs the interactive `check` flow: prints the availability and
// resolved path of every tool, plus a version line where the tool supports
// one. Returns false if any required tool is missing.
func RunCheck(log Logger) bool {
	log.Info("=== Toolchain Check ===")

	ok := true
	for _, s := range Check() {
		if !s.Available {
			ok = false
			log.Error("%s: not found (%s)", s.Name, s.InstallHint)
			continue
		}
		if v := versionLine(s.Name, s.Path); v != "" {
			log.Success("%s: %s (%s)", s.Name, s.Path, v)
		} else {
			log.Success("%s: %s", s.Name, s.Path)
		}
		log.Info("  %s", s.Description)
	}
	return ok
}

// versionLine asks a tool for its version and returns the first output line.
// sips has no version flag, so it reports nothing.
func versionLine(name, path string) string {
	var args []string
	switch name {
	case "cwebp":
		args = []string{"-version"}
	case "avifenc":
		args = []string{"--version"}
	default:
		return ""
	}

	out, err := exec.Command(path, args...).CombinedOutput()
	if err != nil {
		return ""
	}
	line := strings.TrimSpace(string(out))
	if idx := strings.Index(line, "\n"); idx > 0 {
		line = line[:idx]
	}
	return line
}
