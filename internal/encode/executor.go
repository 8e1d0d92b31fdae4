package encode

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// stderrTailLines bounds how much captured tool output ends up in an error.
const stderrTailLines = 10

// Run executes one tool invocation and blocks until the child exits. Stdout
// is discarded (the legacy script sent it to /dev/null); stderr is captured
// for the error message, and additionally streamed to os.Stderr when verbose
// is set. A non-zero exit becomes an error naming the tool and carrying the
// tail of its stderr.
func Run(ctx context.Context, verbose bool, args []string) error {
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)

	var stderrBuf bytes.Buffer
	if verbose {
		cmd.Stderr = io.MultiWriter(&stderrBuf, os.Stderr)
	} else {
		cmd.Stderr = &stderrBuf
	}

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		tool := filepath.Base(args[0])
		if tail := stderrTail(stderrBuf.String()); tail != "" {
			return fmt.Errorf("%s: %w: %s", tool, err, tail)
		}
		return fmt.Errorf("%s: %w", tool, err)
	}
	return nil
}

// stderrTail returns the last few stderr lines joined for inline display.
func stderrTail(stderr string) string {
	stderr = strings.TrimSpace(stderr)
	if stderr == "" {
		return ""
	}
	lines := strings.Split(stderr, "\n")
	if len(lines) > stderrTailLines {
		lines = lines[len(lines)-stderrTailLines:]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	return strings.Join(lines, " | ")
}
