// Command srcsetgen batch-generates responsive JPEG/WebP/AVIF variants for a
// static site gallery by shelling out to sips, cwebp, and avifenc.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintf(os.Stderr, "srcsetgen: %v\n", err)
		}
		os.Exit(1)
	}
}
