package display

import (
	"fmt"
	"os"

	"github.com/lumafold/srcsetgen/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if term.Enabled() {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, `                         _
 ___ _ __ ___ ___  ___| |_ __ _  ___ _ __
/ __| '__/ __/ __|/ _ \ __/ _`+"`"+` |/ _ \ '_ \
\__ \ | | (__\__ \  __/ || (_| |  __/ | | |
|___/_|  \___|___/\___|\__\__, |\___|_| |_|
                          |___/
`)
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
