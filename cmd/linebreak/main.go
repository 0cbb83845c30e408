// Command linebreak computes Knuth-Plass optimal line breaks for an item
// script or a plain-text paragraph.
package main

import (
	"fmt"
	"os"

	"seehuhn.de/go/linebreak/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	cli.SetVersion(version, commit)
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
