// Command dotsync-manpage writes the dotsync(1) man page to stdout. It is
// run at release time; "dotsync man <dir>" writes the whole tree.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/dotsync/cmd/dotsync"
)

func main() {
	if err := doc.GenMan(dotsync.NewRootCmd(), dotsync.ManHeader(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
