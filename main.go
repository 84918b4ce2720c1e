// Command filefinder lists files of a given extension above a minimum size.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/filefinder/internal/cli"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "unknown - unofficial build"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitCode(err))
	}
}
