// Command axcl-layout inspects AXCL record layouts and converts between
// dicts and native record images.
package main

import (
	"fmt"
	"os"

	"github.com/thesyncim/axcl/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
