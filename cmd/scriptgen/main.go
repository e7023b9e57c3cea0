// Command scriptgen is the CLI driver for the source-to-source compiler
// core (spec_full §10.3): a thin cobra front end over internal/compile,
// internal/fixture, and internal/config.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/scriptgen/cmd/scriptgen/cmd"
)

func main() {
	if err := cmd.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
