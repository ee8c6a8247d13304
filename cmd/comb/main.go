// Command comb is a small demo harness over the worked-example grammars
// shipped in examples/.
//
// Grounded on FollowTheProcess-spok's cmd/spok/main.go: build the root
// command, execute it, report errors to stderr and exit non-zero.
package main

import (
	"fmt"
	"os"

	"github.com/oleiade/comb/cmd/comb/internal/cli"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	rootCmd := cli.BuildRootCmd()
	return rootCmd.Execute()
}
