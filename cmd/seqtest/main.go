// Package main provides seqtest, the golden-file test tool for sequencer scripts.
package main

import (
	"fmt"
	"os"

	"sequencer/cmd/seqtest/internal/cli"
)

func main() {
	rootCmd := cli.NewApp().CreateRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
