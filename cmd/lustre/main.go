// Package main provides the CLI for the Lustre dashboard shell.
package main

import (
	"os"

	"github.com/leapstack-labs/lustre/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
