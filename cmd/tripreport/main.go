// Package main provides the tripreport CLI entry point.
package main

import (
	"os"

	"github.com/imca-cat/tripreport/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
