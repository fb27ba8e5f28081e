// Package main is the entry point for the memo CLI tool.
package main

import (
	"os"

	"github.com/aidanlsb/memokit/internal/cli"
)

func main() {
	if err := cli.ExecuteMemo(); err != nil {
		os.Exit(1)
	}
}
