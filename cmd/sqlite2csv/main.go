// Package main is the entry point for the sqlite2csv CLI tool.
package main

import (
	"os"

	"github.com/aidanlsb/memokit/internal/cli"
)

func main() {
	if err := cli.ExecuteSQLite(); err != nil {
		os.Exit(1)
	}
}
