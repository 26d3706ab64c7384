// Package main is the entry point for the sql2lineage CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/sql2lineage/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
