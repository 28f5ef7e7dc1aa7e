// Package main is the entry point for watsonbar.
package main

import (
	"os"

	"github.com/watsonbar/watsonbar/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
