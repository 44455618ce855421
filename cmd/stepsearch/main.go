package main

import (
	"os"

	"github.com/katalvlaran/stepsearch/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
