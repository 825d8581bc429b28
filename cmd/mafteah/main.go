package main

import (
	"os"

	"github.com/sifria-labs/mafteah-cli/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
