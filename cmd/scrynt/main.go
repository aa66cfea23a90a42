package main

import (
	"os"

	"github.com/scrynt/backend/cmd/scrynt/commands"
)

// main is the entry point for the scrynt CLI.
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
