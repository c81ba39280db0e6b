package main

import (
	"os"

	"github.com/Ramsey-B/fern/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
