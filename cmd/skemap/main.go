package main

import (
	"os"

	"github.com/reoring/skemap/internal/command"
)

func main() {
	if err := command.GetRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
