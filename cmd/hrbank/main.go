package main

import (
	"os"

	"github.com/hrbank-dev/hrbank/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
