package main

import (
	"os"

	"github.com/payproc-dev/payproc/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
