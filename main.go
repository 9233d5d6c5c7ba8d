package main

import (
	"os"

	"github.com/veltaire/planforge/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
