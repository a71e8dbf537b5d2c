package main

import (
	"os"

	"github.com/msto63/pascal/cmd/pcalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
