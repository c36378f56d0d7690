package main

import (
	"os"

	"scarab/cmd/scarab/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
