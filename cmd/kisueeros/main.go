package main

import (
	"os"

	"github.com/kisueer/kisueeros/cmd/kisueeros/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
