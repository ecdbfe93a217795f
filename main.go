package main

import (
	"os"

	"github.com/melih-ucgun/converge/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
