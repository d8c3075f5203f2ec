package main

import (
	"os"

	"github.com/currhub/currhub/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
