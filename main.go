package main

import (
	"os"

	"github.com/mkale/tutorloop/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
