package main

import (
	"os"

	"github.com/resume-forge/resume-forge/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
