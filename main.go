package main

import (
	"os"

	"github.com/frcutil/drivekit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
