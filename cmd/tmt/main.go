package main

import (
	"os"

	"github.com/winter3671/TakeMeTrip/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
