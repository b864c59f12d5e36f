package main

import (
	"os"

	"github.com/fatih/color"
)

// Entry point for the application
func main() {
	if err := NewRootCmd().Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
