package main

import (
	"fmt"
	"os"
)

var version = "dev"

// Entry point for the application
func main() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if !isReported(err) {
			fmt.Fprintln(os.Stderr, errorText(err.Error()))
		}
		os.Exit(1)
	}
}
