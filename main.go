// Package main is the entrypoint of tubecfg.
package main

import (
	"fmt"
	"os"

	"tubecfg/internal/cfg"
)

// main is the program entrypoint (duh!)
func main() {
	if err := cfg.InitCommands(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := cfg.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Println()
		os.Exit(1)
	}
}
