package main

import (
	"os"
)

// main is the entry point of linkctl, the operator console of the link
// backend.
func main() {
	if err := newRootCmd(&app{}).Execute(); err != nil {
		os.Exit(1)
	}
}
