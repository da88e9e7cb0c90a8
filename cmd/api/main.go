// cmd/api/main.go
package main

import (
	"fmt"
	"os"
)

// @title Showbook API
// @version 1.0
// @description Venue, artist and show booking directory.
// @BasePath /
func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
