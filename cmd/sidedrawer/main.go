// Command sidedrawer explores the side drawer state machine from a terminal.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/sidedrawer/cmd/sidedrawer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
