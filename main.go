// file: main.go
// version: 2.0.0
// guid: 3f1d2a4b-9c8e-4b7a-a6d5-2e1f0c9b8a7d

package main

import (
	"fmt"
	"os"

	"github.com/jdfalk/music-renamer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
