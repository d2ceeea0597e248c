//go:build !ebiten

// Command ca shows the life automaton in a window. This build has no window
// backend and points at the terminal host instead.
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "ca: the windowed life-matrix host is built with -tags ebiten")
	fmt.Fprintln(os.Stderr, "ca: run `go run -tags ebiten ./cmd/ca`, or `go run ./cmd/life-term` for the terminal host")
	os.Exit(2)
}
