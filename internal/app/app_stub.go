//go:build !ebiten

package app

import (
	"fmt"

	"life-matrix/internal/core"
)

// Game stands in for the windowed automaton host when ebiten is not compiled
// in. Headless callers drive a Host directly or use the terminal view.
type Game struct{}

// New panics: the windowed host needs the ebiten tag.
func New(core.Sim, *Config) *Game {
	panic("app.New: windowed life host requires building with -tags ebiten")
}

// Reset does nothing without a window.
func (g *Game) Reset(int64) {}

// Update reports that no window backend was compiled in.
func (g *Game) Update() error {
	return fmt.Errorf("app.Game.Update: windowed life host requires building with -tags ebiten")
}

// Draw does nothing without a window.
func (g *Game) Draw(any) {}

// Layout reports an empty window.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
