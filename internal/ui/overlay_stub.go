//go:build !ebiten

package ui

import "life-matrix/internal/core"

// Overlay would draw the demo card, reset ring and countdown over the grid.
// Headless builds have no grid image to draw on.
type Overlay struct{}

// NewOverlay returns an overlay that draws nothing.
func NewOverlay(core.Sim, int) *Overlay { return &Overlay{} }

// Update ignores the stats-line toggle key.
func (o *Overlay) Update() {}

// Draw ignores the request.
func (o *Overlay) Draw(any, core.Millis) {}
