//go:build !ebiten

package ui

import "life-matrix/internal/core"

// HUD is the parameter side panel. Without ebiten there is no panel to draw
// and the automaton is adjusted through -set overrides instead.
type HUD struct{}

// NewHUD returns nil, which callers treat as "no side panel".
func NewHUD(core.Sim, int) *HUD { return nil }

// Update ignores clicks; there is no panel.
func (h *HUD) Update(int) {}

// Draw ignores the request; there is no panel.
func (h *HUD) Draw(any, int, int) {}
