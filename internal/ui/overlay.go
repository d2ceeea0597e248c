//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"math"

	"life-matrix/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

type generationProvider interface {
	Generation() int
	Population() int
	Births() int
	Deaths() int
	MaxAge() int
}

type countdownProvider interface {
	IsStable() bool
	SecondsRemaining(now core.Millis) int
}

type demoProvider interface {
	IsShowingDemo() bool
}

type resetProvider interface {
	IsShowingReset() bool
	ResetProgress(now core.Millis) float64
}

var demoLines = []string{
	"CONWAY'S GAME OF LIFE",
	"",
	"Live cell, 2 or 3 neighbours: survives",
	"Dead cell, 3 neighbours: is born",
	"Otherwise the cell dies or stays empty",
}

// Overlay draws lifecycle visuals on top of the grid: the demo card, the
// reset ring, the countdown and an optional stats line.
type Overlay struct {
	sim       core.Sim
	scale     int
	showStats bool
	pixel     *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{sim: sim, scale: scale, showStats: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles overlay toggles.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showStats = !o.showStats
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, now core.Millis) {
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	w := float64(size.W * o.scale)
	h := float64(size.H * o.scale)

	if p, ok := o.sim.(demoProvider); ok && p.IsShowingDemo() {
		o.drawDemo(screen, w, h)
		return
	}
	if p, ok := o.sim.(resetProvider); ok && p.IsShowingReset() {
		o.drawResetRing(screen, w, h, p.ResetProgress(now))
		return
	}
	if o.showStats {
		if p, ok := o.sim.(generationProvider); ok {
			line := fmt.Sprintf("gen %d  pop %d  +%d -%d  age %d", p.Generation(), p.Population(), p.Births(), p.Deaths(), p.MaxAge())
			o.drawBox(screen, 0, 0, w, 18, color.RGBA{A: 150})
			text.Draw(screen, line, basicfont.Face7x13, 4, 13, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		}
	}
	if p, ok := o.sim.(countdownProvider); ok && p.IsStable() {
		label := fmt.Sprintf("-%ds", p.SecondsRemaining(now))
		bounds := text.BoundString(basicfont.Face7x13, label)
		x := int(w) - bounds.Dx() - 6
		o.drawBox(screen, float64(x-4), h-20, float64(bounds.Dx()+8), 18, color.RGBA{A: 170})
		text.Draw(screen, label, basicfont.Face7x13, x, int(h)-6, color.RGBA{R: 255, G: 96, B: 64, A: 255})
	}
}

func (o *Overlay) drawDemo(screen *ebiten.Image, w, h float64) {
	face := basicfont.Face7x13
	const lineHeight = 16
	o.drawBox(screen, 0, 0, w, h, color.RGBA{A: 200})
	top := int(h)/2 - len(demoLines)*lineHeight/2 + lineHeight
	for i, line := range demoLines {
		if line == "" {
			continue
		}
		bounds := text.BoundString(face, line)
		x := (int(w) - bounds.Dx()) / 2
		if x < 4 {
			x = 4
		}
		clr := color.RGBA{R: 200, G: 200, B: 210, A: 255}
		if i == 0 {
			clr = color.RGBA{G: 255, B: 255, A: 255}
		}
		text.Draw(screen, line, face, x, top+i*lineHeight, clr)
	}
}

func (o *Overlay) drawResetRing(screen *ebiten.Image, w, h, progress float64) {
	cx := w / 2
	cy := h / 2
	maxR := math.Hypot(cx, cy)
	r := maxR * progress
	if r < 1 {
		r = 1
	}
	fade := uint8(255 * (1 - progress*0.7))
	thickness := float32(o.scale) * 2
	vector.StrokeCircle(screen, float32(cx), float32(cy), float32(r), thickness, color.RGBA{R: fade, G: fade, B: fade, A: 255}, true)
	if inner := r - float64(thickness)*3; inner > 1 {
		vector.StrokeCircle(screen, float32(cx), float32(cy), float32(inner), thickness/2, color.RGBA{G: fade / 2, B: fade, A: 255}, true)
	}
}

func (o *Overlay) drawBox(screen *ebiten.Image, x, y, w, h float64, clr color.Color) {
	if o.pixel == nil || w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	screen.DrawImage(o.pixel, op)
}
