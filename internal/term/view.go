// Package term renders a hosted sim on a character terminal.
package term

import (
	"fmt"
	"math"
	"strings"

	"life-matrix/internal/app"
	"life-matrix/internal/core"
	"life-matrix/internal/render"
	"life-matrix/internal/sims/life"

	"github.com/gdamore/tcell/v2"
	"github.com/guptarohit/asciigraph"
)

// CellRune is drawn for every live cell.
const CellRune = '█'

type lifeStatus interface {
	Generation() int
	Population() int
	IsStable() bool
	IsShowingDemo() bool
	IsShowingReset() bool
	SecondsRemaining(now core.Millis) int
	ResetProgress(now core.Millis) float64
}

type patternSwitch interface {
	Pattern() life.Pattern
	SetPattern(life.Pattern)
}

type resizer interface {
	Resize(w, h int)
}

type summaryReporter interface {
	LastSummary() (life.Summary, bool)
}

var demoLines = []string{
	"CONWAY'S GAME OF LIFE",
	"",
	"2-3 neighbours: a cell survives",
	"3 neighbours: a cell is born",
}

var (
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	headerStyle = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	alertStyle  = tcell.StyleDefault.Foreground(tcell.ColorOrangeRed).Bold(true)
	graphStyle  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
)

// View draws a Host onto a tcell screen and maps keys to host controls.
type View struct {
	screen tcell.Screen
	host   *app.Host
	seed   int64

	// Fit resizes the world to the terminal on the next reset.
	Fit bool
}

// NewView returns a view over host drawing to screen.
func NewView(screen tcell.Screen, host *app.Host, seed int64) *View {
	return &View{screen: screen, host: host, seed: seed}
}

// Draw paints the current screen and flushes it.
func (v *View) Draw(now core.Millis) {
	v.screen.Clear()
	if v.host.Visible() {
		v.drawLife(now)
	} else {
		v.drawStats()
	}
	v.screen.Show()
}

func (v *View) drawLife(now core.Millis) {
	sim := v.host.Sim()
	size := sim.Size()
	status, _ := sim.(lifeStatus)

	if status != nil && status.IsShowingDemo() {
		v.drawDemo(size)
		return
	}

	sw, sh := v.screen.Size()
	cells := sim.Cells()
	for y := 0; y < size.H && y < sh-1; y++ {
		for x := 0; x < size.W && x < sw; x++ {
			age := cells[y*size.W+x]
			if age == 0 {
				continue
			}
			c := render.AgeColor(age, x, y, size.W, size.H)
			style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
			v.screen.SetContent(x, y, CellRune, nil, style)
		}
	}
	if status == nil {
		return
	}
	if status.IsShowingReset() {
		v.drawRing(size, status.ResetProgress(now))
	}

	line := fmt.Sprintf("gen %d pop %d", status.Generation(), status.Population())
	if v.host.Busy() {
		line += " [busy]"
	}
	v.print(0, min(size.H, sh-1), line, textStyle)
	if status.IsStable() {
		cd := fmt.Sprintf("-%ds", status.SecondsRemaining(now))
		v.print(len(line)+1, min(size.H, sh-1), cd, alertStyle)
	}
}

func (v *View) drawDemo(size core.Size) {
	top := size.H/2 - len(demoLines)/2
	for i, line := range demoLines {
		x := (size.W - len(line)) / 2
		style := textStyle
		if i == 0 {
			style = headerStyle
		}
		v.print(max(x, 0), top+i, line, style)
	}
}

// drawRing plots an expanding ring centered on the grid.
func (v *View) drawRing(size core.Size, progress float64) {
	cx := float64(size.W-1) / 2
	cy := float64(size.H-1) / 2
	r := math.Hypot(cx, cy) * progress
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			d := math.Hypot(float64(x)-cx, float64(y)-cy)
			if math.Abs(d-r) < 0.5 {
				v.screen.SetContent(x, y, 'o', nil, headerStyle)
			}
		}
	}
}

func (v *View) drawStats() {
	sim := v.host.Sim()
	y := 0
	v.print(0, y, sim.Name()+" stats", headerStyle)
	y++
	if p, ok := sim.(core.ParameterProvider); ok {
		for _, group := range p.Parameters().Groups {
			for _, param := range group.Params {
				v.print(0, y, fmt.Sprintf("%-14s %s", param.Label, param.Value), textStyle)
				y++
			}
		}
	}
	if r, ok := sim.(summaryReporter); ok {
		if s, ok := r.LastSummary(); ok {
			y++
			v.print(0, y, fmt.Sprintf("last run: %s at gen %d, pop %d", s.Reason, s.Generation, s.Population), textStyle)
			y++
		}
	}
	hist := v.host.History()
	if len(hist) < 2 {
		return
	}
	sw, _ := v.screen.Size()
	plot := asciigraph.Plot(hist, asciigraph.Height(6), asciigraph.Width(max(sw-12, 10)), asciigraph.Caption("population"))
	y++
	for _, row := range strings.Split(plot, "\n") {
		v.print(0, y, row, graphStyle)
		y++
	}
}

func (v *View) print(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// HandleKey applies a key press and reports whether the user asked to quit.
func (v *View) HandleKey(ev *tcell.EventKey, now core.Millis) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRight:
		v.host.NextScreen(now, 1)
		return false
	case tcell.KeyLeft:
		v.host.NextScreen(now, -1)
		return false
	case tcell.KeyRune:
	default:
		return false
	}
	switch ev.Rune() {
	case 'q':
		return true
	case ' ', 'p':
		v.host.TogglePause()
	case 'r':
		v.host.ForceReset()
	case 'n':
		v.seed++
		v.host.Sim().Reset(v.seed)
	case 's':
		v.host.CycleSpeed(1)
	case 'd':
		v.host.ToggleDemo()
	case 'b':
		v.host.SetBusy(!v.host.Busy())
	case 'v':
		v.host.TogglePin()
	case 'x':
		if p, ok := v.host.Sim().(patternSwitch); ok {
			p.SetPattern(p.Pattern().Next())
		}
	}
	return false
}

// HandleResize fits the world to the terminal when Fit is set. The new size
// applies with the reset it triggers.
func (v *View) HandleResize() {
	v.screen.Sync()
	if !v.Fit {
		return
	}
	r, ok := v.host.Sim().(resizer)
	if !ok {
		return
	}
	sw, sh := v.screen.Size()
	size := v.host.Sim().Size()
	if sw == size.W && sh-1 == size.H {
		return
	}
	r.Resize(sw, sh-1)
}
