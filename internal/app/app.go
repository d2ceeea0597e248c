//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"strings"

	"life-matrix/internal/core"
	"life-matrix/internal/render"
	"life-matrix/internal/ui"

	"github.com/guptarohit/asciigraph"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Game adapts a hosted simulation to the ebiten.Game interface.
type Game struct {
	host    *Host
	clock   *core.Clock
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	scale    int
	hudWidth int
	seed     int64
	now      core.Millis
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	g := &Game{
		host:     NewHost(sim, cfg.CycleMs, cfg.Logger()),
		clock:    cfg.Clock(),
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(sim, cfg.Scale),
		scale:    cfg.Scale,
		hudWidth: cfg.HUDWidth,
		seed:     cfg.Seed,
	}
	if cfg.HUDWidth > 0 {
		g.hud = ui.NewHUD(sim, cfg.HUDWidth)
	}
	return g
}

// Reset reseeds the simulation immediately.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.host.Sim().Reset(seed)
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.now = g.clock.Now()
	now := g.now

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.host.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.host.ForceReset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.Reset(g.seed + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.host.CycleSpeed(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.host.ToggleDemo()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.host.SetBusy(!g.host.Busy())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		g.host.TogglePin()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.host.NextScreen(now, 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.host.NextScreen(now, -1)
	}

	g.overlay.Update()
	if g.hud != nil {
		g.hud.Update(g.viewWidth())
	}
	g.host.Frame(now)
	return nil
}

// Draw renders the current screen.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.Background)
	if g.host.Visible() {
		size := g.host.Sim().Size()
		if w, h := g.painter.Size(); w != size.W || h != size.H {
			g.painter = render.NewGridPainter(size.W, size.H)
		}
		g.painter.Blit(screen, g.host.Sim().Cells(), 0, 0, g.scale)
		g.overlay.Draw(screen, g.now)
	} else {
		g.drawStats(screen)
	}
	if g.hud != nil {
		_, h := g.Layout(0, 0)
		g.hud.Draw(screen, g.viewWidth(), h)
	}
}

func (g *Game) drawStats(screen *ebiten.Image) {
	face := basicfont.Face7x13
	y := 16
	line := func(s string, clr color.Color) {
		text.Draw(screen, s, face, 6, y, clr)
		y += 15
	}
	header := color.RGBA{G: 255, B: 255, A: 255}
	body := color.RGBA{R: 200, G: 200, B: 210, A: 255}

	status := "running"
	if g.host.Busy() {
		status = "busy"
	}
	if g.host.Cycler().Pinned() {
		status += ", pinned"
	}
	line(fmt.Sprintf("%s stats (%s)", g.host.Sim().Name(), status), header)
	if p, ok := g.host.Sim().(core.ParameterProvider); ok {
		for _, group := range p.Parameters().Groups {
			for _, param := range group.Params {
				line(fmt.Sprintf("%-14s %s", param.Label, param.Value), body)
			}
		}
	}
	hist := g.host.History()
	if len(hist) < 2 {
		return
	}
	y += 6
	width := max(g.viewWidth()/face.Advance-12, 10)
	plot := asciigraph.Plot(hist, asciigraph.Height(6), asciigraph.Width(width), asciigraph.Caption("population"))
	for _, row := range strings.Split(plot, "\n") {
		line(row, color.RGBA{G: 255, A: 255})
	}
}

func (g *Game) viewWidth() int {
	return g.host.Sim().Size().W * g.scale
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.host.Sim().Size()
	w := s.W * g.scale
	if g.hud != nil {
		w += g.hudWidth
	}
	return w, s.H * g.scale
}
