//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"
	"strings"

	"life-matrix/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// HUD is the side panel listing a sim's adjustable parameters. Integer
// controls get -/+ buttons, booleans a single on/off pill.
type HUD struct {
	sim    core.Sim
	width  int
	panel  *ebiten.Image
	height int
	origin int

	rows  []hudRow
	ints  core.IntParameterSetter
	bools core.BoolParameterSetter
}

type hudRow struct {
	ctrl    core.ParameterControl
	known   bool
	num     int
	on      bool
	display string

	y      int
	dec    image.Rectangle
	inc    image.Rectangle
	toggle image.Rectangle
}

var keyHelp = []string{
	"space  pause",
	"r      reset",
	"n      reseed now",
	"s      speed",
	"d      demo card",
	"b      busy",
	"v      pin screen",
	"<- ->  screens",
	"1      stats line",
}

var (
	hudBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	hudTitle      = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	hudLabel      = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	hudMuted      = color.RGBA{R: 140, G: 140, B: 150, A: 255}
	hudButton     = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	hudButtonOff  = color.RGBA{R: 32, G: 34, B: 40, A: 255}
	hudPillOn     = color.RGBA{R: 24, G: 120, B: 96, A: 255}
)

const (
	hudPad     = 12
	hudRowH    = 32
	hudBtn     = 22
	hudGap     = 6
	hudPillW   = 40
	hudTitleY  = hudPad + 12
	hudRowsTop = hudTitleY + 16
	hudHelpH   = 15
)

// NewHUD builds a panel of the given width for sim.
func NewHUD(sim core.Sim, width int) *HUD {
	h := &HUD{sim: sim, width: max(width, 0)}
	if p, ok := sim.(core.ParameterControlsProvider); ok {
		for i, c := range p.ParameterControls() {
			h.rows = append(h.rows, h.layoutRow(c, hudRowsTop+i*hudRowH))
		}
	}
	h.ints, _ = sim.(core.IntParameterSetter)
	h.bools, _ = sim.(core.BoolParameterSetter)
	return h
}

func (h *HUD) layoutRow(c core.ParameterControl, y int) hudRow {
	r := hudRow{ctrl: c, y: y, display: "--"}
	top := y + (hudRowH-hudBtn)/2
	right := h.width - hudPad
	switch c.Type {
	case core.ParamTypeBool:
		r.toggle = image.Rect(right-hudPillW, top, right, top+hudBtn)
	default:
		r.inc = image.Rect(right-hudBtn, top, right, top+hudBtn)
		r.dec = image.Rect(r.inc.Min.X-hudGap-hudBtn, top, r.inc.Min.X-hudGap, top+hudBtn)
	}
	return r
}

// Update reads the current parameter values and applies clicks. origin is the
// panel's x offset on screen.
func (h *HUD) Update(origin int) {
	if h == nil {
		return
	}
	h.origin = origin
	p, ok := h.sim.(core.ParameterProvider)
	if !ok {
		return
	}
	snap := p.Parameters()
	for i := range h.rows {
		h.rows[i].read(snap)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		h.click(image.Pt(mx-origin, my))
	}
}

func (r *hudRow) read(snap core.ParameterSnapshot) {
	r.known = false
	r.display = "--"
	param, ok := snap.Lookup(r.ctrl.Key)
	if !ok {
		return
	}
	switch r.ctrl.Type {
	case core.ParamTypeBool:
		v, err := strconv.ParseBool(param.Value)
		if err != nil {
			return
		}
		r.on, r.known = v, true
		r.display = "off"
		if v {
			r.display = "on"
		}
	case core.ParamTypeInt:
		v, err := strconv.Atoi(param.Value)
		if err != nil {
			return
		}
		r.num, r.known = v, true
		r.display = param.Value
	}
}

func (h *HUD) click(pt image.Point) {
	for i := range h.rows {
		r := &h.rows[i]
		if !r.known {
			continue
		}
		switch {
		case pt.In(r.toggle) && h.bools != nil:
			if h.bools.SetBoolParameter(r.ctrl.Key, !r.on) {
				r.on = !r.on
			}
		case pt.In(r.dec):
			h.nudge(r, -1)
		case pt.In(r.inc):
			h.nudge(r, 1)
		default:
			continue
		}
		return
	}
}

func (h *HUD) nudge(r *hudRow, dir int) {
	if h.ints == nil {
		return
	}
	target, ok := r.target(dir)
	if ok && h.ints.SetIntParameter(r.ctrl.Key, target) {
		r.num = target
		r.display = strconv.Itoa(target)
	}
}

// target returns the value one step in dir and whether it differs from now.
func (r *hudRow) target(dir int) (int, bool) {
	step := max(r.ctrl.Step, 1)
	next := r.ctrl.Clamp(r.num + dir*step)
	return next, next != r.num
}

// Draw paints the panel at x = origin.
func (h *HUD) Draw(screen *ebiten.Image, origin int, height int) {
	if h == nil || h.width == 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.height != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.height = height
	}
	h.panel.Fill(hudBackground)

	face := basicfont.Face7x13
	text.Draw(h.panel, strings.ToUpper(h.sim.Name()), face, hudPad, hudTitleY, hudTitle)
	if len(h.rows) == 0 {
		text.Draw(h.panel, "nothing to adjust", face, hudPad, hudRowsTop+13, hudMuted)
	}
	for i := range h.rows {
		h.drawRow(&h.rows[i])
	}

	helpTop := height - hudPad - len(keyHelp)*hudHelpH
	if len(h.rows) == 0 || helpTop > h.rows[len(h.rows)-1].y+hudRowH {
		for i, line := range keyHelp {
			text.Draw(h.panel, line, face, hudPad, helpTop+(i+1)*hudHelpH, hudMuted)
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(origin), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawRow(r *hudRow) {
	face := basicfont.Face7x13
	baseline := r.y + hudRowH/2 + 5
	text.Draw(h.panel, r.ctrl.Label, face, hudPad, baseline, hudLabel)

	if r.ctrl.Type == core.ParamTypeBool {
		fill := hudButtonOff
		if r.known && r.on {
			fill = hudPillOn
		}
		h.drawButton(r.toggle, r.display, fill, r.known && h.bools != nil)
		return
	}

	valueColor := hudLabel
	if !r.known {
		valueColor = hudMuted
	}
	w := text.BoundString(face, r.display).Dx()
	text.Draw(h.panel, r.display, face, r.dec.Min.X-hudGap-w, baseline, valueColor)

	_, canDec := r.target(-1)
	_, canInc := r.target(1)
	live := r.known && h.ints != nil
	h.drawButton(r.dec, "-", hudButton, live && canDec)
	h.drawButton(r.inc, "+", hudButton, live && canInc)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, fill color.RGBA, enabled bool) {
	fg := hudLabel
	if !enabled {
		fill = hudButtonOff
		fg = hudMuted
	}
	vector.DrawFilledRect(h.panel, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), fill, false)
	b := text.BoundString(basicfont.Face7x13, label)
	x := rect.Min.X + (rect.Dx()-b.Dx())/2
	y := rect.Min.Y + (rect.Dy()+b.Dy())/2
	text.Draw(h.panel, label, basicfont.Face7x13, x, y, fg)
}
