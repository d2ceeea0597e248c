package app

import (
	"io"
	"log/slog"

	"life-matrix/internal/core"
	"life-matrix/internal/screens"
)

// Screen names shown by the hosts.
const (
	ScreenLife  = "life"
	ScreenStats = "stats"
)

// HistoryCap bounds the population history kept for the stats screen.
const HistoryCap = 120

type pausable interface {
	SetPaused(bool)
	Paused() bool
}

type forceResetter interface {
	ForceReset()
}

type speedCycler interface {
	CycleSpeed(direction int) int
}

type demoSwitch interface {
	SetDemoEnabled(bool)
	DemoEnabled() bool
}

type lifecycleDisplay interface {
	IsShowingDemo() bool
	IsShowingReset() bool
}

type populationReporter interface {
	Generation() int
	Population() int
}

// Host drives a sim from a frame loop. It owns the screen rotation, derives
// the sim's visibility from it and keeps a population history.
type Host struct {
	sim    core.Sim
	cycler *screens.Cycler
	log    *slog.Logger

	busy    bool
	wasHeld bool
	lastGen int
	history []int
}

// NewHost wires sim to a screen cycler rotating every cycleMs.
func NewHost(sim core.Sim, cycleMs int, log *slog.Logger) *Host {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Host{
		sim:     sim,
		cycler:  screens.NewCycler(cycleMs, ScreenLife, ScreenStats),
		log:     log,
		lastGen: -1,
	}
}

// Sim returns the hosted sim.
func (h *Host) Sim() core.Sim { return h.sim }

// Cycler returns the screen rotation.
func (h *Host) Cycler() *screens.Cycler { return h.cycler }

// Visible reports whether the sim's screen is on display.
func (h *Host) Visible() bool { return h.cycler.IsShowing(ScreenLife) }

// Frame advances the rotation and ticks the sim once. The rotation holds
// while the sim's screen is showing its demo card or reset animation.
func (h *Host) Frame(now core.Millis) {
	if !h.holding() && h.cycler.Update(now) {
		h.log.Debug("screen", "name", h.cycler.Current())
	}
	visible := h.Visible()
	h.sim.Tick(now, visible, h.busy)

	held := h.holding()
	// Give the freshly seeded world a full turn on screen.
	if h.wasHeld && !held && visible {
		h.cycler.Restart(now)
	}
	h.wasHeld = held
	h.record()
}

func (h *Host) holding() bool {
	d, ok := h.sim.(lifecycleDisplay)
	if !ok || !h.Visible() {
		return false
	}
	return d.IsShowingDemo() || d.IsShowingReset()
}

func (h *Host) record() {
	p, ok := h.sim.(populationReporter)
	if !ok {
		return
	}
	gen := p.Generation()
	if gen == h.lastGen {
		if n := len(h.history); n > 0 {
			h.history[n-1] = p.Population()
		}
		return
	}
	if gen < h.lastGen {
		h.history = h.history[:0]
	}
	h.lastGen = gen
	h.history = append(h.history, p.Population())
	if len(h.history) > HistoryCap {
		h.history = h.history[len(h.history)-HistoryCap:]
	}
}

// History returns the populations of recent generations, oldest first.
func (h *Host) History() []float64 {
	out := make([]float64, len(h.history))
	for i, v := range h.history {
		out[i] = float64(v)
	}
	return out
}

// SetBusy marks the host as occupied with other work. Busy frames do not
// advance the sim.
func (h *Host) SetBusy(busy bool) { h.busy = busy }

// Busy reports the busy flag.
func (h *Host) Busy() bool { return h.busy }

// TogglePause flips the sim's pause state and reports the new value.
func (h *Host) TogglePause() bool {
	p, ok := h.sim.(pausable)
	if !ok {
		return false
	}
	p.SetPaused(!p.Paused())
	return p.Paused()
}

// ForceReset starts the sim's reset sequence.
func (h *Host) ForceReset() {
	if r, ok := h.sim.(forceResetter); ok {
		r.ForceReset()
	}
}

// CycleSpeed steps the update interval preset and returns it in ms.
func (h *Host) CycleSpeed(direction int) int {
	if s, ok := h.sim.(speedCycler); ok {
		ms := s.CycleSpeed(direction)
		h.log.Debug("speed", "interval_ms", ms)
		return ms
	}
	return 0
}

// ToggleDemo flips whether resets show the demo card.
func (h *Host) ToggleDemo() bool {
	d, ok := h.sim.(demoSwitch)
	if !ok {
		return false
	}
	d.SetDemoEnabled(!d.DemoEnabled())
	return d.DemoEnabled()
}

// NextScreen moves the rotation in direction.
func (h *Host) NextScreen(now core.Millis, direction int) {
	h.cycler.Step(now, direction)
}

// TogglePin stops or resumes the rotation.
func (h *Host) TogglePin() bool {
	h.cycler.SetPinned(!h.cycler.Pinned())
	return h.cycler.Pinned()
}
