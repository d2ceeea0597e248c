package life

import "life-matrix/internal/core"

// VisibilityGate measures how long the stability countdown has been running
// while the automaton was on display. Hidden time is excluded: losing
// visibility captures the elapsed span and regaining it rebases the start so
// that only the captured span carries over.
type VisibilityGate struct {
	visible bool
	running bool
	since   core.Millis
	frozen  core.Millis
}

// Observe feeds the current visibility. It returns true when the visibility
// changed while a countdown was running.
func (g *VisibilityGate) Observe(now core.Millis, visible bool) bool {
	if visible == g.visible {
		return false
	}
	g.visible = visible
	if !g.running {
		return false
	}
	if visible {
		g.since = now - g.frozen
	} else {
		g.frozen = now.Since(g.since)
	}
	return true
}

// Start begins a countdown at now.
func (g *VisibilityGate) Start(now core.Millis) {
	g.running = true
	g.since = now
	g.frozen = 0
}

// Stop discards the countdown.
func (g *VisibilityGate) Stop() {
	g.running = false
	g.since = 0
	g.frozen = 0
}

// Running reports whether a countdown is active.
func (g *VisibilityGate) Running() bool { return g.running }

// Visible reports the last observed visibility.
func (g *VisibilityGate) Visible() bool { return g.visible }

// Elapsed returns the visible time accrued by the countdown.
func (g *VisibilityGate) Elapsed(now core.Millis) core.Millis {
	if !g.running {
		return 0
	}
	if !g.visible {
		return g.frozen
	}
	return now.Since(g.since)
}
