// Package screens decides which of the device's views is on display.
package screens

import "life-matrix/internal/core"

// DefaultCycleMs is how long each screen stays up in auto mode.
const DefaultCycleMs = 3000

// Cycler rotates through a fixed list of screens. Pinning stops the rotation
// so a user can stay on one view.
type Cycler struct {
	names      []string
	cycle      core.Millis
	idx        int
	lastSwitch core.Millis
	started    bool
	pinned     bool
}

// NewCycler returns a cycler over names. A non-positive cycle uses DefaultCycleMs.
func NewCycler(cycleMs int, names ...string) *Cycler {
	if cycleMs <= 0 {
		cycleMs = DefaultCycleMs
	}
	return &Cycler{names: names, cycle: core.MillisOf(cycleMs)}
}

// Update advances the rotation and reports whether the screen changed.
func (c *Cycler) Update(now core.Millis) bool {
	if !c.started {
		c.started = true
		c.lastSwitch = now
		return false
	}
	if c.pinned || len(c.names) < 2 {
		return false
	}
	if !now.Reached(c.lastSwitch, c.cycle) {
		return false
	}
	c.idx = (c.idx + 1) % len(c.names)
	c.lastSwitch = now
	return true
}

// Current returns the name of the displayed screen.
func (c *Cycler) Current() string {
	if len(c.names) == 0 {
		return ""
	}
	return c.names[c.idx]
}

// IsShowing reports whether name is the displayed screen.
func (c *Cycler) IsShowing(name string) bool {
	return name != "" && c.Current() == name
}

// Step moves to the neighboring screen in direction and restarts its timer.
func (c *Cycler) Step(now core.Millis, direction int) {
	n := len(c.names)
	if n == 0 {
		return
	}
	c.idx = ((c.idx+direction)%n + n) % n
	c.lastSwitch = now
}

// Show jumps to name. It returns false when name is unknown.
func (c *Cycler) Show(now core.Millis, name string) bool {
	for i, n := range c.names {
		if n == name {
			c.idx = i
			c.lastSwitch = now
			return true
		}
	}
	return false
}

// Restart gives the current screen a full cycle starting at now.
func (c *Cycler) Restart(now core.Millis) { c.lastSwitch = now }

// SetPinned stops or resumes automatic rotation.
func (c *Cycler) SetPinned(pinned bool) { c.pinned = pinned }

// Pinned reports whether rotation is stopped.
func (c *Cycler) Pinned() bool { return c.pinned }

// Names returns the screens in rotation order.
func (c *Cycler) Names() []string { return c.names }
