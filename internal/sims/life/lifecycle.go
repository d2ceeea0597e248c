package life

import (
	"io"
	"log/slog"

	"life-matrix/internal/core"
)

// State is the lifecycle phase of the automaton.
type State uint8

const (
	// StateDemo shows the rules card; the grid is frozen until the demo ends
	// and the world is seeded.
	StateDemo State = iota
	// StateLive advances a generation every update interval while visible.
	StateLive
	// StateStableCountdown keeps advancing but counts visible time toward
	// the stability timeout.
	StateStableCountdown
	// StateResetAnimation suspends updates while the reset animation plays.
	StateResetAnimation
)

func (s State) String() string {
	switch s {
	case StateDemo:
		return "demo"
	case StateLive:
		return "live"
	case StateStableCountdown:
		return "stable"
	case StateResetAnimation:
		return "reset"
	default:
		return "unknown"
	}
}

// Reason explains why a run ended.
type Reason string

const (
	ReasonExtinct       Reason = "extinct"
	ReasonLowPopulation Reason = "low-population"
	ReasonRepeating     Reason = "repeating"
)

// Summary describes a run at the moment it went extinct or became stable.
type Summary struct {
	Generation int
	Population int
	Reason     Reason
}

// speedPresets are the update intervals CycleSpeed steps through.
var speedPresets = []int{50, 200, 1000}

// Option customizes an Automaton.
type Option func(*Automaton)

// WithLogger routes lifecycle events to l.
func WithLogger(l *slog.Logger) Option {
	return func(a *Automaton) {
		if l != nil {
			a.log = l
		}
	}
}

// WithYield installs the cooperative yield hook called between rows of a pass.
func WithYield(fn func()) Option {
	return func(a *Automaton) { a.yield = fn }
}

// WithSummaryHook registers fn to receive the summary of every finished run.
func WithSummaryHook(fn func(Summary)) Option {
	return func(a *Automaton) { a.onSummary = fn }
}

// Automaton runs the Game of Life lifecycle: demo, live generations,
// stability countdown and reset. All methods must be called from the host's
// single tick goroutine.
type Automaton struct {
	cfg  Config
	log  *slog.Logger
	rng  *core.RNG
	grid *GridStore

	tracker StabilityTracker
	gate    VisibilityGate

	state      State
	started    bool
	generation int
	stats      Stats

	now         core.Millis
	lastUpdate  core.Millis
	windowStart core.Millis

	paused       bool
	inPass       bool
	pendingReset bool
	pendingSize  *core.Size

	summary    Summary
	hasSummary bool

	yield     func()
	onSummary func(Summary)
}

// New returns an automaton for cfg. The lifecycle starts on the first Tick.
func New(cfg Config, opts ...Option) *Automaton {
	a := &Automaton{
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.cfg = a.sanitize(cfg)
	a.rng = core.NewRNG(a.cfg.Seed)
	a.grid = NewGridStore(a.cfg.Width, a.cfg.Height)
	a.state = StateDemo
	return a
}

func (a *Automaton) sanitize(cfg Config) Config {
	clean := cfg.Sanitized()
	if clean != cfg {
		a.log.Debug("config clamped",
			"w", clean.Width, "h", clean.Height,
			"update_interval_ms", clean.UpdateIntervalMs,
			"stability_timeout_ms", clean.StabilityTimeoutMs,
			"yield_rows", clean.YieldRows)
	}
	return clean
}

// Name returns the simulation identifier.
func (a *Automaton) Name() string { return "life" }

// Size returns the grid dimensions.
func (a *Automaton) Size() core.Size { return a.grid.Size() }

// Cells exposes the current age grid in row-major order. Callers must not
// modify it.
func (a *Automaton) Cells() []uint8 { return a.grid.Current().Cells() }

// Cell returns the age at (x, y), 0 outside the grid.
func (a *Automaton) Cell(x, y int) uint8 { return a.grid.Get(x, y) }

// Reset reseeds the RNG and starts a fresh live world immediately, skipping
// the demo and reset animation. A zero seed reuses the configured seed. When
// called from inside a pass it degrades to ForceReset.
func (a *Automaton) Reset(seed int64) {
	if seed == 0 {
		seed = a.cfg.Seed
	}
	a.rng = core.NewRNG(seed)
	a.started = true
	if a.inPass {
		a.pendingReset = true
		return
	}
	a.seedWorld(a.now)
}

// Tick is the per-frame entry point. now is the host's millisecond counter,
// visible reports whether the automaton's screen is displayed and busy
// whether the host is occupied with background work such as a firmware
// update; a busy tick is ignored entirely.
func (a *Automaton) Tick(now core.Millis, visible, busy bool) {
	if busy {
		return
	}
	a.now = now
	if !a.started {
		a.started = true
		a.restart(now)
	}

	active := visible && !a.paused
	if a.gate.Observe(now, active) {
		if active {
			a.log.Debug("resuming stability countdown", "elapsed_ms", uint32(a.gate.Elapsed(now)))
		} else {
			a.log.Debug("pausing stability countdown", "elapsed_ms", uint32(a.gate.Elapsed(now)))
		}
	}

	switch a.state {
	case StateResetAnimation:
		if now.Reached(a.windowStart, core.MillisOf(a.cfg.ResetAnimationMs)) {
			a.restart(now)
		}
		return
	case StateDemo:
		if now.Reached(a.windowStart, core.MillisOf(a.cfg.DemoMs)) {
			a.seedWorld(now)
		}
		return
	}

	if !active {
		return
	}
	if now.Reached(a.lastUpdate, core.MillisOf(a.cfg.UpdateIntervalMs)) {
		a.step(now)
	}

	if a.state == StateStableCountdown && a.cfg.AutoResetOnStable {
		elapsed := a.gate.Elapsed(now)
		if elapsed >= core.MillisOf(a.cfg.StabilityTimeoutMs) {
			a.log.Debug("auto-reset after stability timeout",
				"elapsed_ms", uint32(elapsed), "generation", a.generation)
			a.beginReset(now)
		}
	}
}

// restart enters the demo when enabled, otherwise seeds straight into live.
func (a *Automaton) restart(now core.Millis) {
	if a.cfg.DemoEnabled {
		a.state = StateDemo
		a.windowStart = now
		return
	}
	a.seedWorld(now)
}

func (a *Automaton) step(now core.Millis) {
	a.lastUpdate = now

	a.inPass = true
	st := Advance(a.grid, a.cfg.YieldRows, a.yield)
	a.inPass = false

	a.stats = st
	a.generation++
	a.tracker.Record(st.Population)

	if a.pendingReset {
		a.pendingReset = false
		a.log.Debug("applying reset requested during pass", "generation", a.generation)
		a.beginReset(now)
		return
	}
	a.evaluate(now)
}

func (a *Automaton) evaluate(now core.Millis) {
	pop := a.stats.Population
	switch {
	case pop == 0:
		a.log.Debug("world extinct", "generation", a.generation)
		a.finishRun(ReasonExtinct)
		a.beginReset(now)
	case a.cfg.AutoResetOnStable && pop < a.cfg.LowPopulationFloor:
		a.markStable(now, ReasonLowPopulation)
	case a.tracker.IsStable():
		a.markStable(now, ReasonRepeating)
	default:
		if a.state == StateStableCountdown {
			a.log.Debug("population changed, leaving countdown", "generation", a.generation, "population", pop)
		}
		a.state = StateLive
		a.gate.Stop()
	}
}

func (a *Automaton) markStable(now core.Millis, reason Reason) {
	if a.state == StateStableCountdown {
		return
	}
	a.state = StateStableCountdown
	a.gate.Start(now)
	a.log.Debug("world stable", "reason", string(reason),
		"generation", a.generation, "population", a.stats.Population)
	a.finishRun(reason)
}

func (a *Automaton) finishRun(reason Reason) {
	a.summary = Summary{Generation: a.generation, Population: a.stats.Population, Reason: reason}
	a.hasSummary = true
	if a.onSummary != nil {
		a.onSummary(a.summary)
	}
}

// beginReset starts the reset animation. Grid, generation and statistics are
// left untouched until the animation ends.
func (a *Automaton) beginReset(now core.Millis) {
	a.state = StateResetAnimation
	a.windowStart = now
	a.gate.Stop()
}

func (a *Automaton) seedWorld(now core.Millis) {
	if a.pendingSize != nil {
		a.cfg.Width, a.cfg.Height = a.pendingSize.W, a.pendingSize.H
		a.grid.Reset(a.cfg.Width, a.cfg.Height)
		a.pendingSize = nil
	}
	pattern := a.seedPattern()
	Seed(a.grid, a.rng, pattern)

	a.generation = 0
	pop := a.grid.Population()
	a.stats = Stats{Population: pop}
	if pop > 0 {
		a.stats.MaxAge = 1
	}
	a.tracker.Reset()
	a.gate.Stop()
	a.lastUpdate = now
	a.state = StateLive

	size := a.grid.Size()
	a.log.Debug("seeded world", "pattern", pattern.String(), "w", size.W, "h", size.H, "population", pop)
}

func (a *Automaton) seedPattern() Pattern {
	if a.cfg.Pattern != PatternAuto {
		return a.cfg.Pattern
	}
	if a.cfg.ComplexPatterns {
		return PatternMixed
	}
	return PatternRandom
}

// ForceReset starts the reset animation. A request made while a generation
// is being computed takes effect once the pass has been swapped in.
func (a *Automaton) ForceReset() {
	a.started = true
	if a.inPass {
		a.pendingReset = true
		return
	}
	a.log.Debug("forced reset", "generation", a.generation)
	a.beginReset(a.now)
}

// Resize schedules new grid dimensions. They take effect when the world is
// next seeded; a reset is started to get there.
func (a *Automaton) Resize(w, h int) {
	c := a.cfg
	c.Width, c.Height = w, h
	c = a.sanitize(c)
	a.pendingSize = &core.Size{W: c.Width, H: c.Height}
	a.ForceReset()
}

// SetPattern selects the seeding pattern and starts a reset to apply it.
func (a *Automaton) SetPattern(p Pattern) {
	c := a.cfg
	c.Pattern = p
	a.cfg = a.sanitize(c)
	a.ForceReset()
}

// SetDemoEnabled toggles the demo card. Disabling it while the demo is on
// screen seeds the world right away.
func (a *Automaton) SetDemoEnabled(enabled bool) {
	a.cfg.DemoEnabled = enabled
	if !enabled && a.started && a.state == StateDemo {
		a.seedWorld(a.now)
	}
}

// SetUpdateInterval changes the generation interval, clamped to MinUpdateIntervalMs.
func (a *Automaton) SetUpdateInterval(ms int) {
	c := a.cfg
	c.UpdateIntervalMs = ms
	a.cfg = a.sanitize(c)
}

// SetStabilityTimeout changes how long a stable world is shown before it resets.
func (a *Automaton) SetStabilityTimeout(ms int) {
	c := a.cfg
	c.StabilityTimeoutMs = ms
	a.cfg = a.sanitize(c)
}

// SetComplexPatterns chooses between mixed and random seeding for later resets.
func (a *Automaton) SetComplexPatterns(enabled bool) { a.cfg.ComplexPatterns = enabled }

// SetAutoReset toggles resetting after the stability timeout.
func (a *Automaton) SetAutoReset(enabled bool) { a.cfg.AutoResetOnStable = enabled }

// SetPaused stops generations and freezes the stability countdown.
func (a *Automaton) SetPaused(paused bool) { a.paused = paused }

// CycleSpeed steps the update interval through the speed presets in the
// given direction. Intervals outside the presets are treated as 200 ms.
func (a *Automaton) CycleSpeed(direction int) int {
	idx := 1
	for i, ms := range speedPresets {
		if ms == a.cfg.UpdateIntervalMs {
			idx = i
			break
		}
	}
	n := len(speedPresets)
	idx = ((idx+direction)%n + n) % n
	a.SetUpdateInterval(speedPresets[idx])
	return a.cfg.UpdateIntervalMs
}

// Config returns the active configuration.
func (a *Automaton) Config() Config { return a.cfg }

// SetLogger replaces the event logger. A nil logger is ignored.
func (a *Automaton) SetLogger(l *slog.Logger) {
	if l != nil {
		a.log = l
	}
}

// Pattern returns the configured seed pattern.
func (a *Automaton) Pattern() Pattern { return a.cfg.Pattern }

// DemoEnabled reports whether resets show the demo card.
func (a *Automaton) DemoEnabled() bool { return a.cfg.DemoEnabled }

// Paused reports whether generations are paused.
func (a *Automaton) Paused() bool { return a.paused }

// State returns the lifecycle phase.
func (a *Automaton) State() State { return a.state }

// Generation returns the number of generations since the last seeding.
func (a *Automaton) Generation() int { return a.generation }

// Population returns the live cell count of the current grid.
func (a *Automaton) Population() int { return a.stats.Population }

// Births returns the cells born in the last generation.
func (a *Automaton) Births() int { return a.stats.Births }

// Deaths returns the cells that died in the last generation.
func (a *Automaton) Deaths() int { return a.stats.Deaths }

// MaxAge returns the oldest cell age after the last generation.
func (a *Automaton) MaxAge() int { return a.stats.MaxAge }

// Stats returns the statistics of the last generation.
func (a *Automaton) Stats() Stats { return a.stats }

// IsStable reports whether the stability countdown is running.
func (a *Automaton) IsStable() bool { return a.state == StateStableCountdown }

// IsShowingDemo reports whether the demo card is on screen.
func (a *Automaton) IsShowingDemo() bool { return a.state == StateDemo }

// IsShowingReset reports whether the reset animation is playing.
func (a *Automaton) IsShowingReset() bool { return a.state == StateResetAnimation }

// ResetAnimationElapsed returns how long the reset animation has been playing.
func (a *Automaton) ResetAnimationElapsed(now core.Millis) core.Millis {
	if a.state != StateResetAnimation {
		return 0
	}
	return now.Since(a.windowStart)
}

// ResetProgress returns the reset animation's completed fraction in [0,1].
func (a *Automaton) ResetProgress(now core.Millis) float64 {
	if a.state != StateResetAnimation {
		return 0
	}
	window := a.cfg.ResetAnimationMs
	if window <= 0 {
		return 1
	}
	p := float64(a.ResetAnimationElapsed(now)) / float64(window)
	if p > 1 {
		p = 1
	}
	return p
}

// DemoElapsed returns how long the demo card has been shown.
func (a *Automaton) DemoElapsed(now core.Millis) core.Millis {
	if a.state != StateDemo || !a.started {
		return 0
	}
	return now.Since(a.windowStart)
}

// StableElapsed returns the visible time accrued by the stability countdown.
func (a *Automaton) StableElapsed(now core.Millis) core.Millis {
	return a.gate.Elapsed(now)
}

// SecondsRemaining returns the whole seconds left on the stability countdown.
func (a *Automaton) SecondsRemaining(now core.Millis) int {
	if a.state != StateStableCountdown {
		return 0
	}
	left := a.cfg.StabilityTimeoutMs/1000 - int(a.gate.Elapsed(now)/1000)
	if left < 0 {
		return 0
	}
	return left
}

// LastSummary returns the summary of the most recently finished run.
func (a *Automaton) LastSummary() (Summary, bool) { return a.summary, a.hasSummary }

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
