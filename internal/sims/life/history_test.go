package life

import (
	"testing"

	"life-matrix/internal/core"
)

func TestStabilityRequiresFullWindow(t *testing.T) {
	var tr StabilityTracker
	for i := 0; i < HistoryLen-1; i++ {
		tr.Record(0)
		if tr.IsStable() {
			t.Fatalf("stable after %d records", i+1)
		}
	}
	tr.Record(0)
	if !tr.Filled() || !tr.IsStable() {
		t.Fatal("expected 30 identical values to be stable")
	}
}

func TestStabilityClearsOnDifferingValue(t *testing.T) {
	var tr StabilityTracker
	for i := 0; i < HistoryLen; i++ {
		tr.Record(5)
	}
	if !tr.IsStable() {
		t.Fatal("expected stable window")
	}

	tr.Record(6)
	if tr.IsStable() {
		t.Fatal("a differing value must clear stability")
	}
	for i := 0; i < HistoryLen-2; i++ {
		tr.Record(6)
	}
	if tr.IsStable() {
		t.Fatal("an old value is still inside the window")
	}
	tr.Record(6)
	if !tr.IsStable() {
		t.Fatal("window flushed with a single value should be stable")
	}
}

func TestStabilityOscillationNotStable(t *testing.T) {
	var tr StabilityTracker
	for i := 0; i < 3*HistoryLen; i++ {
		tr.Record(10 + i%2)
	}
	if tr.IsStable() {
		t.Fatal("alternating populations must not be stable")
	}
	tr.Reset()
	if tr.Filled() || tr.IsStable() {
		t.Fatal("Reset must clear the window")
	}
}

func TestVisibilityGateExcludesHiddenTime(t *testing.T) {
	var g VisibilityGate
	g.Observe(0, true)
	g.Start(1000)

	if got := g.Elapsed(3000); got != 2000 {
		t.Fatalf("elapsed %d, want 2000", got)
	}
	if !g.Observe(3000, false) {
		t.Fatal("expected a pause to be reported")
	}
	if got := g.Elapsed(10000); got != 2000 {
		t.Fatalf("hidden time accrued: elapsed %d, want 2000", got)
	}
	g.Observe(10000, true)
	if got := g.Elapsed(11000); got != 3000 {
		t.Fatalf("elapsed after resume %d, want 3000", got)
	}
}

func TestVisibilityGateToggleIdempotent(t *testing.T) {
	var g VisibilityGate
	g.Observe(0, true)
	g.Start(100)

	for i := 0; i < 5; i++ {
		g.Observe(600, false)
		g.Observe(600, false)
		g.Observe(600, true)
		g.Observe(600, true)
	}
	if got := g.Elapsed(600); got != 500 {
		t.Fatalf("repeated toggles changed elapsed to %d, want 500", got)
	}
}

func TestVisibilityGateAcrossWrap(t *testing.T) {
	var g VisibilityGate
	start := core.Millis(0xFFFF_FF00)
	g.Observe(start, true)
	g.Start(start)

	hideAt := start + 0x180
	g.Observe(hideAt, false)
	g.Observe(hideAt+5000, true)
	if got := g.Elapsed(hideAt + 5000 + 0x80); got != 0x200 {
		t.Fatalf("elapsed across wrap %#x, want %#x", uint32(got), 0x200)
	}
}

func TestVisibilityGateIdleWhenStopped(t *testing.T) {
	var g VisibilityGate
	if g.Observe(10, true) {
		t.Fatal("visibility changes without a countdown are not pauses")
	}
	if got := g.Elapsed(5000); got != 0 {
		t.Fatalf("idle gate elapsed %d", got)
	}
	g.Start(100)
	g.Stop()
	if g.Running() || g.Elapsed(900) != 0 {
		t.Fatal("Stop must discard the countdown")
	}
}

func TestVisibilityGateStartWhileHidden(t *testing.T) {
	var g VisibilityGate
	g.Start(100)
	if got := g.Elapsed(5000); got != 0 {
		t.Fatalf("countdown started while hidden accrued %d", got)
	}
	g.Observe(5000, true)
	if got := g.Elapsed(5400); got != 400 {
		t.Fatalf("elapsed %d, want 400", got)
	}
}
