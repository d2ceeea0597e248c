package app

import (
	"testing"

	"life-matrix/internal/core"
	"life-matrix/internal/sims/life"
)

func hostConfig() life.Config {
	cfg := life.DefaultConfig()
	cfg.Width = 16
	cfg.Height = 16
	cfg.Pattern = life.PatternRandom
	cfg.LowPopulationFloor = 0
	cfg.DemoEnabled = true
	cfg.DemoMs = 2000
	return cfg
}

func TestHostRestartsRotationWhenDemoEnds(t *testing.T) {
	sim := life.New(hostConfig())
	h := NewHost(sim, 3000, nil)

	h.Frame(0)
	if !h.Visible() || !sim.IsShowingDemo() {
		t.Fatalf("expected demo on the life screen, visible=%v state=%s", h.Visible(), sim.State())
	}
	h.Frame(2000)
	if sim.State() != life.StateLive {
		t.Fatalf("expected live after the demo, got %s", sim.State())
	}
	h.Frame(4999)
	if !h.Visible() {
		t.Fatal("rotation should restart when the seeded world first appears")
	}
	h.Frame(5000)
	if h.Visible() || h.Cycler().Current() != ScreenStats {
		t.Fatalf("expected stats screen, got %q", h.Cycler().Current())
	}
}

func TestHostHiddenScreenFreezesGenerations(t *testing.T) {
	cfg := hostConfig()
	cfg.DemoEnabled = false
	sim := life.New(cfg)
	h := NewHost(sim, 1000, nil)

	h.Frame(0)
	h.Frame(200)
	if sim.Generation() != 1 {
		t.Fatalf("generation %d, want 1", sim.Generation())
	}
	h.Frame(1000)
	gen := sim.Generation()
	for now := core.Millis(1200); now < 2000; now += 200 {
		h.Frame(now)
	}
	if sim.Generation() != gen {
		t.Fatalf("generations advanced while the stats screen was up: %d -> %d", gen, sim.Generation())
	}
}

func TestHostBusyFramesDoNotAdvance(t *testing.T) {
	cfg := hostConfig()
	cfg.DemoEnabled = false
	sim := life.New(cfg)
	h := NewHost(sim, 60000, nil)

	h.Frame(0)
	h.SetBusy(true)
	h.Frame(200)
	h.Frame(400)
	if sim.Generation() != 0 || !h.Busy() {
		t.Fatalf("busy frames advanced to generation %d", sim.Generation())
	}
	h.SetBusy(false)
	h.Frame(600)
	if sim.Generation() != 1 {
		t.Fatalf("generation %d, want 1", sim.Generation())
	}
}

func TestHostHistoryTracksGenerations(t *testing.T) {
	cfg := hostConfig()
	sim := life.New(cfg)
	h := NewHost(sim, 60000, nil)

	h.Frame(0)
	h.Frame(2000)
	h.Frame(2200)
	h.Frame(2400)
	hist := h.History()
	if len(hist) != 3 {
		t.Fatalf("history %v, want 3 entries", hist)
	}
	if hist[2] != float64(sim.Population()) {
		t.Fatalf("last entry %v, population %d", hist[2], sim.Population())
	}
}

func TestHostControls(t *testing.T) {
	sim := life.New(hostConfig())
	h := NewHost(sim, 3000, nil)
	h.Frame(0)

	if !h.TogglePause() || !sim.Paused() {
		t.Fatal("expected paused")
	}
	if h.TogglePause() {
		t.Fatal("expected unpaused")
	}
	if h.ToggleDemo() || sim.DemoEnabled() {
		t.Fatal("expected demo disabled")
	}
	if got := h.CycleSpeed(1); got != 1000 {
		t.Fatalf("speed %d, want 1000", got)
	}
	if !h.TogglePin() || !h.Cycler().Pinned() {
		t.Fatal("expected pinned rotation")
	}
	h.NextScreen(100, 1)
	if h.Cycler().Current() != ScreenStats {
		t.Fatalf("screen %q, want stats", h.Cycler().Current())
	}
	h.ForceReset()
	if !sim.IsShowingReset() {
		t.Fatalf("expected reset animation, got %s", sim.State())
	}
}

func TestHostHoldsRotationForFullDemo(t *testing.T) {
	sim := life.New(life.DefaultConfig())
	h := NewHost(sim, 3000, nil)

	shown := core.Millis(0)
	for now := core.Millis(0); now < 5000; now += 100 {
		h.Frame(now)
		if !h.Visible() {
			t.Fatalf("t=%d: rotated to %q during the demo", now, h.Cycler().Current())
		}
		if sim.IsShowingDemo() {
			shown += 100
		}
	}
	if shown != 5000 {
		t.Fatalf("demo card visible for %d ms, want 5000", shown)
	}
	h.Frame(5000)
	if sim.State() != life.StateLive || !h.Visible() {
		t.Fatalf("t=5000: state %s visible=%v", sim.State(), h.Visible())
	}
	for now := core.Millis(5100); now < 8000; now += 100 {
		h.Frame(now)
		if !h.Visible() {
			t.Fatalf("t=%d: seeded world left the screen early", now)
		}
	}
	h.Frame(8000)
	if h.Cycler().Current() != ScreenStats {
		t.Fatalf("t=8000: screen %q, want stats", h.Cycler().Current())
	}
}

func TestHostHoldsRotationDuringReset(t *testing.T) {
	cfg := hostConfig()
	cfg.DemoEnabled = false
	cfg.ResetAnimationMs = 1000
	sim := life.New(cfg)
	h := NewHost(sim, 3000, nil)

	for now := core.Millis(0); now <= 2500; now += 100 {
		h.Frame(now)
	}
	h.ForceReset()
	for now := core.Millis(2600); now < 3500; now += 100 {
		h.Frame(now)
		if !h.Visible() || !sim.IsShowingReset() {
			t.Fatalf("t=%d: visible=%v state=%s", now, h.Visible(), sim.State())
		}
	}
	h.Frame(3500)
	if sim.State() != life.StateLive {
		t.Fatalf("t=3500: state %s, want live", sim.State())
	}
	h.Frame(6400)
	if !h.Visible() {
		t.Fatal("rotation should restart when the reset animation ends")
	}
	h.Frame(6500)
	if h.Visible() {
		t.Fatal("expected the stats screen a full cycle after the reset")
	}
}

func TestHostRotatesDuringResetWhenHidden(t *testing.T) {
	cfg := hostConfig()
	cfg.DemoEnabled = false
	sim := life.New(cfg)
	h := NewHost(sim, 1000, nil)

	h.Frame(0)
	h.Frame(1000)
	if h.Visible() {
		t.Fatal("expected stats screen")
	}
	h.ForceReset()
	h.Frame(1100)
	if !sim.IsShowingReset() {
		t.Fatalf("state %s, want reset", sim.State())
	}
	h.Frame(2000)
	if !h.Visible() {
		t.Fatal("hidden reset should not hold the rotation")
	}
}
