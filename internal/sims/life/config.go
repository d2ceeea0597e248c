package life

import "strconv"

const (
	// MinUpdateIntervalMs is the shortest accepted generation interval.
	MinUpdateIntervalMs = 10
	// MinGridSize and MaxGridSize bound each grid dimension.
	MinGridSize = 8
	MaxGridSize = 256
	// DefaultLowPopulationFloor marks worlds below this population as stable
	// without waiting for the history window. It was tuned for a 32x120 panel.
	DefaultLowPopulationFloor = 58
	// DefaultYieldRows is the number of rows processed between cooperative yields.
	DefaultYieldRows = 30
)

// Config controls the automaton dimensions, pacing and lifecycle.
type Config struct {
	Width  int
	Height int

	Seed int64

	UpdateIntervalMs   int
	ComplexPatterns    bool
	AutoResetOnStable  bool
	StabilityTimeoutMs int

	DemoEnabled      bool
	DemoMs           int
	ResetAnimationMs int

	LowPopulationFloor int
	YieldRows          int

	// Pattern overrides the seeding mode. PatternAuto picks mixed or random
	// from ComplexPatterns.
	Pattern Pattern
}

// DefaultConfig returns the standard configuration of the 32x120 panel.
func DefaultConfig() Config {
	return Config{
		Width:              32,
		Height:             120,
		Seed:               1,
		UpdateIntervalMs:   200,
		ComplexPatterns:    true,
		AutoResetOnStable:  true,
		StabilityTimeoutMs: 60000,
		DemoEnabled:        true,
		DemoMs:             5000,
		ResetAnimationMs:   1000,
		LowPopulationFloor: DefaultLowPopulationFloor,
		YieldRows:          DefaultYieldRows,
		Pattern:            PatternAuto,
	}
}

// Sanitized returns a copy with every field clamped to a safe value.
func (c Config) Sanitized() Config {
	c.Width = clampInt(c.Width, MinGridSize, MaxGridSize)
	c.Height = clampInt(c.Height, MinGridSize, MaxGridSize)
	if c.UpdateIntervalMs < MinUpdateIntervalMs {
		c.UpdateIntervalMs = MinUpdateIntervalMs
	}
	if c.StabilityTimeoutMs < 0 {
		c.StabilityTimeoutMs = 0
	}
	if c.DemoMs < 0 {
		c.DemoMs = 0
	}
	if c.ResetAnimationMs < 0 {
		c.ResetAnimationMs = 0
	}
	if c.LowPopulationFloor < 0 {
		c.LowPopulationFloor = 0
	}
	if c.YieldRows <= 0 {
		c.YieldRows = DefaultYieldRows
	}
	if c.Pattern < PatternAuto || c.Pattern > PatternMixed {
		c.Pattern = PatternAuto
	}
	return c
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Values that fail to parse are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["update_interval_ms"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.UpdateIntervalMs = parsed
		}
	}
	if v, ok := cfg["complex_patterns"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.ComplexPatterns = parsed
		}
	}
	if v, ok := cfg["auto_reset_on_stable"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.AutoResetOnStable = parsed
		}
	}
	if v, ok := cfg["stability_timeout_ms"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.StabilityTimeoutMs = parsed
		}
	}
	if v, ok := cfg["demo"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.DemoEnabled = parsed
		}
	}
	if v, ok := cfg["demo_ms"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.DemoMs = parsed
		}
	}
	if v, ok := cfg["reset_animation_ms"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.ResetAnimationMs = parsed
		}
	}
	if v, ok := cfg["low_population_floor"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.LowPopulationFloor = parsed
		}
	}
	if v, ok := cfg["yield_rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.YieldRows = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok {
		if parsed, err := ParsePattern(v); err == nil {
			c.Pattern = parsed
		}
	}
	return c
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
