package life

import (
	"strconv"

	"life-matrix/internal/core"
)

// Parameters reports the tunables shown on the HUD.
func (a *Automaton) Parameters() core.ParameterSnapshot {
	c := a.cfg
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", c.Width),
				intParam("h", "Height", c.Height),
				int64Param("seed", "Seed", c.Seed),
				{Key: "pattern", Label: "Pattern", Value: c.Pattern.String()},
			},
		},
		{
			Name: "Pacing",
			Params: []core.Parameter{
				intParam("update_interval_ms", "Interval ms", c.UpdateIntervalMs),
				boolParam("complex_patterns", "Complex seeds", c.ComplexPatterns),
			},
		},
		{
			Name: "Lifecycle",
			Params: []core.Parameter{
				boolParam("auto_reset_on_stable", "Auto reset", c.AutoResetOnStable),
				intParam("stability_timeout_ms", "Timeout ms", c.StabilityTimeoutMs),
				boolParam("demo", "Demo card", c.DemoEnabled),
				intParam("low_population_floor", "Low pop floor", c.LowPopulationFloor),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable parameters.
func (a *Automaton) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "update_interval_ms", Label: "Interval ms", Type: core.ParamTypeInt, Step: 50, Min: MinUpdateIntervalMs, Max: 2000, HasMin: true, HasMax: true},
		{Key: "stability_timeout_ms", Label: "Timeout ms", Type: core.ParamTypeInt, Step: 5000, Min: 0, Max: 300000, HasMin: true, HasMax: true},
		{Key: "complex_patterns", Label: "Complex seeds", Type: core.ParamTypeBool},
		{Key: "auto_reset_on_stable", Label: "Auto reset", Type: core.ParamTypeBool},
		{Key: "demo", Label: "Demo card", Type: core.ParamTypeBool},
	}
}

// SetIntParameter applies an integer parameter change from the HUD.
func (a *Automaton) SetIntParameter(key string, value int) bool {
	switch key {
	case "update_interval_ms":
		a.SetUpdateInterval(value)
	case "stability_timeout_ms":
		a.SetStabilityTimeout(value)
	default:
		return false
	}
	return true
}

// SetBoolParameter applies a boolean parameter change from the HUD.
func (a *Automaton) SetBoolParameter(key string, value bool) bool {
	switch key {
	case "complex_patterns":
		a.SetComplexPatterns(value)
	case "auto_reset_on_stable":
		a.SetAutoReset(value)
	case "demo":
		a.SetDemoEnabled(value)
	default:
		return false
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
