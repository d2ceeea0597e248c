package app

import (
	"flag"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"life-matrix/internal/core"
	"life-matrix/internal/screens"
)

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Map returns the pairs as a map. Entries without '=' are skipped and later
// keys win.
func (l KVList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		if key == "" {
			continue
		}
		out[key] = strings.TrimSpace(parts[1])
	}
	return out
}

// Config represents the command-line parameters for the application.
type Config struct {
	Sim      string
	Scale    int
	TPS      int
	Seed     int64
	HUDWidth int
	CycleMs  int
	Verbose  bool
	Set      KVList

	// ClockOffset is the first millisecond reading. Values near 2^32 make
	// the clock wrap shortly after start.
	ClockOffset uint
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "life", Scale: 6, TPS: 60, Seed: 42, HUDWidth: 220, CycleMs: screens.DefaultCycleMs}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "parameter panel width in pixels (0 hides it)")
	fs.IntVar(&c.CycleMs, "cycle", c.CycleMs, "milliseconds each screen stays up")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log lifecycle events to stderr")
	fs.UintVar(&c.ClockOffset, "clock-offset", c.ClockOffset, "initial millisecond clock reading")
	fs.Var(&c.Set, "set", "sim parameter override in key=value form (repeatable)")
}

// SimConfig returns the map handed to the sim factory. The -seed flag is
// applied unless an explicit seed override was given.
func (c *Config) SimConfig() map[string]string {
	m := c.Set.Map()
	if _, ok := m["seed"]; !ok {
		m["seed"] = strconv.FormatInt(c.Seed, 10)
	}
	return m
}

// Clock returns the host clock starting at ClockOffset.
func (c *Config) Clock() *core.Clock {
	return core.NewClockAt(core.Millis(uint32(c.ClockOffset)))
}

// Logger returns a text logger on stderr when verbose, otherwise a logger
// that drops everything.
func (c *Config) Logger() *slog.Logger {
	return NewLogger(os.Stderr, c.Verbose)
}

// NewLogger builds the debug logger used by the hosts.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		w = io.Discard
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
