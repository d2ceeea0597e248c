package life

import (
	"errors"
	"fmt"
	"strings"

	"life-matrix/internal/core"
)

// Pattern selects how a world is seeded.
type Pattern int

const (
	// PatternAuto seeds mixed when complex patterns are enabled, random otherwise.
	PatternAuto Pattern = iota
	PatternRandom
	PatternRPentomino
	PatternAcorn
	PatternGlider
	PatternDiehard
	PatternMixed
)

const (
	randomDensityPercent = 30
	mixedNoisePercent    = 10
)

// ErrUnknownPattern is returned by ParsePattern for unrecognized names.
var ErrUnknownPattern = errors.New("unknown pattern")

// Offset is a cell position relative to a pattern anchor.
type Offset struct{ DX, DY int }

var patternNames = map[Pattern]string{
	PatternAuto:       "auto",
	PatternRandom:     "random",
	PatternRPentomino: "r-pentomino",
	PatternAcorn:      "acorn",
	PatternGlider:     "glider",
	PatternDiehard:    "diehard",
	PatternMixed:      "mixed",
}

var shapes = map[Pattern][]Offset{
	//  XX
	// XX
	//  X
	PatternRPentomino: {{1, 0}, {2, 0}, {0, 1}, {1, 1}, {1, 2}},
	//  X
	//    X
	// XX  XXX
	PatternAcorn: {{1, 0}, {3, 1}, {0, 2}, {1, 2}, {4, 2}, {5, 2}, {6, 2}},
	//  X
	//   X
	// XXX
	PatternGlider: {{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}},
	//       X
	// XX
	//  X   XXX
	PatternDiehard: {{6, 0}, {0, 1}, {1, 1}, {1, 2}, {5, 2}, {6, 2}, {7, 2}},
}

type placement struct {
	pattern Pattern
	x, y    int
}

// mixedLayout is the set of shapes placed by PatternMixed before noise is added.
var mixedLayout = []placement{
	{PatternRPentomino, 5, 15},
	{PatternAcorn, 10, 50},
	{PatternDiehard, 15, 85},
	{PatternGlider, 3, 10},
	{PatternGlider, 20, 30},
	{PatternGlider, 8, 100},
}

func (p Pattern) String() string {
	if name, ok := patternNames[p]; ok {
		return name
	}
	return fmt.Sprintf("pattern(%d)", int(p))
}

// Next returns the following pattern in declaration order, wrapping after
// PatternMixed.
func (p Pattern) Next() Pattern {
	return (p + 1) % (PatternMixed + 1)
}

// Offsets returns the cells of a fixed-shape pattern. Random, mixed and auto
// have no fixed shape and return nil.
func (p Pattern) Offsets() []Offset {
	return shapes[p]
}

// ParsePattern resolves a pattern by name.
func ParsePattern(name string) (Pattern, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, "_", "-")
	for p, n := range patternNames {
		if n == key {
			return p, nil
		}
	}
	return PatternAuto, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
}

// Place sets every cell of p, anchored at (x, y), to age 1. Cells outside the
// grid are dropped.
func Place(s *GridStore, x, y int, p Pattern) {
	for _, o := range p.Offsets() {
		s.Set(x+o.DX, y+o.DY, 1)
	}
}

// Sprinkle brings each cell to life with the given probability in percent.
func Sprinkle(s *GridStore, rng *core.RNG, percent int) {
	size := s.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if rng.Chance(percent) {
				s.Set(x, y, 1)
			}
		}
	}
}

// Seed clears the current grid and fills it according to p.
func Seed(s *GridStore, rng *core.RNG, p Pattern) {
	s.Clear()
	switch p {
	case PatternRandom, PatternAuto:
		Sprinkle(s, rng, randomDensityPercent)
	case PatternMixed:
		for _, pl := range mixedLayout {
			Place(s, pl.x, pl.y, pl.pattern)
		}
		Sprinkle(s, rng, mixedNoisePercent)
	default:
		size := s.Size()
		Place(s, size.W/2-3, size.H/2-3, p)
	}
}
