package life

import "life-matrix/internal/core"

// GridStore owns the two equally sized age grids. One slot is current and
// visible to readers, the other is the back buffer a generation is written
// into. Swap flips the active index; no cells are copied.
type GridStore struct {
	slots  [2]*core.ByteGrid
	active int
}

// NewGridStore allocates two zeroed w*h grids.
func NewGridStore(w, h int) *GridStore {
	s := &GridStore{}
	s.Reset(w, h)
	return s
}

// Reset reallocates both grids zeroed. It must not be called during a pass.
func (s *GridStore) Reset(w, h int) {
	s.slots[0] = core.NewByteGrid(w, h)
	s.slots[1] = core.NewByteGrid(w, h)
	s.active = 0
}

// Size returns the grid dimensions.
func (s *GridStore) Size() core.Size {
	g := s.slots[s.active]
	return core.Size{W: g.W, H: g.H}
}

// Current returns the grid readers see.
func (s *GridStore) Current() *core.ByteGrid { return s.slots[s.active] }

// Back returns the scratch grid the next generation is computed into.
func (s *GridStore) Back() *core.ByteGrid { return s.slots[1-s.active] }

// Get returns the age at (x, y) of the current grid, 0 outside bounds.
func (s *GridStore) Get(x, y int) uint8 { return s.Current().At(x, y) }

// Set writes age at (x, y) of the current grid. Out of bounds writes are dropped.
func (s *GridStore) Set(x, y int, age uint8) { s.Current().Set(x, y, age) }

// NeighborCount returns the number of live cells in the Moore neighborhood of
// (x, y). Neighbor coordinates always wrap around the grid edges.
func (s *GridStore) NeighborCount(x, y int) int {
	g := s.Current()
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := g.Wrap(x+dx, y+dy)
			if g.At(nx, ny) > 0 {
				n++
			}
		}
	}
	return n
}

// Swap makes the back grid current.
func (s *GridStore) Swap() { s.active = 1 - s.active }

// Clear zeroes the current grid.
func (s *GridStore) Clear() { s.Current().Clear() }

// Population counts live cells in the current grid.
func (s *GridStore) Population() int { return s.Current().Count() }
