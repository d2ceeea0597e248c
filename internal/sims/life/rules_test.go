package life

import (
	"slices"
	"testing"

	"life-matrix/internal/core"
)

func liveSet(s *GridStore) map[[2]int]bool {
	out := map[[2]int]bool{}
	size := s.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if s.Get(x, y) > 0 {
				out[[2]int{x, y}] = true
			}
		}
	}
	return out
}

func TestNeighborCountWrapsCorner(t *testing.T) {
	const w, h = 6, 5
	s := NewGridStore(w, h)
	s.Set(0, 0, 1)

	neighbors := map[[2]int]bool{
		{w - 1, h - 1}: true, {w - 1, 0}: true, {w - 1, 1}: true,
		{0, h - 1}: true, {0, 1}: true,
		{1, h - 1}: true, {1, 0}: true, {1, 1}: true,
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			want := 0
			if neighbors[[2]int{x, y}] {
				want = 1
			}
			if got := s.NeighborCount(x, y); got != want {
				t.Fatalf("NeighborCount(%d,%d)=%d, want %d", x, y, got, want)
			}
		}
	}
}

func TestNeighborCountTranslationInvariant(t *testing.T) {
	const w, h = 9, 7
	edge := NewGridStore(w, h)
	interior := NewGridStore(w, h)

	edgeAnchor := [2]int{w - 1, h - 1}
	innerAnchor := [2]int{3, 2}
	for _, o := range PatternGlider.Offsets() {
		x, y := edge.Current().Wrap(edgeAnchor[0]+o.DX, edgeAnchor[1]+o.DY)
		edge.Set(x, y, 1)
		interior.Set(innerAnchor[0]+o.DX, innerAnchor[1]+o.DY, 1)
	}

	sx, sy := edgeAnchor[0]-innerAnchor[0], edgeAnchor[1]-innerAnchor[1]
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			ex, ey := edge.Current().Wrap(x+sx, y+sy)
			if a, b := edge.NeighborCount(ex, ey), interior.NeighborCount(x, y); a != b {
				t.Fatalf("translated count mismatch at (%d,%d): edge %d interior %d", x, y, a, b)
			}
		}
	}
}

func TestOutOfBoundsAccess(t *testing.T) {
	s := NewGridStore(8, 8)
	s.Set(-1, 3, 9)
	s.Set(8, 0, 9)
	s.Set(0, 8, 9)
	if got := s.Get(-1, 3); got != 0 {
		t.Fatalf("out of bounds read = %d, want 0", got)
	}
	if got := s.Population(); got != 0 {
		t.Fatalf("out of bounds writes changed population to %d", got)
	}
}

func TestNextAgeRule(t *testing.T) {
	for n := 0; n <= 8; n++ {
		live := nextAge(5, n)
		if n == 2 || n == 3 {
			if live != 6 {
				t.Fatalf("live cell with %d neighbors: age %d, want 6", n, live)
			}
		} else if live != 0 {
			t.Fatalf("live cell with %d neighbors survived with age %d", n, live)
		}

		dead := nextAge(0, n)
		want := uint8(0)
		if n == 3 {
			want = 1
		}
		if dead != want {
			t.Fatalf("dead cell with %d neighbors: age %d, want %d", n, dead, want)
		}
	}
	if got := nextAge(MaxAge, 2); got != MaxAge {
		t.Fatalf("saturated cell aged to %d", got)
	}
}

func TestAdvanceMatchesNeighborCount(t *testing.T) {
	s := NewGridStore(23, 17)
	Sprinkle(s, core.NewRNG(7), 35)

	want := make([]uint8, 23*17)
	for y := 0; y < 17; y++ {
		for x := 0; x < 23; x++ {
			want[y*23+x] = nextAge(s.Get(x, y), s.NeighborCount(x, y))
		}
	}

	Advance(s, 0, nil)
	if !slices.Equal(want, s.Current().Cells()) {
		t.Fatal("Advance disagrees with per-cell NeighborCount evaluation")
	}
}

func TestAdvanceDeterministic(t *testing.T) {
	a := NewGridStore(20, 20)
	b := NewGridStore(20, 20)
	Sprinkle(a, core.NewRNG(3), 30)
	copy(b.Current().Cells(), a.Current().Cells())

	for i := 0; i < 25; i++ {
		sa := Advance(a, 0, nil)
		sb := Advance(b, 7, func() {})
		if sa != sb {
			t.Fatalf("generation %d stats diverged: %+v vs %+v", i, sa, sb)
		}
		if !slices.Equal(a.Current().Cells(), b.Current().Cells()) {
			t.Fatalf("generation %d grids diverged", i)
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	s := NewGridStore(8, 8)
	s.Set(2, 1, 1)
	s.Set(2, 2, 1)
	s.Set(2, 3, 1)

	st := Advance(s, 0, nil)
	expects := map[[2]int]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true}
	if got := liveSet(s); !mapsEqual(got, expects) {
		t.Fatalf("after one step live cells %v, expected %v", got, expects)
	}
	if st.Population != 3 || st.Births != 2 || st.Deaths != 2 || st.MaxAge != 2 {
		t.Fatalf("unexpected stats %+v", st)
	}
	if got := s.Get(2, 2); got != 2 {
		t.Fatalf("center age %d, want 2", got)
	}
	if got := s.Get(1, 2); got != 1 {
		t.Fatalf("newborn age %d, want 1", got)
	}

	Advance(s, 0, nil)
	expects = map[[2]int]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true}
	if got := liveSet(s); !mapsEqual(got, expects) {
		t.Fatalf("after second step live cells %v, expected %v", got, expects)
	}
}

func TestAgeSaturates(t *testing.T) {
	s := NewGridStore(8, 8)
	for _, c := range [][2]int{{3, 3}, {4, 3}, {3, 4}, {4, 4}} {
		s.Set(c[0], c[1], 1)
	}

	var st Stats
	for i := 0; i < 300; i++ {
		st = Advance(s, 0, nil)
	}
	for _, c := range [][2]int{{3, 3}, {4, 3}, {3, 4}, {4, 4}} {
		if got := s.Get(c[0], c[1]); got != MaxAge {
			t.Fatalf("block cell (%d,%d) age %d, want %d", c[0], c[1], got, MaxAge)
		}
	}
	if st.Population != 4 || st.Births != 0 || st.Deaths != 0 || st.MaxAge != MaxAge {
		t.Fatalf("unexpected stats for saturated block: %+v", st)
	}
}

func TestGliderTranslatesDiagonally(t *testing.T) {
	s := NewGridStore(12, 12)
	Place(s, 1, 1, PatternGlider)

	for i := 0; i < 4; i++ {
		Advance(s, 0, nil)
	}

	want := map[[2]int]bool{}
	for _, o := range PatternGlider.Offsets() {
		want[[2]int{2 + o.DX, 2 + o.DY}] = true
	}
	if got := liveSet(s); !mapsEqual(got, want) {
		t.Fatalf("glider after 4 generations %v, want %v", got, want)
	}
}

func TestAdvanceYieldsBetweenRows(t *testing.T) {
	s := NewGridStore(16, 100)
	Sprinkle(s, core.NewRNG(11), 30)
	before := slices.Clone(s.Current().Cells())

	calls := 0
	Advance(s, 30, func() {
		calls++
		if !slices.Equal(before, s.Current().Cells()) {
			t.Fatal("current grid changed before the pass completed")
		}
	})
	if calls != 3 {
		t.Fatalf("yield called %d times, want 3", calls)
	}
	if slices.Equal(before, s.Current().Cells()) {
		t.Fatal("expected the new generation to be swapped in after the pass")
	}
}

func TestSwapIsIndexFlip(t *testing.T) {
	s := NewGridStore(8, 8)
	cur, back := s.Current(), s.Back()
	s.Swap()
	if s.Current() != back || s.Back() != cur {
		t.Fatal("Swap must exchange the grid roles without copying")
	}
}

func mapsEqual(a, b map[[2]int]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}
