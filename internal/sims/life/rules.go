package life

// MaxAge is the saturation value of a cell's age counter.
const MaxAge = 255

// Stats summarizes one generation. Every field is recomputed per pass.
type Stats struct {
	Population int
	Births     int
	Deaths     int
	MaxAge     int
}

// nextAge applies the B3/S23 rule to a cell of the given age with n live
// neighbors and returns its next age.
func nextAge(age uint8, n int) uint8 {
	if age > 0 {
		if n != 2 && n != 3 {
			return 0
		}
		if age == MaxAge {
			return MaxAge
		}
		return age + 1
	}
	if n == 3 {
		return 1
	}
	return 0
}

// Advance computes the next generation of s into its back grid and swaps it
// in once every row has been written. When yield is non-nil it is called
// between rows every yieldRows rows; it never runs inside a row and the back
// grid is not visible to readers until the swap.
func Advance(s *GridStore, yieldRows int, yield func()) Stats {
	src := s.Current()
	dst := s.Back()
	w, h := src.W, src.H
	cur := src.Cells()
	next := dst.Cells()

	var st Stats
	for y := 0; y < h; y++ {
		if yield != nil && yieldRows > 0 && y > 0 && y%yieldRows == 0 {
			yield()
		}

		above := ((y - 1 + h) % h) * w
		row := y * w
		below := ((y + 1) % h) * w

		for x := 0; x < w; x++ {
			xl := (x - 1 + w) % w
			xr := (x + 1) % w

			n := live(cur[above+xl]) + live(cur[above+x]) + live(cur[above+xr]) +
				live(cur[row+xl]) + live(cur[row+xr]) +
				live(cur[below+xl]) + live(cur[below+x]) + live(cur[below+xr])

			age := cur[row+x]
			na := nextAge(age, n)
			switch {
			case age > 0 && na == 0:
				st.Deaths++
			case age == 0 && na > 0:
				st.Births++
			}
			if na > 0 {
				st.Population++
				if int(na) > st.MaxAge {
					st.MaxAge = int(na)
				}
			}
			next[row+x] = na
		}
	}

	s.Swap()
	return st
}

func live(age uint8) int {
	if age > 0 {
		return 1
	}
	return 0
}
