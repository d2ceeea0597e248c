package life

// HistoryLen is the number of generations the stability window spans.
const HistoryLen = 30

// StabilityTracker keeps the population of the most recent HistoryLen
// generations in a ring buffer.
type StabilityTracker struct {
	history [HistoryLen]int
	cursor  int
	filled  bool
}

// Record stores population in the current slot and advances the cursor.
func (t *StabilityTracker) Record(population int) {
	t.history[t.cursor] = population
	t.cursor = (t.cursor + 1) % HistoryLen
	if t.cursor == 0 {
		t.filled = true
	}
}

// IsStable reports whether the window is full and holds a single value.
func (t *StabilityTracker) IsStable() bool {
	if !t.filled {
		return false
	}
	first := t.history[0]
	for _, v := range t.history[1:] {
		if v != first {
			return false
		}
	}
	return true
}

// Filled reports whether HistoryLen values have been recorded since the last reset.
func (t *StabilityTracker) Filled() bool { return t.filled }

// Reset zeroes the window.
func (t *StabilityTracker) Reset() {
	*t = StabilityTracker{}
}
