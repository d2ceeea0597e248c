package core

import "time"

// Millis is a reading of a free-running millisecond counter. It wraps at 2^32
// like the hardware tick counters it models, so two readings must only be
// compared through Since.
type Millis uint32

// Since returns the time elapsed from earlier to m. Unsigned subtraction keeps
// the result correct across a single counter wrap.
func (m Millis) Since(earlier Millis) Millis { return m - earlier }

// Reached reports whether at least d has elapsed between since and m.
func (m Millis) Reached(since, d Millis) bool { return m.Since(since) >= d }

// MillisOf truncates a non-negative millisecond count to a Millis span.
// Negative inputs yield zero.
func MillisOf(ms int) Millis {
	if ms <= 0 {
		return 0
	}
	return Millis(uint32(ms))
}

// Clock produces Millis readings relative to its creation time.
type Clock struct {
	start  time.Time
	offset Millis
}

// NewClockAt starts a clock whose first reading is offset. An offset close
// to 2^32 exercises counter wraparound.
func NewClockAt(offset Millis) *Clock {
	return &Clock{start: time.Now(), offset: offset}
}

// Now returns the current reading.
func (c *Clock) Now() Millis {
	return c.offset + Millis(uint32(time.Since(c.start).Milliseconds()))
}

// TickPeriod returns the loop period for a ticks-per-second rate. A
// non-positive rate uses 60.
func TickPeriod(tps int) time.Duration {
	if tps <= 0 {
		tps = 60
	}
	return time.Second / time.Duration(tps)
}
