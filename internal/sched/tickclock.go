// internal/sched/tickclock.go

package sched

// TickClock counts abstract simulation ticks. It never reads wall-clock time.
type TickClock struct {
	count int
}

// NewTickClock creates a clock positioned at the given tick.
func NewTickClock(start int) *TickClock {
	return &TickClock{count: start}
}

// Now returns the current tick.
func (c *TickClock) Now() int { return c.count }

// Advance moves the clock forward by the given number of ticks.
func (c *TickClock) Advance(ticks int) {
	if ticks > 0 {
		c.count += ticks
	}
}

// AdvanceTo moves the clock to tick and returns how far it moved.
// A tick in the past leaves the clock where it is.
func (c *TickClock) AdvanceTo(tick int) int {
	if tick <= c.count {
		return 0
	}
	moved := tick - c.count
	c.count = tick
	return moved
}
