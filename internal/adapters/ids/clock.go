// Package ids implements the identifier allocators.
package ids

import (
	"strconv"
	"sync"
	"time"
)

// Clock allocates ids from wall-clock milliseconds since the Unix epoch.
// Successive ids are strictly increasing: a call within the same
// millisecond as the previous one, or after the clock stepped back, gets
// the previous value plus one.
type Clock struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

// NewClock creates a Clock reading time.Now.
func NewClock() *Clock {
	return &Clock{now: time.Now}
}

// NewClockWithSource creates a Clock reading the given time source.
func NewClockWithSource(now func() time.Time) *Clock {
	return &Clock{now: now}
}

// NextID returns the next id.
func (c *Clock) NextID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	ms := c.now().UnixMilli()
	if ms <= c.last {
		ms = c.last + 1
	}
	c.last = ms
	return strconv.FormatInt(ms, 10)
}
