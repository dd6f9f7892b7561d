package memory

import (
	"github.com/nmarques/bankledger-backend/internal/domain"
)

// FixedClock is a deterministic clock for tests and local runs.
// Every call to Now returns the same instant until Set moves it.
type FixedClock struct {
	now int64
}

// NewFixedClock creates a clock pinned to the given unix-millisecond instant
func NewFixedClock(now int64) *FixedClock {
	return &FixedClock{now: now}
}

// Now implements domain.Clock
func (c *FixedClock) Now() int64 {
	return c.now
}

// Set moves the clock to a new instant
func (c *FixedClock) Set(now int64) {
	c.now = now
}

var _ domain.Clock = (*FixedClock)(nil)
