package domain

import (
	"time"
)

// Clock supplies the timestamp stamped on transaction records.
// Injected so tests can control it deterministically.
type Clock interface {
	// Now returns the current time in unix milliseconds
	Now() int64
}

// SystemClock reads the wall clock
type SystemClock struct{}

// Now implements Clock
func (SystemClock) Now() int64 {
	return time.Now().UnixMilli()
}
