// Package clock abstracts the time source so that components depending
// on "now" stay deterministic under test. Production code uses System;
// tests use Fake with explicit Set/Advance control.
package clock

import (
	"sync"
	"time"
)

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// System reads the real system clock.
type System struct{}

// Now implements the Clock interface.
func (System) Now() time.Time { return time.Now() }

// Fake is a deterministic clock for tests. The zero value starts at the
// zero time; use New to start elsewhere.
type Fake struct {
	mu sync.Mutex
	t  time.Time
}

// NewFake creates a Fake clock frozen at start.
func NewFake(start time.Time) *Fake {
	return &Fake{t: start}
}

// Now implements the Clock interface.
func (c *Fake) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

// Set moves the clock to t.
func (c *Fake) Set(t time.Time) {
	c.mu.Lock()
	c.t = t
	c.mu.Unlock()
}

// Advance moves the clock forward by d.
func (c *Fake) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}
