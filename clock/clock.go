// Package clock abstracts the time source used by the signing and
// verification paths so tests can pin or skew the current time.
package clock

import (
	"sync"
	"time"
)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// System is the real wall clock.
type System struct{}

// Now returns the current UTC time.
func (System) Now() time.Time {
	return time.Now().UTC()
}

// Manual is a settable clock for tests. The zero value is unusable;
// construct it with NewManual.
type Manual struct {
	mu  sync.Mutex
	now time.Time
}

// NewManual creates a manual clock pinned at t.
func NewManual(t time.Time) *Manual {
	return &Manual{now: t}
}

// Now returns the pinned time.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Set pins the clock at t.
func (m *Manual) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

// Advance moves the clock forward by d. Negative values move it backward.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}
