package clock

import (
	"sync"
	"time"
)

// Clock abstracts time so the cache, the rate limiter, and the calendar
// service can share one replaceable source in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// New returns a Clock backed by the system time.
func New() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

// Mock is a settable Clock for tests.
type Mock struct {
	mu  sync.Mutex
	now time.Time
}

func NewMock(start time.Time) *Mock {
	return &Mock{now: start}
}

func (m *Mock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.now
}

// Set moves the mock to an absolute instant.
func (m *Mock) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.now = t
}

// Advance moves the mock forward by d.
func (m *Mock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.now = m.now.Add(d)
}
