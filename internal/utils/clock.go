package utils

import "time"

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (s SystemClock) Now() time.Time {
	return time.Now()
}

// MockClock is a manually driven Clock for tests.
type MockClock struct {
	FixedNow time.Time
}

func (m *MockClock) Now() time.Time {
	return m.FixedNow
}

func (m *MockClock) Advance(d time.Duration) {
	m.FixedNow = m.FixedNow.Add(d)
}
