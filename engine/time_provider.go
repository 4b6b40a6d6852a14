package engine

import "time"

// TimeProvider abstracts the clock so the scheduler can be driven by tests
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the real system clock (monotonic reading included)
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates the production time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}
