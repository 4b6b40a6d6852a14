package game

import (
	"time"

	"github.com/lixenwraith/escape-artist/engine"
)

// Scheduler converts elapsed clock time into fixed simulation steps
// Time left over from one call carries into the next; a stall longer than
// maxSteps drops the backlog instead of replaying it
type Scheduler struct {
	clock    engine.TimeProvider
	interval time.Duration
	maxSteps int

	last    time.Time
	pending time.Duration
	started bool
	total   uint64
}

// NewScheduler creates a scheduler; interval and maxSteps must be positive
func NewScheduler(clock engine.TimeProvider, interval time.Duration, maxSteps int) *Scheduler {
	return &Scheduler{clock: clock, interval: interval, maxSteps: maxSteps}
}

// Steps returns how many steps are due since the previous call
// The first call only starts the clock
func (s *Scheduler) Steps() int {
	now := s.clock.Now()
	if !s.started {
		s.started = true
		s.last = now
		return 0
	}

	elapsed := now.Sub(s.last)
	s.last = now
	if elapsed < 0 {
		elapsed = 0
	}
	s.pending += elapsed

	n := int(s.pending / s.interval)
	if n > s.maxSteps {
		n = s.maxSteps
		s.pending = 0
	} else {
		s.pending -= time.Duration(n) * s.interval
	}
	s.total += uint64(n)
	return n
}

// Total returns the number of steps handed out so far
func (s *Scheduler) Total() uint64 { return s.total }
