package engine

import (
	"sync"
	"time"
)

// PausableClock is a TimeProvider that stops advancing while paused
// The scheduler reads it, so a paused session runs no steps and resumes without a catch-up burst
type PausableClock struct {
	mu sync.Mutex

	base TimeProvider

	paused          bool
	pauseStart      time.Time     // base time when the current pause began
	totalPausedTime time.Duration // cumulative length of finished pauses
}

// NewPausableClock creates a running clock over base
func NewPausableClock(base TimeProvider) *PausableClock {
	return &PausableClock{base: base}
}

// Now returns base time minus every pause; frozen while paused
func (pc *PausableClock) Now() time.Time {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.paused {
		return pc.pauseStart.Add(-pc.totalPausedTime)
	}
	return pc.base.Now().Add(-pc.totalPausedTime)
}

// Pause stops time advancement; pausing twice is a no-op
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if !pc.paused {
		pc.paused = true
		pc.pauseStart = pc.base.Now()
	}
}

// Resume continues time advancement from where it stopped
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.paused {
		pc.totalPausedTime += pc.base.Now().Sub(pc.pauseStart)
		pc.paused = false
	}
}

// Toggle flips the pause state and returns the new one
func (pc *PausableClock) Toggle() bool {
	if pc.IsPaused() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.paused
}

// TotalPauseDuration returns cumulative pause time, including a pause in progress
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	total := pc.totalPausedTime
	if pc.paused {
		total += pc.base.Now().Sub(pc.pauseStart)
	}
	return total
}
