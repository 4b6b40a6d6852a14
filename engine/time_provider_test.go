package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonotonicClockNeverGoesBack(t *testing.T) {
	var clock TimeProvider = NewMonotonicTimeProvider()
	prev := clock.Now()
	for range 100 {
		now := clock.Now()
		assert.False(t, now.Before(prev))
		prev = now
	}
}

func TestMockClockStepsByGameTicks(t *testing.T) {
	start := time.Unix(0, 0)
	mock := NewMockTimeProvider(start)
	assert.True(t, mock.Now().Equal(start), "a fresh mock does not move on its own")

	tick := 20 * time.Millisecond
	for range 50 {
		mock.Advance(tick)
	}
	assert.Equal(t, time.Second, mock.Now().Sub(start))
}
