package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPausableClockFreezesWhilePaused(t *testing.T) {
	start := time.Unix(100, 0)
	base := NewMockTimeProvider(start)
	pc := NewPausableClock(base)

	base.Advance(time.Second)
	assert.True(t, pc.Now().Equal(start.Add(time.Second)))

	pc.Pause()
	pc.Pause()
	assert.True(t, pc.IsPaused())
	base.Advance(5 * time.Second)
	assert.True(t, pc.Now().Equal(start.Add(time.Second)), "frozen at the pause point")
	assert.Equal(t, 5*time.Second, pc.TotalPauseDuration())

	pc.Resume()
	assert.True(t, pc.Now().Equal(start.Add(time.Second)), "no jump on resume")
	base.Advance(time.Second)
	assert.True(t, pc.Now().Equal(start.Add(2*time.Second)))
	assert.Equal(t, 5*time.Second, pc.TotalPauseDuration())
}

func TestPausableClockToggle(t *testing.T) {
	pc := NewPausableClock(NewMockTimeProvider(time.Unix(0, 0)))
	assert.True(t, pc.Toggle())
	assert.True(t, pc.IsPaused())
	assert.False(t, pc.Toggle())
	assert.False(t, pc.IsPaused())
	pc.Resume()
	assert.False(t, pc.IsPaused())
}
