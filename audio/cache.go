package audio

import (
	"sync"

	"github.com/lixenwraith/escape-artist/engine"
)

// soundCount bounds the cue range the cache holds
const soundCount = int(engine.SoundReject) + 1

// soundCache stores pre-generated unity-gain float buffers
type soundCache struct {
	mu    sync.RWMutex
	store [soundCount]floatBuffer
	ready [soundCount]bool
}

func newSoundCache() *soundCache {
	return &soundCache{}
}

// get returns the cached buffer or generates it on demand
func (c *soundCache) get(s engine.Sound) floatBuffer {
	if int(s) >= soundCount {
		return nil
	}

	c.mu.RLock()
	if c.ready[s] {
		buf := c.store[s]
		c.mu.RUnlock()
		return buf
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if c.ready[s] {
		return c.store[s]
	}

	buf := generateSound(s)
	c.store[s] = buf
	c.ready[s] = true
	return buf
}

// preload generates every cue so the first play does not stall the tick
func (c *soundCache) preload() {
	for s := 0; s < soundCount; s++ {
		c.get(engine.Sound(s))
	}
}
