package audio

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/escape-artist/engine"
	"github.com/lixenwraith/escape-artist/parameter"
)

// SoundManager plays game cues through the speaker
// Play never blocks the tick; before Initialize every call is a no-op
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	cache       *soundCache
	volume      float64
	initialized bool
	muted       atomic.Bool

	played  atomic.Uint64
	dropped atomic.Uint64
}

// NewSoundManager creates a manager at volume in [0, 1]
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		cache:  newSoundCache(),
		volume: volume,
	}
}

// Initialize opens the speaker and pre-generates every cue
// Failure leaves the manager silent; callers may treat it as non-fatal
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	sm.cache.preload()
	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops playback and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// Play starts a cue
func (sm *SoundManager) Play(s engine.Sound) {
	if sm.muted.Load() {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	st := sm.streamer(s)
	if st == nil {
		return
	}

	speaker.Lock()
	full := sm.mixer.Len() >= parameter.AudioMaxVoices
	if !full {
		sm.mixer.Add(st)
	}
	speaker.Unlock()

	if full {
		sm.dropped.Add(1)
		return
	}
	sm.played.Add(1)
}

// streamer builds a volume-scaled one-shot streamer for a cue, nil for unknown cues
func (sm *SoundManager) streamer(s engine.Sound) beep.Streamer {
	buf := sm.cache.get(s)
	if buf == nil {
		return nil
	}
	return &effects.Volume{
		Streamer: &bufferStreamer{buf: buf},
		Base:     2,
		Volume:   math.Log2(math.Max(sm.volume, 1e-3)),
		Silent:   sm.volume <= 0,
	}
}

// ToggleMute flips the mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	for {
		old := sm.muted.Load()
		if sm.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

func (sm *SoundManager) IsMuted() bool { return sm.muted.Load() }

// Stats returns the number of cues played and dropped
func (sm *SoundManager) Stats() (played, dropped uint64) {
	return sm.played.Load(), sm.dropped.Load()
}
