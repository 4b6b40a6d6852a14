package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines latency of the speaker buffer
	// 50ms aligns with the game tick
	AudioBufferDuration = 50 * time.Millisecond

	// AudioMaxVoices caps simultaneous cues; extra plays are dropped
	AudioMaxVoices = 8
)
