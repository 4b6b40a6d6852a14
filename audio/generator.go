package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/escape-artist/engine"
	"github.com/lixenwraith/escape-artist/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Waveform types
const (
	waveSine = iota
	waveSquare
	waveSaw
	waveNoise
)

// noiseSeed fixes the noise cues so every run sounds the same
const noiseSeed = 0x5eed

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// oscillator generates a raw waveform sweeping linearly from freq to freqEnd
func oscillator(wave int, freq, freqEnd float64, d time.Duration, rng *rand.Rand) floatBuffer {
	n := sampleRate.N(d)
	buf := make(floatBuffer, n)
	phase := 0.0
	for i := 0; i < n; i++ {
		switch wave {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1
			} else {
				buf[i] = -1
			}
		case waveSaw:
			buf[i] = 2 * (phase - 0.5)
		case waveNoise:
			buf[i] = rng.Float64()*2 - 1
		}

		f := freq + (freqEnd-freq)*float64(i)/float64(n)
		phase += f / float64(sampleRate)
		if phase >= 1 {
			phase -= 1
		}
	}
	return buf
}

// applyEnvelope applies a linear attack/release envelope in place
func applyEnvelope(buf floatBuffer, attack, release time.Duration) {
	total := len(buf)
	attackN := sampleRate.N(attack)
	releaseN := sampleRate.N(release)

	releaseStart := total - releaseN
	if releaseStart < attackN {
		releaseStart = attackN
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackN && attackN > 0 {
			vol = float64(i) / float64(attackN)
		} else if i >= releaseStart && releaseN > 0 {
			vol = float64(total-i) / float64(releaseN)
		}
		buf[i] *= vol
	}
}

// mixFloatBuffers adds b into a (in place), extending a if needed
func mixFloatBuffers(a, b floatBuffer, bScale float64) floatBuffer {
	if len(b) > len(a) {
		extended := make(floatBuffer, len(b))
		copy(extended, a)
		a = extended
	}
	for i := range b {
		a[i] += b[i] * bScale
	}
	return a
}

// concatFloatBuffers appends b to a
func concatFloatBuffers(a, b floatBuffer) floatBuffer {
	result := make(floatBuffer, len(a)+len(b))
	copy(result, a)
	copy(result[len(a):], b)
	return result
}

// normalize scales the buffer so its peak is at most 1
func normalize(buf floatBuffer) floatBuffer {
	peak := 0.0
	for _, s := range buf {
		peak = math.Max(peak, math.Abs(s))
	}
	if peak > 1 {
		for i := range buf {
			buf[i] /= peak
		}
	}
	return buf
}

// --- Cue generators (unity gain) ---

// land is a short low thump
func generateLand(rng *rand.Rand) floatBuffer {
	body := oscillator(waveSine, 120, 50, 90*time.Millisecond, rng)
	applyEnvelope(body, 2*time.Millisecond, 80*time.Millisecond)
	grit := oscillator(waveNoise, 0, 0, 30*time.Millisecond, rng)
	applyEnvelope(grit, time.Millisecond, 25*time.Millisecond)
	return mixFloatBuffers(body, grit, 0.3)
}

// escape is a rising whoosh under a sine sweep
func generateEscape(rng *rand.Rand) floatBuffer {
	sweep := oscillator(waveSine, 300, 1200, 250*time.Millisecond, rng)
	applyEnvelope(sweep, 20*time.Millisecond, 120*time.Millisecond)
	air := oscillator(waveNoise, 0, 0, 250*time.Millisecond, rng)
	applyEnvelope(air, 80*time.Millisecond, 150*time.Millisecond)
	return mixFloatBuffers(sweep, air, 0.4)
}

// collect is the two-note coin chime
func generateCollect(rng *rand.Rand) floatBuffer {
	n1 := oscillator(waveSquare, 987.77, 987.77, 80*time.Millisecond, rng)
	applyEnvelope(n1, 2*time.Millisecond, 20*time.Millisecond)
	n2 := oscillator(waveSquare, 1318.51, 1318.51, 250*time.Millisecond, rng)
	applyEnvelope(n2, 2*time.Millisecond, 200*time.Millisecond)
	return concatFloatBuffers(n1, n2)
}

// hurt is a falling saw buzz
func generateHurt(rng *rand.Rand) floatBuffer {
	buf := oscillator(waveSaw, 220, 90, 180*time.Millisecond, rng)
	applyEnvelope(buf, 5*time.Millisecond, 100*time.Millisecond)
	return buf
}

// reject is a flat low blip
func generateReject(rng *rand.Rand) floatBuffer {
	buf := oscillator(waveSquare, 100, 100, 120*time.Millisecond, rng)
	applyEnvelope(buf, 5*time.Millisecond, 60*time.Millisecond)
	return buf
}

// generateSound dispatches to the cue generator, nil for unknown cues
func generateSound(s engine.Sound) floatBuffer {
	rng := rand.New(rand.NewSource(noiseSeed))
	var buf floatBuffer
	switch s {
	case engine.SoundLand:
		buf = generateLand(rng)
	case engine.SoundEscape:
		buf = generateEscape(rng)
	case engine.SoundCollect:
		buf = generateCollect(rng)
	case engine.SoundHurt:
		buf = generateHurt(rng)
	case engine.SoundReject:
		buf = generateReject(rng)
	default:
		return nil
	}
	return normalize(buf)
}

// bufferStreamer plays a cached buffer once as a stereo beep.Streamer
type bufferStreamer struct {
	buf floatBuffer
	pos int
}

func (b *bufferStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if b.pos >= len(b.buf) {
		return 0, false
	}
	for n < len(samples) && b.pos < len(b.buf) {
		s := b.buf[b.pos]
		samples[n][0] = s
		samples[n][1] = s
		n++
		b.pos++
	}
	return n, true
}

func (b *bufferStreamer) Err() error { return nil }
