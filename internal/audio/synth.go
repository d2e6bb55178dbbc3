// Package audio synthesizes the game's sound effects and background march
// with beep and plays them through the system speaker. No sample files are
// loaded: every sound is generated from oscillators at runtime.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator wave shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveNoise
)

// oscillator generates a wave whose frequency sweeps linearly from one value
// to another over its duration.
type oscillator struct {
	from, to float64 // Hz
	phase    float64
	position int
	duration int
	wave     Wave
	rate     beep.SampleRate
	noise    uint32
}

// NewOscillator creates a finite oscillator sweeping from -> to.
// Pass the same frequency twice for a steady tone.
func NewOscillator(from, to float64, duration time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		from:     from,
		to:       to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    0x2545f491,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveNoise:
			// xorshift keeps the noise reproducible
			o.noise ^= o.noise << 13
			o.noise ^= o.noise >> 17
			o.noise ^= o.noise << 5
			val = float64(o.noise)/float64(math.MaxUint32)*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		freq := o.from + (o.to-o.from)*float64(o.position)/float64(o.duration)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a finite stream.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s, which should be exactly duration long.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := range n {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if releaseStart := e.total - e.release; e.release > 0 && e.position >= releaseStart {
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s by a linear gain. Zero or less is silent, since the
// logarithmic volume of 0 is -Inf.
func newVolume(s beep.Streamer, gain float64) *effects.Volume {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// Sound effect timings
const (
	laserDuration     = 140 * time.Millisecond
	laserAttack       = 2 * time.Millisecond
	laserRelease      = 70 * time.Millisecond
	explosionDuration = 450 * time.Millisecond
	explosionAttack   = 5 * time.Millisecond
	explosionRelease  = 380 * time.Millisecond
)

// NewLaserSound generates a short falling zap.
func NewLaserSound(rate beep.SampleRate, gain float64) beep.Streamer {
	osc := NewOscillator(1400, 350, laserDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, laserDuration, laserAttack, laserRelease, rate)
	return newVolume(shaped, gain*0.5)
}

// NewExplosionSound generates a burst of noise over a falling rumble.
func NewExplosionSound(rate beep.SampleRate, gain float64) beep.Streamer {
	noise := NewEnvelope(NewOscillator(0, 0, explosionDuration, WaveNoise, rate),
		explosionDuration, explosionAttack, explosionRelease, rate)
	rumble := NewEnvelope(NewOscillator(90, 35, explosionDuration, WaveSine, rate),
		explosionDuration, explosionAttack, explosionRelease, rate)
	return newVolume(beep.Mix(newVolume(noise, 0.6), newVolume(rumble, 0.4)), gain)
}

// marchNotes is the four-note descending bass line (G2 F2 E2 D2).
var marchNotes = []float64{98.00, 87.31, 82.41, 73.42}

// March timings
const (
	marchStep = 500 * time.Millisecond // One note per step
	marchNote = 140 * time.Millisecond // Audible part of a step
)

// march is an endless generator of the marching bass line.
type march struct {
	rate     beep.SampleRate
	step     int
	note     int
	position int
	phase    float64
}

// NewMarch creates the background track. It never ends.
func NewMarch(rate beep.SampleRate) beep.Streamer {
	return &march{rate: rate, step: rate.N(marchStep), note: rate.N(marchNote)}
}

func (m *march) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		inStep := m.position % m.step
		freq := marchNotes[(m.position/m.step)%len(marchNotes)]

		val := 0.0
		if inStep < m.note {
			decay := 1 - float64(inStep)/float64(m.note)
			// Square with a touch of sine underneath for body
			sq := 1.0
			if m.phase >= 0.5 {
				sq = -1
			}
			val = decay * (0.6*sq + 0.4*math.Sin(2*math.Pi*m.phase))
		}
		samples[i][0] = val
		samples[i][1] = val

		m.phase += freq / float64(m.rate)
		m.phase -= math.Floor(m.phase)
		m.position++
	}
	return len(samples), true
}

func (m *march) Err() error { return nil }
