package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/mindfulcampus/bottlesmash/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave whose frequency may glide linearly
type oscillator struct {
	from, to float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewGlide(freq, freq, duration, wave, rate)
}

// NewGlide creates an oscillator sweeping from one frequency to another over duration
func NewGlide(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		from:     from,
		to:       to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
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
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.from + (o.to-o.from)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and an exponential release
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	total    int
	decay    float64 // release time constant in samples
}

// NewEnvelope shapes s with an attack ramp followed by exponential decay
func NewEnvelope(s beep.Streamer, duration, attack, decay time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		total:    rate.N(duration),
		decay:    math.Max(float64(rate.N(decay)), 1),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		} else {
			vol = math.Exp(-float64(e.position-e.attack) / e.decay)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume applies a linear gain through the log2 volume effect
// Zero or negative gain is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// CreateThrowSound is a short rising air whoosh
func CreateThrowSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.ThrowSoundDuration
	noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, 60*time.Millisecond, 70*time.Millisecond, rate)
	tone := NewEnvelope(NewGlide(180, 420, d, WaveSine, rate), d, 40*time.Millisecond, 90*time.Millisecond, rate)
	return beep.Mix(newVolume(noise, 0.18), newVolume(tone, 0.12))
}

// CreateSmashSound is a glass crash: a noise burst over a few bright partials
// intensity in [0, 1] scales the loudness
func CreateSmashSound(rate beep.SampleRate, intensity float64) beep.Streamer {
	d := parameter.SmashSoundDuration
	crash := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, 2*time.Millisecond, 60*time.Millisecond, rate)

	partials := []beep.Streamer{newVolume(crash, 0.5)}
	for i, freq := range []float64{2093, 2637, 3136, 3951} {
		ring := NewEnvelope(NewOscillator(freq, d, WaveSine, rate), d, time.Millisecond, time.Duration(60+25*i)*time.Millisecond, rate)
		partials = append(partials, newVolume(ring, 0.12))
	}

	gain := 0.6 + 0.4*math.Max(0, math.Min(intensity, 1))
	return newVolume(beep.Mix(partials...), gain)
}

// CreateSplashSound is a falling liquid plop
func CreateSplashSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.SplashSoundDuration
	plop := NewEnvelope(NewGlide(520, 140, d, WaveSine, rate), d, 3*time.Millisecond, 80*time.Millisecond, rate)
	spray := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, 10*time.Millisecond, 40*time.Millisecond, rate)
	return beep.Mix(newVolume(plop, 0.35), newVolume(spray, 0.1))
}
