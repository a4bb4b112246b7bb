package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

const testRate = beep.SampleRate(44100)

func drain(t *testing.T, s beep.Streamer) (total int, peak float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if math.IsNaN(buf[i][0]) || math.IsInf(buf[i][0], 0) {
				t.Fatalf("sample %d is not finite: %v", total+i, buf[i][0])
			}
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			return total, peak
		}
		if total > int(testRate)*5 {
			t.Fatal("stream did not terminate")
		}
	}
}

func TestOscillatorWaves(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 100*time.Millisecond, wave, testRate)
		n, peak := drain(t, osc)
		if n != testRate.N(100*time.Millisecond) {
			t.Errorf("wave %d: got %d samples, want %d", wave, n, testRate.N(100*time.Millisecond))
		}
		if peak > 1.0 || peak == 0 {
			t.Errorf("wave %d: peak %v outside (0, 1]", wave, peak)
		}
	}
}

func TestGlideSweepsFrequency(t *testing.T) {
	// Zero crossings in the first and last tenth reveal the sweep direction
	d := 200 * time.Millisecond
	s := NewGlide(200, 2000, d, WaveSine, testRate)
	buf := make([][2]float64, testRate.N(d))
	n, _ := s.Stream(buf)

	crossings := func(from, to int) int {
		c := 0
		for i := from + 1; i < to; i++ {
			if (buf[i-1][0] < 0) != (buf[i][0] < 0) {
				c++
			}
		}
		return c
	}
	tenth := n / 10
	if lo, hi := crossings(0, tenth), crossings(n-tenth, n); hi <= lo {
		t.Errorf("rising glide should cross zero more often at the end: start %d, end %d", lo, hi)
	}
}

func TestEnvelopeAttackAndDecay(t *testing.T) {
	d := 100 * time.Millisecond
	src := NewOscillator(0, d, WaveSquare, testRate) // phase stays 0: constant +1
	env := NewEnvelope(src, d, 10*time.Millisecond, 20*time.Millisecond, testRate)

	buf := make([][2]float64, testRate.N(d))
	n, _ := env.Stream(buf)

	if buf[0][0] != 0 {
		t.Errorf("attack should start silent, got %v", buf[0][0])
	}
	attack := testRate.N(10 * time.Millisecond)
	if v := buf[attack][0]; math.Abs(v-1) > 1e-9 {
		t.Errorf("envelope should peak at end of attack, got %v", v)
	}
	if buf[n-1][0] >= buf[attack+1][0] {
		t.Errorf("release should decay: tail %v, early %v", buf[n-1][0], buf[attack+1][0])
	}
}

func TestSoundsStayInRange(t *testing.T) {
	sounds := map[string]struct {
		s    beep.Streamer
		want time.Duration
	}{
		"throw":       {CreateThrowSound(testRate), 220 * time.Millisecond},
		"smash":       {CreateSmashSound(testRate, 1), 350 * time.Millisecond},
		"smash quiet": {CreateSmashSound(testRate, 0), 350 * time.Millisecond},
		"splash":      {CreateSplashSound(testRate), 260 * time.Millisecond},
	}
	for name, tc := range sounds {
		t.Run(name, func(t *testing.T) {
			n, peak := drain(t, tc.s)
			if n != testRate.N(tc.want) {
				t.Errorf("got %d samples, want %d", n, testRate.N(tc.want))
			}
			if peak > 1.0 {
				t.Errorf("peak %v would clip", peak)
			}
			if peak == 0 {
				t.Error("sound is silent")
			}
		})
	}
}

func TestNewVolumeSilentOnZeroGain(t *testing.T) {
	s := newVolume(NewOscillator(0, 10*time.Millisecond, WaveSquare, testRate), 0)
	if _, peak := drain(t, s); peak != 0 {
		t.Errorf("zero gain should be silent, peak %v", peak)
	}
}
