// Package sound synthesizes the game's sound effects as 16-bit PCM.
package sound

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/gopxl/beep"
)

// SampleRate is shared by every cue and by the audio context that plays them.
const SampleRate = beep.SampleRate(44100)

const (
	laserDuration  = 120 * time.Millisecond
	laserStartFreq = 1400.0
	laserEndFreq   = 260.0
	laserVolume    = 0.25
	laserAttack    = 4 * time.Millisecond
	laserRelease   = 80 * time.Millisecond
)

// Laser is a short falling square-wave chirp.
func Laser(rate beep.SampleRate) beep.Streamer {
	total := rate.N(laserDuration)
	sweep := newSweep(laserStartFreq, laserEndFreq, total, rate)
	shaped := newEnvelope(sweep, total, rate.N(laserAttack), rate.N(laserRelease), laserVolume)
	return beep.Take(total, shaped)
}

// sweep is a square oscillator whose frequency moves exponentially from start to end.
type sweep struct {
	start, end float64
	total      int
	position   int
	phase      float64
	rate       beep.SampleRate
}

func newSweep(start, end float64, total int, rate beep.SampleRate) *sweep {
	return &sweep{start: start, end: end, total: total, rate: rate}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := 1.0
		if s.total > 1 {
			progress = math.Min(1, float64(s.position)/float64(s.total-1))
		}
		freq := s.start * math.Pow(s.end/s.start, progress)

		val := -1.0
		if s.phase < 0.5 {
			val = 1.0
		}
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope applies a linear attack and release and a fixed gain.
type envelope struct {
	streamer beep.Streamer
	total    int
	attack   int
	release  int
	gain     float64
	position int
}

func newEnvelope(s beep.Streamer, total, attack, release int, gain float64) *envelope {
	return &envelope{streamer: s, total: total, attack: attack, release: release, gain: gain}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := e.gain
		switch {
		case e.attack > 0 && e.position < e.attack:
			vol *= float64(e.position) / float64(e.attack)
		case e.release > 0 && e.position >= e.total-e.release:
			remaining := e.total - e.position
			vol *= math.Max(0, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// PCM16 drains s into interleaved little-endian signed 16-bit stereo, the format
// ebiten's audio players expect.
func PCM16(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)

	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for _, v := range buf[i] {
				out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(v)))
			}
		}
		if !ok || n == 0 {
			return out
		}
	}
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(math.Round(v * math.MaxInt16))
}
