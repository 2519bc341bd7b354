package audio

import (
	"bytes"
	"math"

	"github.com/hajimehoshi/oto/v2"
)

const (
	sampleRate   = 44100
	channelCount = 2
	bitDepth     = 2 // 16-bit little-endian samples
)

// SoundKind identifies the procedural sound effects.
type SoundKind int

const (
	SoundStep SoundKind = iota
	SoundCrash
	SoundSuccess
	SoundGhostSpawn
)

// System owns the audio context. A nil *System is valid and silent, so
// the game keeps running on machines without an audio device.
type System struct {
	ctx   *oto.Context
	ready chan struct{}
}

// Init opens the audio device. Errors are returned rather than fatal;
// callers log and continue without sound.
func Init() (*System, error) {
	ctx, ready, err := oto.NewContext(sampleRate, channelCount, bitDepth)
	if err != nil {
		return nil, err
	}
	return &System{ctx: ctx, ready: ready}, nil
}

// Play fires a sound effect without blocking the game loop.
func (s *System) Play(kind SoundKind) {
	if s == nil {
		return
	}
	select {
	case <-s.ready:
	default:
		return
	}

	var samples []byte
	switch kind {
	case SoundStep:
		samples = genTone(660, 0.05, 0.25)
	case SoundCrash:
		samples = genNoiseBurst(0.3, 0.6)
	case SoundSuccess:
		samples = genJingle()
	case SoundGhostSpawn:
		samples = genSweep(200, 900, 0.25, 0.4)
	}
	if len(samples) == 0 {
		return
	}

	go func() {
		p := s.ctx.NewPlayer(bytes.NewReader(samples))
		p.Play()
	}()
}

// writeSample appends one stereo frame of the given amplitude (-1..1).
func writeSample(buf *bytes.Buffer, v float64) {
	s := int16(v * math.MaxInt16)
	lo, hi := byte(s), byte(s>>8)
	buf.Write([]byte{lo, hi, lo, hi})
}

// genTone renders a sine tone with a linear fade-out.
func genTone(freq, seconds, gain float64) []byte {
	n := int(seconds * sampleRate)
	var buf bytes.Buffer
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		env := 1 - float64(i)/float64(n)
		writeSample(&buf, gain*env*math.Sin(2*math.Pi*freq*t))
	}
	return buf.Bytes()
}

// genSweep renders a rising sine sweep, the ghost-car whoosh.
func genSweep(from, to, seconds, gain float64) []byte {
	n := int(seconds * sampleRate)
	var buf bytes.Buffer
	phase := 0.0
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		freq := from + (to-from)*progress
		phase += 2 * math.Pi * freq / sampleRate
		env := 1 - progress
		writeSample(&buf, gain*env*math.Sin(phase))
	}
	return buf.Bytes()
}

// genNoiseBurst renders decaying pseudo-noise, the crash.
func genNoiseBurst(seconds, gain float64) []byte {
	n := int(seconds * sampleRate)
	var buf bytes.Buffer
	seed := uint32(0x2545f491)
	for i := 0; i < n; i++ {
		seed ^= seed << 13
		seed ^= seed >> 17
		seed ^= seed << 5
		noise := float64(int32(seed)) / math.MaxInt32
		env := math.Pow(1-float64(i)/float64(n), 2)
		writeSample(&buf, gain*env*noise)
	}
	return buf.Bytes()
}

// genJingle renders three ascending notes for a completed crossing.
func genJingle() []byte {
	var buf bytes.Buffer
	for _, freq := range []float64{523.25, 659.25, 783.99} {
		buf.Write(genTone(freq, 0.12, 0.3))
	}
	return buf.Bytes()
}
