package game

import (
	"encoding/binary"
	"math"
	"sync/atomic"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// EngineAudio synthesizes a continuous engine hum whose pitch and volume
// follow the player's speed ratio. The stream runs for the whole session;
// the simulation feeds it through an atomic cell once per frame.
type EngineAudio struct {
	ctx    *oto.Context
	ready  chan struct{}
	stream *engineStream
	player oto.Player
}

// InitEngineAudio opens the audio context and starts the engine loop as soon
// as the device is ready.
func InitEngineAudio() (*EngineAudio, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, err
	}
	ea := &EngineAudio{ctx: ctx, ready: ready, stream: &engineStream{}}
	go func() {
		<-ready
		p := ctx.NewPlayer(ea.stream)
		p.SetVolume(0.4)
		p.Play()
		ea.player = p
	}()
	return ea, nil
}

// SetSpeedRatio publishes |speed|/maxSpeed to the synth. Safe to call from
// the frame loop while the player goroutine reads.
func (ea *EngineAudio) SetSpeedRatio(r float64) {
	if ea == nil {
		return
	}
	ea.stream.ratio.Store(math.Float64bits(clampF(r, 0, 1)))
}

// engineStream generates an endless float32 stereo engine tone: a base
// oscillator plus a detuned overtone, pitch rising with the speed ratio.
type engineStream struct {
	ratio atomic.Uint64
	phase float64
}

func (s *engineStream) Read(p []byte) (int, error) {
	ratio := math.Float64frombits(s.ratio.Load())
	freq := 46.0 + 170.0*ratio
	gain := 0.12 + 0.30*ratio
	step := 2 * math.Pi * freq / SampleRate

	frames := len(p) / (4 * ChannelCount)
	for i := 0; i < frames; i++ {
		s.phase += step
		if s.phase > 2*math.Pi {
			s.phase -= 2 * math.Pi
		}
		v := math.Sin(s.phase) + 0.35*math.Sin(2.03*s.phase)
		sample := math.Float32bits(float32(v * gain))
		off := i * 4 * ChannelCount
		binary.LittleEndian.PutUint32(p[off:], sample)
		binary.LittleEndian.PutUint32(p[off+4:], sample)
	}
	return frames * 4 * ChannelCount, nil
}
