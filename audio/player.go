package audio

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

var (
	errBadFreq     = errors.New("audio: cue frequency must be positive")
	errBadDuration = errors.New("audio: cue duration must be positive")
	errBadVolume   = errors.New("audio: cue volume must be in [0, 1]")
)

// Player plays cues through the speaker. The zero value is unusable;
// construct with NewPlayer.
type Player struct {
	ready atomic.Bool
	muted atomic.Bool
}

// NewPlayer initializes the speaker with a 100ms buffer. Initialization
// failure is not an error: the player stays silent and Play becomes a
// no-op.
func NewPlayer() *Player {
	p := &Player{}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err == nil {
		p.ready.Store(true)
	}
	return p
}

// Ready reports whether the speaker initialized
func (p *Player) Ready() bool { return p.ready.Load() }

// SetMuted toggles playback without tearing down the speaker
func (p *Player) SetMuted(muted bool) { p.muted.Store(muted) }

// Muted reports the mute state
func (p *Player) Muted() bool { return p.muted.Load() }

// Play synthesizes the cue and queues it on the speaker. Invalid cues
// return an error; a silent or muted player returns nil without playing.
func (p *Player) Play(c Cue) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if !p.ready.Load() || p.muted.Load() {
		return nil
	}

	sine, err := generators.SineTone(sampleRate, c.Freq)
	if err != nil {
		return err
	}
	n := sampleRate.N(c.Duration)
	speaker.Play(envelope(beep.Take(n, sine), n, c.Volume))
	return nil
}

// Close releases the speaker
func (p *Player) Close() {
	if p.ready.Load() {
		speaker.Close()
		p.ready.Store(false)
	}
}
