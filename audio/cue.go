// Package audio plays short synthesized cues through the system speaker
// using beep. Playback degrades silently when no audio device is
// available, so callers never need to branch on audio support.
package audio

import "time"

// Cue is a named tone burst
type Cue struct {
	Name     string
	Freq     float64
	Duration time.Duration
	Volume   float64
}

// Built-in cues for common interaction feedback
var (
	CueBlip = Cue{Name: "blip", Freq: 880, Duration: 50 * time.Millisecond, Volume: 0.5}
	CuePop  = Cue{Name: "pop", Freq: 440, Duration: 80 * time.Millisecond, Volume: 0.6}
	CueThud = Cue{Name: "thud", Freq: 110, Duration: 120 * time.Millisecond, Volume: 0.8}
)

// Validate reports whether the cue can be synthesized
func (c Cue) Validate() error {
	if c.Freq <= 0 {
		return errBadFreq
	}
	if c.Duration <= 0 {
		return errBadDuration
	}
	if c.Volume < 0 || c.Volume > 1 {
		return errBadVolume
	}
	return nil
}
