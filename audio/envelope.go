package audio

import "github.com/gopxl/beep"

// attackFraction of the burst ramps in, releaseFraction ramps out.
// Raw tone bursts click at the edges without this.
const (
	attackFraction  = 0.1
	releaseFraction = 0.3
)

// envelope shapes a tone burst with a linear attack and release and
// scales it to the cue volume.
func envelope(s beep.Streamer, total int, volume float64) beep.Streamer {
	e := &envelopeStreamer{
		inner:        s,
		total:        total,
		attackEnd:    int(float64(total) * attackFraction),
		releaseStart: total - int(float64(total)*releaseFraction),
		volume:       volume,
	}
	return e
}

type envelopeStreamer struct {
	inner        beep.Streamer
	total        int
	attackEnd    int
	releaseStart int
	volume       float64
	pos          int
}

func (e *envelopeStreamer) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.inner.Stream(samples)
	for i := 0; i < n; i++ {
		g := e.gainAt(e.pos + i)
		samples[i][0] *= g
		samples[i][1] *= g
	}
	e.pos += n
	return n, ok
}

func (e *envelopeStreamer) Err() error {
	return e.inner.Err()
}

// gainAt returns the envelope gain for sample index pos
func (e *envelopeStreamer) gainAt(pos int) float64 {
	g := e.volume
	if e.attackEnd > 0 && pos < e.attackEnd {
		g *= float64(pos) / float64(e.attackEnd)
	}
	if pos >= e.releaseStart && e.total > e.releaseStart {
		g *= float64(e.total-pos) / float64(e.total-e.releaseStart)
	}
	return g
}
