package sprite

import (
	"math"

	"github.com/lixenwraith/runeframe/render"
)

// Effect is a visual-only sprite for particles, sparks, and explosions.
// There is no logical/visual split: position is float cells, integrated from
// velocity each update. Lifecycle is one-way alive → dead; once the fade
// completes the effect hides itself and reports removable, permanently.
type Effect struct {
	Frames []*Frame
	Fg     render.RGBA
	Bg     *render.RGBA

	OriginX, OriginY int

	// X, Y is the position in cells (float for smooth movement)
	X, Y float64

	// VX, VY is the velocity in cells per second
	VX, VY float64

	// Drag is the per-second multiplicative velocity decay in (0,1];
	// 1 means no decay. Applied as drag**dt so it is frame-rate independent.
	Drag float64

	// FadeTime is the seconds until fully transparent; 0 never fades
	FadeTime float64

	fadeElapsed  float64
	baseAlpha    uint8
	currentFrame int
	alive        bool
	hidden       bool
}

// NewEffect creates an alive, visible effect at the cell origin
func NewEffect(fg render.RGBA, frames ...*Frame) *Effect {
	return &Effect{
		Frames:    frames,
		Fg:        fg,
		Drag:      1.0,
		baseAlpha: 255,
		alive:     true,
	}
}

// Alive reports whether the effect is still running its lifecycle
func (e *Effect) Alive() bool { return e.alive }

// Visible reports whether the effect should be drawn
func (e *Effect) Visible() bool { return e.alive && !e.hidden }

// SetVisible shows or hides the effect; a dead effect stays invisible
func (e *Effect) SetVisible(v bool) { e.hidden = !v }

// Removable reports true once the effect has died, letting the owning
// window purge it on the next update pass
func (e *Effect) Removable() bool { return !e.alive }

// Update integrates velocity, applies drag decay, and accumulates fade.
// No-op once dead; an effect is never resurrected.
func (e *Effect) Update(dt float64, cellW, cellH int) {
	if !e.alive {
		return
	}

	// Euler step; per-frame dt is small enough for particle work
	e.X += e.VX * dt
	e.Y += e.VY * dt

	if e.Drag > 0 && e.Drag < 1 {
		decay := math.Pow(e.Drag, dt)
		e.VX *= decay
		e.VY *= decay
	}

	if e.FadeTime > 0 {
		e.fadeElapsed += dt
		if e.fadeElapsed >= e.FadeTime {
			e.alive = false
			e.hidden = true
		}
	}
}

// alpha returns the instantaneous opacity from the fade progress
func (e *Effect) alpha() uint8 {
	if e.FadeTime <= 0 {
		return e.baseAlpha
	}
	progress := e.fadeElapsed / e.FadeTime
	if progress >= 1 {
		return 0
	}
	if progress < 0 {
		progress = 0
	}
	return uint8(float64(e.baseAlpha) * (1 - progress))
}

// Frame returns the current frame, nil when the effect is empty
func (e *Effect) Frame() *Frame {
	if len(e.Frames) == 0 {
		return nil
	}
	return e.Frames[e.currentFrame]
}

// Draw paints the current frame at the cell position with fade applied
// per character. Empty frame data is a no-op.
func (e *Effect) Draw(c Canvas) {
	f := e.Frame()
	if f == nil || !e.Visible() {
		return
	}
	cellW, cellH := c.CellSize()
	baseX := (e.X - float64(e.OriginX)) * float64(cellW)
	baseY := (e.Y - float64(e.OriginY)) * float64(cellH)
	drawFrame(c, f, baseX, baseY, e.Fg, e.Bg, e.alpha())
}
