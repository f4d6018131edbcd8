package sprite

import (
	"math"

	"github.com/lixenwraith/runeframe/render"
)

// snapDistance is the anti-jitter floor in pixels: once the visual position
// is this close to the target it snaps instead of creeping
const snapDistance = 0.5

// defaultFrameDuration is the per-frame animation time in seconds
const defaultFrameDuration = 0.1

// Sprite is a block of glyphs that moves as a unit between grid cells.
// The logical position (X, Y) changes instantly on MoveTo; the visual
// position converges toward it at MoveSpeed cells per second. The visual
// position is derived state and never leads the logical one.
type Sprite struct {
	Frames []*Frame
	Fg     render.RGBA
	Bg     *render.RGBA

	// OriginX, OriginY anchor the sprite within its glyph block, in cells
	// (e.g. feet-anchored characters use the bottom row)
	OriginX, OriginY int

	// X, Y is the authoritative grid position in cells
	X, Y int

	// MoveSpeed is the visual approach rate in cells per second; 0 teleports
	MoveSpeed float64

	// FrameDuration is the seconds per animation frame
	FrameDuration float64

	visualX, visualY float64
	currentFrame     int
	frameTimer       float64
	hidden           bool
}

// New creates a sprite at the grid origin with the given default foreground
func New(fg render.RGBA, frames ...*Frame) *Sprite {
	return &Sprite{
		Frames:        frames,
		Fg:            fg,
		FrameDuration: defaultFrameDuration,
	}
}

// MoveTo sets the logical position. Always succeeds, no bounds validation:
// off-grid positions are legal and simply clip when drawn.
func (s *Sprite) MoveTo(x, y int) {
	s.X = x
	s.Y = y
}

// Visible reports whether the sprite should be drawn
func (s *Sprite) Visible() bool { return !s.hidden }

// SetVisible shows or hides the sprite without removing it
func (s *Sprite) SetVisible(v bool) { s.hidden = !v }

// VisualPosition returns the rendered pixel position of the anchor
func (s *Sprite) VisualPosition() (x, y float64) {
	return s.visualX, s.visualY
}

// Update advances the visual position toward the logical target and steps
// the animation timer. The approach is capped linear, not exponential
// easing: the sprite reaches its target in finite time and never overshoots.
func (s *Sprite) Update(dt float64, cellW, cellH int) {
	targetX := float64(s.X * cellW)
	targetY := float64(s.Y * cellH)

	if s.MoveSpeed <= 0 {
		s.visualX = targetX
		s.visualY = targetY
	} else {
		dx := targetX - s.visualX
		dy := targetY - s.visualY
		dist := math.Sqrt(dx*dx + dy*dy)
		if dist > snapDistance {
			step := s.MoveSpeed * float64(cellW) * dt
			if step > dist {
				step = dist
			}
			s.visualX += dx / dist * step
			s.visualY += dy / dist * step
		} else {
			s.visualX = targetX
			s.visualY = targetY
		}
	}

	s.advanceAnimation(dt)
}

// advanceAnimation cycles through frames on the frame timer
func (s *Sprite) advanceAnimation(dt float64) {
	if len(s.Frames) < 2 || s.FrameDuration <= 0 {
		return
	}
	s.frameTimer += dt
	for s.frameTimer >= s.FrameDuration {
		s.frameTimer -= s.FrameDuration
		s.currentFrame = (s.currentFrame + 1) % len(s.Frames)
	}
}

// Frame returns the current animation frame, nil when the sprite is empty
func (s *Sprite) Frame() *Frame {
	if len(s.Frames) == 0 {
		return nil
	}
	return s.Frames[s.currentFrame]
}

// Draw paints the current frame at the visual position, offset by the
// origin anchor. Empty frame data is a no-op.
func (s *Sprite) Draw(c Canvas) {
	f := s.Frame()
	if f == nil {
		return
	}
	cellW, cellH := c.CellSize()
	baseX := s.visualX - float64(s.OriginX*cellW)
	baseY := s.visualY - float64(s.OriginY*cellH)
	drawFrame(c, f, baseX, baseY, s.Fg, s.Bg, 255)
}
