package sprite

import (
	"github.com/lixenwraith/runeframe/render"
)

// Canvas is the drawing target a sprite renders into. engine.Window
// implements it; tests use in-memory fakes.
type Canvas interface {
	// PutAtPixel draws one character at exact pixel coordinates with the
	// given opacity. bg, when non-nil, is alpha-blended behind the glyph.
	PutAtPixel(px, py float64, ch rune, fg render.RGBA, bg *render.RGBA, alpha uint8)
	// CellSize returns the canvas's effective cell dimensions in pixels
	CellSize() (w, h int)
}

// Drawable is the uniform contract a window's sprite list operates on
type Drawable interface {
	Update(dt float64, cellW, cellH int)
	Draw(c Canvas)
	Visible() bool
}

// Removable is an optional capability: drawables reporting true are purged
// from their window on the next update pass. Plain sprites never implement
// it and are never purged.
type Removable interface {
	Removable() bool
}

// drawFrame paints one frame with its top-left corner at (baseX, baseY)
// pixels. Transparent placeholder cells are skipped entirely so underlying
// content shows through.
func drawFrame(c Canvas, f *Frame, baseX, baseY float64, fg render.RGBA, bg *render.RGBA, alpha uint8) {
	if f == nil || f.Width == 0 || f.Height == 0 {
		return
	}
	cellW, cellH := c.CellSize()
	for row, chars := range f.Chars {
		for col, ch := range chars {
			if ch == Transparent {
				continue
			}
			px := baseX + float64(col*cellW)
			py := baseY + float64(row*cellH)
			c.PutAtPixel(px, py, ch, f.fgAt(col, row, fg), f.bgAt(col, row, bg), alpha)
		}
	}
}
