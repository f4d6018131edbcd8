// Package sprite implements animatable glyph blocks: grid-locked sprites
// with interpolated visual movement, and free-floating effect sprites driven
// by velocity, drag, and fade.
package sprite

import (
	"github.com/lixenwraith/runeframe/render"
)

// Transparent is the placeholder character for empty cells in a frame
const Transparent = ' '

// Frame is a single immutable frame of a sprite animation: a rectangular
// grid of characters with optional per-cell color overrides. A nil override
// means "use the sprite default".
type Frame struct {
	Chars  [][]rune
	Fg     [][]*render.RGBA
	Bg     [][]*render.RGBA
	Width  int
	Height int
}

// NewFrame builds a frame from rows of characters. Rows are padded to the
// widest row with the transparent placeholder. Color override grids may be
// nil or ragged; missing entries mean no override.
func NewFrame(chars [][]rune, fg, bg [][]*render.RGBA) *Frame {
	width := 0
	for _, row := range chars {
		if len(row) > width {
			width = len(row)
		}
	}
	for i, row := range chars {
		for len(row) < width {
			row = append(row, Transparent)
		}
		chars[i] = row
	}
	return &Frame{
		Chars:  chars,
		Fg:     fg,
		Bg:     bg,
		Width:  width,
		Height: len(chars),
	}
}

// fgAt returns the foreground override at (col, row), or def when absent
func (f *Frame) fgAt(col, row int, def render.RGBA) render.RGBA {
	if row < len(f.Fg) && col < len(f.Fg[row]) && f.Fg[row][col] != nil {
		return *f.Fg[row][col]
	}
	return def
}

// bgAt returns the background override at (col, row), or def when absent
func (f *Frame) bgAt(col, row int, def *render.RGBA) *render.RGBA {
	if row < len(f.Bg) && col < len(f.Bg[row]) && f.Bg[row][col] != nil {
		return f.Bg[row][col]
	}
	return def
}
