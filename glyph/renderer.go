package glyph

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/lixenwraith/runeframe/render"
)

// Renderer produces a pixel buffer of cell dimensions for one character.
// Implementations are free to antialias; the engine treats the result as
// opaque data and caches it by character and color.
type Renderer interface {
	Render(ch rune, fg render.RGBA, f *Font) *image.RGBA
}

// FaceRenderer rasterizes through the font's x/image face
type FaceRenderer struct{}

// Render draws ch into a transparent cell-sized buffer with the baseline at
// the face ascent
func (FaceRenderer) Render(ch rune, fg render.RGBA, f *Font) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.CellWidth, f.CellHeight))
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.NRGBA{R: fg.R, G: fg.G, B: fg.B, A: fg.A}),
		Face: f.Face,
		Dot:  fixed.Point26_6{X: 0, Y: f.ascent},
	}
	d.DrawString(string(ch))
	return img
}
