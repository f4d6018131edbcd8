package glyph

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/lixenwraith/runeframe/render"
)

type cacheKey struct {
	ch rune
	fg render.RGBA
}

// Cache memoizes rendered glyphs for one window, scaled to the window's
// effective cell size. Windows never share caches because the scale is part
// of the cell geometry fixed at window creation.
type Cache struct {
	renderer Renderer
	font     *Font
	cellW    int
	cellH    int
	glyphs   map[cacheKey]*image.RGBA
}

// NewCache creates a glyph cache for the given font and uniform scale factor
func NewCache(renderer Renderer, f *Font, scale float64) *Cache {
	if scale <= 0 {
		scale = 1
	}
	cellW := int(float64(f.CellWidth) * scale)
	cellH := int(float64(f.CellHeight) * scale)
	if cellW < 1 {
		cellW = 1
	}
	if cellH < 1 {
		cellH = 1
	}
	return &Cache{
		renderer: renderer,
		font:     f,
		cellW:    cellW,
		cellH:    cellH,
		glyphs:   make(map[cacheKey]*image.RGBA),
	}
}

// CellSize returns the effective (scaled) cell dimensions in pixels
func (c *Cache) CellSize() (w, h int) { return c.cellW, c.cellH }

// Font returns the backing font handle
func (c *Cache) Font() *Font { return c.font }

// Glyph returns the cached pixel buffer for ch in fg, rendering and scaling
// it on first use. Callers must not mutate the returned buffer.
func (c *Cache) Glyph(ch rune, fg render.RGBA) *image.RGBA {
	key := cacheKey{ch: ch, fg: fg}
	if img, ok := c.glyphs[key]; ok {
		return img
	}

	img := c.renderer.Render(ch, fg, c.font)
	if c.cellW != c.font.CellWidth || c.cellH != c.font.CellHeight {
		scaled := image.NewRGBA(image.Rect(0, 0, c.cellW, c.cellH))
		draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)
		img = scaled
	}
	c.glyphs[key] = img
	return img
}
