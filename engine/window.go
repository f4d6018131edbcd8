// Package engine ties the compositing core together: named windows with
// cell grids, the z-ordered compositor, and the frame loop.
package engine

import (
	"github.com/lixenwraith/runeframe/glyph"
	"github.com/lixenwraith/runeframe/render"
	"github.com/lixenwraith/runeframe/sprite"
)

// Window is a rendering surface with its own cell grid and font.
// Windows are composited in ZIndex order onto the framebuffer; each window
// can use a different font or scale for parallax-style layering.
//
// Cell pixel size is fixed at creation: changing font or scale requires
// recreating the window.
type Window struct {
	Name string

	// X, Y is the window position in root cell coordinates
	X, Y int

	// Width, Height is the grid size in this window's own cells
	Width, Height int

	// ZIndex is the compositing order; higher paints later (on top).
	// Ties preserve creation order.
	ZIndex int

	// Alpha is the whole-window opacity applied at composite time
	Alpha uint8

	// Visible windows are composited; hidden ones are skipped entirely
	Visible bool

	// Scale is the uniform cell scale factor fixed at creation
	Scale float64

	bg      render.RGBA
	cache   *glyph.Cache
	cellW   int
	cellH   int
	surface *render.Surface
	sprites []sprite.Drawable
}

func newWindow(cfg WindowConfig, font *glyph.Font, renderer glyph.Renderer) *Window {
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	alpha := cfg.Alpha
	if alpha <= 0 {
		alpha = 255
	}
	if alpha > 255 {
		alpha = 255
	}
	cache := glyph.NewCache(renderer, font, scale)
	cellW, cellH := cache.CellSize()

	return &Window{
		Name:    cfg.Name,
		X:       cfg.X,
		Y:       cfg.Y,
		Width:   cfg.Width,
		Height:  cfg.Height,
		ZIndex:  cfg.ZIndex,
		Alpha:   uint8(alpha),
		Visible: true,
		Scale:   scale,
		bg:      cfg.Bg,
		cache:   cache,
		cellW:   cellW,
		cellH:   cellH,
		surface: render.NewSurface(cfg.Width*cellW, cfg.Height*cellH),
	}
}

// CellSize returns the effective cell dimensions in pixels
func (w *Window) CellSize() (cellW, cellH int) { return w.cellW, w.cellH }

// Surface exposes the window's pixel buffer. The window owns it
// exclusively; other windows never read it.
func (w *Window) Surface() *render.Surface { return w.surface }

// Background returns the clear color applied at the top of each frame
func (w *Window) Background() render.RGBA { return w.bg }

// SetBackground changes the clear color for subsequent frames
func (w *Window) SetBackground(c render.RGBA) { w.bg = c }

// Put draws a character at cell (x, y). Out-of-grid coordinates are
// silently clipped, not an error: render callbacks routinely compute
// positions that drift off-grid during animation.
func (w *Window) Put(x, y int, ch rune, fg render.RGBA) {
	w.PutCell(x, y, ch, fg, nil)
}

// PutCell draws a character with an optional opaque cell background
func (w *Window) PutCell(x, y int, ch rune, fg render.RGBA, bg *render.RGBA) {
	if x < 0 || y < 0 || x >= w.Width || y >= w.Height {
		return
	}
	px := x * w.cellW
	py := y * w.cellH
	if bg != nil {
		w.surface.FillRect(px, py, w.cellW, w.cellH, bg.Opaque())
	}
	w.surface.Blit(w.cache.Glyph(ch, fg), px, py, 255)
}

// PutString draws text starting at cell (x, y), one cell per character
// with no wrapping. Characters past the grid edge clip individually.
func (w *Window) PutString(x, y int, text string, fg render.RGBA) {
	w.PutStringCell(x, y, text, fg, nil)
}

// PutStringCell draws text with an optional opaque per-cell background
func (w *Window) PutStringCell(x, y int, text string, fg render.RGBA, bg *render.RGBA) {
	col := x
	for _, ch := range text {
		w.PutCell(col, y, ch, fg, bg)
		col++
	}
}

// PutAtPixel draws a character at exact pixel coordinates, used by sprite
// interpolation. Bounds are checked against the surface's pixel extent.
// alpha attenuates the glyph; bg, when given, is alpha-blended using its
// own alpha channel scaled by alpha.
func (w *Window) PutAtPixel(px, py float64, ch rune, fg render.RGBA, bg *render.RGBA, alpha uint8) {
	x := int(px)
	y := int(py)
	if x < 0 || y < 0 || x >= w.surface.Width() || y >= w.surface.Height() {
		return
	}
	if bg != nil {
		w.surface.BlendRect(x, y, w.cellW, w.cellH, *bg, alpha)
	}
	w.surface.Blit(w.cache.Glyph(ch, fg), x, y, alpha)
}

// AddSprite appends a sprite to this window's list and returns it for
// chaining. The window owns the sprite; moving a sprite between windows
// means removing it here and adding it there.
func (w *Window) AddSprite(d sprite.Drawable) sprite.Drawable {
	w.sprites = append(w.sprites, d)
	return d
}

// RemoveSprite drops a sprite from the list; removing a non-member is a no-op
func (w *Window) RemoveSprite(d sprite.Drawable) {
	for i, s := range w.sprites {
		if s == d {
			w.sprites = append(w.sprites[:i], w.sprites[i+1:]...)
			return
		}
	}
}

// SpriteCount returns the number of owned sprites
func (w *Window) SpriteCount() int { return len(w.sprites) }

// UpdateSprites advances every owned sprite's physics, then purges the ones
// reporting removable (dead effects). Plain sprites are never purged.
func (w *Window) UpdateSprites(dt float64) {
	for _, s := range w.sprites {
		s.Update(dt, w.cellW, w.cellH)
	}
	kept := w.sprites[:0]
	for _, s := range w.sprites {
		if r, ok := s.(sprite.Removable); ok && r.Removable() {
			continue
		}
		kept = append(kept, s)
	}
	for i := len(kept); i < len(w.sprites); i++ {
		w.sprites[i] = nil
	}
	w.sprites = kept
}

// DrawSprites draws every visible sprite in list order; later entries paint
// over earlier ones. There is no z-ordering among sprites within a window.
func (w *Window) DrawSprites() {
	for _, s := range w.sprites {
		if s.Visible() {
			s.Draw(w)
		}
	}
}
