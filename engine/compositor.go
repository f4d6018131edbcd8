package engine

import (
	"github.com/lixenwraith/runeframe/render"
)

// Compositor runs the per-frame pipeline: clear every window to its
// background, let the client draw, then merge all visible windows onto the
// framebuffer in ascending z-order and present.
//
// Compositing is strictly additive painter's-algorithm blending; no window
// ever reads another window's surface and there is no occlusion culling.
type Compositor struct {
	reg         *Registry
	display     Display
	framebuffer *render.Surface
	clearColor  render.RGBA
}

// NewCompositor creates a compositor with a framebuffer of the given pixel
// dimensions
func NewCompositor(reg *Registry, display Display, width, height int) *Compositor {
	return &Compositor{
		reg:         reg,
		display:     display,
		framebuffer: render.NewSurface(width, height),
		clearColor:  render.Black,
	}
}

// Framebuffer exposes the shared output surface (tests read it back)
func (c *Compositor) Framebuffer() *render.Surface { return c.framebuffer }

// Frame executes one deterministic compositing pass. renderFn is the
// client render callback issuing draw calls against windows; it may be nil.
func (c *Compositor) Frame(renderFn func()) error {
	// 1. Clear every window to its background, full overwrite
	for _, w := range c.reg.creationOrder() {
		w.surface.Fill(w.bg)
	}

	// 2. Client draws
	if renderFn != nil {
		renderFn()
	}

	// 3-4. Blit visible windows in z-order with per-window alpha, placing
	// each at its root-cell position converted through the root cell size
	// (not the window's own, possibly different, cell size)
	c.framebuffer.Fill(c.clearColor)
	rootW, rootH := c.reg.RootCellSize()
	for _, w := range c.reg.zOrder() {
		if !w.Visible {
			continue
		}
		c.framebuffer.Blit(w.surface.Image(), w.X*rootW, w.Y*rootH, w.Alpha)
	}

	// 5. Present
	return c.display.Present(c.framebuffer.Image())
}
