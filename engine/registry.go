package engine

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/runeframe/glyph"
	"github.com/lixenwraith/runeframe/render"
	"github.com/lixenwraith/runeframe/sprite"
)

// ErrNotFound is returned when looking up a window name that was never
// created. This is a programming error in the render callback, surfaced
// immediately rather than swallowed.
var ErrNotFound = errors.New("window not found")

// WindowConfig describes a window to create. Zero values pick defaults:
// empty Font means glyph.DefaultFont, zero Scale means 1.0, zero Alpha
// means opaque, zero Bg means fully transparent.
type WindowConfig struct {
	Name          string
	X, Y          int
	Width, Height int
	ZIndex        int
	Font          string
	Scale         float64
	Alpha         int
	Bg            render.RGBA
}

// Registry owns all windows by unique name. It is the sole shared mutable
// resource of the engine and is only mutated between ticks; no locking is
// needed because the tick itself is single-threaded.
type Registry struct {
	fonts    *glyph.Registry
	renderer glyph.Renderer
	windows  map[string]*Window
	order    []*Window

	rootCellW int
	rootCellH int
}

// NewRegistry creates an empty registry rendering through the given font
// registry and the default face rasterizer
func NewRegistry(fonts *glyph.Registry) *Registry {
	return &Registry{
		fonts:    fonts,
		renderer: glyph.FaceRenderer{},
		windows:  make(map[string]*Window),
	}
}

// SetRenderer swaps the glyph rasterizer used for windows created after
// this call (tests inject deterministic renderers here)
func (r *Registry) SetRenderer(renderer glyph.Renderer) {
	r.renderer = renderer
}

// Create makes a named window, overwriting any existing window with the
// same name in place (its position in creation order is retained).
// Unknown font names fail here, before the frame loop ever runs.
func (r *Registry) Create(cfg WindowConfig) (*Window, error) {
	if cfg.Name == "" {
		return nil, fmt.Errorf("window name must not be empty")
	}
	fontName := cfg.Font
	if fontName == "" {
		fontName = glyph.DefaultFont
	}
	font, err := r.fonts.Load(fontName)
	if err != nil {
		return nil, fmt.Errorf("create window %q: %w", cfg.Name, err)
	}

	w := newWindow(cfg, font, r.renderer)

	if old, ok := r.windows[cfg.Name]; ok {
		for i, existing := range r.order {
			if existing == old {
				r.order[i] = w
				break
			}
		}
	} else {
		r.order = append(r.order, w)
	}
	r.windows[cfg.Name] = w

	// The first window created fixes the reference cell size used to
	// position every window in one coordinate space
	if r.rootCellW == 0 {
		r.rootCellW, r.rootCellH = w.CellSize()
	}
	return w, nil
}

// Get returns the window with the given name or ErrNotFound
func (r *Registry) Get(name string) (*Window, error) {
	w, ok := r.windows[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return w, nil
}

// Remove deletes a window by name; absent names are a no-op. The window's
// surface and sprites go with it.
func (r *Registry) Remove(name string) {
	w, ok := r.windows[name]
	if !ok {
		return
	}
	delete(r.windows, name)
	for i, existing := range r.order {
		if existing == w {
			r.order = append(r.order[:i], r.order[i+1:]...)
			return
		}
	}
}

// Len returns the number of registered windows
func (r *Registry) Len() int { return len(r.windows) }

// RootCellSize returns the reference cell size in pixels, set by the first
// window created
func (r *Registry) RootCellSize() (w, h int) { return r.rootCellW, r.rootCellH }

// creationOrder returns windows in stable creation order
func (r *Registry) creationOrder() []*Window { return r.order }

// zOrder returns windows sorted by ascending ZIndex; equal indices keep
// creation order (stable insertion sort, window counts are small)
func (r *Registry) zOrder() []*Window {
	sorted := make([]*Window, len(r.order))
	copy(sorted, r.order)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j-1].ZIndex > sorted[j].ZIndex; j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}
	return sorted
}

// TransferSprite moves a sprite between windows explicitly. Ownership is
// exclusive: the sprite leaves from's list before joining to's.
func TransferSprite(from, to *Window, d sprite.Drawable) {
	from.RemoveSprite(d)
	to.AddSprite(d)
}
