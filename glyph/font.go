// Package glyph turns characters into pixel buffers. It owns font handles,
// cell-size discovery, and a per-window glyph cache; actual rasterization is
// delegated to an x/image font.Face.
package glyph

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// referenceRune is the full-block glyph rendered once per font to discover
// the fixed cell dimensions
const referenceRune = '█'

// DefaultFont is the font used when none is specified
const DefaultFont = "10x20"

// Font is an immutable handle to a loaded face plus its discovered cell size
type Font struct {
	Name       string
	Face       font.Face
	CellWidth  int
	CellHeight int

	ascent fixed.Int26_6
}

// Spec describes a loadable font: TTF bytes and a pixel size
type Spec struct {
	TTF  []byte
	Size float64
}

// Registry maps font names to loaded handles. Unknown names fail fast with
// the list of valid names, at window-creation time rather than mid-frame.
type Registry struct {
	specs map[string]Spec
	fonts map[string]*Font
}

// NewRegistry creates a registry preloaded with the built-in monospace sizes.
// Names keep the cell-size convention of classic bitmap terminal fonts.
func NewRegistry() *Registry {
	r := &Registry{
		specs: make(map[string]Spec),
		fonts: make(map[string]*Font),
	}
	r.Register("5x8", gomono.TTF, 8)
	r.Register("6x13", gomono.TTF, 13)
	r.Register("9x18", gomono.TTF, 18)
	r.Register("10x20", gomono.TTF, 20)
	return r
}

// Register adds or replaces a font spec. Loading is deferred until first use.
func (r *Registry) Register(name string, ttf []byte, size float64) {
	r.specs[name] = Spec{TTF: ttf, Size: size}
	delete(r.fonts, name)
}

// Names returns the registered font names, sorted
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.specs))
	for name := range r.specs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load returns the handle for a named font, parsing and measuring it on
// first use. The handle is shared between all windows using the font.
func (r *Registry) Load(name string) (*Font, error) {
	if f, ok := r.fonts[name]; ok {
		return f, nil
	}
	spec, ok := r.specs[name]
	if !ok {
		return nil, fmt.Errorf("unknown font %q (available: %s)", name, strings.Join(r.Names(), ", "))
	}

	parsed, err := opentype.Parse(spec.TTF)
	if err != nil {
		return nil, fmt.Errorf("font %q: %w", name, err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    spec.Size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font %q: %w", name, err)
	}

	f := &Font{Name: name, Face: face}
	f.CellWidth, f.CellHeight, f.ascent = measureCell(face)
	r.fonts[name] = f
	return f, nil
}

// measureCell discovers the fixed cell dimensions of a monospace face from
// its reference full-block glyph and vertical metrics
func measureCell(face font.Face) (w, h int, ascent fixed.Int26_6) {
	adv, ok := face.GlyphAdvance(referenceRune)
	if !ok {
		// Fall back to 'M' for faces missing the block glyph
		adv, _ = face.GlyphAdvance('M')
	}
	m := face.Metrics()
	w = adv.Ceil()
	h = (m.Ascent + m.Descent).Ceil()
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h, m.Ascent
}
