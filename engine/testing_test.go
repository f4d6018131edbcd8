package engine

import (
	"image"
	"sync"
	"time"

	"github.com/lixenwraith/runeframe/glyph"
	"github.com/lixenwraith/runeframe/render"
	"github.com/lixenwraith/runeframe/sprite"
)

// memDisplay captures presented frames for inspection
type memDisplay struct {
	mu       sync.Mutex
	events   chan Event
	frames   int
	lastPix  []uint8
	lastRect image.Rectangle
}

func newMemDisplay() *memDisplay {
	return &memDisplay{events: make(chan Event, 16)}
}

func (d *memDisplay) Present(img *image.RGBA) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.frames++
	d.lastPix = append(d.lastPix[:0], img.Pix...)
	d.lastRect = img.Rect
	return nil
}

func (d *memDisplay) Events() <-chan Event { return d.events }

func (d *memDisplay) Close() error { return nil }

func (d *memDisplay) frameCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frames
}

// lastAt returns the pixel of the last presented frame
func (d *memDisplay) lastAt(x, y int) render.RGBA {
	d.mu.Lock()
	defer d.mu.Unlock()
	stride := d.lastRect.Dx() * 4
	i := y*stride + x*4
	return render.RGBA{R: d.lastPix[i], G: d.lastPix[i+1], B: d.lastPix[i+2], A: d.lastPix[i+3]}
}

// fakeClock advances a fixed step on every reading
type fakeClock struct {
	t    time.Time
	step time.Duration
}

func (c *fakeClock) Now() time.Time {
	c.t = c.t.Add(c.step)
	return c.t
}

// fakeDrawable is a minimal sprite.Drawable painting one pixel
type fakeDrawable struct {
	color   render.RGBA
	px, py  float64
	hidden  bool
	dead    bool
	updates int
}

func (f *fakeDrawable) Update(dt float64, cellW, cellH int) { f.updates++ }

func (f *fakeDrawable) Draw(c sprite.Canvas) {
	c.PutAtPixel(f.px, f.py, 0, f.color, &f.color, 255)
}

func (f *fakeDrawable) Visible() bool { return !f.hidden }

type fakeRemovable struct {
	fakeDrawable
}

func (f *fakeRemovable) Removable() bool { return f.dead }

func testRegistry() *Registry {
	return NewRegistry(glyph.NewRegistry())
}
