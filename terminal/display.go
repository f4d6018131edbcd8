// Package terminal presents composited framebuffers in a terminal through
// tcell. Each terminal cell shows two vertically stacked pixels using the
// upper-half-block glyph: the top pixel is the cell foreground, the bottom
// pixel the cell background.
package terminal

import (
	"image"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/draw"

	"github.com/lixenwraith/runeframe/engine"
)

const halfBlock = '▀'

// keyMap translates tcell special keys to engine key codes
var keyMap = map[tcell.Key]engine.KeyCode{
	tcell.KeyEscape:     engine.KeyEscape,
	tcell.KeyEnter:      engine.KeyEnter,
	tcell.KeyTab:        engine.KeyTab,
	tcell.KeyBackspace:  engine.KeyBackspace,
	tcell.KeyBackspace2: engine.KeyBackspace,
	tcell.KeyUp:         engine.KeyUp,
	tcell.KeyDown:       engine.KeyDown,
	tcell.KeyLeft:       engine.KeyLeft,
	tcell.KeyRight:      engine.KeyRight,
}

// Display is the tcell implementation of engine.Display
type Display struct {
	screen tcell.Screen
	events chan engine.Event
	scaled *image.RGBA
}

// New initializes the terminal screen and starts the input poller
func New() (*Display, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return newFromScreen(screen)
}

// newFromScreen wraps an existing screen; tests pass simulation screens
func newFromScreen(screen tcell.Screen) (*Display, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()

	d := &Display{
		screen: screen,
		events: make(chan engine.Event, 64),
	}
	go d.poll()
	return d, nil
}

// SetTitle sets the terminal title where supported
func (d *Display) SetTitle(title string) {
	d.screen.SetTitle(title)
}

// Events implements engine.Display
func (d *Display) Events() <-chan engine.Event { return d.events }

// Close restores the terminal
func (d *Display) Close() error {
	d.screen.Fini()
	return nil
}

// poll translates tcell events until the screen is finalized
func (d *Display) poll() {
	defer close(d.events)
	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			return
		}
		switch tev := ev.(type) {
		case *tcell.EventKey:
			if tev.Key() == tcell.KeyCtrlC {
				d.events <- engine.Event{Type: engine.EventQuit}
				continue
			}
			if code, ok := keyMap[tev.Key()]; ok {
				d.events <- engine.Event{Type: engine.EventKey, Key: engine.Key{Code: code}}
				continue
			}
			if tev.Key() == tcell.KeyRune {
				d.events <- engine.Event{Type: engine.EventKey, Key: engine.Key{Code: engine.KeyRune, Rune: tev.Rune()}}
			}
		case *tcell.EventResize:
			d.screen.Sync()
		}
	}
}

// Present scales the framebuffer to fit the terminal's pixel grid
// (width × 2·height), preserving aspect ratio with letterboxing, then
// writes half-block cells.
func (d *Display) Present(img *image.RGBA) error {
	termW, termH := d.screen.Size()
	if termW < 1 || termH < 1 {
		return nil
	}
	pixW, pixH := termW, termH*2

	srcW := img.Bounds().Dx()
	srcH := img.Bounds().Dy()
	if srcW < 1 || srcH < 1 {
		return nil
	}

	// Fit-preserving scale, centered
	sx := float64(pixW) / float64(srcW)
	sy := float64(pixH) / float64(srcH)
	scale := sx
	if sy < scale {
		scale = sy
	}
	dstW := int(float64(srcW) * scale)
	dstH := int(float64(srcH) * scale)
	if dstW < 1 {
		dstW = 1
	}
	if dstH < 1 {
		dstH = 1
	}
	offX := (pixW - dstW) / 2
	offY := (pixH - dstH) / 2

	if d.scaled == nil || d.scaled.Bounds().Dx() != dstW || d.scaled.Bounds().Dy() != dstH {
		d.scaled = image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	}
	draw.ApproxBiLinear.Scale(d.scaled, d.scaled.Bounds(), img, img.Bounds(), draw.Src, nil)

	for cy := 0; cy < termH; cy++ {
		for cx := 0; cx < termW; cx++ {
			top := d.pixelAt(cx, cy*2, offX, offY, dstW, dstH)
			bottom := d.pixelAt(cx, cy*2+1, offX, offY, dstW, dstH)
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			d.screen.SetContent(cx, cy, halfBlock, nil, style)
		}
	}
	d.screen.Show()
	return nil
}

// pixelAt samples the scaled buffer at framebuffer pixel (px, py) in the
// letterboxed coordinate space; outside the content it is black
func (d *Display) pixelAt(px, py, offX, offY, w, h int) tcell.Color {
	x := px - offX
	y := py - offY
	if x < 0 || y < 0 || x >= w || y >= h {
		return tcell.NewRGBColor(0, 0, 0)
	}
	i := d.scaled.PixOffset(x, y)
	p := d.scaled.Pix[i : i+4 : i+4]
	// Flatten straight alpha against the black letterbox
	a := int32(p[3])
	return tcell.NewRGBColor(
		int32(p[0])*a/255,
		int32(p[1])*a/255,
		int32(p[2])*a/255,
	)
}
