// Catalog of the Legacy Computing wedge characters (U+1FB3C-U+1FB67)
// with shape-drawing examples: rounded rectangles, diagonals, a circle,
// a triangle, an arrow, and a speech bubble.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/runeframe/engine"
	"github.com/lixenwraith/runeframe/glyph"
	"github.com/lixenwraith/runeframe/render"
	"github.com/lixenwraith/runeframe/terminal"
)

const (
	wedgeBase = 0x1FB3C
	fullBlock = '█'
	upperHalf = '▀'
	lowerHalf = '▄'
)

// wedge returns the wedge character at catalog index 0-43. Indices 0-21
// fill below their diagonal; index n+22 is the inverse of index n.
func wedge(i int) rune {
	return rune(wedgeBase + i)
}

// crashReset restores the terminal before a panic's stack trace prints
func crashReset(display *terminal.Display) {
	if r := recover(); r != nil {
		display.Close()
		fmt.Fprintf(os.Stderr, "crashed: %v\nStack Trace:\n%s\n", r, debug.Stack())
		os.Exit(1)
	}
}

func main() {
	fontName := flag.String("font", glyph.DefaultFont, "Font to render with (5x8, 6x13, 9x18, 10x20)")
	flag.Parse()

	if err := run(*fontName); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(fontName string) error {
	display, err := terminal.New()
	if err != nil {
		return err
	}
	defer display.Close()
	defer crashReset(display)

	app, err := engine.New(display, glyph.NewRegistry(), engine.Config{
		Title:  "Wedge Characters Demo",
		Width:  80,
		Height: 40,
		Font:   fontName,
		Bg:     render.RGBA{R: 10, G: 10, B: 30, A: 255},
	})
	if err != nil {
		return err
	}

	root := app.Root()
	return app.Run(engine.Callbacks{
		Render: func() { renderCatalog(root) },
		OnKey: func(key engine.Key) {
			if key.Code == engine.KeyRune && key.Rune == 'q' {
				app.Stop()
			}
		},
	})
}

func renderCatalog(root *engine.Window) {
	title := render.RGBA{R: 200, G: 200, B: 255, A: 255}
	label := render.RGBA{R: 150, G: 150, B: 150, A: 255}
	dim := render.RGBA{R: 80, G: 80, B: 80, A: 255}
	white := render.RGBA{R: 255, G: 255, B: 255, A: 255}

	root.PutString(2, 1, "Legacy Computing Wedge Characters (U+1FB3C-U+1FB67)", title)

	// The 44-glyph grid, base then inverted, 11 per row
	root.PutString(2, 3, "Base wedges (22):", label)
	for i := 0; i < 22; i++ {
		x := 2 + (i%11)*3
		y := 4 + (i/11)*2
		root.Put(x, y, wedge(i), white)
		root.PutString(x, y+1, fmt.Sprintf("%02d", i), dim)
	}
	root.PutString(2, 8, "Inverted wedges (22):", label)
	for i := 0; i < 22; i++ {
		root.Put(2+(i%11)*3, 9+(i/11)*2, wedge(22+i), white)
	}

	drawRoundedRect(root, label)
	drawDiagonal(root, label)
	drawPairs(root, label)
	drawCircle(root, label)
	drawTriangle(root, label)
	drawArrow(root, label)
	drawBubble(root, label)

	root.PutString(2, 38, "Press Q to quit", dim)
}

// drawRoundedRect joins corner wedges 5/16/22/33 with full-block edges
func drawRoundedRect(root *engine.Window, label render.RGBA) {
	root.PutString(2, 14, "Rounded rectangle example:", label)

	rx, ry := 4, 16
	c := render.RGBA{R: 100, G: 200, B: 100, A: 255}
	root.Put(rx, ry, wedge(5), c)
	root.Put(rx+8, ry, wedge(16), c)
	root.Put(rx, ry+3, wedge(22), c)
	root.Put(rx+8, ry+3, wedge(33), c)
	for x := rx + 1; x < rx+8; x++ {
		root.Put(x, ry, fullBlock, c)
		root.Put(x, ry+3, fullBlock, c)
	}
	for y := ry + 1; y < ry+3; y++ {
		for x := rx; x <= rx+8; x++ {
			root.Put(x, y, fullBlock, c)
		}
	}
}

// drawDiagonal steps down-right with alternating wedge pairs 42/20 and 26/4
func drawDiagonal(root *engine.Window, label render.RGBA) {
	root.PutString(30, 14, "Diagonal line:", label)

	dx, dy := 32, 16
	c := render.RGBA{R: 200, G: 150, B: 100, A: 255}
	for i := 0; i < 6; i++ {
		xOff := i/2 + i%2
		if i%2 == 0 {
			root.Put(dx+xOff, dy+i, wedge(42), c)
			root.Put(dx+xOff+1, dy+i, wedge(20), c)
		} else {
			root.Put(dx+xOff, dy+i, wedge(26), c)
			root.Put(dx+xOff+1, dy+i, wedge(4), c)
		}
	}
}

// drawPairs shows base + inverted combining into a full block
func drawPairs(root *engine.Window, label render.RGBA) {
	root.PutString(2, 22, "Wedge pairs (base + inverted = full block):", label)

	amber := render.RGBA{R: 255, G: 200, B: 100, A: 255}
	dim := render.RGBA{R: 100, G: 100, B: 100, A: 255}
	pairs := [][2]int{{0, 22}, {1, 23}, {5, 27}, {11, 33}, {16, 38}}
	for i, p := range pairs {
		x := 4 + i*8
		root.Put(x, 24, wedge(p[0]), amber)
		root.Put(x+1, 24, '+', dim)
		root.Put(x+2, 24, wedge(p[1]), amber)
		root.Put(x+3, 24, '=', dim)
		root.Put(x+4, 24, fullBlock, amber)
	}
}

// drawCircle curves its top and bottom rows through the 1/3 and 2/3 edge
// points and bulges the sides with matched wedge/inverse pairs
func drawCircle(root *engine.Window, label render.RGBA) {
	root.PutString(2, 26, "Circle:", label)

	cx, cy := 4, 28
	c := render.RGBA{R: 200, G: 100, B: 200, A: 255}
	top := []int{14, 6, -1, 17, 3}
	bottom := []int{41, 23, -1, 34, 30}
	for i, idx := range top {
		ch := fullBlock
		if idx >= 0 {
			ch = wedge(idx)
		}
		root.Put(cx+i, cy, ch, c)
	}
	for row := 1; row < 3; row++ {
		for col := 0; col < 5; col++ {
			root.Put(cx+col, cy+row, fullBlock, c)
		}
	}
	root.Put(cx-1, cy+1, wedge(15), c)
	root.Put(cx-1, cy+2, wedge(42), c)
	root.Put(cx+5, cy+1, wedge(4), c)
	root.Put(cx+5, cy+2, wedge(31), c)
	for i, idx := range bottom {
		ch := fullBlock
		if idx >= 0 {
			ch = wedge(idx)
		}
		root.Put(cx+i, cy+3, ch, c)
	}
}

// drawTriangle widens row by row with diagonal edge pairs 15/4 and 9/20
func drawTriangle(root *engine.Window, label render.RGBA) {
	root.PutString(12, 26, "Triangle:", label)

	tx, ty := 14, 28
	c := render.RGBA{R: 100, G: 200, B: 200, A: 255}
	root.Put(tx+2, ty, wedge(15), c)
	root.Put(tx+3, ty, wedge(4), c)
	root.Put(tx+2, ty+1, wedge(9), c)
	root.Put(tx+3, ty+1, wedge(20), c)
	root.Put(tx+1, ty+2, wedge(15), c)
	root.Put(tx+2, ty+2, fullBlock, c)
	root.Put(tx+3, ty+2, fullBlock, c)
	root.Put(tx+4, ty+2, wedge(4), c)
	root.Put(tx+1, ty+3, wedge(9), c)
	root.Put(tx+2, ty+3, fullBlock, c)
	root.Put(tx+3, ty+3, fullBlock, c)
	root.Put(tx+4, ty+3, wedge(20), c)
	root.Put(tx, ty+4, wedge(15), c)
	for i := 0; i < 4; i++ {
		root.Put(tx+1+i, ty+4, fullBlock, c)
	}
	root.Put(tx+5, ty+4, wedge(4), c)
}

// drawArrow draws a thin shaft from half blocks and a wedge arrowhead
func drawArrow(root *engine.Window, label render.RGBA) {
	root.PutString(24, 26, "Arrow:", label)

	ax, ay := 26, 28
	c := render.RGBA{R: 255, G: 200, B: 100, A: 255}
	root.Put(ax, ay, lowerHalf, c)
	root.Put(ax+1, ay, lowerHalf, c)
	root.Put(ax+2, ay, wedge(19), c)
	root.Put(ax+3, ay, wedge(0), c)
	root.Put(ax, ay+1, upperHalf, c)
	root.Put(ax+1, ay+1, upperHalf, c)
	root.Put(ax+2, ay+1, wedge(36), c)
	root.Put(ax+3, ay+1, wedge(27), c)
}

// drawBubble rounds a box with corner wedges and hangs a tail wedge
func drawBubble(root *engine.Window, label render.RGBA) {
	root.PutString(36, 26, "Speech bubble:", label)

	sx, sy := 38, 28
	c := render.RGBA{R: 200, G: 200, B: 200, A: 255}
	root.Put(sx, sy, wedge(5), c)
	for i := 1; i < 8; i++ {
		root.Put(sx+i, sy, fullBlock, c)
	}
	root.Put(sx+8, sy, wedge(16), c)
	root.Put(sx, sy+1, fullBlock, c)
	root.PutString(sx+2, sy+1, "Hello!", c)
	root.Put(sx+8, sy+1, fullBlock, c)
	root.Put(sx, sy+2, wedge(22), c)
	for i := 1; i < 8; i++ {
		root.Put(sx+i, sy+2, fullBlock, c)
	}
	root.Put(sx+8, sy+2, wedge(33), c)
	root.Put(sx+1, sy+3, wedge(29), c)
}
