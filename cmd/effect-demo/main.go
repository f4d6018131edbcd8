// Particle burst demo: Space spawns a burst of effect sprites with
// velocity, drag, and fade. Arrow keys move the spawn point.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"runtime/debug"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/runeframe/audio"
	"github.com/lixenwraith/runeframe/engine"
	"github.com/lixenwraith/runeframe/glyph"
	"github.com/lixenwraith/runeframe/render"
	"github.com/lixenwraith/runeframe/sprite"
	"github.com/lixenwraith/runeframe/terminal"
)

var particleChars = []rune{'*', '+', '.', '·', '°'}

// emberColor samples the yellow-orange band of the HSV wheel
func emberColor() render.RGBA {
	c := colorful.Hsv(20+rand.Float64()*40, 0.6+rand.Float64()*0.4, 1.0)
	return render.RGBA{
		R: uint8(c.R * 255),
		G: uint8(c.G * 255),
		B: uint8(c.B * 255),
		A: 255,
	}
}

func spawnBurst(w *engine.Window, x, y float64, count int) {
	for i := 0; i < count; i++ {
		ch := particleChars[rand.Intn(len(particleChars))]
		e := sprite.EffectFromString(string(ch), x, y, emberColor(), nil)
		e.VX = rand.Float64()*16 - 8
		e.VY = -(4 + rand.Float64()*8)
		e.Drag = 0.2 + rand.Float64()*0.3
		e.FadeTime = 0.5 + rand.Float64()
		w.AddSprite(e)
	}
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
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	display, err := terminal.New()
	if err != nil {
		return err
	}
	defer display.Close()
	defer crashReset(display)

	app, err := engine.New(display, glyph.NewRegistry(), engine.Config{
		Title:  "Effect Demo",
		Width:  60,
		Height: 30,
		Bg:     render.RGBA{R: 10, G: 10, B: 20, A: 255},
	})
	if err != nil {
		return err
	}

	player := audio.NewPlayer()
	defer player.Close()

	root := app.Root()
	spawnX, spawnY := 30, 15

	dim := render.RGBA{R: 80, G: 80, B: 80, A: 255}
	marker := render.RGBA{R: 100, G: 100, B: 100, A: 255}

	return app.Run(engine.Callbacks{
		Update: func(dt float64) {
			root.UpdateSprites(dt)
		},
		Render: func() {
			root.Put(spawnX, spawnY, '+', marker)
			root.PutString(1, 1, "Space: spawn particles  Arrows: move spawn point  Q: quit", dim)
			root.PutString(1, 28, fmt.Sprintf("Particles: %d", root.SpriteCount()), dim)
			root.DrawSprites()
		},
		OnKey: func(key engine.Key) {
			switch key.Code {
			case engine.KeyLeft:
				if spawnX > 5 {
					spawnX--
				}
			case engine.KeyRight:
				if spawnX < 55 {
					spawnX++
				}
			case engine.KeyUp:
				if spawnY > 5 {
					spawnY--
				}
			case engine.KeyDown:
				if spawnY < 25 {
					spawnY++
				}
			case engine.KeyRune:
				switch key.Rune {
				case ' ':
					spawnBurst(root, float64(spawnX), float64(spawnY), 10)
					player.Play(audio.CueBlip)
				case 'q':
					app.Stop()
				}
			}
		},
	})
}
