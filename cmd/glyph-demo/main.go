// Minimal runeframe client: one root window, a greeting, and a glyph.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/runeframe/config"
	"github.com/lixenwraith/runeframe/engine"
	"github.com/lixenwraith/runeframe/glyph"
	"github.com/lixenwraith/runeframe/render"
	"github.com/lixenwraith/runeframe/terminal"
)

// crashReset restores the terminal before a panic's stack trace prints
func crashReset(display *terminal.Display) {
	if r := recover(); r != nil {
		display.Close()
		fmt.Fprintf(os.Stderr, "crashed: %v\nStack Trace:\n%s\n", r, debug.Stack())
		os.Exit(1)
	}
}

func main() {
	configPath := flag.String("config", "runeframe.toml", "Path to TOML config")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	display, err := terminal.New()
	if err != nil {
		return err
	}
	defer display.Close()
	defer crashReset(display)

	app, err := engine.New(display, glyph.NewRegistry(), engine.Config{
		Title:  cfg.Title,
		Width:  cfg.Width,
		Height: cfg.Height,
		Font:   cfg.Font,
		Bg:     cfg.Background.RGBA(),
		FPS:    cfg.FPS,
	})
	if err != nil {
		return err
	}

	root := app.Root()
	return app.Run(engine.Callbacks{
		Render: func() {
			root.PutString(10, 5, "Hello, runeframe!", render.RGBA{G: 255, A: 255})
			root.Put(10, 7, '@', render.RGBA{R: 255, G: 255, A: 255})
		},
		OnKey: func(key engine.Key) {
			if key.Code == engine.KeyRune && key.Rune == 'q' {
				app.Stop()
			}
		},
	})
}
