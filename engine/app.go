package engine

import (
	"github.com/lixenwraith/runeframe/glyph"
	"github.com/lixenwraith/runeframe/render"
)

// RootWindow is the name of the window created at initialization. Its cell
// size is the reference coordinate space for positioning all windows.
const RootWindow = "root"

// Config describes an application grid. Zero values pick defaults: Font
// falls back to glyph.DefaultFont and FPS to DefaultFPS.
type Config struct {
	Title         string
	Width, Height int
	Font          string
	Bg            render.RGBA
	FPS           int
}

// App bundles a window registry, compositor, and frame loop around one
// display, mirroring the usual init-then-run flow of a client program.
type App struct {
	Windows *Registry

	comp *Compositor
	loop *Loop
}

// New initializes the engine: it creates the root window sized to the
// configured grid and a framebuffer matching its pixel dimensions.
// Font problems surface here, never mid-frame.
func New(display Display, fonts *glyph.Registry, cfg Config) (*App, error) {
	reg := NewRegistry(fonts)
	root, err := reg.Create(WindowConfig{
		Name:   RootWindow,
		Width:  cfg.Width,
		Height: cfg.Height,
		Font:   cfg.Font,
		Bg:     cfg.Bg,
	})
	if err != nil {
		return nil, err
	}

	if t, ok := display.(interface{ SetTitle(string) }); ok && cfg.Title != "" {
		t.SetTitle(cfg.Title)
	}

	comp := NewCompositor(reg, display, root.Surface().Width(), root.Surface().Height())
	loop := NewLoop(comp, display, NewTimeProvider(), cfg.FPS)

	return &App{
		Windows: reg,
		comp:    comp,
		loop:    loop,
	}, nil
}

// Root returns the root window
func (a *App) Root() *Window {
	w, _ := a.Windows.Get(RootWindow)
	return w
}

// Run executes the frame loop until a stop condition
func (a *App) Run(cb Callbacks) error {
	return a.loop.Run(cb)
}

// Stop requests a cooperative exit at the next tick boundary
func (a *App) Stop() {
	a.loop.Stop()
}
