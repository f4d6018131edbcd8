package engine

import (
	"testing"

	"github.com/lixenwraith/runeframe/render"
	"github.com/lixenwraith/runeframe/sprite"
)

func TestZOrderCompositing(t *testing.T) {
	r := testRegistry()
	red := render.RGBA{R: 255, G: 0, B: 0, A: 255}
	blue := render.RGBA{R: 0, G: 0, B: 255, A: 255}

	mustCreate(t, r, WindowConfig{Name: "a", Width: 2, Height: 2, ZIndex: 0, Bg: red})
	mustCreate(t, r, WindowConfig{Name: "b", Width: 2, Height: 2, ZIndex: 1, Bg: blue})

	d := newMemDisplay()
	comp := NewCompositor(r, d, 64, 64)
	if err := comp.Frame(nil); err != nil {
		t.Fatalf("Frame failed: %v", err)
	}

	if got := d.lastAt(1, 1); got != blue {
		t.Errorf("Overlapping pixel = %v, want higher z window's %v", got, blue)
	}
}

func TestZOrderTieKeepsCreationOrder(t *testing.T) {
	r := testRegistry()
	red := render.RGBA{R: 255, G: 0, B: 0, A: 255}
	blue := render.RGBA{R: 0, G: 0, B: 255, A: 255}

	mustCreate(t, r, WindowConfig{Name: "a", Width: 2, Height: 2, ZIndex: 3, Bg: red})
	mustCreate(t, r, WindowConfig{Name: "b", Width: 2, Height: 2, ZIndex: 3, Bg: blue})

	d := newMemDisplay()
	comp := NewCompositor(r, d, 64, 64)
	if err := comp.Frame(nil); err != nil {
		t.Fatalf("Frame failed: %v", err)
	}

	if got := d.lastAt(1, 1); got != blue {
		t.Errorf("Equal z-index should paint in creation order, got %v", got)
	}
}

func TestHiddenWindowSkipped(t *testing.T) {
	r := testRegistry()
	red := render.RGBA{R: 255, G: 0, B: 0, A: 255}
	w := mustCreate(t, r, WindowConfig{Name: "a", Width: 2, Height: 2, Bg: red})
	w.Visible = false

	d := newMemDisplay()
	comp := NewCompositor(r, d, 64, 64)
	if err := comp.Frame(nil); err != nil {
		t.Fatalf("Frame failed: %v", err)
	}

	if got := d.lastAt(1, 1); got != render.Black {
		t.Errorf("Hidden window should leave the framebuffer clear, got %v", got)
	}
}

func TestWindowAlphaAttenuates(t *testing.T) {
	r := testRegistry()
	mustCreate(t, r, WindowConfig{
		Name: "a", Width: 2, Height: 2,
		Bg: render.White, Alpha: 128,
	})

	d := newMemDisplay()
	comp := NewCompositor(r, d, 64, 64)
	if err := comp.Frame(nil); err != nil {
		t.Fatalf("Frame failed: %v", err)
	}

	got := d.lastAt(1, 1)
	if got.R < 120 || got.R > 136 {
		t.Errorf("Half-alpha white window over black framebuffer = %v, want mid gray", got)
	}
}

func TestWindowAlphaMultipliesSpriteFade(t *testing.T) {
	r := testRegistry()
	w := mustCreate(t, r, WindowConfig{
		Name: "root", Width: 3, Height: 3,
		Bg: render.Black, Alpha: 128,
	})

	// White full-block effect halfway through its fade inside a
	// half-alpha window: fade applies per glyph at draw time, window
	// alpha at composite time, so the presented pixel carries the
	// product 255 * (127/255) * (128/255).
	eff := sprite.EffectFromString("█", 1, 1, render.White, nil)
	eff.FadeTime = 1.0
	w.AddSprite(eff)
	w.UpdateSprites(0.5)

	d := newMemDisplay()
	comp := NewCompositor(r, d, w.Surface().Width(), w.Surface().Height())
	if err := comp.Frame(w.DrawSprites); err != nil {
		t.Fatalf("Frame failed: %v", err)
	}

	cellW, cellH := w.CellSize()
	got := d.lastAt(cellW+cellW/2, cellH+cellH/2)
	if got.R < 55 || got.R > 72 {
		t.Errorf("Faded effect in half-alpha window = %v, want ~63 gray from both attenuations", got)
	}
	if got.R != got.G || got.R != got.B {
		t.Errorf("Faded effect pixel = %v, want gray", got)
	}
}

func TestRootCellTranslation(t *testing.T) {
	r := testRegistry()
	// First window fixes the reference cell size
	root := mustCreate(t, r, WindowConfig{Name: "root", Width: 10, Height: 5, Font: "10x20"})
	blue := render.RGBA{R: 0, G: 0, B: 255, A: 255}
	// Second window uses a different font but is positioned in root cells
	mustCreate(t, r, WindowConfig{Name: "overlay", X: 2, Y: 1, Width: 2, Height: 1, Font: "5x8", Bg: blue})

	d := newMemDisplay()
	comp := NewCompositor(r, d, root.Surface().Width(), root.Surface().Height())
	if err := comp.Frame(nil); err != nil {
		t.Fatalf("Frame failed: %v", err)
	}

	rootW, rootH := r.RootCellSize()
	if got := d.lastAt(2*rootW+1, 1*rootH+1); got != blue {
		t.Errorf("Overlay pixel at translated origin = %v, want %v", got, blue)
	}
	if got := d.lastAt(0, 0); got == blue {
		t.Error("Overlay should not paint at the framebuffer origin")
	}
}

func TestFrameClearsWindowsBeforeRender(t *testing.T) {
	r := testRegistry()
	bg := render.RGBA{R: 10, G: 10, B: 20, A: 255}
	w := mustCreate(t, r, WindowConfig{Name: "root", Width: 4, Height: 2, Bg: bg})

	// Leftover drawing from a previous frame
	w.Surface().Fill(render.White)

	var sampled render.RGBA
	comp := NewCompositor(r, newMemDisplay(), 64, 64)
	err := comp.Frame(func() {
		sampled = w.Surface().At(1, 1)
	})
	if err != nil {
		t.Fatalf("Frame failed: %v", err)
	}
	if sampled != bg {
		t.Errorf("Render callback saw %v, want surface cleared to bg %v", sampled, bg)
	}
}

func TestFrameInvokesRenderCallback(t *testing.T) {
	r := testRegistry()
	w := mustCreate(t, r, WindowConfig{Name: "root", Width: 4, Height: 2})

	cyan := render.RGBA{R: 0, G: 255, B: 255, A: 255}
	d := newMemDisplay()
	comp := NewCompositor(r, d, w.Surface().Width(), w.Surface().Height())
	err := comp.Frame(func() {
		w.Surface().FillRect(0, 0, 2, 2, cyan)
	})
	if err != nil {
		t.Fatalf("Frame failed: %v", err)
	}
	if got := d.lastAt(0, 0); got != cyan {
		t.Errorf("Callback drawing not visible in presented frame, got %v", got)
	}
}
