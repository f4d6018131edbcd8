package terminal

import (
	"image"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/runeframe/engine"
)

func newSimDisplay(t *testing.T, w, h int) (*Display, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	d, err := newFromScreen(sim)
	if err != nil {
		t.Fatalf("newFromScreen failed: %v", err)
	}
	sim.SetSize(w, h)
	t.Cleanup(func() { d.Close() })
	return d, sim
}

func solidImage(w, h int, r, g, b uint8) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = r, g, b, 255
	}
	return img
}

func TestPresentWritesHalfBlocks(t *testing.T) {
	d, sim := newSimDisplay(t, 10, 5)

	if err := d.Present(solidImage(10, 10, 255, 0, 0)); err != nil {
		t.Fatalf("Present failed: %v", err)
	}

	ch, _, style, _ := sim.GetContent(5, 2)
	if ch != halfBlock {
		t.Errorf("Cell rune = %q, want upper half block", ch)
	}
	fg, bg, _ := style.Decompose()
	fr, fgG, fb := fg.RGB()
	if fr < 200 || fgG > 60 || fb > 60 {
		t.Errorf("Foreground = (%d,%d,%d), want red", fr, fgG, fb)
	}
	br, _, _ := bg.RGB()
	if br < 200 {
		t.Errorf("Background should sample the same red frame, got %v", br)
	}
}

func TestPresentLetterboxes(t *testing.T) {
	// Wide terminal, square source: horizontal bands stay black
	d, sim := newSimDisplay(t, 40, 5)

	if err := d.Present(solidImage(10, 10, 255, 255, 255)); err != nil {
		t.Fatalf("Present failed: %v", err)
	}

	_, _, style, _ := sim.GetContent(0, 2)
	fg, _, _ := style.Decompose()
	r, g, b := fg.RGB()
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("Letterbox margin = (%d,%d,%d), want black", r, g, b)
	}

	_, _, style, _ = sim.GetContent(20, 2)
	fg, _, _ = style.Decompose()
	r, _, _ = fg.RGB()
	if r < 200 {
		t.Errorf("Centered content should be white, got red channel %d", r)
	}
}

func TestKeyTranslation(t *testing.T) {
	d, sim := newSimDisplay(t, 10, 5)

	tests := []struct {
		name string
		key  tcell.Key
		ch   rune
		want engine.Key
	}{
		{"Rune key", tcell.KeyRune, 'q', engine.Key{Code: engine.KeyRune, Rune: 'q'}},
		{"Arrow", tcell.KeyUp, 0, engine.Key{Code: engine.KeyUp}},
		{"Enter", tcell.KeyEnter, 0, engine.Key{Code: engine.KeyEnter}},
		{"Escape", tcell.KeyEscape, 0, engine.Key{Code: engine.KeyEscape}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim.InjectKey(tt.key, tt.ch, tcell.ModNone)
			select {
			case ev := <-d.Events():
				if ev.Type != engine.EventKey || ev.Key != tt.want {
					t.Errorf("Event = %+v, want key %+v", ev, tt.want)
				}
			case <-time.After(2 * time.Second):
				t.Fatal("No event received")
			}
		})
	}
}

func TestCtrlCQuits(t *testing.T) {
	d, sim := newSimDisplay(t, 10, 5)

	sim.InjectKey(tcell.KeyCtrlC, 0, tcell.ModNone)
	select {
	case ev := <-d.Events():
		if ev.Type != engine.EventQuit {
			t.Errorf("Event = %+v, want quit", ev)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("No event received")
	}
}
