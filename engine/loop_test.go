package engine

import (
	"testing"
	"time"
)

func newTestLoop(t *testing.T, d *memDisplay) *Loop {
	t.Helper()
	r := testRegistry()
	mustCreate(t, r, WindowConfig{Name: "root", Width: 2, Height: 2})
	comp := NewCompositor(r, d, 32, 32)
	clock := &fakeClock{t: time.Unix(0, 0), step: 16 * time.Millisecond}
	return NewLoop(comp, d, clock, 240)
}

func TestLoopStop(t *testing.T) {
	d := newMemDisplay()
	l := newTestLoop(t, d)

	done := make(chan error, 1)
	frame := make(chan struct{}, 1)
	go func() {
		done <- l.Run(Callbacks{
			Update: func(dt float64) {
				select {
				case frame <- struct{}{}:
				default:
				}
			},
		})
	}()

	<-frame
	l.Stop()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned %v, want nil on cooperative stop", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Loop did not observe Stop")
	}
	if d.frameCount() == 0 {
		t.Error("At least one frame should have been presented before stop")
	}
}

func TestLoopDeliversDt(t *testing.T) {
	d := newMemDisplay()
	l := newTestLoop(t, d)

	dts := make(chan float64, 4)
	go l.Run(Callbacks{
		Update: func(dt float64) {
			select {
			case dts <- dt:
			default:
			}
		},
	})
	defer l.Stop()

	select {
	case dt := <-dts:
		// fakeClock advances 16ms per reading
		if dt <= 0 {
			t.Errorf("dt = %v, want positive wall-clock delta", dt)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Update was never called")
	}
}

func TestLoopDispatchesKeys(t *testing.T) {
	d := newMemDisplay()
	l := newTestLoop(t, d)

	keys := make(chan Key, 1)
	go l.Run(Callbacks{
		OnKey: func(k Key) {
			select {
			case keys <- k:
			default:
			}
		},
	})
	defer l.Stop()

	d.events <- Event{Type: EventKey, Key: Key{Code: KeyRune, Rune: 'q'}}
	select {
	case k := <-keys:
		if k.Rune != 'q' {
			t.Errorf("OnKey received %q, want 'q'", k.Rune)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("OnKey was never called")
	}
}

func TestLoopEscapeStops(t *testing.T) {
	d := newMemDisplay()
	l := newTestLoop(t, d)

	called := false
	done := make(chan error, 1)
	go func() {
		done <- l.Run(Callbacks{OnKey: func(Key) { called = true }})
	}()

	d.events <- Event{Type: EventKey, Key: Key{Code: KeyEscape}}
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Escape should stop the loop")
	}
	if called {
		t.Error("Escape is a built-in control and should not reach OnKey")
	}
}

func TestLoopQuitEventStops(t *testing.T) {
	d := newMemDisplay()
	l := newTestLoop(t, d)

	done := make(chan error, 1)
	go func() {
		done <- l.Run(Callbacks{})
	}()

	d.events <- Event{Type: EventQuit}
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned %v on quit event, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Quit event should stop the loop")
	}
}

func TestLoopClosedChannelStops(t *testing.T) {
	d := newMemDisplay()
	l := newTestLoop(t, d)

	done := make(chan error, 1)
	go func() {
		done <- l.Run(Callbacks{})
	}()

	close(d.events)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Closed event channel should stop the loop")
	}
}
