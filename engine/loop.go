package engine

import (
	"sync/atomic"
	"time"
)

// DefaultFPS is the frame pacing used when no rate is configured
const DefaultFPS = 60

// Callbacks are the client hooks invoked by the frame loop. All of them are
// optional and all run sequentially on the loop goroutine: there is no
// concurrent mutation anywhere in a tick.
type Callbacks struct {
	// Update receives wall-clock seconds since the previous tick
	Update func(dt float64)
	// Render issues draw calls against windows; it runs after every window
	// has been cleared to its background
	Render func()
	// OnKey receives key presses as they arrive
	OnKey func(key Key)
}

// Loop drives the per-tick pipeline: input dispatch, client update, then
// the compositor pass. It exits on a quit event, Escape, a closed event
// channel, or Stop.
type Loop struct {
	comp     *Compositor
	display  Display
	clock    TimeProvider
	interval time.Duration
	stop     atomic.Bool
}

// NewLoop creates a frame loop pacing at the given frames per second
// (0 means DefaultFPS)
func NewLoop(comp *Compositor, display Display, clock TimeProvider, fps int) *Loop {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Loop{
		comp:     comp,
		display:  display,
		clock:    clock,
		interval: time.Second / time.Duration(fps),
	}
}

// Stop requests a cooperative shutdown. The flag is checked at the next
// tick boundary; an in-flight frame always completes, so the loop never
// exits with a half-rendered frame.
func (l *Loop) Stop() {
	l.stop.Store(true)
}

// Run executes the loop until a stop condition is observed. It returns the
// first compositing error, or nil on a clean exit.
func (l *Loop) Run(cb Callbacks) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	last := l.clock.Now()
	for {
		if l.stop.Load() {
			return nil
		}

		select {
		case ev, ok := <-l.display.Events():
			if !ok {
				return nil
			}
			switch ev.Type {
			case EventQuit:
				l.stop.Store(true)
			case EventKey:
				if ev.Key.Code == KeyEscape {
					l.stop.Store(true)
					continue
				}
				if cb.OnKey != nil {
					cb.OnKey(ev.Key)
				}
			}

		case <-ticker.C:
			now := l.clock.Now()
			dt := now.Sub(last).Seconds()
			last = now

			if cb.Update != nil {
				cb.Update(dt)
			}
			if err := l.comp.Frame(cb.Render); err != nil {
				return err
			}
		}
	}
}
