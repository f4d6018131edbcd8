package engine

import (
	"image"
)

// EventType discriminates display events
type EventType int

const (
	// EventKey is a key press
	EventKey EventType = iota
	// EventQuit signals the display was closed or the user requested exit
	EventQuit
)

// KeyCode identifies non-rune keys; printable input arrives as KeyRune
type KeyCode int

const (
	KeyRune KeyCode = iota
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// Key is one key press: a code for special keys, plus the rune for
// printable input
type Key struct {
	Code KeyCode
	Rune rune
}

// Event is a single input or lifecycle event from the display
type Event struct {
	Type EventType
	Key  Key
}

// Display is the presentation collaborator: it shows composited frames and
// feeds input events back. The terminal package provides the tcell
// implementation; tests use in-memory displays.
type Display interface {
	// Present shows one composited framebuffer. Called once per tick.
	Present(img *image.RGBA) error
	// Events delivers key and quit events. Closing the channel ends the loop.
	Events() <-chan Event
	// Close releases display resources
	Close() error
}
