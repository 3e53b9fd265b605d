// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Event types for application use
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
}

// Input handles all input processing. Discrete toggles come through Events;
// continuous controls (movement keys, mouse look) are polled per frame via
// KeyHeld, RightMouseHeld and MouseDelta.
type Input struct {
	events []Event

	keyboard []uint8

	rightMouseHeld bool
	mouseDX        float32
	mouseDY        float32
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events and converts them to application events.
// Returns true if the application should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0] // Clear previous events
	i.mouseDX = 0
	i.mouseDY = 0

	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
				i.events = append(i.events, Event{
					Type: EventKeyDown,
					Key:  e.Keysym.Scancode,
				})
			} else if e.Type == sdl.KEYUP {
				i.events = append(i.events, Event{
					Type: EventKeyUp,
					Key:  e.Keysym.Scancode,
				})
			}

		case *sdl.MouseMotionEvent:
			i.mouseDX += float32(e.XRel)
			i.mouseDY += float32(e.YRel)

		case *sdl.MouseButtonEvent:
			if e.Button == sdl.BUTTON_RIGHT {
				i.rightMouseHeld = e.Type == sdl.MOUSEBUTTONDOWN
			}
		}
	}

	i.keyboard = sdl.GetKeyboardState()

	return quit
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed checks if a specific key was pressed this frame.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode {
			return true
		}
	}
	return false
}

// KeyHeld reports whether a key is currently held down.
func (i *Input) KeyHeld(scancode sdl.Scancode) bool {
	if int(scancode) >= len(i.keyboard) {
		return false
	}
	return i.keyboard[scancode] != 0
}

// RightMouseHeld reports whether the right mouse button is held.
func (i *Input) RightMouseHeld() bool {
	return i.rightMouseHeld
}

// MouseDelta returns the relative mouse motion accumulated since the last
// Update.
func (i *Input) MouseDelta() (float32, float32) {
	return i.mouseDX, i.mouseDY
}
