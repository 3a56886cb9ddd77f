// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies a translated event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventMouseWheel
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Repeat bool
	Width  int
	Height int
	MouseX int
	MouseY int
	DeltaX int // Relative motion for EventMouseMove
	DeltaY int
	Wheel  float32 // Positive scrolls away from the user
	Button uint8
}

// Input collects the events of one frame.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events. Returns true if the application should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		e, ok := Translate(event)
		if !ok {
			continue
		}
		i.events = append(i.events, e)
		if e.Type == EventQuit {
			quit = true
		}
	}
	return quit
}

// Translate converts an SDL event. ok is false for events we don't handle.
func Translate(event sdl.Event) (e Event, ok bool) {
	switch ev := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		if ev.Event == sdl.WINDOWEVENT_RESIZED || ev.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			return Event{
				Type:   EventWindowResize,
				Width:  int(ev.Data1),
				Height: int(ev.Data2),
			}, true
		}

	case *sdl.KeyboardEvent:
		e = Event{Key: ev.Keysym.Scancode, Repeat: ev.Repeat != 0}
		switch ev.Type {
		case sdl.KEYDOWN:
			e.Type = EventKeyDown
			return e, true
		case sdl.KEYUP:
			e.Type = EventKeyUp
			return e, true
		}

	case *sdl.MouseMotionEvent:
		return Event{
			Type:   EventMouseMove,
			MouseX: int(ev.X),
			MouseY: int(ev.Y),
			DeltaX: int(ev.XRel),
			DeltaY: int(ev.YRel),
		}, true

	case *sdl.MouseButtonEvent:
		e = Event{MouseX: int(ev.X), MouseY: int(ev.Y), Button: ev.Button}
		switch ev.Type {
		case sdl.MOUSEBUTTONDOWN:
			e.Type = EventMouseDown
			return e, true
		case sdl.MOUSEBUTTONUP:
			e.Type = EventMouseUp
			return e, true
		}

	case *sdl.MouseWheelEvent:
		wheel := float32(ev.Y)
		if ev.Direction == sdl.MOUSEWHEEL_FLIPPED {
			wheel = -wheel
		}
		return Event{Type: EventMouseWheel, Wheel: wheel}, true
	}

	return Event{}, false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed checks if a key went down this frame, ignoring auto-repeat.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode && !e.Repeat {
			return true
		}
	}
	return false
}
