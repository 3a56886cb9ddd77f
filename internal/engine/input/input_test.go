package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name  string
		event sdl.Event
		want  Event
		ok    bool
	}{
		{
			name:  "quit",
			event: &sdl.QuitEvent{Type: sdl.QUIT},
			want:  Event{Type: EventQuit},
			ok:    true,
		},
		{
			name:  "resize",
			event: &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_RESIZED, Data1: 800, Data2: 600},
			want:  Event{Type: EventWindowResize, Width: 800, Height: 600},
			ok:    true,
		},
		{
			name:  "window focus ignored",
			event: &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_FOCUS_GAINED},
		},
		{
			name:  "key down",
			event: &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_R}},
			want:  Event{Type: EventKeyDown, Key: sdl.SCANCODE_R},
			ok:    true,
		},
		{
			name:  "key repeat",
			event: &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Repeat: 1, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_R}},
			want:  Event{Type: EventKeyDown, Key: sdl.SCANCODE_R, Repeat: true},
			ok:    true,
		},
		{
			name:  "mouse motion",
			event: &sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, X: 10, Y: 20, XRel: 3, YRel: -4},
			want:  Event{Type: EventMouseMove, MouseX: 10, MouseY: 20, DeltaX: 3, DeltaY: -4},
			ok:    true,
		},
		{
			name:  "mouse down",
			event: &sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_LEFT, X: 5, Y: 6},
			want:  Event{Type: EventMouseDown, Button: sdl.BUTTON_LEFT, MouseX: 5, MouseY: 6},
			ok:    true,
		},
		{
			name:  "wheel",
			event: &sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: 2},
			want:  Event{Type: EventMouseWheel, Wheel: 2},
			ok:    true,
		},
		{
			name:  "flipped wheel",
			event: &sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: 2, Direction: sdl.MOUSEWHEEL_FLIPPED},
			want:  Event{Type: EventMouseWheel, Wheel: -2},
			ok:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Translate(tt.event)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("Translate() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestIsKeyPressedIgnoresRepeat(t *testing.T) {
	in := New()
	in.events = append(in.events,
		Event{Type: EventKeyDown, Key: sdl.SCANCODE_SPACE, Repeat: true},
		Event{Type: EventKeyDown, Key: sdl.SCANCODE_ESCAPE},
	)

	if in.IsKeyPressed(sdl.SCANCODE_SPACE) {
		t.Error("auto-repeat counted as a press")
	}
	if !in.IsKeyPressed(sdl.SCANCODE_ESCAPE) {
		t.Error("escape press not detected")
	}
}
