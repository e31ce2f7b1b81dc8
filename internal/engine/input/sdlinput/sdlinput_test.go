package sdlinput

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/midgard-engine/internal/engine/input"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name  string
		event sdl.Event
		want  input.EventInfo
	}{
		{
			name: "key down",
			event: &sdl.KeyboardEvent{
				Type:   sdl.KEYDOWN,
				Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_ESCAPE},
			},
			want: input.EventInfo{Type: input.EventKeyDown, Key: input.KeyEscape},
		},
		{
			name: "key up repeat",
			event: &sdl.KeyboardEvent{
				Type:   sdl.KEYUP,
				Repeat: 1,
				Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_W},
			},
			want: input.EventInfo{Type: input.EventKeyUp, Key: input.KeyW, Repeat: true},
		},
		{
			name:  "motion",
			event: &sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, X: 12, Y: 34},
			want:  input.EventInfo{Type: input.EventMouseMove, X: 12, Y: 34},
		},
		{
			name:  "right button down",
			event: &sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_RIGHT, X: 5, Y: 6},
			want:  input.EventInfo{Type: input.EventMouseDown, Button: input.MouseRight, X: 5, Y: 6},
		},
		{
			name:  "left button up",
			event: &sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONUP, Button: sdl.BUTTON_LEFT},
			want:  input.EventInfo{Type: input.EventMouseUp, Button: input.MouseLeft},
		},
		{
			name:  "wheel flipped",
			event: &sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: 2, Direction: sdl.MOUSEWHEEL_FLIPPED},
			want:  input.EventInfo{Type: input.EventMouseWheel, WheelDelta: -2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Translate(tt.event)
			if !ok {
				t.Fatal("event should be translated")
			}
			if got != tt.want {
				t.Errorf("Translate() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTranslateIgnoresOtherEvents(t *testing.T) {
	if _, ok := Translate(&sdl.QuitEvent{Type: sdl.QUIT}); ok {
		t.Error("quit events should not be translated")
	}
	if _, ok := Translate(&sdl.WindowEvent{Type: sdl.WINDOWEVENT}); ok {
		t.Error("window events should not be translated")
	}
}

func TestEnqueue(t *testing.T) {
	in := input.New(input.DefaultConfig(), nil)

	Enqueue(in, &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_SPACE}})
	in.ProcessEnqueuedEvents()

	if !in.KeyDown(input.KeySpace) {
		t.Error("space should be down after enqueue and processing")
	}
}
