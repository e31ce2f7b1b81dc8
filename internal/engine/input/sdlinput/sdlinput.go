// Package sdlinput converts SDL2 events into input events.
package sdlinput

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/midgard-engine/internal/engine/input"
)

// Translate converts an SDL event. ok is false for events the input
// tracker does not consume (window, quit, text...).
func Translate(event sdl.Event) (input.EventInfo, bool) {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		t := input.EventKeyDown
		if e.Type == sdl.KEYUP {
			t = input.EventKeyUp
		}
		return input.EventInfo{
			Type:   t,
			Key:    input.Key(e.Keysym.Scancode),
			Repeat: e.Repeat != 0,
		}, true

	case *sdl.MouseMotionEvent:
		return input.EventInfo{
			Type: input.EventMouseMove,
			X:    int(e.X),
			Y:    int(e.Y),
		}, true

	case *sdl.MouseButtonEvent:
		t := input.EventMouseDown
		if e.Type == sdl.MOUSEBUTTONUP {
			t = input.EventMouseUp
		}
		return input.EventInfo{
			Type:   t,
			Button: input.MouseButton(e.Button),
			X:      int(e.X),
			Y:      int(e.Y),
		}, true

	case *sdl.MouseWheelEvent:
		delta := float32(e.Y)
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			delta = -delta
		}
		return input.EventInfo{
			Type:       input.EventMouseWheel,
			WheelDelta: delta,
		}, true
	}

	return input.EventInfo{}, false
}

// Enqueue translates event and queues it on in.
// It reports whether the event was consumed.
func Enqueue(in *input.Input, event sdl.Event) bool {
	ei, ok := Translate(event)
	if ok {
		in.EnqueueEvent(ei)
	}
	return ok
}
