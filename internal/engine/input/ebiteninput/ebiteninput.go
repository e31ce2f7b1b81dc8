// Package ebiteninput feeds Ebiten's polled input into an input tracker.
//
// Ebiten exposes state rather than events, so Source diffs the state every
// tick and emits the equivalent event stream.
package ebiteninput

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Faultbox/midgard-engine/internal/engine/input"
)

var keyMap = map[ebiten.Key]input.Key{
	ebiten.KeyA: input.KeyA, ebiten.KeyB: input.KeyB, ebiten.KeyC: input.KeyC,
	ebiten.KeyD: input.KeyD, ebiten.KeyE: input.KeyE, ebiten.KeyF: input.KeyF,
	ebiten.KeyG: input.KeyG, ebiten.KeyH: input.KeyH, ebiten.KeyI: input.KeyI,
	ebiten.KeyJ: input.KeyJ, ebiten.KeyK: input.KeyK, ebiten.KeyL: input.KeyL,
	ebiten.KeyM: input.KeyM, ebiten.KeyN: input.KeyN, ebiten.KeyO: input.KeyO,
	ebiten.KeyP: input.KeyP, ebiten.KeyQ: input.KeyQ, ebiten.KeyR: input.KeyR,
	ebiten.KeyS: input.KeyS, ebiten.KeyT: input.KeyT, ebiten.KeyU: input.KeyU,
	ebiten.KeyV: input.KeyV, ebiten.KeyW: input.KeyW, ebiten.KeyX: input.KeyX,
	ebiten.KeyY: input.KeyY, ebiten.KeyZ: input.KeyZ,

	ebiten.KeyDigit1: input.Key1, ebiten.KeyDigit2: input.Key2, ebiten.KeyDigit3: input.Key3,
	ebiten.KeyDigit4: input.Key4, ebiten.KeyDigit5: input.Key5, ebiten.KeyDigit6: input.Key6,
	ebiten.KeyDigit7: input.Key7, ebiten.KeyDigit8: input.Key8, ebiten.KeyDigit9: input.Key9,
	ebiten.KeyDigit0: input.Key0,

	ebiten.KeyEnter:     input.KeyEnter,
	ebiten.KeyEscape:    input.KeyEscape,
	ebiten.KeyBackspace: input.KeyBackspace,
	ebiten.KeyTab:       input.KeyTab,
	ebiten.KeySpace:     input.KeySpace,
	ebiten.KeyMinus:     input.KeyMinus,
	ebiten.KeyEqual:     input.KeyEquals,

	ebiten.KeyF1: input.KeyF1, ebiten.KeyF2: input.KeyF2, ebiten.KeyF3: input.KeyF3,
	ebiten.KeyF4: input.KeyF4, ebiten.KeyF5: input.KeyF5, ebiten.KeyF6: input.KeyF6,
	ebiten.KeyF7: input.KeyF7, ebiten.KeyF8: input.KeyF8, ebiten.KeyF9: input.KeyF9,
	ebiten.KeyF10: input.KeyF10, ebiten.KeyF11: input.KeyF11, ebiten.KeyF12: input.KeyF12,

	ebiten.KeyInsert:     input.KeyInsert,
	ebiten.KeyHome:       input.KeyHome,
	ebiten.KeyPageUp:     input.KeyPageUp,
	ebiten.KeyDelete:     input.KeyDelete,
	ebiten.KeyEnd:        input.KeyEnd,
	ebiten.KeyPageDown:   input.KeyPageDown,
	ebiten.KeyArrowRight: input.KeyRight,
	ebiten.KeyArrowLeft:  input.KeyLeft,
	ebiten.KeyArrowDown:  input.KeyDown,
	ebiten.KeyArrowUp:    input.KeyUp,

	ebiten.KeyControlLeft:  input.KeyLeftCtrl,
	ebiten.KeyShiftLeft:    input.KeyLeftShift,
	ebiten.KeyAltLeft:      input.KeyLeftAlt,
	ebiten.KeyMetaLeft:     input.KeyLeftSuper,
	ebiten.KeyControlRight: input.KeyRightCtrl,
	ebiten.KeyShiftRight:   input.KeyRightShift,
	ebiten.KeyAltRight:     input.KeyRightAlt,
	ebiten.KeyMetaRight:    input.KeyRightSuper,
}

var buttonMap = map[ebiten.MouseButton]input.MouseButton{
	ebiten.MouseButtonLeft:   input.MouseLeft,
	ebiten.MouseButtonMiddle: input.MouseMiddle,
	ebiten.MouseButtonRight:  input.MouseRight,
	ebiten.MouseButton3:      input.MouseX1,
	ebiten.MouseButton4:      input.MouseX2,
}

// Source polls Ebiten and emits input events. It also serves as the
// tracker's viewport, sized from the game's layout.
type Source struct {
	width, height int

	cursorX, cursorY int
	cursorKnown      bool
	captured         bool
}

// NewSource creates a source for a layout of the given size.
func NewSource(width, height int) *Source {
	return &Source{width: width, height: height}
}

// SetSize updates the layout size. Call it from ebiten.Game.Layout.
func (s *Source) SetSize(width, height int) {
	s.width, s.height = width, height
}

// Size implements input.Viewport.
func (s *Source) Size() (int, int) {
	return s.width, s.height
}

// Poll queues the events that happened since the previous tick. Call it at
// the top of ebiten.Game.Update.
func (s *Source) Poll(in *input.Input) {
	s.syncCursorMode(in.MouseLocked())

	for ek, k := range keyMap {
		if inpututil.IsKeyJustPressed(ek) {
			in.EnqueueEvent(input.EventInfo{Type: input.EventKeyDown, Key: k})
		}
		if inpututil.IsKeyJustReleased(ek) {
			in.EnqueueEvent(input.EventInfo{Type: input.EventKeyUp, Key: k})
		}
	}

	x, y := ebiten.CursorPosition()
	if !s.cursorKnown || x != s.cursorX || y != s.cursorY {
		s.cursorX, s.cursorY, s.cursorKnown = x, y, true
		in.EnqueueEvent(input.EventInfo{Type: input.EventMouseMove, X: x, Y: y})
	}

	for eb, b := range buttonMap {
		if inpututil.IsMouseButtonJustPressed(eb) {
			in.EnqueueEvent(input.EventInfo{Type: input.EventMouseDown, Button: b, X: x, Y: y})
		}
		if inpututil.IsMouseButtonJustReleased(eb) {
			in.EnqueueEvent(input.EventInfo{Type: input.EventMouseUp, Button: b, X: x, Y: y})
		}
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		in.EnqueueEvent(input.EventInfo{Type: input.EventMouseWheel, WheelDelta: float32(dy)})
	}
}

// syncCursorMode maps mouse locking onto Ebiten's captured cursor, since
// Ebiten cannot warp the system cursor.
func (s *Source) syncCursorMode(locked bool) {
	if locked == s.captured {
		return
	}
	s.captured = locked
	if locked {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
}
