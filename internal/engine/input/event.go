package input

// EventType tags a normalized input event.
type EventType int

const (
	EventNone EventType = iota
	EventMouseWheel
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventKeyDown
	EventKeyUp
)

// String returns the event type name.
func (t EventType) String() string {
	switch t {
	case EventMouseWheel:
		return "mouse_wheel"
	case EventMouseMove:
		return "mouse_move"
	case EventMouseDown:
		return "mouse_down"
	case EventMouseUp:
		return "mouse_up"
	case EventKeyDown:
		return "key_down"
	case EventKeyUp:
		return "key_up"
	default:
		return "none"
	}
}

// EventInfo is a toolkit-independent snapshot of one raw UI event.
// Backends build it once and the tracker consumes it once.
type EventInfo struct {
	Type   EventType
	Key    Key
	Button MouseButton
	X, Y   int

	// WheelDelta is in wheel notches, positive away from the user.
	WheelDelta float32

	// Repeat marks key events generated by keyboard auto-repeat.
	Repeat bool
}

// Key identifies a physical key by its USB HID usage id.
// SDL2 scancodes use the same numbering.
type Key uint32

// Letters
const (
	KeyA Key = 4 + iota
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
)

// Digits row. HID orders them 1..9 then 0.
const (
	Key1 Key = 30 + iota
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	Key0
)

const (
	KeyEnter     Key = 40
	KeyEscape    Key = 41
	KeyBackspace Key = 42
	KeyTab       Key = 43
	KeySpace     Key = 44
	KeyMinus     Key = 45
	KeyEquals    Key = 46
)

// Function keys
const (
	KeyF1 Key = 58 + iota
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// Navigation
const (
	KeyInsert Key = 73 + iota
	KeyHome
	KeyPageUp
	KeyDelete
	KeyEnd
	KeyPageDown
	KeyRight
	KeyLeft
	KeyDown
	KeyUp
)

// Modifiers
const (
	KeyLeftCtrl Key = 224 + iota
	KeyLeftShift
	KeyLeftAlt
	KeyLeftSuper
	KeyRightCtrl
	KeyRightShift
	KeyRightAlt
	KeyRightSuper
)

// MouseButton identifies a mouse button. Values match SDL2 button indices.
type MouseButton uint8

const (
	MouseLeft MouseButton = iota + 1
	MouseMiddle
	MouseRight
	MouseX1
	MouseX2
)
