package input

// ButtonInfo is the per-frame state of one key or mouse button.
type ButtonInfo struct {
	// Pressed is the held state.
	Pressed bool
	// Down is true only on the frame the button went down.
	Down bool
	// Up is true only on the frame the button was released.
	Up bool
}

// buttonStates tracks every key or button that is held or has a pending edge.
// An id missing from the map is released with no pending edge.
type buttonStates[K comparable] map[K]ButtonInfo

func (s buttonStates[K]) press(id K) {
	// A release seen earlier in the same frame keeps its Up edge.
	s[id] = ButtonInfo{Pressed: true, Down: true, Up: s[id].Up}
}

func (s buttonStates[K]) release(id K) {
	info, ok := s[id]
	if !ok {
		return
	}
	// Pressed and Down survive so a press and release landing in the same
	// frame still report the press.
	info.Up = true
	s[id] = info
}

func (s buttonStates[K]) get(id K) ButtonInfo {
	return s[id]
}

// endFrame clears Down edges and drops ids whose Up edge has been visible
// for a frame.
func (s buttonStates[K]) endFrame() {
	var released []K
	for id, info := range s {
		if info.Up {
			released = append(released, id)
			continue
		}
		if info.Down {
			info.Down = false
			s[id] = info
		}
	}
	for _, id := range released {
		delete(s, id)
	}
}
