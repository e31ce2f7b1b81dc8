package input

import (
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-engine/pkg/math"
)

func (i *Input) processMouseMove(e EventInfo) {
	i.framesStill = 0

	// The warp issued by a locked move comes back as a move event of its own.
	if i.suppressMove {
		i.suppressMove = false
		return
	}

	i.mouse = math.Vec2{X: float32(e.X), Y: float32(e.Y)}

	if i.locked {
		if w, ok := i.viewport.(CursorWarper); ok {
			i.suppressMove = true
			w.WarpCursor(int(i.lastMouse.X), int(i.lastMouse.Y))
		}
	}
}

// wrapMouse teleports a cursor that left the viewport to the opposite edge.
func (i *Input) wrapMouse() {
	if !i.wrapping || i.viewport == nil {
		return
	}
	warper, ok := i.viewport.(CursorWarper)
	if !ok {
		return
	}

	width, height := i.viewport.Size()
	x, y := int(i.mouse.X), int(i.mouse.Y)
	tx, ty := x, y
	switch {
	case x >= width:
		tx = 0
	case x < 0:
		tx = width - 1
	}
	switch {
	case y >= height:
		ty = 0
	case y < 0:
		ty = height - 1
	}
	if tx == x && ty == y {
		return
	}

	warper.WarpCursor(tx, ty)
	nx, ny := warper.CursorPosition()
	i.mouse = math.Vec2{X: float32(nx), Y: float32(ny)}
	i.lastMouse = i.mouse

	i.log.Debug("mouse wrapped",
		zap.Int("from_x", x), zap.Int("from_y", y),
		zap.Int("to_x", nx), zap.Int("to_y", ny),
	)
}

// MouseCoords returns the cursor position in viewport coordinates.
func (i *Input) MouseCoords() math.Vec2 {
	return i.mouse
}

// MouseDelta returns the cursor movement in pixels since the last frame.
func (i *Input) MouseDelta() math.Vec2 {
	return i.mouse.Sub(i.lastMouse)
}

// MouseDeltaX returns the horizontal part of MouseDelta.
func (i *Input) MouseDeltaX() float32 {
	return i.MouseDelta().X
}

// MouseDeltaY returns the vertical part of MouseDelta.
func (i *Input) MouseDeltaY() float32 {
	return i.MouseDelta().Y
}

// MouseAxis returns MouseDelta as a fraction of the viewport size.
// It is zero when there is no viewport or the viewport has no area.
func (i *Input) MouseAxis() math.Vec2 {
	if i.viewport == nil {
		return math.Vec2{}
	}
	w, h := i.viewport.Size()
	if w <= 0 || h <= 0 {
		return math.Vec2{}
	}
	return i.MouseDelta().Div(math.Vec2{X: float32(w), Y: float32(h)})
}

// MouseAxisX returns the horizontal part of MouseAxis.
func (i *Input) MouseAxisX() float32 {
	return i.MouseAxis().X
}

// MouseAxisY returns the vertical part of MouseAxis.
func (i *Input) MouseAxisY() float32 {
	return i.MouseAxis().Y
}

// SetMouseLocked turns mouse locking on or off. A locked cursor is warped
// back after every move so relative motion can be sampled indefinitely.
func (i *Input) SetMouseLocked(lock bool) {
	if i.locked == lock {
		return
	}
	i.locked = lock
	i.log.Debug("mouse lock changed", zap.Bool("locked", lock))
}

// MouseLocked reports whether mouse locking is on.
func (i *Input) MouseLocked() bool {
	return i.locked
}

// SetMouseWrapping turns toroidal cursor wrapping on or off.
func (i *Input) SetMouseWrapping(wrap bool) {
	if i.wrapping == wrap {
		return
	}
	i.wrapping = wrap
	i.log.Debug("mouse wrapping changed", zap.Bool("wrapping", wrap))
}

// MouseWrapping reports whether cursor wrapping is on.
func (i *Input) MouseWrapping() bool {
	return i.wrapping
}
