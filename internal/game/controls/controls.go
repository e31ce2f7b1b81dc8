// Package controls maps polled input state to viewer actions.
package controls

import (
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-engine/internal/engine/camera"
	"github.com/Faultbox/midgard-engine/internal/engine/input"
	"github.com/Faultbox/midgard-engine/pkg/math"
)

// VolumeStep is how much one press of minus or equals changes the volume.
const VolumeStep = 0.1

// Actions are the frame's requests for the host.
type Actions struct {
	Quit       bool
	Screenshot bool
	// Volume is the requested change to the feedback volume.
	Volume float64
	// CursorVisible is set when the lock state changed this frame.
	CursorVisible *bool
}

// Controller steers a camera from input.
type Controller struct {
	in    *input.Input
	cam   *camera.FreeLook
	log   *zap.Logger
	focus math.Vec3
}

// New creates a controller. focus is what a double click turns the camera
// towards.
func New(in *input.Input, cam *camera.FreeLook, focus math.Vec3, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{in: in, cam: cam, focus: focus, log: log}
}

// SetFocus changes what a double click turns the camera towards.
func (c *Controller) SetFocus(p math.Vec3) {
	c.focus = p
}

// Update reads this frame's input. Call it between ProcessEnqueuedEvents
// and OnFrameFinished.
func (c *Controller) Update(dt float32) Actions {
	var act Actions
	in := c.in

	if in.KeyDown(input.KeyEscape) {
		act.Quit = true
	}
	if in.KeyDown(input.KeyF12) {
		act.Screenshot = true
	}
	if in.KeyDown(input.KeyMinus) {
		act.Volume -= VolumeStep
	}
	if in.KeyDown(input.KeyEquals) {
		act.Volume += VolumeStep
	}
	if in.KeyDown(input.KeyL) {
		locked := !in.MouseLocked()
		in.SetMouseLocked(locked)
		visible := !locked
		act.CursorVisible = &visible
		c.log.Info("mouse lock toggled", zap.Bool("locked", locked))
	}
	if in.KeyDown(input.KeyW) {
		in.SetMouseWrapping(!in.MouseWrapping())
		c.log.Info("mouse wrap toggled", zap.Bool("wrapping", in.MouseWrapping()))
	}

	if in.MouseLocked() || in.MouseButtonPressed(input.MouseRight) {
		c.cam.HandleLook(in.MouseAxis())
	}
	if w := in.MouseWheel(); w != 0 {
		c.cam.HandleZoom(w)
	}
	if in.MouseButtonDoubleClick(input.MouseLeft) {
		c.cam.LookAt(c.focus)
	}

	c.cam.HandleMovement(axis(in, input.KeyUp, input.KeyDown),
		axis(in, input.KeyRight, input.KeyLeft),
		axis(in, input.KeyPageUp, input.KeyPageDown), dt)
	c.cam.Update(dt)

	return act
}

func axis(in *input.Input, positive, negative input.Key) float32 {
	var v float32
	if in.KeyPressed(positive) {
		v++
	}
	if in.KeyPressed(negative) {
		v--
	}
	return v
}
