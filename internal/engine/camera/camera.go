// Package camera provides camera implementations for 3D rendering.
package camera

import (
	gomath "math"

	"github.com/Faultbox/midgard-engine/pkg/math"
)

var (
	worldUp      = math.Vec3{Y: 1}
	localRight   = math.Vec3{X: 1}
	localForward = math.Vec3{Z: -1}
)

// maxPitchSin keeps the view direction off the poles where yaw is undefined.
const maxPitchSin = 0.99

// FreeLook is a first-person camera oriented by a quaternion and steered by
// mouse axis input.
type FreeLook struct {
	Position    math.Vec3
	Orientation math.Quat

	// target is where Update turns the camera towards.
	target math.Quat

	// FOV is the vertical field of view in radians.
	FOV    float32
	MinFOV float32
	MaxFOV float32

	// LookSensitivity is radians of turn per viewport width of mouse travel.
	LookSensitivity float32
	ZoomSensitivity float32
	// TurnSpeed is the fraction of the remaining turn covered per second
	// when easing towards a LookAt target.
	TurnSpeed float32
	MoveSpeed float32
}

// NewFreeLook creates a camera at position looking down -Z.
func NewFreeLook(position math.Vec3) *FreeLook {
	return &FreeLook{
		Position:        position,
		Orientation:     math.QuatIdentity(),
		target:          math.QuatIdentity(),
		FOV:             float32(gomath.Pi / 3),
		MinFOV:          float32(gomath.Pi / 12),
		MaxFOV:          float32(gomath.Pi / 2),
		LookSensitivity: 2.5,
		ZoomSensitivity: 0.1,
		TurnSpeed:       8,
		MoveSpeed:       3,
	}
}

// Forward returns the view direction.
func (c *FreeLook) Forward() math.Vec3 {
	return c.Orientation.Rotate(localForward)
}

// Right returns the camera's right direction.
func (c *FreeLook) Right() math.Vec3 {
	return c.Orientation.Rotate(localRight)
}

// Up returns the camera's up direction.
func (c *FreeLook) Up() math.Vec3 {
	return c.Orientation.Rotate(worldUp)
}

// HandleLook turns the camera by a mouse axis value (delta over viewport
// size). Yaw is around world up, pitch around the camera's right axis.
func (c *FreeLook) HandleLook(axis math.Vec2) {
	if axis.X == 0 && axis.Y == 0 {
		return
	}
	yaw := math.QuatFromAxisAngle(worldUp, -axis.X*c.LookSensitivity)
	pitch := math.QuatFromAxisAngle(localRight, -axis.Y*c.LookSensitivity)

	turned := yaw.Mul(c.Orientation)
	if pitched := turned.Mul(pitch).Normalize(); gomath.Abs(float64(pitched.Rotate(localForward).Y)) <= maxPitchSin {
		turned = pitched
	}
	c.Orientation = turned.Normalize()
	c.target = c.Orientation
}

// HandleZoom narrows or widens the field of view by a wheel value.
func (c *FreeLook) HandleZoom(delta float32) {
	c.FOV -= delta * c.FOV * c.ZoomSensitivity
	if c.FOV < c.MinFOV {
		c.FOV = c.MinFOV
	}
	if c.FOV > c.MaxFOV {
		c.FOV = c.MaxFOV
	}
}

// HandleMovement moves the camera along its own axes.
func (c *FreeLook) HandleMovement(forward, right, up, dt float32) {
	step := c.MoveSpeed * dt
	move := c.Forward().Scale(forward * step).
		Add(c.Right().Scale(right * step)).
		Add(worldUp.Scale(up * step))
	c.Position = c.Position.Add(move)
}

// LookAt sets a target orientation facing point. Update eases towards it.
// Points straight above or below are ignored.
func (c *FreeLook) LookAt(point math.Vec3) {
	dir := point.Sub(c.Position)
	if dir.Length() == 0 || gomath.Abs(float64(dir.Normalize().Y)) > maxPitchSin {
		return
	}
	c.target = math.QuatLookDirection(dir, worldUp)
}

// Update eases the orientation towards the LookAt target.
func (c *FreeLook) Update(dt float32) {
	t := c.TurnSpeed * dt
	if t >= 1 {
		c.Orientation = c.target
		return
	}
	c.Orientation = c.Orientation.Slerp(c.target, t).Normalize()
}

// ViewMatrix returns the world-to-camera transform.
func (c *FreeLook) ViewMatrix() math.Mat4 {
	p := c.Position
	return c.Orientation.Inverse().ToMat4().Mul(math.Translate(-p.X, -p.Y, -p.Z))
}

// ProjectionMatrix returns the perspective projection for an aspect ratio.
func (c *FreeLook) ProjectionMatrix(aspect float32) math.Mat4 {
	return math.Perspective(c.FOV, aspect, 0.1, 1000)
}

// PitchYawRoll returns the orientation as euler angles in radians.
func (c *FreeLook) PitchYawRoll() math.Vec3 {
	return c.Orientation.EulerAngles()
}
