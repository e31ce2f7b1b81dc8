package math

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Dot products this close to +/-1 are treated as parallel directions by QuatFromTo.
const parallelEpsilon = 1e-6

// Quat represents a quaternion for 3D rotations.
// Components are stored as X, Y, Z, W where W is the scalar part.
type Quat struct {
	X, Y, Z, W float32
}

// QuatIdentity returns an identity quaternion (no rotation).
func QuatIdentity() Quat {
	return Quat{X: 0, Y: 0, Z: 0, W: 1}
}

// QuatFromMgl converts an mgl32 quaternion.
func QuatFromMgl(q mgl32.Quat) Quat {
	return Quat{X: q.V[0], Y: q.V[1], Z: q.V[2], W: q.W}
}

// Mgl returns the quaternion as an mgl32.Quat.
func (q Quat) Mgl() mgl32.Quat {
	return mgl32.Quat{W: q.W, V: mgl32.Vec3{q.X, q.Y, q.Z}}
}

// QuatFromAxisAngle creates a quaternion from axis-angle rotation.
// axis should be normalized, angle is in radians.
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	return QuatFromMgl(mgl32.QuatRotate(angle, axis.Mgl()))
}

// QuatAngleAxis is QuatFromAxisAngle with the angle given in degrees.
func QuatAngleAxis(angleDeg float32, axis Vec3) Quat {
	return QuatFromAxisAngle(axis, mgl32.DegToRad(angleDeg))
}

// QuatFromMat4 extracts the rotation of a rotation matrix.
func QuatFromMat4(m Mat4) Quat {
	return QuatFromMgl(mgl32.Mat4ToQuat(m.Mgl()))
}

// QuatFromTo returns the shortest-arc rotation taking direction from onto
// direction to. Opposite directions rotate 180 degrees around an arbitrary
// axis orthogonal to from.
func QuatFromTo(from, to Vec3) Quat {
	v0 := from.Normalize()
	v1 := to.Normalize()

	d := v0.Dot(v1)
	if d >= 1-parallelEpsilon {
		return QuatIdentity()
	}
	if d <= -1+parallelEpsilon {
		axis := Vec3{1, 0, 0}.Cross(v0)
		if axis.Length() == 0 {
			axis = Vec3{0, 1, 0}.Cross(v0)
		}
		return Quat{X: axis.X, Y: axis.Y, Z: axis.Z, W: 0}.Normalize()
	}

	s := float32(math.Sqrt(float64((1 + d) * 2)))
	c := v0.Cross(v1).Scale(1 / s)
	return Quat{X: c.X, Y: c.Y, Z: c.Z, W: s * 0.5}.Normalize()
}

// QuatLookDirection returns the orientation whose forward (-Z) axis points
// along forward, with up as the reference up direction.
func QuatLookDirection(forward, up Vec3) Quat {
	view := mgl32.LookAtV(mgl32.Vec3{}, forward.Mgl(), up.Mgl())
	return QuatFromMgl(mgl32.Mat4ToQuat(view.Inv()))
}

// Conjugate returns the conjugate (-x, -y, -z, w).
func (q Quat) Conjugate() Quat {
	return QuatFromMgl(q.Mgl().Conjugate())
}

// Normalize returns a normalized quaternion.
// A zero quaternion normalizes to identity.
func (q Quat) Normalize() Quat {
	return QuatFromMgl(q.Mgl().Normalize())
}

// Inverse returns the multiplicative inverse.
func (q Quat) Inverse() Quat {
	return QuatFromMgl(q.Mgl().Inverse())
}

// Length returns the quaternion norm.
func (q Quat) Length() float32 {
	return q.Mgl().Len()
}

// Dot returns the dot product of two quaternions.
func (q Quat) Dot(other Quat) float32 {
	return q.Mgl().Dot(other.Mgl())
}

// Mul multiplies two quaternions (combines rotations).
func (q Quat) Mul(other Quat) Quat {
	return QuatFromMgl(q.Mgl().Mul(other.Mgl()))
}

// Rotate applies the rotation to v.
func (q Quat) Rotate(v Vec3) Vec3 {
	return Vec3FromMgl(q.Mgl().Rotate(v.Mgl()))
}

// RotateVec4 rotates the xyz part of v and keeps w, so points (w=1) and
// directions (w=0) both come through unchanged in kind.
func (q Quat) RotateVec4(v Vec4) Vec4 {
	return Vec4FromVec3(q.Rotate(v.XYZ()), v.W)
}

// EulerAngles returns (pitch, yaw, roll) in radians.
func (q Quat) EulerAngles() Vec3 {
	x, y, z, w := float64(q.X), float64(q.Y), float64(q.Z), float64(q.W)

	py := 2 * (y*z + w*x)
	px := w*w - x*x - y*y + z*z
	var pitch float64
	if math.Abs(py) < 1e-7 && math.Abs(px) < 1e-7 {
		pitch = 2 * math.Atan2(x, w)
	} else {
		pitch = math.Atan2(py, px)
	}

	sinYaw := -2 * (x*z - w*y)
	yaw := math.Asin(math.Max(-1, math.Min(1, sinYaw)))

	roll := math.Atan2(2*(x*y+w*z), w*w+x*x-y*y-z*z)

	return Vec3{float32(pitch), float32(yaw), float32(roll)}
}

// Slerp performs spherical linear interpolation between two quaternions.
// t should be in range [0, 1]. The shorter of the two arcs is taken.
func (q Quat) Slerp(other Quat, t float32) Quat {
	if q.Dot(other) < 0 {
		other = Quat{X: -other.X, Y: -other.Y, Z: -other.Z, W: -other.W}
	}
	return QuatFromMgl(mgl32.QuatSlerp(q.Mgl(), other.Mgl(), t))
}

// Lerp performs normalized linear interpolation between two quaternions.
// Use Slerp for rotation interpolation; this is for simple blending.
func (q Quat) Lerp(other Quat, t float32) Quat {
	return QuatFromMgl(mgl32.QuatNlerp(q.Mgl(), other.Mgl(), t))
}

// ToMat4 converts the quaternion to a 4x4 rotation matrix.
func (q Quat) ToMat4() Mat4 {
	return Mat4(q.Normalize().Mgl().Mat4())
}

// ApproxEqual reports whether q and other are component-wise within eps.
// q and -q represent the same rotation but do not compare equal.
func (q Quat) ApproxEqual(other Quat, eps float32) bool {
	return within(q.X, other.X, eps) && within(q.Y, other.Y, eps) &&
		within(q.Z, other.Z, eps) && within(q.W, other.W, eps)
}

// String formats the quaternion as "(x, y, z, w)".
func (q Quat) String() string {
	return fmt.Sprintf("(%f, %f, %f, %f)", q.X, q.Y, q.Z, q.W)
}
