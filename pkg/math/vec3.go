package math

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// Vec3FromMgl converts an mgl32 vector.
func Vec3FromMgl(v mgl32.Vec3) Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

// Mgl returns the vector as an mgl32.Vec3.
func (v Vec3) Mgl() mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3FromMgl(v.Mgl().Add(other.Mgl()))
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3FromMgl(v.Mgl().Sub(other.Mgl()))
}

// Scale returns v * scalar.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3FromMgl(v.Mgl().Mul(s))
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float32 {
	return v.Mgl().Dot(other.Mgl())
}

// Cross returns the cross product.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3FromMgl(v.Mgl().Cross(other.Mgl()))
}

// Length returns the magnitude.
func (v Vec3) Length() float32 {
	return v.Mgl().Len()
}

// Normalize returns a unit vector, or the zero vector if v has no length.
func (v Vec3) Normalize() Vec3 {
	if v.Length() == 0 {
		return Vec3{}
	}
	return Vec3FromMgl(v.Mgl().Normalize())
}

// Distance returns the distance to another point.
func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}

// Lerp linearly interpolates between v and other.
func (v Vec3) Lerp(other Vec3, t float32) Vec3 {
	return v.Add(other.Sub(v).Scale(t))
}

// ApproxEqual reports whether every component of v is within eps of other.
func (v Vec3) ApproxEqual(other Vec3, eps float32) bool {
	return within(v.X, other.X, eps) && within(v.Y, other.Y, eps) && within(v.Z, other.Z, eps)
}

func within(a, b, eps float32) bool {
	return mgl32.Abs(a-b) <= eps
}

// XZ returns the XZ components as Vec2.
func (v Vec3) XZ() Vec2 {
	return Vec2{v.X, v.Z}
}

// String formats the vector as "(x, y, z)".
func (v Vec3) String() string {
	return fmt.Sprintf("(%f, %f, %f)", v.X, v.Y, v.Z)
}
