package math

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Vec4 is a 4-component vector.
type Vec4 struct {
	X, Y, Z, W float32
}

// Direction constants. W is 0 so they transform as directions.
var (
	Vec4Up      = Vec4{0, 1, 0, 0}
	Vec4Down    = Vec4{0, -1, 0, 0}
	Vec4Right   = Vec4{1, 0, 0, 0}
	Vec4Left    = Vec4{-1, 0, 0, 0}
	Vec4Forward = Vec4{0, 0, -1, 0}
	Vec4Back    = Vec4{0, 0, 1, 0}
	Vec4Zero    = Vec4{0, 0, 0, 0}
	Vec4One     = Vec4{1, 1, 1, 1}
)

// Splat returns a vector with every component set to a.
func Splat(a float32) Vec4 {
	return Vec4{a, a, a, a}
}

// Vec4FromVec3 extends v with the given w component.
func Vec4FromVec3(v Vec3, w float32) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

// Vec4FromMgl converts an mgl32 vector.
func Vec4FromMgl(v mgl32.Vec4) Vec4 {
	return Vec4{v[0], v[1], v[2], v[3]}
}

// Mgl returns the vector as an mgl32.Vec4.
func (v Vec4) Mgl() mgl32.Vec4 {
	return mgl32.Vec4{v.X, v.Y, v.Z, v.W}
}

// XYZ drops the W component.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// Length returns the magnitude.
func (v Vec4) Length() float32 {
	return v.Mgl().Len()
}

// Normalize returns v divided by its length.
// A zero vector has no direction and yields NaN components.
func (v Vec4) Normalize() Vec4 {
	return v.DivScalar(v.Length())
}

// Add returns v + other.
func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4FromMgl(v.Mgl().Add(other.Mgl()))
}

// Sub returns v - other.
func (v Vec4) Sub(other Vec4) Vec4 {
	return Vec4FromMgl(v.Mgl().Sub(other.Mgl()))
}

// Mul returns the component-wise product v * other.
func (v Vec4) Mul(other Vec4) Vec4 {
	return Vec4{v.X * other.X, v.Y * other.Y, v.Z * other.Z, v.W * other.W}
}

// Div returns the component-wise quotient v / other.
func (v Vec4) Div(other Vec4) Vec4 {
	return Vec4{v.X / other.X, v.Y / other.Y, v.Z / other.Z, v.W / other.W}
}

// AddScalar adds s to every component.
func (v Vec4) AddScalar(s float32) Vec4 {
	return v.Add(Splat(s))
}

// SubScalar subtracts s from every component.
func (v Vec4) SubScalar(s float32) Vec4 {
	return v.Sub(Splat(s))
}

// Scale returns v * scalar.
func (v Vec4) Scale(s float32) Vec4 {
	return Vec4FromMgl(v.Mgl().Mul(s))
}

// DivScalar divides every component by s.
func (v Vec4) DivScalar(s float32) Vec4 {
	return Vec4{v.X / s, v.Y / s, v.Z / s, v.W / s}
}

// MulMat4 multiplies v as a row vector by m (v * m).
// For the column-vector product use Mat4.MulVec4.
func (v Vec4) MulMat4(m Mat4) Vec4 {
	return Vec4FromMgl(m.Mgl().Transpose().Mul4x1(v.Mgl()))
}

// Neg returns -v.
func (v Vec4) Neg() Vec4 {
	return Vec4{-v.X, -v.Y, -v.Z, -v.W}
}

// Abs returns the component-wise absolute value.
func (v Vec4) Abs() Vec4 {
	return Vec4{mgl32.Abs(v.X), mgl32.Abs(v.Y), mgl32.Abs(v.Z), mgl32.Abs(v.W)}
}

// Dot returns the dot product.
func (v Vec4) Dot(other Vec4) float32 {
	return v.Mgl().Dot(other.Mgl())
}

// Distance returns the euclidean distance to another point.
func (v Vec4) Distance(other Vec4) float32 {
	return v.Sub(other).Length()
}

// Lerp linearly interpolates between v and other.
func (v Vec4) Lerp(other Vec4, t float32) Vec4 {
	return v.Add(other.Sub(v).Scale(t))
}

// ToDegrees converts every component from radians to degrees.
func (v Vec4) ToDegrees() Vec4 {
	return Vec4{mgl32.RadToDeg(v.X), mgl32.RadToDeg(v.Y), mgl32.RadToDeg(v.Z), mgl32.RadToDeg(v.W)}
}

// ToRadians converts every component from degrees to radians.
func (v Vec4) ToRadians() Vec4 {
	return Vec4{mgl32.DegToRad(v.X), mgl32.DegToRad(v.Y), mgl32.DegToRad(v.Z), mgl32.DegToRad(v.W)}
}

// ApproxEqual reports whether every component of v is within eps of other.
func (v Vec4) ApproxEqual(other Vec4, eps float32) bool {
	return v.XYZ().ApproxEqual(other.XYZ(), eps) && within(v.W, other.W, eps)
}

// String formats the vector as "(x, y, z, w)".
func (v Vec4) String() string {
	return fmt.Sprintf("(%f, %f, %f, %f)", v.X, v.Y, v.Z, v.W)
}
