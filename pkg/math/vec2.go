// Package math provides math types and functions for game development.
//
// The types are thin value wrappers over github.com/go-gl/mathgl/mgl32.
// Every type converts to and from its mgl32 counterpart with Mgl and the
// matching FromMgl constructor.
package math

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float32
}

// Vec2FromMgl converts an mgl32 vector.
func Vec2FromMgl(v mgl32.Vec2) Vec2 {
	return Vec2{v[0], v[1]}
}

// Mgl returns the vector as an mgl32.Vec2.
func (v Vec2) Mgl() mgl32.Vec2 {
	return mgl32.Vec2{v.X, v.Y}
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2FromMgl(v.Mgl().Add(other.Mgl()))
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2FromMgl(v.Mgl().Sub(other.Mgl()))
}

// Scale returns v * scalar.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2FromMgl(v.Mgl().Mul(s))
}

// Div returns the component-wise quotient v / other.
func (v Vec2) Div(other Vec2) Vec2 {
	return Vec2{v.X / other.X, v.Y / other.Y}
}

// Dot returns the dot product.
func (v Vec2) Dot(other Vec2) float32 {
	return v.Mgl().Dot(other.Mgl())
}

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	return v.Mgl().Len()
}

// Normalize returns a unit vector.
func (v Vec2) Normalize() Vec2 {
	if v.Length() == 0 {
		return Vec2{}
	}
	return Vec2FromMgl(v.Mgl().Normalize())
}

// Distance returns the distance to another point.
func (v Vec2) Distance(other Vec2) float32 {
	return v.Sub(other).Length()
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%f, %f)", v.X, v.Y)
}
