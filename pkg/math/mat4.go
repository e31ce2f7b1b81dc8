package math

import "github.com/go-gl/mathgl/mgl32"

// Mat4 is a 4x4 matrix in column-major order (OpenGL compatible).
// It shares its memory layout with mgl32.Mat4.
// Layout: [m0 m4 m8  m12]
//
//	[m1 m5 m9  m13]
//	[m2 m6 m10 m14]
//	[m3 m7 m11 m15]
type Mat4 [16]float32

// Mat4FromMgl converts an mgl32 matrix.
func Mat4FromMgl(m mgl32.Mat4) Mat4 {
	return Mat4(m)
}

// Mgl returns the matrix as an mgl32.Mat4.
func (m Mat4) Mgl() mgl32.Mat4 {
	return mgl32.Mat4(m)
}

// Identity returns an identity matrix.
func Identity() Mat4 {
	return Mat4(mgl32.Ident4())
}

// Perspective returns a perspective projection matrix.
// fovY is in radians, aspect is width/height.
func Perspective(fovY, aspect, near, far float32) Mat4 {
	return Mat4(mgl32.Perspective(fovY, aspect, near, far))
}

// Ortho returns an orthographic projection matrix.
func Ortho(left, right, bottom, top, near, far float32) Mat4 {
	return Mat4(mgl32.Ortho(left, right, bottom, top, near, far))
}

// LookAt returns a view matrix looking from eye to center with up direction.
func LookAt(eye, center, up Vec3) Mat4 {
	return Mat4(mgl32.LookAtV(eye.Mgl(), center.Mgl(), up.Mgl()))
}

// Translate returns a translation matrix.
func Translate(x, y, z float32) Mat4 {
	return Mat4(mgl32.Translate3D(x, y, z))
}

// Scale returns a scale matrix.
func Scale(x, y, z float32) Mat4 {
	return Mat4(mgl32.Scale3D(x, y, z))
}

// RotateX returns a rotation matrix around the X axis.
// angle is in radians.
func RotateX(angle float32) Mat4 {
	return Mat4(mgl32.HomogRotate3DX(angle))
}

// RotateY returns a rotation matrix around the Y axis.
// angle is in radians.
func RotateY(angle float32) Mat4 {
	return Mat4(mgl32.HomogRotate3DY(angle))
}

// RotateZ returns a rotation matrix around the Z axis.
// angle is in radians.
func RotateZ(angle float32) Mat4 {
	return Mat4(mgl32.HomogRotate3DZ(angle))
}

// RotateAxis creates a rotation matrix around an arbitrary axis.
// axis should be normalized, angle is in radians.
func RotateAxis(axis Vec3, angle float32) Mat4 {
	return Mat4(mgl32.HomogRotate3D(angle, axis.Mgl()))
}

// Mul multiplies this matrix by another (m * other).
func (m Mat4) Mul(other Mat4) Mat4 {
	return Mat4(m.Mgl().Mul4(other.Mgl()))
}

// MulVec4 multiplies the matrix by a column vector (m * v).
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4FromMgl(m.Mgl().Mul4x1(v.Mgl()))
}

// Transpose returns the transposed matrix.
func (m Mat4) Transpose() Mat4 {
	return Mat4(m.Mgl().Transpose())
}

// TransformVec3 transforms a point by this matrix (assumes w=1).
func (m Mat4) TransformVec3(v Vec3) Vec3 {
	r := m.Mgl().Mul4x1(v.Mgl().Vec4(1))
	if r[3] != 0 && r[3] != 1 {
		return Vec3{r[0] / r[3], r[1] / r[3], r[2] / r[3]}
	}
	return Vec3{r[0], r[1], r[2]}
}

// TransformDirection transforms a direction vector (ignores translation).
func (m Mat4) TransformDirection(d Vec3) Vec3 {
	r := m.Mgl().Mul4x1(d.Mgl().Vec4(0))
	return Vec3{r[0], r[1], r[2]}
}

// Ptr returns a pointer to the first element (for OpenGL uniform calls).
func (m *Mat4) Ptr() *float32 {
	return &m[0]
}

// Inverse returns the inverse of the matrix.
// Returns identity if the matrix is singular.
func (m Mat4) Inverse() Mat4 {
	mm := m.Mgl()
	if mm.Det() == 0 {
		return Identity()
	}
	return Mat4(mm.Inv())
}
