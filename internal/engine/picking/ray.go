// Package picking turns mouse positions into world-space rays and tests
// them against scene bounds.
package picking

import (
	gomath "math"

	"github.com/Faultbox/midgard-engine/pkg/math"
)

// Ray is a half-line in world space. Direction is normalized.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3
}

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min math.Vec3
	Max math.Vec3
}

// ScreenToRay unprojects a viewport pixel into a world-space ray.
// invViewProj is the inverse of the view-projection matrix.
func ScreenToRay(screen math.Vec2, viewportW, viewportH float32, invViewProj math.Mat4) Ray {
	ndcX := 2*screen.X/viewportW - 1
	ndcY := 1 - 2*screen.Y/viewportH

	near := unproject(invViewProj, math.Vec4{X: ndcX, Y: ndcY, Z: -1, W: 1})
	far := unproject(invViewProj, math.Vec4{X: ndcX, Y: ndcY, Z: 1, W: 1})

	return Ray{Origin: near, Direction: far.Sub(near).Normalize()}
}

func unproject(inv math.Mat4, ndc math.Vec4) math.Vec3 {
	p := inv.MulVec4(ndc)
	if p.W != 0 {
		p = p.DivScalar(p.W)
	}
	return p.XYZ()
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// IntersectPlaneY intersects the ray with the horizontal plane y = planeY.
func (r Ray) IntersectPlaneY(planeY float32) (math.Vec3, bool) {
	if gomath.Abs(float64(r.Direction.Y)) < 0.001 {
		return math.Vec3{}, false
	}
	t := (planeY - r.Origin.Y) / r.Direction.Y
	if t < 0 {
		return math.Vec3{}, false
	}
	return r.At(t), true
}

// IntersectSphere returns the distance to the first hit with a sphere.
// A ray starting inside the sphere hits at its exit point.
func (r Ray) IntersectSphere(center math.Vec3, radius float32) (float32, bool) {
	oc := r.Origin.Sub(center)
	b := oc.Dot(r.Direction)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := float32(gomath.Sqrt(float64(disc)))
	if t := -b - sq; t >= 0 {
		return t, true
	}
	if t := -b + sq; t >= 0 {
		return t, true
	}
	return 0, false
}

// IntersectAABB returns the distance to the box using the slab method.
// A ray starting inside the box hits at its exit point.
func (r Ray) IntersectAABB(box AABB) (float32, bool) {
	origin := r.Origin.Mgl()
	dir := r.Direction.Mgl()
	lo, hi := box.Min.Mgl(), box.Max.Mgl()

	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)
	for axis := 0; axis < 3; axis++ {
		if dir[axis] == 0 {
			if origin[axis] < lo[axis] || origin[axis] > hi[axis] {
				return 0, false
			}
			continue
		}
		t1 := (lo[axis] - origin[axis]) / dir[axis]
		t2 := (hi[axis] - origin[axis]) / dir[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// NewAABB creates a box from two opposite corners in any order.
func NewAABB(a, b math.Vec3) AABB {
	return AABB{
		Min: math.Vec3{X: min(a.X, b.X), Y: min(a.Y, b.Y), Z: min(a.Z, b.Z)},
		Max: math.Vec3{X: max(a.X, b.X), Y: max(a.Y, b.Y), Z: max(a.Z, b.Z)},
	}
}

// Nearest returns the index of the closest sphere the ray hits, or -1.
func Nearest(r Ray, centers []math.Vec3, radius float32) int {
	best, bestT := -1, float32(gomath.MaxFloat32)
	for i, c := range centers {
		if t, ok := r.IntersectSphere(c, radius); ok && t < bestT {
			best, bestT = i, t
		}
	}
	return best
}
