package geom

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Plane3 is a plane in 3D space, stored as a normal and its offset along it.
type Plane3 struct {
	normal mgl32.Vec3
	d      float32 // normal . p for every point p on the plane
}

// PlaneFromPointNormal returns the plane through p with normal n.
func PlaneFromPointNormal(p, n mgl32.Vec3) Plane3 {
	return Plane3{normal: n, d: n.Dot(p)}
}

// Normal returns the plane normal.
func (pl Plane3) Normal() mgl32.Vec3 { return pl.normal }

// IntersectLine returns the intersection point of the plane with l. ok is
// false when the line is (near) parallel to the plane.
func (pl Plane3) IntersectLine(l Line3) (mgl32.Vec3, bool) {
	denom := pl.normal.Dot(l.Direction())
	if gomath.Abs(float64(denom)) < 1e-7 {
		return mgl32.Vec3{}, false
	}
	t := (pl.d - pl.normal.Dot(l.Point())) / denom
	return l.Point().Add(l.Direction().Mul(t)), true
}
