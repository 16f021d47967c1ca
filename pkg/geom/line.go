// Package geom provides the intersection and distance primitives used by
// mesh picking: lines, oriented lines, planes and segments in 2D and 3D.
package geom

import "github.com/go-gl/mathgl/mgl32"

// Line3 is an undirected line in 3D space.
type Line3 struct {
	point mgl32.Vec3
	dir   mgl32.Vec3 // normalized
}

// Line3FromPoints returns the line through p and q. p and q must be distinct.
func Line3FromPoints(p, q mgl32.Vec3) Line3 {
	return Line3{point: p, dir: q.Sub(p).Normalize()}
}

// Point returns a point on the line.
func (l Line3) Point() mgl32.Vec3 { return l.point }

// Direction returns the unit direction of the line.
func (l Line3) Direction() mgl32.Vec3 { return l.dir }

// OrientedLine3 is a directed line in 3D space stored in Pluecker
// coordinates, which make line-vs-line side tests a single inner product.
type OrientedLine3 struct {
	d mgl32.Vec3 // direction, q - p
	m mgl32.Vec3 // moment, p x q
}

// OrientedLine3FromPoints returns the directed line from p through q.
func OrientedLine3FromPoints(p, q mgl32.Vec3) OrientedLine3 {
	return OrientedLine3{d: q.Sub(p), m: p.Cross(q)}
}

// Side returns the sign (-1, 0 or +1) of the reciprocal Pluecker product of
// the two lines. Zero means the lines meet or are parallel.
func (l OrientedLine3) Side(o OrientedLine3) int {
	s := l.d.Dot(o.m) + o.d.Dot(l.m)
	switch {
	case s > 0:
		return 1
	case s < 0:
		return -1
	}
	return 0
}

// PassesThrough reports whether the oriented line passes through the planar
// polygon given by its boundary vertices. The line passes through exactly
// when its side sign against every boundary edge is consistent; a zero side
// (the line grazing an edge) is compatible with either sign.
func (l OrientedLine3) PassesThrough(polygon []mgl32.Vec3) bool {
	n := len(polygon)
	if n < 3 {
		return false
	}
	sign := 0
	for i := 0; i < n; i++ {
		edge := OrientedLine3FromPoints(polygon[i], polygon[(i+1)%n])
		s := l.Side(edge)
		if s == 0 {
			continue
		}
		if sign == 0 {
			sign = s
			continue
		}
		if s != sign {
			return false
		}
	}
	return sign != 0
}
