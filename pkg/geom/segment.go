package geom

import "github.com/go-gl/mathgl/mgl32"

// SqDist3 returns the squared distance between two 3D points.
func SqDist3(a, b mgl32.Vec3) float32 {
	d := a.Sub(b)
	return d.Dot(d)
}

// SqDist2 returns the squared distance between two 2D points.
func SqDist2(a, b mgl32.Vec2) float32 {
	d := a.Sub(b)
	return d.Dot(d)
}

// Segment3 is a line segment between two points in 3D space.
type Segment3 struct {
	A, B mgl32.Vec3
}

// SquaredDistance returns the squared distance from p to the segment,
// clamping the projection to the segment's endpoints.
func (s Segment3) SquaredDistance(p mgl32.Vec3) float32 {
	d := s.B.Sub(s.A)
	len2 := d.Dot(d)
	if len2 == 0 {
		return SqDist3(p, s.A)
	}
	t := p.Sub(s.A).Dot(d) / len2
	switch {
	case t <= 0:
		return SqDist3(p, s.A)
	case t >= 1:
		return SqDist3(p, s.B)
	}
	return SqDist3(p, s.A.Add(d.Mul(t)))
}

// Segment2 is a line segment between two points in 2D space.
type Segment2 struct {
	A, B mgl32.Vec2
}

// SquaredDistance returns the squared distance from p to the segment.
func (s Segment2) SquaredDistance(p mgl32.Vec2) float32 {
	d := s.B.Sub(s.A)
	len2 := d.Dot(d)
	if len2 == 0 {
		return SqDist2(p, s.A)
	}
	t := p.Sub(s.A).Dot(d) / len2
	switch {
	case t <= 0:
		return SqDist2(p, s.A)
	case t >= 1:
		return SqDist2(p, s.B)
	}
	return SqDist2(p, s.A.Add(d.Mul(t)))
}
