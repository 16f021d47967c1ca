package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Orbit rotates a camera around a center point with spherical coordinates.
type Orbit struct {
	Center   mgl32.Vec3
	Distance float32
	Pitch    float32 // vertical angle, radians
	Yaw      float32 // horizontal angle, radians

	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbit returns an orbit controller with default constraints.
func NewOrbit() *Orbit {
	return &Orbit{
		Distance:        3,
		Pitch:           0.4,
		MinDistance:     0.1,
		MaxDistance:     1000,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Eye returns the camera position in world space.
func (o *Orbit) Eye() mgl32.Vec3 {
	x := o.Distance * float32(gomath.Cos(float64(o.Pitch))*gomath.Sin(float64(o.Yaw)))
	y := o.Distance * float32(gomath.Sin(float64(o.Pitch)))
	z := o.Distance * float32(gomath.Cos(float64(o.Pitch))*gomath.Cos(float64(o.Yaw)))
	return o.Center.Add(mgl32.Vec3{x, y, z})
}

// Apply writes the orbit's view matrix into c.
func (o *Orbit) Apply(c *Camera) {
	c.LookAt(o.Eye(), o.Center, mgl32.Vec3{0, 1, 0})
}

// HandleDrag updates the angles from a mouse drag delta.
func (o *Orbit) HandleDrag(deltaX, deltaY float32) {
	o.Yaw -= deltaX * o.DragSensitivity
	o.Pitch += deltaY * o.DragSensitivity
	if o.Pitch < o.MinPitch {
		o.Pitch = o.MinPitch
	}
	if o.Pitch > o.MaxPitch {
		o.Pitch = o.MaxPitch
	}
}

// HandleZoom updates the distance from a scroll wheel delta.
func (o *Orbit) HandleZoom(delta float32) {
	o.Distance -= delta * o.Distance * o.ZoomSensitivity
	if o.Distance < o.MinDistance {
		o.Distance = o.MinDistance
	}
	if o.Distance > o.MaxDistance {
		o.Distance = o.MaxDistance
	}
}

// FitToBounds centers the orbit on a bounding box and backs the camera off
// far enough to see all of it.
func (o *Orbit) FitToBounds(min, max mgl32.Vec3) {
	o.Center = min.Add(max).Mul(0.5)
	size := max.Sub(min).Len()
	if size == 0 {
		size = 1
	}
	o.Distance = size * 1.5
	if o.Distance < o.MinDistance {
		o.Distance = o.MinDistance
	}
}
