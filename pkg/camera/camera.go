// Package camera provides the view/projection state shared by rendering and
// picking, including screen-space project/unproject under the cursor
// convention (origin at the top-left corner, y growing down).
package camera

import "github.com/go-gl/mathgl/mgl32"

// Camera combines a view matrix, a projection matrix and a viewport.
type Camera struct {
	view   mgl32.Mat4
	proj   mgl32.Mat4
	width  int
	height int

	// perspective parameters, kept to rebuild the projection on resize
	persp bool
	fovY  float32
	near  float32
	far   float32
}

// NewPerspective returns a perspective camera. fovY is in degrees.
func NewPerspective(fovY float32, width, height int, near, far float32) *Camera {
	c := &Camera{
		view:   mgl32.Ident4(),
		width:  width,
		height: height,
		persp:  true,
		fovY:   mgl32.DegToRad(fovY),
		near:   near,
		far:    far,
	}
	c.proj = mgl32.Perspective(c.fovY, float32(width)/float32(height), near, far)
	return c
}

// NewOrtho returns an orthographic camera with the given frustum bounds.
func NewOrtho(left, right, bottom, top, near, far float32, width, height int) *Camera {
	return &Camera{
		view:   mgl32.Ident4(),
		proj:   mgl32.Ortho(left, right, bottom, top, near, far),
		width:  width,
		height: height,
	}
}

// LookAt places the camera at eye looking toward center.
func (c *Camera) LookAt(eye, center, up mgl32.Vec3) {
	c.view = mgl32.LookAtV(eye, center, up)
}

// SetView replaces the view matrix.
func (c *Camera) SetView(view mgl32.Mat4) { c.view = view }

// Resize updates the viewport and, for perspective cameras, the aspect
// ratio of the projection.
func (c *Camera) Resize(width, height int) {
	c.width, c.height = width, height
	if c.persp {
		c.proj = mgl32.Perspective(c.fovY, float32(width)/float32(height), c.near, c.far)
	}
}

// ViewProjection returns the combined view-projection matrix.
func (c *Camera) ViewProjection() mgl32.Mat4 {
	return c.proj.Mul4(c.view)
}

// Viewport returns the viewport size in pixels.
func (c *Camera) Viewport() (width, height int) {
	return c.width, c.height
}

// Project maps a world-space point to screen space.
func (c *Camera) Project(p mgl32.Vec3) mgl32.Vec2 {
	win := mgl32.Project(p, c.view, c.proj, 0, 0, c.width, c.height)
	return mgl32.Vec2{win.X(), float32(c.height) - win.Y()}
}

// UnProject maps a screen point at the given depth (0 = near plane, 1 = far
// plane) back to world space. ok is false when the view-projection matrix
// cannot be inverted.
func (c *Camera) UnProject(x, y, depth float32) (mgl32.Vec3, bool) {
	win := mgl32.Vec3{x, float32(c.height) - y, depth}
	obj, err := mgl32.UnProject(win, c.view, c.proj, 0, 0, c.width, c.height)
	if err != nil {
		return mgl32.Vec3{}, false
	}
	return obj, true
}
