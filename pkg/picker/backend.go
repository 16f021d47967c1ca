package picker

import "github.com/go-gl/mathgl/mgl32"

// Camera is the projection contract the picker consumes. Screen coordinates
// use the cursor convention: origin at the top-left corner, y growing down.
type Camera interface {
	// UnProject maps a screen point at the given depth (0 = near plane,
	// 1 = far plane) back to world space. ok is false when the current
	// view-projection matrix cannot be inverted.
	UnProject(x, y, depth float32) (mgl32.Vec3, bool)
	// Project maps a world-space point to screen space.
	Project(p mgl32.Vec3) mgl32.Vec2
	// ViewProjection returns the current view-projection matrix.
	ViewProjection() mgl32.Mat4
	// Viewport returns the viewport size in pixels.
	Viewport() (width, height int)
}

// Program is a handle to a compiled shader program.
type Program interface {
	Bind()
	Release()
	SetUniformMat4(name string, m mgl32.Mat4)
}

// Drawable is a renderable triangulated form of a mesh.
type Drawable interface {
	Draw()
}

// Backend is the rendering contract the GPU picking strategy consumes.
// Implementations own a single offscreen render target and the compiled
// selection program, both created lazily and reused across picks.
type Backend interface {
	// SelectionProgram compiles (once) and returns the program that encodes
	// the draw-order triangle index as the fragment color.
	SelectionProgram() (Program, error)
	// FacesDrawable returns the fan-triangulated drawable for m, creating
	// and uploading it on first use.
	FacesDrawable(m Mesh) (Drawable, error)
	// BindTarget binds the offscreen render target, creating or resizing it
	// to width x height as needed. The returned function restores the
	// previously bound framebuffer and viewport; it must be called on every
	// exit path.
	BindTarget(width, height int) (restore func(), err error)
	// ClearColor returns the current global clear color.
	ClearColor() [4]float32
	// SetClearColor sets the global clear color.
	SetClearColor(c [4]float32)
	// Clear clears the color and depth buffers of the bound target.
	Clear()
	// Finish blocks until all issued draw commands have completed.
	Finish()
	// ReadPixel returns the RGBA color at (x, y) of the bound target,
	// origin at the bottom-left corner.
	ReadPixel(x, y int) [4]byte
}
