// Package render is the OpenGL 4.1 implementation of the picking render
// contract: offscreen framebuffer, selection shader, mesh drawables and
// single-pixel readback.
package render

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/tessellab/meshpick/pkg/picker"
)

const selectionVert = `#version 410 core
layout(location = 0) in vec3 vtx_position;
uniform mat4 MVP;
void main() {
    gl_Position = MVP * vec4(vtx_position, 1.0);
}
`

// The fragment color carries gl_PrimitiveID little-endian across the four
// channels. The white clear value decodes to a negative id, so it can never
// collide with a triangle.
const selectionFrag = `#version 410 core
out vec4 frag_color;
void main() {
    int id = gl_PrimitiveID;
    frag_color = vec4(
        float(id & 0xff) / 255.0,
        float((id >> 8) & 0xff) / 255.0,
        float((id >> 16) & 0xff) / 255.0,
        float((id >> 24) & 0xff) / 255.0);
}
`

const flatVert = `#version 410 core
layout(location = 0) in vec3 vtx_position;
uniform mat4 MVP;
out vec3 world_pos;
void main() {
    world_pos = vtx_position;
    gl_Position = MVP * vec4(vtx_position, 1.0);
}
`

// Faceted shading from screen-space derivatives keeps the vertex buffer
// position-only, shared with the selection pass.
const flatFrag = `#version 410 core
in vec3 world_pos;
out vec4 frag_color;
void main() {
    vec3 n = normalize(cross(dFdx(world_pos), dFdy(world_pos)));
    float l = 0.25 + 0.75 * abs(n.z);
    frag_color = vec4(vec3(0.35, 0.55, 0.80) * l, 1.0);
}
`

// Init loads the OpenGL function pointers. Call once after the GL context
// is current.
func Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("initializing OpenGL: %w", err)
	}
	gl.Enable(gl.DEPTH_TEST)
	return nil
}

// SetViewport sets the viewport of the default framebuffer, typically after
// a window resize.
func SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Backend owns the shared selection resources: one compiled program, one
// offscreen target and one cached drawable per mesh.
type Backend struct {
	selection *Program
	shading   *Program
	target    *Framebuffer
	drawables map[picker.Mesh]*MeshDrawable
}

// NewBackend returns an empty backend; all GL resources are created lazily.
func NewBackend() *Backend {
	return &Backend{drawables: make(map[picker.Mesh]*MeshDrawable)}
}

// SelectionProgram compiles the triangle-id program on first use.
func (b *Backend) SelectionProgram() (picker.Program, error) {
	if b.selection == nil {
		p, err := CompileProgram(selectionVert, selectionFrag)
		if err != nil {
			return nil, fmt.Errorf("selection program: %w", err)
		}
		b.selection = p
	}
	return b.selection, nil
}

// ShadingProgram compiles the flat-shaded viewer program on first use.
func (b *Backend) ShadingProgram() (*Program, error) {
	if b.shading == nil {
		p, err := CompileProgram(flatVert, flatFrag)
		if err != nil {
			return nil, fmt.Errorf("shading program: %w", err)
		}
		b.shading = p
	}
	return b.shading, nil
}

// FacesDrawable fan-triangulates m and uploads it on first use. The draw
// order matches the mesh's triangle ranges.
func (b *Backend) FacesDrawable(m picker.Mesh) (picker.Drawable, error) {
	if d, ok := b.drawables[m]; ok {
		return d, nil
	}
	d, err := NewMeshDrawable(picker.FanTriangles(m))
	if err != nil {
		return nil, err
	}
	b.drawables[m] = d
	return d, nil
}

// BindTarget binds the shared offscreen target, creating or resizing it to
// the requested size. The returned function restores the previous
// framebuffer and viewport.
func (b *Backend) BindTarget(width, height int) (func(), error) {
	if b.target == nil {
		fb, err := NewFramebuffer(width, height)
		if err != nil {
			return nil, err
		}
		b.target = fb
	} else {
		b.target.Resize(width, height)
	}
	return b.target.BindWithViewport(), nil
}

// ClearColor returns the current global clear color.
func (b *Backend) ClearColor() [4]float32 {
	var c [4]float32
	gl.GetFloatv(gl.COLOR_CLEAR_VALUE, &c[0])
	return c
}

// SetClearColor sets the global clear color.
func (b *Backend) SetClearColor(c [4]float32) {
	gl.ClearColor(c[0], c[1], c[2], c[3])
}

// Clear clears the color and depth buffers of the bound target.
func (b *Backend) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Finish blocks until all issued draw commands have completed.
func (b *Backend) Finish() {
	gl.Flush()
	gl.Finish()
}

// ReadPixel returns the RGBA color at (x, y) of the bound target.
func (b *Backend) ReadPixel(x, y int) [4]byte {
	return b.target.ReadPixel(x, y)
}

// Destroy releases every GL resource the backend owns.
func (b *Backend) Destroy() {
	for _, d := range b.drawables {
		d.Destroy()
	}
	b.drawables = make(map[picker.Mesh]*MeshDrawable)
	if b.target != nil {
		b.target.Destroy()
		b.target = nil
	}
	if b.selection != nil {
		b.selection.Destroy()
		b.selection = nil
	}
	if b.shading != nil {
		b.shading.Destroy()
		b.shading = nil
	}
}
