package render

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// MeshDrawable is an uploaded triangle soup: one VAO with a position-only
// vertex buffer, drawn as plain triangles.
type MeshDrawable struct {
	vao   uint32
	vbo   uint32
	count int32
}

// NewMeshDrawable uploads triangle vertices (three per triangle) to the GPU.
func NewMeshDrawable(verts []mgl32.Vec3) (*MeshDrawable, error) {
	if len(verts) == 0 || len(verts)%3 != 0 {
		return nil, fmt.Errorf("vertex count %d is not a multiple of 3", len(verts))
	}

	d := &MeshDrawable{count: int32(len(verts))}
	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)

	gl.GenBuffers(1, &d.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*3*4, gl.Ptr(verts), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return d, nil
}

// Draw issues the draw call.
func (d *MeshDrawable) Draw() {
	gl.BindVertexArray(d.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, d.count)
	gl.BindVertexArray(0)
}

// Destroy releases the GL buffers.
func (d *MeshDrawable) Destroy() {
	if d.vbo != 0 {
		gl.DeleteBuffers(1, &d.vbo)
		d.vbo = 0
	}
	if d.vao != 0 {
		gl.DeleteVertexArrays(1, &d.vao)
		d.vao = 0
	}
}
