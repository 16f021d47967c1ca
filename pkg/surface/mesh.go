// Package surface provides a compact polygonal surface mesh satisfying the
// picking contracts: indexed vertex positions, per-face boundary loops,
// face normals and the fan triangle ranges used by color-coded picking.
package surface

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/tessellab/meshpick/pkg/picker"
)

type halfedge struct {
	from, to int32
}

// Mesh is an immutable indexed polygon mesh. Construct one with New, Cube or
// the OBJ reader.
type Mesh struct {
	positions []mgl32.Vec3
	halfedges []halfedge
	loops     [][]picker.Halfedge // boundary halfedges per face
	normals   []mgl32.Vec3
	ranges    []picker.TriangleRange
}

// New builds a mesh from vertex positions and faces given as loops of vertex
// indices. Every face needs at least three vertices and all indices must be
// in range.
func New(positions []mgl32.Vec3, faces [][]int) (*Mesh, error) {
	m := &Mesh{
		positions: positions,
		loops:     make([][]picker.Halfedge, len(faces)),
		normals:   make([]mgl32.Vec3, len(faces)),
		ranges:    make([]picker.TriangleRange, len(faces)),
	}

	tri := 0
	for fi, face := range faces {
		if len(face) < 3 {
			return nil, fmt.Errorf("face %d has %d vertices, need at least 3", fi, len(face))
		}
		loop := make([]picker.Halfedge, len(face))
		poly := make([]mgl32.Vec3, len(face))
		for i, vi := range face {
			if vi < 0 || vi >= len(positions) {
				return nil, fmt.Errorf("face %d references vertex %d, mesh has %d", fi, vi, len(positions))
			}
			next := face[(i+1)%len(face)]
			loop[i] = picker.NewHalfedge(len(m.halfedges))
			m.halfedges = append(m.halfedges, halfedge{from: int32(vi), to: int32(next)})
			poly[i] = positions[vi]
		}
		m.loops[fi] = loop
		m.normals[fi] = newellNormal(poly)

		// Fan triangulation: a k-gon contributes k-2 consecutive triangles,
		// so the ranges partition the triangle index space in face order.
		count := len(face) - 2
		m.ranges[fi] = picker.TriangleRange{First: tri, Last: tri + count - 1}
		tri += count
	}

	return m, nil
}

// newellNormal computes the unit normal of a planar polygon with Newell's
// method, which stays stable for slightly non-planar or concave loops.
func newellNormal(poly []mgl32.Vec3) mgl32.Vec3 {
	var n mgl32.Vec3
	for i := range poly {
		c := poly[i]
		x := poly[(i+1)%len(poly)]
		n[0] += (c.Y() - x.Y()) * (c.Z() + x.Z())
		n[1] += (c.Z() - x.Z()) * (c.X() + x.X())
		n[2] += (c.X() - x.X()) * (c.Y() + x.Y())
	}
	if n.Len() == 0 {
		return n
	}
	return n.Normalize()
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.positions) }

// FaceCount returns the number of faces.
func (m *Mesh) FaceCount() int { return len(m.loops) }

// FaceHalfedges returns the boundary halfedges of f in traversal order.
func (m *Mesh) FaceHalfedges(f picker.Face) []picker.Halfedge {
	return m.loops[f.Index()]
}

// FromVertex returns the origin vertex of h.
func (m *Mesh) FromVertex(h picker.Halfedge) picker.Vertex {
	return picker.NewVertex(int(m.halfedges[h.Index()].from))
}

// ToVertex returns the destination vertex of h.
func (m *Mesh) ToVertex(h picker.Halfedge) picker.Vertex {
	return picker.NewVertex(int(m.halfedges[h.Index()].to))
}

// Position returns the 3D position of v.
func (m *Mesh) Position(v picker.Vertex) mgl32.Vec3 {
	return m.positions[v.Index()]
}

// FaceNormal returns the unit normal of f.
func (m *Mesh) FaceNormal(f picker.Face) mgl32.Vec3 {
	return m.normals[f.Index()]
}

// TriangleRanges returns the per-face fan triangle ranges.
func (m *Mesh) TriangleRanges() []picker.TriangleRange {
	return m.ranges
}

// Bounds returns the axis-aligned bounding box of the mesh.
func (m *Mesh) Bounds() (min, max mgl32.Vec3) {
	if len(m.positions) == 0 {
		return
	}
	min, max = m.positions[0], m.positions[0]
	for _, p := range m.positions[1:] {
		for i := 0; i < 3; i++ {
			if p[i] < min[i] {
				min[i] = p[i]
			}
			if p[i] > max[i] {
				max[i] = p[i]
			}
		}
	}
	return
}

// Cube returns the unit cube centered at the origin: 8 vertices and 6 quad
// faces with outward normals, ordered front (+z), back (-z), left (-x),
// right (+x), top (+y), bottom (-y).
func Cube() *Mesh {
	positions := []mgl32.Vec3{
		{-0.5, -0.5, -0.5}, // 0
		{0.5, -0.5, -0.5},  // 1
		{0.5, 0.5, -0.5},   // 2
		{-0.5, 0.5, -0.5},  // 3
		{-0.5, -0.5, 0.5},  // 4
		{0.5, -0.5, 0.5},   // 5
		{0.5, 0.5, 0.5},    // 6
		{-0.5, 0.5, 0.5},   // 7
	}
	faces := [][]int{
		{4, 5, 6, 7}, // front
		{1, 0, 3, 2}, // back
		{0, 4, 7, 3}, // left
		{5, 1, 2, 6}, // right
		{7, 6, 2, 3}, // top
		{0, 1, 5, 4}, // bottom
	}
	m, err := New(positions, faces)
	if err != nil {
		panic(err) // static data
	}
	return m
}
