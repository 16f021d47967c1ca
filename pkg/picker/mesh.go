package picker

import "github.com/go-gl/mathgl/mgl32"

// TriangleRange is the inclusive interval of triangle indices a face expands
// to when rendered as a triangle fan. Across all faces of a mesh, the ranges
// partition the triangle index space without gaps, in face-index order.
type TriangleRange struct {
	First, Last int
}

// Contains reports whether the triangle index id falls inside the range.
func (r TriangleRange) Contains(id int) bool { return id >= r.First && id <= r.Last }

// Mesh is the topology contract the picker consumes. Implementations own the
// mesh elements; the picker only references them through handles.
type Mesh interface {
	// FaceCount returns the number of faces.
	FaceCount() int
	// FaceHalfedges returns the boundary halfedges of f in traversal order.
	FaceHalfedges(f Face) []Halfedge
	// FromVertex returns the origin vertex of a boundary halfedge.
	FromVertex(h Halfedge) Vertex
	// ToVertex returns the destination vertex of a boundary halfedge.
	ToVertex(h Halfedge) Vertex
	// Position returns the 3D position of v.
	Position(v Vertex) mgl32.Vec3
	// FaceNormal returns the unit normal of f.
	FaceNormal(f Face) mgl32.Vec3
	// TriangleRanges returns the per-face triangle ranges in face-index
	// order, or nil when the property has not been computed. GPU picking
	// cannot work without it.
	TriangleRanges() []TriangleRange
}

// facePolygon collects the boundary vertex positions of f.
func facePolygon(m Mesh, f Face) []mgl32.Vec3 {
	hs := m.FaceHalfedges(f)
	pts := make([]mgl32.Vec3, len(hs))
	for i, h := range hs {
		pts[i] = m.Position(m.ToVertex(h))
	}
	return pts
}

// FanTriangles triangulates every face of m as a fan, in face-index order,
// and returns the triangle vertices, three per triangle. The resulting draw
// order is what the mesh's triangle ranges describe, which is what lets
// color-coded picking map a rendered triangle index back to its face.
func FanTriangles(m Mesh) []mgl32.Vec3 {
	var out []mgl32.Vec3
	for i := 0; i < m.FaceCount(); i++ {
		poly := facePolygon(m, NewFace(i))
		for j := 1; j+1 < len(poly); j++ {
			out = append(out, poly[0], poly[j], poly[j+1])
		}
	}
	return out
}
