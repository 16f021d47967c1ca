package picker

// Mesh element handles are lightweight value identifiers. The mesh owns the
// elements; handles only reference them by index. The zero value of each
// handle type is the invalid handle, equality is the == operator.

// Face identifies a polygon of a surface mesh.
type Face struct {
	id int32
}

// NewFace returns the handle for the face at index i.
func NewFace(i int) Face { return Face{int32(i) + 1} }

// IsValid reports whether the handle refers to a face.
func (f Face) IsValid() bool { return f.id != 0 }

// Index returns the face index, or -1 for the invalid handle.
func (f Face) Index() int { return int(f.id) - 1 }

// Vertex identifies a mesh vertex.
type Vertex struct {
	id int32
}

// NewVertex returns the handle for the vertex at index i.
func NewVertex(i int) Vertex { return Vertex{int32(i) + 1} }

// IsValid reports whether the handle refers to a vertex.
func (v Vertex) IsValid() bool { return v.id != 0 }

// Index returns the vertex index, or -1 for the invalid handle.
func (v Vertex) Index() int { return int(v.id) - 1 }

// Halfedge identifies a directed boundary edge of a face.
type Halfedge struct {
	id int32
}

// NewHalfedge returns the handle for the halfedge at index i.
func NewHalfedge(i int) Halfedge { return Halfedge{int32(i) + 1} }

// IsValid reports whether the handle refers to a halfedge.
func (h Halfedge) IsValid() bool { return h.id != 0 }

// Index returns the halfedge index, or -1 for the invalid handle.
func (h Halfedge) Index() int { return int(h.id) - 1 }
