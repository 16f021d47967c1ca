package picker

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/tessellab/meshpick/pkg/geom"
)

// degenerateEdgeSq is the squared edge length at or below which an edge is
// treated as collapsed (duplicated vertices) and skipped by edge picking.
const degenerateEdgeSq = 1e-10

// PickVertex returns the boundary vertex of face nearest to the point of
// impact of the last PickFace call, accepted only when its screen-space
// distance to (x, y) is strictly below the hit resolution. face must equal
// the currently picked face; a mismatch is a usage error and yields the
// invalid handle.
func (p *Picker) PickVertex(m Mesh, face Face, x, y int) Vertex {
	if !face.IsValid() || face != p.pickedFace {
		p.log.Error("pick vertex: provided face is not the picked face")
		return Vertex{}
	}

	best := float32(math.MaxFloat32)
	var closest Vertex
	for _, h := range m.FaceHalfedges(face) {
		v := m.ToVertex(h)
		if s := geom.SqDist3(m.Position(v), p.pickedPoint); s < best {
			best = s
			closest = v
		}
	}
	if !closest.IsValid() {
		return closest
	}

	// The 3D-nearest vertex can still be visually far away, e.g. under
	// strong perspective. Accept in screen space only.
	q := p.camera.Project(m.Position(closest))
	if q.Sub(cursor(x, y)).Len() < p.hitResolution {
		return closest
	}
	return Vertex{}
}

// PickVertexAt picks the face under (x, y) and refines the hit to its
// nearest boundary vertex in one call.
func (p *Picker) PickVertexAt(m Mesh, x, y int) Vertex {
	return p.PickVertex(m, p.PickFace(m, x, y), x, y)
}

// PickEdge returns the boundary halfedge of face nearest to the point of
// impact of the last PickFace call, accepted only when its screen-space
// distance to (x, y) is strictly below the hit resolution. face must equal
// the currently picked face. Edges with (near) coincident endpoints are
// never returned.
func (p *Picker) PickEdge(m Mesh, face Face, x, y int) Halfedge {
	if !face.IsValid() || face != p.pickedFace {
		p.log.Error("pick edge: provided face is not the picked face")
		return Halfedge{}
	}

	best := float32(math.MaxFloat32)
	var closest Halfedge
	for _, h := range m.FaceHalfedges(face) {
		s := m.Position(m.FromVertex(h))
		t := m.Position(m.ToVertex(h))
		if geom.SqDist3(s, t) <= degenerateEdgeSq {
			continue
		}
		seg := geom.Segment3{A: s, B: t}
		if d := seg.SquaredDistance(p.pickedPoint); d < best {
			best = d
			closest = h
		}
	}
	if !closest.IsValid() {
		return Halfedge{}
	}

	// Re-derive acceptance in screen space from the projected endpoints.
	seg := geom.Segment2{
		A: p.camera.Project(m.Position(m.FromVertex(closest))),
		B: p.camera.Project(m.Position(m.ToVertex(closest))),
	}
	dist := float32(math.Sqrt(float64(seg.SquaredDistance(cursor(x, y)))))
	if dist < p.hitResolution {
		return closest
	}
	return Halfedge{}
}

// PickEdgeAt picks the face under (x, y) and refines the hit to its nearest
// boundary edge in one call.
func (p *Picker) PickEdgeAt(m Mesh, x, y int) Halfedge {
	return p.PickEdge(m, p.PickFace(m, x, y), x, y)
}

func cursor(x, y int) mgl32.Vec2 {
	return mgl32.Vec2{float32(x), float32(y)}
}
