package picker

import (
	"go.uber.org/zap"

	"github.com/tessellab/meshpick/pkg/geom"
)

// pickBackground is the reserved clear value for the offscreen id render.
// Opaque white decodes to a negative id, which no triangle encodes to.
var pickBackground = [4]float32{1, 1, 1, 1}

// pickFaceGPU renders the mesh offscreen with draw-order triangle indices
// encoded as fragment colors and reads back the single pixel under the
// cursor.
func (p *Picker) pickFaceGPU(m Mesh, x, y int) Face {
	p.pickedFace = Face{}

	drawable, err := p.backend.FacesDrawable(m)
	if err != nil {
		p.log.Error("creating faces drawable failed", zap.Error(err))
		return Face{}
	}

	width, height := p.camera.Viewport()
	restore, err := p.backend.BindTarget(width, height)
	if err != nil {
		p.log.Error("binding offscreen render target failed", zap.Error(err))
		return Face{}
	}
	defer restore()

	prevClear := p.backend.ClearColor()
	defer p.backend.SetClearColor(prevClear)

	p.backend.SetClearColor(pickBackground)
	p.backend.Clear()

	p.program.Bind()
	p.program.SetUniformMat4("MVP", p.camera.ViewProjection())
	drawable.Draw()
	p.program.Release()

	// Hard barrier: the readback must observe the completed draw.
	p.backend.Finish()

	// The cursor convention has y growing down; the render target reads
	// with the origin at the bottom-left corner.
	id := decodeTriangleID(p.backend.ReadPixel(x, height-1-y))
	if id < 0 {
		return Face{}
	}

	face := p.resolveTriangle(m, int(id))
	if !face.IsValid() {
		return Face{}
	}
	p.pickedFace = face

	// The color render only answers "which face". Recover the 3D point of
	// impact from the face's supporting plane so vertex and edge refinement
	// behave identically in both modes.
	if pNear, ok := p.camera.UnProject(float32(x), float32(y), 0); ok {
		if pFar, ok := p.camera.UnProject(float32(x), float32(y), 1); ok {
			line := geom.Line3FromPoints(pNear, pFar)
			if pt, ok := facePlane(m, face).IntersectLine(line); ok {
				p.pickedPoint = pt
			}
		}
	}

	return p.pickedFace
}

// decodeTriangleID converts a readback color to the triangle index it
// encodes, little-endian across the four channels. The background clear
// value decodes to a negative id.
func decodeTriangleID(c [4]byte) int32 {
	return int32(uint32(c[3])<<24 | uint32(c[2])<<16 | uint32(c[1])<<8 | uint32(c[0]))
}

// resolveTriangle maps a rendered triangle index back to the face that
// produced it. Triangle meshes are the common case, so the face at the same
// index is confirmed against its own range first; polygonal meshes fall back
// to a linear scan over all ranges, which are disjoint and partition the
// triangle index space.
func (p *Picker) resolveTriangle(m Mesh, id int) Face {
	ranges := m.TriangleRanges()
	if ranges == nil {
		p.log.Error("mesh has no triangle range property, selection aborted")
		return Face{}
	}
	if id < len(ranges) && ranges[id].Contains(id) {
		return NewFace(id)
	}
	for i := range ranges {
		if ranges[i].Contains(id) {
			return NewFace(i)
		}
	}
	return Face{}
}
