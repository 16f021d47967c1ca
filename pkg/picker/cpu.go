package picker

import (
	"math"
	"runtime"
	"sync"

	"github.com/tessellab/meshpick/pkg/geom"
)

// pickFaceCPU brute-force tests the picking ray against every face and keeps
// the hit closest to the near plane.
func (p *Picker) pickFaceCPU(m Mesh, x, y int) Face {
	p.pickedFace = Face{}

	pNear, okNear := p.camera.UnProject(float32(x), float32(y), 0)
	pFar, okFar := p.camera.UnProject(float32(x), float32(y), 1)
	if !okNear || !okFar {
		p.log.Error("unprojecting the picking ray failed")
		return Face{}
	}
	ray := geom.OrientedLine3FromPoints(pNear, pFar)

	// Fan out the per-face intersection tests. Each test is side-effect-free
	// and writes are disjoint by index, so no synchronization beyond the
	// final join is needed.
	num := m.FaceCount()
	status := make([]byte, num)
	workers := runtime.GOMAXPROCS(0)
	if workers > num {
		workers = num
	}
	if workers > 1 {
		chunk := (num + workers - 1) / workers
		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			lo := w * chunk
			hi := lo + chunk
			if hi > num {
				hi = num
			}
			wg.Add(1)
			go func(lo, hi int) {
				defer wg.Done()
				for i := lo; i < hi; i++ {
					if ray.PassesThrough(facePolygon(m, NewFace(i))) {
						status[i] = 1
					}
				}
			}(lo, hi)
		}
		wg.Wait()
	} else {
		for i := 0; i < num; i++ {
			if ray.PassesThrough(facePolygon(m, NewFace(i))) {
				status[i] = 1
			}
		}
	}

	// Ordered sequential reduction: strict < keeps the first face on ties,
	// so repeated picks are stable.
	line := geom.Line3FromPoints(pNear, pFar)
	best := float32(math.MaxFloat32)
	for i := 0; i < num; i++ {
		if status[i] == 0 {
			continue
		}
		face := NewFace(i)
		pt, ok := facePlane(m, face).IntersectLine(line)
		if !ok {
			// The ray grazes a near-parallel face: the boundary test
			// accepted it but the supporting plane has no stable
			// intersection with the picking line. Skip it.
			continue
		}
		if s := geom.SqDist3(pt, pNear); s < best {
			best = s
			p.pickedFace = face
			p.pickedPoint = pt
		}
	}

	return p.pickedFace
}

// facePlane builds the supporting plane of f from one boundary vertex and
// the face normal.
func facePlane(m Mesh, f Face) geom.Plane3 {
	h := m.FaceHalfedges(f)[0]
	return geom.PlaneFromPointNormal(m.Position(m.ToVertex(h)), m.FaceNormal(f))
}
