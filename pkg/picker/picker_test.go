package picker_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/tessellab/meshpick/pkg/camera"
	"github.com/tessellab/meshpick/pkg/picker"
	"github.com/tessellab/meshpick/pkg/surface"
)

// testCamera looks down the -z axis at the origin through a [-1,1] ortho
// frustum on a 400x400 viewport. World coordinates translate to pixels by
// hand: x_screen = (x+1)*200, y_screen = 400-(y+1)*200, so the unit cube's
// front face covers the square from (100,100) to (300,300).
func testCamera() *camera.Camera {
	c := camera.NewOrtho(-1, 1, -1, 1, 0.1, 10, 400, 400)
	c.LookAt(mgl32.Vec3{0, 0, 2}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
	return c
}

func observedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.ErrorLevel)
	return zap.New(core), logs
}

func hasMessage(logs *observer.ObservedLogs, msg string) bool {
	return logs.FilterMessage(msg).Len() > 0
}

func TestPickFaceCPU(t *testing.T) {
	m := surface.Cube()
	p := picker.New(testCamera(), nil, nil)

	if p.UseGPU() {
		t.Fatal("a picker without a backend must start in CPU mode")
	}

	// The ray through the viewport center crosses the front and the back
	// face; the front one is closer to the near plane and must win.
	face := p.PickFace(m, 200, 200)
	if face.Index() != 0 {
		t.Fatalf("expected front face 0, got %d", face.Index())
	}

	pt := p.PickedPoint()
	if pt.Sub(mgl32.Vec3{0, 0, 0.5}).Len() > 1e-5 {
		t.Errorf("expected impact point (0,0,0.5), got %v", pt)
	}

	// Picking the same pixel again yields the same face.
	if again := p.PickFace(m, 200, 200); again != face {
		t.Errorf("repeated pick changed the face: %d vs %d", face.Index(), again.Index())
	}
}

func TestPickFaceMiss(t *testing.T) {
	m := surface.Cube()
	log, logs := observedLogger()
	p := picker.New(testCamera(), nil, log)

	if face := p.PickFace(m, 10, 10); face.IsValid() {
		t.Errorf("expected a miss outside the cube, got face %d", face.Index())
	}

	// Querying the cached state after a miss is reported but not fatal.
	if p.PickedFace().IsValid() {
		t.Error("expected invalid picked face after a miss")
	}
	if !hasMessage(logs, "no face has been picked") {
		t.Error("expected an error log for querying an empty pick")
	}
}

func TestPickFaceNilMesh(t *testing.T) {
	log, logs := observedLogger()
	p := picker.New(testCamera(), nil, log)

	if face := p.PickFace(nil, 200, 200); face.IsValid() {
		t.Error("expected invalid face for a nil mesh")
	}
	if !hasMessage(logs, "pick face: no mesh") {
		t.Error("expected an error log for a nil mesh")
	}
}

func TestPickVertex(t *testing.T) {
	m := surface.Cube()
	p := picker.New(testCamera(), nil, nil)

	// (290,110) is inside the front face, 10 pixels left of and below the
	// projection of corner (0.5,0.5,0.5) at (300,100). The screen distance
	// sqrt(200) = 14.14 is inside the default 15 pixel hit radius.
	face := p.PickFace(m, 290, 110)
	if face.Index() != 0 {
		t.Fatalf("expected face 0, got %d", face.Index())
	}

	v := p.PickVertex(m, face, 290, 110)
	if v.Index() != 6 {
		t.Fatalf("expected corner vertex 6, got %d", v.Index())
	}
	if got := m.Position(v); got != (mgl32.Vec3{0.5, 0.5, 0.5}) {
		t.Errorf("picked vertex at %v", got)
	}

	// The one-shot variant agrees.
	if v2 := p.PickVertexAt(m, 290, 110); v2 != v {
		t.Errorf("PickVertexAt disagrees: %d vs %d", v2.Index(), v.Index())
	}
}

func TestPickVertexHitResolutionStrict(t *testing.T) {
	// A single triangle whose corner A=(0.5,0.5,0) projects exactly to
	// (300,100). Picking at (292,106) puts the cursor exactly 10 pixels
	// away (a 6-8-10 triangle), probing the strict inequality.
	m, err := surface.New(
		[]mgl32.Vec3{{0.5, 0.5, 0}, {-0.5, 0.5, 0}, {-0.5, -0.5, 0}},
		[][]int{{0, 1, 2}},
	)
	if err != nil {
		t.Fatal(err)
	}
	p := picker.New(testCamera(), nil, nil)
	p.SetHitResolution(10)

	face := p.PickFace(m, 292, 106)
	if face.Index() != 0 {
		t.Fatalf("expected face 0, got %d", face.Index())
	}
	if v := p.PickVertex(m, face, 292, 106); v.IsValid() {
		t.Errorf("a candidate exactly at the hit radius must be rejected, got vertex %d", v.Index())
	}

	// One pixel closer the distance is sqrt(85) = 9.22 and the vertex hits.
	face = p.PickFace(m, 293, 106)
	if v := p.PickVertex(m, face, 293, 106); v.Index() != 0 {
		t.Errorf("expected corner vertex 0, got %d", v.Index())
	}
}

func TestPickVertexVersusEdgeAtFaceCenter(t *testing.T) {
	// From the center of the front face every corner is 141 pixels away but
	// the nearest edge is only 100. With the radius between the two, vertex
	// picking misses while edge picking hits.
	m := surface.Cube()
	p := picker.New(testCamera(), nil, nil)
	p.SetHitResolution(120)

	face := p.PickFace(m, 200, 200)
	if face.Index() != 0 {
		t.Fatalf("expected face 0, got %d", face.Index())
	}

	if v := p.PickVertex(m, face, 200, 200); v.IsValid() {
		t.Errorf("expected no vertex at 141px with a 120px radius, got %d", v.Index())
	}

	h := p.PickEdge(m, face, 200, 200)
	if !h.IsValid() {
		t.Fatal("expected an edge at 100px with a 120px radius")
	}
	// All four boundary edges are equidistant in 3D; the strict comparison
	// keeps the first one of the loop, the bottom edge from 4 to 5.
	if m.FromVertex(h).Index() != 4 || m.ToVertex(h).Index() != 5 {
		t.Errorf("expected halfedge 4->5, got %d->%d", m.FromVertex(h).Index(), m.ToVertex(h).Index())
	}

	// Below the edge distance everything misses.
	p.SetHitResolution(90)
	if h := p.PickEdge(m, face, 200, 200); h.IsValid() {
		t.Error("expected no edge at 100px with a 90px radius")
	}
}

func TestPickEdgeAt(t *testing.T) {
	m := surface.Cube()
	p := picker.New(testCamera(), nil, nil)

	// (200,105) is 5 pixels below the projection of the top edge of the
	// front face, inside the default radius.
	h := p.PickEdgeAt(m, 200, 105)
	if !h.IsValid() {
		t.Fatal("expected an edge near the top boundary")
	}
	ends := map[int]bool{m.FromVertex(h).Index(): true, m.ToVertex(h).Index(): true}
	if !ends[6] || !ends[7] {
		t.Errorf("expected the edge between vertices 6 and 7, got %d->%d",
			m.FromVertex(h).Index(), m.ToVertex(h).Index())
	}
}

func TestPickEdgeSkipsDegenerate(t *testing.T) {
	// The face repeats its first vertex, creating a zero-length boundary
	// edge. Picking exactly at that corner ties the degenerate edge with
	// the real ones at distance zero; the degenerate one must be skipped.
	m, err := surface.New(
		[]mgl32.Vec3{{-0.5, 0.5, 0}, {-0.5, -0.5, 0}, {0.5, -0.5, 0}},
		[][]int{{0, 0, 1, 2}},
	)
	if err != nil {
		t.Fatal(err)
	}
	p := picker.New(testCamera(), nil, nil)

	face := p.PickFace(m, 100, 100)
	if face.Index() != 0 {
		t.Fatalf("expected face 0, got %d", face.Index())
	}

	h := p.PickEdge(m, face, 100, 100)
	if !h.IsValid() {
		t.Fatal("expected a real edge at the corner")
	}
	if m.FromVertex(h) == m.ToVertex(h) {
		t.Error("picked the collapsed edge")
	}
}

func TestRefineRequiresPickedFace(t *testing.T) {
	m := surface.Cube()
	log, logs := observedLogger()
	p := picker.New(testCamera(), nil, log)

	face := p.PickFace(m, 200, 200)
	if face.Index() != 0 {
		t.Fatalf("expected face 0, got %d", face.Index())
	}

	// Any face other than the picked one is a usage error.
	other := picker.NewFace(3)
	if v := p.PickVertex(m, other, 200, 200); v.IsValid() {
		t.Errorf("expected invalid vertex for a mismatched face, got %d", v.Index())
	}
	if !hasMessage(logs, "pick vertex: provided face is not the picked face") {
		t.Error("expected an error log for the vertex face mismatch")
	}

	if h := p.PickEdge(m, other, 200, 200); h.IsValid() {
		t.Errorf("expected invalid edge for a mismatched face, got %d", h.Index())
	}
	if !hasMessage(logs, "pick edge: provided face is not the picked face") {
		t.Error("expected an error log for the edge face mismatch")
	}

	// The invalid handle never matches either.
	if v := p.PickVertex(m, picker.Face{}, 200, 200); v.IsValid() {
		t.Error("expected invalid vertex for the invalid face handle")
	}
}

func TestSetUseGPUWithoutBackend(t *testing.T) {
	p := picker.New(testCamera(), nil, nil)

	p.SetUseGPU(true)
	if p.UseGPU() {
		t.Error("GPU picking must stay off without a backend")
	}
}

func TestHitResolutionAccessors(t *testing.T) {
	p := picker.New(testCamera(), nil, nil)

	if p.HitResolution() != picker.DefaultHitResolution {
		t.Errorf("expected default hit resolution %v, got %v",
			float32(picker.DefaultHitResolution), p.HitResolution())
	}
	p.SetHitResolution(42)
	if p.HitResolution() != 42 {
		t.Errorf("expected 42, got %v", p.HitResolution())
	}
}
