package surface

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/tessellab/meshpick/pkg/picker"
)

func TestNewValidation(t *testing.T) {
	positions := []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}

	if _, err := New(positions, [][]int{{0, 1}}); err == nil {
		t.Error("expected error for a face with 2 vertices")
	}
	if _, err := New(positions, [][]int{{0, 1, 3}}); err == nil {
		t.Error("expected error for an out-of-range vertex index")
	}
	if _, err := New(positions, [][]int{{0, 1, -1}}); err == nil {
		t.Error("expected error for a negative vertex index")
	}
	if _, err := New(positions, [][]int{{0, 1, 2}}); err != nil {
		t.Errorf("unexpected error for a valid triangle: %v", err)
	}
}

func TestCubeCounts(t *testing.T) {
	m := Cube()

	if m.VertexCount() != 8 {
		t.Errorf("expected 8 vertices, got %d", m.VertexCount())
	}
	if m.FaceCount() != 6 {
		t.Errorf("expected 6 faces, got %d", m.FaceCount())
	}
	for i := 0; i < m.FaceCount(); i++ {
		if n := len(m.FaceHalfedges(picker.NewFace(i))); n != 4 {
			t.Errorf("face %d: expected 4 boundary halfedges, got %d", i, n)
		}
	}
}

func TestFaceLoops(t *testing.T) {
	m := Cube()

	// Each face's boundary halfedges must chain: the destination of one is
	// the origin of the next.
	for i := 0; i < m.FaceCount(); i++ {
		hs := m.FaceHalfedges(picker.NewFace(i))
		for j, h := range hs {
			next := hs[(j+1)%len(hs)]
			if m.ToVertex(h) != m.FromVertex(next) {
				t.Errorf("face %d: halfedge %d does not chain to its successor", i, j)
			}
		}
	}
}

func TestCubeNormals(t *testing.T) {
	m := Cube()

	want := []mgl32.Vec3{
		{0, 0, 1},  // front
		{0, 0, -1}, // back
		{-1, 0, 0}, // left
		{1, 0, 0},  // right
		{0, 1, 0},  // top
		{0, -1, 0}, // bottom
	}
	for i, w := range want {
		n := m.FaceNormal(picker.NewFace(i))
		if n.Sub(w).Len() > 1e-6 {
			t.Errorf("face %d: expected normal %v, got %v", i, w, n)
		}
	}
}

func TestTriangleRangesPartition(t *testing.T) {
	// Mixed polygon sizes: ranges must cover the triangle index space in
	// face order with no gaps or overlaps.
	positions := []mgl32.Vec3{
		{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {2, 1, 0}, {1, 1, 0}, {0, 1, 0},
	}
	faces := [][]int{
		{0, 1, 4, 5},       // quad: 2 triangles
		{1, 2, 3},          // triangle: 1
		{0, 1, 2, 3, 4, 5}, // hexagon: 4
	}
	m, err := New(positions, faces)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ranges := m.TriangleRanges()
	if len(ranges) != 3 {
		t.Fatalf("expected 3 ranges, got %d", len(ranges))
	}

	want := []picker.TriangleRange{
		{First: 0, Last: 1},
		{First: 2, Last: 2},
		{First: 3, Last: 6},
	}
	for i, w := range want {
		if ranges[i] != w {
			t.Errorf("face %d: expected range %v, got %v", i, w, ranges[i])
		}
	}

	// A k-gon fans into k-2 triangles, so the drawable triangle count must
	// equal the end of the last range.
	tris := picker.FanTriangles(m)
	if len(tris) != 3*(want[2].Last+1) {
		t.Errorf("expected %d fan vertices, got %d", 3*(want[2].Last+1), len(tris))
	}
}

func TestBounds(t *testing.T) {
	m := Cube()
	min, max := m.Bounds()

	wantMin := mgl32.Vec3{-0.5, -0.5, -0.5}
	wantMax := mgl32.Vec3{0.5, 0.5, 0.5}
	if min != wantMin {
		t.Errorf("expected min %v, got %v", wantMin, min)
	}
	if max != wantMax {
		t.Errorf("expected max %v, got %v", wantMax, max)
	}
}

func TestNewellNormalDegenerate(t *testing.T) {
	// Collinear loop has no area; the normal stays the zero vector instead
	// of producing NaNs.
	n := newellNormal([]mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}})
	if n != (mgl32.Vec3{}) {
		t.Errorf("expected zero normal for a degenerate loop, got %v", n)
	}
}
