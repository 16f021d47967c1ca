// Package picker resolves screen-space cursor positions to surface-mesh
// elements. A Picker answers "which face is under the cursor" with either a
// GPU color-coded offscreen render or a parallel CPU ray test, then refines
// the hit to the nearest vertex or edge of that face within a configurable
// screen-space hit radius.
//
// A Picker instance must be used from one logical thread of control at a
// time: the cached picked state and the shared offscreen render target are
// mutated in place on every call.
package picker

import (
	"go.uber.org/zap"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultHitResolution is the default screen-space threshold, in pixels,
// below which a vertex or edge candidate counts as hit.
const DefaultHitResolution = 15

// Picker picks faces, vertices and edges of a surface mesh under a cursor.
type Picker struct {
	camera  Camera
	backend Backend
	log     *zap.Logger

	hitResolution float32
	useGPU        bool
	gpuFailed     bool // shader setup failed once; never retried
	program       Program

	pickedFace  Face
	pickedPoint mgl32.Vec3
}

// New returns a picker for the given camera. backend may be nil, in which
// case only the CPU strategy is available. log may be nil.
func New(camera Camera, backend Backend, log *zap.Logger) *Picker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Picker{
		camera:        camera,
		backend:       backend,
		log:           log,
		hitResolution: DefaultHitResolution,
		useGPU:        backend != nil,
	}
}

// HitResolution returns the screen-space hit threshold in pixels.
func (p *Picker) HitResolution() float32 { return p.hitResolution }

// SetHitResolution sets the screen-space hit threshold in pixels.
// Acceptance is strict: a candidate exactly at the threshold is rejected.
func (p *Picker) SetHitResolution(pixels float32) { p.hitResolution = pixels }

// UseGPU reports whether the GPU strategy is currently active.
func (p *Picker) UseGPU() bool { return p.useGPU }

// SetUseGPU toggles the GPU strategy. It has no effect on a picker
// constructed without a backend, or on one that has been permanently
// downgraded after a shader compilation failure.
func (p *Picker) SetUseGPU(enabled bool) {
	if enabled && (p.backend == nil || p.gpuFailed) {
		return
	}
	p.useGPU = enabled
}

// PickFace returns the face of m under the screen point (x, y), or the
// invalid handle when nothing is hit. The picked face and the 3D point of
// impact are cached and consumed by subsequent PickVertex/PickEdge calls.
func (p *Picker) PickFace(m Mesh, x, y int) Face {
	if m == nil {
		p.log.Error("pick face: no mesh")
		p.pickedFace = Face{}
		return Face{}
	}

	if p.useGPU && p.program == nil {
		prog, err := p.backend.SelectionProgram()
		if err != nil {
			p.log.Error("compiling selection program failed, falling back to CPU picking",
				zap.Error(err))
			p.useGPU = false
			p.gpuFailed = true
		} else {
			p.program = prog
		}
	}

	if p.useGPU {
		return p.pickFaceGPU(m, x, y)
	}
	return p.pickFaceCPU(m, x, y)
}

// PickedFace returns the face picked by the last PickFace call. An error is
// logged when no face is currently picked; callers must still check the
// returned handle's validity.
func (p *Picker) PickedFace() Face {
	if !p.pickedFace.IsValid() {
		p.log.Error("no face has been picked")
	}
	return p.pickedFace
}

// PickedPoint returns the 3D point of impact of the last PickFace call. An
// error is logged when no face is currently picked; the stale value is
// returned anyway.
func (p *Picker) PickedPoint() mgl32.Vec3 {
	if !p.pickedFace.IsValid() {
		p.log.Error("no face has been picked")
	}
	return p.pickedPoint
}
