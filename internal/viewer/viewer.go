// Package viewer implements the interactive mesh viewer: an orbiting camera
// over a single surface mesh, with mouse picking of faces, vertices and
// edges.
package viewer

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/tessellab/meshpick/internal/config"
	"github.com/tessellab/meshpick/internal/render"
	"github.com/tessellab/meshpick/internal/window"
	"github.com/tessellab/meshpick/pkg/camera"
	"github.com/tessellab/meshpick/pkg/picker"
	"github.com/tessellab/meshpick/pkg/surface"
)

var background = [4]float32{0.12, 0.12, 0.14, 1}

// Viewer owns the window, the GL resources and the picking state.
type Viewer struct {
	cfg *config.Config
	log *zap.Logger

	win     *window.Window
	backend *render.Backend
	mesh    *surface.Mesh
	cam     *camera.Camera
	orbit   *camera.Orbit
	pick    *picker.Picker

	running  bool
	dragging bool
}

// New creates the window and GL context, loads the mesh and wires up the
// picker.
func New(cfg *config.Config, log *zap.Logger) (*Viewer, error) {
	v := &Viewer{cfg: cfg, log: log}

	var err error
	v.win, err = window.New(window.Config{
		Title:  "meshpick",
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
		VSync:  cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	// GL function pointers need the context the window just made current.
	if err := render.Init(); err != nil {
		v.win.Close()
		return nil, err
	}

	if cfg.Viewer.MeshPath != "" {
		v.mesh, err = surface.LoadOBJ(cfg.Viewer.MeshPath)
		if err != nil {
			v.win.Close()
			return nil, fmt.Errorf("loading mesh: %w", err)
		}
		log.Info("mesh loaded",
			zap.String("path", cfg.Viewer.MeshPath),
			zap.Int("vertices", v.mesh.VertexCount()),
			zap.Int("faces", v.mesh.FaceCount()))
	} else {
		v.mesh = surface.Cube()
		log.Info("no mesh path configured, showing the unit cube")
	}

	w, h := v.win.Size()
	v.cam = camera.NewPerspective(cfg.Viewer.FOV, w, h, 0.01, 1000)
	v.orbit = camera.NewOrbit()
	v.orbit.FitToBounds(v.mesh.Bounds())
	v.orbit.Apply(v.cam)

	v.backend = render.NewBackend()
	v.pick = picker.New(v.cam, v.backend, log)
	v.pick.SetHitResolution(cfg.Picking.HitResolution)
	v.pick.SetUseGPU(cfg.Picking.UseGPU)

	return v, nil
}

// Run drives the event loop until the window closes.
func (v *Viewer) Run() error {
	v.running = true
	for v.running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			v.handleEvent(event)
		}
		if err := v.draw(); err != nil {
			return err
		}
		v.win.SwapBuffers()
	}
	return nil
}

func (v *Viewer) handleEvent(event sdl.Event) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		v.running = false

	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
			v.running = false
		}

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED {
			v.cam.Resize(int(e.Data1), int(e.Data2))
			render.SetViewport(int(e.Data1), int(e.Data2))
		}

	case *sdl.MouseButtonEvent:
		switch {
		case e.Type == sdl.MOUSEBUTTONDOWN && e.Button == sdl.BUTTON_LEFT:
			v.pickAt(int(e.X), int(e.Y))
		case e.Type == sdl.MOUSEBUTTONDOWN && e.Button == sdl.BUTTON_RIGHT:
			v.dragging = true
		case e.Type == sdl.MOUSEBUTTONUP && e.Button == sdl.BUTTON_RIGHT:
			v.dragging = false
		}

	case *sdl.MouseMotionEvent:
		if v.dragging {
			v.orbit.HandleDrag(float32(e.XRel), float32(e.YRel))
			v.orbit.Apply(v.cam)
		}

	case *sdl.MouseWheelEvent:
		v.orbit.HandleZoom(float32(e.Y))
		v.orbit.Apply(v.cam)
	}
}

// pickAt resolves the element under the cursor. Shift refines to a vertex,
// ctrl to an edge, a plain click reports the face.
func (v *Viewer) pickAt(x, y int) {
	mod := sdl.GetModState()
	switch {
	case mod&sdl.KMOD_SHIFT != 0:
		vert := v.pick.PickVertexAt(v.mesh, x, y)
		if vert.IsValid() {
			v.log.Info("picked vertex",
				zap.Int("vertex", vert.Index()),
				zap.Any("position", v.mesh.Position(vert)))
		} else {
			v.log.Info("no vertex within the hit radius")
		}

	case mod&sdl.KMOD_CTRL != 0:
		h := v.pick.PickEdgeAt(v.mesh, x, y)
		if h.IsValid() {
			v.log.Info("picked edge",
				zap.Int("from", v.mesh.FromVertex(h).Index()),
				zap.Int("to", v.mesh.ToVertex(h).Index()))
		} else {
			v.log.Info("no edge within the hit radius")
		}

	default:
		face := v.pick.PickFace(v.mesh, x, y)
		if face.IsValid() {
			v.log.Info("picked face",
				zap.Int("face", face.Index()),
				zap.Any("point", v.pick.PickedPoint()),
				zap.Bool("gpu", v.pick.UseGPU()))
		} else {
			v.log.Info("nothing under the cursor")
		}
	}
}

func (v *Viewer) draw() error {
	program, err := v.backend.ShadingProgram()
	if err != nil {
		return err
	}
	drawable, err := v.backend.FacesDrawable(v.mesh)
	if err != nil {
		return err
	}

	v.backend.SetClearColor(background)
	v.backend.Clear()

	program.Bind()
	program.SetUniformMat4("MVP", v.cam.ViewProjection())
	drawable.Draw()
	program.Release()

	return nil
}

// Close releases the GL resources and the window.
func (v *Viewer) Close() {
	if v.backend != nil {
		v.backend.Destroy()
	}
	if v.win != nil {
		v.win.Close()
	}
}
