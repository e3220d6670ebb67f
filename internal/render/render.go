package render

import (
	"errors"
	"math"

	"github.com/san-kum/spincube/internal/scene"
)

// ErrNothingToRender is returned when Render is called without a scene or
// camera.
var ErrNothingToRender = errors.New("render: nothing to render (nil scene or camera)")

// Surface is the rectangular region frames are drawn into. It is owned by
// the host; renderers only read it.
type Surface interface {
	Width() int
	Height() int
}

// Renderer draws a scene through a camera into an output buffer whose size
// tracks the surface.
type Renderer interface {
	SetPixelRatio(ratio float64)
	SetSize(width, height int)
	Render(s *scene.Scene, cam *scene.PerspectiveCamera) error
}

// Size is a Surface with settable dimensions.
type Size struct {
	W, H int
}

func (s *Size) Width() int  { return s.W }
func (s *Size) Height() int { return s.H }

func (s *Size) Set(w, h int) {
	s.W, s.H = w, h
}

// screenPoint maps normalized device coordinates to a w x h pixel grid with
// the origin at the top left.
func screenPoint(ndc scene.Vec3, w, h int) (float64, float64) {
	return (ndc.X + 1) / 2 * float64(w), (1 - ndc.Y) / 2 * float64(h)
}

// projectedFace is one front-facing quad ready for drawing.
type projectedFace struct {
	pts   [4][2]float64
	depth float64
	color scene.Color
}

// projectMesh returns the faces of m that face the camera, in screen space.
// Faces with any corner outside the depth range are dropped.
func projectMesh(m *scene.Mesh, cam *scene.PerspectiveCamera, light *scene.DirectionalLight, w, h int) []projectedFace {
	verts := m.WorldVertices()
	normals := m.WorldNormals()
	faces := m.Geometry.Faces()

	var screen [8][2]float64
	var visible [8]bool
	for i, v := range verts {
		ndc, ok := cam.Project(v)
		visible[i] = ok
		screen[i][0], screen[i][1] = screenPoint(ndc, w, h)
	}

	out := make([]projectedFace, 0, 3)
	for fi, f := range faces {
		// Back-face test against the ray from the camera to the face center.
		var center scene.Vec3
		ok := true
		for _, idx := range f.Indices {
			center = center.Add(verts[idx])
			ok = ok && visible[idx]
		}
		if !ok {
			continue
		}
		center = center.Scale(0.25)
		if normals[fi].Dot(center.Sub(cam.Position)) >= 0 {
			continue
		}
		pf := projectedFace{
			depth: cam.ViewSpace(center).Length(),
			color: m.Material.Shade(normals[fi], light),
		}
		for k, idx := range f.Indices {
			pf.pts[k] = screen[idx]
		}
		out = append(out, pf)
	}
	return out
}

func round(v float64) int { return int(math.Round(v)) }
