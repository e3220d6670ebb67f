package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/spincube/internal/render"
	"github.com/san-kum/spincube/internal/scene"
)

var colBg = rl.NewColor(10, 10, 10, 255)

// WindowRenderer draws each face of every mesh as two lit triangles inside
// a raylib 3D pass.
type WindowRenderer struct {
	width, height int
	ratio         float64
	ShowFPS       bool
}

func NewWindowRenderer() *WindowRenderer {
	return &WindowRenderer{ratio: 1, ShowFPS: true}
}

// SetPixelRatio is informational; raylib scales the framebuffer itself
// when the window is high-DPI.
func (r *WindowRenderer) SetPixelRatio(ratio float64) { r.ratio = ratio }

// SetSize records the size; the window itself is resized by the user.
func (r *WindowRenderer) SetSize(w, h int) { r.width, r.height = w, h }

func (r *WindowRenderer) Render(s *scene.Scene, cam *scene.PerspectiveCamera) error {
	if s == nil || cam == nil {
		return render.ErrNothingToRender
	}
	light := s.KeyLight()

	rl.BeginDrawing()
	rl.ClearBackground(colBg)
	setClipPlanes(cam)
	rl.BeginMode3D(camera3D(cam))
	for _, m := range s.Meshes() {
		v := m.WorldVertices()
		normals := m.WorldNormals()
		for i, f := range m.Geometry.Faces() {
			col := toColor(m.Material.Shade(normals[i], light))
			a, b, c, d := vec(v[f.Indices[0]]), vec(v[f.Indices[1]]), vec(v[f.Indices[2]]), vec(v[f.Indices[3]])
			rl.DrawTriangle3D(a, b, c, col)
			rl.DrawTriangle3D(a, c, d, col)
		}
	}
	rl.EndMode3D()
	if r.ShowFPS {
		rl.DrawFPS(10, 10)
	}
	rl.EndDrawing()
	return nil
}

// camera3D mirrors a scene camera. The scene camera looks down -Z.
func camera3D(c *scene.PerspectiveCamera) rl.Camera3D {
	return rl.Camera3D{
		Position:   vec(c.Position),
		Target:     vec(c.Position.Add(scene.Vec3{Z: -1})),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       float32(c.FOV),
		Projection: rl.CameraPerspective,
	}
}

// setClipPlanes applies the camera depth range; BeginMode3D reads it when
// building the projection.
func setClipPlanes(c *scene.PerspectiveCamera) {
	rl.SetClipPlanes(c.Near, c.Far)
}

func vec(v scene.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}

func toColor(c scene.Color) rl.Color {
	return rl.NewColor(uint8(c>>16), uint8(c>>8), uint8(c), 255)
}
