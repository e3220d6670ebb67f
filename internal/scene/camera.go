package scene

import "math"

// PerspectiveCamera projects with a vertical field of view. It looks down
// the negative Z axis from Position.
//
// Changing FOV, Aspect, Near or Far has no effect on projection until
// UpdateProjectionMatrix is called.
type PerspectiveCamera struct {
	FOV      float64 // vertical, degrees
	Aspect   float64
	Near     float64
	Far      float64
	Position Vec3

	projection Mat4
}

func NewPerspectiveCamera(fov, aspect, near, far float64) *PerspectiveCamera {
	c := &PerspectiveCamera{FOV: fov, Aspect: aspect, Near: near, Far: far}
	c.UpdateProjectionMatrix()
	return c
}

// UpdateProjectionMatrix rebuilds the cached projection from the current
// field of view, aspect and depth range.
func (c *PerspectiveCamera) UpdateProjectionMatrix() {
	f := 1 / math.Tan(c.FOV*math.Pi/360)
	nf := 1 / (c.Near - c.Far)
	c.projection = Mat4{
		f / c.Aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (c.Far + c.Near) * nf, -1,
		0, 0, 2 * c.Far * c.Near * nf, 0,
	}
}

func (c *PerspectiveCamera) ProjectionMatrix() Mat4 { return c.projection }

// ViewSpace moves a world point into camera space.
func (c *PerspectiveCamera) ViewSpace(p Vec3) Vec3 { return p.Sub(c.Position) }

// Project maps a world point to normalized device coordinates. ok is false
// when the point lies outside the near/far range.
func (c *PerspectiveCamera) Project(p Vec3) (ndc Vec3, ok bool) {
	x, y, z, w := c.projection.MulPoint(c.ViewSpace(p))
	if w <= 0 {
		return Vec3{}, false
	}
	ndc = Vec3{x / w, y / w, z / w}
	return ndc, ndc.Z >= -1 && ndc.Z <= 1
}
