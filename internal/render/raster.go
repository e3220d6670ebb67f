package render

import (
	"fmt"
	"image"
	"io"
	"math"
	"sort"

	"github.com/gogpu/gg"
	"github.com/san-kum/spincube/internal/logging"
	"github.com/san-kum/spincube/internal/scene"
)

// RasterRenderer fills each visible face with Lambert shading on a gg
// context. Faces are painted far to near.
type RasterRenderer struct {
	ctx        *gg.Context
	ratio      float64
	width      int
	height     int
	sizeErr    error
	Background scene.Color
	// Antialias strokes face edges to soften the silhouette.
	Antialias bool
}

func NewRasterRenderer(antialias bool) *RasterRenderer {
	return &RasterRenderer{ctx: gg.NewContext(1, 1), ratio: 1, width: 1, height: 1, Antialias: antialias}
}

func (r *RasterRenderer) SetPixelRatio(ratio float64) {
	if ratio > 0 {
		r.ratio = ratio
	}
}

// SetSize resizes the backing store to the CSS-style size times the pixel
// ratio. If the context rejects the size the old store is kept and Render
// fails until a later SetSize succeeds.
func (r *RasterRenderer) SetSize(w, h int) {
	bw, bh := int(math.Round(float64(w)*r.ratio)), int(math.Round(float64(h)*r.ratio))
	if err := r.ctx.Resize(bw, bh); err != nil {
		r.sizeErr = fmt.Errorf("render: resize to %dx%d: %w", bw, bh, err)
		logging.Logger().Warn("render: resize rejected", "width", bw, "height", bh, "kept", fmt.Sprintf("%dx%d", r.width, r.height), "err", err)
		return
	}
	r.width, r.height = bw, bh
	r.sizeErr = nil
}

// Size returns the backing store size in device pixels.
func (r *RasterRenderer) Size() (int, int) { return r.width, r.height }

func (r *RasterRenderer) Render(s *scene.Scene, cam *scene.PerspectiveCamera) error {
	if s == nil || cam == nil {
		return ErrNothingToRender
	}
	if r.sizeErr != nil {
		return r.sizeErr
	}
	r.ctx.ClearWithColor(toRGBA(r.Background))

	light := s.KeyLight()
	var faces []projectedFace
	for _, m := range s.Meshes() {
		faces = append(faces, projectMesh(m, cam, light, r.width, r.height)...)
	}
	sort.Slice(faces, func(i, j int) bool { return faces[i].depth > faces[j].depth })

	r.ctx.SetLineWidth(r.ratio)
	for _, f := range faces {
		r.ctx.MoveTo(f.pts[0][0], f.pts[0][1])
		for _, p := range f.pts[1:] {
			r.ctx.LineTo(p[0], p[1])
		}
		r.ctx.ClosePath()
		r.ctx.SetColor(toRGBA(f.color).Color())
		if r.Antialias {
			if err := r.ctx.FillPreserve(); err != nil {
				return err
			}
			if err := r.ctx.Stroke(); err != nil {
				return err
			}
			continue
		}
		if err := r.ctx.Fill(); err != nil {
			return err
		}
	}
	return nil
}

func (r *RasterRenderer) Image() image.Image { return r.ctx.Image() }

func (r *RasterRenderer) EncodePNG(w io.Writer) error { return r.ctx.EncodePNG(w) }

func (r *RasterRenderer) Close() error { return r.ctx.Close() }

func toRGBA(c scene.Color) gg.RGBA {
	red, green, blue := c.RGB()
	return gg.RGB(red, green, blue)
}
