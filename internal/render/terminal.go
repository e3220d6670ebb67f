package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/spincube/internal/scene"
)

// TerminalRenderer draws meshes as wireframes with hidden lines removed.
// Its size is measured in Braille dots, so a surface of W x H dots maps to
// ceil(W/2) x ceil(H/4) terminal cells.
type TerminalRenderer struct {
	canvas *Canvas
	dotsW  int
	dotsH  int
	ratio  float64
	tint   scene.Color
}

func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{canvas: NewCanvas(0, 0), ratio: 1, tint: scene.White}
}

// SetPixelRatio is recorded for reporting only; a Braille cell always holds
// 2x4 dots.
func (r *TerminalRenderer) SetPixelRatio(ratio float64) {
	if ratio > 0 {
		r.ratio = ratio
	}
}

func (r *TerminalRenderer) PixelRatio() float64 { return r.ratio }

func (r *TerminalRenderer) SetSize(w, h int) {
	if w == r.dotsW && h == r.dotsH {
		return
	}
	r.dotsW, r.dotsH = w, h
	r.canvas.Resize((w+1)/2, (h+3)/4)
}

// Size returns the output size in dots.
func (r *TerminalRenderer) Size() (int, int) { return r.dotsW, r.dotsH }

func (r *TerminalRenderer) Canvas() *Canvas { return r.canvas }

func (r *TerminalRenderer) Render(s *scene.Scene, cam *scene.PerspectiveCamera) error {
	if s == nil || cam == nil {
		return ErrNothingToRender
	}
	r.canvas.Clear()
	light := s.KeyLight()
	for _, m := range s.Meshes() {
		for _, f := range projectMesh(m, cam, light, r.dotsW, r.dotsH) {
			for k := 0; k < 4; k++ {
				a, b := f.pts[k], f.pts[(k+1)%4]
				r.canvas.DrawLine(round(a[0]), round(a[1]), round(b[0]), round(b[1]))
			}
		}
		r.tint = m.Material.Color
		if light != nil {
			r.tint = r.tint.Modulate(light.Color).Scale(min(light.Intensity, 1))
		}
	}
	return nil
}

// View returns the last frame colored with the lit material color.
func (r *TerminalRenderer) View() string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(r.tint.Hex())).Render(r.canvas.String())
}
