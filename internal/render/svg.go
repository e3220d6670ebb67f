package render

import (
	"fmt"
	"strings"

	"github.com/san-kum/spincube/internal/scene"
)

// SVG draws every lit dot of the canvas as a circle. scale is the size of
// one dot in SVG units.
func (c *Canvas) SVG(scale float64, fg, bg scene.Color) string {
	w := float64(c.Width) * scale * 2
	h := float64(c.Height) * scale * 4

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s">
`, w, h, w, h, bg.Hex(), fg.Hex())

	r := scale * 0.4
	for y := 0; y < c.Height*4; y++ {
		for x := 0; x < c.Width*2; x++ {
			if c.IsSet(x, y) {
				fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n",
					float64(x)*scale+scale/2, float64(y)*scale+scale/2, r)
			}
		}
	}
	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// SVG snapshots the last terminal frame in the lit material color.
func (r *TerminalRenderer) SVG(scale float64) string {
	return r.canvas.SVG(scale, r.tint, 0x0a0a0a)
}
