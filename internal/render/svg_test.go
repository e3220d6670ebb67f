package render

import (
	"strings"
	"testing"
)

func TestCanvas_SVG(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)

	out := c.SVG(10, 0x00ff00, 0x000000)
	if !strings.HasPrefix(out, "<?xml") || !strings.HasSuffix(out, "</svg>") {
		t.Fatal("not an SVG document")
	}
	if n := strings.Count(out, "<circle"); n != 2 {
		t.Errorf("got %d dots, want 2", n)
	}
	if !strings.Contains(out, `width="40" height="40"`) {
		t.Error("unexpected document size")
	}
	if !strings.Contains(out, `cx="5.0" cy="5.0"`) || !strings.Contains(out, `cx="35.0" cy="35.0"`) {
		t.Errorf("dot positions wrong:\n%s", out)
	}
	if !strings.Contains(out, `fill="#00ff00"`) {
		t.Error("foreground color missing")
	}
}

func TestTerminalRenderer_SVG(t *testing.T) {
	s, cam, _ := testScene()
	r := NewTerminalRenderer()
	r.SetSize(40, 40)
	if err := r.Render(s, cam); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(r.SVG(2), "<circle"); n != r.Canvas().Lit() {
		t.Errorf("SVG has %d dots, canvas has %d", n, r.Canvas().Lit())
	}
}
