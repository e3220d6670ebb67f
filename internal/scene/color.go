package scene

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a 24-bit 0xRRGGBB value.
type Color uint32

const White Color = 0xffffff

// RGB returns the channels scaled to [0, 1].
func (c Color) RGB() (r, g, b float64) {
	return float64(c>>16&0xff) / 255, float64(c>>8&0xff) / 255, float64(c&0xff) / 255
}

// Hex formats the color as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xffffff)
}

// Scale multiplies every channel by f, clamping to [0, 255].
func (c Color) Scale(f float64) Color {
	r, g, b := c.RGB()
	return RGB(r*f, g*f, b*f)
}

// Modulate multiplies two colors channel by channel.
func (c Color) Modulate(o Color) Color {
	r1, g1, b1 := c.RGB()
	r2, g2, b2 := o.RGB()
	return RGB(r1*r2, g1*g2, b1*b2)
}

// RGB builds a color from [0, 1] channels.
func RGB(r, g, b float64) Color {
	return Color(channel(r)<<16 | channel(g)<<8 | channel(b))
}

func channel(v float64) uint32 {
	v = v*255 + 0.5
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint32(v)
}

// ParseColor reads a hex color written as "0x44a88", "#044a88" or "044a88".
// The value is taken literally: a literal with fewer than six digits is
// zero-extended on the left, exactly as a numeric literal would be. It also
// returns the number of hex digits so callers can flag short literals.
func ParseColor(s string) (Color, int, error) {
	digits := strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(digits, "#"):
		digits = digits[1:]
	case strings.HasPrefix(digits, "0x"), strings.HasPrefix(digits, "0X"):
		digits = digits[2:]
	}
	if digits == "" || len(digits) > 6 {
		return 0, len(digits), fmt.Errorf("scene: invalid color %q", s)
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, len(digits), fmt.Errorf("scene: invalid color %q: %w", s, err)
	}
	return Color(v), len(digits), nil
}
