package scene

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in     string
		want   Color
		digits int
		err    bool
	}{
		{"0xffffff", White, 6, false},
		{"#044a88", 0x044a88, 6, false},
		{"0x44a88", 0x044a88, 5, false},
		{"ff0000", 0xff0000, 6, false},
		{"", 0, 0, true},
		{"0x", 0, 0, true},
		{"#1234567", 0, 7, true},
		{"zzz", 0, 3, true},
	}
	for _, tt := range tests {
		got, digits, err := ParseColor(tt.in)
		if (err != nil) != tt.err {
			t.Errorf("ParseColor(%q) err = %v, want err %v", tt.in, err, tt.err)
			continue
		}
		if digits != tt.digits {
			t.Errorf("ParseColor(%q) digits = %d, want %d", tt.in, digits, tt.digits)
		}
		if !tt.err && got != tt.want {
			t.Errorf("ParseColor(%q) = %06x, want %06x", tt.in, uint32(got), uint32(tt.want))
		}
	}
}

func TestColor_Channels(t *testing.T) {
	r, g, b := Color(0xff8000).RGB()
	if r != 1 || b != 0 {
		t.Errorf("RGB() = %v %v %v", r, g, b)
	}
	if got := RGB(r, g, b); got != 0xff8000 {
		t.Errorf("round trip = %06x", uint32(got))
	}
	if got := Color(0x044a88).Hex(); got != "#044a88" {
		t.Errorf("Hex() = %s", got)
	}
}

func TestColor_ScaleAndModulate(t *testing.T) {
	if got := White.Scale(0); got != 0 {
		t.Errorf("White.Scale(0) = %06x", uint32(got))
	}
	if got := Color(0x808080).Scale(10); got != White {
		t.Errorf("Scale should clamp, got %06x", uint32(got))
	}
	if got := Color(0x44a88).Modulate(White); got != 0x44a88 {
		t.Errorf("Modulate(White) = %06x", uint32(got))
	}
}
