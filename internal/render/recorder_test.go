package render

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"testing"
)

func TestRecorder(t *testing.T) {
	rec := NewRecorder(50)
	if rec.Delay != 2 {
		t.Errorf("Delay = %d, want 2", rec.Delay)
	}
	if err := rec.Encode(&bytes.Buffer{}); !errors.Is(err, ErrNoFrames) {
		t.Errorf("empty Encode = %v, want ErrNoFrames", err)
	}

	for i := 0; i < 3; i++ {
		img := image.NewRGBA(image.Rect(0, 0, 8, 8))
		img.Set(i, i, color.White)
		rec.Capture(img)
	}
	if rec.Len() != 3 {
		t.Errorf("Len() = %d, want 3", rec.Len())
	}

	var buf bytes.Buffer
	if err := rec.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	anim, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(anim.Image) != 3 {
		t.Errorf("decoded %d frames, want 3", len(anim.Image))
	}
}

func TestNewRecorder_Delay(t *testing.T) {
	tests := []struct{ fps, delay int }{{0, 2}, {60, 1}, {200, 1}, {10, 10}}
	for _, tt := range tests {
		if got := NewRecorder(tt.fps).Delay; got != tt.delay {
			t.Errorf("NewRecorder(%d).Delay = %d, want %d", tt.fps, got, tt.delay)
		}
	}
}
