package render

import (
	"errors"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
)

var ErrNoFrames = errors.New("render: no frames recorded")

// Recorder accumulates frames for an animated GIF.
type Recorder struct {
	frames []*image.Paletted
	// Delay between frames in hundredths of a second.
	Delay int
}

// NewRecorder returns a recorder whose frame delay matches fps.
func NewRecorder(fps int) *Recorder {
	delay := 2
	if fps > 0 {
		delay = max(1, 100/fps)
	}
	return &Recorder{Delay: delay}
}

// Capture copies img into a Plan 9 palette frame.
func (r *Recorder) Capture(img image.Image) {
	b := img.Bounds()
	p := image.NewPaletted(b, palette.Plan9)
	draw.FloydSteinberg.Draw(p, b, img, b.Min)
	r.frames = append(r.frames, p)
}

func (r *Recorder) Len() int { return len(r.frames) }

// Encode writes every captured frame as a looping GIF.
func (r *Recorder) Encode(w io.Writer) error {
	if len(r.frames) == 0 {
		return ErrNoFrames
	}
	anim := gif.GIF{LoopCount: 0}
	for _, f := range r.frames {
		anim.Image = append(anim.Image, f)
		anim.Delay = append(anim.Delay, r.Delay)
	}
	return gif.EncodeAll(w, &anim)
}
