package driver_test

import (
	"github.com/san-kum/spincube/internal/scene"
)

type fakeRenderer struct {
	ratio    float64
	sizes    [][2]int
	renders  int
	failWith error
}

func (r *fakeRenderer) SetPixelRatio(ratio float64) { r.ratio = ratio }
func (r *fakeRenderer) SetSize(w, h int)            { r.sizes = append(r.sizes, [2]int{w, h}) }

func (r *fakeRenderer) Render(*scene.Scene, *scene.PerspectiveCamera) error {
	r.renders++
	return r.failWith
}

// fakeScheduler records every request without running it.
type fakeScheduler struct {
	requests  int
	pending   func(float64)
	cancelled bool
}

func (s *fakeScheduler) RequestFrame(fn func(float64)) {
	s.requests++
	s.pending = fn
}

func (s *fakeScheduler) Cancel() {
	s.cancelled = true
	s.pending = nil
}

// fire runs the pending frame, as a host refresh would.
func (s *fakeScheduler) fire(ts float64) {
	fn := s.pending
	s.pending = nil
	if fn != nil {
		fn(ts)
	}
}
