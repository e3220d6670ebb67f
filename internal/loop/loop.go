// Package loop provides a cooperative frame scheduler: callers request the
// next frame, and a host tick runs it with the milliseconds elapsed since
// the first frame.
package loop

import (
	"context"
	"sync"
	"time"

	"github.com/san-kum/spincube/internal/logging"
)

// FrameFunc receives milliseconds elapsed since the loop's first frame.
type FrameFunc func(timestamp float64)

// Loop holds at most one pending frame callback.
type Loop struct {
	mu        sync.Mutex
	pending   FrameFunc
	start     time.Time
	started   bool
	cancelled bool
	frames    uint64
}

func New() *Loop { return &Loop{} }

// RequestFrame arms fn for the next tick. A callback that is already
// pending is replaced. Requests after Cancel are dropped.
func (l *Loop) RequestFrame(fn func(timestamp float64)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancelled || fn == nil {
		return
	}
	if l.pending != nil {
		logging.Logger().Debug("loop: replacing pending frame", "frame", l.frames)
	}
	l.pending = fn
}

// Cancel drops the pending callback and ignores later requests.
func (l *Loop) Cancel() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cancelled = true
	l.pending = nil
}

// Tick runs the pending callback, if any, with the time elapsed since the
// first tick. The first tick reports 0. It returns whether a callback ran.
func (l *Loop) Tick(now time.Time) bool {
	l.mu.Lock()
	if !l.started {
		l.start, l.started = now, true
	}
	ms := float64(now.Sub(l.start)) / float64(time.Millisecond)
	l.mu.Unlock()
	return l.TickAt(ms)
}

// TickAt runs the pending callback with an explicit timestamp.
func (l *Loop) TickAt(ms float64) bool {
	l.mu.Lock()
	fn := l.pending
	l.pending = nil
	if fn != nil {
		l.frames++
	}
	l.mu.Unlock()

	// The callback usually re-arms the loop, so it runs unlocked.
	if fn == nil {
		return false
	}
	fn(ms)
	return true
}

// Run ticks every interval until the loop is cancelled with nothing
// pending, or ctx is done. On ctx cancellation the loop is cancelled and
// ctx.Err() returned.
func (l *Loop) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		if l.Cancelled() && !l.Pending() {
			return nil
		}
		select {
		case <-ctx.Done():
			l.Cancel()
			return ctx.Err()
		case now := <-ticker.C:
			l.Tick(now)
		}
	}
}

func (l *Loop) Pending() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pending != nil
}

func (l *Loop) Cancelled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cancelled
}

// Frames counts callbacks that have run.
func (l *Loop) Frames() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.frames
}
