package driver

import (
	"errors"
	"fmt"
)

// Domain errors for driver operations.
var (
	// ErrNilSurface indicates Initialize was given no surface.
	ErrNilSurface = errors.New("driver: surface is nil")

	// ErrAlreadyInitialized indicates a second Initialize call.
	ErrAlreadyInitialized = errors.New("driver: already initialized")

	// ErrInvalidSurface indicates a surface with a non-positive dimension.
	// The aspect ratio would not be finite.
	ErrInvalidSurface = errors.New("driver: invalid surface dimensions")

	// ErrRenderer indicates the renderer failed to draw a frame.
	ErrRenderer = errors.New("driver: renderer failed")
)

// SurfaceError carries the dimensions that were rejected.
type SurfaceError struct {
	Width, Height int
}

func (e *SurfaceError) Error() string {
	return fmt.Sprintf("%s: %dx%d", ErrInvalidSurface, e.Width, e.Height)
}

func (e *SurfaceError) Unwrap() error { return ErrInvalidSurface }

// FrameError wraps a renderer failure with the frame it happened on.
type FrameError struct {
	Frame     uint64
	Timestamp float64
	Wrapped   error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("%s: frame %d (t=%.0fms): %v", ErrRenderer, e.Frame, e.Timestamp, e.Wrapped)
}

func (e *FrameError) Unwrap() []error { return []error{ErrRenderer, e.Wrapped} }
