package engine

import (
	"errors"

	"spincube/internal/render"
)

// ErrSurfaceClosed is returned by a Surface whose window has gone away.
var ErrSurfaceClosed = errors.New("engine: surface closed")

// DrawTarget is one frame handed out by a Surface. Dispose ends drawing;
// the frame is shown on the following Present.
type DrawTarget interface {
	render.Canvas
	Dispose()
}

// Surface owns the pixel buffers and their presentation.
type Surface interface {
	AcquireDrawTarget() (DrawTarget, error)
	Present() error
}
