package render

import (
	"context"
	"errors"
)

// ErrSurfaceUnavailable reports that the host cannot provide a drawing surface.
var ErrSurfaceUnavailable = errors.New("render surface unavailable")

// Surface is the drawing backend of one gallery instance.
type Surface interface {
	// Resize sets the surface size in pixels.
	Resize(width, height int)
	// Render draws one frame.
	Render(frame *Frame)
	// Release frees the surface. Nothing is drawn afterwards.
	Release()
}

// Provider yields a surface once the host backend is ready. It may block until ctx is done.
type Provider func(ctx context.Context) (Surface, error)

// Static returns a Provider for a surface that already exists.
func Static(s Surface) Provider {
	return func(context.Context) (Surface, error) {
		if s == nil {
			return nil, ErrSurfaceUnavailable
		}
		return s, nil
	}
}

// Await returns a Provider that waits for the host to deliver a surface on ready.
// A closed channel or a nil surface means the host has no rendering capability.
func Await(ready <-chan Surface) Provider {
	return func(ctx context.Context) (Surface, error) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case s, ok := <-ready:
			if !ok || s == nil {
				return nil, ErrSurfaceUnavailable
			}
			return s, nil
		}
	}
}
