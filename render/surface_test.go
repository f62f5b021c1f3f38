package render

import (
	"context"
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatic(t *testing.T) {
	s := NewRasterSurface(4, 4, color.Black)
	got, err := Static(s)(context.Background())
	require.NoError(t, err)
	assert.Same(t, s, got)

	_, err = Static(nil)(context.Background())
	assert.ErrorIs(t, err, ErrSurfaceUnavailable)
}

func TestAwait(t *testing.T) {
	ready := make(chan Surface, 1)
	s := NewRasterSurface(4, 4, color.Black)
	ready <- s

	got, err := Await(ready)(context.Background())
	require.NoError(t, err)
	assert.Same(t, s, got)

	closed := make(chan Surface)
	close(closed)
	_, err = Await(closed)(context.Background())
	assert.ErrorIs(t, err, ErrSurfaceUnavailable)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = Await(make(chan Surface))(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
