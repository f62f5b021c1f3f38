package factory

import (
	"github.com/orbit-social/orbit/tags"
	"github.com/solarlune/resolv"
)

// hoverCellSize is the resolv cell size in screen pixels
const hoverCellSize = 16

// NewHoverSpace creates the hit-test space covering a width x height screen.
func NewHoverSpace(width, height int) *resolv.Space {
	return resolv.NewSpace(max(width, 1), max(height, 1), hoverCellSize, hoverCellSize)
}

// NewCursor creates the one-pixel object that follows the pointer.
func NewCursor() *resolv.Object {
	return resolv.NewObject(0, 0, 1, 1, tags.ResolvCursor)
}
