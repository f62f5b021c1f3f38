package gallerymath

import "math"

// Viewport is the visible area of the z=0 plane in world units.
type Viewport struct {
	Width  float64
	Height float64
}

// ComputeViewport derives the world-unit viewport of a perspective camera looking at the
// z=0 plane from distance, given the screen size in pixels and the vertical field of view.
// Sizes below one pixel are clamped to one.
func ComputeViewport(screenWidth, screenHeight, fovDegrees, distance float64) Viewport {
	screenWidth = math.Max(screenWidth, 1)
	screenHeight = math.Max(screenHeight, 1)

	fov := fovDegrees * math.Pi / 180
	height := 2 * math.Tan(fov/2) * distance
	return Viewport{
		Width:  height * screenWidth / screenHeight,
		Height: height,
	}
}

// PixelsPerUnit is the scale between world units on the z=0 plane and screen pixels.
func PixelsPerUnit(screenHeight float64, vp Viewport) float64 {
	if vp.Height <= 0 {
		return 0
	}
	return math.Max(screenHeight, 1) / vp.Height
}
