package gallerymath

import "math"

// ArcRadius is the radius of the circle whose chord spans the viewport (2*halfWidth)
// with a sagitta of |bend|.
func ArcRadius(halfWidth, bend float64) float64 {
	b := math.Abs(bend)
	return (halfWidth*halfWidth + b*b) / (2 * b)
}

// Bend maps a horizontal offset onto the gallery arc.
// It returns the vertical displacement and the rotation about the view axis.
// A zero bend is a flat row; the sign of bend flips the concavity.
func Bend(x, bend, halfWidth float64) (offsetY, rotation float64) {
	if bend == 0 {
		return 0, 0
	}

	r := ArcRadius(halfWidth, bend)
	effectiveX := math.Min(math.Abs(x), halfWidth)
	arc := r - math.Sqrt(r*r-effectiveX*effectiveX)
	tilt := sign(x) * math.Asin(effectiveX/r)

	if bend > 0 {
		return -arc, -tilt
	}
	return arc, tilt
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
