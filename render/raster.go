package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/orbit-social/orbit/shared/gallerymath"
	xdraw "golang.org/x/image/draw"
)

// placeholderWidth is the pixel width of the synthetic placeholder source.
const placeholderWidth = 128

type composeKey struct {
	src    image.Image // nil for a solid fill
	fill   color.RGBA
	sr     image.Rectangle
	radius float64
	alpha  float64
}

// RasterSurface draws frames into an in-memory RGBA canvas. It is used by the
// snapshot tool and by tests, and needs no GPU.
type RasterSurface struct {
	canvas     *image.RGBA
	background color.Color
	frames     int
	released   bool

	composed map[composeKey]*image.NRGBA
	seen     map[composeKey]bool
}

// NewRasterSurface creates a width x height canvas cleared to background on every frame.
func NewRasterSurface(width, height int, background color.Color) *RasterSurface {
	if background == nil {
		background = color.Transparent
	}
	s := &RasterSurface{
		background: background,
		composed:   make(map[composeKey]*image.NRGBA),
		seen:       make(map[composeKey]bool),
	}
	s.Resize(width, height)
	return s
}

// Resize reallocates the canvas when the size changes.
func (s *RasterSurface) Resize(width, height int) {
	width, height = max(width, 1), max(height, 1)
	if s.canvas != nil && s.canvas.Bounds().Dx() == width && s.canvas.Bounds().Dy() == height {
		return
	}
	s.canvas = image.NewRGBA(image.Rect(0, 0, width, height))
}

// Render paints frame onto the canvas.
func (s *RasterSurface) Render(frame *Frame) {
	if s.released || frame == nil {
		return
	}
	s.frames++
	draw.Draw(s.canvas, s.canvas.Bounds(), image.NewUniform(s.background), image.Point{}, draw.Src)

	proj := NewProjection(frame)
	if proj.PPU == 0 {
		return
	}
	clear(s.seen)

	for i := range frame.Planes {
		s.drawPlane(proj, &frame.Planes[i])
	}

	// Drop compositions nobody drew this frame
	for k := range s.composed {
		if !s.seen[k] {
			delete(s.composed, k)
		}
	}
}

// Release drops the canvas. Later frames are ignored.
func (s *RasterSurface) Release() {
	s.released = true
	s.composed = nil
	s.seen = nil
}

// Canvas returns the live canvas.
func (s *RasterSurface) Canvas() *image.RGBA {
	return s.canvas
}

// Snapshot returns a copy of the canvas.
func (s *RasterSurface) Snapshot() *image.RGBA {
	out := image.NewRGBA(s.canvas.Bounds())
	copy(out.Pix, s.canvas.Pix)
	return out
}

// Frames returns how many frames were rendered.
func (s *RasterSurface) Frames() int {
	return s.frames
}

// Released reports whether Release was called.
func (s *RasterSurface) Released() bool {
	return s.released
}

func (s *RasterSurface) drawPlane(proj Projection, p *Plane) {
	if p.Width <= 0 || p.Height <= 0 {
		return
	}

	// Placeholder until the texture is fully opaque
	if p.Texture == nil || p.TextureAlpha < 1 {
		h := int(math.Max(1, math.Round(placeholderWidth*p.Height/p.Width)))
		sr := image.Rect(0, 0, placeholderWidth, h)
		key := composeKey{fill: p.Placeholder, sr: sr, radius: p.BorderRadius, alpha: 1}
		s.transform(proj, p, key)
	}

	if p.Texture != nil && p.TextureAlpha > 0 {
		b := p.Texture.Bounds()
		sr := gallerymath.CoverRect(b.Dx(), b.Dy(), p.Width, p.Height).Add(b.Min)
		key := composeKey{src: p.Texture, sr: sr, radius: p.BorderRadius, alpha: p.TextureAlpha}
		s.transform(proj, p, key)
	}

	if t := p.Title; t != nil && t.Image != nil {
		cx, cy := ChildCenter(p.X, p.Y, p.Rotation, t.OffsetY)
		aff := proj.Affine(cx, cy, p.Rotation, t.Width, t.Height, t.Image.Bounds())
		xdraw.BiLinear.Transform(s.canvas, aff, t.Image, t.Image.Bounds(), xdraw.Over, nil)
	}
}

func (s *RasterSurface) transform(proj Projection, p *Plane, key composeKey) {
	if key.sr.Empty() {
		return
	}
	masked, ok := s.composed[key]
	if !ok {
		var src image.Image = image.NewUniform(key.fill)
		if key.src != nil {
			src = key.src
		}
		masked = composeRounded(src, key.sr, key.radius, key.alpha)
		s.composed[key] = masked
	}
	s.seen[key] = true

	aff := proj.Affine(p.X, p.Y, p.Rotation, p.Width, p.Height, masked.Bounds())
	xdraw.BiLinear.Transform(s.canvas, aff, masked, masked.Bounds(), xdraw.Over, nil)
}
