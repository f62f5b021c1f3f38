package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/orbit-social/orbit/assets"
	"github.com/orbit-social/orbit/config"
	"github.com/orbit-social/orbit/shared/gallerymath"
	"golang.org/x/image/math/f64"
)

const placeholderSize = 64

// EbitenSurface keeps the latest frame and paints it onto an ebiten screen in DrawTo.
type EbitenSurface struct {
	frame    Frame
	hasFrame bool
	width    int
	height   int
	released bool

	shader *ebiten.Shader
	white  *ebiten.Image

	// Uploaded textures and labels, keyed by their source image
	images map[image.Image]*ebiten.Image
	seen   map[image.Image]bool
}

// NewEbitenSurface compiles the media shader and prepares the surface.
func NewEbitenSurface() (*EbitenSurface, error) {
	if err := assets.LoadShaders(); err != nil {
		return nil, err
	}

	white := ebiten.NewImage(placeholderSize, placeholderSize)
	white.Fill(color.White)

	return &EbitenSurface{
		shader: assets.MediaShader,
		white:  white,
		images: make(map[image.Image]*ebiten.Image),
		seen:   make(map[image.Image]bool),
	}, nil
}

func (s *EbitenSurface) Resize(width, height int) {
	s.width, s.height = max(width, 1), max(height, 1)
}

// Render stores a copy of frame for the next DrawTo.
func (s *EbitenSurface) Render(frame *Frame) {
	if s.released || frame == nil {
		return
	}
	planes := s.frame.Planes[:0]
	s.frame = *frame
	s.frame.Planes = append(planes, frame.Planes...)
	s.hasFrame = true
}

// Release deallocates every uploaded image. DrawTo does nothing afterwards.
func (s *EbitenSurface) Release() {
	if s.released {
		return
	}
	s.released = true
	for k, img := range s.images {
		img.Deallocate()
		delete(s.images, k)
	}
	s.white.Deallocate()
	s.frame = Frame{}
	s.hasFrame = false
}

// DrawTo paints the latest frame onto screen.
func (s *EbitenSurface) DrawTo(screen *ebiten.Image) {
	if s.released || !s.hasFrame {
		return
	}

	proj := NewProjection(&s.frame)
	if proj.PPU == 0 {
		return
	}
	clear(s.seen)

	for i := range s.frame.Planes {
		s.drawPlane(screen, proj, &s.frame.Planes[i])
	}

	for k, img := range s.images {
		if !s.seen[k] {
			img.Deallocate()
			delete(s.images, k)
		}
	}
}

func (s *EbitenSurface) drawPlane(screen *ebiten.Image, proj Projection, p *Plane) {
	if p.Width <= 0 || p.Height <= 0 {
		return
	}

	if p.Texture == nil || p.TextureAlpha < 1 {
		s.drawShader(screen, proj, p, s.white, p.Placeholder, 1)
	}

	if p.Texture != nil && p.TextureAlpha > 0 {
		tex := s.upload(p.Texture)
		b := p.Texture.Bounds()
		crop := gallerymath.CoverRect(b.Dx(), b.Dy(), p.Width, p.Height)
		sub := tex.SubImage(crop).(*ebiten.Image)
		s.drawShader(screen, proj, p, sub, color.RGBA{255, 255, 255, 255}, p.TextureAlpha)
	}

	if t := p.Title; t != nil && t.Image != nil {
		img := s.upload(t.Image)
		cx, cy := ChildCenter(p.X, p.Y, p.Rotation, t.OffsetY)
		op := &ebiten.DrawImageOptions{}
		op.GeoM = geoM(proj.Affine(cx, cy, p.Rotation, t.Width, t.Height, t.Image.Bounds().Sub(t.Image.Bounds().Min)))
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(img, op)
	}

	if config.Debug.ShowBounds {
		r := proj.Bounds(p.X, p.Y, p.Rotation, p.Width, p.Height)
		clr := color.RGBA{255, 0, 0, 255}
		if p.Hovered {
			clr = color.RGBA{0, 255, 0, 255}
		}
		vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, clr, false)
	}
}

func (s *EbitenSurface) drawShader(screen *ebiten.Image, proj Projection, p *Plane, src *ebiten.Image, tint color.RGBA, alpha float64) {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	if w == 0 || h == 0 {
		return
	}

	op := &ebiten.DrawRectShaderOptions{}
	op.GeoM = geoM(proj.Affine(p.X, p.Y, p.Rotation, p.Width, p.Height, image.Rect(0, 0, w, h)))
	op.Images[0] = src
	op.ColorScale.ScaleWithColor(tint)
	op.Uniforms = map[string]any{
		"BorderRadius": float32(p.BorderRadius),
		"Alpha":        float32(alpha),
		"Speed":        float32(p.Speed),
		"Time":         float32(p.Time),
	}
	screen.DrawRectShader(w, h, s.shader, op)
}

func (s *EbitenSurface) upload(src image.Image) *ebiten.Image {
	s.seen[src] = true
	if img, ok := s.images[src]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(src)
	s.images[src] = img
	return img
}

func geoM(a f64.Aff3) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, a[0])
	g.SetElement(0, 1, a[1])
	g.SetElement(0, 2, a[2])
	g.SetElement(1, 0, a[3])
	g.SetElement(1, 1, a[4])
	g.SetElement(1, 2, a[5])
	return g
}
