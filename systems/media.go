package systems

import (
	"github.com/orbit-social/orbit/components"
	cfg "github.com/orbit-social/orbit/config"
	"github.com/orbit-social/orbit/shared/gallerymath"
	"github.com/orbit-social/orbit/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMedia lays out every media card for the current scroll position: wrap
// bookkeeping first, then position and bend.
func UpdateMedia(e *ecs.ECS) {
	entry, ok := tags.Gallery.First(e.World)
	if !ok {
		return
	}
	g := components.Gallery.Get(entry)
	s := components.Scroll.Get(entry)
	screen := components.Screen.Get(entry)

	dir := gallerymath.TravelDirection(s.Current, s.Last)
	speed := s.Current - s.Last

	components.Media.Each(e.World, func(me *donburi.Entry) {
		m := components.Media.Get(me)
		layoutMedia(m, s.Current, screen.ViewportWidth, g.Bend, dir)
		m.Speed = speed
		m.Time += cfg.Media.TimeStep
	})
}

func layoutMedia(m *components.MediaData, current, viewportWidth, bend float64, dir gallerymath.Direction) {
	ws := gallerymath.Wrap(gallerymath.WrapState{
		Extra:    m.Extra,
		IsBefore: m.IsBefore,
		IsAfter:  m.IsAfter,
	}, m.X, current, m.PlaneWidth, viewportWidth, m.WidthTotal, dir)
	m.Extra, m.IsBefore, m.IsAfter = ws.Extra, ws.IsBefore, ws.IsAfter

	m.PosX = gallerymath.Position(m.X, current, m.Extra)
	m.PosY, m.Rotation = gallerymath.Bend(m.PosX, bend, viewportWidth/2)
}

// Resize recomputes the viewport and every size derived from it.
// Sizes below one pixel are clamped to one.
func Resize(e *ecs.ECS, width, height int) {
	entry, ok := tags.Gallery.First(e.World)
	if !ok {
		return
	}
	g := components.Gallery.Get(entry)
	s := components.Scroll.Get(entry)
	screen := components.Screen.Get(entry)

	w, h := float64(max(width, 1)), float64(max(height, 1))
	vp := gallerymath.ComputeViewport(w, h, cfg.Camera.FOV, cfg.Camera.Distance)
	screen.Width, screen.Height = w, h
	screen.ViewportWidth, screen.ViewportHeight = vp.Width, vp.Height

	components.Media.Each(e.World, func(me *donburi.Entry) {
		m := components.Media.Get(me)
		sizeMedia(m, screen)
		sizeTitle(components.Title.Get(me), m)
	})

	components.Media.Each(e.World, func(me *donburi.Entry) {
		layoutMedia(components.Media.Get(me), s.Current, screen.ViewportWidth, g.Bend, gallerymath.DirectionNone)
	})

	resizeHoverSpace(e, entry, int(w), int(h))
}

// SeatMedia moves freshly spawned cards next to the current scroll position, so a
// strip rebuilt after scrolling far stays on screen.
func SeatMedia(e *ecs.ECS) {
	entry, ok := tags.Gallery.First(e.World)
	if !ok {
		return
	}
	g := components.Gallery.Get(entry)
	s := components.Scroll.Get(entry)
	screen := components.Screen.Get(entry)

	components.Media.Each(e.World, func(me *donburi.Entry) {
		m := components.Media.Get(me)
		m.Extra = gallerymath.Seat(m.X, s.Current, m.WidthTotal)
		layoutMedia(m, s.Current, screen.ViewportWidth, g.Bend, gallerymath.DirectionNone)
	})
}

// WrapCovers reports whether the strip fills the viewport without gaps at the current size.
func WrapCovers(e *ecs.ECS) bool {
	entry, ok := tags.Gallery.First(e.World)
	if !ok {
		return true
	}
	screen := components.Screen.Get(entry)
	covers := true
	components.Media.Each(e.World, func(me *donburi.Entry) {
		m := components.Media.Get(me)
		covers = covers && gallerymath.WrapCovers(m.PlaneWidth, screen.ViewportWidth, m.WidthTotal)
	})
	return covers
}

func sizeMedia(m *components.MediaData, screen *components.ScreenData) {
	m.Scale = screen.Height / cfg.Media.ReferenceHeight
	m.PlaneHeight = screen.ViewportHeight * (cfg.Media.PlaneHeight * m.Scale) / screen.Height
	m.PlaneWidth = screen.ViewportWidth * (cfg.Media.PlaneWidth * m.Scale) / screen.Width
	m.Width = m.PlaneWidth + cfg.Media.Padding
	m.WidthTotal = m.Width * float64(m.Length)
	m.X = m.Width * float64(m.DisplayIndex)
}

func sizeTitle(t *components.TitleData, m *components.MediaData) {
	t.Height = m.PlaneHeight * cfg.Media.TitleScale
	t.Width = t.Height * t.Aspect
	t.OffsetY = -m.PlaneHeight/2 - t.Height/2 - cfg.Media.TitleGap
}
