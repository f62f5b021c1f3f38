package systems

import (
	"sort"

	"github.com/orbit-social/orbit/components"
	"github.com/orbit-social/orbit/render"
	"github.com/orbit-social/orbit/shared/gallerymath"
	"github.com/orbit-social/orbit/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BuildFrame fills f with the current layout, ordered by display index.
func BuildFrame(e *ecs.ECS, f *render.Frame) {
	f.Reset()

	entry, ok := tags.Gallery.First(e.World)
	if !ok {
		return
	}
	g := components.Gallery.Get(entry)
	screen := components.Screen.Get(entry)

	f.ScreenWidth = int(screen.Width)
	f.ScreenHeight = int(screen.Height)
	f.Viewport = gallerymath.Viewport{Width: screen.ViewportWidth, Height: screen.ViewportHeight}

	components.Media.Each(e.World, func(me *donburi.Entry) {
		m := components.Media.Get(me)
		t := components.Texture.Get(me)
		title := components.Title.Get(me)

		plane := render.Plane{
			DisplayIndex: m.DisplayIndex,
			SourceIndex:  m.SourceIndex,
			X:            m.PosX,
			Y:            m.PosY,
			Rotation:     m.Rotation,
			Width:        m.PlaneWidth,
			Height:       m.PlaneHeight,
			BorderRadius: g.BorderRadius,
			Placeholder:  g.PlaceholderColor,
			Speed:        m.Speed,
			Time:         m.Time,
			Hovered:      m.Hovered,
		}
		if t.Loaded {
			plane.Texture = t.Image
			plane.TextureAlpha = t.Alpha
		}
		if title.Image != nil {
			plane.Title = &render.Title{
				Image:   title.Image,
				Width:   title.Width,
				Height:  title.Height,
				OffsetY: title.OffsetY,
			}
		}
		f.Planes = append(f.Planes, plane)
	})

	sort.Slice(f.Planes, func(i, j int) bool {
		return f.Planes[i].DisplayIndex < f.Planes[j].DisplayIndex
	})
}
