package systems

import (
	"math"

	"github.com/orbit-social/orbit/components"
	"github.com/orbit-social/orbit/render"
	"github.com/orbit-social/orbit/shared/gallerymath"
	"github.com/orbit-social/orbit/systems/factory"
	"github.com/orbit-social/orbit/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MovePointer records the pointer position used for hover tests.
func MovePointer(e *ecs.ECS, x, y float64) {
	entry, ok := tags.Gallery.First(e.World)
	if !ok {
		return
	}
	p := components.Pointer.Get(entry)
	p.LastX, p.LastY = x, y
}

// UpdateHover mirrors the media rectangles into the hover space and finds the card
// under the pointer. Must run AFTER UpdateMedia.
func UpdateHover(e *ecs.ECS) {
	entry, ok := tags.Gallery.First(e.World)
	if !ok {
		return
	}
	hs := components.HoverSpace.Get(entry)
	if hs.Space == nil || hs.Cursor == nil {
		return
	}
	screen := components.Screen.Get(entry)
	p := components.Pointer.Get(entry)
	proj := screenProjection(screen)

	components.Media.Each(e.World, func(me *donburi.Entry) {
		m := components.Media.Get(me)
		m.Hovered = false

		hb := components.Hitbox.Get(me)
		if hb.Object == nil {
			return
		}
		r := proj.Bounds(m.PosX, m.PosY, m.Rotation, m.PlaneWidth, m.PlaneHeight)
		hb.X, hb.Y = float64(r.Min.X), float64(r.Min.Y)
		hb.W, hb.H = float64(r.Dx()), float64(r.Dy())
		hb.Update()
	})

	hs.Cursor.X, hs.Cursor.Y = p.LastX, p.LastY
	hs.Cursor.Update()
	hs.Hovered = -1

	check := hs.Cursor.Check(0, 0, tags.ResolvMedia)
	if check == nil {
		return
	}

	var hovered *components.MediaData
	for _, obj := range check.ObjectsByTags(tags.ResolvMedia) {
		if !containsPoint(obj, p.LastX, p.LastY) {
			continue
		}
		me, ok := obj.Data.(*donburi.Entry)
		if !ok || !me.Valid() {
			continue
		}
		m := components.Media.Get(me)
		if hovered == nil || math.Abs(m.PosX) < math.Abs(hovered.PosX) {
			hovered = m
		}
	}
	if hovered != nil {
		hovered.Hovered = true
		hs.Hovered = hovered.DisplayIndex
	}
}

// Hovered reports whether the pointer is over a card.
func Hovered(e *ecs.ECS) bool {
	entry, ok := tags.Gallery.First(e.World)
	if !ok {
		return false
	}
	return components.HoverSpace.Get(entry).Hovered >= 0
}

func containsPoint(obj *resolv.Object, x, y float64) bool {
	return x >= obj.X && x < obj.X+obj.W && y >= obj.Y && y < obj.Y+obj.H
}

func screenProjection(screen *components.ScreenData) render.Projection {
	vp := gallerymath.Viewport{Width: screen.ViewportWidth, Height: screen.ViewportHeight}
	return render.Projection{
		CenterX: screen.Width / 2,
		CenterY: screen.Height / 2,
		PPU:     gallerymath.PixelsPerUnit(screen.Height, vp),
	}
}

// resizeHoverSpace rebuilds the hover space at the new screen size and re-adds every hitbox.
func resizeHoverSpace(e *ecs.ECS, entry *donburi.Entry, width, height int) {
	hs := components.HoverSpace.Get(entry)
	hs.Space = factory.NewHoverSpace(width, height)
	if hs.Cursor == nil {
		hs.Cursor = factory.NewCursor()
	}
	hs.Space.Add(hs.Cursor)
	hs.Hovered = -1

	components.Hitbox.Each(e.World, func(me *donburi.Entry) {
		if hb := components.Hitbox.Get(me); hb.Object != nil {
			hs.Space.Add(hb.Object)
		}
	})
}
