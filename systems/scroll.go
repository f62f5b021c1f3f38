package systems

import (
	"math"
	"time"

	"github.com/orbit-social/orbit/components"
	cfg "github.com/orbit-social/orbit/config"
	"github.com/orbit-social/orbit/shared/gallerymath"
	"github.com/orbit-social/orbit/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateScroll fires a due debounced snap, then eases Current toward Target.
// Must run BEFORE UpdateMedia in the system order.
func UpdateScroll(e *ecs.ECS) {
	entry, ok := tags.Gallery.First(e.World)
	if !ok {
		return
	}
	g := components.Gallery.Get(entry)
	s := components.Scroll.Get(entry)

	if !s.SnapAt.IsZero() && !g.Now().Before(s.SnapAt) {
		s.SnapAt = time.Time{}
		snap(e, s)
	}

	s.Last = s.Current
	s.Current = gallerymath.Lerp(s.Current, s.Target, s.Ease)
}

// ApplyWheel moves the target one wheel step and re-arms the snap debounce.
func ApplyWheel(e *ecs.ECS, deltaY float64) {
	entry, ok := tags.Gallery.First(e.World)
	if !ok {
		return
	}
	g := components.Gallery.Get(entry)
	s := components.Scroll.Get(entry)

	s.Target += gallerymath.WheelStep(deltaY, g.ScrollSpeed, cfg.Scroll.WheelFactor)
	armSnap(g, s)
}

// BeginDrag starts tracking a press at pixel x.
func BeginDrag(e *ecs.ECS, x float64) {
	entry, ok := tags.Gallery.First(e.World)
	if !ok {
		return
	}
	s := components.Scroll.Get(entry)
	p := components.Pointer.Get(entry)

	p.Down = true
	p.StartX = x
	p.LastX = x
	p.Dragged = false

	s.Position = s.Current
	s.SnapAt = time.Time{}
}

// ContinueDrag retargets the scroll while a press is held. Moves before BeginDrag are ignored.
func ContinueDrag(e *ecs.ECS, x float64) {
	entry, ok := tags.Gallery.First(e.World)
	if !ok {
		return
	}
	p := components.Pointer.Get(entry)
	if !p.Down {
		return
	}
	g := components.Gallery.Get(entry)
	s := components.Scroll.Get(entry)

	p.LastX = x
	if math.Abs(x-p.StartX) > cfg.Scroll.DragThreshold {
		p.Dragged = true
	}
	s.Target = gallerymath.DragTarget(s.Position, p.StartX, x, g.ScrollSpeed*cfg.Scroll.DragFactor)
}

// EndDrag stops tracking the press and arms the snap debounce.
func EndDrag(e *ecs.ECS) {
	entry, ok := tags.Gallery.First(e.World)
	if !ok {
		return
	}
	p := components.Pointer.Get(entry)
	p.Down = false

	armSnap(components.Gallery.Get(entry), components.Scroll.Get(entry))
}

// SnapToNearest rounds the target to the closest whole item.
func SnapToNearest(e *ecs.ECS) {
	entry, ok := tags.Gallery.First(e.World)
	if !ok {
		return
	}
	snap(e, components.Scroll.Get(entry))
}

// Step moves the target by delta whole items and lands on a slot.
func Step(e *ecs.ECS, delta int) {
	entry, ok := tags.Gallery.First(e.World)
	if !ok {
		return
	}
	w := SlotWidth(e)
	if w <= 0 {
		return
	}
	s := components.Scroll.Get(entry)
	s.Target = gallerymath.Snap(s.Target+float64(delta)*w, w)
	s.SnapAt = time.Time{}
}

// SlotWidth is the distance between neighbouring items in world units, 0 without media.
func SlotWidth(e *ecs.ECS) float64 {
	entry, ok := tags.Media.First(e.World)
	if !ok {
		return 0
	}
	return components.Media.Get(entry).Width
}

func snap(e *ecs.ECS, s *components.ScrollData) {
	s.Target = gallerymath.Snap(s.Target, SlotWidth(e))
}

func armSnap(g *components.GalleryData, s *components.ScrollData) {
	s.SnapAt = g.Now().Add(cfg.Scroll.SnapDebounce)
}

// CenteredMedia returns the media entry whose rendered position is closest to the viewport center.
func CenteredMedia(e *ecs.ECS) (*donburi.Entry, bool) {
	var best *donburi.Entry
	bestDist := math.Inf(1)
	components.Media.Each(e.World, func(entry *donburi.Entry) {
		m := components.Media.Get(entry)
		d := math.Abs(m.PosX)
		if d < bestDist || (d == bestDist && best != nil && m.DisplayIndex < components.Media.Get(best).DisplayIndex) {
			best, bestDist = entry, d
		}
	})
	return best, best != nil
}

// ResolveClick returns the source index of the item a click selects.
// A press that turned into a drag selects nothing.
func ResolveClick(e *ecs.ECS) (int, bool) {
	entry, ok := tags.Gallery.First(e.World)
	if !ok {
		return 0, false
	}
	if components.Pointer.Get(entry).Dragged {
		return 0, false
	}
	return CenteredItem(e)
}

// CenteredItem returns the source index of the centered media.
func CenteredItem(e *ecs.ECS) (int, bool) {
	me, ok := CenteredMedia(e)
	if !ok {
		return 0, false
	}
	return components.Media.Get(me).SourceIndex, true
}
