package factory

import (
	"github.com/orbit-social/orbit/archetypes"
	"github.com/orbit-social/orbit/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGallery spawns the gallery singleton. Its screen is sized by the first resize.
func CreateGallery(ecs *ecs.ECS, data components.GalleryData, ease float64) *donburi.Entry {
	gallery := archetypes.Gallery.Spawn(ecs)

	components.Gallery.SetValue(gallery, data)
	components.Scroll.SetValue(gallery, components.ScrollData{
		Ease: ease,
	})
	components.Pointer.SetValue(gallery, components.PointerData{})
	components.Screen.SetValue(gallery, components.ScreenData{})
	components.HoverSpace.SetValue(gallery, components.HoverSpaceData{
		Cursor:  NewCursor(),
		Hovered: -1,
	})

	return gallery
}
