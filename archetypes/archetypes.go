package archetypes

import (
	"github.com/orbit-social/orbit/components"
	cfg "github.com/orbit-social/orbit/config"
	"github.com/orbit-social/orbit/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Gallery = newArchetype(
		tags.Gallery,
		components.Gallery,
		components.Scroll,
		components.Pointer,
		components.Screen,
		components.HoverSpace,
	)
	Media = newArchetype(
		tags.Media,
		components.Media,
		components.Texture,
		components.Title,
		components.Hitbox,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.LayerGallery,
		append(a.components, cs...)...,
	))
	return e
}
