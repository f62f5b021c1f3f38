package factory

import (
	"image"
	"math"

	"github.com/orbit-social/orbit/archetypes"
	"github.com/orbit-social/orbit/components"
	cfg "github.com/orbit-social/orbit/config"
	"github.com/orbit-social/orbit/fonts"
	"github.com/orbit-social/orbit/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMedia spawns two cards per item so the strip can wrap seamlessly.
// Both copies of an item share one rasterized label.
func CreateMedia(ecs *ecs.ECS, gallery *components.GalleryData) []*donburi.Entry {
	n := len(gallery.Items)
	if n == 0 {
		return nil
	}

	fonts.LoadDefaults(cfg.Label.FontSize)
	face := fonts.BoldLabel.Get()

	labels := make([]*image.RGBA, n)
	for i, item := range gallery.Items {
		labels[i] = fonts.RasterizeLabel(item.Label, face, cfg.Label.FontSize, cfg.Label.LineHeight, cfg.Label.Padding, gallery.TextColor)
	}

	length := 2 * n
	entries := make([]*donburi.Entry, 0, length)
	for i := 0; i < length; i++ {
		source := i % n
		entries = append(entries, createMedia(ecs, gallery.Items[source].Image, gallery.Items[source].Label, labels[source], source, i, length))
	}
	return entries
}

func createMedia(ecs *ecs.ECS, src, text string, label *image.RGBA, sourceIndex, displayIndex, length int) *donburi.Entry {
	media := archetypes.Media.Spawn(ecs)

	components.Media.SetValue(media, components.MediaData{
		SourceIndex:  sourceIndex,
		DisplayIndex: displayIndex,
		Length:       length,
		Time:         InitialTime(displayIndex),
	})
	components.Texture.SetValue(media, components.TextureData{
		Source: src,
	})

	b := label.Bounds()
	components.Title.SetValue(media, components.TitleData{
		Text:   text,
		Image:  label,
		Aspect: float64(b.Dx()) / float64(b.Dy()),
	})

	obj := resolv.NewObject(0, 0, 1, 1, tags.ResolvMedia)
	obj.Data = media
	components.Hitbox.SetValue(media, components.HitboxData{Object: obj})

	return media
}

// InitialTime spreads the wave phase of the cards so they do not ripple in unison.
func InitialTime(displayIndex int) float64 {
	return math.Mod(float64(displayIndex)*cfg.Media.TimeSpread, 100)
}

// DestroyMedia removes every card and its hitbox.
func DestroyMedia(ecs *ecs.ECS, space *resolv.Space) {
	var entries []*donburi.Entry
	tags.Media.Each(ecs.World, func(e *donburi.Entry) {
		entries = append(entries, e)
	})

	for _, e := range entries {
		if hb := components.Hitbox.Get(e); hb.Object != nil && space != nil {
			space.Remove(hb.Object)
		}
		ecs.World.Remove(e.Entity())
	}
}
