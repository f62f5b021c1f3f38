package systems

import (
	"github.com/orbit-social/orbit/components"
	cfg "github.com/orbit-social/orbit/config"
	"github.com/orbit-social/orbit/loader"
	"github.com/orbit-social/orbit/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// ApplyLoadResult hands a finished image load to every card showing that item.
// Results from an older generation are dropped and reported as false.
func ApplyLoadResult(e *ecs.ECS, r loader.Result, logger *zap.Logger) bool {
	entry, ok := tags.Gallery.First(e.World)
	if !ok {
		return false
	}
	g := components.Gallery.Get(entry)
	if r.Generation != g.Generation {
		return false
	}

	if r.Err != nil {
		logger.Warn("image load failed, keeping placeholder",
			zap.Int("item", r.SourceIndex),
			zap.String("source", r.Source),
			zap.Error(r.Err))
		return true
	}

	b := r.Image.Bounds()
	components.Media.Each(e.World, func(me *donburi.Entry) {
		if components.Media.Get(me).SourceIndex != r.SourceIndex {
			return
		}
		t := components.Texture.Get(me)
		t.Image = r.Image
		t.ImageWidth, t.ImageHeight = b.Dx(), b.Dy()
		t.Loaded = true
		t.Alpha = 0
		t.Fade = gween.New(0, 1, cfg.Media.FadeSeconds, ease.OutQuad)
	})
	return true
}

// UpdateTextures advances texture fade-ins by one tick.
func UpdateTextures(e *ecs.ECS) {
	dt := float32(1) / float32(max(cfg.C.TPS, 1))

	components.Texture.Each(e.World, func(entry *donburi.Entry) {
		t := components.Texture.Get(entry)
		if t.Fade == nil {
			return
		}
		alpha, done := t.Fade.Update(dt)
		t.Alpha = float64(alpha)
		if done {
			t.Alpha = 1
			t.Fade = nil
		}
	})
}
