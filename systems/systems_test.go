package systems

import (
	"errors"
	"image"
	"math"
	"testing"
	"time"

	"github.com/orbit-social/orbit/components"
	cfg "github.com/orbit-social/orbit/config"
	"github.com/orbit-social/orbit/loader"
	"github.com/orbit-social/orbit/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap/zaptest"
)

type testClock struct{ now time.Time }

func (c *testClock) Now() time.Time { return c.now }

func newGallery(t *testing.T, items ...cfg.Item) (*ecs.ECS, *donburi.Entry, *testClock) {
	t.Helper()
	clock := &testClock{now: time.Unix(1_700_000_000, 0)}
	e := ecs.NewECS(donburi.NewWorld())

	entry := factory.CreateGallery(e, components.GalleryData{
		Items:        items,
		Bend:         cfg.Gallery.Bend,
		TextColor:    cfg.Gallery.TextColor,
		BorderRadius: cfg.Gallery.BorderRadius,
		ScrollSpeed:  cfg.Gallery.ScrollSpeed,
		Generation:   1,
		Now:          clock.Now,
	}, cfg.Gallery.ScrollEase)
	factory.CreateMedia(e, components.Gallery.Get(entry))
	Resize(e, 1280, 720)
	return e, entry, clock
}

var twoItems = []cfg.Item{
	{Image: "a.png", Label: "A"},
	{Image: "b.png", Label: "B"},
}

func TestApplyWheelUsesSignOnly(t *testing.T) {
	e, entry, _ := newGallery(t, twoItems...)

	ApplyWheel(e, 120)
	ApplyWheel(e, 3)
	ApplyWheel(e, -0.01)
	assert.InDelta(t, 0.4, components.Scroll.Get(entry).Target, 1e-9)

	ApplyWheel(e, 0)
	assert.InDelta(t, 0.4, components.Scroll.Get(entry).Target, 1e-9)
}

func TestUpdateScrollFiresSnapOnce(t *testing.T) {
	e, entry, clock := newGallery(t, twoItems...)
	s := components.Scroll.Get(entry)
	w := SlotWidth(e)

	ApplyWheel(e, 1)
	ApplyWheel(e, 1)
	clock.now = clock.now.Add(cfg.Scroll.SnapDebounce)
	UpdateScroll(e)

	assert.InDelta(t, 0, s.Target, 1e-9, "0.8 rounds down to the first slot")
	assert.True(t, s.SnapAt.IsZero())

	s.Target = 0.7 * w
	UpdateScroll(e)
	assert.InDelta(t, 0.7*w, s.Target, 1e-9, "no snap without a pending deadline")
}

func TestDragThreshold(t *testing.T) {
	e, entry, _ := newGallery(t, twoItems...)
	p := components.Pointer.Get(entry)

	BeginDrag(e, 100)
	ContinueDrag(e, 100+cfg.Scroll.DragThreshold)
	assert.False(t, p.Dragged)
	ContinueDrag(e, 100+cfg.Scroll.DragThreshold+1)
	assert.True(t, p.Dragged)

	EndDrag(e)
	assert.False(t, p.Down)
	_, ok := ResolveClick(e)
	assert.False(t, ok)

	// The next press starts clean
	BeginDrag(e, 0)
	assert.False(t, p.Dragged)
}

func TestStepWithoutMedia(t *testing.T) {
	e, entry, _ := newGallery(t)

	Step(e, 3)
	assert.Zero(t, components.Scroll.Get(entry).Target)
	_, ok := CenteredItem(e)
	assert.False(t, ok)
}

func TestCenteredMediaPrefersLowerIndexOnTie(t *testing.T) {
	e, _, _ := newGallery(t, twoItems...)

	components.Media.Each(e.World, func(me *donburi.Entry) {
		m := components.Media.Get(me)
		switch m.DisplayIndex {
		case 1:
			m.PosX = -2
		case 2:
			m.PosX = 2
		default:
			m.PosX = 10
		}
	})

	me, ok := CenteredMedia(e)
	require.True(t, ok)
	assert.Equal(t, 1, components.Media.Get(me).DisplayIndex)
}

func TestUpdateMediaAdvancesWave(t *testing.T) {
	e, entry, _ := newGallery(t, twoItems...)
	s := components.Scroll.Get(entry)
	s.Target = 1

	UpdateScroll(e)
	UpdateMedia(e)

	components.Media.Each(e.World, func(me *donburi.Entry) {
		m := components.Media.Get(me)
		assert.InDelta(t, s.Current-s.Last, m.Speed, 1e-12)
		assert.InDelta(t, factory.InitialTime(m.DisplayIndex)+cfg.Media.TimeStep, m.Time, 1e-9)
	})
}

func TestResizeKeepsWorldSizes(t *testing.T) {
	e, entry, _ := newGallery(t, twoItems...)
	s := components.Scroll.Get(entry)
	w := SlotWidth(e)
	s.Target, s.Current = w, w

	// Plane sizes scale with the viewport, so the slot is the same at any surface size
	for _, size := range [][2]int{{640, 720}, {1920, 1080}, {300, 2000}} {
		Resize(e, size[0], size[1])
		assert.InDelta(t, w, SlotWidth(e), 1e-9, "%v", size)
		assert.Equal(t, w, s.Target)
	}

	screen := components.Screen.Get(entry)
	assert.InDelta(t, screen.ViewportHeight*300/2000, screen.ViewportWidth, 1e-9)
}

func TestApplyLoadResult(t *testing.T) {
	e, entry, _ := newGallery(t, twoItems...)
	logger := zaptest.NewLogger(t)
	img := image.NewNRGBA(image.Rect(0, 0, 8, 4))

	stale := loader.Result{Request: loader.Request{Generation: 0, SourceIndex: 1}, Image: img}
	assert.False(t, ApplyLoadResult(e, stale, logger))

	failed := loader.Result{Request: loader.Request{Generation: 1, SourceIndex: 0}, Err: errors.New("boom")}
	assert.True(t, ApplyLoadResult(e, failed, logger))

	ok := loader.Result{Request: loader.Request{Generation: 1, SourceIndex: 1}, Image: img}
	assert.True(t, ApplyLoadResult(e, ok, logger))

	loaded := 0
	components.Media.Each(e.World, func(me *donburi.Entry) {
		tex := components.Texture.Get(me)
		if components.Media.Get(me).SourceIndex == 1 {
			loaded++
			assert.True(t, tex.Loaded)
			assert.Equal(t, 8, tex.ImageWidth)
			assert.NotNil(t, tex.Fade)
			return
		}
		assert.False(t, tex.Loaded)
	})
	assert.Equal(t, 2, loaded)

	components.Gallery.Get(entry).Generation = 2
	assert.False(t, ApplyLoadResult(e, ok, logger))
}

func TestUpdateTexturesFinishesFade(t *testing.T) {
	e, _, _ := newGallery(t, twoItems...)
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	require.True(t, ApplyLoadResult(e, loader.Result{Request: loader.Request{Generation: 1}, Image: img}, zaptest.NewLogger(t)))

	ticks := int(math.Ceil(float64(cfg.Media.FadeSeconds)*float64(cfg.C.TPS))) + 1
	for i := 0; i < ticks; i++ {
		UpdateTextures(e)
	}
	components.Texture.Each(e.World, func(me *donburi.Entry) {
		tex := components.Texture.Get(me)
		if tex.Loaded {
			assert.Equal(t, 1.0, tex.Alpha)
			assert.Nil(t, tex.Fade)
		}
	})
}
