package config

import (
	"errors"
	"image/color"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleItems = `
bend: -2
textColor: "#10b981"
scrollEase: 0.1
items:
  - image: https://images.unsplash.com/photo-1488646953014-85cb44e25828?w=800&h=600&fit=crop
    label: Travel Squad
  - image: thumbs/dev-team.png
    label: Dev Team
`

func TestParseItems(t *testing.T) {
	f, err := ParseItems([]byte(sampleItems))
	require.NoError(t, err)

	require.Len(t, f.Items, 2)
	assert.Equal(t, "Dev Team", f.Items[1].Label)
	require.NotNil(t, f.Bend)
	assert.Equal(t, -2.0, *f.Bend)
	require.NotNil(t, f.ScrollEase)
	assert.Equal(t, 0.1, *f.ScrollEase)
	assert.Nil(t, f.ScrollSpeed, "omitted fields stay unset")
	assert.Nil(t, f.BorderRadius)
}

func TestParseItemsInvalid(t *testing.T) {
	cases := map[string]string{
		"missing image": "items:\n  - label: x\n",
		"missing label": "items:\n  - image: a.png\n",
		"ease zero":     "scrollEase: 0\n",
		"ease too big":  "scrollEase: 1.5\n",
		"speed":         "scrollSpeed: -1\n",
		"radius":        "borderRadius: 0.7\n",
		"color":         "textColor: \"#12\"\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseItems([]byte(doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidItems), "got %v", err)
		})
	}

	_, err := ParseItems([]byte("items: [unterminated"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalidItems))
}

func TestParseItemsEmptyIsValid(t *testing.T) {
	f, err := ParseItems([]byte("bend: 0\n"))
	require.NoError(t, err)
	assert.Empty(t, f.Items)
}

func TestLoadItems(t *testing.T) {
	fsys := fstest.MapFS{"gallery/items.yaml": {Data: []byte(sampleItems)}}

	f, err := LoadItems(fsys, "gallery/items.yaml")
	require.NoError(t, err)
	assert.Len(t, f.Items, 2)

	_, err = LoadItems(fsys, "missing.yaml")
	require.Error(t, err)
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#ffffff")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, c)

	c, err = ParseHexColor("3b82f6")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0x3b, 0x82, 0xf6, 255}, c)

	c, err = ParseHexColor("#f80")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0xff, 0x88, 0x00, 255}, c)

	_, err = ParseHexColor("#zzzzzz")
	assert.Error(t, err)
}
