package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidItems is returned when an items file fails validation
var ErrInvalidItems = errors.New("invalid items file")

// Item is one gallery card
type Item struct {
	Image string `yaml:"image"` // URL or path of the thumbnail
	Label string `yaml:"label"` // Caption under the card
}

// ItemsFile is the YAML document describing a gallery.
// Omitted optional fields fall back to the Gallery defaults.
type ItemsFile struct {
	Bend         *float64 `yaml:"bend"`
	TextColor    string   `yaml:"textColor"`
	BorderRadius *float64 `yaml:"borderRadius"`
	ScrollSpeed  *float64 `yaml:"scrollSpeed"`
	ScrollEase   *float64 `yaml:"scrollEase"`
	Items        []Item   `yaml:"items"`
}

// LoadItems reads and validates an items file from fsys
func LoadItems(fsys fs.FS, path string) (*ItemsFile, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read items file %s: %w", path, err)
	}

	items, err := ParseItems(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}

// ParseItems decodes and validates an items document
func ParseItems(data []byte) (*ItemsFile, error) {
	var f ItemsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse items YAML: %w", err)
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks every field of the items file
func (f *ItemsFile) Validate() error {
	for i, it := range f.Items {
		if strings.TrimSpace(it.Image) == "" {
			return fmt.Errorf("%w: item %d: image is required", ErrInvalidItems, i)
		}
		if strings.TrimSpace(it.Label) == "" {
			return fmt.Errorf("%w: item %d: label is required", ErrInvalidItems, i)
		}
	}

	if f.ScrollEase != nil && (*f.ScrollEase <= 0 || *f.ScrollEase > 1) {
		return fmt.Errorf("%w: scrollEase must be in (0,1], got %v", ErrInvalidItems, *f.ScrollEase)
	}
	if f.ScrollSpeed != nil && *f.ScrollSpeed <= 0 {
		return fmt.Errorf("%w: scrollSpeed must be positive, got %v", ErrInvalidItems, *f.ScrollSpeed)
	}
	if f.BorderRadius != nil && (*f.BorderRadius < 0 || *f.BorderRadius > 0.5) {
		return fmt.Errorf("%w: borderRadius must be in [0,0.5], got %v", ErrInvalidItems, *f.BorderRadius)
	}
	if f.TextColor != "" {
		if _, err := ParseHexColor(f.TextColor); err != nil {
			return fmt.Errorf("%w: textColor: %v", ErrInvalidItems, err)
		}
	}
	return nil
}

// ParseHexColor parses "#rgb" or "#rrggbb" into an opaque color
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("color %q: want #rgb or #rrggbb", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
