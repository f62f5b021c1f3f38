package fonts

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular      FontName = "regular"
	RegularSmall FontName = "regular-small"
	Bold         FontName = "bold"
	BoldLabel    FontName = "bold-label"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	mu    sync.RWMutex
	fonts = map[FontName]font.Face{}

	defaultsOnce sync.Once
)

// LoadDefaults registers the embedded Go fonts at the sizes the app uses
func LoadDefaults(labelSize float64) {
	defaultsOnce.Do(func() {
		MustLoadFontWithSize(Regular, goregular.TTF, 16)
		MustLoadFontWithSize(RegularSmall, goregular.TTF, 12)
		MustLoadFontWithSize(Bold, gobold.TTF, 20)
		MustLoadFontWithSize(BoldLabel, gobold.TTF, labelSize)
	})
}

func LoadFont(name FontName, ttf []byte) error {
	return LoadFontWithSize(name, ttf, 10)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}

	mu.Lock()
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{
		Size:    size,
		Hinting: font.HintingFull,
	})
	mu.Unlock()
	return nil
}

// MustLoadFontWithSize is LoadFontWithSize for fonts compiled into the binary
func MustLoadFontWithSize(name FontName, ttf []byte, size float64) {
	if err := LoadFontWithSize(name, ttf, size); err != nil {
		panic(err)
	}
}

func getFont(name FontName) font.Face {
	mu.RLock()
	f, ok := fonts[name]
	mu.RUnlock()
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
