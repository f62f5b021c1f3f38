package assets

import (
	"embed"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// MediaShader draws a gallery plane with rounded corners and the surface ripple
	MediaShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	if MediaShader != nil {
		return nil
	}

	mediaSrc, err := shaderFS.ReadFile("shaders/media.kage")
	if err != nil {
		return err
	}
	MediaShader, err = ebiten.NewShader(mediaSrc)
	if err != nil {
		return err
	}

	return nil
}
