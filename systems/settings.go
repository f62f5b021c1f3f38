package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/orbit-social/orbit/components"
	cfg "github.com/orbit-social/orbit/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings applies the fullscreen, resolution and bend actions and saves the result.
// Must run AFTER UpdateInput.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	settings.Changed = false
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionFullscreen).JustPressed {
		toggleFullscreen(settings)
	}
	if GetAction(input, cfg.ActionResolution).JustPressed {
		cycleResolution(settings, +1)
	}
	if GetAction(input, cfg.ActionFlipBend).JustPressed {
		settings.Bend = -settings.Bend
		settings.Changed = true
	}

	if settings.Changed {
		SaveCurrentSettings(settings)
	}
}

// toggleFullscreen toggles fullscreen mode
func toggleFullscreen(s *components.SettingsData) {
	s.Fullscreen = !s.Fullscreen
	s.Changed = true
	ebiten.SetFullscreen(s.Fullscreen)
}

// cycleResolution cycles through available resolutions
func cycleResolution(s *components.SettingsData, direction int) {
	numResolutions := len(cfg.SettingsMenu.Resolutions)
	if numResolutions == 0 {
		return
	}
	s.ResolutionIndex = (s.ResolutionIndex + direction + numResolutions) % numResolutions
	s.Changed = true

	// Window size only matters outside fullscreen
	if !s.Fullscreen {
		res := cfg.SettingsMenu.Resolutions[s.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
}

// GetOrCreateSettings returns the singleton Settings component, creating it from
// the saved settings or the defaults.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Settings))

		data := components.SettingsData{
			Fullscreen:      ebiten.IsFullscreen(),
			ResolutionIndex: cfg.SettingsMenu.DefaultResolutionIndex,
			Bend:            cfg.Gallery.Bend,
			ScrollSpeed:     cfg.Gallery.ScrollSpeed,
		}
		if saved, err := LoadSettings(); err == nil && saved != nil {
			applySaved(&data, saved)
		}
		components.Settings.SetValue(ent, data)
	}

	ent, _ := components.Settings.First(e.World)
	return components.Settings.Get(ent)
}
