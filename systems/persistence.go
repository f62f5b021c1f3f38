package systems

import (
	"encoding/json"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/orbit-social/orbit/components"
	cfg "github.com/orbit-social/orbit/config"
	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Fullscreen      bool    `json:"fullscreen"`
	ResolutionIndex int     `json:"resolutionIndex"`
	Bend            float64 `json:"bend"`
	ScrollSpeed     float64 `json:"scrollSpeed"`
}

// settingsStore is the part of *gdata.Manager persistence uses
type settingsStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var (
	store  settingsStore
	logger = zap.NewNop()
)

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence(l *zap.Logger) error {
	if l != nil {
		logger = l.Named("persistence")
	}

	m, err := gdata.Open(gdata.Config{
		AppName: cfg.SettingsMenu.StorageAppName,
	})
	if err != nil {
		logger.Warn("could not initialize persistence", zap.Error(err))
		return err
	}
	store = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil without an error when
// nothing was saved yet or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(cfg.SettingsMenu.StorageKey)
	if err != nil {
		logger.Warn("could not load settings", zap.Error(err))
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		logger.Warn("could not parse saved settings", zap.Error(err))
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		logger.Warn("could not serialize settings", zap.Error(err))
		return err
	}

	if err := store.SaveItem(cfg.SettingsMenu.StorageKey, data); err != nil {
		logger.Warn("could not save settings", zap.Error(err))
		return err
	}
	return nil
}

// SaveCurrentSettings saves the current settings from the Settings component
func SaveCurrentSettings(s *components.SettingsData) {
	_ = SaveSettings(&SavedSettings{
		Fullscreen:      s.Fullscreen,
		ResolutionIndex: s.ResolutionIndex,
		Bend:            s.Bend,
		ScrollSpeed:     s.ScrollSpeed,
	})
}

func applySaved(s *components.SettingsData, saved *SavedSettings) {
	s.Fullscreen = saved.Fullscreen
	if saved.ResolutionIndex >= 0 && saved.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
		s.ResolutionIndex = saved.ResolutionIndex
	}
	s.Bend = saved.Bend
	if saved.ScrollSpeed > 0 {
		s.ScrollSpeed = saved.ScrollSpeed
	}
}

// ApplySavedSettingsGlobal applies window settings during startup, before scenes are created
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	ebiten.SetFullscreen(saved.Fullscreen)

	// Apply resolution (only if not fullscreen)
	if !saved.Fullscreen && saved.ResolutionIndex >= 0 && saved.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
		res := cfg.SettingsMenu.Resolutions[saved.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
}
