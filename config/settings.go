package config

// Resolution represents a window size option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// SettingsMenuConfig contains the persisted app settings options
type SettingsMenuConfig struct {
	Resolutions            []Resolution
	DefaultResolutionIndex int
	StorageAppName         string
	StorageKey             string
}

// SettingsMenu is the global settings configuration
var SettingsMenu SettingsMenuConfig

func init() {
	SettingsMenu = SettingsMenuConfig{
		Resolutions: []Resolution{
			{Width: 1280, Height: 720, Label: "1280 x 720"},
			{Width: 1600, Height: 900, Label: "1600 x 900"},
			{Width: 1920, Height: 1080, Label: "1920 x 1080"},
			{Width: 2560, Height: 1440, Label: "2560 x 1440"},
		},
		DefaultResolutionIndex: 0,
		StorageAppName:         "orbit",
		StorageKey:             "settings",
	}
}
