package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Render layers
const (
	LayerGallery ecs.LayerID = iota
	LayerOverlay
)

// GalleryConfig contains the default gallery options
type GalleryConfig struct {
	Bend             float64    // Signed arc strength (0 = flat row)
	TextColor        color.RGBA // Label color
	BorderRadius     float64    // Corner rounding as a fraction of the plane (0.0-0.5)
	ScrollSpeed      float64    // Multiplier on wheel/drag sensitivity
	ScrollEase       float64    // Damping factor per frame (0.0-1.0]
	PlaceholderColor color.RGBA // Plane color until the image arrives
	LoadConcurrency  int        // Max parallel image loads
}

// CameraConfig contains the perspective camera looking at the gallery plane
type CameraConfig struct {
	FOV      float64 // Vertical field of view in degrees
	Distance float64 // Distance from the z=0 plane in world units
}

// MediaConfig contains per-item sizing, all relative to ReferenceHeight
type MediaConfig struct {
	ReferenceHeight float64 // Screen height at which planes have their reference size
	PlaneWidth      float64 // Reference plane width in pixels
	PlaneHeight     float64 // Reference plane height in pixels
	Padding         float64 // Gap between planes in world units

	TitleScale float64 // Title height as a fraction of the plane height
	TitleGap   float64 // World units between plane and title

	TimeStep    float64       // Wave time advance per frame
	TimeSpread  float64       // Wave phase spread between items
	FadeSeconds float32       // Texture fade-in duration
	LoadTimeout time.Duration // Per-image load timeout
}

// ScrollConfig contains input-to-scroll translation values
type ScrollConfig struct {
	WheelFactor   float64       // Target change per wheel event, times ScrollSpeed
	DragFactor    float64       // Target change per dragged pixel, times ScrollSpeed
	SnapDebounce  time.Duration // Quiet time after input before snapping
	DragThreshold float64       // Pixels of movement that turn a press into a drag
}

// LabelConfig contains label rasterization values
type LabelConfig struct {
	FontSize   float64 // Points at 72 DPI
	LineHeight float64 // Line height as a multiple of the font size
	Padding    int     // Pixels added around the measured text
}

// DebugConfig contains development toggles
type DebugConfig struct {
	ShowFPS    bool
	ShowBounds bool
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	TPS    int
	Title  string
}

// Global configuration instances
var C *Config
var Gallery GalleryConfig
var Camera CameraConfig
var Media MediaConfig
var Scroll ScrollConfig
var Label LabelConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		TPS:    60,
		Title:  "Orbit",
	}

	Gallery = GalleryConfig{
		Bend:             3,
		TextColor:        color.RGBA{255, 255, 255, 255},
		BorderRadius:     0.05,
		ScrollSpeed:      2,
		ScrollEase:       0.05,
		PlaceholderColor: color.RGBA{31, 41, 55, 255},
		LoadConcurrency:  4,
	}

	Camera = CameraConfig{
		FOV:      45,
		Distance: 20,
	}

	Media = MediaConfig{
		ReferenceHeight: 1500,
		PlaneWidth:      600,
		PlaneHeight:     700,
		Padding:         1.5,

		TitleScale: 0.2,
		TitleGap:   0.1,

		TimeStep:    0.04,
		TimeSpread:  61.8,
		FadeSeconds: 0.35,
		LoadTimeout: 15 * time.Second,
	}

	Scroll = ScrollConfig{
		WheelFactor:   0.2,
		DragFactor:    0.025,
		SnapDebounce:  200 * time.Millisecond,
		DragThreshold: 5,
	}

	Label = LabelConfig{
		FontSize:   24,
		LineHeight: 1.2,
		Padding:    40,
	}

	Debug = DebugConfig{
		ShowFPS:    false,
		ShowBounds: false,
	}
}
