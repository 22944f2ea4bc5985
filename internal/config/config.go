// Package config handles viewer configuration loading and management.
package config

import "fmt"

// Scene variants.
const (
	VariantSolar = "solar"
	VariantEarth = "earth"
	VariantRooms = "rooms"
)

// Camera control schemes.
const (
	ControlsOrbit       = "orbit"
	ControlsFirstPerson = "firstperson"
)

// Config holds all viewer settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Scene   SceneConfig   `yaml:"scene"`
	Debug   DebugConfig   `yaml:"debug"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// SceneConfig selects what is shown and how it animates.
type SceneConfig struct {
	Variant  string `yaml:"variant"`
	Controls string `yaml:"controls"`

	// TimeScaledRotation spins bodies by elapsed time instead of per tick.
	TimeScaledRotation bool `yaml:"time_scaled_rotation"`

	TextureDir     string `yaml:"texture_dir"`
	MaxTextureSize int    `yaml:"max_texture_size"` // longest edge after downscale, 0 keeps originals
}

// DebugConfig holds developer overlays.
type DebugConfig struct {
	Panel         bool   `yaml:"panel"`
	ShowFPS       bool   `yaml:"show_fps"`
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Orrery",
			Width:  1280,
			Height: 720,
		},
		Scene: SceneConfig{
			Variant:        VariantSolar,
			Controls:       ControlsOrbit,
			TextureDir:     "textures",
			MaxTextureSize: 2048,
		},
		Debug: DebugConfig{
			Panel:         true,
			ShowFPS:       false,
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports settings the viewer cannot start with.
func (c *Config) Validate() error {
	switch c.Scene.Variant {
	case VariantSolar, VariantEarth, VariantRooms:
	default:
		return fmt.Errorf("unknown scene variant %q", c.Scene.Variant)
	}
	switch c.Scene.Controls {
	case ControlsOrbit, ControlsFirstPerson:
	default:
		return fmt.Errorf("unknown controls %q", c.Scene.Controls)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	return nil
}
