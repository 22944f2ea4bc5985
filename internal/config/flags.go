package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging and the FPS overlay")
	flagVariant     = flag.String("variant", "", "Scene variant: solar, earth or rooms")
	flagControls    = flag.String("controls", "", "Camera controls: orbit or firstperson")
	flagTimeScaled  = flag.Bool("time-scaled", false, "Spin bodies by elapsed time")
	flagTextures    = flag.String("textures", "", "Texture directory")
	flagNoPanel     = flag.Bool("no-panel", false, "Hide the debug panel")
	flagWidth       = flag.Int("width", 0, "Window width")
	flagHeight      = flag.Int("height", 0, "Window height")
	flagScreenshots = flag.String("screenshots", "", "Screenshot output directory")
	flagWriteConfig = flag.String("write-config", "", "Write the effective config to this path and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// WriteConfigPath returns the --write-config destination, or "" when the
// viewer should run normally.
func WriteConfigPath() string {
	return *flagWriteConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Debug.ShowFPS = true
	}
	if *flagVariant != "" {
		cfg.Scene.Variant = *flagVariant
	}
	if *flagControls != "" {
		cfg.Scene.Controls = *flagControls
	}
	if *flagTimeScaled {
		cfg.Scene.TimeScaledRotation = true
	}
	if *flagTextures != "" {
		cfg.Scene.TextureDir = *flagTextures
	}
	if *flagNoPanel {
		cfg.Debug.Panel = false
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagScreenshots != "" {
		cfg.Debug.ScreenshotDir = *flagScreenshots
	}
}
