// Package config handles tool configuration loading and management.
package config

// Config holds all tool settings.
type Config struct {
	Terrain TerrainConfig `yaml:"terrain"`
	Viewer  ViewerConfig  `yaml:"viewer"`
	Logging LoggingConfig `yaml:"logging"`
}

// TerrainConfig holds defaults for tile creation and stitching.
type TerrainConfig struct {
	DefaultHeightScale float32 `yaml:"default_height_scale"`
	StitchTolerance    float32 `yaml:"stitch_tolerance"`
	StitchOnCreate     bool    `yaml:"stitch_on_create"`
}

// ViewerConfig holds display settings for the tile viewer.
type ViewerConfig struct {
	Width     int  `yaml:"width"`
	Height    int  `yaml:"height"`
	VSync     bool `yaml:"vsync"`
	Wireframe bool `yaml:"wireframe"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Terrain: TerrainConfig{
			DefaultHeightScale: 50,
			StitchTolerance:    0.1,
			StitchOnCreate:     true,
		},
		Viewer: ViewerConfig{
			Width:     1280,
			Height:    720,
			VSync:     true,
			Wireframe: false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
