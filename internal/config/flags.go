package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagTolerance = flag.Float64("tolerance", 0, "Adjacency tolerance override (world units)")
	flagNoStitch  = flag.Bool("no-stitch", false, "Disable stitching on tile creation")
	flagWireframe = flag.Bool("wireframe", false, "Render tiles as wireframe in the viewer")
	flagWidth     = flag.Int("width", 0, "Viewer window width")
	flagHeight    = flag.Int("height", 0, "Viewer window height")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagTolerance > 0 {
		cfg.Terrain.StitchTolerance = float32(*flagTolerance)
	}
	if *flagNoStitch {
		cfg.Terrain.StitchOnCreate = false
	}
	if *flagWireframe {
		cfg.Viewer.Wireframe = true
	}
	if *flagWidth > 0 {
		cfg.Viewer.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Viewer.Height = *flagHeight
	}
}
