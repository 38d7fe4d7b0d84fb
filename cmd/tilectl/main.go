// Package main is the headless tileset tool: it loads a tileset file,
// builds and stitches the tiles, and can write the stitched result back out.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/dyfios/webverse-worldengine/internal/config"
	"github.com/dyfios/webverse-worldengine/internal/engine/mesh"
	"github.com/dyfios/webverse-worldengine/internal/logger"
	"github.com/dyfios/webverse-worldengine/internal/tileset"
	"github.com/dyfios/webverse-worldengine/internal/world"
	vmath "github.com/dyfios/webverse-worldengine/pkg/math"
)

var (
	flagTileset = flag.String("tileset", "", "Path to tileset YAML (required)")
	flagOut     = flag.String("out", "", "Write the stitched tileset to this path")
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile, true); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *flagTileset == "" {
		fmt.Fprintln(os.Stderr, "Usage: tilectl -tileset <file> [-out <file>]")
		os.Exit(2)
	}

	if err := run(cfg, *flagTileset, *flagOut); err != nil {
		logger.Error("tilectl failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, tilesetPath, outPath string) error {
	ts, err := tileset.Load(tilesetPath)
	if err != nil {
		return err
	}
	baseDir := filepath.Dir(tilesetPath)

	mgr := world.NewManager(cfg.Terrain.StitchTolerance)
	names := make([]string, 0, len(ts.Tiles))

	for idx, spec := range ts.Tiles {
		grid, err := spec.Grid(baseDir)
		if err != nil {
			return fmt.Errorf("tile %d (%s): %w", idx, spec.Name, err)
		}

		pos := vmath.Vec3{X: spec.Position[0], Y: spec.Position[1], Z: spec.Position[2]}
		surface := mesh.NewMemory(vmath.Vec3{X: spec.SpanX, Y: spec.HeightScale, Z: spec.SpanZ})

		stitch := spec.Stitch && cfg.Terrain.StitchOnCreate
		tile, err := mgr.CreateTile(surface, pos, spec.SpanX, spec.SpanZ, spec.HeightScale, grid, stitch)
		if err != nil {
			return fmt.Errorf("tile %d (%s): %w", idx, spec.Name, err)
		}
		names = append(names, spec.Name)

		logger.Info("tile built",
			zap.String("name", spec.Name),
			zap.Int("resolution", tile.Field().Resolution()),
			zap.Bool("stitch", stitch))
	}

	edges := mgr.StitchAll()
	logger.Info("stitching complete",
		zap.Int("tiles", mgr.Len()), zap.Int("edges", edges))

	if outPath != "" {
		out := &tileset.File{}
		for idx, tile := range mgr.Tiles() {
			out.Tiles = append(out.Tiles, tileset.Snapshot(names[idx], tile))
		}
		if err := out.Save(outPath); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}
		logger.Info("stitched tileset written", zap.String("path", outPath))
	}

	return nil
}
