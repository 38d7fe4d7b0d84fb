// Package tileset reads and writes tileset files: the YAML description of a
// world region's terrain tiles, with heights either inline or referenced as
// grayscale heightmap images (local paths or remote URLs).
package tileset

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dyfios/webverse-worldengine/internal/terrain"
)

// File is one tileset document.
type File struct {
	Tiles []Tile `yaml:"tiles"`
}

// Tile describes one terrain tile: placement, spans, vertical scale and the
// height source. Exactly one of Heights and Heightmap must be set.
type Tile struct {
	Name        string      `yaml:"name"`
	Position    [3]float32  `yaml:"position"`
	SpanX       float32     `yaml:"span_x"`
	SpanZ       float32     `yaml:"span_z"`
	HeightScale float32     `yaml:"height_scale"`
	Stitch      bool        `yaml:"stitch"`
	Heights     [][]float32 `yaml:"heights,omitempty"`
	Heightmap   string      `yaml:"heightmap,omitempty"`
	HeightRange [2]float32  `yaml:"height_range,omitempty"`
}

// Load reads and validates a tileset file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tileset %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing tileset %s: %w", path, err)
	}

	for idx := range f.Tiles {
		if err := f.Tiles[idx].validate(); err != nil {
			return nil, fmt.Errorf("tileset %s, tile %d (%s): %w", path, idx, f.Tiles[idx].Name, err)
		}
	}

	return &f, nil
}

// Save writes the tileset to path.
func (f *File) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (t *Tile) validate() error {
	if len(t.Heights) > 0 && t.Heightmap != "" {
		return fmt.Errorf("both inline heights and a heightmap reference set")
	}
	if len(t.Heights) == 0 && t.Heightmap == "" {
		return fmt.Errorf("no height source set")
	}
	if t.SpanX < 1 || t.SpanZ < 1 {
		return fmt.Errorf("spans must be >= 1, got %g x %g", t.SpanX, t.SpanZ)
	}
	if t.HeightScale < 1 {
		return fmt.Errorf("height scale must be >= 1, got %g", t.HeightScale)
	}
	if t.Heightmap != "" && t.HeightRange[1] <= t.HeightRange[0] {
		return fmt.Errorf("height_range must be ascending, got %v", t.HeightRange)
	}
	return nil
}

// Grid resolves the tile's height source into an input grid. Heightmap
// references are resolved relative to baseDir, or fetched when remote.
func (t *Tile) Grid(baseDir string) (*terrain.Grid, error) {
	if len(t.Heights) > 0 {
		return terrain.GridFromRows(t.Heights)
	}
	return loadHeightmap(t.Heightmap, baseDir, t.HeightRange[0], t.HeightRange[1])
}

// Snapshot captures a live tile back into its serialized form, with the
// resampled heights inlined at the tile's current resolution.
func Snapshot(name string, tile *terrain.Tile) Tile {
	geom := tile.Geometry()
	return Tile{
		Name:        name,
		Position:    [3]float32{geom.Position.X, geom.Position.Y, geom.Position.Z},
		SpanX:       geom.Size.X,
		SpanZ:       geom.Size.Z,
		HeightScale: tile.Field().HeightScale(),
		Stitch:      tile.StitchingEnabled(),
		Heights:     tile.Field().Rows(),
	}
}
