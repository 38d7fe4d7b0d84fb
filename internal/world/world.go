// Package world manages the set of terrain tiles making up a loaded region.
// It is the explicit registry stitching candidates come from: tile lookup is
// dependency-injected rather than a process-wide scan.
package world

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dyfios/webverse-worldengine/internal/logger"
	"github.com/dyfios/webverse-worldengine/internal/terrain"
	vmath "github.com/dyfios/webverse-worldengine/pkg/math"
)

// Manager owns the tiles of one world region.
//
// Manager is single-threaded like the tiles it holds; hosts driving it from
// multiple goroutines must synchronize externally.
type Manager struct {
	tiles []*terrain.Tile
	byID  map[uuid.UUID]*terrain.Tile

	tolerance float32
}

// NewManager creates an empty registry using the given adjacency tolerance.
func NewManager(tolerance float32) *Manager {
	if tolerance <= 0 {
		tolerance = terrain.DefaultTolerance
	}
	return &Manager{
		byID:      map[uuid.UUID]*terrain.Tile{},
		tolerance: tolerance,
	}
}

// CreateTile builds a tile from caller-supplied heights and registers it.
// When stitching is enabled the new tile is stitched against the tiles
// already registered.
func (m *Manager) CreateTile(mesh terrain.EngineMesh, position vmath.Vec3,
	spanX, spanZ, heightScale float32, heights *terrain.Grid, stitching bool) (*terrain.Tile, error) {

	tile, err := terrain.Create(mesh, position, spanX, spanZ, heightScale, heights, stitching, m.tiles)
	if err != nil {
		return nil, fmt.Errorf("creating tile at %v: %w", position, err)
	}

	m.tiles = append(m.tiles, tile)
	m.byID[tile.ID()] = tile
	return tile, nil
}

// Get returns the tile with the given ID, or nil.
func (m *Manager) Get(id uuid.UUID) *terrain.Tile {
	return m.byID[id]
}

// Tiles returns the registered tiles in creation order. The slice is shared;
// callers must not modify it.
func (m *Manager) Tiles() []*terrain.Tile {
	return m.tiles
}

// Len returns the number of registered tiles.
func (m *Manager) Len() int {
	return len(m.tiles)
}

// Remove unregisters a tile. Neighbors keep their already-stitched edges.
func (m *Manager) Remove(id uuid.UUID) bool {
	if _, ok := m.byID[id]; !ok {
		return false
	}
	delete(m.byID, id)
	for idx, tile := range m.tiles {
		if tile.ID() == id {
			m.tiles = append(m.tiles[:idx], m.tiles[idx+1:]...)
			break
		}
	}
	return true
}

// StitchAll runs a stitching pass over every tile with stitching enabled.
// Stitching is one-sided per tile, so one pass over all tiles is what makes
// both sides of each shared edge consistent. Returns the total number of
// edges stitched.
func (m *Manager) StitchAll() int {
	total := 0
	for idx, tile := range m.tiles {
		if !tile.StitchingEnabled() {
			continue
		}
		others := make([]*terrain.Tile, 0, len(m.tiles)-1)
		others = append(others, m.tiles[:idx]...)
		others = append(others, m.tiles[idx+1:]...)
		total += tile.StitchWithAdjacent(others, m.tolerance)
	}

	logger.Debug("stitch pass complete",
		zap.Int("tiles", len(m.tiles)), zap.Int("edges", total))
	return total
}
