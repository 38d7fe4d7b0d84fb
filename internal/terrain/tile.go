package terrain

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dyfios/webverse-worldengine/internal/logger"
	vmath "github.com/dyfios/webverse-worldengine/pkg/math"
)

// EngineMesh is the boundary to the rendering engine's GPU-resident terrain
// surface. The engine stores normalized [0,1] samples at its own (possibly
// lossy) precision; the core only ever writes through this interface and
// never reads heights back from it.
type EngineMesh interface {
	// SetGridResolution switches the mesh to an N×N sample grid.
	SetGridResolution(n int)
	// WriteSample stores one normalized height at (i, j).
	WriteSample(i, j int, normalized float32)
	// PhysicalSize returns the mesh extent as (length, height, width).
	PhysicalSize() vmath.Vec3
}

// Tile composes a heightfield with its engine mesh and world placement.
// It is the facade callers go through: every mutation of the heightfield is
// mirrored to the engine mesh here.
//
// A Tile is not safe for concurrent use; hosts mutating tiles from multiple
// goroutines must synchronize externally.
type Tile struct {
	id        uuid.UUID
	position  vmath.Vec3
	mesh      EngineMesh
	field     *HeightField
	stitching bool
}

// Create builds a tile from caller-supplied heights: validates, resamples
// onto the canonical resolution for the requested spans, pushes the grid to
// the engine mesh, and, when stitching is enabled, immediately stitches
// against the given neighbors (best effort; tiles created later are not
// retroactively stitched unless StitchWithAdjacent is re-invoked).
func Create(mesh EngineMesh, position vmath.Vec3, spanX, spanZ, heightScale float32,
	heights *Grid, stitching bool, neighbors []*Tile) (*Tile, error) {

	field, err := Resample(heights, spanX, spanZ, heightScale)
	if err != nil {
		return nil, err
	}

	t := &Tile{
		id:        uuid.New(),
		position:  position,
		mesh:      mesh,
		field:     field,
		stitching: stitching,
	}
	t.pushAll()

	if stitching {
		t.StitchWithAdjacent(neighbors, DefaultTolerance)
	}

	logger.Debug("tile created",
		zap.String("id", t.id.String()),
		zap.Int("resolution", field.Resolution()),
		zap.Bool("stitching", stitching))

	return t, nil
}

// ID returns the tile's identity.
func (t *Tile) ID() uuid.UUID { return t.id }

// Field returns the tile's authoritative heightfield.
func (t *Tile) Field() *HeightField { return t.field }

// Geometry returns the tile's world-space footprint, with the physical size
// read back from the engine mesh.
func (t *Tile) Geometry() Geometry {
	return Geometry{Position: t.position, Size: t.mesh.PhysicalSize()}
}

// SetHeights replaces the tile's elevation data wholesale: resample onto the
// resolution for the new spans and re-push the full grid. On validation
// failure the previous field is left untouched.
func (t *Tile) SetHeights(heights *Grid, spanX, spanZ, heightScale float32) error {
	field, err := Resample(heights, spanX, spanZ, heightScale)
	if err != nil {
		return err
	}
	t.field = field
	t.pushAll()
	return nil
}

// HeightAt returns the absolute height at (i, j) from the authoritative
// field, never from the engine's lossy storage.
func (t *Tile) HeightAt(i, j int) float32 {
	return t.field.HeightAt(i, j)
}

// SetHeight writes a single cell and pushes its normalized value to the
// engine mesh. Out-of-range indices are a warned no-op.
func (t *Tile) SetHeight(i, j int, v float32) {
	if !t.field.SetHeight(i, j, v) {
		return
	}
	t.mesh.WriteSample(i, j, v/t.field.HeightScale())
}

// StitchingEnabled reports whether the tile participates in stitching.
func (t *Tile) StitchingEnabled() bool { return t.stitching }

// SetStitchingEnabled toggles the stitching flag. Turning it on does not
// re-stitch; call StitchWithAdjacent explicitly.
func (t *Tile) SetStitchingEnabled(enabled bool) { t.stitching = enabled }

// StitchWithAdjacent finds neighbors beside this tile and blends the shared
// edges into this tile's own grid, re-pushing each modified edge to the
// engine mesh. Only this tile is mutated; two-sided consistency comes from
// every tile in a set running its own pass. Returns the number of edges
// stitched.
func (t *Tile) StitchWithAdjacent(neighbors []*Tile, tolerance float32) int {
	if len(neighbors) == 0 {
		return 0
	}

	candidates := make([]Geometry, len(neighbors))
	for idx, nb := range neighbors {
		candidates[idx] = nb.Geometry()
	}

	adjacent := FindAdjacent(t.Geometry(), candidates, tolerance)
	for _, adj := range adjacent {
		Stitch(t.field, neighbors[adj.Index].field, adj.Axis, adj.Direction)
		t.pushEdge(adj.Axis, adj.Direction)
	}

	return len(adjacent)
}

// pushAll mirrors the whole field to the engine mesh.
func (t *Tile) pushAll() {
	n := t.field.Resolution()
	t.mesh.SetGridResolution(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			t.mesh.WriteSample(i, j, t.field.Normalized(i, j))
		}
	}
}

// pushEdge mirrors one edge row/column to the engine mesh.
func (t *Tile) pushEdge(axis Axis, dir Direction) {
	n := t.field.Resolution()
	for k := 0; k < n; k++ {
		i, j := edgeCell(n, axis, dir, k)
		t.mesh.WriteSample(i, j, t.field.Normalized(i, j))
	}
}
