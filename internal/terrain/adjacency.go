package terrain

import (
	vmath "github.com/dyfios/webverse-worldengine/pkg/math"
)

// Geometry is a read-only view of a tile's world-space footprint, supplied
// by the engine binding: origin at the minimum corner plus physical size
// (length, height, width).
type Geometry struct {
	Position vmath.Vec3
	Size     vmath.Vec3
}

// Center returns the bounds center of the footprint.
func (g Geometry) Center() vmath.Vec3 {
	return g.Position.Add(g.Size.Scale(0.5))
}

// Valid reports whether the footprint has positive horizontal extent.
func (g Geometry) Valid() bool {
	return g.Size.X > 0 && g.Size.Z > 0
}

// Adjacency describes one neighbor found beside a tile: the candidate's
// index in the scanned slice plus which edge of the tile faces it.
type Adjacency struct {
	Index     int
	Axis      Axis
	Direction Direction
}

// DefaultTolerance is the allowed deviation between measured and expected
// center-to-center distance when classifying tiles as adjacent.
const DefaultTolerance = 0.1

// FindAdjacent scans candidates for tiles whose footprints sit immediately
// beside tile, within tolerance. Adjacency is a center-distance heuristic:
// two tiles are neighbors when the distance between their bounds centers
// matches half the summed sizes on either horizontal axis. This accepts
// occasional false positives for diagonal placements whose center distance
// happens to match, and misses tiles separated by gaps wider than the
// tolerance; both are accepted behavior, not defects.
//
// Results preserve candidate order. The tile itself (zero center distance)
// and candidates without a valid footprint are skipped.
func FindAdjacent(tile Geometry, candidates []Geometry, tolerance float32) []Adjacency {
	var found []Adjacency
	center := tile.Center()

	for idx, cand := range candidates {
		if !cand.Valid() {
			continue
		}

		delta := cand.Center().Sub(center)
		dist := delta.Length()
		if dist == 0 {
			// The tile itself.
			continue
		}

		expectedX := (tile.Size.X + cand.Size.X) / 2
		expectedZ := (tile.Size.Z + cand.Size.Z) / 2

		if abs(dist-expectedX) > tolerance && abs(dist-expectedZ) > tolerance {
			continue
		}

		found = append(found, Adjacency{
			Index:     idx,
			Axis:      classifyAxis(delta),
			Direction: classifyDirection(delta),
		})
	}

	return found
}

// classifyAxis picks the stitch axis from the dominant horizontal component
// of the center delta.
func classifyAxis(delta vmath.Vec3) Axis {
	if abs(delta.X) >= abs(delta.Z) {
		return AxisX
	}
	return AxisZ
}

// classifyDirection picks the tile edge facing the neighbor from the sign of
// the dominant component.
func classifyDirection(delta vmath.Vec3) Direction {
	v := delta.X
	if classifyAxis(delta) == AxisZ {
		v = delta.Z
	}
	if v >= 0 {
		return DirPositive
	}
	return DirNegative
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
