package terrain

// Axis identifies a horizontal world axis.
type Axis int

// Horizontal axes.
const (
	AxisX Axis = iota
	AxisZ
)

func (a Axis) String() string {
	if a == AxisX {
		return "X"
	}
	return "Z"
}

// Direction identifies the side of a tile along an axis.
type Direction int

// Directions along an axis.
const (
	DirPositive Direction = iota
	DirNegative
)

func (d Direction) String() string {
	if d == DirPositive {
		return "positive"
	}
	return "negative"
}

// EdgeView is the read-only access Stitch takes on the neighbor's field.
// A *HeightField satisfies it.
type EdgeView interface {
	Resolution() int
	HeightAt(i, j int) float32
}

// Stitch averages one edge of self with the facing edge of a neighbor,
// mutating self only. Differing resolutions are handled by integer ratio
// remapping of edge indices.
//
// Stitching is one-sided: each tile owns and rewrites only its own grid.
// Callers wanting a seamless pair invoke Stitch once from each tile's
// perspective; orchestrating a whole grid of tiles means calling it on every
// tile, not one side of each pair.
func Stitch(self *HeightField, neighbor EdgeView, axis Axis, dir Direction) {
	nSelf := self.Resolution()
	nNb := neighbor.Resolution()

	edgeLen := nSelf
	if nNb < edgeLen {
		edgeLen = nNb
	}

	for k := 0; k < edgeLen; k++ {
		// Length-1 edges have nothing to remap; guard the divide.
		nbIdx := 0
		if nSelf > 1 {
			nbIdx = k * (nNb - 1) / (nSelf - 1)
		}

		si, sj := edgeCell(nSelf, axis, dir, k)
		ni, nj := edgeCell(nNb, axis, opposite(dir), nbIdx)

		avg := (self.HeightAt(si, sj) + neighbor.HeightAt(ni, nj)) / 2
		self.SetHeight(si, sj, avg)
	}
}

// edgeCell maps an index along an edge to grid coordinates. The positive X
// edge is the last column, the positive Z edge the last row; negative edges
// are their index-0 counterparts.
func edgeCell(n int, axis Axis, dir Direction, k int) (i, j int) {
	fixed := 0
	if dir == DirPositive {
		fixed = n - 1
	}
	if axis == AxisX {
		return fixed, k
	}
	return k, fixed
}

func opposite(d Direction) Direction {
	if d == DirPositive {
		return DirNegative
	}
	return DirPositive
}
