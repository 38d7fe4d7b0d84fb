package terrain

import (
	"errors"
	"testing"

	vmath "github.com/dyfios/webverse-worldengine/pkg/math"
)

// recordMesh is an in-memory engine boundary for tests: it records the
// resolution switches and every sample write.
type recordMesh struct {
	size        vmath.Vec3
	resolution  int
	samples     map[[2]int]float32
	resolutions []int
	writes      int
}

func newRecordMesh(length, height, width float32) *recordMesh {
	return &recordMesh{
		size:    vmath.Vec3{X: length, Y: height, Z: width},
		samples: map[[2]int]float32{},
	}
}

func (m *recordMesh) SetGridResolution(n int) {
	m.resolution = n
	m.resolutions = append(m.resolutions, n)
	m.samples = map[[2]int]float32{}
}

func (m *recordMesh) WriteSample(i, j int, normalized float32) {
	m.samples[[2]int{i, j}] = normalized
	m.writes++
}

func (m *recordMesh) PhysicalSize() vmath.Vec3 { return m.size }

func mustCreate(t *testing.T, mesh EngineMesh, pos vmath.Vec3, span float32, heights *Grid, stitching bool, neighbors []*Tile) *Tile {
	t.Helper()
	tile, err := Create(mesh, pos, span, span, 50, heights, stitching, neighbors)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	return tile
}

func TestCreatePushesFullGrid(t *testing.T) {
	mesh := newRecordMesh(10, 50, 10)
	tile := mustCreate(t, mesh, vmath.Vec3{}, 10, constantGrid(2, 25), false, nil)

	if mesh.resolution != 33 {
		t.Fatalf("engine resolution = %d, want 33", mesh.resolution)
	}
	if len(mesh.samples) != 33*33 {
		t.Fatalf("engine received %d samples, want %d", len(mesh.samples), 33*33)
	}
	// Normalized sample at an exact-mapping corner: 25 / 50.
	if got := mesh.samples[[2]int{0, 0}]; got != 0.5 {
		t.Errorf("engine sample (0,0) = %v, want 0.5", got)
	}
	if tile.Field().HeightAt(0, 0) != 25 {
		t.Errorf("authoritative height = %v, want 25", tile.Field().HeightAt(0, 0))
	}
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	mesh := newRecordMesh(10, 50, 10)
	_, err := Create(mesh, vmath.Vec3{}, 0.5, 10, 50, constantGrid(2, 0), false, nil)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("err = %v, want ErrInvalidArgument", err)
	}
	if mesh.writes != 0 {
		t.Errorf("engine received %d writes from failed create, want 0", mesh.writes)
	}
}

func TestSetHeightPushesSingleSample(t *testing.T) {
	mesh := newRecordMesh(10, 50, 10)
	tile := mustCreate(t, mesh, vmath.Vec3{}, 10, constantGrid(2, 0), false, nil)

	before := mesh.writes
	tile.SetHeight(5, 6, 10)

	if mesh.writes != before+1 {
		t.Errorf("SetHeight produced %d engine writes, want 1", mesh.writes-before)
	}
	if got := mesh.samples[[2]int{5, 6}]; got != 0.2 {
		t.Errorf("engine sample (5,6) = %v, want 0.2", got)
	}
	if got := tile.HeightAt(5, 6); got != 10 {
		t.Errorf("HeightAt(5,6) = %v, want 10", got)
	}
}

func TestSetHeightOutOfRangeIsNoOp(t *testing.T) {
	mesh := newRecordMesh(10, 50, 10)
	tile := mustCreate(t, mesh, vmath.Vec3{}, 10, constantGrid(2, 0), false, nil)

	before := mesh.writes
	tile.SetHeight(40, 40, 5)
	tile.SetHeight(-1, 0, 5)

	if mesh.writes != before {
		t.Errorf("out-of-range SetHeight reached the engine")
	}
	if got := tile.HeightAt(40, 40); got != 0 {
		t.Errorf("out-of-range HeightAt = %v, want sentinel 0", got)
	}
}

func TestSetHeightsReplacesGrid(t *testing.T) {
	mesh := newRecordMesh(10, 50, 10)
	tile := mustCreate(t, mesh, vmath.Vec3{}, 10, constantGrid(2, 0), false, nil)

	if err := tile.SetHeights(constantGrid(3, 30), 100, 100, 60); err != nil {
		t.Fatalf("SetHeights failed: %v", err)
	}
	if tile.Field().Resolution() != 129 {
		t.Errorf("resolution = %d after SetHeights, want 129", tile.Field().Resolution())
	}
	if mesh.resolution != 129 {
		t.Errorf("engine resolution = %d, want 129", mesh.resolution)
	}
	if tile.Field().HeightScale() != 60 {
		t.Errorf("height scale = %v, want 60", tile.Field().HeightScale())
	}
}

func TestSetHeightsValidationLeavesStateUntouched(t *testing.T) {
	mesh := newRecordMesh(10, 50, 10)
	tile := mustCreate(t, mesh, vmath.Vec3{}, 10, constantGrid(2, 25), false, nil)

	err := tile.SetHeights(constantGrid(2, 99), 10, 10, 0.1)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("err = %v, want ErrInvalidArgument", err)
	}
	if got := tile.HeightAt(0, 0); got != 25 {
		t.Errorf("failed SetHeights mutated the field: HeightAt(0,0) = %v", got)
	}
}

func TestStitchingFlag(t *testing.T) {
	mesh := newRecordMesh(10, 50, 10)
	tile := mustCreate(t, mesh, vmath.Vec3{}, 10, constantGrid(2, 0), false, nil)

	if tile.StitchingEnabled() {
		t.Error("stitching enabled on a tile created without it")
	}
	tile.SetStitchingEnabled(true)
	if !tile.StitchingEnabled() {
		t.Error("SetStitchingEnabled(true) not reflected")
	}
}

func TestStitchWithAdjacentUpdatesOwnEdgeOnly(t *testing.T) {
	meshA := newRecordMesh(10, 50, 10)
	meshB := newRecordMesh(10, 50, 10)

	a := mustCreate(t, meshA, vmath.Vec3{}, 10, constantGrid(2, 0), false, nil)
	b := mustCreate(t, meshB, vmath.Vec3{X: 10}, 10, constantGrid(2, 40), false, nil)

	stitched := a.StitchWithAdjacent([]*Tile{b}, DefaultTolerance)
	if stitched != 1 {
		t.Fatalf("stitched %d edges, want 1", stitched)
	}

	// a's right column averaged with b's left column.
	if got := a.HeightAt(32, 16); got != 20 {
		t.Errorf("a edge = %v after stitch, want 20", got)
	}
	if got := b.HeightAt(0, 16); got != 40 {
		t.Errorf("b edge mutated by a's stitch: %v", got)
	}

	// The modified edge was re-pushed to a's engine mesh in normalized form.
	if got := meshA.samples[[2]int{32, 16}]; got != 0.4 {
		t.Errorf("engine edge sample = %v, want 0.4", got)
	}
}

func TestCreateWithStitchingStitchesImmediately(t *testing.T) {
	meshA := newRecordMesh(10, 50, 10)
	meshB := newRecordMesh(10, 50, 10)

	a := mustCreate(t, meshA, vmath.Vec3{}, 10, constantGrid(2, 0), false, nil)
	b := mustCreate(t, meshB, vmath.Vec3{X: 10}, 10, constantGrid(2, 40), true, []*Tile{a})

	// b stitched its own left edge against a on creation.
	if got := b.HeightAt(0, 8); got != 20 {
		t.Errorf("b edge = %v after stitching create, want 20", got)
	}
	// a, created without stitching, is untouched.
	if got := a.HeightAt(32, 8); got != 0 {
		t.Errorf("a mutated by b's creation: %v", got)
	}
}
