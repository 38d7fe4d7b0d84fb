package world

import (
	"testing"

	"github.com/dyfios/webverse-worldengine/internal/terrain"
	vmath "github.com/dyfios/webverse-worldengine/pkg/math"
)

// flatMesh is a minimal engine boundary for registry tests.
type flatMesh struct {
	size    vmath.Vec3
	samples map[[2]int]float32
}

func newFlatMesh(span float32) *flatMesh {
	return &flatMesh{
		size:    vmath.Vec3{X: span, Y: 50, Z: span},
		samples: map[[2]int]float32{},
	}
}

func (m *flatMesh) SetGridResolution(n int) { m.samples = map[[2]int]float32{} }

func (m *flatMesh) WriteSample(i, j int, v float32) { m.samples[[2]int{i, j}] = v }

func (m *flatMesh) PhysicalSize() vmath.Vec3 { return m.size }

func grid(n int, v float32) *terrain.Grid {
	g := terrain.NewGrid(n, n)
	for x := 0; x < n; x++ {
		for z := 0; z < n; z++ {
			g.Set(x, z, v)
		}
	}
	return g
}

func addTile(t *testing.T, m *Manager, x, z float32, height float32, stitching bool) *terrain.Tile {
	t.Helper()
	tile, err := m.CreateTile(newFlatMesh(10), vmath.Vec3{X: x, Z: z}, 10, 10, 50, grid(2, height), stitching)
	if err != nil {
		t.Fatalf("CreateTile failed: %v", err)
	}
	return tile
}

func TestRegistryAddGetRemove(t *testing.T) {
	m := NewManager(0)

	a := addTile(t, m, 0, 0, 5, false)
	b := addTile(t, m, 10, 0, 5, false)

	if m.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m.Len())
	}
	if m.Get(a.ID()) != a {
		t.Error("Get(a.ID()) did not return a")
	}
	if !m.Remove(a.ID()) {
		t.Error("Remove(a.ID()) reported failure")
	}
	if m.Remove(a.ID()) {
		t.Error("second Remove reported success")
	}
	if m.Len() != 1 || m.Tiles()[0] != b {
		t.Error("registry state wrong after removal")
	}
}

func TestCreateTileStitchesAgainstRegistered(t *testing.T) {
	m := NewManager(0)

	addTile(t, m, 0, 0, 0, true)
	b := addTile(t, m, 10, 0, 40, true)

	// b saw a as a candidate on creation and averaged its left edge.
	if got := b.HeightAt(0, 10); got != 20 {
		t.Errorf("b edge = %v after creation, want 20", got)
	}
}

func TestStitchAllMakesSeamConsistent(t *testing.T) {
	m := NewManager(0)

	a := addTile(t, m, 0, 0, 0, true)
	b := addTile(t, m, 10, 0, 40, true)

	m.StitchAll()

	// After a full pass both edges have been rewritten once from their own
	// side; the edges converge on the shared seam.
	edgeA := a.HeightAt(32, 16)
	edgeB := b.HeightAt(0, 16)
	if edgeA == 0 || edgeB == 40 {
		t.Errorf("stitch pass left an edge untouched: a=%v b=%v", edgeA, edgeB)
	}
	if diff := edgeA - edgeB; diff > 40 || diff < -40 {
		t.Errorf("edges diverged after stitch pass: a=%v b=%v", edgeA, edgeB)
	}
}

func TestStitchAllCountsEdges(t *testing.T) {
	m := NewManager(0)

	// 2x2 block of tiles: every tile has two neighbors.
	addTile(t, m, 0, 0, 0, true)
	addTile(t, m, 10, 0, 10, true)
	addTile(t, m, 0, 10, 20, true)
	addTile(t, m, 10, 10, 30, true)

	if got := m.StitchAll(); got != 8 {
		t.Errorf("StitchAll() = %d edges, want 8", got)
	}
}

func TestStitchAllSkipsDisabledTiles(t *testing.T) {
	m := NewManager(0)

	a := addTile(t, m, 0, 0, 0, false)
	addTile(t, m, 10, 0, 40, false)

	if got := m.StitchAll(); got != 0 {
		t.Errorf("StitchAll() = %d with stitching disabled, want 0", got)
	}
	if got := a.HeightAt(32, 0); got != 0 {
		t.Errorf("disabled tile mutated: %v", got)
	}
}
