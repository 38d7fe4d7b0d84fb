package terrain

import "testing"

// fieldWithEdge builds a field at resolution n, constant base height, with
// the given column overwritten.
func fieldWithEdge(t *testing.T, n int, base float32, col int, edge float32) *HeightField {
	t.Helper()
	f, err := Resample(constantGrid(n, base), float32(n), float32(n), 100)
	if err != nil {
		t.Fatalf("Resample failed: %v", err)
	}
	if f.Resolution() != n {
		t.Fatalf("resolution = %d, want %d", f.Resolution(), n)
	}
	for j := 0; j < n; j++ {
		f.SetHeight(col, j, edge)
	}
	return f
}

func TestStitchIdempotentOnEqualEdges(t *testing.T) {
	a, err := Resample(constantGrid(33, 12), 33, 33, 100)
	if err != nil {
		t.Fatalf("Resample failed: %v", err)
	}
	b, err := Resample(constantGrid(33, 12), 33, 33, 100)
	if err != nil {
		t.Fatalf("Resample failed: %v", err)
	}

	Stitch(a, b, AxisX, DirPositive)

	for j := 0; j < 33; j++ {
		if got := a.HeightAt(32, j); got != 12 {
			t.Fatalf("equal-edge stitch changed a[32][%d] to %v", j, got)
		}
	}
}

func TestStitchAveragesFacingEdges(t *testing.T) {
	// a's right column at 10, b's left column at 30: stitch moves a to 20.
	a := fieldWithEdge(t, 33, 10, 32, 10)
	b := fieldWithEdge(t, 33, 30, 0, 30)

	Stitch(a, b, AxisX, DirPositive)

	for j := 0; j < 33; j++ {
		if got := a.HeightAt(32, j); got != 20 {
			t.Errorf("a[32][%d] = %v after stitch, want 20", j, got)
		}
	}
	// Interior untouched.
	if got := a.HeightAt(16, 16); got != 10 {
		t.Errorf("interior a[16][16] = %v, want 10", got)
	}
}

func TestStitchNeighborNeverMutated(t *testing.T) {
	a := fieldWithEdge(t, 33, 10, 32, 10)
	b := fieldWithEdge(t, 33, 30, 0, 30)

	Stitch(a, b, AxisX, DirPositive)

	for j := 0; j < 33; j++ {
		if got := b.HeightAt(0, j); got != 30 {
			t.Fatalf("neighbor edge b[0][%d] mutated to %v", j, got)
		}
	}
}

func TestStitchNegativeDirectionAndZAxis(t *testing.T) {
	a := fieldWithEdge(t, 33, 0, 0, 4)
	b := fieldWithEdge(t, 33, 8, 32, 8)

	// a's left column against b's right column.
	Stitch(a, b, AxisX, DirNegative)
	for j := 0; j < 33; j++ {
		if got := a.HeightAt(0, j); got != 6 {
			t.Fatalf("a[0][%d] = %v, want 6", j, got)
		}
	}

	// Z axis: a's back row against c's front row.
	c, err := Resample(constantGrid(33, 10), 33, 33, 100)
	if err != nil {
		t.Fatalf("Resample failed: %v", err)
	}
	d, err := Resample(constantGrid(33, 0), 33, 33, 100)
	if err != nil {
		t.Fatalf("Resample failed: %v", err)
	}
	Stitch(c, d, AxisZ, DirNegative)
	for i := 0; i < 33; i++ {
		if got := c.HeightAt(i, 0); got != 5 {
			t.Fatalf("c[%d][0] = %v, want 5", i, got)
		}
	}
}

func TestStitchMixedResolutionsConverges(t *testing.T) {
	// Tile a at 33, tile b at 65, adjacent on a's +X edge. Each one-sided
	// pass updates only the caller's grid: after stitching both ways the
	// facing edges converge toward each other without being forced equal.
	a := fieldWithEdge(t, 33, 0, 32, 0)
	b := fieldWithEdge(t, 65, 40, 0, 40)

	gapBefore := abs(a.HeightAt(32, 0) - b.HeightAt(0, 0))

	Stitch(a, b, AxisX, DirPositive)

	// a moved halfway toward b's edge; the remapping doubles indices.
	for k := 0; k < 33; k++ {
		if got := a.HeightAt(32, k); got != 20 {
			t.Fatalf("a[32][%d] = %v after first pass, want 20", k, got)
		}
	}
	// b untouched by a's pass.
	if got := b.HeightAt(0, 0); got != 40 {
		t.Fatalf("b edge mutated by a's stitch: %v", got)
	}

	Stitch(b, a, AxisX, DirNegative)

	// b's pass reads a's already-stitched edge. Edges end up closer than
	// before but not equal, since each pass rewrites one side only.
	gapAfter := abs(a.HeightAt(32, 0) - b.HeightAt(0, 0))
	if gapAfter >= gapBefore {
		t.Errorf("edges did not converge: gap %v -> %v", gapBefore, gapAfter)
	}
	if a.HeightAt(32, 0) == b.HeightAt(0, 0) {
		t.Errorf("edges forced equal after one pass each; stitching must stay one-sided")
	}
}

func TestStitchIndexRemapping(t *testing.T) {
	// Neighbor at double resolution: self index k reads neighbor index 2k.
	a := fieldWithEdge(t, 33, 0, 32, 0)
	b, err := Resample(constantGrid(65, 0), 65, 65, 100)
	if err != nil {
		t.Fatalf("Resample failed: %v", err)
	}
	for j := 0; j < 65; j++ {
		b.SetHeight(0, j, float32(j))
	}

	Stitch(a, b, AxisX, DirPositive)

	for k := 0; k < 33; k++ {
		want := float32(k*64/32) / 2 // (0 + b[0][2k]) / 2
		if got := a.HeightAt(32, k); got != want {
			t.Errorf("a[32][%d] = %v, want %v", k, got, want)
		}
	}
}
