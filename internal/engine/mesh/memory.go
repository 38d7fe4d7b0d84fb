package mesh

import (
	vmath "github.com/dyfios/webverse-worldengine/pkg/math"
)

// Memory is a CPU-only terrain surface for headless tools and tests. It
// stores the same normalized samples the GL surface would, without a GPU.
type Memory struct {
	size       vmath.Vec3
	resolution int
	normalized []float32
}

// NewMemory creates a surface with the given physical size.
func NewMemory(size vmath.Vec3) *Memory {
	return &Memory{size: size}
}

// SetGridResolution switches the surface to an n×n sample grid.
func (m *Memory) SetGridResolution(n int) {
	m.resolution = n
	m.normalized = make([]float32, n*n)
}

// WriteSample stores one normalized height, clamped to [0,1].
func (m *Memory) WriteSample(i, j int, v float32) {
	if i < 0 || j < 0 || i >= m.resolution || j >= m.resolution {
		return
	}
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	m.normalized[i*m.resolution+j] = v
}

// PhysicalSize returns the surface extent as (length, height, width).
func (m *Memory) PhysicalSize() vmath.Vec3 { return m.size }

// Resolution returns the current grid resolution.
func (m *Memory) Resolution() int { return m.resolution }

// Sample returns the stored normalized height at (i, j), or 0 out of range.
func (m *Memory) Sample(i, j int) float32 {
	if i < 0 || j < 0 || i >= m.resolution || j >= m.resolution {
		return 0
	}
	return m.normalized[i*m.resolution+j]
}
