// Package mesh provides engine-side terrain surfaces: the GL-resident
// implementation the viewer renders, and an in-memory implementation for
// headless tools. Both store normalized [0,1] height samples and satisfy
// the terrain package's EngineMesh boundary.
package mesh

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	vmath "github.com/dyfios/webverse-worldengine/pkg/math"
)

// GL is a GPU-resident terrain surface for one tile.
//
// SetGridResolution and WriteSample only touch the CPU-side sample store;
// Upload pushes the rebuilt mesh to the GPU and must run on the thread
// owning the GL context.
type GL struct {
	origin vmath.Vec3
	size   vmath.Vec3

	resolution int
	normalized []float32
	dirty      bool

	vao, vbo, ebo uint32
	indexCount    int32
}

// NewGL creates a surface with the given world placement and physical size
// (length, height, width).
func NewGL(origin, size vmath.Vec3) *GL {
	return &GL{origin: origin, size: size}
}

// SetGridResolution switches the surface to an n×n sample grid, dropping
// previous samples.
func (m *GL) SetGridResolution(n int) {
	m.resolution = n
	m.normalized = make([]float32, n*n)
	m.dirty = true
}

// WriteSample stores one normalized height. The engine's storage is clamped
// to [0,1]; the authoritative unclamped heights live in the heightfield.
func (m *GL) WriteSample(i, j int, v float32) {
	if i < 0 || j < 0 || i >= m.resolution || j >= m.resolution {
		return
	}
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	m.normalized[i*m.resolution+j] = v
	m.dirty = true
}

// PhysicalSize returns the surface extent as (length, height, width).
func (m *GL) PhysicalSize() vmath.Vec3 { return m.size }

// Dirty reports whether samples changed since the last Upload.
func (m *GL) Dirty() bool { return m.dirty }

// Upload rebuilds the vertex and index buffers from the current samples.
func (m *GL) Upload() {
	if m.resolution < 2 {
		return
	}

	vertices, indices := m.buildGeometry()

	if m.vao == 0 {
		gl.GenVertexArrays(1, &m.vao)
		gl.GenBuffers(1, &m.vbo)
		gl.GenBuffers(1, &m.ebo)
	}

	gl.BindVertexArray(m.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.DYNAMIC_DRAW)

	// Position (location 0), normal (location 1), interleaved 6 floats.
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 6*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, 6*4, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.DYNAMIC_DRAW)

	gl.BindVertexArray(0)

	m.indexCount = int32(len(indices))
	m.dirty = false
}

// Draw renders the surface. The caller binds the shader and uniforms.
func (m *GL) Draw(wireframe bool) {
	if m.vao == 0 || m.indexCount == 0 {
		return
	}
	if wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
	if wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

// Destroy releases GPU resources.
func (m *GL) Destroy() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		gl.DeleteBuffers(1, &m.vbo)
		gl.DeleteBuffers(1, &m.ebo)
		m.vao, m.vbo, m.ebo = 0, 0, 0
	}
}

func (m *GL) buildGeometry() ([]float32, []uint32) {
	n := m.resolution
	step := 1 / float32(n-1)

	vertices := make([]float32, 0, n*n*6)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x := m.origin.X + float32(i)*step*m.size.X
			y := m.origin.Y + m.sample(i, j)*m.size.Y
			z := m.origin.Z + float32(j)*step*m.size.Z
			nx, ny, nz := m.normalAt(i, j, step)
			vertices = append(vertices, x, y, z, nx, ny, nz)
		}
	}

	indices := make([]uint32, 0, (n-1)*(n-1)*6)
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-1; j++ {
			a := uint32(i*n + j)
			b := uint32((i+1)*n + j)
			c := uint32(i*n + j + 1)
			d := uint32((i+1)*n + j + 1)
			indices = append(indices, a, b, c, c, b, d)
		}
	}

	return vertices, indices
}

func (m *GL) sample(i, j int) float32 {
	return m.normalized[i*m.resolution+j]
}

// normalAt computes a vertex normal from central height differences.
func (m *GL) normalAt(i, j int, step float32) (float32, float32, float32) {
	n := m.resolution
	clampIdx := func(v int) int {
		if v < 0 {
			return 0
		}
		if v > n-1 {
			return n - 1
		}
		return v
	}

	dx := (m.sample(clampIdx(i+1), j) - m.sample(clampIdx(i-1), j)) * m.size.Y
	dz := (m.sample(i, clampIdx(j+1)) - m.sample(i, clampIdx(j-1))) * m.size.Y

	v := vmath.Vec3{X: -dx, Y: 2 * step * m.size.X, Z: -dz}.Normalize()
	return v.X, v.Y, v.Z
}
