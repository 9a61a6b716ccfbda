// Package shape generates homogeneous point lists for scene primitives.
//
// Generated geometry lands in a Matrix: four rows (x, y, z, w) and one
// column per point. Polygon matrices hold triangles as runs of three
// columns, edge matrices hold segments as runs of two.
package shape

import "github.com/go-gl/mathgl/mgl64"

// Matrix is a growable 4×N matrix of homogeneous points.
// The buffer grows as needed but never shrinks, so a single Matrix can be
// reused for every primitive of a scene without further allocations.
type Matrix struct {
	cols []mgl64.Vec4
}

// NewMatrix returns an empty matrix with room for capacity columns.
func NewMatrix(capacity int) *Matrix {
	return &Matrix{cols: make([]mgl64.Vec4, 0, max(capacity, 0))}
}

// Len returns the number of occupied columns.
func (m *Matrix) Len() int {
	return len(m.cols)
}

// Cap returns the number of columns available before the next grow.
func (m *Matrix) Cap() int {
	return cap(m.cols)
}

// Points returns the occupied columns. The slice aliases the buffer and
// is only valid until the next modification.
func (m *Matrix) Points() []mgl64.Vec4 {
	return m.cols
}

// Reset empties the matrix, keeping its storage.
func (m *Matrix) Reset() {
	m.cols = m.cols[:0]
}

// AddPoint appends the point (x, y, z, 1).
func (m *Matrix) AddPoint(p mgl64.Vec3) {
	m.cols = append(m.cols, p.Vec4(1))
}

// AddEdge appends the segment p0–p1.
func (m *Matrix) AddEdge(p0, p1 mgl64.Vec3) {
	m.AddPoint(p0)
	m.AddPoint(p1)
}

// AddPolygon appends the triangle p0, p1, p2. Front faces are wound
// counter-clockwise when seen from outside.
func (m *Matrix) AddPolygon(p0, p1, p2 mgl64.Vec3) {
	m.AddPoint(p0)
	m.AddPoint(p1)
	m.AddPoint(p2)
}

// Transform replaces every column p with f × p.
func (m *Matrix) Transform(f mgl64.Mat4) {
	for i, p := range m.cols {
		m.cols[i] = f.Mul4x1(p)
	}
}
