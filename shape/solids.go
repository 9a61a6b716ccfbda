package shape

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrBadStep is returned when a tessellation step is too coarse to
// produce a closed surface.
var ErrBadStep = errors.New("shape: tessellation step must be at least 3")

// AddBox appends the 12 triangles of an axis-aligned box. corner is the
// front top left vertex; the box extends size.X along +x, size.Y along -y
// and size.Z along -z.
func (m *Matrix) AddBox(corner, size mgl64.Vec3) {
	x0, y0, z0 := corner.Elem()
	x1, y1, z1 := x0+size[0], y0-size[1], z0-size[2]

	a := mgl64.Vec3{x0, y0, z0}
	b := mgl64.Vec3{x1, y0, z0}
	c := mgl64.Vec3{x1, y1, z0}
	d := mgl64.Vec3{x0, y1, z0}
	e := mgl64.Vec3{x0, y0, z1}
	f := mgl64.Vec3{x1, y0, z1}
	g := mgl64.Vec3{x1, y1, z1}
	h := mgl64.Vec3{x0, y1, z1}

	m.addQuad(a, d, c, b) // front
	m.addQuad(f, g, h, e) // back
	m.addQuad(b, c, g, f) // right
	m.addQuad(e, h, d, a) // left
	m.addQuad(e, a, b, f) // top
	m.addQuad(d, h, g, c) // bottom
}

// addQuad splits the convex quadrilateral p0..p3 into two triangles.
func (m *Matrix) addQuad(p0, p1, p2, p3 mgl64.Vec3) {
	m.AddPolygon(p0, p1, p2)
	m.AddPolygon(p0, p2, p3)
}

// SpherePoints returns the step × (step+1) lattice of a sphere: half
// circles from pole to pole, rotated step times about the x axis.
// Row i of the result starts at index i*(step+1).
func SpherePoints(center mgl64.Vec3, r float64, step int) []mgl64.Vec3 {
	pts := make([]mgl64.Vec3, 0, step*(step+1))
	for rot := range step {
		phi := 2 * math.Pi * float64(rot) / float64(step)
		sinPhi, cosPhi := math.Sincos(phi)
		for circ := 0; circ <= step; circ++ {
			theta := math.Pi * float64(circ) / float64(step)
			sinTheta, cosTheta := math.Sincos(theta)
			pts = append(pts, mgl64.Vec3{
				r*cosTheta + center[0],
				r*sinTheta*cosPhi + center[1],
				r*sinTheta*sinPhi + center[2],
			})
		}
	}
	return pts
}

// AddSphere appends a triangulated sphere.
func (m *Matrix) AddSphere(center mgl64.Vec3, r float64, step int) error {
	if step < 3 {
		return fmt.Errorf("sphere: %w (got %d)", ErrBadStep, step)
	}
	pts := SpherePoints(center, r, step)
	row := step + 1
	for rot := range step {
		next := (rot + 1) % step
		for circ := range step {
			p0 := pts[rot*row+circ]
			p1 := pts[rot*row+circ+1]
			p2 := pts[next*row+circ+1]
			p3 := pts[next*row+circ]
			// p0/p3 meet at the first pole, p1/p2 at the second.
			if circ != step-1 {
				m.AddPolygon(p0, p1, p2)
			}
			if circ != 0 {
				m.AddPolygon(p0, p2, p3)
			}
		}
	}
	return nil
}

// TorusPoints returns the step × step lattice of a torus: a circle of
// radius r0 centred r1 away from the axis, rotated step times about the
// y axis. Row i of the result starts at index i*step.
func TorusPoints(center mgl64.Vec3, r0, r1 float64, step int) []mgl64.Vec3 {
	pts := make([]mgl64.Vec3, 0, step*step)
	for rot := range step {
		phi := 2 * math.Pi * float64(rot) / float64(step)
		sinPhi, cosPhi := math.Sincos(phi)
		for circ := range step {
			theta := 2 * math.Pi * float64(circ) / float64(step)
			sinTheta, cosTheta := math.Sincos(theta)
			ring := r0*cosTheta + r1
			pts = append(pts, mgl64.Vec3{
				cosPhi*ring + center[0],
				r0*sinTheta + center[1],
				-sinPhi*ring + center[2],
			})
		}
	}
	return pts
}

// AddTorus appends a triangulated torus with tube radius r0 and distance
// r1 from the centre to the middle of the tube.
func (m *Matrix) AddTorus(center mgl64.Vec3, r0, r1 float64, step int) error {
	if step < 3 {
		return fmt.Errorf("torus: %w (got %d)", ErrBadStep, step)
	}
	pts := TorusPoints(center, r0, r1, step)
	for rot := range step {
		next := (rot + 1) % step
		for circ := range step {
			up := (circ + 1) % step
			p0 := pts[rot*step+circ]
			p1 := pts[rot*step+up]
			p2 := pts[next*step+up]
			p3 := pts[next*step+circ]
			m.AddPolygon(p0, p3, p2)
			m.AddPolygon(p0, p2, p1)
		}
	}
	return nil
}
