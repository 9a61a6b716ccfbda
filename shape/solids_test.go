package shape

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func triangles(m *Matrix) [][3]mgl64.Vec3 {
	pts := m.Points()
	var tris [][3]mgl64.Vec3
	for i := 0; i+2 < len(pts); i += 3 {
		tris = append(tris, [3]mgl64.Vec3{pts[i].Vec3(), pts[i+1].Vec3(), pts[i+2].Vec3()})
	}
	return tris
}

func normal(tri [3]mgl64.Vec3) mgl64.Vec3 {
	return tri[1].Sub(tri[0]).Cross(tri[2].Sub(tri[0]))
}

func centroid(tri [3]mgl64.Vec3) mgl64.Vec3 {
	return tri[0].Add(tri[1]).Add(tri[2]).Mul(1.0 / 3)
}

func TestMatrixReset(t *testing.T) {
	m := NewMatrix(4)
	m.AddEdge(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1})
	m.AddBox(mgl64.Vec3{}, mgl64.Vec3{1, 1, 1})
	if m.Len() != 38 {
		t.Fatalf("Len() = %d, want 38", m.Len())
	}
	grown := m.Cap()
	m.Reset()
	if m.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", m.Len())
	}
	if m.Cap() != grown {
		t.Errorf("Reset released storage: Cap() = %d, want %d", m.Cap(), grown)
	}
}

func TestMatrixTransform(t *testing.T) {
	m := NewMatrix(2)
	m.AddEdge(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 2, 3})
	m.Transform(mgl64.Translate3D(10, 0, -1))
	want := []mgl64.Vec4{{10, 0, -1, 1}, {11, 2, 2, 1}}
	for i, p := range m.Points() {
		if p != want[i] {
			t.Errorf("point %d = %v, want %v", i, p, want[i])
		}
	}
}

func TestBoxFacesOutward(t *testing.T) {
	m := NewMatrix(0)
	corner := mgl64.Vec3{-1, 2, 3}
	size := mgl64.Vec3{4, 5, 6}
	m.AddBox(corner, size)

	tris := triangles(m)
	if len(tris) != 12 {
		t.Fatalf("got %d triangles, want 12", len(tris))
	}
	mid := mgl64.Vec3{corner[0] + size[0]/2, corner[1] - size[1]/2, corner[2] - size[2]/2}
	for i, tri := range tris {
		if normal(tri).Dot(centroid(tri).Sub(mid)) <= 0 {
			t.Errorf("triangle %d faces inward: %v", i, tri)
		}
	}
}

func TestSphere(t *testing.T) {
	center := mgl64.Vec3{5, -3, 2}
	const r, step = 4.0, 12

	m := NewMatrix(0)
	if err := m.AddSphere(center, r, step); err != nil {
		t.Fatal(err)
	}
	tris := triangles(m)
	if want := step * (2*step - 2); len(tris) != want {
		t.Fatalf("got %d triangles, want %d", len(tris), want)
	}
	for i, tri := range tris {
		for _, p := range tri {
			if d := p.Sub(center).Len(); math.Abs(d-r) > 1e-9 {
				t.Fatalf("triangle %d vertex %v is %g from centre, want %g", i, p, d, r)
			}
		}
		n := normal(tri)
		if n.Len() < 1e-12 {
			t.Errorf("triangle %d is degenerate", i)
			continue
		}
		if n.Dot(centroid(tri).Sub(center)) <= 0 {
			t.Errorf("triangle %d faces inward", i)
		}
	}
}

func TestTorus(t *testing.T) {
	center := mgl64.Vec3{0, 1, -2}
	const r0, r1, step = 1.0, 5.0, 16

	m := NewMatrix(0)
	if err := m.AddTorus(center, r0, r1, step); err != nil {
		t.Fatal(err)
	}
	tris := triangles(m)
	if want := 2 * step * step; len(tris) != want {
		t.Fatalf("got %d triangles, want %d", len(tris), want)
	}
	for i, tri := range tris {
		c := centroid(tri).Sub(center)
		ring := mgl64.Vec3{c[0], 0, c[2]}.Normalize().Mul(r1)
		if normal(tri).Dot(c.Sub(ring)) <= 0 {
			t.Errorf("triangle %d faces inward", i)
		}
	}
}

func TestBadStep(t *testing.T) {
	m := NewMatrix(0)
	if err := m.AddSphere(mgl64.Vec3{}, 1, 2); !errors.Is(err, ErrBadStep) {
		t.Errorf("AddSphere step 2: %v, want ErrBadStep", err)
	}
	if err := m.AddTorus(mgl64.Vec3{}, 1, 2, 0); !errors.Is(err, ErrBadStep) {
		t.Errorf("AddTorus step 0: %v, want ErrBadStep", err)
	}
	if m.Len() != 0 {
		t.Errorf("failed generators left %d columns", m.Len())
	}
}
