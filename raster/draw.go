package raster

import (
	"image"
	"image/color"
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
	"seehuhn.de/go/geom/vec"

	"mdl/light"
	"mdl/shape"
)

// Target is a screen together with its depth buffer. Both must have the
// same size.
type Target struct {
	Screen *Screen
	Depth  *ZBuffer
}

// NewTarget allocates a cleared screen and depth buffer.
func NewTarget(width, height int, background color.RGBA) *Target {
	return &Target{
		Screen: NewScreen(width, height, background),
		Depth:  NewZBuffer(width, height),
	}
}

// Clear resets the screen to its background and the depth buffer to
// "infinitely far".
func (t *Target) Clear() {
	t.Screen.Clear()
	t.Depth.Clear()
}

// Image returns the screen contents.
func (t *Target) Image() image.Image {
	return t.Screen.Image()
}

func (t *Target) plot(x, y int, z float64, c color.RGBA) {
	if !t.Screen.Contains(x, y) {
		return
	}
	if t.Depth.test(x, y, z) {
		t.Screen.set(x, y, c)
	}
}

// DrawLines draws every pair of columns in buf as a segment.
// A trailing unpaired column is ignored.
func (t *Target) DrawLines(buf *shape.Matrix, c color.RGBA) {
	pts := buf.Points()
	for i := 0; i+1 < len(pts); i += 2 {
		t.drawLine(pts[i].Vec3(), pts[i+1].Vec3(), c)
	}
}

// drawLine clips the segment to the screen and steps along the major axis
// of the visible part one pixel at a time, interpolating depth linearly
// between the end points.
func (t *Target) drawLine(p0, p1 mgl64.Vec3, c color.RGBA) {
	a := vec.Vec2{X: p0[0], Y: p0[1]}
	b := vec.Vec2{X: p1[0], Y: p1[1]}
	t0, t1, ok := clipSegment(pixelBounds(t.Screen.clip), a, b)
	if !ok {
		return
	}
	full := p1.Sub(p0)
	p0, p1 = p0.Add(full.Mul(t0)), p0.Add(full.Mul(t1))
	a = vec.Vec2{X: p0[0], Y: p0[1]}
	b = vec.Vec2{X: p1[0], Y: p1[1]}
	d := b.Sub(a)
	steps := math.Max(math.Abs(d.X), math.Abs(d.Y))
	n := int(math.Round(steps))
	if n == 0 {
		t.plot(round(a.X), round(a.Y), max(p0[2], p1[2]), c)
		return
	}

	inc := d.Mul(1 / float64(n))
	dz := (p1[2] - p0[2]) / float64(n)
	p, z := a, p0[2]
	for range n + 1 {
		t.plot(round(p.X), round(p.Y), z, c)
		p = p.Add(inc)
		z += dz
	}
}

// DrawPolygons fills every triple of columns in buf as a flat shaded
// triangle. Triangles facing away from the viewer are skipped.
// Trailing columns that do not form a full triangle are ignored.
func (t *Target) DrawPolygons(buf *shape.Matrix, l *light.Lighting) {
	pts := buf.Points()
	for i := 0; i+2 < len(pts); i += 3 {
		p0, p1, p2 := pts[i].Vec3(), pts[i+1].Vec3(), pts[i+2].Vec3()
		n := p1.Sub(p0).Cross(p2.Sub(p0))
		if n.Dot(l.View) <= 0 {
			continue
		}
		t.fillTriangle(p0, p1, p2, l.Shade(n))
	}
}

// fillTriangle scan-converts a triangle row by row. Each row is bounded by
// the long edge (bottom to top vertex) on one side and by one of the two
// short edges on the other.
func (t *Target) fillTriangle(p0, p1, p2 mgl64.Vec3, c color.RGBA) {
	v := []mgl64.Vec3{p0, p1, p2}
	slices.SortFunc(v, func(a, b mgl64.Vec3) int {
		switch {
		case a[1] < b[1]:
			return -1
		case a[1] > b[1]:
			return 1
		}
		return 0
	})
	bot, mid, top := v[0], v[1], v[2]

	yMin := max(int(math.Ceil(bot[1])), 0)
	yMax := min(int(math.Floor(top[1])), t.Screen.Height()-1)
	for y := yMin; y <= yMax; y++ {
		fy := float64(y)
		long := lerpAt(bot, top, fy)
		var short mgl64.Vec3
		if fy < mid[1] {
			short = lerpAt(bot, mid, fy)
		} else {
			short = lerpAt(mid, top, fy)
		}
		t.span(y, long, short, c)
	}
}

// lerpAt returns the point on segment a–b at height y.
func lerpAt(a, b mgl64.Vec3, y float64) mgl64.Vec3 {
	dy := b[1] - a[1]
	if dy == 0 {
		return a
	}
	s := (y - a[1]) / dy
	return a.Add(b.Sub(a).Mul(s))
}

// span fills row y between the x positions of l and r, interpolating z.
func (t *Target) span(y int, l, r mgl64.Vec3, c color.RGBA) {
	if l[0] > r[0] {
		l, r = r, l
	}
	xMin := max(int(math.Ceil(l[0])), 0)
	xMax := min(int(math.Floor(r[0])), t.Screen.Width()-1)
	dx := r[0] - l[0]
	for x := xMin; x <= xMax; x++ {
		z := l[2]
		if dx > 0 {
			z += (r[2] - l[2]) * (float64(x) - l[0]) / dx
		}
		t.plot(x, y, z, c)
	}
}

func round(x float64) int {
	return int(math.Round(x))
}
