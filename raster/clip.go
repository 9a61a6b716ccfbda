package raster

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// pixelBounds returns the rectangle spanned by the centres of the pixels
// inside clip.
func pixelBounds(clip rect.Rect) rect.Rect {
	return rect.Rect{
		LLx: clip.LLx,
		LLy: clip.LLy,
		URx: clip.URx - 1,
		URy: clip.URy - 1,
	}
}

// clipSegment restricts the segment a + t·(b-a), t ∈ [0, 1], to r
// (Liang-Barsky). It returns the parameter range of the visible part and
// false if no part of the segment lies inside r.
func clipSegment(r rect.Rect, a, b vec.Vec2) (t0, t1 float64, ok bool) {
	d := b.Sub(a)
	t0, t1 = 0, 1

	// each edge as p·t <= q
	edges := [4][2]float64{
		{-d.X, a.X - r.LLx},
		{d.X, r.URx - a.X},
		{-d.Y, a.Y - r.LLy},
		{d.Y, r.URy - a.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			t0 = max(t0, t)
		} else {
			t1 = min(t1, t)
		}
		if t0 > t1 {
			return 0, 0, false
		}
	}
	return t0, t1, true
}
