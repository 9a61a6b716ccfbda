// Package light evaluates the ambient, diffuse and specular reflection
// model used to shade flat polygons.
package light

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Source is a point light. Location is also used as the direction towards
// the light, so sources behave like directional lights.
type Source struct {
	Location mgl64.Vec3
	Color    mgl64.Vec3 // 0..255 per channel
}

// Lighting bundles all lighting constants of a render. It is read-only
// once rendering starts.
type Lighting struct {
	Ambient mgl64.Vec3 // 0..255 per channel
	Sources []Source
	View    mgl64.Vec3

	// Reflection coefficients per channel (red, green, blue).
	Ka, Kd, Ks mgl64.Vec3

	// SpecularExp is the shininess exponent of the specular term.
	SpecularExp float64
}

// Default returns the lighting setup scenes are rendered with unless the
// caller supplies its own.
func Default() *Lighting {
	return &Lighting{
		Ambient: mgl64.Vec3{50, 50, 50},
		Sources: []Source{{
			Location: mgl64.Vec3{0.5, 0.75, 1},
			Color:    mgl64.Vec3{0, 255, 255},
		}},
		View:        mgl64.Vec3{0, 0, 1},
		Ka:          mgl64.Vec3{0.1, 0.1, 0.1},
		Kd:          mgl64.Vec3{0.5, 0.5, 0.5},
		Ks:          mgl64.Vec3{0.5, 0.5, 0.5},
		SpecularExp: 8,
	}
}

// Shade returns the color of a surface with the given normal.
// The normal does not need to be normalized.
func (l *Lighting) Shade(normal mgl64.Vec3) color.RGBA {
	n := safeNormalize(normal)
	v := safeNormalize(l.View)

	sum := mul(l.Ambient, l.Ka)
	for _, src := range l.Sources {
		dir := safeNormalize(src.Location)
		ndotl := n.Dot(dir)

		diffuse := max(ndotl, 0)
		sum = sum.Add(mul(src.Color, l.Kd).Mul(diffuse))

		// reflect the light direction about the normal
		r := n.Mul(2 * ndotl).Sub(dir)
		spec := math.Pow(max(r.Dot(v), 0), l.SpecularExp)
		if ndotl <= 0 {
			spec = 0
		}
		sum = sum.Add(mul(src.Color, l.Ks).Mul(spec))
	}

	return color.RGBA{
		R: channel(sum[0]),
		G: channel(sum[1]),
		B: channel(sum[2]),
		A: 0xff,
	}
}

func mul(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

func safeNormalize(v mgl64.Vec3) mgl64.Vec3 {
	if v.Len() == 0 {
		return v
	}
	return v.Normalize()
}

func channel(x float64) uint8 {
	return uint8(mgl64.Clamp(x, 0, 255))
}
