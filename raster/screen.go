// Package raster scan-converts transformed geometry into a color buffer
// guarded by a depth buffer.
//
// Device coordinates are used as is: x grows to the right, y grows upwards
// from the bottom row and z grows towards the viewer. Row 0 of the backing
// image is the top row of the picture.
package raster

import (
	"image"
	"image/color"
	"math"

	"seehuhn.de/go/geom/rect"
)

// Screen is a fixed size RGBA color buffer.
type Screen struct {
	// Background is the color Clear fills the screen with.
	Background color.RGBA

	img  *image.RGBA
	clip rect.Rect
}

// NewScreen allocates a width×height screen cleared to background.
func NewScreen(width, height int, background color.RGBA) *Screen {
	s := &Screen{
		Background: background,
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		clip:       rect.Rect{LLx: 0, LLy: 0, URx: float64(width), URy: float64(height)},
	}
	s.Clear()
	return s
}

// Width returns the number of columns.
func (s *Screen) Width() int { return s.img.Rect.Dx() }

// Height returns the number of rows.
func (s *Screen) Height() int { return s.img.Rect.Dy() }

// Clear fills the whole screen with the background color.
func (s *Screen) Clear() {
	bg := s.Background
	pix := s.img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i] = bg.R
		pix[i+1] = bg.G
		pix[i+2] = bg.B
		pix[i+3] = bg.A
	}
}

// Contains reports whether device pixel (x, y) lies on the screen.
func (s *Screen) Contains(x, y int) bool {
	fx, fy := float64(x), float64(y)
	return fx >= s.clip.LLx && fx < s.clip.URx && fy >= s.clip.LLy && fy < s.clip.URy
}

// Pixel returns the color at device pixel (x, y).
func (s *Screen) Pixel(x, y int) color.RGBA {
	return s.img.RGBAAt(x, s.Height()-1-y)
}

func (s *Screen) set(x, y int, c color.RGBA) {
	s.img.SetRGBA(x, s.Height()-1-y, c)
}

// Image returns the screen contents, top row first. The image shares
// memory with the screen.
func (s *Screen) Image() *image.RGBA {
	return s.img
}

// ZBuffer holds the depth of the closest surface drawn at each pixel.
type ZBuffer struct {
	width, height int
	z             []float64
}

// NewZBuffer allocates a cleared depth buffer.
func NewZBuffer(width, height int) *ZBuffer {
	zb := &ZBuffer{width: width, height: height, z: make([]float64, width*height)}
	zb.Clear()
	return zb
}

// Clear resets every pixel to "infinitely far".
func (zb *ZBuffer) Clear() {
	for i := range zb.z {
		zb.z[i] = -math.MaxFloat64
	}
}

// At returns the stored depth at device pixel (x, y). Pixels off the
// buffer are reported as infinitely far.
func (zb *ZBuffer) At(x, y int) float64 {
	if x < 0 || x >= zb.width || y < 0 || y >= zb.height {
		return -math.MaxFloat64
	}
	return zb.z[y*zb.width+x]
}

// test stores z at (x, y) and reports true if z is closer than what is
// already there.
func (zb *ZBuffer) test(x, y int, z float64) bool {
	i := y*zb.width + x
	if z <= zb.z[i] {
		return false
	}
	zb.z[i] = z
	return true
}
