package output

import "image"

// Displayer presents an image to the user. Implementations may block
// until the user dismisses the image.
type Displayer interface {
	Display(img image.Image) error
}

// DisplayFunc adapts an ordinary function to the Displayer interface.
type DisplayFunc func(img image.Image) error

// Display calls f(img).
func (f DisplayFunc) Display(img image.Image) error {
	return f(img)
}

// Discard is a Displayer that ignores every image. It is used for
// headless runs.
var Discard Displayer = DisplayFunc(func(image.Image) error { return nil })
