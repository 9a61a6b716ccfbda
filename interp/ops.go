// Package interp executes scene operation lists: it maintains the stack of
// coordinate frames, generates and transforms geometry and hands it to a
// renderer, and saves or displays the result.
package interp

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"mdl/frame"
)

// Kind identifies the type of an operation.
type Kind int

// Operation kinds.
const (
	KindPush Kind = iota
	KindPop
	KindMove
	KindScale
	KindRotate
	KindBox
	KindSphere
	KindTorus
	KindLine
	KindSave
	KindDisplay
)

var kindNames = [...]string{
	KindPush:    "push",
	KindPop:     "pop",
	KindMove:    "move",
	KindScale:   "scale",
	KindRotate:  "rotate",
	KindBox:     "box",
	KindSphere:  "sphere",
	KindTorus:   "torus",
	KindLine:    "line",
	KindSave:    "save",
	KindDisplay: "display",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Op is a single scene operation. Operations are plain values and are
// never modified by the interpreter.
type Op interface {
	Kind() Kind
}

// Push duplicates the current coordinate frame.
type Push struct{}

// Pop returns to the parent coordinate frame.
type Pop struct{}

// Move translates the current frame by D.
type Move struct {
	D mgl64.Vec3
}

// Scale scales the current frame by S.
type Scale struct {
	S mgl64.Vec3
}

// Rotate rotates the current frame about Axis.
type Rotate struct {
	Axis    frame.Axis
	Degrees float64
}

// Box draws a box with front top left vertex Corner, extending Size.X to
// the right, Size.Y down and Size.Z away from the viewer.
type Box struct {
	Corner mgl64.Vec3
	Size   mgl64.Vec3
}

// Sphere draws a sphere of radius R.
type Sphere struct {
	Center mgl64.Vec3
	R      float64
}

// Torus draws a torus with tube radius R0 whose tube centre is R1 away
// from Center.
type Torus struct {
	Center mgl64.Vec3
	R0, R1 float64
}

// Line draws the segment P0–P1.
type Line struct {
	P0, P1 mgl64.Vec3
}

// Save writes the screen to a file. An empty Name selects the configured
// default.
type Save struct {
	Name string
}

// Display shows the screen.
type Display struct{}

func (Push) Kind() Kind    { return KindPush }
func (Pop) Kind() Kind     { return KindPop }
func (Move) Kind() Kind    { return KindMove }
func (Scale) Kind() Kind   { return KindScale }
func (Rotate) Kind() Kind  { return KindRotate }
func (Box) Kind() Kind     { return KindBox }
func (Sphere) Kind() Kind  { return KindSphere }
func (Torus) Kind() Kind   { return KindTorus }
func (Line) Kind() Kind    { return KindLine }
func (Save) Kind() Kind    { return KindSave }
func (Display) Kind() Kind { return KindDisplay }
