// Package scenes holds ready-made operation lists for a 500×500 screen.
package scenes

import (
	"maps"
	"slices"

	"github.com/go-gl/mathgl/mgl64"

	"mdl/frame"
	"mdl/interp"
)

// All contains every built-in scene, keyed by name.
var All = map[string][]interp.Op{
	"robot": robot,
	"solar": solar,
	"lines": lines,
	"boxes": boxes,
}

// Names returns the scene names in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(All))
}

func v(x, y, z float64) mgl64.Vec3 { return mgl64.Vec3{x, y, z} }

func move(x, y, z float64) interp.Op  { return interp.Move{D: v(x, y, z)} }
func scale(x, y, z float64) interp.Op { return interp.Scale{S: v(x, y, z)} }
func rotX(deg float64) interp.Op      { return interp.Rotate{Axis: frame.AxisX, Degrees: deg} }
func rotY(deg float64) interp.Op      { return interp.Rotate{Axis: frame.AxisY, Degrees: deg} }
func rotZ(deg float64) interp.Op      { return interp.Rotate{Axis: frame.AxisZ, Degrees: deg} }

func box(x, y, z, w, h, d float64) interp.Op {
	return interp.Box{Corner: v(x, y, z), Size: v(w, h, d)}
}

func sphere(x, y, z, r float64) interp.Op {
	return interp.Sphere{Center: v(x, y, z), R: r}
}

func torus(x, y, z, r0, r1 float64) interp.Op {
	return interp.Torus{Center: v(x, y, z), R0: r0, R1: r1}
}

func line(x0, y0, z0, x1, y1, z1 float64) interp.Op {
	return interp.Line{P0: v(x0, y0, z0), P1: v(x1, y1, z1)}
}

var (
	push = interp.Push{}
	pop  = interp.Pop{}
)

// robot is a figure whose limbs hang off the body frame, and whose
// forearm hangs off the upper arm frame.
var robot = []interp.Op{
	push,
	move(250, 250, 0),
	rotX(20),
	rotY(30),
	box(-100, 125, 50, 200, 250, 100), // body

	push,
	move(0, 175, 0),
	rotY(90),
	sphere(0, 0, 0, 50), // head
	pop,

	push,
	move(-100, 125, 0),
	rotX(-45),
	box(-40, 0, 40, 40, 100, 80), // left upper arm
	push,
	move(-20, -100, 0),
	rotX(-45),
	box(-10, 0, 10, 20, 125, 20), // left forearm
	pop,
	pop,

	push,
	move(100, 125, 0),
	rotX(45),
	box(0, 0, 40, 40, 100, 80), // right arm
	pop,

	push,
	move(-100, -125, 0),
	box(0, 0, 40, 50, 120, 50), // left leg
	pop,

	push,
	move(100, -125, 0),
	box(-50, 0, 40, 50, 120, 50), // right leg
	pop,
	pop,
}

// solar is a sun with a ring and two orbiting planets, one with a moon.
var solar = []interp.Op{
	push,
	move(250, 250, 0),
	rotX(25),
	sphere(0, 0, 0, 70),
	torus(0, 0, 0, 6, 110),

	push,
	rotY(40),
	move(170, 0, 0),
	sphere(0, 0, 0, 25),
	push,
	rotZ(60),
	move(45, 0, 0),
	sphere(0, 0, 0, 8),
	pop,
	pop,

	push,
	rotY(200),
	move(210, 0, 0),
	scale(1, 0.8, 1),
	sphere(0, 0, 0, 18),
	torus(0, 0, 0, 3, 30),
	pop,
	pop,
}

// lines draws coordinate axes and a rotated wire frame cube.
var lines = []interp.Op{
	line(0, 250, 0, 499, 250, 0),
	line(250, 0, 0, 250, 499, 0),

	push,
	move(250, 250, 0),
	rotX(30),
	rotY(30),
	scale(100, 100, 100),
	line(-1, -1, -1, 1, -1, -1),
	line(1, -1, -1, 1, 1, -1),
	line(1, 1, -1, -1, 1, -1),
	line(-1, 1, -1, -1, -1, -1),
	line(-1, -1, 1, 1, -1, 1),
	line(1, -1, 1, 1, 1, 1),
	line(1, 1, 1, -1, 1, 1),
	line(-1, 1, 1, -1, -1, 1),
	line(-1, -1, -1, -1, -1, 1),
	line(1, -1, -1, 1, -1, 1),
	line(1, 1, -1, 1, 1, 1),
	line(-1, 1, -1, -1, 1, 1),
	pop,
}

// boxes is a tower of boxes, each one smaller than the one below and
// turned a little further.
var boxes = func() []interp.Op {
	ops := []interp.Op{push, move(250, 80, 0), rotX(15)}
	for range 5 {
		ops = append(ops,
			rotY(20),
			box(-80, 60, 80, 160, 60, 160),
			move(0, 60, 0),
			scale(0.7, 0.7, 0.7),
		)
	}
	return append(ops, pop)
}()
