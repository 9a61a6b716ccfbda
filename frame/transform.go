package frame

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrUnsupportedAxis is returned for rotation axis selectors other than
// X, Y or Z.
var ErrUnsupportedAxis = errors.New("frame: unsupported rotation axis")

// Axis selects the coordinate axis of a rotation.
type Axis int

// Axis selectors, numbered the way scene scripts encode them.
const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Valid reports whether a names one of the three coordinate axes.
func (a Axis) Valid() bool {
	return a >= AxisX && a <= AxisZ
}

// Translate returns the translation by d.
func Translate(d mgl64.Vec3) mgl64.Mat4 {
	return mgl64.Translate3D(d[0], d[1], d[2])
}

// Scale returns the axis-aligned scaling by s.
func Scale(s mgl64.Vec3) mgl64.Mat4 {
	return mgl64.Scale3D(s[0], s[1], s[2])
}

// Rotate returns the rotation by the given angle in degrees about axis.
func Rotate(axis Axis, degrees float64) (mgl64.Mat4, error) {
	if !axis.Valid() {
		return mgl64.Mat4{}, fmt.Errorf("%w: %d", ErrUnsupportedAxis, int(axis))
	}
	theta := mgl64.DegToRad(degrees)
	switch axis {
	case AxisX:
		return mgl64.HomogRotate3DX(theta), nil
	case AxisY:
		return mgl64.HomogRotate3DY(theta), nil
	default:
		return mgl64.HomogRotate3DZ(theta), nil
	}
}
