package frame

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestRotateAxes(t *testing.T) {
	tests := []struct {
		axis Axis
		in   mgl64.Vec4
		want mgl64.Vec4
	}{
		{AxisX, mgl64.Vec4{0, 1, 0, 1}, mgl64.Vec4{0, 0, 1, 1}},
		{AxisY, mgl64.Vec4{0, 0, 1, 1}, mgl64.Vec4{1, 0, 0, 1}},
		{AxisZ, mgl64.Vec4{1, 0, 0, 1}, mgl64.Vec4{0, 1, 0, 1}},
	}
	for _, tc := range tests {
		t.Run(tc.axis.String(), func(t *testing.T) {
			if !tc.axis.Valid() {
				t.Errorf("%v.Valid() = false", tc.axis)
			}
			m, err := Rotate(tc.axis, 90)
			if err != nil {
				t.Fatal(err)
			}
			got := m.Mul4x1(tc.in)
			if !got.ApproxEqualThreshold(tc.want, 1e-9) {
				t.Errorf("Rotate(%v, 90) * %v = %v, want %v", tc.axis, tc.in, got, tc.want)
			}
		})
	}
}

func TestRotateRejectsUnknownAxis(t *testing.T) {
	for _, axis := range []Axis{3, -1, 42} {
		m, err := Rotate(axis, 30)
		if !errors.Is(err, ErrUnsupportedAxis) {
			t.Errorf("Rotate(%d) error = %v, want ErrUnsupportedAxis", int(axis), err)
		}
		if m != (mgl64.Mat4{}) {
			t.Errorf("Rotate(%d) = %v, want the zero matrix", int(axis), m)
		}
		if axis.Valid() {
			t.Errorf("Axis(%d).Valid() = true", int(axis))
		}
	}
}

func TestTranslateAndScale(t *testing.T) {
	p := Translate(mgl64.Vec3{1, -2, 3}).Mul4x1(mgl64.Vec4{1, 1, 1, 1})
	if p != (mgl64.Vec4{2, -1, 4, 1}) {
		t.Errorf("Translate = %v", p)
	}
	q := Scale(mgl64.Vec3{2, 3, 4}).Mul4x1(mgl64.Vec4{1, 1, 1, 1})
	if q != (mgl64.Vec4{2, 3, 4, 1}) {
		t.Errorf("Scale = %v", q)
	}
}
