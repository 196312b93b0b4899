// Copyright 2026 The zeno Authors
// SPDX-License-Identifier: MIT

package geometry

import "math"

// Transform is a 2x3 affine transformation matrix, mapping (x, y) to
// (x*XX + y*YX + X, x*XY + y*YY + Y).
type Transform struct {
	XX, XY, YX, YY, X, Y float32
}

// Identity is the identity transform.
var Identity = Transform{XX: 1, YY: 1}

// NewTransform builds a transform from its six components.
func NewTransform(xx, xy, yx, yy, x, y float32) Transform {
	return Transform{xx, xy, yx, yy, x, y}
}

// Translation returns a transform that translates by (x, y).
func Translation(x, y float32) Transform {
	return Transform{XX: 1, YY: 1, X: x, Y: y}
}

// Rotation returns a transform that rotates by angle radians.
func Rotation(radians float32) Transform {
	s, c := math.Sincos(float64(radians))
	return Transform{XX: float32(c), XY: float32(s), YX: float32(-s), YY: float32(c)}
}

// RotationAbout returns a transform that rotates by angle radians about p.
func RotationAbout(p Point, radians float32) Transform {
	return Translation(-p.X, -p.Y).ThenRotate(radians).ThenTranslate(p.X, p.Y)
}

// Scale returns a transform that scales by (x, y).
func Scale(x, y float32) Transform {
	return Transform{XX: x, YY: y}
}

// Skew returns a transform that skews by the given angles, in radians.
func Skew(x, y float32) Transform {
	return Transform{XX: 1, XY: float32(math.Tan(float64(y))), YX: float32(math.Tan(float64(x))), YY: 1}
}

func combine(a, b Transform) Transform {
	return Transform{
		XX: a.XX*b.XX + a.XY*b.YX,
		YX: a.YX*b.XX + a.YY*b.YX,
		XY: a.XX*b.XY + a.XY*b.YY,
		YY: a.YX*b.XY + a.YY*b.YY,
		X:  a.X*b.XX + a.Y*b.YX + b.X,
		Y:  a.X*b.XY + a.Y*b.YY + b.Y,
	}
}

// Then returns the transform representing t followed by other.
func (t Transform) Then(other Transform) Transform {
	return combine(t, other)
}

// PreTranslate returns the transform representing a translation by (x, y)
// followed by t.
func (t Transform) PreTranslate(x, y float32) Transform {
	return combine(Translation(x, y), t)
}

// ThenTranslate returns the transform representing t followed by a
// translation by (x, y).
func (t Transform) ThenTranslate(x, y float32) Transform {
	t.X += x
	t.Y += y
	return t
}

// PreRotate returns the transform representing a rotation by radians
// followed by t.
func (t Transform) PreRotate(radians float32) Transform {
	return combine(Rotation(radians), t)
}

// ThenRotate returns the transform representing t followed by a rotation
// by radians.
func (t Transform) ThenRotate(radians float32) Transform {
	return combine(t, Rotation(radians))
}

// PreScale returns the transform representing a scale by (x, y) followed
// by t.
func (t Transform) PreScale(x, y float32) Transform {
	return combine(Scale(x, y), t)
}

// ThenScale returns the transform representing t followed by a scale by
// (x, y).
func (t Transform) ThenScale(x, y float32) Transform {
	return combine(t, Scale(x, y))
}

// Determinant returns the determinant of t.
func (t Transform) Determinant() float32 {
	return t.XX*t.YY - t.YX*t.XY
}

// Invert returns the inverse of t. The second return value is false if t
// is singular or has a non-finite determinant.
func (t Transform) Invert() (Transform, bool) {
	det := t.Determinant()
	if !isFinite32(det) || det == 0 {
		return Transform{}, false
	}
	s := 1 / det
	a, b, c, d := t.XX, t.XY, t.YX, t.YY
	x, y := t.X, t.Y
	return Transform{
		XX: d * s,
		XY: -b * s,
		YX: -c * s,
		YY: a * s,
		X:  (c*y - d*x) * s,
		Y:  (b*x - a*y) * s,
	}, true
}

func isFinite32(x float32) bool {
	return !math.IsInf(float64(x), 0) && !math.IsNaN(float64(x))
}

// TransformPoint returns the result of applying t to point.
func (t Transform) TransformPoint(point Point) Point {
	return Point{
		X: point.X*t.XX + point.Y*t.YX + t.X,
		Y: point.X*t.XY + point.Y*t.YY + t.Y,
	}
}

// TransformVector returns the result of applying t's linear part (without
// translation) to vector.
func (t Transform) TransformVector(vector Vector) Vector {
	return Vector{
		X: vector.X*t.XX + vector.Y*t.YX,
		Y: vector.X*t.XY + vector.Y*t.YY,
	}
}
