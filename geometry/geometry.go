// Copyright 2026 The zeno Authors
// SPDX-License-Identifier: MIT

// Package geometry provides the 2D vector, affine transform, and bounding
// box primitives shared by the command, segment, path, stroke and raster
// packages.
package geometry

import (
	"math"

	ximgfixed "golang.org/x/image/math/fixed"
)

// Vector is a 2D vector with 32-bit floating point components.
type Vector struct {
	X, Y float32
}

// Point is an alias for Vector used where the value is conceptually a
// position rather than a displacement.
type Point = Vector

// Zero is the vector with both components equal to zero.
var Zero = Vector{0, 0}

// Vec returns a new vector with the given coordinates.
func Vec(x, y float32) Vector {
	return Vector{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vector) Add(w Vector) Vector {
	return Vector{v.X + w.X, v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vector) Sub(w Vector) Vector {
	return Vector{v.X - w.X, v.Y - w.Y}
}

// Scale returns v with both components multiplied by s.
func (v Vector) Scale(s float32) Vector {
	return Vector{v.X * s, v.Y * s}
}

// Length returns the Euclidean length of v.
func (v Vector) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

// LengthSquared returns the squared Euclidean length of v.
func (v Vector) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y
}

// DistanceTo returns the distance between v and w.
func (v Vector) DistanceTo(w Vector) float32 {
	return v.Sub(w).Length()
}

// Dot returns the dot product of v and w.
func (v Vector) Dot(w Vector) float32 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D cross product (z component) of v and w.
func (v Vector) Cross(w Vector) float32 {
	return v.X*w.Y - v.Y*w.X
}

// Normalize returns v scaled to unit length, or the zero vector if v has
// zero length.
func (v Vector) Normalize() Vector {
	length := v.Length()
	if length == 0 {
		return Zero
	}
	inv := 1 / length
	return Vector{v.X * inv, v.Y * inv}
}

// Ceil rounds each component up to the nearest integer.
func (v Vector) Ceil() Vector {
	return Vector{float32(math.Ceil(float64(v.X))), float32(math.Ceil(float64(v.Y)))}
}

// Floor rounds each component down to the nearest integer.
func (v Vector) Floor() Vector {
	return Vector{float32(math.Floor(float64(v.X))), float32(math.Floor(float64(v.Y)))}
}

// NearlyEqual reports whether v and w differ by less than float32's
// machine epsilon in each component.
func (v Vector) NearlyEqual(w Vector) bool {
	return v.NearlyEqualBy(w, epsilon32)
}

const epsilon32 = 1.1920929e-7

// NearlyEqualBy reports whether v and w differ by less than eps in each
// component.
func (v Vector) NearlyEqualBy(w Vector, eps float32) bool {
	return absf(v.X-w.X) < eps && absf(v.Y-w.Y) < eps
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// Normal returns the unit normal to the directed segment start->end,
// rotated 90 degrees counter-clockwise from the segment direction.
func Normal(start, end Vector) Vector {
	return Vector{end.Y - start.Y, -(end.X - start.X)}.Normalize()
}

// Fixed is a 24.8 fixed-point coordinate used by the scan-conversion
// rasterizer. ONE_PIXEL (256) represents one device pixel.
type Fixed int32

// OnePixel is the fixed-point representation of one device pixel.
const OnePixel Fixed = 256

// PixelBits is the number of fractional bits in Fixed.
const PixelBits = 8

// ToFixed converts a floating point value to 24.8 fixed point, truncating
// toward zero.
func ToFixed(v float32) Fixed {
	return Fixed(v * 256)
}

// Float returns f as a floating point value.
func (f Fixed) Float() float32 {
	return float32(f) / 256
}

// Trunc returns the integer pixel coordinate containing f.
func (f Fixed) Trunc() int32 {
	return int32(f) >> PixelBits
}

// Fract returns the fractional part of f within its pixel.
func (f Fixed) Fract() Fixed {
	return f & (OnePixel - 1)
}

// ToFixed26_6 converts f (24.8) to the 26.6 fixed-point format used by
// golang.org/x/image/math/fixed, for interop with x/image/font-based
// consumers.
func (f Fixed) ToFixed26_6() ximgfixed.Int26_6 {
	return ximgfixed.Int26_6(int32(f) >> (PixelBits - 6))
}

// FromFixed26_6 converts a 26.6 fixed-point value into 24.8 Fixed.
func FromFixed26_6(v ximgfixed.Int26_6) Fixed {
	return Fixed(int32(v) << (PixelBits - 6))
}

// FixedPoint is a pair of 24.8 fixed-point coordinates.
type FixedPoint struct {
	X, Y Fixed
}

// ToFixedPoint converts a floating point Point to 24.8 fixed point.
func ToFixedPoint(p Point) FixedPoint {
	return FixedPoint{ToFixed(p.X), ToFixed(p.Y)}
}
