// Copyright 2026 The zeno Authors
// SPDX-License-Identifier: MIT

package geometry

import "math"

// Origin selects which corner of the output buffer is (0, 0).
type Origin int

const (
	// TopLeft places the origin at the top left of the image.
	TopLeft Origin = iota
	// BottomLeft places the origin at the bottom left of the image.
	BottomLeft
)

// Placement describes the offset and dimensions of a rendered mask
// relative to the origin used when it was computed.
type Placement struct {
	Left, Top     int32
	Width, Height uint32
}

// ComputePlacement computes the render offset and placement for a mask
// that tightly bounds the given bounding box, under the given origin and
// caller-specified offset.
func ComputePlacement(origin Origin, offset Vector, bounds Bounds) (Vector, Placement) {
	bounds.Min = bounds.Min.Add(offset).Floor()
	bounds.Max = bounds.Max.Add(offset).Ceil()
	renderOffset := Vector{X: -bounds.Min.X + 1, Y: -bounds.Min.Y}
	width := uint32(bounds.Width()) + 2
	height := uint32(bounds.Height())
	left := int32(-renderOffset.X)
	var top int32
	if origin == BottomLeft {
		top = int32(math.Floor(float64(-renderOffset.Y)) + float64(height))
	} else {
		top = int32(-renderOffset.Y)
	}
	return renderOffset, Placement{Left: left, Top: top, Width: width, Height: height}
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min, Max Point
}

// NewBounds returns a bounding box with the given corners.
func NewBounds(min, max Point) Bounds {
	return Bounds{Min: min, Max: max}
}

// BoundsFromPoints computes the bounding box of a sequence of points.
func BoundsFromPoints(points []Point) Bounds {
	var b BoundsBuilder
	for _, p := range points {
		b.Add(p)
	}
	return b.Build()
}

// IsEmpty reports whether the bounding box has no area.
func (b Bounds) IsEmpty() bool {
	return b.Min.X >= b.Max.X || b.Min.Y >= b.Max.Y
}

// Width returns the width of the bounding box.
func (b Bounds) Width() float32 {
	return b.Max.X - b.Min.X
}

// Height returns the height of the bounding box.
func (b Bounds) Height() float32 {
	return b.Max.Y - b.Min.Y
}

// Contains reports whether p lies strictly inside the bounding box.
func (b Bounds) Contains(p Point) bool {
	return p.X > b.Min.X && p.X < b.Max.X && p.Y > b.Min.Y && p.Y < b.Max.Y
}

// BoundsBuilder accumulates points into a bounding box.
type BoundsBuilder struct {
	Count          int
	Start, Current Point
	Min, Max       Point
	init           bool
}

// Add adds a point to the bounding box under construction.
func (b *BoundsBuilder) Add(p Point) *BoundsBuilder {
	if !b.init {
		b.Min = Point{X: math.MaxFloat32, Y: math.MaxFloat32}
		b.Max = Point{X: -math.MaxFloat32, Y: -math.MaxFloat32}
		b.init = true
	}
	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}
	b.Count++
	return b
}

// Build returns the accumulated bounding box, or the zero Bounds if no
// points were added.
func (b *BoundsBuilder) Build() Bounds {
	if b.Count == 0 {
		return Bounds{}
	}
	return Bounds{Min: b.Min, Max: b.Max}
}
