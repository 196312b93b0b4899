// Copyright 2026 The zeno Authors
// SPDX-License-Identifier: MIT

// Package stroke turns a filled outline plus a stroke or fill style into
// the concrete path that a rasterizer can scan-convert: offsetting,
// joining and capping line segments, and slicing them into dashes.
package stroke

// Cap selects how the two open ends of an unclosed subpath are finished.
type Cap int

const (
	// ButtCap ends the stroke flush with the path's endpoint.
	ButtCap Cap = iota
	// SquareCap extends the stroke by the stroke radius past the endpoint.
	SquareCap
	// RoundCap caps the stroke with a semicircle of the stroke radius.
	RoundCap
)

// Join selects how two adjacent segments are connected on the outer side
// of a corner.
type Join int

const (
	// BevelJoin connects the two offset segments with a straight line.
	BevelJoin Join = iota
	// RoundJoin connects them with a circular arc.
	RoundJoin
	// MiterJoin extends both offset segments to their intersection,
	// falling back to BevelJoin once that intersection passes MiterLimit.
	MiterJoin
)

// Fill selects the rule used to decide which regions of a filled path are
// covered, for paths whose subpaths may overlap or self-intersect.
type Fill int

const (
	// NonZero fills a region when the signed sum of subpath windings
	// around it is non-zero.
	NonZero Fill = iota
	// EvenOdd fills a region when an odd number of subpath edges
	// separate it from infinity, regardless of winding direction.
	EvenOdd
)

// Stroke describes how to convert a path's centerline into the outline of
// a stroked line.
type Stroke struct {
	// Width is the full width of the stroke. Values below 0.01 are
	// clamped, since a vanishing stroke would otherwise still need to
	// draw caps and joins at the centerline.
	Width float32

	Join       Join
	MiterLimit float32

	StartCap Cap
	EndCap   Cap

	// Dashes is an on/off length pattern applied along the path, measured
	// in the same units as Width. An empty pattern (the default) strokes
	// the path without dashing. See ValidateDashes for the exact
	// acceptance rules.
	Dashes []float32
	// Offset shifts the dash pattern's starting phase along the path.
	Offset float32

	// ScaleWithTransform controls how a render transform interacts with
	// stroking when both are applied via Apply. When true, the path is
	// stroked in its own coordinate space and the transform is applied
	// to the resulting outline afterwards, so the stroke width scales
	// along with everything else. When false, the transform is applied
	// to the path's commands first and the stroke is computed in device
	// space at the width given, so the line stays a constant width
	// on-screen regardless of the path's scale.
	ScaleWithTransform bool
}

// DefaultMiterLimit is used by callers that construct a Stroke without
// setting MiterLimit explicitly; a Stroke's zero value disables mitering
// entirely (MiterLimit 0 is below the always-bevel threshold of 1), so
// callers that want SVG/CSS-style default mitering should set this.
const DefaultMiterLimit float32 = 4

// StyleKind tags the variant of a Style.
type StyleKind int

const (
	StyleFill StyleKind = iota
	StyleStroke
)

// Style is either a Fill rule or a Stroke description, the two ways a
// path can be turned into a concrete outline for rasterization.
type Style struct {
	Kind   StyleKind
	Fill   Fill
	Stroke Stroke
}

// FillStyle returns a Style that fills the path under rule.
func FillStyle(rule Fill) Style { return Style{Kind: StyleFill, Fill: rule} }

// StrokeStyle returns a Style that strokes the path with s.
func StrokeStyle(s Stroke) Style { return Style{Kind: StyleStroke, Stroke: s} }
