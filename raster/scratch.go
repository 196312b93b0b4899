// Copyright 2026 The zeno Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"github.com/dfrg/zeno/geometry"
	"github.com/dfrg/zeno/path"
	"github.com/dfrg/zeno/segment"
	"github.com/dfrg/zeno/stroke"
)

// Scratch holds the dynamic memory a repeated sequence of Apply/Bounds/
// Mask/HitTest calls would otherwise allocate fresh each time: the
// stroker's segment buffer and the rasterizer's cell storage. Reuse one
// Scratch across a render loop instead of creating a new Rasterizer and
// segment slice per frame.
//
// A Scratch is not safe for concurrent use; two goroutines rendering at
// the same time need one Scratch each.
type Scratch struct {
	segments []segment.Segment
	cells    HeapStorage
}

// NewScratch returns an empty Scratch ready for use.
func NewScratch() *Scratch { return &Scratch{} }

// Apply renders data under style to sink, applying transform along the
// way, reusing this Scratch's segment buffer for any stroke expansion.
// See stroke.Apply for the exact semantics.
func (s *Scratch) Apply(data path.Data, style stroke.Style, transform *geometry.Transform, sink path.Builder) stroke.Fill {
	return stroke.ApplyWithBuffer(data, style, transform, sink, &s.segments)
}

// Bounds returns the bounding box of data rendered under style and
// transform, reusing this Scratch's segment buffer.
func (s *Scratch) Bounds(data path.Data, style stroke.Style, transform *geometry.Transform) geometry.Bounds {
	sink := &path.BoundsSink{}
	s.Apply(data, style, transform, sink)
	return sink.Bounds()
}
