// Copyright 2026 The zeno Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"github.com/dfrg/zeno/geometry"
	"github.com/dfrg/zeno/path"
	"github.com/dfrg/zeno/stroke"
)

// HitTest is a builder for testing whether a point is painted by a
// path, built on top of Mask by rendering a single-pixel mask offset so
// that the tested point lands on that pixel.
type HitTest struct {
	data      path.Data
	style     stroke.Style
	transform *geometry.Transform
	threshold byte
	scratch   *Scratch
}

// NewHitTest returns a HitTest builder for data, defaulting to a
// NonZero fill and a threshold of 0 (any non-zero coverage counts as a
// hit).
func NewHitTest(data path.Data) *HitTest {
	return &HitTest{data: data, style: stroke.FillStyle(stroke.NonZero)}
}

// NewHitTestWithScratch is NewHitTest, reusing scratch's buffers across
// repeated tests instead of allocating fresh ones.
func NewHitTestWithScratch(data path.Data, scratch *Scratch) *HitTest {
	h := NewHitTest(data)
	h.scratch = scratch
	return h
}

// Style sets the fill or stroke style the path is tested under.
func (h *HitTest) Style(style stroke.Style) *HitTest { h.style = style; return h }

// Transform sets the transform applied to the path before testing.
func (h *HitTest) Transform(transform *geometry.Transform) *HitTest {
	h.transform = transform
	return h
}

// Threshold sets the minimum coverage value (exclusive, except that 0xFF
// requires equality) for Test to report a hit.
func (h *HitTest) Threshold(threshold byte) *HitTest { h.threshold = threshold; return h }

// Test reports whether point is painted by the path.
func (h *HitTest) Test(point geometry.Point) bool {
	var buf [1]byte
	offset := point.Scale(-1)

	var mask *Mask
	if h.scratch != nil {
		mask = NewMaskWithScratch(h.data, h.scratch)
	} else {
		mask = NewMask(h.data)
	}
	mask.Style(h.style).Offset(offset).Transform(h.transform).Size(1, 1).RenderInto(buf[:], 0)

	if h.threshold == 0xFF {
		return buf[0] >= h.threshold
	}
	return buf[0] > h.threshold
}
