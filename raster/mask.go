// Copyright 2026 The zeno Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"math"

	"github.com/dfrg/zeno/geometry"
	"github.com/dfrg/zeno/path"
	"github.com/dfrg/zeno/stroke"
)

// Format selects the pixel layout a Mask renders into.
type Format int

const (
	// Alpha renders an 8-bit coverage value per pixel.
	Alpha Format = iota
	// Subpixel renders a 32-bit RGBA pixel whose R/G/B channels are
	// independent coverage masks shifted horizontally by -0.3/0/+0.3
	// pixels, for subpixel-antialiased text on an RGB-striped display.
	Subpixel
	// CustomSubpixel is Subpixel with caller-chosen channel shifts, e.g.
	// for a BGR-striped display.
	CustomSubpixel
)

// defaultSubpixelShifts are the per-channel horizontal shifts Subpixel
// uses; SubpixelBGRA reorders them for a BGR-striped display.
var defaultSubpixelShifts = [3]float32{-0.3, 0, 0.3}

// BytesPerPixel returns 1 for Alpha, 4 for either subpixel format.
func (f Format) BytesPerPixel() int {
	if f == Alpha {
		return 1
	}
	return 4
}

// BufferSize returns the number of bytes a buffer needs to hold a mask
// of the given dimensions in this format.
func (f Format) BufferSize(width, height uint32) int {
	return int(width) * int(height) * f.BytesPerPixel()
}

// Mask is a builder for configuring and rendering a coverage mask from a
// path. Build one with NewMask or NewMaskWithScratch, chain setters to
// configure it, then call Render or RenderInto.
type Mask struct {
	data      path.Data
	style     stroke.Style
	transform *geometry.Transform
	format    Format
	shifts    [3]float32
	origin    geometry.Origin
	offset    geometry.Vector

	renderOffset geometry.Vector
	width        uint32
	height       uint32
	explicitSize bool
	hasSize      bool
	boundsOffset geometry.Vector

	scratch *Scratch
}

// NewMask returns a Mask builder for data, defaulting to an 8-bit alpha
// mask of a NonZero fill with no transform, top-left origin, and a size
// computed from data's bounds.
func NewMask(data path.Data) *Mask {
	return &Mask{data: data, style: stroke.FillStyle(stroke.NonZero), shifts: defaultSubpixelShifts}
}

// NewMaskWithScratch is NewMask, reusing scratch's segment buffer and
// cell storage across renders instead of allocating fresh ones.
func NewMaskWithScratch(data path.Data, scratch *Scratch) *Mask {
	m := NewMask(data)
	m.scratch = scratch
	return m
}

// Style sets the fill or stroke style the path is rendered under.
func (m *Mask) Style(style stroke.Style) *Mask { m.style = style; return m }

// Transform sets the transform applied to the path before rendering.
func (m *Mask) Transform(transform *geometry.Transform) *Mask { m.transform = transform; return m }

// Format sets the output pixel format. CustomSubpixel uses shifts; pass
// [3]float32{-0.3, 0, 0.3} (or SubpixelBGRA's) directly via
// CustomFormat.
func (m *Mask) Format(format Format) *Mask {
	m.format = format
	if format != CustomSubpixel {
		m.shifts = defaultSubpixelShifts
	}
	return m
}

// CustomFormat sets the format to CustomSubpixel with the given
// per-channel horizontal shifts, in pixels.
func (m *Mask) CustomFormat(shifts [3]float32) *Mask {
	m.format = CustomSubpixel
	m.shifts = shifts
	return m
}

// SubpixelBGRA configures Subpixel-style rendering with BGR channel
// ordering instead of the default RGB.
func (m *Mask) SubpixelBGRA() *Mask {
	return m.CustomFormat([3]float32{0.3, 0, -0.3})
}

// Origin sets which corner of the output is the coordinate origin.
func (m *Mask) Origin(origin geometry.Origin) *Mask { m.origin = origin; return m }

// Offset sets the offset applied to the path before rendering and
// before bounds/size computation.
func (m *Mask) Offset(offset geometry.Vector) *Mask { m.offset = offset; return m }

// Size sets an explicit output size, skipping the bounds computation
// that would otherwise determine it.
func (m *Mask) Size(width, height uint32) *Mask {
	m.width, m.height = width, height
	m.explicitSize = true
	m.hasSize = true
	return m
}

// RenderOffset sets an additional offset applied only while rendering,
// not while computing bounds or size.
func (m *Mask) RenderOffset(offset geometry.Vector) *Mask { m.renderOffset = offset; return m }

// Inspect calls f with the format, width and height the mask will
// render at, computing them first if necessary, and returns m
// unchanged so the call can be chained.
func (m *Mask) Inspect(f func(format Format, width, height uint32)) *Mask {
	m.ensureSize()
	f(m.format, m.width, m.height)
	return m
}

func (m *Mask) ensureSize() {
	if m.hasSize {
		return
	}
	offset, placement := m.placement()
	m.boundsOffset = offset
	m.width, m.height = placement.Width, placement.Height
	m.explicitSize = false
	m.hasSize = true
}

func (m *Mask) placement() (geometry.Vector, geometry.Placement) {
	if m.explicitSize {
		return m.offset, geometry.Placement{Width: m.width, Height: m.height}
	}
	if m.hasSize {
		return m.boundsOffset, placementFromOffset(m.origin, m.boundsOffset, m.width, m.height)
	}
	var bounds geometry.Bounds
	if m.scratch != nil {
		bounds = m.scratch.Bounds(m.data, m.style, m.transform)
	} else {
		bounds = stroke.Bounds(m.data, m.style, m.transform)
	}
	return geometry.ComputePlacement(m.origin, m.offset, bounds)
}

// placementFromOffset recomputes the same Left/Top tail that
// geometry.ComputePlacement derives from an offset, for a Mask that has
// already cached its offset and size from an earlier bounds pass.
func placementFromOffset(origin geometry.Origin, offset geometry.Vector, width, height uint32) geometry.Placement {
	left := int32(-offset.X)
	var top int32
	if origin == geometry.BottomLeft {
		top = int32(math.Floor(float64(-offset.Y)) + float64(height))
	} else {
		top = int32(-offset.Y)
	}
	return geometry.Placement{Left: left, Top: top, Width: width, Height: height}
}

// Render renders the mask into a newly allocated buffer, tightly
// packed with no extra row padding.
func (m *Mask) Render() ([]byte, geometry.Placement) {
	offset, placement := m.placement()
	buf := make([]byte, m.format.BufferSize(placement.Width, placement.Height))
	pitch := int(placement.Width) * m.format.BytesPerPixel()
	m.render(offset, placement, buf, pitch)
	return buf, placement
}

// RenderInto renders the mask into buf, which must be large enough to
// hold the computed placement under pitch (in bytes between
// consecutive rows; 0 means tightly packed).
func (m *Mask) RenderInto(buf []byte, pitch int) geometry.Placement {
	offset, placement := m.placement()
	if pitch == 0 {
		pitch = int(placement.Width) * m.format.BytesPerPixel()
	}
	m.render(offset, placement, buf, pitch)
	return placement
}

func (m *Mask) render(offset geometry.Vector, placement geometry.Placement, buf []byte, pitch int) {
	yUp := m.origin == geometry.BottomLeft
	shift := offset.Add(m.renderOffset)
	w, h := int(placement.Width), int(placement.Height)

	var ras *Rasterizer
	if m.scratch != nil {
		ras = New(&m.scratch.cells)
	} else {
		ras = New(NewAdaptiveStorage())
	}

	applyPath := func(r *Rasterizer) {
		if m.scratch != nil {
			m.scratch.Apply(m.data, m.style, m.transform, r)
		} else {
			stroke.Apply(m.data, m.style, m.transform, r)
		}
	}
	fill := fillRuleOf(m.style)

	if m.format == Alpha {
		ras.Rasterize(shift, w, h, applyPath, fill, buf, pitch, yUp)
		return
	}

	for channel, dx := range m.shifts {
		ch := channel
		ras.RasterizeWrite(shift.Add(geometry.Vec(dx, 0)), w, h, applyPath, fill, pitch, yUp,
			func(rowOffset, x, count int, c byte) {
				row := buf[rowOffset:]
				j := x*4 + ch
				for i := 0; i < count; i++ {
					row[j] = c
					j += 4
				}
			})
	}
}

// fillRuleOf returns the fill rule a rendered style scan-converts
// under: style's own rule for a fill, or NonZero for a stroke (the
// stroker's inner/outer offset boundaries only describe the stroked
// region together under non-zero winding).
func fillRuleOf(style stroke.Style) stroke.Fill {
	if style.Kind == stroke.StyleStroke {
		return stroke.NonZero
	}
	return style.Fill
}
