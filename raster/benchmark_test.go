// Copyright 2026 The zeno Authors
// SPDX-License-Identifier: MIT

package raster_test

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"

	"github.com/dfrg/zeno/geometry"
	"github.com/dfrg/zeno/path"
	"github.com/dfrg/zeno/raster"
	"github.com/dfrg/zeno/stroke"
)

// ringCircleKappa is the cubic Bezier approximation constant for a
// quarter circle, matching path.AddEllipse's.
const ringCircleKappa = 0.551915024494

// addRingCircle adds a circle to buf, counter-clockwise unless cw is
// set, so that an outer and an inner call with opposite windings form
// a ring under a NonZero fill.
func addRingCircle(buf *path.Buffer, cx, cy, r float32, cw bool) {
	kr := ringCircleKappa * r
	pt := geometry.Vec
	if cw {
		buf.MoveTo(pt(cx, cy-r))
		buf.CurveTo(pt(cx-kr, cy-r), pt(cx-r, cy-kr), pt(cx-r, cy))
		buf.CurveTo(pt(cx-r, cy+kr), pt(cx-kr, cy+r), pt(cx, cy+r))
		buf.CurveTo(pt(cx+kr, cy+r), pt(cx+r, cy+kr), pt(cx+r, cy))
		buf.CurveTo(pt(cx+r, cy-kr), pt(cx+kr, cy-r), pt(cx, cy-r))
	} else {
		buf.MoveTo(pt(cx, cy-r))
		buf.CurveTo(pt(cx+kr, cy-r), pt(cx+r, cy-kr), pt(cx+r, cy))
		buf.CurveTo(pt(cx+r, cy+kr), pt(cx+kr, cy+r), pt(cx, cy+r))
		buf.CurveTo(pt(cx-kr, cy+r), pt(cx-r, cy+kr), pt(cx-r, cy))
		buf.CurveTo(pt(cx-r, cy-kr), pt(cx-kr, cy-r), pt(cx, cy-r))
	}
	buf.Close()
}

// ringPath returns an "O" shape: an outer circle wound one way and an
// inner circle wound the other, so NonZero filling leaves a ring.
func ringPath(size float32) path.Commands {
	center := size / 2
	outerR := size * 0.45
	innerR := size * 0.30
	var buf path.Buffer
	addRingCircle(&buf, center, center, outerR, false)
	addRingCircle(&buf, center, center, innerR, true)
	return path.Commands(buf.Commands)
}

// addRingToVector draws the same "O" shape into a vector.Rasterizer,
// for a side-by-side comparison against BenchmarkMaskFill.
func addRingToVector(r *vector.Rasterizer, cx, cy, radius float32, cw bool) {
	kr := ringCircleKappa * radius
	if cw {
		r.MoveTo(cx, cy-radius)
		r.CubeTo(cx-kr, cy-radius, cx-radius, cy-kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy+kr, cx-kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx+kr, cy+radius, cx+radius, cy+kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy-kr, cx+kr, cy-radius, cx, cy-radius)
	} else {
		r.MoveTo(cx, cy-radius)
		r.CubeTo(cx+kr, cy-radius, cx+radius, cy-kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy+kr, cx+kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx-kr, cy+radius, cx-radius, cy+kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy-kr, cx-kr, cy-radius, cx, cy-radius)
	}
	r.ClosePath()
}

var benchSizes = []int{20, 200, 2000}

// BenchmarkMaskFill benchmarks this package's own scan-conversion
// rasterizer filling a ring-shaped path.
func BenchmarkMaskFill(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			data := ringPath(float32(size))
			style := stroke.FillStyle(stroke.NonZero)
			scratch := raster.NewScratch()

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				raster.NewMaskWithScratch(data, scratch).
					Style(style).
					Size(uint32(size), uint32(size)).
					Render()
			}
		})
	}
}

// BenchmarkVectorFill benchmarks golang.org/x/image/vector filling the
// same ring shape, as a comparison baseline for BenchmarkMaskFill.
func BenchmarkVectorFill(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			center := float32(size) / 2
			outerR := float32(size) * 0.45
			innerR := float32(size) * 0.30

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r := vector.NewRasterizer(size, size)
				addRingToVector(r, center, center, outerR, false)
				addRingToVector(r, center, center, innerR, true)
				dst := image.NewAlpha(image.Rect(0, 0, size, size))
				r.Draw(dst, dst.Bounds(), image.NewUniform(color.Alpha{255}), image.Point{})
			}
		})
	}
}
