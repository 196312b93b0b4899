// Copyright 2026 The zeno Authors
// SPDX-License-Identifier: MIT

// Package testcases is a table of shared rendering fixtures, grouped by
// category, used to exercise the stroke and raster packages the same
// way across several _test.go files instead of redefining the same
// handful of shapes in each one.
package testcases

import (
	"math"

	"github.com/dfrg/zeno/geometry"
	"github.com/dfrg/zeno/path"
	"github.com/dfrg/zeno/stroke"
)

// TestCase names a path-under-a-style rendering scenario: a canvas
// size, a path builder function, and the fill or stroke style to
// render it under.
type TestCase struct {
	Name      string
	Width     int
	Height    int
	Build     func(*path.Buffer)
	Style     stroke.Style
	Transform *geometry.Transform
}

// Data returns the case's path as path.Data.
func (tc TestCase) Data() path.Data {
	var buf path.Buffer
	tc.Build(&buf)
	return path.Commands(buf.Commands)
}

// All contains every test case, grouped by category. The category name
// is used as a prefix when a case name needs to be disambiguated.
var All = map[string][]TestCase{
	"fill":      fillCases,
	"stroke":    strokeCases,
	"curve":     curveCases,
	"dash":      dashCases,
	"ctm":       ctmCases,
	"precision": precisionCases,
	"complex":   complexCases,
	"subpath":   subpathCases,
}

var fillCases = []TestCase{
	{
		Name:   "triangle_nonzero",
		Width:  64,
		Height: 64,
		Build:  triangle(10, 50, 32, 10, 54, 50),
		Style:  stroke.FillStyle(stroke.NonZero),
	},
	{
		Name:   "triangle_evenodd",
		Width:  64,
		Height: 64,
		Build:  triangle(10, 50, 32, 10, 54, 50),
		Style:  stroke.FillStyle(stroke.EvenOdd),
	},
	{
		Name:   "star_nonzero",
		Width:  64,
		Height: 64,
		Build:  fivePointStar(32, 32, 25),
		Style:  stroke.FillStyle(stroke.NonZero),
	},
	{
		Name:   "star_evenodd",
		Width:  64,
		Height: 64,
		Build:  fivePointStar(32, 32, 25),
		Style:  stroke.FillStyle(stroke.EvenOdd),
	},
	{
		Name:   "concentric_rect_nonzero",
		Width:  64,
		Height: 64,
		Build:  concentricRectangles(32, 32, 25, 12),
		Style:  stroke.FillStyle(stroke.NonZero),
	},
	{
		Name:   "concentric_rect_evenodd",
		Width:  64,
		Height: 64,
		Build:  concentricRectangles(32, 32, 25, 12),
		Style:  stroke.FillStyle(stroke.EvenOdd),
	},
	{
		Name:   "overlapping_circles_nonzero",
		Width:  64,
		Height: 64,
		Build:  overlappingCircles(24, 32, 44, 32, 16),
		Style:  stroke.FillStyle(stroke.NonZero),
	},
	{
		Name:   "overlapping_circles_evenodd",
		Width:  64,
		Height: 64,
		Build:  overlappingCircles(24, 32, 44, 32, 16),
		Style:  stroke.FillStyle(stroke.EvenOdd),
	},
	{
		Name:   "high_winding_nonzero",
		Width:  64,
		Height: 64,
		Build:  highWindingRect(32, 32, 20, 3),
		Style:  stroke.FillStyle(stroke.NonZero),
	},
	{
		Name:   "high_winding_evenodd",
		Width:  64,
		Height: 64,
		Build:  highWindingRect(32, 32, 20, 3),
		Style:  stroke.FillStyle(stroke.EvenOdd),
	},
}

var strokeCases = []TestCase{
	{
		Name:   "line_butt",
		Width:  64,
		Height: 64,
		Build:  horizontalLine(10, 32, 54),
		Style: stroke.StrokeStyle(stroke.Stroke{
			Width: 8, StartCap: stroke.ButtCap, EndCap: stroke.ButtCap,
			Join: stroke.MiterJoin, MiterLimit: 10,
		}),
	},
	{
		Name:   "line_round",
		Width:  64,
		Height: 64,
		Build:  horizontalLine(10, 32, 54),
		Style: stroke.StrokeStyle(stroke.Stroke{
			Width: 8, StartCap: stroke.RoundCap, EndCap: stroke.RoundCap,
			Join: stroke.MiterJoin, MiterLimit: 10,
		}),
	},
	{
		Name:   "line_square",
		Width:  64,
		Height: 64,
		Build:  horizontalLine(10, 32, 54),
		Style: stroke.StrokeStyle(stroke.Stroke{
			Width: 8, StartCap: stroke.SquareCap, EndCap: stroke.SquareCap,
			Join: stroke.MiterJoin, MiterLimit: 10,
		}),
	},
	{
		Name:   "corner_miter",
		Width:  64,
		Height: 64,
		Build:  corner(10, 50, 32, 14, 54, 50),
		Style: stroke.StrokeStyle(stroke.Stroke{
			Width: 6, StartCap: stroke.ButtCap, EndCap: stroke.ButtCap,
			Join: stroke.MiterJoin, MiterLimit: 10,
		}),
	},
	{
		Name:   "corner_round",
		Width:  64,
		Height: 64,
		Build:  corner(10, 50, 32, 14, 54, 50),
		Style: stroke.StrokeStyle(stroke.Stroke{
			Width: 6, StartCap: stroke.ButtCap, EndCap: stroke.ButtCap,
			Join: stroke.RoundJoin, MiterLimit: 10,
		}),
	},
	{
		Name:   "corner_bevel",
		Width:  64,
		Height: 64,
		Build:  corner(10, 50, 32, 14, 54, 50),
		Style: stroke.StrokeStyle(stroke.Stroke{
			Width: 6, StartCap: stroke.ButtCap, EndCap: stroke.ButtCap,
			Join: stroke.BevelJoin, MiterLimit: 10,
		}),
	},
	{
		Name:   "zero_length_round_cap",
		Width:  64,
		Height: 64,
		Build:  zeroLengthPath(32, 32),
		Style: stroke.StrokeStyle(stroke.Stroke{
			Width: 10, StartCap: stroke.RoundCap, EndCap: stroke.RoundCap,
			Join: stroke.MiterJoin, MiterLimit: 10,
		}),
	},
	{
		Name:   "closed_triangle",
		Width:  64,
		Height: 64,
		Build:  closedTriangle(32, 10, 54, 50, 10, 50),
		Style: stroke.StrokeStyle(stroke.Stroke{
			Width: 5, Join: stroke.MiterJoin, MiterLimit: 10,
		}),
	},
}

var curveCases = []TestCase{
	{
		Name:   "quadratic_filled",
		Width:  64,
		Height: 64,
		Build:  quadraticCurve(10, 54, 32, 5, 54, 54),
		Style:  stroke.FillStyle(stroke.NonZero),
	},
	{
		Name:   "cubic_filled",
		Width:  64,
		Height: 64,
		Build:  cubicCurve(10, 54, 10, 10, 54, 10, 54, 54),
		Style:  stroke.FillStyle(stroke.NonZero),
	},
	{
		Name:   "s_curve_stroked",
		Width:  64,
		Height: 64,
		Build:  sCurveQuadratic(10, 54, 54, 10),
		Style:  stroke.StrokeStyle(stroke.Stroke{Width: 4, Join: stroke.RoundJoin}),
	},
	{
		Name:   "circle_filled",
		Width:  64,
		Height: 64,
		Build:  circleCase(32, 32, 25),
		Style:  stroke.FillStyle(stroke.NonZero),
	},
	{
		Name:   "ellipse_filled",
		Width:  64,
		Height: 64,
		Build:  ellipseCase(32, 32, 28, 16),
		Style:  stroke.FillStyle(stroke.NonZero),
	},
	{
		Name:   "arc_quarter_stroked",
		Width:  64,
		Height: 64,
		Build:  arcCase(32, 32, 25, 0, 0.25),
		Style:  stroke.StrokeStyle(stroke.Stroke{Width: 3}),
	},
}

var dashCases = []TestCase{
	{
		Name:   "dashed_line",
		Width:  64,
		Height: 64,
		Build:  horizontalLine(5, 32, 59),
		Style: stroke.StrokeStyle(stroke.Stroke{
			Width: 4, Join: stroke.MiterJoin, MiterLimit: 10,
			Dashes: []float32{8, 4},
		}),
	},
	{
		Name:   "dashed_line_phase",
		Width:  64,
		Height: 64,
		Build:  horizontalLine(5, 32, 59),
		Style: stroke.StrokeStyle(stroke.Stroke{
			Width: 4, Join: stroke.MiterJoin, MiterLimit: 10,
			Dashes: []float32{8, 4}, Offset: 4,
		}),
	},
	{
		Name:   "dashed_corner",
		Width:  64,
		Height: 64,
		Build:  cornerAngle(10, 32, 32, 32, 45),
		Style: stroke.StrokeStyle(stroke.Stroke{
			Width: 3, Join: stroke.RoundJoin,
			Dashes: []float32{5, 3},
		}),
	},
	{
		Name:   "dashed_closed_square",
		Width:  64,
		Height: 64,
		Build:  closedSquare(16, 16, 32),
		Style: stroke.StrokeStyle(stroke.Stroke{
			Width: 3, Join: stroke.MiterJoin, MiterLimit: 10,
			Dashes: []float32{6, 6},
		}),
	},
}

var ctmCases = []TestCase{
	{
		Name:      "scaled_rect",
		Width:     64,
		Height:    64,
		Build:     rectangle(0, 0, 16, 16),
		Style:     stroke.FillStyle(stroke.NonZero),
		Transform: transformPtr(geometry.Scale(2, 2)),
	},
	{
		Name:      "rotated_line_stroked",
		Width:     64,
		Height:    64,
		Build:     horizontalLineCentered(10, 32, 54),
		Style:     stroke.StrokeStyle(stroke.Stroke{Width: 4}),
		Transform: transformPtr(geometry.Rotation(math.Pi / 6)),
	},
	{
		Name:      "translated_rect",
		Width:     64,
		Height:    64,
		Build:     rectangle(0, 0, 20, 20),
		Style:     stroke.FillStyle(stroke.NonZero),
		Transform: transformPtr(geometry.Translation(12, 12)),
	},
}

var precisionCases = []TestCase{
	{
		Name:   "offset_rectangle_fraction",
		Width:  64,
		Height: 64,
		Build:  offsetRectangle(10, 10, 20, 20, 0.5),
		Style:  stroke.FillStyle(stroke.NonZero),
	},
	{
		Name:   "horizontal_line_at_pixel_center",
		Width:  64,
		Height: 64,
		Build:  horizontalLineAt(5, 32.5, 59),
		Style:  stroke.StrokeStyle(stroke.Stroke{Width: 1}),
	},
	{
		Name:   "large_offset_rectangle",
		Width:  64,
		Height: 64,
		Build:  largeOffsetRectangle(1e5, 1e5, 20),
		Style:  stroke.FillStyle(stroke.NonZero),
	},
	{
		Name:   "small_shape_at_large_offset",
		Width:  64,
		Height: 64,
		Build:  smallShapeAtLargeOffset(1e6, 1e6, 4),
		Style:  stroke.FillStyle(stroke.NonZero),
	},
}

var complexCases = []TestCase{
	{
		Name:   "mixed_lines_curves",
		Width:  64,
		Height: 64,
		Build:  mixedLinesCurves,
		Style:  stroke.FillStyle(stroke.NonZero),
	},
	{
		Name:   "glyph_like_shape",
		Width:  64,
		Height: 64,
		Build:  glyphLikeShape,
		Style:  stroke.FillStyle(stroke.NonZero),
	},
	{
		Name:   "spiral_stroked",
		Width:  64,
		Height: 64,
		Build:  spiralPath(32, 32, 4, 28, 3),
		Style:  stroke.StrokeStyle(stroke.Stroke{Width: 2, Join: stroke.RoundJoin}),
	},
	{
		Name:   "zigzag_stroked",
		Width:  64,
		Height: 64,
		Build:  zigzagPath(5, 32, 59, 10),
		Style:  stroke.StrokeStyle(stroke.Stroke{Width: 3, Join: stroke.RoundJoin}),
	},
}

var subpathCases = []TestCase{
	{
		Name:   "two_triangles",
		Width:  64,
		Height: 64,
		Build:  twoTriangles(16, 32, 48, 32, 10),
		Style:  stroke.FillStyle(stroke.NonZero),
	},
	{
		Name:   "overlapping_rectangles",
		Width:  64,
		Height: 64,
		Build:  overlappingRectangles(10, 10, 35, 35, 25, 25, 50, 50),
		Style:  stroke.FillStyle(stroke.EvenOdd),
	},
	{
		Name:   "ring_shape",
		Width:  64,
		Height: 64,
		Build:  ringShape(32, 32, 25, 12),
		Style:  stroke.FillStyle(stroke.EvenOdd),
	},
	{
		Name:   "multiple_rings",
		Width:  64,
		Height: 64,
		Build:  multipleRings(32, 32),
		Style:  stroke.FillStyle(stroke.EvenOdd),
	},
}

// --- path-construction helpers, grounded on the teacher's testcases
// package but rebuilt over this module's own path.Buffer. ---

func transformPtr(t geometry.Transform) *geometry.Transform { return &t }

func triangle(x1, y1, x2, y2, x3, y3 float32) func(*path.Buffer) {
	return func(b *path.Buffer) {
		b.MoveTo(geometry.Vec(x1, y1))
		b.LineTo(geometry.Vec(x2, y2))
		b.LineTo(geometry.Vec(x3, y3))
		b.Close()
	}
}

func fivePointStar(cx, cy, r float32) func(*path.Buffer) {
	return func(b *path.Buffer) {
		const points = 5
		for i := 0; i < points*2; i++ {
			radius := r
			if i%2 == 1 {
				radius = r * 0.382
			}
			angle := float32(i)*math.Pi/points - math.Pi/2
			p := geometry.Vec(cx+radius*float32(math.Cos(float64(angle))), cy+radius*float32(math.Sin(float64(angle))))
			if i == 0 {
				b.MoveTo(p)
			} else {
				b.LineTo(p)
			}
		}
		b.Close()
	}
}

func rectangle(x1, y1, x2, y2 float32) func(*path.Buffer) {
	return func(b *path.Buffer) { path.AddRect(b, geometry.Vec(x1, y1), x2-x1, y2-y1) }
}

func concentricRectangles(cx, cy, outerSize, innerSize float32) func(*path.Buffer) {
	return func(b *path.Buffer) {
		path.AddRect(b, geometry.Vec(cx-outerSize/2, cy-outerSize/2), outerSize, outerSize)
		path.AddRect(b, geometry.Vec(cx-innerSize/2, cy-innerSize/2), innerSize, innerSize)
	}
}

func overlappingCircles(cx1, cy1, cx2, cy2, r float32) func(*path.Buffer) {
	return func(b *path.Buffer) {
		path.AddCircle(b, geometry.Vec(cx1, cy1), r)
		path.AddCircle(b, geometry.Vec(cx2, cy2), r)
	}
}

func highWindingRect(cx, cy, size float32, windings int) func(*path.Buffer) {
	return func(b *path.Buffer) {
		for i := 0; i < windings; i++ {
			path.AddRect(b, geometry.Vec(cx-size/2, cy-size/2), size, size)
		}
	}
}

func horizontalLine(x1, y, x2 float32) func(*path.Buffer) {
	return func(b *path.Buffer) {
		b.MoveTo(geometry.Vec(x1, y))
		b.LineTo(geometry.Vec(x2, y))
	}
}

func horizontalLineCentered(x1, y, x2 float32) func(*path.Buffer) {
	return horizontalLine(x1-(x1+x2)/2, y, x2-(x1+x2)/2)
}

func horizontalLineAt(x1, y, x2 float32) func(*path.Buffer) { return horizontalLine(x1, y, x2) }

func corner(x1, y1, x2, y2, x3, y3 float32) func(*path.Buffer) {
	return func(b *path.Buffer) {
		b.MoveTo(geometry.Vec(x1, y1))
		b.LineTo(geometry.Vec(x2, y2))
		b.LineTo(geometry.Vec(x3, y3))
	}
}

func zeroLengthPath(x, y float32) func(*path.Buffer) {
	return func(b *path.Buffer) {
		b.MoveTo(geometry.Vec(x, y))
		b.LineTo(geometry.Vec(x, y))
	}
}

func closedTriangle(x1, y1, x2, y2, x3, y3 float32) func(*path.Buffer) {
	return triangle(x1, y1, x2, y2, x3, y3)
}

func cornerAngle(x1, y1, cx, cy, angleDeg float32) func(*path.Buffer) {
	rad := angleDeg * math.Pi / 180
	armLength := float32(math.Hypot(float64(cx-x1), float64(cy-y1)))
	x2 := cx + armLength*float32(math.Cos(float64(rad)))
	y2 := cy + armLength*float32(math.Sin(float64(rad)))
	return corner(x1, y1, cx, cy, x2, y2)
}

func closedSquare(x, y, side float32) func(*path.Buffer) {
	return func(b *path.Buffer) { path.AddRect(b, geometry.Vec(x, y), side, side) }
}

func quadraticCurve(x1, y1, cx, cy, x2, y2 float32) func(*path.Buffer) {
	return func(b *path.Buffer) {
		b.MoveTo(geometry.Vec(x1, y1))
		b.QuadTo(geometry.Vec(cx, cy), geometry.Vec(x2, y2))
		b.Close()
	}
}

func cubicCurve(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float32) func(*path.Buffer) {
	return func(b *path.Buffer) {
		b.MoveTo(geometry.Vec(x1, y1))
		b.CurveTo(geometry.Vec(c1x, c1y), geometry.Vec(c2x, c2y), geometry.Vec(x2, y2))
		b.Close()
	}
}

func sCurveQuadratic(x1, y1, x2, y2 float32) func(*path.Buffer) {
	return func(b *path.Buffer) {
		b.MoveTo(geometry.Vec(x1, y1))
		midX, midY := (x1+x2)/2, (y1+y2)/2
		b.QuadTo(geometry.Vec(x1, midY), geometry.Vec(midX, midY))
		b.QuadTo(geometry.Vec(x2, midY), geometry.Vec(x2, y2))
	}
}

func circleCase(cx, cy, r float32) func(*path.Buffer) {
	return func(b *path.Buffer) { path.AddCircle(b, geometry.Vec(cx, cy), r) }
}

func ellipseCase(cx, cy, rx, ry float32) func(*path.Buffer) {
	return func(b *path.Buffer) { path.AddEllipse(b, geometry.Vec(cx, cy), rx, ry) }
}

func arcCase(cx, cy, r, startFraction, endFraction float32) func(*path.Buffer) {
	return func(b *path.Buffer) {
		start := startFraction * 2 * math.Pi
		end := endFraction * 2 * math.Pi
		const steps = 16
		for i := 0; i <= steps; i++ {
			t := start + (end-start)*float32(i)/steps
			p := geometry.Vec(cx+r*float32(math.Cos(float64(t))), cy+r*float32(math.Sin(float64(t))))
			if i == 0 {
				b.MoveTo(p)
			} else {
				b.LineTo(p)
			}
		}
	}
}

func offsetRectangle(x1, y1, w, h, offset float32) func(*path.Buffer) {
	return rectangle(x1+offset, y1+offset, x1+offset+w, y1+offset+h)
}

func largeOffsetRectangle(cx, cy, size float32) func(*path.Buffer) {
	return rectangle(cx-size/2, cy-size/2, cx+size/2, cy+size/2)
}

func smallShapeAtLargeOffset(cx, cy, size float32) func(*path.Buffer) {
	return triangle(cx, cy-size, cx+size, cy+size, cx-size, cy+size)
}

func mixedLinesCurves(b *path.Buffer) {
	b.MoveTo(geometry.Vec(10, 32))
	b.LineTo(geometry.Vec(24, 10))
	b.QuadTo(geometry.Vec(40, 5), geometry.Vec(54, 32))
	b.CurveTo(geometry.Vec(50, 50), geometry.Vec(30, 54), geometry.Vec(10, 32))
	b.Close()
}

func glyphLikeShape(b *path.Buffer) {
	path.AddRect(b, geometry.Vec(20, 10), 24, 44)
	path.AddRect(b, geometry.Vec(26, 20), 12, 10)
}

func spiralPath(cx, cy, rMin, rMax, turns float32) func(*path.Buffer) {
	return func(b *path.Buffer) {
		const steps = 64
		for i := 0; i <= steps; i++ {
			t := float32(i) / steps
			r := rMin + (rMax-rMin)*t
			angle := t * turns * 2 * math.Pi
			p := geometry.Vec(cx+r*float32(math.Cos(float64(angle))), cy+r*float32(math.Sin(float64(angle))))
			if i == 0 {
				b.MoveTo(p)
			} else {
				b.LineTo(p)
			}
		}
	}
}

func zigzagPath(x1, cy, x2, amplitude float32) func(*path.Buffer) {
	return func(b *path.Buffer) {
		const segments = 6
		step := (x2 - x1) / segments
		for i := 0; i <= segments; i++ {
			x := x1 + step*float32(i)
			y := cy
			if i%2 == 1 {
				y += amplitude
			}
			p := geometry.Vec(x, y)
			if i == 0 {
				b.MoveTo(p)
			} else {
				b.LineTo(p)
			}
		}
	}
}

func twoTriangles(cx1, cy1, cx2, cy2, size float32) func(*path.Buffer) {
	return func(b *path.Buffer) {
		triangle(cx1, cy1-size, cx1+size, cy1+size, cx1-size, cy1+size)(b)
		triangle(cx2, cy2-size, cx2+size, cy2+size, cx2-size, cy2+size)(b)
	}
}

func overlappingRectangles(x1a, y1a, x2a, y2a, x1b, y1b, x2b, y2b float32) func(*path.Buffer) {
	return func(b *path.Buffer) {
		path.AddRect(b, geometry.Vec(x1a, y1a), x2a-x1a, y2a-y1a)
		path.AddRect(b, geometry.Vec(x1b, y1b), x2b-x1b, y2b-y1b)
	}
}

func ringShape(cx, cy, outerSize, innerSize float32) func(*path.Buffer) {
	return func(b *path.Buffer) {
		path.AddCircle(b, geometry.Vec(cx, cy), outerSize/2)
		path.AddCircle(b, geometry.Vec(cx, cy), innerSize/2)
	}
}

func multipleRings(cx, cy float32) func(*path.Buffer) {
	return func(b *path.Buffer) {
		ringShape(cx, cy, 44, 32)(b)
		ringShape(cx, cy, 24, 12)(b)
	}
}
