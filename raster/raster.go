// Copyright 2026 The zeno Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"github.com/dfrg/zeno/geometry"
	"github.com/dfrg/zeno/stroke"
)

// coverage converts accumulated fixed-point cover/area (in units of
// ONE_PIXEL squared, doubled) into an 8-bit alpha value under the given
// fill rule.
func coverage(fill stroke.Fill, cover int32) byte {
	cover >>= geometry.PixelBits*2 + 1 - 8
	if fill == stroke.EvenOdd {
		cover &= 511
		if cover >= 256 {
			cover = 511 - cover
		}
	} else {
		if cover < 0 {
			cover = ^cover
		}
		if cover >= 256 {
			cover = 255
		}
	}
	return byte(cover)
}

// Rasterizer scan-converts a path, delivered through its command.Sink
// methods, into per-pixel coverage. Create one with New, reuse it across
// calls to Rasterize/RasterizeWrite, and supply a Storage sized to the
// job (HeapStorage for a reused Scratch, AdaptiveStorage for a one-off
// render).
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	storage            Storage
	xmin, xmax         int32
	ymin, ymax         int32
	height             int32
	shift              geometry.Vector
	start              geometry.FixedPoint
	closed             bool
	current            geometry.Point
	x, y               int32
	px, py             geometry.Fixed
	cover, area        int32
	invalid            bool
}

// New returns a Rasterizer that accumulates cells into storage.
func New(storage Storage) *Rasterizer {
	return &Rasterizer{storage: storage}
}

// Rasterize scan-converts the path built by apply into buf, an
// 8-bit-per-pixel coverage buffer of the given width and height. shift
// is added to every point before conversion to fixed point, letting
// callers offset the path to a sub-pixel position without transforming
// it. If yUp, row 0 of the path's coordinate system is written to the
// last row of buf; otherwise row 0 is written first.
func (r *Rasterizer) Rasterize(shift geometry.Vector, width, height int, apply func(*Rasterizer), fill stroke.Fill, buf []byte, pitch int, yUp bool) {
	r.reset(shift, width, height)
	apply(r)
	r.finish()

	indices := r.storage.Indices()
	cells := r.storage.Cells()
	xmin := r.xmin
	h := height
	for i, index := range indices {
		if index == -1 {
			continue
		}
		y := i - int(r.ymin)
		var rowOffset int
		if yUp {
			rowOffset = pitch * (h - 1 - y)
		} else {
			rowOffset = pitch * y
		}
		row := buf[rowOffset:]
		x := xmin
		var cover int32
		for {
			cell := cells[index]
			if cover != 0 && cell.X > x {
				c := coverage(fill, cover)
				fillSpan(row, int(x), int(cell.X-x), c)
			}
			cover += cell.Cover * int32(geometry.OnePixel) * 2
			area := cover - cell.Area
			if area != 0 && cell.X >= xmin {
				fillSpan(row, int(cell.X), 1, coverage(fill, area))
			}
			x = cell.X + 1
			index = cell.Next
			if index == -1 {
				break
			}
		}
		if cover != 0 {
			c := coverage(fill, cover)
			fillSpan(row, int(x), int(r.xmax-x), c)
		}
	}
}

func fillSpan(row []byte, x, count int, c byte) {
	for i := 0; i < count; i++ {
		row[x+i] = c
	}
}

// RasterizeWrite is Rasterize's streaming counterpart: instead of
// writing into a tightly-packed buffer, each span is reported through
// write(rowOffset, x, count, coverage), letting callers stride across a
// 4-byte pixel (for the subpixel mask formats) or target a tiled
// texture atlas.
func (r *Rasterizer) RasterizeWrite(shift geometry.Vector, width, height int, apply func(*Rasterizer), fill stroke.Fill, pitch int, yUp bool, write func(rowOffset, x, count int, coverage byte)) {
	r.reset(shift, width, height)
	apply(r)
	r.finish()

	indices := r.storage.Indices()
	cells := r.storage.Cells()
	xmin := r.xmin
	h := height
	for i, index := range indices {
		if index == -1 {
			continue
		}
		y := i - int(r.ymin)
		var rowOffset int
		if yUp {
			rowOffset = pitch * (h - 1 - y)
		} else {
			rowOffset = pitch * y
		}
		x := xmin
		var cover int32
		for {
			cell := cells[index]
			if cover != 0 && cell.X > x {
				write(rowOffset, int(x), int(cell.X-x), coverage(fill, cover))
			}
			cover += cell.Cover * int32(geometry.OnePixel) * 2
			area := cover - cell.Area
			if area != 0 && cell.X >= xmin {
				write(rowOffset, int(cell.X), 1, coverage(fill, area))
			}
			x = cell.X + 1
			index = cell.Next
			if index == -1 {
				break
			}
		}
		if cover != 0 {
			write(rowOffset, int(x), int(r.xmax-x), coverage(fill, cover))
		}
	}
}

func (r *Rasterizer) reset(shift geometry.Vector, width, height int) {
	w, h := int32(width), int32(height)
	r.storage.Reset(geometry.FixedPoint{}, geometry.FixedPoint{X: geometry.Fixed(w), Y: geometry.Fixed(h)})
	r.shift = shift
	r.start = geometry.FixedPoint{}
	r.closed = true
	r.current = geometry.Zero
	r.xmin, r.ymin = 0, 0
	r.xmax, r.ymax = w, h
	r.height = h
	r.x, r.y = 0, 0
	r.px, r.py = 0, 0
	r.invalid = true
}

func (r *Rasterizer) finish() {
	if !r.closed {
		r.lineToFixed(r.start)
	}
	if !r.invalid {
		r.storage.Set(r.x, r.y, r.area, r.cover)
	}
}

func (r *Rasterizer) setCell(x, y int32) {
	if !r.invalid && (r.area != 0 || r.cover != 0) {
		r.storage.Set(r.x, r.y, r.area, r.cover)
	}
	r.area = 0
	r.cover = 0
	if x > r.xmin-1 {
		r.x = x
	} else {
		r.x = r.xmin - 1
	}
	r.y = y
	r.invalid = y >= r.ymax || y < r.ymin || x >= r.xmax
}

func (r *Rasterizer) moveToFixed(to geometry.FixedPoint) {
	r.setCell(to.X.Trunc(), to.Y.Trunc())
	r.px, r.py = to.X, to.Y
}

func (r *Rasterizer) lineToFixed(to geometry.FixedPoint) {
	toX, toY := to.X, to.Y
	ey1 := r.py.Trunc()
	ey2 := toY.Trunc()
	if (ey1 >= r.ymax && ey2 >= r.ymax) || (ey1 < r.ymin && ey2 < r.ymin) {
		r.px, r.py = toX, toY
		return
	}
	ex1 := r.px.Trunc()
	ex2 := toX.Trunc()
	fx1 := r.px.Fract()
	fy1 := r.py.Fract()
	dx := toX - r.px
	dy := toY - r.py

	switch {
	case ex1 == ex2 && ey1 == ey2:
		// no cell boundary crossed
	case dy == 0:
		r.setCell(ex2, ey2)
		r.px, r.py = toX, toY
		return
	case dx == 0:
		if dy > 0 {
			for {
				fy2 := geometry.OnePixel
				r.cover += int32(fy2 - fy1)
				r.area += int32(fy2-fy1) * int32(fx1) * 2
				fy1 = 0
				ey1++
				r.setCell(ex1, ey1)
				if ey1 == ey2 {
					break
				}
			}
		} else {
			for {
				fy2 := geometry.Fixed(0)
				r.cover += int32(fy2 - fy1)
				r.area += int32(fy2-fy1) * int32(fx1) * 2
				fy1 = geometry.OnePixel
				ey1--
				r.setCell(ex1, ey1)
				if ey1 == ey2 {
					break
				}
			}
		}
	default:
		prod := int32(dx)*int32(fy1) - int32(dy)*int32(fx1)
		var dxR, dyR int32
		if ex1 != ex2 {
			dxR = 0x00FFFFFF / int32(dx)
		}
		if ey1 != ey2 {
			dyR = 0x00FFFFFF / int32(dy)
		}
		idx, idy := int32(dx), int32(dy)
		for {
			var fx2, fy2 int32
			switch {
			case prod <= 0 && prod-idx*int32(geometry.OnePixel) > 0:
				fx2 = 0
				fy2 = udiv(-prod, -dxR)
				prod -= idy * int32(geometry.OnePixel)
				r.cover += fy2 - int32(fy1)
				r.area += (fy2 - int32(fy1)) * (int32(fx1) + fx2)
				fx1 = geometry.OnePixel
				fy1 = geometry.Fixed(fy2)
				ex1--
			case prod-idx*int32(geometry.OnePixel) <= 0 && prod-idx*int32(geometry.OnePixel)+idy*int32(geometry.OnePixel) > 0:
				prod -= idx * int32(geometry.OnePixel)
				fx2 = udiv(-prod, dyR)
				fy2 = int32(geometry.OnePixel)
				r.cover += fy2 - int32(fy1)
				r.area += (fy2 - int32(fy1)) * (int32(fx1) + fx2)
				fx1 = geometry.Fixed(fx2)
				fy1 = 0
				ey1++
			case prod-idx*int32(geometry.OnePixel)+idy*int32(geometry.OnePixel) <= 0 && prod+idy*int32(geometry.OnePixel) >= 0:
				prod += idy * int32(geometry.OnePixel)
				fx2 = int32(geometry.OnePixel)
				fy2 = udiv(prod, dxR)
				r.cover += fy2 - int32(fy1)
				r.area += (fy2 - int32(fy1)) * (int32(fx1) + fx2)
				fx1 = 0
				fy1 = geometry.Fixed(fy2)
				ex1++
			default:
				fx2 = udiv(prod, -dyR)
				fy2 = 0
				prod += idx * int32(geometry.OnePixel)
				r.cover += fy2 - int32(fy1)
				r.area += (fy2 - int32(fy1)) * (int32(fx1) + fx2)
				fx1 = geometry.Fixed(fx2)
				fy1 = geometry.OnePixel
				ey1--
			}
			r.setCell(ex1, ey1)
			if ex1 == ex2 && ey1 == ey2 {
				break
			}
		}
	}

	fx2 := toX.Fract()
	fy2 := toY.Fract()
	r.cover += int32(fy2 - fy1)
	r.area += int32(fy2-fy1) * int32(fx1+fx2)
	r.px, r.py = toX, toY
}

// udiv performs the reciprocal-multiply division used by the DDA line
// walk: (a*b) computed in 64 bits, then shifted back down by the fixed-
// point scale used to precompute b as a reciprocal.
func udiv(a, b int32) int32 {
	return int32((int64(a) * int64(b)) >> (4*8 - geometry.PixelBits))
}

func (r *Rasterizer) quadToFixed(control, to geometry.FixedPoint) {
	var arc [16*2 + 1]geometry.FixedPoint
	arc[0] = to
	arc[1] = control
	arc[2] = geometry.FixedPoint{X: r.px, Y: r.py}
	if (arc[0].Y.Trunc() >= r.ymax && arc[1].Y.Trunc() >= r.ymax && arc[2].Y.Trunc() >= r.ymax) ||
		(arc[0].Y.Trunc() < r.ymin && arc[1].Y.Trunc() < r.ymin && arc[2].Y.Trunc() < r.ymin) {
		r.px, r.py = arc[0].X, arc[0].Y
		return
	}
	dx := absFixed(arc[2].X + arc[0].X - 2*arc[1].X)
	dy := absFixed(arc[2].Y + arc[0].Y - 2*arc[1].Y)
	if dx < dy {
		dx = dy
	}
	draw := 1
	for dx > geometry.OnePixel/4 {
		dx >>= 2
		draw <<= 1
	}
	a := 0
	for {
		split := draw & (-draw)
		for {
			split >>= 1
			if split == 0 {
				break
			}
			splitQuad(arc[a:])
			a += 2
		}
		r.lineToFixed(arc[a])
		draw--
		if draw == 0 {
			break
		}
		a -= 2
	}
}

func (r *Rasterizer) curveToFixed(control1, control2, to geometry.FixedPoint) {
	var arc [16*8 + 1]geometry.FixedPoint
	arc[0] = to
	arc[1] = control2
	arc[2] = control1
	arc[3] = geometry.FixedPoint{X: r.px, Y: r.py}
	if (arc[0].Y.Trunc() >= r.ymax && arc[1].Y.Trunc() >= r.ymax && arc[2].Y.Trunc() >= r.ymax && arc[3].Y.Trunc() >= r.ymax) ||
		(arc[0].Y.Trunc() < r.ymin && arc[1].Y.Trunc() < r.ymin && arc[2].Y.Trunc() < r.ymin && arc[3].Y.Trunc() < r.ymin) {
		r.px, r.py = arc[0].X, arc[0].Y
		return
	}
	a := 0
	for {
		if absFixed(2*arc[a].X-3*arc[a+1].X+arc[a+3].X) > geometry.OnePixel/2 ||
			absFixed(2*arc[a].Y-3*arc[a+1].Y+arc[a+3].Y) > geometry.OnePixel/2 ||
			absFixed(arc[a].X-3*arc[a+2].X+2*arc[a+3].X) > geometry.OnePixel/2 ||
			absFixed(arc[a].Y-3*arc[a+2].Y+2*arc[a+3].Y) > geometry.OnePixel/2 {
			if len(arc)-a >= 7 {
				splitCubic(arc[a:])
				a += 3
				continue
			}
			r.lineToFixed(to)
			return
		}
		r.lineToFixed(arc[a])
		if a == 0 {
			return
		}
		a -= 3
	}
}

func absFixed(f geometry.Fixed) geometry.Fixed {
	if f < 0 {
		return -f
	}
	return f
}

// splitQuad subdivides the quadratic in base[0:3] (end, control, start,
// in that order) at its midpoint by De Casteljau: base[0:3] then holds
// the half nearest the end and base[2:5] the half nearest the start,
// with the old start point moved to base[4].
func splitQuad(base []geometry.FixedPoint) {
	base[4].X = base[2].X
	a := base[0].X + base[1].X
	b := base[1].X + base[2].X
	base[3].X = b >> 1
	base[2].X = (a + b) >> 2
	base[1].X = a >> 1

	base[4].Y = base[2].Y
	a = base[0].Y + base[1].Y
	b = base[1].Y + base[2].Y
	base[3].Y = b >> 1
	base[2].Y = (a + b) >> 2
	base[1].Y = a >> 1
}

// splitCubic is splitQuad's cubic counterpart, subdividing base[0:4]
// (end, control2, control1, start) and writing the second half's extra
// points into base[4:7].
func splitCubic(base []geometry.FixedPoint) {
	base[6].X = base[3].X
	a := base[0].X + base[1].X
	b := base[1].X + base[2].X
	c := base[2].X + base[3].X
	base[5].X = c >> 1
	c += b
	base[4].X = c >> 2
	base[1].X = a >> 1
	a += b
	base[2].X = a >> 2
	base[3].X = (a + c) >> 3

	base[6].Y = base[3].Y
	a = base[0].Y + base[1].Y
	b = base[1].Y + base[2].Y
	c = base[2].Y + base[3].Y
	base[5].Y = c >> 1
	c += b
	base[4].Y = c >> 2
	base[1].Y = a >> 1
	a += b
	base[2].Y = a >> 2
	base[3].Y = (a + c) >> 3
}

// CurrentPoint, MoveTo, LineTo, QuadTo, CurveTo and Close implement
// command.Sink, letting a Rasterizer stand in directly as the sink for
// stroke.Apply/path.CopyTo: every incoming point is shifted by r.shift
// before it is converted to fixed point and fed to the cell walk above.

func (r *Rasterizer) CurrentPoint() geometry.Point { return r.current.Add(r.shift) }

func (r *Rasterizer) MoveTo(to geometry.Point) {
	if !r.closed {
		r.lineToFixed(r.start)
	}
	p := geometry.ToFixedPoint(to.Add(r.shift))
	r.moveToFixed(p)
	r.closed = false
	r.start = p
	r.current = to
}

func (r *Rasterizer) LineTo(to geometry.Point) {
	r.current = to
	r.closed = false
	r.lineToFixed(geometry.ToFixedPoint(to.Add(r.shift)))
}

func (r *Rasterizer) QuadTo(control, to geometry.Point) {
	r.current = to
	r.closed = false
	r.quadToFixed(geometry.ToFixedPoint(control.Add(r.shift)), geometry.ToFixedPoint(to.Add(r.shift)))
}

func (r *Rasterizer) CurveTo(control1, control2, to geometry.Point) {
	r.current = to
	r.closed = false
	r.curveToFixed(
		geometry.ToFixedPoint(control1.Add(r.shift)),
		geometry.ToFixedPoint(control2.Add(r.shift)),
		geometry.ToFixedPoint(to.Add(r.shift)),
	)
}

func (r *Rasterizer) Close() {
	r.lineToFixed(r.start)
	r.closed = true
}
