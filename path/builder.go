// Copyright 2026 The zeno Authors
// SPDX-License-Identifier: MIT

// Package path provides path construction helpers (builder sinks, the
// arc-to-cubic converter, SVG parsing) and consumption helpers (the
// PathData abstraction, vertex/distance traversal) built on top of
// package command and package segment.
package path

import (
	"github.com/dfrg/zeno/command"
	"github.com/dfrg/zeno/geometry"
)

// Builder is the narrow path construction protocol. It is exactly
// command.Sink; the alias exists so that callers of this package can
// write path.Builder without importing package command directly.
type Builder = command.Sink

// RelMoveTo begins a new subpath at a point relative to the builder's
// current point.
func RelMoveTo(b Builder, to geometry.Point) {
	b.MoveTo(to.Add(b.CurrentPoint()))
}

// RelLineTo adds a line to a point relative to the builder's current
// point.
func RelLineTo(b Builder, to geometry.Point) {
	b.LineTo(to.Add(b.CurrentPoint()))
}

// RelQuadTo adds a quadratic curve whose control point and destination
// are relative to the builder's current point.
func RelQuadTo(b Builder, control, to geometry.Point) {
	r := b.CurrentPoint()
	b.QuadTo(control.Add(r), to.Add(r))
}

// RelCurveTo adds a cubic curve whose control points and destination are
// relative to the builder's current point.
func RelCurveTo(b Builder, control1, control2, to geometry.Point) {
	r := b.CurrentPoint()
	b.CurveTo(control1.Add(r), control2.Add(r), to.Add(r))
}

// AddRect adds a closed rectangular subpath with corner xy and size
// (w, h).
func AddRect(b Builder, xy geometry.Point, w, h float32) {
	l, t, r, btm := xy.X, xy.Y, xy.X+w, xy.Y+h
	b.MoveTo(xy)
	b.LineTo(geometry.Vec(r, t))
	b.LineTo(geometry.Vec(r, btm))
	b.LineTo(geometry.Vec(l, btm))
	b.Close()
}

// AddRoundRect adds a closed rounded-rectangle subpath with corner xy,
// size (w, h), and corner radii (rx, ry), clamped to half the rectangle's
// extent.
func AddRoundRect(b Builder, xy geometry.Point, w, h, rx, ry float32) {
	hw := w * 0.5
	if rx < 0 {
		rx = 0
	} else if rx > hw {
		rx = hw
	}
	hh := h * 0.5
	if ry < 0 {
		ry = 0
	} else if ry > hh {
		ry = hh
	}
	p := xy
	b.MoveTo(geometry.Vec(p.X+rx, p.Y))
	b.LineTo(geometry.Vec(p.X+w-rx, p.Y))
	ArcTo(b, rx, ry, 0, ArcSmall, ArcPositive, geometry.Vec(p.X+w, p.Y+ry))
	b.LineTo(geometry.Vec(p.X+w, p.Y+h-ry))
	ArcTo(b, rx, ry, 0, ArcSmall, ArcPositive, geometry.Vec(p.X+w-rx, p.Y+h))
	b.LineTo(geometry.Vec(p.X+rx, p.Y+h))
	ArcTo(b, rx, ry, 0, ArcSmall, ArcPositive, geometry.Vec(p.X, p.Y+h-ry))
	b.LineTo(geometry.Vec(p.X, p.Y+ry))
	ArcTo(b, rx, ry, 0, ArcSmall, ArcPositive, geometry.Vec(p.X+rx, p.Y))
	b.Close()
}

// ellipseKappa is the cubic Bezier approximation constant for a quarter
// circle.
const ellipseKappa = 0.551915024494

// AddEllipse adds a closed elliptical subpath centered at center with
// radii (rx, ry), approximated by four cubic curves.
func AddEllipse(b Builder, center geometry.Point, rx, ry float32) {
	cx, cy := center.X, center.Y
	arx, ary := ellipseKappa*rx, ellipseKappa*ry
	b.MoveTo(geometry.Vec(cx+rx, cy))
	b.CurveTo(geometry.Vec(cx+rx, cy+ary), geometry.Vec(cx+arx, cy+ry), geometry.Vec(cx, cy+ry))
	b.CurveTo(geometry.Vec(cx-arx, cy+ry), geometry.Vec(cx-rx, cy+ary), geometry.Vec(cx-rx, cy))
	b.CurveTo(geometry.Vec(cx-rx, cy-ary), geometry.Vec(cx-arx, cy-ry), geometry.Vec(cx, cy-ry))
	b.CurveTo(geometry.Vec(cx+arx, cy-ry), geometry.Vec(cx+rx, cy-ary), geometry.Vec(cx+rx, cy))
	b.Close()
}

// AddCircle adds a closed circular subpath centered at center with
// radius r.
func AddCircle(b Builder, center geometry.Point, r float32) {
	AddEllipse(b, center, r, r)
}

// Buffer is a Builder that records commands into an in-memory slice.
type Buffer struct {
	Commands []command.Command
}

// CurrentPoint returns the endpoint of the last recorded command. After a
// Close, it returns the point of the most recent preceding MoveTo (the
// subpath's start), matching SVG's notion of "current point" after Z.
func (buf *Buffer) CurrentPoint() geometry.Point {
	n := len(buf.Commands)
	if n == 0 {
		return geometry.Zero
	}
	last := buf.Commands[n-1]
	switch last.Verb {
	case command.VerbMoveTo, command.VerbLineTo:
		return last.P1
	case command.VerbQuadTo:
		return last.P2
	case command.VerbCurveTo:
		return last.P3
	default: // VerbClose
		for i := n - 2; i >= 0; i-- {
			if buf.Commands[i].Verb == command.VerbMoveTo {
				return buf.Commands[i].P1
			}
		}
		return geometry.Zero
	}
}

func (buf *Buffer) MoveTo(to geometry.Point) { buf.Commands = append(buf.Commands, command.MoveTo(to)) }
func (buf *Buffer) LineTo(to geometry.Point) { buf.Commands = append(buf.Commands, command.LineTo(to)) }
func (buf *Buffer) QuadTo(c, to geometry.Point) {
	buf.Commands = append(buf.Commands, command.QuadTo(c, to))
}
func (buf *Buffer) CurveTo(c1, c2, to geometry.Point) {
	buf.Commands = append(buf.Commands, command.CurveTo(c1, c2, to))
}
func (buf *Buffer) Close() { buf.Commands = append(buf.Commands, command.Close()) }

// Source returns a command.Source over the commands recorded so far.
func (buf *Buffer) Source() command.Source { return command.NewSlice(buf.Commands) }

// TransformSink forwards every command to an inner Builder after
// transforming its points.
type TransformSink struct {
	Sink      Builder
	Transform geometry.Transform
}

func (t *TransformSink) CurrentPoint() geometry.Point { return t.Sink.CurrentPoint() }
func (t *TransformSink) MoveTo(to geometry.Point)     { t.Sink.MoveTo(t.Transform.TransformPoint(to)) }
func (t *TransformSink) LineTo(to geometry.Point)     { t.Sink.LineTo(t.Transform.TransformPoint(to)) }
func (t *TransformSink) QuadTo(c, to geometry.Point) {
	t.Sink.QuadTo(t.Transform.TransformPoint(c), t.Transform.TransformPoint(to))
}
func (t *TransformSink) CurveTo(c1, c2, to geometry.Point) {
	t.Sink.CurveTo(t.Transform.TransformPoint(c1), t.Transform.TransformPoint(c2), t.Transform.TransformPoint(to))
}
func (t *TransformSink) Close() { t.Sink.Close() }

// BoundsSink is a Builder that accumulates the bounding box of every
// point it receives, including control points, without recording the
// path itself.
type BoundsSink struct {
	builder geometry.BoundsBuilder
	current geometry.Point
}

func (s *BoundsSink) CurrentPoint() geometry.Point { return s.current }
func (s *BoundsSink) MoveTo(to geometry.Point) {
	s.builder.Add(to)
	s.current = to
}
func (s *BoundsSink) LineTo(to geometry.Point) {
	s.builder.Add(to)
	s.current = to
}
func (s *BoundsSink) QuadTo(c, to geometry.Point) {
	s.builder.Add(c)
	s.builder.Add(to)
	s.current = to
}
func (s *BoundsSink) CurveTo(c1, c2, to geometry.Point) {
	s.builder.Add(c1)
	s.builder.Add(c2)
	s.builder.Add(to)
	s.current = to
}
func (s *BoundsSink) Close() {}

// Bounds returns the accumulated bounding box.
func (s *BoundsSink) Bounds() geometry.Bounds { return s.builder.Build() }
