// Copyright 2026 The zeno Authors
// SPDX-License-Identifier: MIT

package stroke

import (
	"math"

	"github.com/dfrg/zeno/command"
	"github.com/dfrg/zeno/geometry"
	"github.com/dfrg/zeno/path"
	"github.com/dfrg/zeno/segment"
)

// StrokeInto writes the outline of data stroked with style to sink. The
// outline is the set of closed subpaths bounding the stroked region,
// suitable for filling with NonZero; a stroke's inner and outer offset
// boundaries only describe that region together; filling them under
// EvenOdd would punch a hole wherever the two boundaries overlap.
func StrokeInto(data path.Data, style Stroke, sink path.Builder) {
	StrokeCommandsInto(data.Commands(), style, sink)
}

// Apply renders data under style to sink, applying transform (if
// non-nil) along the way, and returns the fill rule the caller should
// use to scan-convert the result: style's own rule for a fill, or
// always NonZero for a stroke, since a stroke's inner and outer
// boundaries are only meaningful together under non-zero winding.
//
// This is the dispatch point deferred out of package path to avoid an
// import cycle: stroking needs path.Builder, path.Arc and
// path.TransformSink, so the
// style-aware entry point has to live on this side of that dependency.
func Apply(data path.Data, style Style, transform *geometry.Transform, sink path.Builder) Fill {
	var buf []segment.Segment
	return ApplyWithBuffer(data, style, transform, sink, &buf)
}

// ApplyWithBuffer is Apply with the stroker's segment scratch buffer
// supplied by the caller, letting a long-lived caller (package raster's
// Scratch) reuse one buffer's backing array across many Apply calls
// instead of allocating one per call. buf is ignored for fill styles,
// which never need segment offsetting.
func ApplyWithBuffer(data path.Data, style Style, transform *geometry.Transform, sink path.Builder, buf *[]segment.Segment) Fill {
	switch style.Kind {
	case StyleStroke:
		s := style.Stroke
		if transform != nil {
			if s.ScaleWithTransform {
				ts := &path.TransformSink{Sink: sink, Transform: *transform}
				StrokeCommandsIntoBuffer(data.Commands(), s, ts, buf)
			} else {
				transformed := command.NewTransformCommands(data.Commands(), *transform)
				StrokeCommandsIntoBuffer(transformed, s, sink, buf)
			}
		} else {
			StrokeCommandsIntoBuffer(data.Commands(), s, sink, buf)
		}
		return NonZero
	default:
		if transform != nil {
			ts := &path.TransformSink{Sink: sink, Transform: *transform}
			path.CopyTo(data, ts)
		} else {
			path.CopyTo(data, sink)
		}
		return style.Fill
	}
}

// Bounds returns the bounding box of data rendered under style and
// transform, by running Apply against a bounds-accumulating sink.
func Bounds(data path.Data, style Style, transform *geometry.Transform) geometry.Bounds {
	sink := &path.BoundsSink{}
	Apply(data, style, transform, sink)
	return sink.Bounds()
}

// StrokeCommandsInto is StrokeInto over an already-opened command.Source,
// for callers that have one without a path.Data wrapper.
func StrokeCommandsInto(commands command.Source, style Stroke, sink path.Builder) {
	var buf []segment.Segment
	StrokeCommandsIntoBuffer(commands, style, sink, &buf)
}

// StrokeCommandsIntoBuffer is StrokeCommandsInto with the segment
// scratch buffer supplied by the caller, so that repeated strokes reuse
// its backing array across calls instead of allocating a fresh one
// every time. buf's contents on entry are ignored and overwritten.
func StrokeCommandsIntoBuffer(commands command.Source, style Stroke, sink path.Builder, buf *[]segment.Segment) {
	s := newStroker(segment.NewSegments(commands, true), sink, style)
	dashes, dashOffset, emptyGaps := ValidateDashes(style.Dashes, style.Offset)
	if len(dashes) > 0 {
		s.runDashed(buf, dashes, dashOffset, emptyGaps)
	} else {
		s.run(buf)
	}
}

// stroker drives a split-mode segment.Segments stream through offsetting,
// joining and capping, emitting the resulting outline to sink.
type stroker struct {
	source *segment.Segments
	sink   path.Builder

	radius      float32
	radiusAbs   float32
	join        Join
	invMiterLim float32
	startCap    Cap
	endCap      Cap
}

func newStroker(source *segment.Segments, sink path.Builder, style Stroke) *stroker {
	width := style.Width
	if width < 0.01 {
		width = 0.01
	}
	radius := width * 0.5
	invMiterLim := float32(1)
	if style.MiterLimit >= 1 {
		invMiterLim = 1 / style.MiterLimit
	}
	return &stroker{
		source:      source,
		sink:        sink,
		radius:      radius,
		radiusAbs:   absf32(radius),
		join:        style.Join,
		invMiterLim: invMiterLim,
		startCap:    style.StartCap,
		endCap:      style.EndCap,
	}
}

// collect drains one subpath's worth of segments from s.source into buf
// (reusing its capacity), stopping at the next End marker. It reports
// whether that subpath was closed and whether the overall source is now
// exhausted.
func (s *stroker) collect(buf *[]segment.Segment) (closed, done bool) {
	*buf = (*buf)[:0]
	for {
		seg, ok := s.source.Next()
		if !ok {
			return false, true
		}
		if seg.Kind == segment.KindEnd {
			return seg.Closed, false
		}
		*buf = append(*buf, seg)
	}
}

func (s *stroker) run(buf *[]segment.Segment) {
	for {
		closed, done := s.collect(buf)
		s.strokeSegments(*buf, closed)
		if done {
			return
		}
	}
}

// strokeSegments emits one subpath's worth of stroke outline: the
// forward pass along the outer offset, then the backward pass along the
// inner offset, joined at both ends by caps (or, for a closed subpath,
// by the same join logic used between interior segments).
func (s *stroker) strokeSegments(segments []segment.Segment, isClosed bool) {
	count := len(segments)
	if count == 0 {
		return
	}
	if count == 1 && segments[0].Length() == 0 && (s.startCap != ButtCap || s.endCap != ButtCap) {
		seg := segments[0]
		var from geometry.Point
		switch seg.Kind {
		case segment.KindLine:
			from = seg.Line.A
		case segment.KindCurve:
			from = seg.Curve.A
		}
		n := geometry.Vec(0, 1)
		nr := n.Scale(s.radius)
		start := from.Add(nr)
		rstart := from.Sub(nr)
		s.sink.MoveTo(start)
		s.addEndCap(start, rstart, n)
		s.addStartCap(rstart, start, n.Scale(-1))
		return
	}

	radius := s.radius
	var lastDir geometry.Vector
	var firstPoint, lastPoint, pivot geometry.Point
	var lastID segment.ID = 0xFF

	if isClosed {
		off := offset(segments[count-1], radius)
		lastPoint = off.end
		lastDir = off.endNormal
		pivot = off.endPivot
		firstPoint = lastPoint
		s.sink.MoveTo(lastPoint)
	}

	// Forward pass: the outer stroke.
	isFirst := !isClosed
	for _, seg := range segments {
		off := offset(seg, radius)
		if isFirst {
			s.sink.MoveTo(off.start)
			firstPoint = off.start
			isFirst = false
		} else {
			s.addJoin(lastPoint, off.start, pivot, lastDir, off.startNormal)
		}
		lastID = off.id
		lastDir = off.endNormal
		pivot = off.endPivot
		lastPoint = s.emit(off.segment)
	}

	// Backward pass: the inner stroke.
	isFirst = true
	lastID = 0xFF
	for i := len(segments) - 1; i >= 0; i-- {
		off := offset(segments[i].Reverse(), radius)
		if isFirst {
			if isClosed {
				init := offset(segments[0].Reverse(), s.radius)
				lastPoint = init.end
				lastDir = init.endNormal
				pivot = init.endPivot
				s.sink.LineTo(init.end)
				s.addJoin(lastPoint, off.start, pivot, lastDir, off.startNormal)
			} else {
				s.addEndCap(lastPoint, off.start, lastDir)
			}
			isFirst = false
		} else if off.id != lastID {
			s.addJoin(lastPoint, off.start, pivot, lastDir, off.startNormal)
		} else {
			s.addSplitJoin(lastPoint, off.start, pivot, lastDir, off.startNormal)
		}
		lastID = off.id
		lastDir = off.endNormal
		pivot = off.endPivot
		lastPoint = s.emit(off.segment)
	}

	if !isClosed {
		s.addStartCap(lastPoint, firstPoint, lastDir)
	}
	s.sink.Close()
}

func (s *stroker) runDashed(buf *[]segment.Segment, dashes []float32, dashOffset float32, emptyGaps bool) {
	var d dasher
	d.emptyGaps = emptyGaps
	done := false
runs:
	for !done {
		closed, isDone := s.collect(buf)
		done = isDone
		segments := *buf
		if len(segments) == 0 {
			continue
		}
		d.init(closed, dashes, dashOffset)
		for {
			switch d.next(segments, dashes) {
			case dashDone:
				continue runs
			case dashContinue:
				// keep walking
			case dashEmit:
				s.dashSegments(segments, d.rangeStart, d.rangeEnd, d.t0r, d.t1r)
			case dashStroke:
				s.strokeSegments(segments, true)
				continue runs
			}
		}
	}
}

// dashSegments emits the stroke outline for a single dash, spanning
// segments[start:end+1] sliced at (t0, t1) at its two ends.
func (s *stroker) dashSegments(segments []segment.Segment, start, end int, t0, t1 float32) {
	radius := s.radius
	if t0 == t1 && start == end {
		if s.startCap == ButtCap && s.endCap == ButtCap {
			return
		}
		if t0 >= 1 {
			t0, t1 = t0-0.001, t0
		} else {
			t0, t1 = t0, t0+0.001
		}
		off := offset(getSigned(segments, start).Slice(t0, t1), radius)
		from := off.start
		rstart := off.start.Sub(off.startNormal.Scale(2 * radius))
		s.sink.MoveTo(from)
		s.addEndCap(from, rstart, off.startNormal)
		s.addStartCap(rstart, from, off.startNormal.Scale(-1))
		s.sink.Close()
		return
	}

	var lastDir geometry.Vector
	var firstPoint, lastPoint, pivot geometry.Point
	var lastID segment.ID = 0xFF
	isFirst := true

	for i := start; i <= end; i++ {
		a, b := float32(0), float32(1)
		if i == start {
			a = t0
		}
		if i == end {
			b = t1
		}
		if a >= 1 {
			continue
		}
		off := offset(getSigned(segments, i).Slice(a, b), radius)
		if isFirst {
			s.sink.MoveTo(off.start)
			firstPoint = off.start
			isFirst = false
		} else if off.id != lastID {
			s.addJoin(lastPoint, off.start, pivot, lastDir, off.startNormal)
		} else {
			s.addSplitJoin(lastPoint, off.start, pivot, lastDir, off.startNormal)
		}
		lastID = off.id
		pivot = off.endPivot
		lastDir = off.endNormal
		lastPoint = s.emit(off.segment)
	}

	isFirst = true
	lastID = 0xFF
	for i := end; i >= start; i-- {
		a, b := float32(0), float32(1)
		if i == start {
			a = t0
		}
		if i == end {
			b = t1
		}
		if a >= 1 {
			continue
		}
		off := offset(getSigned(segments, i).Slice(a, b).Reverse(), radius)
		if isFirst {
			s.addEndCap(lastPoint, off.start, lastDir)
			isFirst = false
		} else if off.id != lastID {
			s.addJoin(lastPoint, off.start, pivot, lastDir, off.startNormal)
		} else {
			s.addSplitJoin(lastPoint, off.start, pivot, lastDir, off.startNormal)
		}
		lastID = off.id
		pivot = off.endPivot
		lastDir = off.endNormal
		lastPoint = s.emit(off.segment)
	}
	s.addStartCap(lastPoint, firstPoint, lastDir)
	s.sink.Close()
}

// emit appends off's offset geometry to the sink and returns its
// endpoint. End markers contribute nothing.
func (s *stroker) emit(seg segment.Segment) geometry.Point {
	switch seg.Kind {
	case segment.KindLine:
		s.sink.LineTo(seg.Line.B)
		return seg.Line.B
	case segment.KindCurve:
		s.sink.CurveTo(seg.Curve.B, seg.Curve.C, seg.Curve.D)
		return seg.Curve.D
	default:
		return geometry.Zero
	}
}

// addJoin connects the end of one offset segment to the start of the
// next. On the concave (inner) side of the turn it always draws a direct
// line through pivot, the un-offset corner point, regardless of the
// configured join, since that is the only way to keep the inner offset
// from self-intersecting. On the convex (outer) side it dispatches on
// s.join.
func (s *stroker) addJoin(from, to, pivot geometry.Point, fromNormal, toNormal geometry.Vector) geometry.Point {
	if from.NearlyEqual(to) {
		return from
	}
	if !isClockwise(fromNormal, toNormal) {
		s.sink.LineTo(pivot)
		s.sink.LineTo(to)
		return to
	}
	switch s.join {
	case BevelJoin:
		s.sink.LineTo(to)
		return to
	case RoundJoin:
		r := s.radiusAbs
		path.Arc(s.sink, from, r, r, 0, path.ArcSmall, path.ArcPositive, to)
		return to
	case MiterJoin:
		dot := fromNormal.Dot(toNormal)
		sinHalf := float32(math.Sqrt(float64((1 + dot) * 0.5)))
		if sinHalf < s.invMiterLim {
			s.sink.LineTo(to)
			return to
		}
		mid := fromNormal.Add(toNormal).Normalize().Scale(s.radius / sinHalf)
		p := pivot.Add(mid)
		s.sink.LineTo(p)
		s.sink.LineTo(to)
		return to
	default:
		s.sink.LineTo(to)
		return to
	}
}

// addSplitJoin is addJoin's counterpart at the seam between two pieces
// that came from splitting the same original curve: on the convex side
// it always draws an arc, regardless of the configured join, since a
// miter or bevel there would show as a visible kink where the curve was
// split purely for offset accuracy and not because the path actually
// turns a corner.
func (s *stroker) addSplitJoin(from, to, pivot geometry.Point, fromNormal, toNormal geometry.Vector) geometry.Point {
	if from.NearlyEqual(to) {
		return from
	}
	if !isClockwise(fromNormal, toNormal) {
		s.sink.LineTo(pivot)
		s.sink.LineTo(to)
		return to
	}
	r := s.radiusAbs
	path.Arc(s.sink, from, r, r, 0, path.ArcSmall, path.ArcPositive, to)
	return to
}

func (s *stroker) addCap(from, to geometry.Point, dir geometry.Vector, cap Cap) {
	switch cap {
	case ButtCap:
		s.sink.LineTo(to)
	case SquareCap:
		perp := geometry.Vec(-dir.Y, dir.X)
		d := perp.Scale(s.radiusAbs)
		s.sink.LineTo(from.Add(d))
		s.sink.LineTo(to.Add(d))
		s.sink.LineTo(to)
	case RoundCap:
		r := s.radiusAbs
		path.Arc(s.sink, from, r, r, 0, path.ArcSmall, path.ArcPositive, to)
	}
}

func (s *stroker) addStartCap(from, to geometry.Point, dir geometry.Vector) {
	s.addCap(from, to, dir, s.startCap)
}

func (s *stroker) addEndCap(from, to geometry.Point, dir geometry.Vector) {
	s.addCap(from, to, dir, s.endCap)
}
