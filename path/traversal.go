// Copyright 2026 The zeno Authors
// SPDX-License-Identifier: MIT

package path

import (
	"github.com/dfrg/zeno/command"
	"github.com/dfrg/zeno/geometry"
	"github.com/dfrg/zeno/segment"
)

// VertexKind tags the variant of a Vertex.
type VertexKind int

const (
	VertexStart VertexKind = iota
	VertexMiddle
	VertexEnd
)

// Vertex is one point visited while walking a path's vertices: the start
// or end of a subpath, or an intermediate join between two segments.
type Vertex struct {
	Kind          VertexKind
	Point         geometry.Point
	Dir           geometry.Vector // valid for Start, End
	InDir, OutDir geometry.Vector // valid for Middle
	Closed        bool            // valid for End
}

// Vertices iterates the vertices of a path: one Start, any number of
// Middle vertices, and one End per subpath. Tangent directions for
// curves are sampled at t=0.05 and t=0.95 rather than at the endpoints,
// so that a cusp at a segment boundary does not produce a degenerate
// direction.
type Vertices struct {
	segments  *segment.Segments
	prevPoint geometry.Point
	prevDir   geometry.Vector
	isFirst   bool
}

// NewVertices returns a Vertices iterator over the path described by
// commands.
func NewVertices(commands command.Source) *Vertices {
	return &Vertices{
		segments: segment.NewSegments(commands, false),
		prevDir:  geometry.Vec(1, 0),
		isFirst:  true,
	}
}

// NewVerticesWithTransform returns a Vertices iterator over commands
// after applying t to every point.
func NewVerticesWithTransform(commands command.Source, t geometry.Transform) *Vertices {
	return NewVertices(command.NewTransformCommands(commands, t))
}

// Next returns the next vertex, or ok == false when the path is
// exhausted.
func (v *Vertices) Next() (Vertex, bool) {
	seg, ok := v.segments.Next()
	if !ok {
		return Vertex{}, false
	}
	if v.isFirst {
		v.isFirst = false
		if seg.Kind == segment.KindEnd {
			v.isFirst = true
			return Vertex{Kind: VertexEnd, Point: v.prevPoint, Dir: v.prevDir, Closed: seg.Closed}, true
		}
		start, inDir, outDir, end := vertexComponents(seg)
		v.prevDir = outDir
		v.prevPoint = end
		return Vertex{Kind: VertexStart, Point: start, Dir: inDir}, true
	}
	if seg.Kind == segment.KindEnd {
		v.isFirst = true
		return Vertex{Kind: VertexEnd, Point: v.prevPoint, Dir: v.prevDir, Closed: seg.Closed}, true
	}
	start, inDir, outDir, end := vertexComponents(seg)
	prevDir := v.prevDir
	v.prevDir = outDir
	v.prevPoint = end
	return Vertex{Kind: VertexMiddle, Point: start, InDir: prevDir, OutDir: inDir}, true
}

func vertexComponents(seg segment.Segment) (start, inDir, outDir, end geometry.Point) {
	switch seg.Kind {
	case segment.KindCurve:
		c := seg.Curve
		a := c.Evaluate(0.05)
		b := c.Evaluate(0.95)
		aDir := a.Sub(c.A).Normalize()
		bDir := c.D.Sub(b).Normalize()
		return c.A, aDir, bDir, c.D
	case segment.KindLine:
		l := seg.Line
		dir := l.B.Sub(l.A).Normalize()
		return l.A, dir, dir, l.B
	default:
		return geometry.Zero, geometry.Zero, geometry.Zero, geometry.Zero
	}
}

// Walk steps along a path by arbitrary distances, tracking the point and
// leftward normal reached at each step.
type Walk struct {
	init          *segment.Segments
	iter          *segment.Segments
	seg           segment.Segment
	segmentOffset float32
	first         bool
	length        *float32
	walked        float32
}

// NewWalk returns a Walk over the path described by commands.
func NewWalk(commands command.Source) *Walk {
	return &Walk{
		init:  segment.NewSegments(commands.Clone(), false),
		iter:  segment.NewSegments(commands.Clone(), false),
		first: true,
	}
}

// NewWalkWithTransform returns a Walk over commands after applying t to
// every point.
func NewWalkWithTransform(commands command.Source, t geometry.Transform) *Walk {
	return NewWalk(command.NewTransformCommands(commands, t))
}

func (w *Walk) nextSegment() (segment.Segment, bool) {
	for {
		s, ok := w.iter.Next()
		if !ok {
			return segment.Segment{}, false
		}
		if s.Kind == segment.KindEnd {
			continue
		}
		return s, true
	}
}

// Step advances by distance along the path and returns the point and
// leftward normal reached there. The second return value is false if
// distance steps beyond the end of the path.
func (w *Walk) Step(distance float32) (geometry.Point, geometry.Vector, bool) {
	if w.first {
		s, ok := w.nextSegment()
		if !ok {
			return geometry.Zero, geometry.Zero, false
		}
		w.seg = s
		w.segmentOffset = 0
		w.first = false
	}

	var t float32
	offset := w.segmentOffset
	seg := w.seg
	remaining := distance
	for {
		dt := seg.Time(offset+remaining, 1)
		remaining -= dt.Distance - offset
		t = dt.Time
		offset = dt.Distance
		if remaining <= 0 {
			break
		}
		s, ok := w.nextSegment()
		if !ok {
			return geometry.Zero, geometry.Zero, false
		}
		seg = s
		offset = 0
	}
	w.seg = seg
	w.segmentOffset = offset
	w.walked += distance
	p, n := seg.PointNormal(t)
	return p, n, true
}

// Remaining returns the distance left to walk on the path. The total
// path length is computed lazily, on first call, and cached.
func (w *Walk) Remaining() float32 {
	if w.length == nil {
		iter := w.init.Clone()
		var sum float32
		for {
			s, ok := iter.Next()
			if !ok {
				break
			}
			sum += s.Length()
		}
		w.length = &sum
	}
	return *w.length - w.walked
}
