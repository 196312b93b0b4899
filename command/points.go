// Copyright 2026 The zeno Authors
// SPDX-License-Identifier: MIT

package command

import "github.com/dfrg/zeno/geometry"

// PointsCommands adapts a parallel-array path representation, (points,
// verbs), into a Source. Each Verb consumes the number of points its
// command requires: MoveTo/LineTo consume 1, QuadTo 2, CurveTo 3, Close
// 0.
type PointsCommands struct {
	points []geometry.Point
	verbs  []Verb
	point  int
	verb   int
}

// NewPointsCommands returns a Source over the given points and verbs.
func NewPointsCommands(points []geometry.Point, verbs []Verb) *PointsCommands {
	return &PointsCommands{points: points, verbs: verbs}
}

func (p *PointsCommands) Next() (Command, bool) {
	if p.verb >= len(p.verbs) {
		return Command{}, false
	}
	verb := p.verbs[p.verb]
	p.verb++
	switch verb {
	case VerbMoveTo:
		if p.point >= len(p.points) {
			return Command{}, false
		}
		pt := p.points[p.point]
		p.point++
		return MoveTo(pt), true
	case VerbLineTo:
		if p.point >= len(p.points) {
			return Command{}, false
		}
		pt := p.points[p.point]
		p.point++
		return LineTo(pt), true
	case VerbQuadTo:
		if p.point+2 > len(p.points) {
			return Command{}, false
		}
		c, pt := p.points[p.point], p.points[p.point+1]
		p.point += 2
		return QuadTo(c, pt), true
	case VerbCurveTo:
		if p.point+3 > len(p.points) {
			return Command{}, false
		}
		c1, c2, pt := p.points[p.point], p.points[p.point+1], p.points[p.point+2]
		p.point += 3
		return CurveTo(c1, c2, pt), true
	case VerbClose:
		return Close(), true
	default:
		return Command{}, false
	}
}

func (p *PointsCommands) Clone() Source {
	clone := *p
	return &clone
}

// CopyTo feeds every command in p into sink. Unlike Next, it does not
// advance p's own cursor: it operates on a private copy.
func (p *PointsCommands) CopyTo(sink Sink) {
	clone := *p
	for {
		c, ok := clone.Next()
		if !ok {
			return
		}
		c.CopyTo(sink)
	}
}

// TransformCommands wraps a Source, applying Transform to every point of
// every command it yields.
type TransformCommands struct {
	Data      Source
	Transform geometry.Transform
}

// NewTransformCommands returns a Source that applies t to every command
// produced by data.
func NewTransformCommands(data Source, t geometry.Transform) *TransformCommands {
	return &TransformCommands{Data: data, Transform: t}
}

func (t *TransformCommands) Next() (Command, bool) {
	c, ok := t.Data.Next()
	if !ok {
		return Command{}, false
	}
	return c.Transform(t.Transform), true
}

func (t *TransformCommands) Clone() Source {
	return &TransformCommands{Data: t.Data.Clone(), Transform: t.Transform}
}
