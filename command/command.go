// Copyright 2026 The zeno Authors
// SPDX-License-Identifier: MIT

// Package command defines the path command stream, the universal
// intermediate representation passed between path construction, curve
// flattening, stroking, and rasterization.
package command

import "github.com/dfrg/zeno/geometry"

// Verb tags the action of a Command, without its coordinates.
type Verb int

const (
	VerbMoveTo Verb = iota
	VerbLineTo
	VerbQuadTo
	VerbCurveTo
	VerbClose
)

// Command is one step of a path: a move, line, quadratic or cubic curve,
// or subpath close.
//
// The meaning of P1/P2/P3 depends on Verb:
//   - MoveTo, LineTo: P1 is the destination point.
//   - QuadTo: P1 is the control point, P2 is the destination point.
//   - CurveTo: P1, P2 are the control points, P3 is the destination point.
//   - Close: no points are used.
type Command struct {
	Verb           Verb
	P1, P2, P3 geometry.Point
}

// MoveTo returns a MoveTo command to p.
func MoveTo(p geometry.Point) Command { return Command{Verb: VerbMoveTo, P1: p} }

// LineTo returns a LineTo command to p.
func LineTo(p geometry.Point) Command { return Command{Verb: VerbLineTo, P1: p} }

// QuadTo returns a QuadTo command with control point c and destination p.
func QuadTo(c, p geometry.Point) Command { return Command{Verb: VerbQuadTo, P1: c, P2: p} }

// CurveTo returns a CurveTo command with control points c1, c2 and
// destination p.
func CurveTo(c1, c2, p geometry.Point) Command {
	return Command{Verb: VerbCurveTo, P1: c1, P2: c2, P3: p}
}

// Close returns a Close command.
func Close() Command { return Command{Verb: VerbClose} }

// Transform returns the command with every point passed through t.
func (c Command) Transform(t geometry.Transform) Command {
	switch c.Verb {
	case VerbMoveTo, VerbLineTo:
		return Command{Verb: c.Verb, P1: t.TransformPoint(c.P1)}
	case VerbQuadTo:
		return Command{Verb: c.Verb, P1: t.TransformPoint(c.P1), P2: t.TransformPoint(c.P2)}
	case VerbCurveTo:
		return Command{Verb: c.Verb, P1: t.TransformPoint(c.P1), P2: t.TransformPoint(c.P2), P3: t.TransformPoint(c.P3)}
	default:
		return c
	}
}

// Sink is the narrow path builder protocol: any consumer of a command
// stream implements this interface. Command buffers, bounds
// accumulators, transforming adapters, and the rasterizer itself are all
// Sinks.
type Sink interface {
	MoveTo(p geometry.Point)
	LineTo(p geometry.Point)
	QuadTo(c, p geometry.Point)
	CurveTo(c1, c2, p geometry.Point)
	Close()
	CurrentPoint() geometry.Point
}

// CopyTo feeds c through sink, dispatching on its Verb.
func (c Command) CopyTo(sink Sink) {
	switch c.Verb {
	case VerbMoveTo:
		sink.MoveTo(c.P1)
	case VerbLineTo:
		sink.LineTo(c.P1)
	case VerbQuadTo:
		sink.QuadTo(c.P1, c.P2)
	case VerbCurveTo:
		sink.CurveTo(c.P1, c.P2, c.P3)
	case VerbClose:
		sink.Close()
	}
}

// Source is a cloneable, resettable stream of Commands. It is the common
// interface satisfied by PointsCommands, Slice, TransformCommands, and
// the SVG parser in package path.
type Source interface {
	// Next returns the next command in the stream, or ok == false when
	// exhausted.
	Next() (cmd Command, ok bool)
	// Clone returns an independent copy of the stream at its current
	// position.
	Clone() Source
}

// Slice adapts a plain []Command to a Source.
type Slice struct {
	cmds []Command
	pos  int
}

// NewSlice returns a Source over cmds.
func NewSlice(cmds []Command) *Slice {
	return &Slice{cmds: cmds}
}

func (s *Slice) Next() (Command, bool) {
	if s.pos >= len(s.cmds) {
		return Command{}, false
	}
	c := s.cmds[s.pos]
	s.pos++
	return c, true
}

func (s *Slice) Clone() Source {
	clone := *s
	return &clone
}

// CopyTo drains the source, feeding every command into sink.
func CopyTo(src Source, sink Sink) {
	for {
		c, ok := src.Next()
		if !ok {
			return
		}
		c.CopyTo(sink)
	}
}
