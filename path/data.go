// Copyright 2026 The zeno Authors
// SPDX-License-Identifier: MIT

package path

import (
	"github.com/dfrg/zeno/command"
	"github.com/dfrg/zeno/geometry"
	"github.com/dfrg/zeno/segment"
)

// Data is implemented by anything that can be read as path commands: SVG
// path data, a recorded command slice, or a parallel (points, verbs)
// pair. A rasterizer, stroker or measurement function that accepts Data
// is agnostic to how the caller chose to store its path.
type Data interface {
	// Commands returns a fresh, independently positioned command stream
	// over the path data.
	Commands() command.Source
}

// CopyTo drains data's commands into sink.
func CopyTo(data Data, sink Builder) {
	command.CopyTo(data.Commands(), sink)
}

// SVGData is SVG path data ("M1 2L3 4...") read as Data.
type SVGData string

// Commands returns an SvgCommands parser over the string.
func (d SVGData) Commands() command.Source { return NewSvgCommands(string(d)) }

// Commands is Data over a recorded slice of commands.
type Commands []command.Command

// Commands returns a command.Slice wrapping cmds.
func (cmds Commands) Commands() command.Source { return command.NewSlice(cmds) }

// PointsAndVerbs is Data over the common parallel-array representation:
// one point per MoveTo/LineTo and two/three per QuadTo/CurveTo, alongside
// one verb per command.
type PointsAndVerbs struct {
	Points []geometry.Point
	Verbs  []command.Verb
}

// Commands returns a command.PointsCommands over points and verbs.
func (pv PointsAndVerbs) Commands() command.Source {
	return command.NewPointsCommands(pv.Points, pv.Verbs)
}

// Length returns the total length of the path described by data. If
// transform is non-nil, it is applied to every point before measuring.
func Length(data Data, transform *geometry.Transform) float32 {
	cmds := data.Commands()
	if transform != nil {
		cmds = command.NewTransformCommands(cmds, *transform)
	}
	segs := segment.NewSegments(cmds, false)
	var total float32
	for {
		s, ok := segs.Next()
		if !ok {
			return total
		}
		total += s.Length()
	}
}

// PathBounds returns the bounding box of the path described by data,
// including control points of curves. If transform is non-nil, it is
// applied to every point first.
func PathBounds(data Data, transform *geometry.Transform) geometry.Bounds {
	sink := &BoundsSink{}
	var b Builder = sink
	if transform != nil {
		b = &TransformSink{Sink: sink, Transform: *transform}
	}
	CopyTo(data, b)
	return sink.Bounds()
}
