// Copyright 2026 The zeno Authors
// SPDX-License-Identifier: MIT

package command

import (
	"testing"

	"github.com/dfrg/zeno/geometry"
)

type recordingSink struct {
	cmds    []Command
	current geometry.Point
}

func (r *recordingSink) MoveTo(p geometry.Point) {
	r.cmds = append(r.cmds, MoveTo(p))
	r.current = p
}
func (r *recordingSink) LineTo(p geometry.Point) {
	r.cmds = append(r.cmds, LineTo(p))
	r.current = p
}
func (r *recordingSink) QuadTo(c, p geometry.Point) {
	r.cmds = append(r.cmds, QuadTo(c, p))
	r.current = p
}
func (r *recordingSink) CurveTo(c1, c2, p geometry.Point) {
	r.cmds = append(r.cmds, CurveTo(c1, c2, p))
	r.current = p
}
func (r *recordingSink) Close() { r.cmds = append(r.cmds, Close()) }
func (r *recordingSink) CurrentPoint() geometry.Point { return r.current }

func TestPointsCommandsRoundTrip(t *testing.T) {
	points := []geometry.Point{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 5, Y: 5}, {X: 10, Y: 10},
	}
	verbs := []Verb{VerbMoveTo, VerbLineTo, VerbQuadTo, VerbClose}

	pc := NewPointsCommands(points, verbs)
	var got []Command
	for {
		c, ok := pc.Next()
		if !ok {
			break
		}
		got = append(got, c)
	}
	want := []Command{
		MoveTo(points[0]),
		LineTo(points[1]),
		QuadTo(points[2], points[3]),
		Close(),
	}
	if len(got) != len(want) {
		t.Fatalf("got %d commands, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("command %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestTransformCommands(t *testing.T) {
	src := NewSlice([]Command{MoveTo(geometry.Vec(1, 1)), LineTo(geometry.Vec(2, 2))})
	tr := geometry.Translation(10, 0)
	tc := NewTransformCommands(src, tr)

	c1, _ := tc.Next()
	if c1.P1 != (geometry.Point{X: 11, Y: 1}) {
		t.Errorf("first point: got %v", c1.P1)
	}
	c2, _ := tc.Next()
	if c2.P1 != (geometry.Point{X: 12, Y: 2}) {
		t.Errorf("second point: got %v", c2.P1)
	}
	if _, ok := tc.Next(); ok {
		t.Error("expected exhausted source")
	}
}

func TestCopyTo(t *testing.T) {
	src := NewSlice([]Command{
		MoveTo(geometry.Vec(0, 0)),
		CurveTo(geometry.Vec(1, 1), geometry.Vec(2, 1), geometry.Vec(3, 0)),
		Close(),
	})
	sink := &recordingSink{}
	CopyTo(src, sink)
	if len(sink.cmds) != 3 {
		t.Fatalf("got %d commands, want 3", len(sink.cmds))
	}
	if sink.cmds[1].Verb != VerbCurveTo {
		t.Errorf("expected CurveTo, got %v", sink.cmds[1].Verb)
	}
}
