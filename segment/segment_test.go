// Copyright 2026 The zeno Authors
// SPDX-License-Identifier: MIT

package segment

import (
	"testing"

	"github.com/dfrg/zeno/command"
	"github.com/dfrg/zeno/geometry"
)

func collect(src *Segments) []Segment {
	var out []Segment
	for {
		seg, ok := src.Next()
		if !ok {
			return out
		}
		out = append(out, seg)
	}
}

func TestSegmentsSquare(t *testing.T) {
	cmds := command.NewSlice([]command.Command{
		command.MoveTo(geometry.Vec(0, 0)),
		command.LineTo(geometry.Vec(10, 0)),
		command.LineTo(geometry.Vec(10, 10)),
		command.LineTo(geometry.Vec(0, 10)),
		command.Close(),
	})
	segs := collect(NewSegments(cmds, false))
	// three lines, the closing line back to the start, then End(true).
	if len(segs) != 5 {
		t.Fatalf("got %d segments, want 5", len(segs))
	}
	for i := 0; i < 4; i++ {
		if segs[i].Kind != KindLine {
			t.Errorf("segment %d: want line, got %v", i, segs[i].Kind)
		}
	}
	if segs[4].Kind != KindEnd || !segs[4].Closed {
		t.Errorf("final segment should be a closed End marker, got %+v", segs[4])
	}
}

func TestSegmentsOpenSubpathEnd(t *testing.T) {
	cmds := command.NewSlice([]command.Command{
		command.MoveTo(geometry.Vec(0, 0)),
		command.LineTo(geometry.Vec(10, 0)),
		command.MoveTo(geometry.Vec(20, 20)),
		command.LineTo(geometry.Vec(30, 20)),
	})
	segs := collect(NewSegments(cmds, false))
	// line, End(false) before the second MoveTo, line.
	if len(segs) != 3 {
		t.Fatalf("got %d segments, want 3: %+v", len(segs), segs)
	}
	if segs[1].Kind != KindEnd || segs[1].Closed {
		t.Errorf("expected an open End marker between subpaths, got %+v", segs[1])
	}
}

func TestCurveEvaluateEndpoints(t *testing.T) {
	c := NewCurve(geometry.Vec(0, 0), geometry.Vec(0, 10), geometry.Vec(10, 10), geometry.Vec(10, 0))
	if p := c.Evaluate(0); !p.NearlyEqualBy(c.A, 1e-4) {
		t.Errorf("Evaluate(0) = %v, want %v", p, c.A)
	}
	if p := c.Evaluate(1); !p.NearlyEqualBy(c.D, 1e-4) {
		t.Errorf("Evaluate(1) = %v, want %v", p, c.D)
	}
}

func TestCurveIsLine(t *testing.T) {
	straight := NewCurve(geometry.Vec(0, 0), geometry.Vec(0.1, 0.1), geometry.Vec(9.9, 9.9), geometry.Vec(10, 10))
	if !straight.IsLine(0.5) {
		t.Error("curve with control points on its endpoints should be classified as a line")
	}
	curvy := NewCurve(geometry.Vec(0, 0), geometry.Vec(0, 10), geometry.Vec(10, 10), geometry.Vec(10, 0))
	if curvy.IsLine(MergeEpsilon) {
		t.Error("curvy curve should not be classified as a line")
	}
}

func TestCurveFromQuadratic(t *testing.T) {
	q := CurveFromQuadratic(geometry.Vec(0, 0), geometry.Vec(5, 10), geometry.Vec(10, 0))
	if p := q.Evaluate(0.5); p.Y <= 0 {
		t.Errorf("converted quadratic should bulge upward, got %v", p)
	}
}

func TestLineTime(t *testing.T) {
	l := NewLine(geometry.Vec(0, 0), geometry.Vec(10, 0))
	tm := l.Time(5)
	if tm.Time != 0.5 {
		t.Errorf("Time = %v, want 0.5", tm.Time)
	}
	tm = l.Time(20)
	if tm.Time != 1 || tm.Distance != 10 {
		t.Errorf("overshoot Time = %+v, want distance=10 time=1", tm)
	}
}
