// Copyright 2026 The zeno Authors
// SPDX-License-Identifier: MIT

package path

import (
	"testing"

	"github.com/dfrg/zeno/command"
	"github.com/dfrg/zeno/geometry"
)

func collect(src command.Source) []command.Command {
	var out []command.Command
	for {
		cmd, ok := src.Next()
		if !ok {
			return out
		}
		out = append(out, cmd)
	}
}

func TestSVGBasicCommands(t *testing.T) {
	got := collect(NewSvgCommands("M1 2L3 4"))
	want := []command.Command{
		command.MoveTo(geometry.Vec(1, 2)),
		command.LineTo(geometry.Vec(3, 4)),
	}
	if len(got) != len(want) {
		t.Fatalf("got %d commands, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("command %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSVGImplicitLineTo(t *testing.T) {
	// a bare coordinate pair following "L1 1" is an implicit repeated L.
	got := collect(NewSvgCommands("M0 0L1 1 2 2 3 3"))
	if len(got) != 4 {
		t.Fatalf("got %d commands, want 4: %+v", len(got), got)
	}
	for i, want := range []geometry.Point{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}} {
		if got[i+1].Verb != command.VerbLineTo || got[i+1].P1 != want {
			t.Errorf("command %d: got %+v, want LineTo(%v)", i+1, got[i+1], want)
		}
	}
}

func TestSVGRelativeCommands(t *testing.T) {
	got := collect(NewSvgCommands("m10 10l5 0l0 5z"))
	want := []command.Command{
		command.MoveTo(geometry.Vec(10, 10)),
		command.LineTo(geometry.Vec(15, 10)),
		command.LineTo(geometry.Vec(15, 15)),
		command.Close(),
	}
	if len(got) != len(want) {
		t.Fatalf("got %d commands, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("command %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSVGSmoothCurveReflection(t *testing.T) {
	// after a C, an S reflects the prior curve's second control point
	// through the current point.
	got := collect(NewSvgCommands("M0 0C0 10 10 10 10 0S20 -10 20 0"))
	if len(got) != 3 {
		t.Fatalf("got %d commands, want 3: %+v", len(got), got)
	}
	curve := got[2]
	if curve.Verb != command.VerbCurveTo {
		t.Fatalf("expected a CurveTo, got %+v", curve)
	}
	wantC1 := geometry.Vec(10, -10) // reflection of (10,10) through (10,0)
	if !curve.P1.NearlyEqualBy(wantC1, 1e-4) {
		t.Errorf("reflected control point = %v, want %v", curve.P1, wantC1)
	}
}

func TestSVGArcProducesCurves(t *testing.T) {
	got := collect(NewSvgCommands("M10 0A10 10 0 1 0 -10 0"))
	if len(got) < 2 {
		t.Fatalf("expected a MoveTo followed by at least one CurveTo, got %+v", got)
	}
	for _, cmd := range got[1:] {
		if cmd.Verb != command.VerbCurveTo {
			t.Errorf("expected arc to be flattened into CurveTo commands, got %+v", cmd)
		}
	}
	last := got[len(got)-1]
	if !last.P3.NearlyEqualBy(geometry.Vec(-10, 0), 1e-3) {
		t.Errorf("arc endpoint = %v, want (-10, 0)", last.P3)
	}
}

func TestValidateSVGAccepts(t *testing.T) {
	if err := ValidateSVG("M0 0L10 10 20 20Z"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateSVGRejects(t *testing.T) {
	err := ValidateSVG("M0 0 L10 10 X")
	if err == nil {
		t.Fatal("expected an error for the unrecognized command letter")
	}
	svgErr, ok := err.(*SVGError)
	if !ok {
		t.Fatalf("expected *SVGError, got %T", err)
	}
	if svgErr.Pos <= 0 || svgErr.Pos >= len("M0 0 L10 10 X") {
		t.Errorf("error position %d looks implausible", svgErr.Pos)
	}
}

func TestAddRectProducesClosedSubpath(t *testing.T) {
	var buf Buffer
	AddRect(&buf, geometry.Vec(0, 0), 10, 20)
	if len(buf.Commands) != 5 {
		t.Fatalf("got %d commands, want 5", len(buf.Commands))
	}
	if buf.Commands[0].Verb != command.VerbMoveTo || buf.Commands[4].Verb != command.VerbClose {
		t.Errorf("rectangle should start with MoveTo and end with Close, got %+v", buf.Commands)
	}
}

func TestAddCircleBounds(t *testing.T) {
	var buf Buffer
	AddCircle(&buf, geometry.Vec(5, 5), 3)
	bounds := PathBounds(Commands(buf.Commands), nil)
	if bounds.Min.X < 1.9 || bounds.Max.X > 8.1 {
		t.Errorf("circle bounds %+v look wrong for center (5,5) radius 3", bounds)
	}
}

func TestLengthOfSquare(t *testing.T) {
	var buf Buffer
	AddRect(&buf, geometry.Zero, 10, 10)
	got := Length(Commands(buf.Commands), nil)
	if got < 39.9 || got > 40.1 {
		t.Errorf("Length = %v, want 40", got)
	}
}

func TestVerticesOfTriangle(t *testing.T) {
	var buf Buffer
	buf.MoveTo(geometry.Vec(0, 0))
	buf.LineTo(geometry.Vec(10, 0))
	buf.LineTo(geometry.Vec(10, 10))
	buf.Close()

	v := NewVertices(command.NewSlice(buf.Commands))
	var kinds []VertexKind
	for {
		vert, ok := v.Next()
		if !ok {
			break
		}
		kinds = append(kinds, vert.Kind)
	}
	if len(kinds) != 4 || kinds[0] != VertexStart || kinds[len(kinds)-1] != VertexEnd {
		t.Errorf("got vertex kinds %v, want Start, Middle, Middle, End", kinds)
	}
}

func TestWalkStepsAlongLine(t *testing.T) {
	var buf Buffer
	buf.MoveTo(geometry.Zero)
	buf.LineTo(geometry.Vec(10, 0))

	w := NewWalk(command.NewSlice(buf.Commands))
	p, _, ok := w.Step(5)
	if !ok {
		t.Fatal("Step should succeed within path length")
	}
	if !p.NearlyEqualBy(geometry.Vec(5, 0), 1e-4) {
		t.Errorf("Step(5) = %v, want (5, 0)", p)
	}
	if _, _, ok := w.Step(100); ok {
		t.Error("Step far beyond the path end should fail")
	}
}
