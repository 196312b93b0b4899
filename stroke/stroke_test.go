// Copyright 2026 The zeno Authors
// SPDX-License-Identifier: MIT

package stroke

import (
	"testing"

	"github.com/dfrg/zeno/command"
	"github.com/dfrg/zeno/geometry"
	"github.com/dfrg/zeno/path"
)

func TestValidateDashesRejectsNegative(t *testing.T) {
	valid, _, _ := ValidateDashes([]float32{4, -1}, 0)
	if valid != nil {
		t.Errorf("expected negative dash value to disable dashing, got %v", valid)
	}
}

func TestValidateDashesAllTooSmallDisables(t *testing.T) {
	valid, _, _ := ValidateDashes([]float32{0.5, 0.2}, 0)
	if valid != nil {
		t.Errorf("expected an all-sub-unit pattern to disable dashing, got %v", valid)
	}
}

func TestValidateDashesSingleValueTreatedAsGap(t *testing.T) {
	valid, _, _ := ValidateDashes([]float32{5}, 0)
	if valid == nil {
		t.Fatal("a single positive dash length should enable dashing")
	}
}

func TestValidateDashesOffsetWraps(t *testing.T) {
	_, offset, _ := ValidateDashes([]float32{4, 4}, 20)
	if offset < 0 || offset >= 8 {
		t.Errorf("offset = %v, want a value reduced modulo the pattern length (8)", offset)
	}
}

func TestValidateDashesEmptyGapMerges(t *testing.T) {
	_, _, emptyGaps := ValidateDashes([]float32{4, 0, 4}, 0)
	if !emptyGaps {
		t.Error("a zero-length gap entry should be flagged for merging")
	}
}

func strokeLine(style Stroke, from, to geometry.Point) []command.Command {
	var buf path.Buffer
	buf.MoveTo(from)
	buf.LineTo(to)
	var out path.Buffer
	StrokeCommandsInto(buf.Source(), style, &out)
	return out.Commands
}

func TestStrokeLineProducesClosedOutline(t *testing.T) {
	cmds := strokeLine(Stroke{Width: 2}, geometry.Vec(0, 0), geometry.Vec(10, 0))
	if len(cmds) == 0 {
		t.Fatal("expected a non-empty outline")
	}
	if cmds[0].Verb != command.VerbMoveTo {
		t.Errorf("outline should start with MoveTo, got %+v", cmds[0])
	}
	last := cmds[len(cmds)-1]
	if last.Verb != command.VerbClose {
		t.Errorf("outline should end with Close, got %+v", last)
	}
}

func TestStrokeLineBoundsMatchRadius(t *testing.T) {
	cmds := strokeLine(Stroke{Width: 4, StartCap: ButtCap, EndCap: ButtCap}, geometry.Vec(0, 0), geometry.Vec(10, 0))
	bounds := path.PathBounds(path.Commands(cmds), nil)
	// a horizontal line stroked with a butt cap and width 4 should reach
	// +/-2 in Y and stay within [0, 10] in X.
	if bounds.Min.Y > -1.9 || bounds.Max.Y < 1.9 {
		t.Errorf("Y bounds %v do not reach the expected +/-2 radius", bounds)
	}
	if bounds.Min.X < -0.1 || bounds.Max.X > 10.1 {
		t.Errorf("X bounds %v should not extend past the butt-capped endpoints", bounds)
	}
}

func TestStrokeSquareCapExtendsBounds(t *testing.T) {
	cmds := strokeLine(Stroke{Width: 4, StartCap: SquareCap, EndCap: SquareCap}, geometry.Vec(0, 0), geometry.Vec(10, 0))
	bounds := path.PathBounds(path.Commands(cmds), nil)
	if bounds.Max.X < 11.9 || bounds.Min.X > -1.9 {
		t.Errorf("square cap should extend X bounds by the radius, got %v", bounds)
	}
}

func TestStrokeRoundJoinOnRightAngle(t *testing.T) {
	var buf path.Buffer
	buf.MoveTo(geometry.Vec(0, 0))
	buf.LineTo(geometry.Vec(10, 0))
	buf.LineTo(geometry.Vec(10, 10))
	var out path.Buffer
	StrokeCommandsInto(buf.Source(), Stroke{Width: 2, Join: RoundJoin}, &out)
	if len(out.Commands) == 0 {
		t.Fatal("expected a non-empty outline")
	}
	foundCurve := false
	for _, c := range out.Commands {
		if c.Verb == command.VerbCurveTo {
			foundCurve = true
		}
	}
	if !foundCurve {
		t.Error("a round join at a right-angle turn should emit at least one curve")
	}
}

func TestStrokeDashedLineProducesMultiplePieces(t *testing.T) {
	var buf path.Buffer
	buf.MoveTo(geometry.Vec(0, 0))
	buf.LineTo(geometry.Vec(20, 0))
	var out path.Buffer
	StrokeCommandsInto(buf.Source(), Stroke{Width: 2, Dashes: []float32{4, 4}}, &out)

	moves := 0
	for _, c := range out.Commands {
		if c.Verb == command.VerbMoveTo {
			moves++
		}
	}
	if moves < 2 {
		t.Errorf("a 20-unit line dashed 4-on/4-off should produce multiple outline pieces, got %d MoveTo", moves)
	}
}

func TestStrokeClosedSquareStartsWithMoveTo(t *testing.T) {
	var buf path.Buffer
	path.AddRect(&buf, geometry.Zero, 10, 10)
	var out path.Buffer
	StrokeCommandsInto(buf.Source(), Stroke{Width: 2, Join: MiterJoin, MiterLimit: DefaultMiterLimit}, &out)
	if len(out.Commands) == 0 {
		t.Fatal("expected a non-empty outline for a closed square")
	}
	if out.Commands[0].Verb != command.VerbMoveTo {
		t.Errorf("outline should start with MoveTo, got %+v", out.Commands[0])
	}
}

func TestApplyFillReturnsRequestedRule(t *testing.T) {
	var buf path.Buffer
	path.AddCircle(&buf, geometry.Vec(5, 5), 3)
	var out path.Buffer
	rule := Apply(path.Commands(buf.Commands), FillStyle(EvenOdd), nil, &out)
	if rule != EvenOdd {
		t.Errorf("Apply(fill) should return the requested rule, got %v", rule)
	}
	if len(out.Commands) != len(buf.Commands) {
		t.Errorf("a fill Apply should copy the path unchanged, got %d commands, want %d", len(out.Commands), len(buf.Commands))
	}
}

func TestApplyStrokeAlwaysReturnsNonZero(t *testing.T) {
	var buf path.Buffer
	buf.MoveTo(geometry.Vec(0, 0))
	buf.LineTo(geometry.Vec(10, 0))
	var out path.Buffer
	rule := Apply(path.Commands(buf.Commands), StrokeStyle(Stroke{Width: 2}), nil, &out)
	if rule != NonZero {
		t.Errorf("Apply(stroke) should always report NonZero, got %v", rule)
	}
}

func TestApplyScalesStrokeWidthWithTransform(t *testing.T) {
	var buf path.Buffer
	buf.MoveTo(geometry.Vec(0, 0))
	buf.LineTo(geometry.Vec(10, 0))

	transform := geometry.Scale(2, 2)

	var scaled path.Buffer
	Apply(path.Commands(buf.Commands), StrokeStyle(Stroke{Width: 2, ScaleWithTransform: true}), &transform, &scaled)
	scaledBounds := path.PathBounds(path.Commands(scaled.Commands), nil)

	var unscaled path.Buffer
	Apply(path.Commands(buf.Commands), StrokeStyle(Stroke{Width: 2, ScaleWithTransform: false}), &transform, &unscaled)
	unscaledBounds := path.PathBounds(path.Commands(unscaled.Commands), nil)

	scaledHeight := scaledBounds.Max.Y - scaledBounds.Min.Y
	unscaledHeight := unscaledBounds.Max.Y - unscaledBounds.Min.Y
	if scaledHeight <= unscaledHeight {
		t.Errorf("scaling the stroke with the transform should widen the line more than leaving it fixed: %v vs %v", scaledHeight, unscaledHeight)
	}
}
