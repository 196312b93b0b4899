// Copyright 2026 The zeno Authors
// SPDX-License-Identifier: MIT

package geometry

import "testing"

func TestVectorArithmetic(t *testing.T) {
	a := Vec(1, 2)
	b := Vec(3, -1)

	if got := a.Add(b); got != (Vector{4, 1}) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Sub(b); got != (Vector{-2, 3}) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Dot(b); got != 1 {
		t.Errorf("Dot: got %v, want 1", got)
	}
	if got := a.Cross(b); got != -7 {
		t.Errorf("Cross: got %v, want -7", got)
	}
}

func TestVectorNormalize(t *testing.T) {
	v := Vec(3, 4).Normalize()
	if !v.NearlyEqualBy(Vec(0.6, 0.8), 1e-6) {
		t.Errorf("Normalize: got %v", v)
	}
	if got := Zero.Normalize(); got != Zero {
		t.Errorf("Normalize of zero vector: got %v", got)
	}
}

func TestFixedRoundTrip(t *testing.T) {
	cases := []float32{0, 1, -1, 0.5, 127.999, -127.999}
	for _, v := range cases {
		f := ToFixed(v)
		if got := f.Float(); absf(got-v) > 1.0/256 {
			t.Errorf("ToFixed(%v).Float() = %v, want ~%v", v, got, v)
		}
	}
}

func TestFixedTruncFract(t *testing.T) {
	f := ToFixed(3.5)
	if got := f.Trunc(); got != 3 {
		t.Errorf("Trunc: got %d, want 3", got)
	}
	if got := f.Fract(); got != 128 {
		t.Errorf("Fract: got %d, want 128", got)
	}
}

func TestTransformInvert(t *testing.T) {
	tr := NewTransform(2, 0, 0, 4, 1, 1)
	inv, ok := tr.Invert()
	if !ok {
		t.Fatal("expected invertible transform")
	}
	p := Vec(5, 6)
	got := inv.TransformPoint(tr.TransformPoint(p))
	if !got.NearlyEqualBy(p, 1e-4) {
		t.Errorf("round trip: got %v, want %v", got, p)
	}

	singular := NewTransform(1, 2, 2, 4, 0, 0)
	if _, ok := singular.Invert(); ok {
		t.Error("expected singular transform to fail to invert")
	}
}

func TestTransformCompose(t *testing.T) {
	tr := Translation(10, 0).ThenRotate(0).ThenScale(2, 2)
	got := tr.TransformPoint(Vec(1, 1))
	want := Vec(22, 2)
	if !got.NearlyEqualBy(want, 1e-4) {
		t.Errorf("compose: got %v, want %v", got, want)
	}
}

func TestBoundsBuilder(t *testing.T) {
	var b BoundsBuilder
	b.Add(Vec(1, 2)).Add(Vec(-1, 5)).Add(Vec(3, 0))
	bounds := b.Build()
	if bounds.Min != (Point{-1, 0}) || bounds.Max != (Point{3, 5}) {
		t.Errorf("bounds: got min=%v max=%v", bounds.Min, bounds.Max)
	}
	if bounds.IsEmpty() {
		t.Error("bounds should not be empty")
	}
}

func TestBoundsEmptyWhenNoPoints(t *testing.T) {
	var b BoundsBuilder
	bounds := b.Build()
	if !bounds.IsEmpty() {
		t.Error("bounds with no points should be empty")
	}
}

func TestComputePlacement(t *testing.T) {
	bounds := NewBounds(Vec(5, 5), Vec(1005, 1005))
	_, placement := ComputePlacement(TopLeft, Zero, bounds)
	if placement.Width != 1002 || placement.Height != 1000 {
		t.Errorf("placement: got width=%d height=%d", placement.Width, placement.Height)
	}
}
