// Copyright 2026 The zeno Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"testing"

	"github.com/dfrg/zeno/geometry"
	"github.com/dfrg/zeno/path"
	"github.com/dfrg/zeno/stroke"
)

func rasterizeRect(t *testing.T, w, h int, fill stroke.Fill, build func(*path.Buffer)) []byte {
	t.Helper()
	var buf path.Buffer
	build(&buf)
	ras := New(NewAdaptiveStorage())
	out := make([]byte, w*h)
	ras.Rasterize(geometry.Zero, w, h, func(r *Rasterizer) {
		path.CopyTo(path.Commands(buf.Commands), r)
	}, fill, out, w, false)
	return out
}

func TestRasterizeAxisAlignedSquareFullCoverage(t *testing.T) {
	out := rasterizeRect(t, 20, 20, stroke.NonZero, func(b *path.Buffer) {
		path.AddRect(b, geometry.Vec(5, 5), 10, 10)
	})
	// the interior of the square, away from its fractional-coverage
	// edges, should be fully covered.
	if out[10*20+10] != 255 {
		t.Errorf("interior pixel coverage = %d, want 255", out[10*20+10])
	}
	if out[1*20+1] != 0 {
		t.Errorf("exterior pixel coverage = %d, want 0", out[1*20+1])
	}
}

func TestRasterizeEvenOddDonutHasHole(t *testing.T) {
	const n = 40
	out := rasterizeRect(t, n, n, stroke.EvenOdd, func(b *path.Buffer) {
		path.AddCircle(b, geometry.Vec(20, 20), 18)
		path.AddCircle(b, geometry.Vec(20, 20), 8)
	})
	if out[20*n+20] != 0 {
		t.Errorf("donut center coverage = %d, want 0", out[20*n+20])
	}
	if out[20*n+5] == 0 {
		t.Errorf("donut ring coverage at (5,20) = 0, want > 0")
	}
}

func TestRasterizeNonZeroDonutHasNoHole(t *testing.T) {
	const n = 40
	out := rasterizeRect(t, n, n, stroke.NonZero, func(b *path.Buffer) {
		path.AddCircle(b, geometry.Vec(20, 20), 18)
		path.AddCircle(b, geometry.Vec(20, 20), 8)
	})
	if out[20*n+20] == 0 {
		t.Errorf("non-zero-filled overlapping circles should cover the center, got 0")
	}
}

func TestRasterizeIdempotent(t *testing.T) {
	build := func(b *path.Buffer) { path.AddCircle(b, geometry.Vec(15, 15), 10) }
	first := rasterizeRect(t, 30, 30, stroke.NonZero, build)
	second := rasterizeRect(t, 30, 30, stroke.NonZero, build)
	if len(first) != len(second) {
		t.Fatalf("length mismatch: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("rasterizing the same path twice produced different coverage at pixel %d: %d vs %d", i, first[i], second[i])
		}
	}
}

func TestHeapStorageMergesSameCell(t *testing.T) {
	var s HeapStorage
	s.Reset(geometry.FixedPoint{}, geometry.FixedPoint{X: 10, Y: 10})
	s.Set(3, 2, 100, 5)
	s.Set(3, 2, 50, 5)
	cells := s.Cells()
	idx := s.Indices()[2]
	if idx == -1 {
		t.Fatal("expected a cell at row 2")
	}
	cell := cells[idx]
	if cell.Area != 150 || cell.Cover != 10 {
		t.Errorf("merged cell = %+v, want area 150, cover 10", cell)
	}
}

func TestHeapStorageOrdersCellsByX(t *testing.T) {
	var s HeapStorage
	s.Reset(geometry.FixedPoint{}, geometry.FixedPoint{X: 10, Y: 10})
	s.Set(5, 0, 1, 1)
	s.Set(2, 0, 1, 1)
	s.Set(8, 0, 1, 1)
	cells := s.Cells()
	var xs []int32
	for idx := s.Indices()[0]; idx != -1; idx = cells[idx].Next {
		xs = append(xs, cells[idx].X)
	}
	want := []int32{2, 5, 8}
	if len(xs) != len(want) {
		t.Fatalf("got %v, want %v", xs, want)
	}
	for i := range want {
		if xs[i] != want[i] {
			t.Errorf("cell order = %v, want %v", xs, want)
		}
	}
}

func TestAdaptiveStorageSpillsToHeap(t *testing.T) {
	var s AdaptiveStorage
	s.Reset(geometry.FixedPoint{}, geometry.FixedPoint{X: 1, Y: 1})
	for x := int32(0); x < maxInlineCells+10; x++ {
		s.Set(x, 0, 1, 1)
	}
	cells := s.Cells()
	if len(cells) < maxInlineCells+10 {
		t.Fatalf("expected storage to spill to %d cells, got %d", maxInlineCells+10, len(cells))
	}
}

func TestMaskRenderAlphaHasCoverage(t *testing.T) {
	var buf path.Buffer
	path.AddCircle(&buf, geometry.Zero, 10)
	out, placement := NewMask(path.Commands(buf.Commands)).Render()
	if placement.Width == 0 || placement.Height == 0 {
		t.Fatalf("placement = %+v, want non-zero size", placement)
	}
	nonZero := false
	for _, b := range out {
		if b != 0 {
			nonZero = true
			break
		}
	}
	if !nonZero {
		t.Error("rendering a filled circle produced an all-zero mask")
	}
}

func TestMaskExplicitSizeOverridesBounds(t *testing.T) {
	var buf path.Buffer
	path.AddCircle(&buf, geometry.Zero, 1000)
	_, placement := NewMask(path.Commands(buf.Commands)).Size(4, 4).Render()
	if placement.Width != 4 || placement.Height != 4 {
		t.Errorf("placement = %+v, want 4x4 from the explicit size", placement)
	}
}

func TestMaskSubpixelChannelsDiffer(t *testing.T) {
	var buf path.Buffer
	buf.MoveTo(geometry.Vec(10, 0))
	buf.LineTo(geometry.Vec(10, 20))
	buf.LineTo(geometry.Vec(11, 20))
	buf.LineTo(geometry.Vec(11, 0))
	buf.Close()

	out, placement := NewMask(path.Commands(buf.Commands)).Format(Subpixel).Render()
	w := int(placement.Width)
	row := 10 * w * 4

	differs := false
	for x := 0; x < w; x++ {
		j := row + x*4
		r, g, b := out[j], out[j+1], out[j+2]
		if r != g || g != b {
			differs = true
			break
		}
	}
	if !differs {
		t.Error("subpixel channels at a thin vertical edge should differ under horizontal shifts")
	}
}

func TestScratchReuseProducesSameResultAsUnscratched(t *testing.T) {
	var buf path.Buffer
	buf.MoveTo(geometry.Vec(0, 0))
	buf.LineTo(geometry.Vec(10, 0))
	style := stroke.StrokeStyle(stroke.Stroke{Width: 2})

	scratch := NewScratch()
	var withScratch path.Buffer
	scratch.Apply(path.Commands(buf.Commands), style, nil, &withScratch)
	// applying a second time must reuse, not corrupt, the scratch buffer.
	var withScratch2 path.Buffer
	scratch.Apply(path.Commands(buf.Commands), style, nil, &withScratch2)

	var withoutScratch path.Buffer
	stroke.Apply(path.Commands(buf.Commands), style, nil, &withoutScratch)

	if len(withScratch2.Commands) != len(withoutScratch.Commands) {
		t.Fatalf("scratch-reused Apply produced %d commands, want %d", len(withScratch2.Commands), len(withoutScratch.Commands))
	}
}

func TestHitTestInsideAndOutsideCircle(t *testing.T) {
	var buf path.Buffer
	path.AddCircle(&buf, geometry.Vec(50, 50), 20)
	ht := NewHitTest(path.Commands(buf.Commands))
	if !ht.Test(geometry.Vec(50, 50)) {
		t.Error("center of circle should be a hit")
	}
	if ht.Test(geometry.Vec(0, 0)) {
		t.Error("far outside the circle should not be a hit")
	}
}
