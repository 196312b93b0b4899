// Copyright 2026 The zeno Authors
// SPDX-License-Identifier: MIT

package testcases

import (
	"testing"

	"github.com/dfrg/zeno/raster"
)

// TestAllCasesRenderWithoutPanicking renders every registered case
// through raster.Mask and checks it produces a mask of the requested
// size. It is a smoke test: it does not compare pixels against a
// reference image, only that every fixture is well-formed enough to
// rasterize end to end.
func TestAllCasesRenderWithoutPanicking(t *testing.T) {
	for category, cases := range All {
		for _, tc := range cases {
			tc := tc
			t.Run(category+"/"+tc.Name, func(t *testing.T) {
				mask := raster.NewMask(tc.Data()).Style(tc.Style)
				if tc.Transform != nil {
					mask = mask.Transform(tc.Transform)
				}
				buf, placement := mask.Size(uint32(tc.Width), uint32(tc.Height)).Render()
				want := raster.Alpha.BufferSize(placement.Width, placement.Height)
				if len(buf) != want {
					t.Fatalf("rendered buffer has %d bytes, want %d", len(buf), want)
				}
			})
		}
	}
}

// TestFillCasesProduceCoverage checks that every fill-category case
// covers at least one pixel; an all-zero mask would indicate a
// degenerate or mis-wound fixture.
func TestFillCasesProduceCoverage(t *testing.T) {
	for _, tc := range fillCases {
		buf, _ := raster.NewMask(tc.Data()).Style(tc.Style).
			Size(uint32(tc.Width), uint32(tc.Height)).Render()
		covered := false
		for _, b := range buf {
			if b != 0 {
				covered = true
				break
			}
		}
		if !covered {
			t.Errorf("case %q produced an all-zero mask", tc.Name)
		}
	}
}
