// Copyright 2026 The zeno Authors
// SPDX-License-Identifier: MIT

// Package raster is a fixed-point, cell-list scan-conversion rasterizer:
// it turns a stream of move/line/quad/cubic commands into per-pixel
// coverage, and layers a reusable-memory façade (Scratch), a mask
// builder (Mask) and a point-in-path test (HitTest) on top of it.
package raster

import "github.com/dfrg/zeno/geometry"

// Cell is one record per (x, y) pixel touched while rasterizing a row.
// cover is the signed coverage contribution at the cell's left edge;
// area is the signed area swept through the cell's interior. next
// chains to the next cell in the same row, in ascending x order, with -1
// terminating the row.
type Cell struct {
	X, Cover, Area, Next int32
}

// Storage holds the per-row cell lists a Rasterizer accumulates into
// during one rasterization. A Rasterizer borrows a Storage for the
// duration of a single call; two concurrent rasterizations must use
// distinct Storage values.
type Storage interface {
	// Reset clears the storage and prepares it to receive cells for rows
	// min.Y through max.Y-1.
	Reset(min, max geometry.FixedPoint)
	// Cells returns the accumulated cell pool, indexed by the values
	// returned from Indices.
	Cells() []Cell
	// Indices returns, for each row, the index of that row's first cell
	// in Cells, or -1 if the row has no cells.
	Indices() []int32
	// Set inserts or merges a contribution at pixel (x, y), keeping each
	// row's cell list sorted by ascending x. A second contribution at an
	// already-recorded (x, y) is added into the existing cell rather
	// than creating a duplicate.
	Set(x, y, area, cover int32)
}
