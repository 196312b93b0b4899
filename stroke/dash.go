// Copyright 2026 The zeno Authors
// SPDX-License-Identifier: MIT

package stroke

import (
	"github.com/dfrg/zeno/geometry"
	"github.com/dfrg/zeno/segment"
)

// ValidateDashes checks dashes and offset for the patterns that produce a
// dashed stroke, returning the dash pattern to use, its start phase, and
// whether the pattern contains a dash of length zero that should be
// merged into its neighbor rather than emitted as a standalone dot
// (emptyGaps). Any of the following disables dashing, returning a nil
// pattern so that the caller strokes the path solidly instead:
//
//   - dashes is empty, or contains a negative value;
//   - every entry is shorter than one unit;
//   - every "gap" entry is shorter than one unit, since a pattern with
//     no visible gaps is indistinguishable from a solid stroke. The gaps
//     are the odd-indexed entries; an odd-length pattern repeats with on
//     and off swapped, so each of its entries counts as a gap.
//
// An odd-length pattern is not doubled here; the caller's dash walk
// already alternates on/off starting from index 0 and wraps the index
// modulo len(dashes), which has the same effect as SVG's "repeat the
// list twice" rule without the copy.
func ValidateDashes(dashes []float32, offset float32) (valid []float32, validOffset float32, emptyGaps bool) {
	n := len(dashes)
	if n == 0 {
		return nil, 0, false
	}

	isOdd := n&1 != 0
	smallCount := 0
	gapSum := float32(0)
	for i, dash := range dashes {
		isGap := i&1 == 1
		if dash < 1 {
			smallCount++
			if dash < 0 {
				return nil, 0, false
			}
			if dash == 0 && (isGap || isOdd) {
				emptyGaps = true
			}
		} else if isGap || isOdd {
			gapSum += dash
		}
	}
	if n == 1 {
		gapSum = 1
	}
	if smallCount >= n || gapSum <= 0 {
		return nil, 0, false
	}

	if offset != 0 {
		var sum float32
		for _, d := range dashes {
			sum += d
		}
		if isOdd {
			sum *= 2
		}
		if offset < 0 {
			validOffset = sum - modf32(absf32(offset), sum)
		} else {
			validOffset = modf32(offset, sum)
		}
	}
	return dashes, validOffset, emptyGaps
}

func absf32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func modf32(x, y float32) float32 {
	if y == 0 {
		return 0
	}
	for x >= y {
		x -= y
	}
	return x
}

// getSigned indexes into segments, wrapping a negative index from the end
// of the slice, so that "one before the start" lookups read naturally as
// index -1.
func getSigned(segments []segment.Segment, index int) segment.Segment {
	if index < 0 {
		index = len(segments) + index
	}
	return segments[index]
}

// isClockwise reports whether turning from normal a to normal b goes
// clockwise, i.e. the corner they flank is convex on the offset side
// this stroker is currently emitting and needs a join; the opposite,
// concave side is filled by a direct line through the segment's pivot
// point instead.
func isClockwise(a, b geometry.Vector) bool {
	return a.X*b.Y > a.Y*b.X
}

// dashOp is the action the dash walk should take after a call to
// (*dasher).next.
type dashOp int

const (
	dashDone dashOp = iota
	dashContinue
	dashEmit
	dashStroke
)

// dasher walks a buffered run of segments (one subpath between MoveTo and
// the next End marker) and reports the [start, end] segment index range
// and [t0, t1] parameter range of each dash that should be drawn.
//
// Closed subpaths need special handling at the seam: if the first dash
// is still "on" when the walk reaches back around to the starting point,
// it must be merged with whatever trailing dash is also on, rather than
// drawn as two separate pieces with a seam in the middle of what should
// be one dash.
type dasher struct {
	done       bool
	isClosed   bool
	emptyGaps  bool
	on         bool
	cur        int
	t0         float32
	t0Offset   float32
	index      int
	isFirst    bool
	firstOn    bool
	firstDash  float32
	isDot      bool
	rangeStart int
	rangeEnd   int
	t0r, t1r   float32
}

// init begins a dash walk over a subpath, applying offset as a phase
// shift: dashes are consumed (toggling on/off) until the shift is used
// up, so the pattern appears to have already been running for that
// distance when the subpath starts.
func (d *dasher) init(isClosed bool, dashes []float32, offset float32) {
	d.done = false
	d.isClosed = isClosed
	d.on = true
	d.cur = 0
	d.t0 = 0
	d.t0Offset = 0
	d.index = 0
	d.isFirst = true
	d.firstOn = true

	firstDash := d.nextDash(dashes)
	if offset > 0 {
		accum := firstDash
		for accum < offset {
			d.on = !d.on
			accum += d.nextDash(dashes)
		}
		d.firstOn = d.on
		firstDash = accum - offset
	}
	d.firstDash = firstDash
}

// nextDash returns the length of the next dash in the pattern, merging
// in any zero-length gap entries when emptyGaps requests it, so that a
// pattern such as [d, 0, d] draws one continuous dash of length 2d
// instead of two dashes touching at a single point.
func (d *dasher) nextDash(dashes []float32) float32 {
	n := len(dashes)
	dash := dashes[d.index%n]
	if d.on && d.emptyGaps {
		for {
			next := dashes[(d.index+1)%n]
			if next != 0 {
				break
			}
			d.index += 2
			dash += dashes[d.index%n]
		}
	}
	d.index++
	return dash
}

// nextSegments walks forward from segment start (parameter start-offset
// into it already consumed) until it has covered distance dash, or runs
// out of segments. It returns whether the distance was fully covered,
// the index of the segment it stopped in, the distance from that
// segment's start to the stopping point, and the time parameter there.
func nextSegments(dash float32, segments []segment.Segment, limit, start int, startOffset float32) (cont bool, cur int, dist, t float32) {
	cur = start
	goal := dash + startOffset
	seg := getSigned(segments, cur)
	for {
		td := seg.Time(goal, 1)
		dist = td.Distance
		t = td.Time
		goal -= dist
		if goal <= 0 {
			return true, cur, dist, t
		}
		if cur+1 >= limit {
			return false, cur, dist, t
		}
		cur++
		seg = getSigned(segments, cur)
	}
}

// next advances the dash walk by one dash or gap, returning what the
// caller should do about it.
func (d *dasher) next(segments []segment.Segment, dashes []float32) dashOp {
	if d.done {
		return dashDone
	}
	first := d.isFirst
	firstAndClosed := first && d.isClosed
	var dash float32
	if first {
		dash = d.firstDash
	} else {
		dash = d.nextDash(dashes)
	}
	on := d.on
	start := d.cur
	limit := len(segments)
	if d.t0 == 1 && start < limit-1 {
		start++
		d.t0 = 0
		d.t0Offset = 0
		d.cur = start
	}

	var cont bool
	var end int
	var t1Offset, t1 float32
	if dash == 0 {
		cont, end, t1Offset, t1 = true, start, d.t0Offset, d.t0
	} else {
		cont, end, t1Offset, t1 = nextSegments(dash, segments, limit, start, d.t0Offset)
	}
	if !cont {
		d.done = true
	}

	if d.done && d.isClosed {
		if on {
			if firstAndClosed {
				return dashStroke
			}
			if d.firstOn {
				d.cur = start - limit
				start = d.cur
				_, end2, endOffset, endT := nextSegments(d.firstDash, segments, limit, 0, 0)
				end, t1Offset, t1 = end2, endOffset, endT
			}
		} else {
			if !d.firstOn {
				return dashDone
			}
			dash = d.firstDash
			d.cur = 0
			d.t0 = 0
			d.t0Offset = 0
			d.on = true
			on = true
			start = d.cur
			_, end2, endOffset, endT := nextSegments(d.firstDash, segments, limit, 0, 0)
			end, t1Offset, t1 = end2, endOffset, endT
		}
	} else if d.done && !on {
		return dashDone
	}

	d.isDot = dash == 0
	t0 := d.t0

	d.isFirst = false
	d.cur = end
	d.t0 = t1
	d.t0Offset = t1Offset
	d.on = !d.on
	if on && !firstAndClosed {
		d.rangeStart, d.rangeEnd = start, end
		d.t0r, d.t1r = t0, t1
		return dashEmit
	}
	return dashContinue
}
