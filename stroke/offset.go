// Copyright 2026 The zeno Authors
// SPDX-License-Identifier: MIT

package stroke

import (
	"math"

	"github.com/dfrg/zeno/geometry"
	"github.com/dfrg/zeno/segment"
)

// offsetEpsilon is the tolerance used to decide when a curve's control
// points have collapsed closely enough to its endpoints that its offset
// normal should be taken from a neighboring pair instead. It is much
// coarser than segment.MergeEpsilon since a nearly-flat control polygon
// still needs a well defined normal for joining.
const offsetEpsilon = 0.5

// offsetSegment is one line or curve segment that has been displaced by
// radius along its normal, together with the bookkeeping a stroker needs
// to join it to its neighbors: the original segment's source id, its
// endpoints and normals, and the pivot (the un-offset endpoint) used as
// the fallback vertex on the inner side of a turn.
type offsetSegment struct {
	segment     segment.Segment
	id          segment.ID
	start, end  geometry.Point
	startNormal geometry.Vector
	endNormal   geometry.Vector
	endPivot    geometry.Point
}

// offset displaces s by radius along its normal. For a curve, the
// interior control points are blended from the three chord normals the
// way Tiller-Hanson offsetting does, rather than offsetting the control
// polygon vertices directly, which would pull the curve's middle away
// from the true offset of a sharply bowed curve.
func offset(s segment.Segment, radius float32) offsetSegment {
	switch s.Kind {
	case segment.KindLine:
		n := geometry.Normal(s.Line.A, s.Line.B)
		nr := n.Scale(radius)
		start := s.Line.A.Add(nr)
		end := s.Line.B.Add(nr)
		return offsetSegment{
			segment:     segment.Segment{Kind: segment.KindLine, ID: s.ID, Line: segment.NewLine(start, end)},
			id:          s.ID,
			start:       start,
			end:         end,
			startNormal: n,
			endNormal:   n,
			endPivot:    s.Line.B,
		}
	case segment.KindCurve:
		c := s.Curve
		normalAB := chordNormal(c.A, c.B, c.A, c.C, c.A, c.D)
		normalBC := chordNormal(c.B, c.C, c.B, c.D, c.A, c.D)
		normalCD := chordNormal(c.C, c.D, c.B, c.D, c.A, c.D)

		normalB := blendNormal(normalAB.Add(normalBC), normalAB, normalBC, radius)
		normalC := blendNormal(normalCD.Add(normalBC), normalCD, normalBC, radius)

		start := c.A.Add(normalAB.Scale(radius))
		end := c.D.Add(normalCD.Scale(radius))
		curve := segment.NewCurve(start, c.B.Add(normalB), c.C.Add(normalC), end)
		return offsetSegment{
			segment:     segment.Segment{Kind: segment.KindCurve, ID: s.ID, Curve: curve},
			id:          s.ID,
			start:       start,
			end:         end,
			startNormal: normalAB,
			endNormal:   normalCD,
			endPivot:    c.D,
		}
	default: // segment.KindEnd
		return offsetSegment{segment: s}
	}
}

// chordNormal returns the normal of the primary chord (p, q), unless its
// endpoints have nearly collapsed, in which case it falls back to the
// secondary chord, and failing that to the degenerate chord.
func chordNormal(p, q, p2, q2, pd, qd geometry.Point) geometry.Vector {
	if p.NearlyEqualBy(q, offsetEpsilon) {
		if p2.NearlyEqualBy(q2, offsetEpsilon) {
			return geometry.Normal(pd, qd)
		}
		return geometry.Normal(p2, q2)
	}
	return geometry.Normal(p, q)
}

// blendNormal combines the two chord normals flanking a control point
// into the single normal that keeps the offset curve's width close to
// radius through the bend, scaling by the secant of half the angle
// between them.
func blendNormal(sum, a, b geometry.Vector, radius float32) geometry.Vector {
	dot := a.Dot(b)
	half := float32(math.Sqrt(float64((1 + dot) * 0.5)))
	if half == 0 {
		return sum.Normalize().Scale(radius)
	}
	return sum.Normalize().Scale(radius / half)
}
