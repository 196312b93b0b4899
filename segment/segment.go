// Copyright 2026 The zeno Authors
// SPDX-License-Identifier: MIT

// Package segment implements the flattened curve/line intermediate
// representation shared by the rasterizer, the stroker, and path
// traversal, along with the max-curvature splitting that keeps
// piecewise-offset stroking visually correct.
package segment

import (
	"math"

	"github.com/dfrg/zeno/geometry"
)

// This large epsilon trades fidelity for performance, visual continuity
// and numeric stability.
const MergeEpsilon float32 = 0.01

// Time describes how far along a segment a given distance falls.
type Time struct {
	Distance float32
	Time     float32
}

// Line is a straight segment between two points.
type Line struct {
	A, B geometry.Point
}

// NewLine returns a new line segment.
func NewLine(a, b geometry.Point) Line { return Line{A: a, B: b} }

// Length returns the length of the line.
func (l Line) Length() float32 { return l.B.Sub(l.A).Length() }

// Slice returns the portion of the line between parameters start and end.
func (l Line) Slice(start, end float32) Line {
	dir := l.B.Sub(l.A)
	return Line{A: l.A.Add(dir.Scale(start)), B: l.A.Add(dir.Scale(end))}
}

// Time returns the time parameter reached after travelling distance
// along the line from its start.
func (l Line) Time(distance float32) Time {
	length := l.B.Sub(l.A).Length()
	if distance > length {
		return Time{Distance: length, Time: 1}
	}
	return Time{Distance: distance, Time: distance / length}
}

// Reverse returns the line with its direction reversed.
func (l Line) Reverse() Line { return Line{A: l.B, B: l.A} }

// Curve is a cubic Bezier curve.
type Curve struct {
	A, B, C, D geometry.Point
}

// NewCurve returns a new cubic curve.
func NewCurve(a, b, c, d geometry.Point) Curve { return Curve{A: a, B: b, C: c, D: d} }

// CurveFromQuadratic converts a quadratic Bezier (a, b, c) to the
// equivalent cubic.
func CurveFromQuadratic(a, b, c geometry.Point) Curve {
	return Curve{
		A: a,
		B: geometry.Vec(a.X+2./3.*(b.X-a.X), a.Y+2./3.*(b.Y-a.Y)),
		C: geometry.Vec(c.X+2./3.*(b.X-c.X), c.Y+2./3.*(b.Y-c.Y)),
		D: c,
	}
}

// Length approximates the arc length of the curve via 64-segment chord
// summation.
func (c Curve) Length() float32 {
	var length float32
	prev := c.A
	const steps = 64
	const step = float32(1) / steps
	var t float32
	for i := 0; i < steps; i++ {
		t += step
		next := c.Evaluate(t)
		length += next.Sub(prev).Length()
		prev = next
	}
	return length
}

// Slice returns the portion of the curve between parameters start and
// end, via de Casteljau subdivision.
func (c Curve) Slice(start, end float32) Curve {
	t0, t1 := start, end
	u0, u1 := 1-t0, 1-t1
	v0, v1, v2, v3 := c.A, c.B, c.C, c.D

	p0 := v0.Scale(u0 * u0 * u0).
		Add(v1.Scale(t0*u0*u0 + u0*t0*u0 + u0*u0*t0)).
		Add(v2.Scale(t0*t0*u0 + u0*t0*t0 + t0*u0*t0)).
		Add(v3.Scale(t0 * t0 * t0))
	p1 := v0.Scale(u0 * u0 * u1).
		Add(v1.Scale(t0*u0*u1 + u0*t0*u1 + u0*u0*t1)).
		Add(v2.Scale(t0*t0*u1 + u0*t0*t1 + t0*u0*t1)).
		Add(v3.Scale(t0 * t0 * t1))
	p2 := v0.Scale(u0 * u1 * u1).
		Add(v1.Scale(t0*u1*u1 + u0*t1*u1 + u0*u1*t1)).
		Add(v2.Scale(t0*t1*u1 + u0*t1*t1 + t0*u1*t1)).
		Add(v3.Scale(t0 * t1 * t1))
	p3 := v0.Scale(u1 * u1 * u1).
		Add(v1.Scale(t1*u1*u1 + u1*t1*u1 + u1*u1*t1)).
		Add(v2.Scale(t1*t1*u1 + u1*t1*t1 + t1*u1*t1)).
		Add(v3.Scale(t1 * t1 * t1))

	return Curve{A: p0, B: p1, C: p2, D: p3}
}

// Reverse returns the curve with its direction reversed.
func (c Curve) Reverse() Curve { return Curve{A: c.D, B: c.C, C: c.B, D: c.A} }

// Evaluate returns the point on the curve at parameter t.
func (c Curve) Evaluate(t float32) geometry.Point {
	t0 := 1 - t
	return c.A.Scale(t0 * t0 * t0).
		Add(c.B.Scale(3 * t0 * t0 * t)).
		Add(c.C.Scale(3 * t0 * t * t)).
		Add(c.D.Scale(t * t * t))
}

// IsLine reports whether the curve can be represented as a line within
// tolerance: at least two of its three control-segment pairs must be
// degenerate.
func (c Curve) IsLine(tolerance float32) bool {
	degenAB := c.A.NearlyEqualBy(c.B, tolerance)
	degenBC := c.B.NearlyEqualBy(c.C, tolerance)
	degenCD := c.C.NearlyEqualBy(c.D, tolerance)
	count := 0
	if degenAB {
		count++
	}
	if degenBC {
		count++
	}
	if degenCD {
		count++
	}
	return count >= 2
}

// Time returns the time parameter reached after travelling distance
// along the curve, recursively bisecting while the curve is too curved
// to approximate linearly, up to a depth of 5.
func (c Curve) Time(distance, tolerance float32) Time {
	d, t := c.timeImpl(distance, tolerance, 1, 0)
	return Time{Distance: d, Time: t}
}

func (c Curve) timeImpl(distance, tolerance, t float32, level int) (float32, float32) {
	if level < 5 && c.tooCurvy(tolerance) {
		c0 := c.Slice(0, 0.5)
		dist0, t0 := c0.timeImpl(distance, tolerance, t*0.5, level+1)
		if dist0 < distance {
			c1 := c.Slice(0.5, 1)
			dist1, t1 := c1.timeImpl(distance-dist0, tolerance, t*0.5, level+1)
			return dist0 + dist1, t0 + t1
		}
		return dist0, t0
	}
	dist := c.D.Sub(c.A).Length()
	if dist >= distance {
		s := distance / dist
		return distance, t * s
	}
	return dist, t
}

func (c Curve) tooCurvy(tolerance float32) bool {
	return absf(2*c.D.X-3*c.C.X+c.A.X) > tolerance ||
		absf(2*c.D.Y-3*c.C.Y+c.A.Y) > tolerance ||
		absf(c.D.X-3*c.B.X+2*c.A.X) > tolerance ||
		absf(c.D.Y-3*c.B.Y+2*c.A.Y) > tolerance
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func satf32(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// needsSplit reports whether the normals at the curve's three control
// segments diverge too sharply for a single offset curve to approximate
// well.
func (c Curve) needsSplit() bool {
	if c.B.NearlyEqualBy(c.C, MergeEpsilon) {
		return true
	}
	normalAB := geometry.Normal(c.A, c.B)
	normalBC := geometry.Normal(c.B, c.C)
	tooCurvy := func(n0, n1 geometry.Vector) bool {
		const flatEnough = float32(math.Sqrt2)/2 + 1.0/10
		return n0.Dot(n1) <= flatEnough
	}
	return tooCurvy(normalAB, normalBC) || tooCurvy(normalBC, geometry.Normal(c.C, c.D))
}

// split splits the curve at parameter t.
func (c Curve) split(t float32) (Curve, Curve) {
	return c.Slice(0, t), c.Slice(t, 1)
}

func (c Curve) toSegment(id ID) (Segment, bool) {
	if c.IsLine(MergeEpsilon) {
		if c.A.NearlyEqualBy(c.D, MergeEpsilon) {
			return Segment{}, false
		}
		return Segment{Kind: KindLine, ID: id, Line: NewLine(c.A, c.D)}, true
	}
	return Segment{Kind: KindCurve, ID: id, Curve: c}, true
}

// splitAtMaxCurvature fills splits with up to 4 curves, split at the
// curve's interior max-curvature roots, and returns the number written.
func (c Curve) splitAtMaxCurvature(splits *[4]Curve) int {
	var tmp [3]float32
	count1 := c.maxCurvature(&tmp)
	var ts [4]float32
	count := 0
	for _, t := range tmp[:count1] {
		if t > 0 && t < 1 {
			ts[count] = t
			count++
		}
	}
	if count == 0 {
		splits[0] = c
		return 1
	}
	i := 0
	lastT := float32(0)
	for _, t := range ts[:count] {
		splits[i] = c.Slice(lastT, t)
		i++
		lastT = t
	}
	splits[i] = c.Slice(lastT, 1)
	return count + 1
}

func (c Curve) maxCurvature(ts *[3]float32) int {
	compsX := [4]float32{c.A.X, c.B.X, c.C.X, c.D.X}
	compsY := [4]float32{c.A.Y, c.B.Y, c.C.Y, c.D.Y}
	getCoeffs := func(src [4]float32) [4]float32 {
		a := src[1] - src[0]
		b := src[2] - 2*src[1] + src[0]
		cc := src[3] + 3*(src[1]-src[2]) - src[0]
		return [4]float32{cc * cc, 3 * b * cc, 2*b*b + cc*a, a * b}
	}
	coeffs := getCoeffs(compsX)
	coeffsY := getCoeffs(compsY)
	for i := range coeffs {
		coeffs[i] += coeffsY[i]
	}
	return solveCubic(coeffs, ts)
}

func solveCubic(coeff [4]float32, ts *[3]float32) int {
	const pi = math.Pi
	i := 1 / coeff[0]
	a := coeff[1] * i
	b := coeff[2] * i
	cc := coeff[3] * i
	q := (a*a - b*3) / 9
	r := (2*a*a*a - 9*a*b + 27*cc) / 54
	q3 := q * q * q
	r2SubQ3 := r*r - q3
	adiv3 := a / 3
	if r2SubQ3 < 0 {
		theta := float32(math.Acos(float64(satf32(r / float32(math.Sqrt(float64(q3)))))))
		neg2RootQ := -2 * float32(math.Sqrt(float64(q)))
		ts[0] = satf32(neg2RootQ*float32(math.Cos(float64(theta/3))) - adiv3)
		ts[1] = satf32(neg2RootQ*float32(math.Cos(float64((theta+2*pi)/3))) - adiv3)
		ts[2] = satf32(neg2RootQ*float32(math.Cos(float64((theta-2*pi)/3))) - adiv3)
		// Insertion sort for the three roots.
		if ts[0] > ts[1] {
			ts[0], ts[1] = ts[1], ts[0]
		}
		if ts[1] > ts[2] {
			ts[1], ts[2] = ts[2], ts[1]
		}
		if ts[0] > ts[1] {
			ts[0], ts[1] = ts[1], ts[0]
		}
		count := 3
		if ts[0] == ts[1] {
			ts[1] = ts[2]
			count--
		}
		if ts[1] == ts[2] {
			count--
		}
		return count
	}
	aa := absf(r) + float32(math.Sqrt(float64(r2SubQ3)))
	aa = float32(math.Pow(float64(aa), 0.3333333))
	if r > 0 {
		aa = -aa
	}
	if aa != 0 {
		aa += q / aa
	}
	ts[0] = satf32(aa - adiv3)
	return 1
}

// ID groups segments produced by splitting a single source curve, so the
// stroker can recognize siblings at join time. It counts from 0 through
// 254 and then wraps to 0.
type ID = byte

// Kind tags the variant of a Segment.
type Kind int

const (
	KindLine Kind = iota
	KindCurve
	KindEnd
)

// Segment is one line, cubic curve, or subpath-end marker in a flattened
// path.
type Segment struct {
	Kind   Kind
	ID     ID
	Line   Line
	Curve  Curve
	Closed bool // valid when Kind == KindEnd
}

// EndSegment returns an End marker segment.
func EndSegment(closed bool) Segment { return Segment{Kind: KindEnd, Closed: closed} }

// Length returns the segment's length, or 0 for an End marker.
func (s Segment) Length() float32 {
	switch s.Kind {
	case KindLine:
		return s.Line.Length()
	case KindCurve:
		return s.Curve.Length()
	default:
		return 0
	}
}

// Slice returns the portion of the segment between parameters start and
// end. End markers are returned unchanged.
func (s Segment) Slice(start, end float32) Segment {
	switch s.Kind {
	case KindLine:
		return Segment{Kind: KindLine, ID: s.ID, Line: s.Line.Slice(start, end)}
	case KindCurve:
		return Segment{Kind: KindCurve, ID: s.ID, Curve: s.Curve.Slice(start, end)}
	default:
		return s
	}
}

// Reverse returns the segment with its direction reversed. End markers
// are returned unchanged.
func (s Segment) Reverse() Segment {
	switch s.Kind {
	case KindLine:
		return Segment{Kind: KindLine, ID: s.ID, Line: s.Line.Reverse()}
	case KindCurve:
		return Segment{Kind: KindCurve, ID: s.ID, Curve: s.Curve.Reverse()}
	default:
		return s
	}
}

// Time returns the time parameter reached after travelling distance
// along the segment.
func (s Segment) Time(distance, tolerance float32) Time {
	switch s.Kind {
	case KindLine:
		return s.Line.Time(distance)
	case KindCurve:
		return s.Curve.Time(distance, tolerance)
	default:
		return Time{}
	}
}

// PointNormal returns the point and unit normal of the segment at
// parameter time. For curves, the normal is sampled at time±0.05 rather
// than evaluated analytically, so that it stays well defined at cusps.
func (s Segment) PointNormal(t float32) (geometry.Point, geometry.Vector) {
	switch s.Kind {
	case KindLine:
		dir := s.Line.B.Sub(s.Line.A)
		p := s.Line.A.Add(dir.Scale(t))
		n := geometry.Normal(s.Line.A, s.Line.B)
		return p, n
	case KindCurve:
		p := s.Curve.Evaluate(t)
		a := s.Curve.Evaluate(t - 0.05)
		b := s.Curve.Evaluate(t + 0.05)
		n := geometry.Normal(a, b)
		return p, n
	default:
		return geometry.Zero, geometry.Zero
	}
}
