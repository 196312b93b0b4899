// Copyright 2026 The zeno Authors
// SPDX-License-Identifier: MIT

package segment

import (
	"github.com/dfrg/zeno/command"
	"github.com/dfrg/zeno/geometry"
)

// Segments lazily flattens a command stream into Segment values. When
// Split is requested, curves are additionally broken at their
// max-curvature points and recursively halved while any piece's offset
// normals diverge too sharply, so that piecewise stroke-offsetting stays
// accurate. At most 16 fragments are buffered per source curve.
type Segments struct {
	commands command.Source
	split    bool

	start, prev geometry.Vector
	closePend   bool

	splits     [16]Curve
	splitCount int
	splitIndex int

	lastWasEnd bool
	id         byte
	count      uint32
}

// NewSegments returns a Segments iterator over commands. When split is
// true, curves are simplified and max-curvature split as described in
// the package doc.
func NewSegments(commands command.Source, split bool) *Segments {
	return &Segments{
		commands:   commands,
		split:      split,
		lastWasEnd: true,
	}
}

// Clone returns an independent copy of s, positioned identically, that
// can be advanced without affecting s.
func (s *Segments) Clone() *Segments {
	clone := *s
	clone.commands = s.commands.Clone()
	return &clone
}

func (s *Segments) incID() {
	if s.id == 254 {
		s.id = 0
	} else {
		s.id++
	}
}

// splitCurve simplifies and max-curvature-splits c, buffering the
// resulting pieces (after index 0) in s.splits, and returns the first
// piece as a Segment, if it isn't degenerate.
func (s *Segments) splitCurve(id ID, c Curve) (Segment, bool) {
	if c.IsLine(MergeEpsilon) {
		if c.A.NearlyEqualBy(c.D, MergeEpsilon) {
			return Segment{}, false
		}
		return Segment{Kind: KindLine, ID: id, Line: NewLine(c.A, c.D)}, true
	}

	var coarse [4]Curve
	count := c.splitAtMaxCurvature(&coarse)

	i := 0
	for j := 0; j < count; j++ {
		curve := coarse[j]
		if curve.needsSplit() {
			a, b := curve.split(0.5)
			if a.needsSplit() {
				c0, c1 := a.split(0.5)
				s.splits[i] = c0
				s.splits[i+1] = c1
				i += 2
			} else {
				s.splits[i] = a
				i++
			}
			if b.needsSplit() {
				c0, c1 := b.split(0.5)
				s.splits[i] = c0
				s.splits[i+1] = c1
				i += 2
			} else {
				s.splits[i] = b
				i++
			}
		} else {
			s.splits[i] = curve
			i++
		}
	}
	s.splitCount = i
	s.splitIndex = 1
	return s.splits[0].toSegment(id)
}

// Next returns the next segment in the flattened stream, or ok == false
// when the underlying command stream is exhausted.
func (s *Segments) Next() (Segment, bool) {
	if s.closePend {
		s.closePend = false
		s.lastWasEnd = true
		return EndSegment(true), true
	}
	if s.split {
		return s.nextSplit()
	}
	return s.nextPlain()
}

func (s *Segments) nextSplit() (Segment, bool) {
	for {
		if s.splitIndex < s.splitCount {
			curve := s.splits[s.splitIndex]
			s.splitIndex++
			if seg, ok := curve.toSegment(s.id); ok {
				s.count++
				s.lastWasEnd = false
				s.prev = curve.D
				return seg, true
			}
			continue
		}
		s.incID()
		id := s.id
		from := s.prev
		cmd, ok := s.commands.Next()
		if !ok {
			return Segment{}, false
		}
		switch cmd.Verb {
		case command.VerbMoveTo:
			to := cmd.P1
			s.start = to
			s.prev = to
			s.count = 0
			if !s.lastWasEnd {
				s.lastWasEnd = true
				return EndSegment(false), true
			}
		case command.VerbLineTo:
			to := cmd.P1
			if !from.NearlyEqualBy(to, MergeEpsilon) {
				s.count++
				s.prev = to
				s.lastWasEnd = false
				return Segment{Kind: KindLine, ID: id, Line: NewLine(from, to)}, true
			}
		case command.VerbCurveTo:
			if seg, ok := s.splitCurve(id, NewCurve(from, cmd.P1, cmd.P2, cmd.P3)); ok {
				s.count++
				s.prev = cmd.P3
				s.lastWasEnd = false
				return seg, true
			}
		case command.VerbQuadTo:
			if seg, ok := s.splitCurve(id, CurveFromQuadratic(from, cmd.P1, cmd.P2)); ok {
				s.count++
				s.prev = cmd.P2
				s.lastWasEnd = false
				return seg, true
			}
		case command.VerbClose:
			s.prev = s.start
			if s.count == 0 || !from.NearlyEqualBy(s.start, MergeEpsilon) {
				s.closePend = true
				return Segment{Kind: KindLine, ID: id, Line: NewLine(from, s.start)}, true
			}
			s.count = 0
			s.lastWasEnd = true
			return EndSegment(true), true
		}
	}
}

func (s *Segments) nextPlain() (Segment, bool) {
	id := s.id
	s.incID()
	for {
		from := s.prev
		cmd, ok := s.commands.Next()
		if !ok {
			return Segment{}, false
		}
		switch cmd.Verb {
		case command.VerbMoveTo:
			to := cmd.P1
			s.start = to
			s.prev = to
			s.count = 0
			if !s.lastWasEnd {
				s.lastWasEnd = true
				return EndSegment(false), true
			}
		case command.VerbLineTo:
			to := cmd.P1
			if !from.NearlyEqualBy(to, MergeEpsilon) {
				s.count++
				s.prev = to
				s.lastWasEnd = false
				return Segment{Kind: KindLine, ID: id, Line: NewLine(from, to)}, true
			}
		case command.VerbCurveTo:
			seg := Segment{Kind: KindCurve, ID: id, Curve: NewCurve(from, cmd.P1, cmd.P2, cmd.P3)}
			s.count++
			s.prev = cmd.P3
			s.lastWasEnd = false
			return seg, true
		case command.VerbQuadTo:
			seg := Segment{Kind: KindCurve, ID: id, Curve: CurveFromQuadratic(from, cmd.P1, cmd.P2)}
			s.count++
			s.prev = cmd.P2
			s.lastWasEnd = false
			return seg, true
		case command.VerbClose:
			s.prev = s.start
			if s.count == 0 || !from.NearlyEqualBy(s.start, MergeEpsilon) {
				s.closePend = true
				return Segment{Kind: KindLine, ID: id, Line: NewLine(from, s.start)}, true
			}
			s.count = 0
			s.lastWasEnd = true
			return EndSegment(true), true
		}
	}
}
