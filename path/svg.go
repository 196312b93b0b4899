// Copyright 2026 The zeno Authors
// SPDX-License-Identifier: MIT

package path

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dfrg/zeno/command"
	"github.com/dfrg/zeno/geometry"
)

// SVGError reports the byte offset of the first syntactically invalid
// character in a string of SVG path data.
type SVGError struct {
	Pos int
}

func (e *SVGError) Error() string {
	return fmt.Sprintf("invalid SVG path data at byte %d", e.Pos)
}

// svgArcGen generates the cubic-Bezier segments of an SVG elliptical arc
// one at a time. It is a self-contained copy of the math in Arc/ArcTo,
// restructured as a small state machine so that SvgCommands can interleave
// the emitted curves with the rest of the token stream.
type svgArcGen struct {
	count          int
	cx, cy         float32
	rx, ry         float32
	cosphi, sinphi float32
	ang1, ang2     float32
	a              float32
}

func newSVGArcGen(from geometry.Point, rx, ry, angle float32, size ArcSize, sweep ArcSweep, to geometry.Point) svgArcGen {
	px, py := from.X, from.Y
	sinphi, cosphi := sincos32(angle)

	pxp := cosphi*(px-to.X)/2 + sinphi*(py-to.Y)/2
	pyp := -sinphi*(px-to.X)/2 + cosphi*(py-to.Y)/2
	if pxp == 0 && pyp == 0 {
		return svgArcGen{}
	}

	rx = absf32(rx)
	ry = absf32(ry)
	lambda := pxp*pxp/(rx*rx) + pyp*pyp/(ry*ry)
	if lambda > 1 {
		s := sqrtf32(lambda)
		rx *= s
		ry *= s
	}

	largeArc := size == ArcLarge
	positiveSweep := sweep == ArcPositive

	vecAngle := func(ux, uy, vx, vy float32) float32 {
		sign := float32(1)
		if ux*vy-uy*vx < 0 {
			sign = -1
		}
		dot := ux*vx + uy*vy
		if dot < -1 {
			dot = -1
		} else if dot > 1 {
			dot = 1
		}
		return sign * float32(math.Acos(float64(dot)))
	}

	rxsq, rysq := rx*rx, ry*ry
	pxpsq, pypsq := pxp*pxp, pyp*pyp
	radicant := rxsq*rysq - rxsq*pypsq - rysq*pxpsq
	if radicant < 0 {
		radicant = 0
	}
	radicant /= rxsq*pypsq + rysq*pxpsq
	radicant = sqrtf32(radicant)
	if largeArc == positiveSweep {
		radicant = -radicant
	}
	cxp := radicant * rx / ry * pyp
	cyp := radicant * -ry / rx * pxp
	cx := cosphi*cxp - sinphi*cyp + (px+to.X)/2
	cy := sinphi*cxp + cosphi*cyp + (py+to.Y)/2

	vx1 := (pxp - cxp) / rx
	vy1 := (pyp - cyp) / ry
	vx2 := (-pxp - cxp) / rx
	vy2 := (-pyp - cyp) / ry
	ang1 := vecAngle(1, 0, vx1, vy1)
	ang2 := vecAngle(vx1, vy1, vx2, vy2)
	if !positiveSweep && ang2 > 0 {
		ang2 -= float32(tau)
	}
	if positiveSweep && ang2 < 0 {
		ang2 += float32(tau)
	}

	ratio := absf32(ang2) / (float32(tau) / 4)
	if absf32(1-ratio) < 0.0000001 {
		ratio = 1
	}
	segments := ceilf32(ratio)
	if segments < 1 {
		segments = 1
	}
	ang2 /= segments

	var a float32
	switch {
	case ang2 == math.Pi/2:
		a = ellipseKappa
	case ang2 == -math.Pi/2:
		a = -ellipseKappa
	default:
		a = 4.0 / 3.0 * float32(math.Tan(float64(ang2/4)))
	}

	return svgArcGen{
		count:  int(segments),
		cx:     cx,
		cy:     cy,
		rx:     rx,
		ry:     ry,
		cosphi: cosphi,
		sinphi: sinphi,
		ang1:   ang1,
		ang2:   ang2,
		a:      a,
	}
}

func (g *svgArcGen) next() (command.Command, bool) {
	if g.count == 0 {
		return command.Command{}, false
	}
	g.count--

	y1, x1 := sincos32(g.ang1)
	y2, x2 := sincos32(g.ang1 + g.ang2)
	a := g.a
	cx, cy := g.cx, g.cy
	rx, ry := g.rx, g.ry
	cosphi, sinphi := g.cosphi, g.sinphi

	c1 := geometry.Vec((x1-y1*a)*rx, (y1+x1*a)*ry)
	c1 = geometry.Vec(cx+(cosphi*c1.X-sinphi*c1.Y), cy+(sinphi*c1.X+cosphi*c1.Y))

	c2 := geometry.Vec((x2+y2*a)*rx, (y2-x2*a)*ry)
	c2 = geometry.Vec(cx+(cosphi*c2.X-sinphi*c2.Y), cy+(sinphi*c2.X+cosphi*c2.Y))

	p := geometry.Vec(x2*rx, y2*ry)
	p = geometry.Vec(cx+(cosphi*p.X-sinphi*p.Y), cy+(sinphi*p.X+cosphi*p.Y))

	g.ang1 += g.ang2
	return command.CurveTo(c1, c2, p), true
}

type svgState int

const (
	svgInitial svgState = iota
	svgNext
	svgContinue
)

// SvgCommands is a command.Source that lazily parses a string of SVG path
// data ("M10 10L20 20..."), one command at a time. Implicit repetition of
// the last command letter, the S/T reflected-control-point rule, and
// elliptical arcs (flattened into cubic segments via an internal
// generator) are all handled as the original SVG path grammar specifies.
type SvgCommands struct {
	buf []byte
	cur byte
	pos int
	cmdPos int

	Error bool
	Done  bool

	startPoint, curPoint, lastControl geometry.Point
	lastCmd                           byte
	state                             svgState
	contCmd                           byte
	arc                               svgArcGen
}

// NewSvgCommands returns a command.Source parsing the SVG path data
// string source.
func NewSvgCommands(source string) *SvgCommands {
	return &SvgCommands{buf: []byte(source)}
}

// Clone returns an independent copy of c, positioned identically.
func (c *SvgCommands) Clone() command.Source {
	clone := *c
	return &clone
}

// Next parses and returns the next command, or ok == false once the
// input is exhausted or a syntax error is found; check Error afterwards
// to distinguish the two.
func (c *SvgCommands) Next() (command.Command, bool) {
	return c.parse()
}

func (c *SvgCommands) parse() (command.Command, bool) {
	cmd := c.cur
	for {
		if cc, ok := c.arc.next(); ok {
			return cc, true
		}
		switch c.state {
		case svgInitial:
			c.advance()
			c.skipWhitespace()
			c.state = svgNext
			continue
		case svgNext:
			c.skipWhitespace()
			c.cmdPos = c.pos
			cmd = c.cur
			c.advance()
			c.skipWhitespace()
			c.state = svgContinue
			c.lastCmd = c.contCmd
			c.contCmd = cmd
			return c.dispatchNext(cmd)
		case svgContinue:
			c.lastCmd = c.contCmd
			res, ok, fallThrough := c.dispatchContinue(c.contCmd)
			if fallThrough {
				c.state = svgNext
				continue
			}
			return res, ok
		}
	}
}

// dispatchNext handles the first occurrence of a command letter.
func (c *SvgCommands) dispatchNext(cmd byte) (command.Command, bool) {
	switch cmd {
	case 'z', 'Z':
		c.state = svgNext
		c.curPoint = c.startPoint
		return command.Close(), true
	case 'M':
		to, ok := c.pointTo()
		if !ok {
			return command.Command{}, false
		}
		c.startPoint = to
		c.skipCommaWhitespace()
		return command.MoveTo(to), true
	case 'm':
		to, ok := c.relPointTo()
		if !ok {
			return command.Command{}, false
		}
		c.startPoint = to
		c.skipCommaWhitespace()
		return command.MoveTo(to), true
	case 'L':
		to, ok := c.pointTo()
		if !ok {
			return command.Command{}, false
		}
		c.skipCommaWhitespace()
		return command.LineTo(to), true
	case 'l':
		to, ok := c.relPointTo()
		if !ok {
			return command.Command{}, false
		}
		c.skipCommaWhitespace()
		return command.LineTo(to), true
	case 'H':
		x, ok := c.coord()
		if !ok {
			return command.Command{}, false
		}
		to := geometry.Vec(x, c.curPoint.Y)
		c.curPoint = to
		c.skipCommaWhitespace()
		return command.LineTo(to), true
	case 'h':
		x, ok := c.coord()
		if !ok {
			return command.Command{}, false
		}
		to := geometry.Vec(c.curPoint.X+x, c.curPoint.Y)
		c.curPoint = to
		c.skipCommaWhitespace()
		return command.LineTo(to), true
	case 'V':
		y, ok := c.coord()
		if !ok {
			return command.Command{}, false
		}
		to := geometry.Vec(c.curPoint.X, y)
		c.curPoint = to
		c.skipCommaWhitespace()
		return command.LineTo(to), true
	case 'v':
		y, ok := c.coord()
		if !ok {
			return command.Command{}, false
		}
		to := geometry.Vec(c.curPoint.X, c.curPoint.Y+y)
		c.curPoint = to
		c.skipCommaWhitespace()
		return command.LineTo(to), true
	case 'C':
		a, b, p, ok := c.threePointsTo()
		if !ok {
			return command.Command{}, false
		}
		c.lastControl = b
		c.skipCommaWhitespace()
		return command.CurveTo(a, b, p), true
	case 'c':
		a, b, p, ok := c.relThreePointsTo()
		if !ok {
			return command.Command{}, false
		}
		c.lastControl = b
		c.skipCommaWhitespace()
		return command.CurveTo(a, b, p), true
	case 'S':
		c2, to, ok := c.twoPoints()
		if !ok {
			return command.Command{}, false
		}
		c1 := c.reflectedControl(cmd)
		c.curPoint = to
		c.lastControl = c2
		c.skipCommaWhitespace()
		return command.CurveTo(c1, c2, to), true
	case 's':
		c2, to, ok := c.relTwoPoints()
		if !ok {
			return command.Command{}, false
		}
		c1 := c.reflectedControl(cmd)
		c.curPoint = to
		c.lastControl = c2
		c.skipCommaWhitespace()
		return command.CurveTo(c1, c2, to), true
	case 'Q':
		ctrl, to, ok := c.twoPointsTo()
		if !ok {
			return command.Command{}, false
		}
		c.lastControl = ctrl
		c.skipCommaWhitespace()
		return command.QuadTo(ctrl, to), true
	case 'q':
		ctrl, to, ok := c.relTwoPointsTo()
		if !ok {
			return command.Command{}, false
		}
		c.lastControl = ctrl
		c.skipCommaWhitespace()
		return command.QuadTo(ctrl, to), true
	case 'T':
		to, ok := c.point()
		if !ok {
			return command.Command{}, false
		}
		ctrl := c.reflectedControl(cmd)
		c.curPoint = to
		c.lastControl = ctrl
		c.skipCommaWhitespace()
		return command.QuadTo(ctrl, to), true
	case 't':
		to, ok := c.relPoint()
		if !ok {
			return command.Command{}, false
		}
		ctrl := c.reflectedControl(cmd)
		c.curPoint = to
		c.lastControl = ctrl
		c.skipCommaWhitespace()
		return command.QuadTo(ctrl, to), true
	case 'A':
		from := c.curPoint
		rx, ry, ang, size, sweep, to, ok := c.arcArguments(false)
		if !ok {
			return command.Command{}, false
		}
		c.arc = newSVGArcGen(from, rx, ry, ang*math.Pi/180, size, sweep, to)
		c.curPoint = to
		c.skipCommaWhitespace()
		return c.parse()
	case 'a':
		from := c.curPoint
		rx, ry, ang, size, sweep, to, ok := c.arcArguments(true)
		if !ok {
			return command.Command{}, false
		}
		c.arc = newSVGArcGen(from, rx, ry, ang*math.Pi/180, size, sweep, to)
		c.curPoint = to
		c.skipCommaWhitespace()
		return c.parse()
	default:
		if !c.Done || cmd != 0 {
			c.Error = true
			c.pos = c.cmdPos
		}
		return command.Command{}, false
	}
}

// dispatchContinue handles implicit repetition of the previous command
// letter. The third return value is true when no further argument set
// was found and the caller should fall back to treating the next token
// as a fresh command letter.
func (c *SvgCommands) dispatchContinue(cmd byte) (command.Command, bool, bool) {
	switch cmd {
	case 'M':
		if to, ok := c.pointTo(); ok {
			c.skipCommaWhitespace()
			return command.LineTo(to), true, false
		}
		return command.Command{}, false, true
	case 'm':
		if to, ok := c.relPointTo(); ok {
			c.skipCommaWhitespace()
			return command.LineTo(to), true, false
		}
		return command.Command{}, false, true
	case 'L':
		if to, ok := c.pointTo(); ok {
			c.skipCommaWhitespace()
			return command.LineTo(to), true, false
		}
		return command.Command{}, false, true
	case 'l':
		if to, ok := c.relPointTo(); ok {
			c.skipCommaWhitespace()
			return command.LineTo(to), true, false
		}
		return command.Command{}, false, true
	case 'H':
		if x, ok := c.coord(); ok {
			to := geometry.Vec(x, c.curPoint.Y)
			c.curPoint = to
			c.skipCommaWhitespace()
			return command.LineTo(to), true, false
		}
		return command.Command{}, false, true
	case 'h':
		if x, ok := c.coord(); ok {
			to := geometry.Vec(c.curPoint.X+x, c.curPoint.Y)
			c.curPoint = to
			c.skipCommaWhitespace()
			return command.LineTo(to), true, false
		}
		return command.Command{}, false, true
	case 'V':
		if y, ok := c.coord(); ok {
			to := geometry.Vec(c.curPoint.X, y)
			c.curPoint = to
			c.skipCommaWhitespace()
			return command.LineTo(to), true, false
		}
		return command.Command{}, false, true
	case 'v':
		if y, ok := c.coord(); ok {
			to := geometry.Vec(c.curPoint.X, c.curPoint.Y+y)
			c.curPoint = to
			c.skipCommaWhitespace()
			return command.LineTo(to), true, false
		}
		return command.Command{}, false, true
	case 'C':
		if a, ok := c.point(); ok {
			c.skipCommaWhitespace()
			b, to, ok := c.twoPointsTo()
			if !ok {
				return command.Command{}, false, false
			}
			c.lastControl = b
			c.skipCommaWhitespace()
			return command.CurveTo(a, b, to), true, false
		}
		return command.Command{}, false, true
	case 'c':
		if a, ok := c.relPoint(); ok {
			c.skipCommaWhitespace()
			b, to, ok := c.relTwoPointsTo()
			if !ok {
				return command.Command{}, false, false
			}
			c.lastControl = b
			c.skipCommaWhitespace()
			return command.CurveTo(a, b, to), true, false
		}
		return command.Command{}, false, true
	case 'S':
		if c2, ok := c.point(); ok {
			c.skipCommaWhitespace()
			to, ok := c.point()
			if !ok {
				return command.Command{}, false, false
			}
			c1 := c.reflectedControl(cmd)
			c.curPoint = to
			c.lastControl = c2
			c.skipCommaWhitespace()
			return command.CurveTo(c1, c2, to), true, false
		}
		return command.Command{}, false, true
	case 's':
		if c2, ok := c.relPoint(); ok {
			c.skipCommaWhitespace()
			to, ok := c.relPoint()
			if !ok {
				return command.Command{}, false, false
			}
			c1 := c.reflectedControl(cmd)
			c.curPoint = to
			c.lastControl = c2
			c.skipCommaWhitespace()
			return command.CurveTo(c1, c2, to), true, false
		}
		return command.Command{}, false, true
	case 'Q':
		if ctrl, ok := c.point(); ok {
			c.lastControl = ctrl
			c.skipCommaWhitespace()
			to, ok := c.pointTo()
			if !ok {
				return command.Command{}, false, false
			}
			c.skipCommaWhitespace()
			return command.QuadTo(ctrl, to), true, false
		}
		return command.Command{}, false, true
	case 'q':
		if ctrl, ok := c.relPoint(); ok {
			c.lastControl = ctrl
			c.skipCommaWhitespace()
			to, ok := c.relPointTo()
			if !ok {
				return command.Command{}, false, false
			}
			c.skipCommaWhitespace()
			return command.QuadTo(ctrl, to), true, false
		}
		return command.Command{}, false, true
	case 'T':
		if to, ok := c.point(); ok {
			ctrl := c.reflectedControl(cmd)
			c.curPoint = to
			c.lastControl = ctrl
			c.skipCommaWhitespace()
			return command.QuadTo(ctrl, to), true, false
		}
		return command.Command{}, false, true
	case 't':
		if to, ok := c.relPoint(); ok {
			ctrl := c.reflectedControl(cmd)
			c.curPoint = to
			c.lastControl = ctrl
			c.skipCommaWhitespace()
			return command.QuadTo(ctrl, to), true, false
		}
		return command.Command{}, false, true
	case 'A':
		if rx, ok := c.coord(); ok {
			from := c.curPoint
			ry, ang, size, sweep, to, ok := c.arcRestArguments(false)
			if !ok {
				return command.Command{}, false, false
			}
			c.arc = newSVGArcGen(from, rx, ry, ang*math.Pi/180, size, sweep, to)
			c.curPoint = to
			c.skipCommaWhitespace()
			res, ok := c.parse()
			return res, ok, false
		}
		return command.Command{}, false, true
	case 'a':
		if rx, ok := c.coord(); ok {
			from := c.curPoint
			ry, ang, size, sweep, to, ok := c.arcRestArguments(true)
			if !ok {
				return command.Command{}, false, false
			}
			c.arc = newSVGArcGen(from, rx, ry, ang*math.Pi/180, size, sweep, to)
			c.curPoint = to
			c.skipCommaWhitespace()
			res, ok := c.parse()
			return res, ok, false
		}
		return command.Command{}, false, true
	default:
		if !c.Done || cmd != 0 {
			c.Error = true
			c.pos = c.cmdPos
		}
		return command.Command{}, false, false
	}
}

func (c *SvgCommands) reflectedControl(cmd byte) geometry.Point {
	cur := c.curPoint
	old := c.lastControl
	if cmd == 'S' || cmd == 's' {
		switch c.lastCmd {
		case 'C', 'c', 'S', 's':
			return geometry.Vec(2*cur.X-old.X, 2*cur.Y-old.Y)
		default:
			return c.curPoint
		}
	}
	switch c.lastCmd {
	case 'Q', 'q', 'T', 't':
		return geometry.Vec(2*cur.X-old.X, 2*cur.Y-old.Y)
	default:
		return c.curPoint
	}
}

func (c *SvgCommands) arcArguments(rel bool) (rx, ry, angle float32, size ArcSize, sweep ArcSweep, to geometry.Point, ok bool) {
	rx, ok = c.coord()
	if !ok {
		return
	}
	c.skipCommaWhitespace()
	ry, ok = c.coord()
	if !ok {
		return
	}
	c.skipCommaWhitespace()
	angle, ok = c.coord()
	if !ok {
		return
	}
	c.skipCommaWhitespace()
	largeArc, ok := c.boolean()
	if !ok {
		return
	}
	c.skipCommaWhitespace()
	sweepFlag, ok := c.boolean()
	if !ok {
		return
	}
	c.skipCommaWhitespace()
	if rel {
		to, ok = c.relPointTo()
	} else {
		to, ok = c.pointTo()
	}
	if !ok {
		return
	}
	if largeArc {
		size = ArcLarge
	} else {
		size = ArcSmall
	}
	if sweepFlag {
		sweep = ArcPositive
	} else {
		sweep = ArcNegative
	}
	return rx, ry, angle, size, sweep, to, true
}

func (c *SvgCommands) arcRestArguments(rel bool) (ry, angle float32, size ArcSize, sweep ArcSweep, to geometry.Point, ok bool) {
	ry, ok = c.coord()
	if !ok {
		return
	}
	c.skipCommaWhitespace()
	angle, ok = c.coord()
	if !ok {
		return
	}
	c.skipCommaWhitespace()
	largeArc, ok := c.boolean()
	if !ok {
		return
	}
	c.skipCommaWhitespace()
	sweepFlag, ok := c.boolean()
	if !ok {
		return
	}
	c.skipCommaWhitespace()
	if rel {
		to, ok = c.relPointTo()
	} else {
		to, ok = c.pointTo()
	}
	if !ok {
		return
	}
	if largeArc {
		size = ArcLarge
	} else {
		size = ArcSmall
	}
	if sweepFlag {
		sweep = ArcPositive
	} else {
		sweep = ArcNegative
	}
	return ry, angle, size, sweep, to, true
}

func (c *SvgCommands) point() (geometry.Point, bool) {
	a, ok := c.coord()
	if !ok {
		return geometry.Zero, false
	}
	c.skipCommaWhitespace()
	b, ok := c.coord()
	if !ok {
		return geometry.Zero, false
	}
	return geometry.Vec(a, b), true
}

func (c *SvgCommands) pointTo() (geometry.Point, bool) {
	p, ok := c.point()
	if !ok {
		return geometry.Zero, false
	}
	c.curPoint = p
	return p, true
}

func (c *SvgCommands) relPoint() (geometry.Point, bool) {
	p, ok := c.point()
	if !ok {
		return geometry.Zero, false
	}
	return p.Add(c.curPoint), true
}

func (c *SvgCommands) relPointTo() (geometry.Point, bool) {
	p, ok := c.relPoint()
	if !ok {
		return geometry.Zero, false
	}
	c.curPoint = p
	return p, true
}

func (c *SvgCommands) twoPointsTo() (a, b geometry.Point, ok bool) {
	a, ok = c.point()
	if !ok {
		return
	}
	c.skipCommaWhitespace()
	b, ok = c.pointTo()
	return
}

func (c *SvgCommands) twoPoints() (a, b geometry.Point, ok bool) {
	a, ok = c.point()
	if !ok {
		return
	}
	c.skipCommaWhitespace()
	b, ok = c.point()
	return
}

func (c *SvgCommands) relTwoPointsTo() (a, b geometry.Point, ok bool) {
	a, ok = c.relPoint()
	if !ok {
		return
	}
	c.skipCommaWhitespace()
	b, ok = c.relPointTo()
	return
}

func (c *SvgCommands) relTwoPoints() (a, b geometry.Point, ok bool) {
	a, ok = c.relPoint()
	if !ok {
		return
	}
	c.skipCommaWhitespace()
	b, ok = c.relPoint()
	return
}

func (c *SvgCommands) threePointsTo() (a, b, p geometry.Point, ok bool) {
	a, ok = c.point()
	if !ok {
		return
	}
	c.skipCommaWhitespace()
	b, ok = c.point()
	if !ok {
		return
	}
	c.skipCommaWhitespace()
	p, ok = c.pointTo()
	return
}

func (c *SvgCommands) relThreePointsTo() (a, b, p geometry.Point, ok bool) {
	a, ok = c.relPoint()
	if !ok {
		return
	}
	c.skipCommaWhitespace()
	b, ok = c.relPoint()
	if !ok {
		return
	}
	c.skipCommaWhitespace()
	p, ok = c.relPointTo()
	return
}

func (c *SvgCommands) coord() (float32, bool) {
	switch c.cur {
	case '+':
		c.advance()
		return c.number()
	case '-':
		c.advance()
		n, ok := c.number()
		return -n, ok
	default:
		return c.number()
	}
}

func (c *SvgCommands) number() (float32, bool) {
	var buf [32]byte
	pos := 0
	hasDecimal := false
loop:
	for {
		switch {
		case c.cur == '.':
			if hasDecimal || pos >= len(buf) {
				break loop
			}
			buf[pos] = c.cur
			pos++
			hasDecimal = true
		case c.cur >= '0' && c.cur <= '9':
			if pos >= len(buf) {
				break loop
			}
			buf[pos] = c.cur
			pos++
		default:
			break loop
		}
		c.advance()
	}
	if pos == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(string(buf[:pos]), 32)
	if err != nil {
		return 0, false
	}
	return float32(v), true
}

func (c *SvgCommands) boolean() (bool, bool) {
	switch c.cur {
	case '0':
		c.advance()
		return false, true
	case '1':
		c.advance()
		return true, true
	default:
		return false, false
	}
}

func (c *SvgCommands) skipCommaWhitespace() {
	c.skipWhitespace()
	if c.accept(',') {
		c.skipWhitespace()
	}
}

func (c *SvgCommands) skipWhitespace() {
	for c.acceptBy(func(b byte) bool {
		switch b {
		case 0x9, 0x20, 0xA, 0xC, 0xD:
			return true
		}
		return false
	}) {
	}
}

func (c *SvgCommands) accept(b byte) bool {
	if c.cur == b {
		c.advance()
		return true
	}
	return false
}

func (c *SvgCommands) acceptBy(f func(byte) bool) bool {
	if f(c.cur) {
		c.advance()
		return true
	}
	return false
}

func (c *SvgCommands) advance() {
	if c.pos == len(c.buf) {
		c.Done = true
		c.cur = 0
		return
	}
	c.cur = c.buf[c.pos]
	c.pos++
}

// ParseSVG validates svg as SVG path data and returns it as Data. On
// failure, the returned error is an *SVGError identifying the first
// invalid byte offset.
func ParseSVG(svg string) (Data, error) {
	if err := ValidateSVG(svg); err != nil {
		return nil, err
	}
	return SVGData(svg), nil
}

// ValidateSVG reports whether svg is syntactically valid SVG path data. On
// failure, the returned error is an *SVGError identifying the first
// invalid byte offset.
func ValidateSVG(svg string) error {
	cmds := NewSvgCommands(svg)
	for {
		if _, ok := cmds.Next(); !ok {
			break
		}
	}
	pos := cmds.pos
	if cmds.Error || pos != len(svg) {
		if pos > 0 {
			pos--
		}
		return &SVGError{Pos: pos}
	}
	return nil
}
