// Copyright 2026 The zeno Authors
// SPDX-License-Identifier: MIT

package path

import (
	"math"

	"github.com/dfrg/zeno/geometry"
)

// ArcSize selects whether the larger or smaller of the two arcs spanning
// the endpoint-parameterized ellipse is drawn.
type ArcSize int

const (
	// ArcSmall draws an arc of 180 degrees or less.
	ArcSmall ArcSize = iota
	// ArcLarge draws an arc of 180 degrees or more.
	ArcLarge
)

// ArcSweep selects the direction of an arc.
type ArcSweep int

const (
	// ArcPositive sweeps the arc in the positive angle direction.
	ArcPositive ArcSweep = iota
	// ArcNegative sweeps the arc in the negative angle direction.
	ArcNegative
)

// tau is always the correct full-circle constant; unlike some prior
// implementations of this conversion, there is only one arc-angle
// constant used throughout, so there is no risk of it drifting out of
// sync with math.Pi.
const tau = 2 * math.Pi

// ArcTo appends a cubic-Bezier approximation of an SVG-style elliptical
// arc from the builder's current point to to, with the given radii,
// x-axis rotation angle (radians), size and sweep flags, to b.
func ArcTo(b Builder, rx, ry, angle float32, size ArcSize, sweep ArcSweep, to geometry.Point) {
	from := b.CurrentPoint()
	Arc(b, from, rx, ry, angle, size, sweep, to)
}

// Arc appends a cubic-Bezier approximation of an SVG-style elliptical
// arc from "from" to "to" to b, without relying on b's current point.
func Arc(b Builder, from geometry.Point, rx, ry, angle float32, size ArcSize, sweep ArcSweep, to geometry.Point) {
	px, py := from.X, from.Y
	sinphi64, cosphi64 := math.Sincos(float64(angle))
	sinphi, cosphi := float32(sinphi64), float32(cosphi64)

	pxp := cosphi*(px-to.X)/2 + sinphi*(py-to.Y)/2
	pyp := -sinphi*(px-to.X)/2 + cosphi*(py-to.Y)/2
	if pxp == 0 && pyp == 0 {
		return
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

	n := int(segments)
	for i := 0; i < n; i++ {
		y1, x1 := sincos32(ang1)
		y2, x2 := sincos32(ang1 + ang2)

		c1 := geometry.Vec((x1-y1*a)*rx, (y1+x1*a)*ry)
		c1 = geometry.Vec(cx+(cosphi*c1.X-sinphi*c1.Y), cy+(sinphi*c1.X+cosphi*c1.Y))

		c2 := geometry.Vec((x2+y2*a)*rx, (y2-x2*a)*ry)
		c2 = geometry.Vec(cx+(cosphi*c2.X-sinphi*c2.Y), cy+(sinphi*c2.X+cosphi*c2.Y))

		p := geometry.Vec(x2*rx, y2*ry)
		p = geometry.Vec(cx+(cosphi*p.X-sinphi*p.Y), cy+(sinphi*p.X+cosphi*p.Y))

		b.CurveTo(c1, c2, p)
		ang1 += ang2
	}
}

func absf32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func sqrtf32(x float32) float32 { return float32(math.Sqrt(float64(x))) }

func ceilf32(x float32) float32 { return float32(math.Ceil(float64(x))) }

func sincos32(x float32) (sin, cos float32) {
	s, c := math.Sincos(float64(x))
	return float32(s), float32(c)
}
