// seehuhn.de/go/gauge - analog gauge rendering
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package measure computes arc lengths, positions and tangent directions
// along a path.
//
// Curves are flattened into short pieces for the length computation, but
// positions and tangents are evaluated on the original curve, at the curve
// parameter interpolated within the piece.
package measure

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Measure holds the arc-length parameterisation of the first contour
// of a path. A Measure is immutable once created.
type Measure struct {
	curves []curve
	segs   []segment
	length float64
}

// curve is a single path element. p[0] is the start point, the remaining
// points are the arguments of the path command.
type curve struct {
	cmd path.Command // CmdLineTo, CmdQuadTo or CmdCubeTo
	p   [4]vec.Vec2
}

// segment is one flattened piece of a curve.
type segment struct {
	dist  float64 // arc length from the start of the contour to the end of the piece
	t     float64 // curve parameter at the end of the piece
	curve int     // index into curves
}

const (
	// flatness is the maximal distance between a curve and its
	// flattened approximation, in user-space units.
	flatness = 0.01

	// zeroLengthThreshold is the minimum length for a flattened piece.
	// Shorter pieces are merged into the following one.
	zeroLengthThreshold = 1e-10
)

// New measures the first contour of p.
// A contour ends at a ClosePath command or just before the second MoveTo
// command which follows drawing commands.
func New(p *path.Data) *Measure {
	m := &Measure{}
	if p == nil {
		return m
	}

	var current vec.Vec2 // current point
	var start vec.Vec2   // contour start

	coordIdx := 0
loop:
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if len(m.curves) > 0 {
				break loop
			}
			current = p.Coords[coordIdx]
			start = current
			coordIdx++

		case path.CmdLineTo:
			next := p.Coords[coordIdx]
			m.addCurve(curve{cmd: cmd, p: [4]vec.Vec2{current, next}})
			current = next
			coordIdx++

		case path.CmdQuadTo:
			next := p.Coords[coordIdx+1]
			m.addCurve(curve{cmd: cmd, p: [4]vec.Vec2{current, p.Coords[coordIdx], next}})
			current = next
			coordIdx += 2

		case path.CmdCubeTo:
			next := p.Coords[coordIdx+2]
			m.addCurve(curve{cmd: cmd, p: [4]vec.Vec2{current, p.Coords[coordIdx], p.Coords[coordIdx+1], next}})
			current = next
			coordIdx += 3

		case path.CmdClose:
			if current != start {
				m.addCurve(curve{cmd: path.CmdLineTo, p: [4]vec.Vec2{current, start}})
			}
			break loop
		}
	}
	return m
}

// addCurve appends a curve and its flattened pieces.
// The number of pieces is chosen using Wang's formula.
func (m *Measure) addCurve(c curve) {
	idx := len(m.curves)
	m.curves = append(m.curves, c)

	n := 1
	switch c.cmd {
	case path.CmdQuadTo:
		// e = (P0 - 2*P1 + P2) / 4
		e := c.p[0].Sub(c.p[1].Mul(2)).Add(c.p[2]).Mul(0.25)
		if l := e.Length(); l > flatness {
			n = int(math.Ceil(math.Sqrt(l / flatness)))
		}
	case path.CmdCubeTo:
		d1 := c.p[0].Sub(c.p[1].Mul(2)).Add(c.p[2]) // P0 - 2*P1 + P2
		d2 := c.p[1].Sub(c.p[2].Mul(2)).Add(c.p[3]) // P1 - 2*P2 + P3
		if mDev := max(d1.Length(), d2.Length()); mDev > 0 {
			// n = ceil(sqrt(3 * mDev / (4 * ε)))
			if nFloat := math.Sqrt(3 * mDev / (4 * flatness)); nFloat > 1 {
				n = int(math.Ceil(nFloat))
			}
		}
	}

	prev := c.p[0]
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		pt := c.point(t)
		l := pt.Sub(prev).Length()
		if l < zeroLengthThreshold {
			continue
		}
		m.length += l
		m.segs = append(m.segs, segment{dist: m.length, t: t, curve: idx})
		prev = pt
	}
}

// Length returns the total arc length of the contour.
func (m *Measure) Length() float64 {
	return m.length
}

// PosTan returns the position and the unit tangent at arc-length distance d
// from the start of the contour. Distances outside [0, Length()] are clamped.
// If the contour has zero length, ok is false.
func (m *Measure) PosTan(d float64) (pos, tan vec.Vec2, ok bool) {
	if len(m.segs) == 0 {
		return vec.Vec2{}, vec.Vec2{}, false
	}
	if math.IsNaN(d) {
		d = 0
	}
	d = max(0, min(d, m.length))

	i, _ := slices.BinarySearchFunc(m.segs, d, func(s segment, d float64) int {
		return cmp.Compare(s.dist, d)
	})
	if i == len(m.segs) {
		i--
	}
	seg := m.segs[i]

	var prevDist, prevT float64
	if i > 0 {
		prevDist = m.segs[i-1].dist
		if m.segs[i-1].curve == seg.curve {
			prevT = m.segs[i-1].t
		}
	}
	frac := (d - prevDist) / (seg.dist - prevDist)
	t := prevT + (seg.t-prevT)*frac

	c := &m.curves[seg.curve]
	return c.point(t), c.tangent(t), true
}

// point evaluates the curve at parameter t.
func (c *curve) point(t float64) vec.Vec2 {
	omt := 1 - t
	switch c.cmd {
	case path.CmdQuadTo:
		// B(t) = (1-t)²P0 + 2(1-t)tP1 + t²P2
		return c.p[0].Mul(omt * omt).Add(c.p[1].Mul(2 * omt * t)).Add(c.p[2].Mul(t * t))
	case path.CmdCubeTo:
		// B(t) = (1-t)³P0 + 3(1-t)²tP1 + 3(1-t)t²P2 + t³P3
		return c.p[0].Mul(omt * omt * omt).
			Add(c.p[1].Mul(3 * omt * omt * t)).
			Add(c.p[2].Mul(3 * omt * t * t)).
			Add(c.p[3].Mul(t * t * t))
	default:
		return c.p[0].Add(c.p[1].Sub(c.p[0]).Mul(t))
	}
}

// tangent returns the unit tangent of the curve at parameter t.
// Where the derivative vanishes, the chord direction is used instead.
func (c *curve) tangent(t float64) vec.Vec2 {
	omt := 1 - t
	var d, chord vec.Vec2
	switch c.cmd {
	case path.CmdQuadTo:
		d = c.p[1].Sub(c.p[0]).Mul(2 * omt).Add(c.p[2].Sub(c.p[1]).Mul(2 * t))
		chord = c.p[2].Sub(c.p[0])
	case path.CmdCubeTo:
		d = c.p[1].Sub(c.p[0]).Mul(3 * omt * omt).
			Add(c.p[2].Sub(c.p[1]).Mul(6 * omt * t)).
			Add(c.p[3].Sub(c.p[2]).Mul(3 * t * t))
		chord = c.p[3].Sub(c.p[0])
	default:
		d = c.p[1].Sub(c.p[0])
		chord = d
	}

	l := d.Length()
	if l < zeroLengthThreshold {
		d = chord
		l = d.Length()
	}
	if l < zeroLengthThreshold {
		return vec.Vec2{}
	}
	return d.Mul(1 / l)
}
