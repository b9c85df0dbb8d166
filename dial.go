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

package gauge

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// SegmentKind identifies the type of a dial segment.
type SegmentKind int

const (
	LineSegment SegmentKind = iota
	ArcSegment
)

func (k SegmentKind) String() string {
	switch k {
	case LineSegment:
		return "line"
	case ArcSegment:
		return "arc"
	default:
		return fmt.Sprintf("SegmentKind(%d)", int(k))
	}
}

// Segment is one piece of the dial path.
type Segment struct {
	Kind     SegmentKind
	From, To vec.Vec2

	// The remaining fields are only used for arcs. Angles are in radians
	// and, since the y axis points down, positive sweeps turn clockwise on
	// screen.
	Center     vec.Vec2
	Radius     float64
	StartAngle float64
	Sweep      float64
}

// Length returns the exact length of the segment.
func (s *Segment) Length() float64 {
	if s.Kind == ArcSegment {
		return s.Radius * math.Abs(s.Sweep)
	}
	return s.To.Sub(s.From).Length()
}

// Dial is the reference path along which ticks and the pointer are placed.
// It starts near the bottom-left corner of the gauge, runs up the left
// side, turns through a quarter circle and ends near the top-right corner.
type Dial struct {
	Segments []Segment

	start vec.Vec2
	path  *path.Data
}

// BuildDial constructs the dial path for a gauge of the given size.
// If width or height is not positive, no dial is built and ok is false.
func BuildDial(width, height float64, cfg *Config) (dial *Dial, ok bool) {
	if !(width > 0 && height > 0) {
		return nil, false
	}

	margin := cfg.TickLength + cfg.Padding
	inset := cfg.labelInset()
	r := cfg.CornerRadius
	center := vec.Vec2{X: margin + r, Y: margin + r}

	b := &dialBuilder{}
	b.moveTo(vec.Vec2{X: margin, Y: height - inset})
	b.lineTo(vec.Vec2{X: margin, Y: center.Y + r})
	b.arcTo(center, r, math.Pi, math.Pi/2)
	b.lineTo(vec.Vec2{X: width - inset, Y: margin})

	return b.dial(), true
}

// Path returns the dial as a path. Arcs are approximated by cubic Bézier
// curves, using at most a quarter circle per curve.
// The returned path must not be modified.
func (d *Dial) Path() *path.Data {
	return d.path
}

// Start returns the first point of the dial path.
func (d *Dial) Start() vec.Vec2 {
	return d.start
}

// End returns the last point of the dial path.
// For a dial without segments this is the start point.
func (d *Dial) End() vec.Vec2 {
	if len(d.Segments) == 0 {
		return d.start
	}
	return d.Segments[len(d.Segments)-1].To
}

// StartDirection returns the unit tangent at the start of the dial path.
// A dial without segments points up the left side.
func (d *Dial) StartDirection() vec.Vec2 {
	if len(d.Segments) == 0 {
		return vec.Vec2{X: 0, Y: -1}
	}
	seg := &d.Segments[0]
	if seg.Kind == ArcSegment {
		sin, cos := math.Sincos(seg.StartAngle)
		if seg.Sweep < 0 {
			return vec.Vec2{X: sin, Y: -cos}
		}
		return vec.Vec2{X: -sin, Y: cos}
	}
	dir := seg.To.Sub(seg.From)
	return dir.Mul(1 / dir.Length())
}

// dialBuilder collects segments, merging consecutive line segments
// which continue in the same direction.
type dialBuilder struct {
	start    vec.Vec2
	current  vec.Vec2
	segments []Segment
}

func (b *dialBuilder) moveTo(p vec.Vec2) {
	b.start = p
	b.current = p
}

func (b *dialBuilder) lineTo(p vec.Vec2) {
	d := p.Sub(b.current)
	if d.Length() < zeroLengthThreshold {
		return
	}

	if n := len(b.segments); n > 0 && b.segments[n-1].Kind == LineSegment {
		last := &b.segments[n-1]
		prev := last.To.Sub(last.From)
		cross := prev.X*d.Y - prev.Y*d.X
		if math.Abs(cross) < collinearityThreshold*prev.Length()*d.Length() && prev.Dot(d) > 0 {
			last.To = p
			b.current = p
			return
		}
	}

	b.segments = append(b.segments, Segment{Kind: LineSegment, From: b.current, To: p})
	b.current = p
}

// arcTo appends a circular arc. If the current point differs from the
// start of the arc, a connecting line is added first.
// An arc with non-positive radius degenerates to a line to its centre.
func (b *dialBuilder) arcTo(center vec.Vec2, radius, startAngle, sweep float64) {
	if radius <= 0 {
		b.lineTo(center)
		return
	}

	from := pointOnCircle(center, radius, startAngle)
	to := pointOnCircle(center, radius, startAngle+sweep)
	b.lineTo(from)
	b.segments = append(b.segments, Segment{
		Kind:       ArcSegment,
		From:       from,
		To:         to,
		Center:     center,
		Radius:     radius,
		StartAngle: startAngle,
		Sweep:      sweep,
	})
	b.current = to
}

func (b *dialBuilder) dial() *Dial {
	p := (&path.Data{}).MoveTo(b.start)
	for i := range b.segments {
		seg := &b.segments[i]
		switch seg.Kind {
		case LineSegment:
			p = p.LineTo(seg.To)
		case ArcSegment:
			p = appendArc(p, seg)
		}
	}
	return &Dial{Segments: b.segments, start: b.start, path: p}
}

// appendArc adds cubic Bézier approximations of an arc segment to p.
func appendArc(p *path.Data, seg *Segment) *path.Data {
	n := int(math.Ceil(math.Abs(seg.Sweep)/(math.Pi/2) - 1e-9))
	if n < 1 {
		n = 1
	}
	step := seg.Sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4) * seg.Radius

	a0 := seg.StartAngle
	p0 := seg.From
	for i := 1; i <= n; i++ {
		a1 := seg.StartAngle + float64(i)*step
		p3 := pointOnCircle(seg.Center, seg.Radius, a1)
		if i == n {
			p3 = seg.To
		}
		t0 := vec.Vec2{X: -math.Sin(a0), Y: math.Cos(a0)} // tangent at a0
		t1 := vec.Vec2{X: -math.Sin(a1), Y: math.Cos(a1)} // tangent at a1
		p1 := p0.Add(t0.Mul(k))
		p2 := p3.Sub(t1.Mul(k))
		p = p.CubeTo(p1, p2, p3)
		a0, p0 = a1, p3
	}
	return p
}

func pointOnCircle(center vec.Vec2, radius, angle float64) vec.Vec2 {
	sin, cos := math.Sincos(angle)
	return vec.Vec2{X: center.X + radius*cos, Y: center.Y + radius*sin}
}

// Numerical tolerances for the dial geometry.
const (
	// zeroLengthThreshold is the minimum length of a line segment.
	// Shorter segments are dropped.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is the relative cross product below which two
	// line segments are considered parallel.
	collinearityThreshold = 1e-9
)
