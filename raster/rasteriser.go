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


// Package raster converts gauge geometry to anti-aliased pixels.
//
// The [Rasteriser] computes exact-area coverage for filled paths, row by
// row. [Image] uses it to implement [paint.Canvas] on top of an
// [image.RGBA].
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Rule selects how path winding numbers map to coverage.
type Rule int

const (
	// NonZero covers every point with a non-zero winding number.
	NonZero Rule = iota

	// EvenOdd covers every point with an odd winding number.
	EvenOdd
)

// edge is a non-horizontal line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // inverse slope, (x1-x0)/(y1-y0)
}

func (e *edge) yMin() float64 { return min(e.y0, e.y1) }
func (e *edge) yMax() float64 { return max(e.y0, e.y1) }

// xAt returns the x coordinate of the edge at height y.
func (e *edge) xAt(y float64) float64 {
	return e.x0 + e.dxdy*(y-e.y0)
}

// Rasteriser converts filled paths to per-pixel coverage values.
//
// A Rasteriser keeps its work buffers between calls, so that filling many
// small shapes does not allocate once the buffers have grown.
type Rasteriser struct {
	// CTM maps user space to device space. Must be non-singular.
	CTM matrix.Matrix

	// Clip is the output region in device coordinates.
	// The coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the line segments which replace it. Must be positive.
	Flatness float64

	edges     []edge
	active    []int
	cover     []float32 // signed vertical extent of edge pieces, per pixel
	area      []float32 // cover weighted by the uncovered part of the pixel
	crossings []float64

	// bounding box of edges, in device space
	haveBBox     bool
	bxMin, bxMax float64
	byMin, byMax float64

	current, subpathStart vec.Vec2
}

// NewRasteriser returns a rasteriser for the given clip rectangle, with
// the identity CTM and the default flatness.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters and sets a new clip rectangle.
// Buffer capacity is kept.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.edges = r.edges[:0]
	r.active = r.active[:0]
	r.crossings = r.crossings[:0]
}

// Fill scan-converts p. For every row with non-zero coverage, emit is
// called with the row index y, the x coordinate of the first covered
// pixel, and the coverage values in [0, 1] of consecutive pixels.
// The coverage slice is only valid during the call.
func (r *Rasteriser) Fill(p *path.Data, rule Rule, emit func(y, x int, coverage []float32)) {
	r.beginEdges()

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			r.closeSubpath()
			r.current = p.Coords[k]
			r.subpathStart = r.current
			k++
		case path.CmdLineTo:
			r.lineTo(p.Coords[k])
			k++
		case path.CmdQuadTo:
			r.quadTo(p.Coords[k], p.Coords[k+1])
			k += 2
		case path.CmdCubeTo:
			r.cubeTo(p.Coords[k], p.Coords[k+1], p.Coords[k+2])
			k += 3
		case path.CmdClose:
			r.closeSubpath()
		}
	}
	r.closeSubpath()

	r.scan(rule, emit)
}

// FillPolygon scan-converts the closed polygon through pts.
// See [Rasteriser.Fill] for the meaning of emit.
func (r *Rasteriser) FillPolygon(pts []vec.Vec2, rule Rule, emit func(y, x int, coverage []float32)) {
	if len(pts) < 3 {
		return
	}
	r.beginEdges()
	r.current = pts[0]
	r.subpathStart = pts[0]
	for _, p := range pts[1:] {
		r.lineTo(p)
	}
	r.closeSubpath()
	r.scan(rule, emit)
}

func (r *Rasteriser) beginEdges() {
	r.edges = r.edges[:0]
	r.haveBBox = false
}

// closeSubpath adds the implicit closing edge. Filling treats every
// subpath as closed.
func (r *Rasteriser) closeSubpath() {
	if r.current != r.subpathStart {
		r.addEdge(r.current, r.subpathStart)
	}
	r.current = r.subpathStart
}

func (r *Rasteriser) lineTo(p vec.Vec2) {
	r.addEdge(r.current, p)
	r.current = p
}

// quadTo flattens a quadratic Bézier curve. The number of pieces is
// chosen from the second difference of the control points in device space.
func (r *Rasteriser) quadTo(c, p vec.Vec2) {
	p0 := r.current
	d := r.linear(p0.Sub(c.Mul(2)).Add(p).Mul(0.25))

	n := 1
	if dev := d.Length(); dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}
	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		r.lineTo(p0.Mul(s * s).Add(c.Mul(2 * s * t)).Add(p.Mul(t * t)))
	}
	r.lineTo(p)
}

// cubeTo flattens a cubic Bézier curve, using Wang's formula for the
// number of pieces.
func (r *Rasteriser) cubeTo(c1, c2, p vec.Vec2) {
	p0 := r.current
	d1 := r.linear(p0.Sub(c1.Mul(2)).Add(c2))
	d2 := r.linear(c1.Sub(c2.Mul(2)).Add(p))

	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		if f := math.Sqrt(3 * m / (4 * r.Flatness)); f > 1 {
			n = int(math.Ceil(f))
		}
	}
	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s * s).
			Add(c1.Mul(3 * s * s * t)).
			Add(c2.Mul(3 * s * t * t)).
			Add(p.Mul(t * t * t))
		r.lineTo(q)
	}
	r.lineTo(p)
}

// linear applies the CTM without its translation part.
func (r *Rasteriser) linear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

func (r *Rasteriser) device(v vec.Vec2) (x, y float64) {
	x = r.CTM[0]*v.X + r.CTM[2]*v.Y + r.CTM[4]
	y = r.CTM[1]*v.X + r.CTM[3]*v.Y + r.CTM[5]
	return x, y
}

// addEdge adds the user-space segment from p0 to p1 to the edge list.
// Horizontal edges do not contribute to coverage and are dropped.
func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	x0, y0 := r.device(p0)
	x1, y1 := r.device(p1)

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})

	if !r.haveBBox {
		r.bxMin, r.bxMax = x0, x0
		r.byMin, r.byMax = y0, y0
		r.haveBBox = true
	}
	r.bxMin = min(r.bxMin, x0, x1)
	r.bxMax = max(r.bxMax, x0, x1)
	r.byMin = min(r.byMin, y0, y1)
	r.byMax = max(r.byMax, y0, y1)
}

// scan walks the rows of the edge bounding box, keeping a list of the
// edges which intersect the current row.
func (r *Rasteriser) scan(rule Rule, emit func(y, x int, coverage []float32)) {
	if len(r.edges) == 0 {
		return
	}

	xMin := max(int(math.Floor(r.bxMin)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.bxMax))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.byMin)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.byMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}

	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yMin(), b.yMin())
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top := float64(y)
		bottom := top + 1

		for next < len(r.edges) && r.edges[next].yMin() < bottom {
			r.active = append(r.active, next)
			next++
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.yMax() <= top {
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			if r.accumulate(e, y, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrate(r.cover, r.area, rule)
		if cov, offs := trim(r.cover); cov != nil {
			emit(y, xMin+offs, cov)
		}
	}
}

// accumulate adds the part of e inside row y to the cover and area
// buffers, which are indexed relative to xMin.
// Edge pieces left of xMin contribute to the first pixel, so that the
// winding number carries into the clipped region.
// The return value reports whether e intersects the row.
func (r *Rasteriser) accumulate(e *edge, y, xMin, xMax int) bool {
	top := max(float64(y), e.yMin())
	bottom := min(float64(y+1), e.yMax())
	if bottom <= top {
		return false
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop := e.xAt(top)
	xBottom := e.xAt(bottom)
	left := int(math.Floor(min(xTop, xBottom)))
	right := int(math.Floor(max(xTop, xBottom)))

	if left >= xMax {
		return true
	}
	if left == right {
		r.deposit(e, top, bottom, sign, left, xMin, xMax)
		return true
	}

	// split the piece where it crosses pixel column boundaries
	r.crossings = append(r.crossings[:0], top, bottom)
	for x := left + 1; x <= right; x++ {
		yx := e.y0 + (float64(x)-e.x0)/e.dxdy
		if yx > top && yx < bottom {
			r.crossings = append(r.crossings, yx)
		}
	}
	slices.Sort(r.crossings)
	for i := 1; i < len(r.crossings); i++ {
		a, b := r.crossings[i-1], r.crossings[i]
		if b <= a {
			continue
		}
		col := int(math.Floor(e.xAt((a + b) / 2)))
		r.deposit(e, a, b, sign, col, xMin, xMax)
	}
	return true
}

// deposit records an edge piece between heights a and b, which lies
// within pixel column col.
func (r *Rasteriser) deposit(e *edge, a, b float64, sign float32, col, xMin, xMax int) {
	c := sign * float32(b-a)
	switch {
	case col < xMin:
		r.cover[0] += c
		r.area[0] += c
	case col < xMax:
		xm := e.xAt((a + b) / 2)
		frac := xm - float64(col)
		r.cover[col-xMin] += c
		r.area[col-xMin] += c * float32(1-frac)
	}
}

// integrate turns the accumulated cover and area of one row into coverage
// values, in place.
func integrate(cover, area []float32, rule Rule) {
	var acc float32
	for i := range cover {
		w := acc + area[i]
		acc += cover[i]
		if w < 0 {
			w = -w
		}
		if rule == EvenOdd {
			w -= 2 * float32(int(w/2))
			if w > 1 {
				w = 2 - w
			}
		} else if w > 1 {
			w = 1
		}
		cover[i] = w
	}
}

// trim strips zero coverage from both ends of a row.
func trim(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

const (
	// defaultFlatness is the curve tolerance in device pixels.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the minimal vertical extent of an edge
	// in device space.
	horizontalEdgeThreshold = 1e-10
)
