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


package raster

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Outline returns a path which, filled with the nonzero winding rule,
// covers the boundary of the closed polygon pts drawn with the given line
// width.
//
// Every polygon edge becomes a rectangle, extended by half the line width
// at both ends. All rectangles have the same orientation, so that
// overlapping corners do not cancel.
func Outline(pts []vec.Vec2, width float64) *path.Data {
	res := &path.Data{}
	n := len(pts)
	if n < 2 || !(width > 0) {
		return res
	}

	d := width / 2
	for i := range n {
		a := pts[i]
		b := pts[(i+1)%n]
		if n == 2 && i == 1 {
			break
		}

		dir := b.Sub(a)
		l := dir.Length()
		if l < zeroLengthThreshold {
			continue
		}
		t := dir.Mul(d / l)
		nrm := vec.Vec2{X: -t.Y, Y: t.X}

		a = a.Sub(t)
		b = b.Add(t)
		res = res.MoveTo(a.Add(nrm)).
			LineTo(b.Add(nrm)).
			LineTo(b.Sub(nrm)).
			LineTo(a.Sub(nrm)).
			Close()
	}
	return res
}

// zeroLengthThreshold is the minimal length of a polygon edge.
// Shorter edges are skipped.
const zeroLengthThreshold = 1e-10
