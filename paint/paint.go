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

// Package paint defines the drawing surface a gauge renders onto.
//
// All coordinates are in user space with the y axis pointing down.
package paint

import (
	"fmt"
	"image/color"

	"seehuhn.de/go/geom/vec"
)

// Style selects how a polygon is painted.
type Style int

const (
	// Stroke paints a thin outline along the polygon boundary.
	Stroke Style = iota

	// Fill paints the polygon interior using the nonzero winding rule.
	Fill
)

func (s Style) String() string {
	switch s {
	case Stroke:
		return "stroke"
	case Fill:
		return "fill"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// OutlineWidth is the line width used for [Stroke], in user-space units.
const OutlineWidth = 1.0

// Canvas is a drawing surface.
type Canvas interface {
	// DrawPolygon paints the closed polygon through pts.
	DrawPolygon(pts []vec.Vec2, style Style, c color.Color)

	// DrawText paints text of the given font size. The text is centred
	// horizontally on at.X and its baseline is at at.Y.
	DrawText(text string, at vec.Vec2, size float64, c color.Color)
}
