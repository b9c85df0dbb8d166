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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/gauge/measure"
)

// Pointer is the arrowhead which marks the current value on the dial.
type Pointer struct {
	Distance float64 // arc-length position on the dial path

	// Polygon holds the tip, the back-left and the back-right corner.
	// The tip is closest to the dial path.
	Polygon [3]vec.Vec2
}

// pointerDistance maps a value to an arc-length distance.
// A gauge without positive maximum or without path length keeps the
// pointer at the start of the dial.
func pointerDistance(value, maxValue, length float64) float64 {
	if !(maxValue > 0) || !(length > 0) {
		return 0
	}
	frac := min(max(value/maxValue, 0), 1)
	return frac * length
}

func layoutPointer(dial *Dial, m *measure.Measure, cfg *Config, current float64) Pointer {
	d := pointerDistance(current, cfg.MaxValue, m.Length())
	f := sampleFrame(dial, m, d)

	arrowLength := cfg.ArrowLength()
	arrowWidth := cfg.ArrowWidth()

	tip := f.pos.Add(f.n.Mul(arrowLength * 0.2))
	back := tip.Add(f.n.Mul(arrowLength))
	halfWidth := f.u.Mul(arrowWidth * 0.5)

	return Pointer{
		Distance: d,
		Polygon:  [3]vec.Vec2{tip, back.Add(halfWidth), back.Sub(halfWidth)},
	}
}
