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

import "seehuhn.de/go/gauge/paint"

// Frame is the complete geometry of one rendering pass.
type Frame struct {
	Ticks   []Tick
	Pointer Pointer

	// PathLength is the dial length all ticks and the pointer were
	// measured against.
	PathLength float64
}

// Render computes the tick and pointer geometry for the current state.
// If the gauge is not ready, ok is false.
// Render does not modify the gauge.
func (g *Gauge) Render() (frame Frame, ok bool) {
	if g.measure == nil {
		return Frame{}, false
	}
	return Frame{
		Ticks:      layoutTicks(g.dial, g.measure, &g.cfg, g.value),
		Pointer:    layoutPointer(g.dial, g.measure, &g.cfg, g.value),
		PathLength: g.measure.Length(),
	}, true
}

// Draw renders the gauge onto c: ticks first, each followed by its label,
// then the pointer. If the gauge is not ready, nothing is drawn and false
// is returned.
func (g *Gauge) Draw(c paint.Canvas) bool {
	frame, ok := g.Render()
	if !ok {
		g.log.Debug().Msg("layout not ready, draw skipped")
		return false
	}

	outline := g.cfg.color()
	filled := g.cfg.filledColor()
	for _, t := range frame.Ticks {
		if t.Filled {
			c.DrawPolygon(t.Polygon[:], paint.Fill, filled)
		} else {
			c.DrawPolygon(t.Polygon[:], paint.Stroke, outline)
		}
		if t.Label != nil {
			c.DrawText(t.Label.Text, t.Label.Anchor, g.cfg.LabelFontSize, outline)
		}
	}
	c.DrawPolygon(frame.Pointer.Polygon[:], paint.Fill, g.cfg.pointerColor())
	return true
}
