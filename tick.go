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
	"math"
	"strconv"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/gauge/measure"
)

const (
	// LabelInterval is the distance between labelled ticks, in tick indices.
	LabelInterval = 10

	// LabelBaselineNudge is added to the y coordinate of every label
	// anchor, to move the text baseline below the anchor point.
	LabelBaselineNudge = 8.0
)

// Tick is one subdivision mark on the dial.
type Tick struct {
	Index    int     // 0, ..., TotalTicks
	Distance float64 // arc-length position on the dial path
	Value    float64 // gauge value at this tick
	Labeled  bool    // whether the tick carries an index label
	Filled   bool    // whether Value is at or below the current value

	// Polygon is the outline of the tick, in the order start-left,
	// end-left, end-right, start-right. The start points are near the dial
	// path, the end points are outside the dial.
	Polygon [4]vec.Vec2

	// Label is set for labelled ticks.
	Label *Label
}

// Label is the text drawn next to a labelled tick.
type Label struct {
	Text   string
	Anchor vec.Vec2 // horizontal centre and baseline of the text
}

// Filled reports whether a tick with the given value is drawn filled.
// Ticks exactly at the current value are filled.
func Filled(tickValue, current float64) bool {
	return tickValue <= current
}

// frame is a point on the dial path with the local tangent direction u
// and the normal n, obtained by rotating u by +90°. In screen coordinates
// (y axis down) n points into the dial.
type frame struct {
	pos, u, n vec.Vec2
}

// sampleFrame returns the frame at arc-length distance d.
// If the dial has zero length, the frame sits at the start of the dial.
func sampleFrame(dial *Dial, m *measure.Measure, d float64) frame {
	pos, tan, ok := m.PosTan(d)
	if !ok {
		pos, tan = dial.Start(), dial.StartDirection()
	}
	angle := math.Atan2(tan.Y, tan.X)
	sin, cos := math.Sincos(angle)
	return frame{
		pos: pos,
		u:   vec.Vec2{X: cos, Y: sin},
		n:   vec.Vec2{X: -sin, Y: cos},
	}
}

// layoutTicks computes all TotalTicks+1 ticks.
// All ticks are measured against the same path length.
func layoutTicks(dial *Dial, m *measure.Measure, cfg *Config, current float64) []Tick {
	n := cfg.TotalTicks
	if n <= 0 {
		return nil
	}

	spacing := m.Length() / float64(n)
	ticks := make([]Tick, n+1)
	for i := range ticks {
		ticks[i] = makeTick(dial, m, cfg, i, float64(i)*spacing, current)
	}
	return ticks
}

// makeTick computes tick i at arc-length distance d.
func makeTick(dial *Dial, m *measure.Measure, cfg *Config, i int, d, current float64) Tick {
	f := sampleFrame(dial, m, d)

	labeled := i%LabelInterval == 0
	var ext float64 // labelled ticks reach a little into the dial
	if labeled {
		ext = cfg.TickLength * 0.1
	}

	halfWidth := f.u.Mul(cfg.TickThickness / 2)
	inward := f.n.Mul(ext)
	outward := f.n.Mul(cfg.TickLength + ext)

	startLeft := f.pos.Add(halfWidth).Add(inward)
	startRight := f.pos.Sub(halfWidth).Add(inward)
	endLeft := startLeft.Sub(outward)
	endRight := startRight.Sub(outward)

	value := float64(i) / float64(cfg.TotalTicks) * cfg.MaxValue
	t := Tick{
		Index:    i,
		Distance: d,
		Value:    value,
		Labeled:  labeled,
		Filled:   Filled(value, current),
		Polygon:  [4]vec.Vec2{startLeft, endLeft, endRight, startRight},
	}
	if labeled {
		anchor := f.pos.Add(f.n.Mul(cfg.TickLength * 0.7))
		anchor.Y += LabelBaselineNudge
		t.Label = &Label{
			Text:   strconv.Itoa(i),
			Anchor: anchor,
		}
	}
	return t
}
