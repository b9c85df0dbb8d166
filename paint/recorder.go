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

package paint

import (
	"image/color"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// A Recorder is a [Canvas] which keeps a list of all drawing calls.
// The recorded calls can later be applied to another canvas,
// using the [Recorder.ApplyTo] method.
type Recorder struct {
	Ops []Op
}

// Op is a single recorded drawing call.
// For polygons Points is set, for text Text and Size are set and
// Points holds the anchor.
type Op struct {
	Kind   OpKind
	Points []vec.Vec2
	Style  Style
	Color  color.Color
	Text   string
	Size   float64
}

// OpKind distinguishes recorded calls.
type OpKind int

const (
	OpPolygon OpKind = iota
	OpText
)

// DrawPolygon implements the [Canvas] interface.
func (r *Recorder) DrawPolygon(pts []vec.Vec2, style Style, c color.Color) {
	r.Ops = append(r.Ops, Op{
		Kind:   OpPolygon,
		Points: slices.Clone(pts),
		Style:  style,
		Color:  c,
	})
}

// DrawText implements the [Canvas] interface.
func (r *Recorder) DrawText(text string, at vec.Vec2, size float64, c color.Color) {
	r.Ops = append(r.Ops, Op{
		Kind:   OpText,
		Points: []vec.Vec2{at},
		Color:  c,
		Text:   text,
		Size:   size,
	})
}

// ApplyTo replays all recorded calls onto c.
func (r *Recorder) ApplyTo(c Canvas) {
	for _, op := range r.Ops {
		switch op.Kind {
		case OpPolygon:
			c.DrawPolygon(op.Points, op.Style, op.Color)
		case OpText:
			c.DrawText(op.Text, op.Points[0], op.Size, op.Color)
		}
	}
}

// Count returns the number of recorded polygons with the given style.
func (r *Recorder) Count(style Style) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == OpPolygon && op.Style == style {
			n++
		}
	}
	return n
}

// Texts returns the recorded text strings in drawing order.
func (r *Recorder) Texts() []string {
	var res []string
	for _, op := range r.Ops {
		if op.Kind == OpText {
			res = append(res, op.Text)
		}
	}
	return res
}
