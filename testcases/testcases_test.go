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


package testcases

import (
	"image"
	"maps"
	"math"
	"regexp"
	"slices"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/gauge"
	"seehuhn.de/go/gauge/paint"
	"seehuhn.de/go/gauge/raster"
)

var validName = regexp.MustCompile(`^[a-z0-9_]+$`)

func forEachCase(t *testing.T, f func(t *testing.T, tc *TestCase)) {
	seen := make(map[string]bool)
	for _, category := range slices.Sorted(maps.Keys(All)) {
		for i := range All[category] {
			tc := &All[category][i]
			name := category + "_" + tc.Name
			if !validName.MatchString(tc.Name) {
				t.Errorf("%s: invalid name", name)
			}
			if seen[name] {
				t.Errorf("%s: duplicate name", name)
			}
			seen[name] = true
			t.Run(name, func(t *testing.T) { f(t, tc) })
		}
	}
}

func finite(pts ...vec.Vec2) bool {
	for _, p := range pts {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return false
		}
	}
	return true
}

func TestLayout(t *testing.T) {
	forEachCase(t, func(t *testing.T, tc *TestCase) {
		g := tc.Gauge()
		frame, ok := g.Render()
		if ok == tc.NotReady {
			t.Fatalf("ready=%t, expected %t", ok, !tc.NotReady)
		}
		if !ok {
			return
		}

		cfg := g.Config()
		if v := g.Value(); v < 0 || v > max(cfg.MaxValue, 0) {
			t.Errorf("value %g outside [0, %g]", v, cfg.MaxValue)
		}

		n := cfg.TotalTicks
		if n > 0 && len(frame.Ticks) != n+1 {
			t.Errorf("expected %d ticks, got %d", n+1, len(frame.Ticks))
		}
		for i, tick := range frame.Ticks {
			if i > 0 && tick.Distance <= frame.Ticks[i-1].Distance {
				t.Errorf("tick %d: distance not increasing", i)
			}
			if !finite(tick.Polygon[:]...) {
				t.Errorf("tick %d: invalid polygon %v", i, tick.Polygon)
			}
			if tick.Filled != gauge.Filled(tick.Value, g.Value()) {
				t.Errorf("tick %d: inconsistent fill state", i)
			}
		}

		d := frame.Pointer.Distance
		if d < 0 || d > frame.PathLength || !finite(frame.Pointer.Polygon[:]...) {
			t.Errorf("invalid pointer %v at %g", frame.Pointer.Polygon, d)
		}
	})
}

func TestDrawRaster(t *testing.T) {
	forEachCase(t, func(t *testing.T, tc *TestCase) {
		if tc.NotReady {
			return
		}
		g := tc.Gauge()

		rec := &paint.Recorder{}
		if !g.Draw(rec) {
			t.Fatal("draw failed")
		}

		w, h := int(math.Ceil(tc.Width)), int(math.Ceil(tc.Height))
		img := image.NewRGBA(image.Rect(0, 0, w, h))
		c := raster.NewImage(img, 1)
		rec.ApplyTo(c)
		if err := c.Err(); err != nil {
			t.Fatal(err)
		}

		painted := 0
		for i := 3; i < len(img.Pix); i += 4 {
			if img.Pix[i] != 0 {
				painted++
			}
		}
		if painted == 0 {
			t.Error("nothing painted")
		}
	})
}
