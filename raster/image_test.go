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
	"image"
	"image/color"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/gauge"
	"seehuhn.de/go/gauge/paint"
)

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	red   = color.RGBA{R: 255, A: 255}
	blue  = color.RGBA{B: 255, A: 255}
)

// drawGauge renders the default 300x300 gauge at value 25, with filled
// ticks in red and the pointer in blue.
func drawGauge(t *testing.T, scale float64) *image.RGBA {
	t.Helper()

	cfg := gauge.DefaultConfig()
	cfg.FilledColor = red
	cfg.PointerColor = blue
	g := gauge.New(cfg)
	g.Resize(300, 300)
	g.SetValue(25)

	size := int(300 * scale)
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	canvas := NewImage(img, scale)
	canvas.Clear(white)
	if !g.Draw(canvas) {
		t.Fatal("gauge not ready")
	}
	if err := canvas.Err(); err != nil {
		t.Fatal(err)
	}
	return img
}

func TestGaugePixels(t *testing.T) {
	for _, scale := range []float64{1, 2} {
		img := drawGauge(t, scale)
		px := func(x, y float64) color.RGBA {
			return img.RGBAAt(int(x*scale), int(y*scale))
		}

		// tick 0 is filled; its centre is at (13.2, 290)
		if c := px(13.2, 290); c != red {
			t.Errorf("scale %g: filled tick pixel is %v", scale, c)
		}
		// tick 50 is outlined; its centre is at (290, 13.2)
		if c := px(290, 13.2); c != white {
			t.Errorf("scale %g: outlined tick interior is %v", scale, c)
		}
		// its outline runs along x = 287.5
		if c := px(287.5, 13.2); c == white {
			t.Errorf("scale %g: outline missing", scale)
		}
		// far from all shapes
		if c := px(200, 200); c != white {
			t.Errorf("scale %g: background pixel is %v", scale, c)
		}
	}
}

func TestGaugePointer(t *testing.T) {
	cfg := gauge.DefaultConfig()
	g := gauge.New(cfg)
	g.Resize(300, 300)
	g.SetValue(25)
	frame, _ := g.Render()

	img := drawGauge(t, 1)
	poly := frame.Pointer.Polygon
	centroid := poly[0].Add(poly[1]).Add(poly[2]).Mul(1.0 / 3)
	if c := img.RGBAAt(int(centroid.X), int(centroid.Y)); c != blue {
		t.Errorf("pointer centroid %v has color %v", centroid, c)
	}
}

func TestGaugeLabels(t *testing.T) {
	img := drawGauge(t, 1)

	// the label "50" is centred on x = 290 with its baseline at y = 48.8
	dark := 0
	for y := 34; y < 49; y++ {
		for x := 278; x < 300; x++ {
			if c := img.RGBAAt(x, y); c.R < 128 {
				dark++
			}
		}
	}
	if dark < 20 {
		t.Errorf("label area has only %d dark pixels", dark)
	}
}

func TestImageBlending(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	canvas := NewImage(img, 1)
	canvas.Clear(white)

	// covers the left half of pixel column 1
	pts := []vec.Vec2{{X: 0, Y: 0}, {X: 1.5, Y: 0}, {X: 1.5, Y: 4}, {X: 0, Y: 4}}
	canvas.DrawPolygon(pts, paint.Fill, color.Black)

	if c := img.RGBAAt(0, 2); c != (color.RGBA{A: 255}) {
		t.Errorf("covered pixel is %v", c)
	}
	if c := img.RGBAAt(1, 2); c.R < 126 || c.R > 129 || c.A != 255 {
		t.Errorf("half covered pixel is %v", c)
	}
	if c := img.RGBAAt(2, 2); c != white {
		t.Errorf("uncovered pixel is %v", c)
	}

	// the mask is cleared after each shape
	canvas.DrawPolygon([]vec.Vec2{{X: 3, Y: 3}, {X: 4, Y: 3}, {X: 4, Y: 4}}, paint.Fill, red)
	if c := img.RGBAAt(0, 2); c != (color.RGBA{A: 255}) {
		t.Errorf("earlier shape repainted: %v", c)
	}
}
