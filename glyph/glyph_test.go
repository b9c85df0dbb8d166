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


package glyph

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/gomono"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func TestAdvance(t *testing.T) {
	face := Default()
	if face.Name() == "" {
		t.Error("default face has no name")
	}

	w0, err := face.Advance("0", 20)
	if err != nil {
		t.Fatal(err)
	}
	w1, err := face.Advance("1", 20)
	if err != nil {
		t.Fatal(err)
	}
	w10, err := face.Advance("10", 20)
	if err != nil {
		t.Fatal(err)
	}
	if !(w0 > 0) || w10 != w0+w1 {
		t.Errorf("unexpected advances: %g + %g vs %g", w0, w1, w10)
	}

	w0big, _ := face.Advance("0", 40)
	if math.Abs(w0big-2*w0) > 1.0/32 {
		t.Errorf("advance does not scale: %g vs %g", w0big, w0)
	}

	empty, err := face.Advance("", 20)
	if err != nil || empty != 0 {
		t.Errorf("empty string: %g, %v", empty, err)
	}
}

func TestOutline(t *testing.T) {
	face := Default()
	at := vec.Vec2{X: 100, Y: 50}
	p, err := face.Outline("40", 20, at)
	if err != nil {
		t.Fatal(err)
	}

	var moves, closes int
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			moves++
		case path.CmdClose:
			closes++
		}
	}
	if moves == 0 || moves != closes {
		t.Errorf("%d contours, %d closed", moves, closes)
	}

	xMin, xMax := math.Inf(1), math.Inf(-1)
	yMin, yMax := math.Inf(1), math.Inf(-1)
	for _, q := range p.Coords {
		xMin, xMax = min(xMin, q.X), max(xMax, q.X)
		yMin, yMax = min(yMin, q.Y), max(yMax, q.Y)
	}

	// digits sit on the baseline and rise above it
	if yMax > at.Y+0.5 || yMin > at.Y-10 {
		t.Errorf("unexpected vertical extent [%g, %g]", yMin, yMax)
	}
	// centred, up to the side bearings
	if math.Abs((xMin+xMax)/2-at.X) > 2 {
		t.Errorf("unexpected horizontal extent [%g, %g]", xMin, xMax)
	}
	width, _ := face.Advance("40", 20)
	if xMax-xMin > width {
		t.Errorf("ink width %g exceeds advance %g", xMax-xMin, width)
	}
}

func TestOutlineEmpty(t *testing.T) {
	p, err := Default().Outline("", 20, vec.Vec2{})
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Cmds) != 0 {
		t.Errorf("expected empty path, got %d commands", len(p.Cmds))
	}
}

func TestParseError(t *testing.T) {
	if _, err := Parse([]byte("not a font")); err == nil {
		t.Error("expected error for invalid font data")
	}
}

func TestReadFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "mono.ttf")
	if err := os.WriteFile(fname, gomono.TTF, 0o644); err != nil {
		t.Fatal(err)
	}
	face, err := ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if name := face.Name(); name != "Go Mono" {
		t.Errorf("unexpected family %q", name)
	}

	// monospaced: "1" is as wide as "0"
	w0, _ := face.Advance("0", 20)
	w1, _ := face.Advance("1", 20)
	if w0 != w1 {
		t.Errorf("advances differ: %g vs %g", w0, w1)
	}

	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.ttf")); err == nil {
		t.Error("expected error for a missing file")
	}
}

func BenchmarkOutline(b *testing.B) {
	face := Default()
	at := vec.Vec2{X: 50, Y: 50}
	for b.Loop() {
		if _, err := face.Outline("50", 20, at); err != nil {
			b.Fatal(err)
		}
	}
}
