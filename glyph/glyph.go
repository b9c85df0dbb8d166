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


// Package glyph converts text to outline paths.
//
// Outlines use the same coordinate system as the gauge geometry: the y
// axis points down and one unit is one pixel at scale 1. Converting text
// to paths lets every drawing surface fill labels with its ordinary path
// filling code.
package glyph

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Face is a scalable font.
// A Face is safe for concurrent use.
type Face struct {
	font *sfnt.Font
}

// Parse reads a TrueType or OpenType font.
func Parse(data []byte) (*Face, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("glyph: %w", err)
	}
	return &Face{font: f}, nil
}

// ReadFile reads a TrueType or OpenType font from a file.
func ReadFile(fname string) (*Face, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, fmt.Errorf("glyph: %w", err)
	}
	return Parse(data)
}

// Default returns the Go Regular font.
func Default() *Face {
	return defaultFace()
}

var defaultFace = sync.OnceValue(func() *Face {
	face, err := Parse(goregular.TTF)
	if err != nil {
		panic(err) // the embedded font is known to be valid
	}
	return face
})

// Name returns the family name of the font, or the empty string if the
// font has no name table entry.
func (f *Face) Name() string {
	var buf sfnt.Buffer
	name, err := f.font.Name(&buf, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

// Advance returns the width of text at the given font size.
func (f *Face) Advance(text string, size float64) (float64, error) {
	var buf sfnt.Buffer
	ppem := toFixed(size)

	var width fixed.Int26_6
	for _, r := range text {
		gid, err := f.font.GlyphIndex(&buf, r)
		if err != nil {
			return 0, fmt.Errorf("glyph: %q: %w", r, err)
		}
		adv, err := f.font.GlyphAdvance(&buf, gid, ppem, font.HintingNone)
		if err != nil {
			return 0, fmt.Errorf("glyph: %q: %w", r, err)
		}
		width += adv
	}
	return fromFixed(width), nil
}

// Outline returns the outline of text at the given font size.
// The text is centred horizontally on at.X, and the baseline is at at.Y.
// Runes missing from the font are shown as the font's .notdef glyph.
func (f *Face) Outline(text string, size float64, at vec.Vec2) (*path.Data, error) {
	width, err := f.Advance(text, size)
	if err != nil {
		return nil, err
	}

	var buf sfnt.Buffer
	ppem := toFixed(size)
	res := &path.Data{}
	origin := vec.Vec2{X: at.X - width/2, Y: at.Y}
	for _, r := range text {
		gid, err := f.font.GlyphIndex(&buf, r)
		if err != nil {
			return nil, fmt.Errorf("glyph: %q: %w", r, err)
		}
		segs, err := f.font.LoadGlyph(&buf, gid, ppem, nil)
		if err != nil {
			return nil, fmt.Errorf("glyph: %q: %w", r, err)
		}
		res = appendSegments(res, segs, origin)

		adv, err := f.font.GlyphAdvance(&buf, gid, ppem, font.HintingNone)
		if err != nil {
			return nil, fmt.Errorf("glyph: %q: %w", r, err)
		}
		origin.X += fromFixed(adv)
	}
	return res, nil
}

// appendSegments adds a glyph outline, translated to origin, to p.
// Every contour is closed explicitly.
func appendSegments(p *path.Data, segs sfnt.Segments, origin vec.Vec2) *path.Data {
	pt := func(q fixed.Point26_6) vec.Vec2 {
		return vec.Vec2{X: origin.X + fromFixed(q.X), Y: origin.Y + fromFixed(q.Y)}
	}

	open := false
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				p = p.Close()
			}
			p = p.MoveTo(pt(seg.Args[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			p = p.LineTo(pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			p = p.QuadTo(pt(seg.Args[0]), pt(seg.Args[1]))
		case sfnt.SegmentOpCubeTo:
			p = p.CubeTo(pt(seg.Args[0]), pt(seg.Args[1]), pt(seg.Args[2]))
		}
	}
	if open {
		p = p.Close()
	}
	return p
}

func toFixed(x float64) fixed.Int26_6 {
	return fixed.Int26_6(x*64 + 0.5)
}

func fromFixed(x fixed.Int26_6) float64 {
	return float64(x) / 64
}
