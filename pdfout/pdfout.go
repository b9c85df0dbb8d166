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


// Package pdfout writes gauge drawings as single-page PDF files.
package pdfout

import (
	"fmt"
	stdcolor "image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/gauge/glyph"
	"seehuhn.de/go/gauge/paint"
)

// Write creates a PDF file with a single page of the given size, in PDF
// points, and calls draw to fill the page. User space has its origin in
// the top-left corner of the page and the y axis pointing down.
//
// Text is drawn as glyph outlines using face, or the Go Regular font if
// face is nil. Colors are written as DeviceRGB. Transparency is ignored.
func Write(fname string, width, height float64, face *glyph.Face, draw func(paint.Canvas)) error {
	return write(fname, width, height, face, nil, draw)
}

func write(fname string, width, height float64, face *glyph.Face, opt *pdf.WriterOptions, draw func(paint.Canvas)) error {
	if face == nil {
		face = glyph.Default()
	}

	paper := &pdf.Rectangle{URx: width, URy: height}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, opt)
	if err != nil {
		return err
	}

	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, height})
	page.SetLineWidth(paint.OutlineWidth)
	page.SetLineCap(graphics.LineCapButt)
	page.SetLineJoin(graphics.LineJoinMiter)

	c := &canvas{page: page, face: face}
	draw(c)

	err = page.Close()
	if c.err != nil {
		return c.err
	}
	return err
}

type canvas struct {
	page *document.Page
	face *glyph.Face
	err  error
}

func (c *canvas) DrawPolygon(pts []vec.Vec2, style paint.Style, col stdcolor.Color) {
	if len(pts) < 2 {
		return
	}
	c.page.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.page.LineTo(p.X, p.Y)
	}
	c.page.ClosePath()

	if style == paint.Fill {
		c.page.SetFillColor(deviceRGB(col))
		c.page.Fill()
	} else {
		c.page.SetStrokeColor(deviceRGB(col))
		c.page.Stroke()
	}
}

func (c *canvas) DrawText(text string, at vec.Vec2, size float64, col stdcolor.Color) {
	outline, err := c.face.Outline(text, size, at)
	if err != nil {
		if c.err == nil {
			c.err = fmt.Errorf("pdfout: label %q: %w", text, err)
		}
		return
	}
	if len(outline.Cmds) == 0 {
		return
	}

	// PDF has no quadratic curves
	for cmd, pts := range outline.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			c.page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			c.page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			c.page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			c.page.ClosePath()
		}
	}
	c.page.SetFillColor(deviceRGB(col))
	c.page.Fill()
}

// deviceRGB converts col to a DeviceRGB color. Partially transparent
// colors are un-premultiplied and then treated as opaque.
func deviceRGB(col stdcolor.Color) color.DeviceRGB {
	c := stdcolor.NRGBA64Model.Convert(col).(stdcolor.NRGBA64)
	return color.DeviceRGB{
		float64(c.R) / 0xffff,
		float64(c.G) / 0xffff,
		float64(c.B) / 0xffff,
	}
}
