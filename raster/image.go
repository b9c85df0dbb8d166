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

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/gauge/glyph"
	"seehuhn.de/go/gauge/paint"
)

// Image is a [paint.Canvas] which draws onto an RGBA image.
//
// User-space coordinates are multiplied by Scale to obtain pixel
// coordinates. Shapes are composited using the Porter-Duff "over"
// operator.
type Image struct {
	Dst   *image.RGBA
	Scale float64

	// Face is used for text. If nil, the Go Regular font is used.
	Face *glyph.Face

	r     *Rasteriser
	mask  *image.Alpha
	dirty image.Rectangle
	err   error
}

var _ paint.Canvas = (*Image)(nil)

// NewImage returns a canvas which draws onto dst.
func NewImage(dst *image.RGBA, scale float64) *Image {
	b := dst.Bounds()
	clip := rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	}
	return &Image{
		Dst:   dst,
		Scale: scale,
		r:     NewRasteriser(clip),
		mask:  image.NewAlpha(b),
	}
}

// Clear fills the whole image with c, replacing the previous content.
func (im *Image) Clear(c color.Color) {
	draw.Draw(im.Dst, im.Dst.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// DrawPolygon implements the [paint.Canvas] interface.
// Outlines are drawn with line width [paint.OutlineWidth], scaled like the
// coordinates.
func (im *Image) DrawPolygon(pts []vec.Vec2, style paint.Style, c color.Color) {
	im.prepare()
	switch style {
	case paint.Fill:
		im.r.FillPolygon(pts, NonZero, im.emit)
	default:
		im.r.Fill(Outline(pts, paint.OutlineWidth), NonZero, im.emit)
	}
	im.composite(c)
}

// DrawText implements the [paint.Canvas] interface.
// If the text cannot be converted to outlines, nothing is drawn and the
// error is reported by [Image.Err].
func (im *Image) DrawText(text string, at vec.Vec2, size float64, c color.Color) {
	face := im.Face
	if face == nil {
		face = glyph.Default()
	}
	outline, err := face.Outline(text, size, at)
	if err != nil {
		if im.err == nil {
			im.err = err
		}
		return
	}
	im.FillPath(outline, NonZero, c)
}

// FillPath fills an arbitrary user-space path.
func (im *Image) FillPath(p *path.Data, rule Rule, c color.Color) {
	im.prepare()
	im.r.Fill(p, rule, im.emit)
	im.composite(c)
}

// Err returns the first error encountered while drawing text.
func (im *Image) Err() error {
	return im.err
}

func (im *Image) prepare() {
	s := im.Scale
	if !(s > 0) {
		s = 1
	}
	im.r.CTM = matrix.Matrix{s, 0, 0, s, 0, 0}
	im.dirty = image.Rectangle{}
}

// emit stores one row of coverage in the mask.
func (im *Image) emit(y, x int, coverage []float32) {
	row := im.mask.Pix[im.mask.PixOffset(x, y):]
	for i, c := range coverage {
		row[i] = uint8(min(c, 1)*255 + 0.5)
	}
	im.dirty = im.dirty.Union(image.Rect(x, y, x+len(coverage), y+1))
}

// composite paints c through the mask and clears the used part of the
// mask again.
func (im *Image) composite(c color.Color) {
	if im.dirty.Empty() {
		return
	}
	draw.DrawMask(im.Dst, im.dirty, image.NewUniform(c), image.Point{}, im.mask, im.dirty.Min, draw.Over)

	for y := im.dirty.Min.Y; y < im.dirty.Max.Y; y++ {
		i := im.mask.PixOffset(im.dirty.Min.X, y)
		clear(im.mask.Pix[i : i+im.dirty.Dx()])
	}
}
