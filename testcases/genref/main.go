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


// Command genref renders every gauge scenario to reference files.
//
// For each scenario a PNG image and a PDF page are written, together with
// frames.json, which lists the computed tick and pointer geometry.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/pflag"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/gauge"
	"seehuhn.de/go/gauge/internal/errors"
	"seehuhn.de/go/gauge/internal/logger"
	"seehuhn.de/go/gauge/internal/output"
	"seehuhn.de/go/gauge/testcases"
)

func main() {
	refDir := pflag.StringP("output", "o", "testdata/reference", "output directory")
	scale := pflag.Float64("scale", 1, "pixels per unit for PNG images")
	pdf := pflag.Bool("pdf", true, "also write PDF files")
	verbose := pflag.BoolP("verbose", "v", false, "log every file written")
	pflag.Parse()

	level := logger.InfoLevel
	if *verbose {
		level = logger.DebugLevel
	}
	logger.Init(level, false)

	if err := os.MkdirAll(*refDir, 0o755); err != nil {
		logger.ErrorWithCode(errors.Wrap(errors.ErrWriteOutput, err)).Msg("cannot create output directory")
		os.Exit(1)
	}

	opt := &output.Options{Scale: *scale}
	var frames []jsonFrame
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			g := tc.Gauge()
			g.SetLogger(logger.WithComponent(name))

			frame, ok := g.Render()
			if !ok {
				logger.Debug().Str("case", name).Msg("layout not ready, skipped")
				continue
			}
			frames = append(frames, toJSON(name, g, frame))

			pngPath := filepath.Join(*refDir, name+".png")
			if err := output.PNG(pngPath, g, opt); err != nil {
				fail(name, err)
			}
			logger.Debug().Str("file", pngPath).Msg("written")

			if *pdf {
				pdfPath := filepath.Join(*refDir, name+".pdf")
				if err := output.PDF(pdfPath, g, opt); err != nil {
					fail(name, err)
				}
				logger.Debug().Str("file", pdfPath).Msg("written")
			}
		}
	}

	if err := writeFrames(filepath.Join(*refDir, "frames.json"), frames); err != nil {
		fail("frames.json", err)
	}
	logger.Info().Int("cases", len(frames)).Str("dir", *refDir).Msg("reference files written")
}

func fail(name string, err error) {
	var e errors.Error
	if !errors.As(err, &e) {
		e = errors.Wrap(errors.ErrWriteOutput, err)
	}
	logger.ErrorWithCode(e).Str("case", name).Msg("failed")
	os.Exit(1)
}

func writeFrames(fname string, frames []jsonFrame) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(frames)
}

type jsonFrame struct {
	Name       string        `json:"name"`
	Value      float64       `json:"value"`
	PathLength float64       `json:"path_length"`
	Dial       []jsonSegment `json:"dial"`
	Ticks      []jsonTick    `json:"ticks"`
	Pointer    [][]float64   `json:"pointer"`
}

type jsonTick struct {
	Distance float64     `json:"distance"`
	Value    float64     `json:"value"`
	Filled   bool        `json:"filled"`
	Polygon  [][]float64 `json:"polygon"`
	Label    string      `json:"label,omitempty"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(name string, g *gauge.Gauge, frame gauge.Frame) jsonFrame {
	jf := jsonFrame{
		Name:       name,
		Value:      g.Value(),
		PathLength: frame.PathLength,
		Dial:       pathToJSON(g.Dial().Path()),
		Pointer:    points(frame.Pointer.Polygon[:]),
	}
	for _, t := range frame.Ticks {
		jt := jsonTick{
			Distance: t.Distance,
			Value:    t.Value,
			Filled:   t.Filled,
			Polygon:  points(t.Polygon[:]),
		}
		if t.Label != nil {
			jt.Label = t.Label.Text
		}
		jf.Ticks = append(jf.Ticks, jt)
	}
	return jf
}

func pathToJSON(p *path.Data) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p.Iter() {
		seg := jsonSegment{Pts: points(pts)}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		segs = append(segs, seg)
	}
	return segs
}

func points(pts []vec.Vec2) [][]float64 {
	res := make([][]float64, len(pts))
	for i, p := range pts {
		res[i] = []float64{p.X, p.Y}
	}
	return res
}
