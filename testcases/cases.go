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
	"image/color"

	"golang.org/x/image/colornames"

	"seehuhn.de/go/gauge"
)

var defaultCases = []TestCase{
	{
		Name:   "empty",
		Width:  300,
		Height: 300,
		Config: gauge.DefaultConfig(),
		Value:  0,
	},
	{
		Name:   "half",
		Width:  300,
		Height: 300,
		Config: gauge.DefaultConfig(),
		Value:  25,
	},
	{
		Name:   "full",
		Width:  300,
		Height: 300,
		Config: gauge.DefaultConfig(),
		Value:  50,
	},
	{
		Name:   "wide",
		Width:  480,
		Height: 200,
		Config: gauge.DefaultConfig(),
		Value:  33,
	},
	{
		Name:   "tall",
		Width:  200,
		Height: 480,
		Config: gauge.DefaultConfig(),
		Value:  12.5,
	},
	{
		Name:   "colors",
		Width:  300,
		Height: 300,
		Config: with(func(c *gauge.Config) {
			c.Color = colornames.Slategray
			c.FilledColor = colornames.Orangered
			c.PointerColor = color.RGBA{R: 0x20, G: 0x60, B: 0xc0, A: 0xff}
		}),
		Value: 40,
	},
}

var tickCases = []TestCase{
	{
		Name:   "ticks_10",
		Width:  300,
		Height: 300,
		Config: with(func(c *gauge.Config) { c.TotalTicks = 10; c.MaxValue = 10 }),
		Value:  7,
	},
	{
		Name:   "ticks_100",
		Width:  400,
		Height: 400,
		Config: with(func(c *gauge.Config) { c.TotalTicks = 100; c.MaxValue = 100; c.TickThickness = 2 }),
		Value:  64,
	},
	{
		Name:   "ticks_7",
		Width:  300,
		Height: 300,
		Config: with(func(c *gauge.Config) { c.TotalTicks = 7; c.MaxValue = 70 }),
		Value:  35,
	},
	{
		Name:   "short_ticks",
		Width:  300,
		Height: 300,
		Config: with(func(c *gauge.Config) { c.TickLength = 10 }),
		Value:  20,
	},
	{
		Name:   "thick_ticks",
		Width:  300,
		Height: 300,
		Config: with(func(c *gauge.Config) { c.TotalTicks = 20; c.MaxValue = 20; c.TickThickness = 12 }),
		Value:  11,
	},
	{
		// filled exactly up to a tick
		Name:   "boundary",
		Width:  300,
		Height: 300,
		Config: gauge.DefaultConfig(),
		Value:  30,
	},
}

var cornerCases = []TestCase{
	{
		Name:   "no_corner",
		Width:  300,
		Height: 300,
		Config: with(func(c *gauge.Config) { c.CornerRadius = 0 }),
		Value:  25,
	},
	{
		Name:   "large_corner",
		Width:  300,
		Height: 300,
		Config: with(func(c *gauge.Config) { c.CornerRadius = 150 }),
		Value:  25,
	},
	{
		// the left line is shorter than the corner, so the dial starts
		// with a short downward piece
		Name:   "short_left",
		Width:  360,
		Height: 120,
		Config: gauge.DefaultConfig(),
		Value:  10,
	},
	{
		Name:   "padding",
		Width:  300,
		Height: 300,
		Config: with(func(c *gauge.Config) { c.Padding = 20 }),
		Value:  25,
	},
}

var labelCases = []TestCase{
	{
		Name:   "large_font",
		Width:  320,
		Height: 320,
		Config: with(func(c *gauge.Config) { c.LabelFontSize = 32 }),
		Value:  25,
	},
	{
		Name:   "label_margin",
		Width:  300,
		Height: 300,
		Config: with(func(c *gauge.Config) { c.LabelMargin = ptr(30) }),
		Value:  25,
	},
	{
		Name:   "no_margin",
		Width:  300,
		Height: 300,
		Config: with(func(c *gauge.Config) { c.LabelMargin = ptr(0) }),
		Value:  25,
	},
	{
		Name:   "labels_45",
		Width:  300,
		Height: 300,
		Config: with(func(c *gauge.Config) { c.TotalTicks = 45; c.MaxValue = 45 }),
		Value:  45,
	},
}

var degenerateCases = []TestCase{
	{
		Name:     "zero_width",
		Width:    0,
		Height:   300,
		Config:   gauge.DefaultConfig(),
		NotReady: true,
	},
	{
		Name:     "negative_height",
		Width:    300,
		Height:   -10,
		Config:   gauge.DefaultConfig(),
		NotReady: true,
	},
	{
		Name:   "zero_max",
		Width:  300,
		Height: 300,
		Config: with(func(c *gauge.Config) { c.MaxValue = 0 }),
		Value:  10,
	},
	{
		Name:   "no_ticks",
		Width:  300,
		Height: 300,
		Config: with(func(c *gauge.Config) { c.TotalTicks = 0 }),
		Value:  25,
	},
	{
		Name:   "value_above_max",
		Width:  300,
		Height: 300,
		Config: gauge.DefaultConfig(),
		Value:  1000,
	},
	{
		Name:   "value_below_zero",
		Width:  300,
		Height: 300,
		Config: gauge.DefaultConfig(),
		Value:  -5,
	},
	{
		Name:   "tiny",
		Width:  20,
		Height: 20,
		Config: gauge.DefaultConfig(),
		Value:  25,
	},
}
