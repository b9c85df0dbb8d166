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


// Package testcases is a catalogue of gauge scenarios, used by the tests
// of several packages and by the reference image generator.
package testcases

import (
	"seehuhn.de/go/gauge"
)

// TestCase is one gauge configuration, size and value.
type TestCase struct {
	Name   string // lowercase a-z, 0-9 and _ only
	Width  float64
	Height float64
	Config gauge.Config
	Value  float64

	// NotReady is set for cases where the layout cannot be built.
	NotReady bool
}

// Gauge returns a gauge set up for the test case.
func (tc *TestCase) Gauge() *gauge.Gauge {
	g := gauge.New(tc.Config)
	g.Resize(tc.Width, tc.Height)
	g.SetValue(tc.Value)
	return g
}

// with returns the default configuration, modified by f.
func with(f func(c *gauge.Config)) gauge.Config {
	c := gauge.DefaultConfig()
	f(&c)
	return c
}

func ptr(x float64) *float64 {
	return &x
}
