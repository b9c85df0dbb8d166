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

// Package gauge computes the geometry of an analog-style gauge.
//
// The gauge face is a dial path made of a vertical line, a quarter circle
// and a horizontal line. Ticks are spaced evenly by arc length along the
// dial and point outward; a triangular pointer sits inside the dial at the
// position of the current value.
//
// A [Gauge] caches the dial path and its arc-length measure, which are
// rebuilt by [Gauge.Resize] and [Gauge.Reconfigure]. Tick and pointer
// geometry is recomputed by every call to [Gauge.Render].
package gauge

import (
	"math"

	"github.com/rs/zerolog"

	"seehuhn.de/go/gauge/measure"
)

// Gauge holds the state of one gauge.
//
// A Gauge is not safe for concurrent use.
type Gauge struct {
	cfg   Config
	value float64

	width, height float64

	// dial and measure are rebuilt together; both are nil while the
	// layout is not ready.
	dial    *Dial
	measure *measure.Measure

	log zerolog.Logger
}

// New returns a gauge with the given configuration and value 0.
// The gauge is not ready for rendering until [Gauge.Resize] has been
// called with a positive size.
func New(cfg Config) *Gauge {
	return &Gauge{
		cfg: cfg,
		log: zerolog.Nop(),
	}
}

// SetLogger sets the logger used for debug messages.
func (g *Gauge) SetLogger(l zerolog.Logger) {
	g.log = l
}

// Config returns the current configuration.
func (g *Gauge) Config() Config {
	return g.cfg
}

// Reconfigure replaces the configuration. The current value is clamped to
// the new range, and the dial path is rebuilt if any of its inputs changed.
func (g *Gauge) Reconfigure(cfg Config) {
	old := g.cfg.dialKey()
	g.cfg = cfg
	g.value = clampValue(g.value, cfg.MaxValue)
	if g.dial == nil || cfg.dialKey() != old {
		g.rebuild()
	}
}

// Resize sets the size of the gauge and rebuilds the dial path.
// If width or height is not positive, the gauge becomes not ready.
func (g *Gauge) Resize(width, height float64) {
	g.width = width
	g.height = height
	g.rebuild()
}

// Size returns the size set by the last call to [Gauge.Resize].
func (g *Gauge) Size() (width, height float64) {
	return g.width, g.height
}

// SetValue sets the current value, clamped to [0, MaxValue].
func (g *Gauge) SetValue(v float64) {
	g.value = clampValue(v, g.cfg.MaxValue)
}

// Value returns the current value.
func (g *Gauge) Value() float64 {
	return g.value
}

// Ready reports whether the gauge has a dial path and can be rendered.
func (g *Gauge) Ready() bool {
	return g.dial != nil
}

// Dial returns the current dial path, or nil if the gauge is not ready.
func (g *Gauge) Dial() *Dial {
	return g.dial
}

// PathLength returns the arc length of the dial path,
// or 0 if the gauge is not ready.
func (g *Gauge) PathLength() float64 {
	if g.measure == nil {
		return 0
	}
	return g.measure.Length()
}

// rebuild recomputes the dial path and its measure from the current size
// and configuration.
func (g *Gauge) rebuild() {
	dial, ok := BuildDial(g.width, g.height, &g.cfg)
	if !ok {
		g.dial = nil
		g.measure = nil
		g.log.Debug().
			Float64("width", g.width).
			Float64("height", g.height).
			Msg("layout not ready, dial dropped")
		return
	}

	g.dial = dial
	g.measure = measure.New(dial.Path())
	g.log.Debug().
		Float64("width", g.width).
		Float64("height", g.height).
		Int("segments", len(dial.Segments)).
		Float64("length", g.measure.Length()).
		Msg("dial rebuilt")
}

// clampValue restricts v to [0, maxValue]. NaN values become 0, and a
// non-positive maximum leaves only 0.
func clampValue(v, maxValue float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	hi := 0.0
	if maxValue > 0 {
		hi = maxValue
	}
	return min(max(v, 0), hi)
}
