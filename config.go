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

package gauge

import (
	"errors"
	"fmt"
	"image/color"
)

// Config describes the appearance of a gauge.
// Lengths are in user-space units.
type Config struct {
	// MaxValue is the value at the end of the dial. Must be positive.
	MaxValue float64

	// TotalTicks is the number of tick intervals. The dial shows
	// TotalTicks+1 ticks. Must be positive.
	TotalTicks int

	// TickLength is the length of a tick, measured outward from the dial
	// path. The pointer size is derived from it.
	TickLength float64

	// TickThickness is the width of a tick along the dial path.
	TickThickness float64

	// CornerRadius is the radius of the rounded dial corner.
	CornerRadius float64

	// Padding is added to the tick length to give the distance between the
	// left and top edges and the dial path.
	Padding float64

	// LabelMargin is the distance between the bottom and right edges and
	// the ends of the dial path. If nil, LabelFontSize/2 is used.
	LabelMargin *float64

	// LabelFontSize is the font size of the tick labels.
	LabelFontSize float64

	// Color is used for outlined ticks and labels.
	// If nil, black is used.
	Color color.Color

	// FilledColor is used for ticks at or below the current value.
	// If nil, Color is used.
	FilledColor color.Color

	// PointerColor is used for the pointer. If nil, Color is used.
	PointerColor color.Color
}

// DefaultConfig returns the default gauge configuration.
func DefaultConfig() Config {
	return Config{
		MaxValue:      50,
		TotalTicks:    50,
		TickLength:    24,
		TickThickness: 5,
		CornerRadius:  60,
		Padding:       0,
		LabelFontSize: 20,
	}
}

// ArrowLength returns the length of the pointer arrow.
func (c *Config) ArrowLength() float64 {
	return c.TickLength * 1.2
}

// ArrowWidth returns the width of the pointer arrow at its base.
func (c *Config) ArrowWidth() float64 {
	return c.TickLength * 0.4
}

// labelInset returns the distance between the bottom and right edges and
// the ends of the dial path.
func (c *Config) labelInset() float64 {
	if c.LabelMargin != nil {
		return *c.LabelMargin
	}
	return c.LabelFontSize / 2
}

func (c *Config) color() color.Color {
	if c.Color != nil {
		return c.Color
	}
	return color.Black
}

func (c *Config) filledColor() color.Color {
	if c.FilledColor != nil {
		return c.FilledColor
	}
	return c.color()
}

func (c *Config) pointerColor() color.Color {
	if c.PointerColor != nil {
		return c.PointerColor
	}
	return c.color()
}

// dialKey collects the fields which determine the dial path.
type dialKey struct {
	padding, cornerRadius, tickLength, labelInset float64
}

func (c *Config) dialKey() dialKey {
	return dialKey{
		padding:      c.Padding,
		cornerRadius: c.CornerRadius,
		tickLength:   c.TickLength,
		labelInset:   c.labelInset(),
	}
}

// ErrInvalidConfig is wrapped by the errors returned from [Config.Validate].
var ErrInvalidConfig = errors.New("invalid gauge configuration")

// Validate checks the configuration for values a gauge cannot display
// meaningfully. A Gauge accepts any configuration; Validate is for callers
// which read configurations from external sources.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, field string, value any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s=%v", ErrInvalidConfig, field, value))
		}
	}
	check(c.MaxValue > 0, "MaxValue", c.MaxValue)
	check(c.TotalTicks > 0, "TotalTicks", c.TotalTicks)
	check(c.TickLength > 0, "TickLength", c.TickLength)
	check(c.TickThickness > 0, "TickThickness", c.TickThickness)
	check(c.CornerRadius >= 0, "CornerRadius", c.CornerRadius)
	check(c.Padding >= 0, "Padding", c.Padding)
	check(c.LabelFontSize > 0, "LabelFontSize", c.LabelFontSize)
	if c.LabelMargin != nil {
		check(*c.LabelMargin >= 0, "LabelMargin", *c.LabelMargin)
	}
	return errors.Join(errs...)
}
