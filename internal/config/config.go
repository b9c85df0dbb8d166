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


// Package config loads the settings of the gauge command line tool from
// flags, environment variables and an optional configuration file.
//
// Flags take precedence over environment variables (prefix GAUGE_), which
// take precedence over the configuration file. The file is given by
// --config or GAUGE_CONFIG; otherwise gauge.toml or gauge.yaml is looked
// up in the current directory and in $HOME/.config/gauge.
package config

import (
	"image/color"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/image/colornames"

	"seehuhn.de/go/gauge"
	"seehuhn.de/go/gauge/internal/errors"
	"seehuhn.de/go/gauge/internal/logger"
)

// Config holds the settings for one rendering run.
type Config struct {
	Gauge gauge.Config

	Width, Height float64 // gauge size in user-space units
	Scale         float64 // pixels per unit, for PNG output
	Value         float64
	Output        string
	Background    color.Color // nil means transparent
	Font          string      // TrueType or OpenType file for labels, "" for Go Regular
	LogLevel      logger.LogLevel

	// ConfigFile is the configuration file used, if any.
	ConfigFile string
}

// Format returns the output format, derived from the file name extension.
func (c *Config) Format() string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(c.Output)), ".")
}

const envPrefix = "GAUGE"

// Load parses args (without the program name) and merges the result with
// the environment and the configuration file.
// If args contains -h or --help, the returned error is [pflag.ErrHelp].
func Load(args []string) (*Config, error) {
	v := viper.New()
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil, err
		}
		return nil, errors.Wrap(errors.ErrInvalidArgument, err)
	}
	if err := v.BindPFlags(fs); err != nil {
		return nil, errors.Wrap(errors.ErrBindFlags, err)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := readConfigFile(v); err != nil {
		return nil, err
	}

	return fromViper(v)
}

// Usage returns the help text for all flags.
func Usage() string {
	return newFlagSet().FlagUsages()
}

func newFlagSet() *pflag.FlagSet {
	def := gauge.DefaultConfig()

	fs := pflag.NewFlagSet("gauge", pflag.ContinueOnError)
	fs.SortFlags = false
	fs.SetOutput(io.Discard)

	fs.String("config", "", "configuration file (TOML or YAML)")
	fs.StringP("output", "o", "gauge.png", "output file, .png or .pdf")
	fs.Float64("width", 300, "gauge width")
	fs.Float64("height", 300, "gauge height")
	fs.Float64("scale", 1, "pixels per unit for PNG output")
	fs.Float64("value", 0, "current value")
	fs.String("log-level", logger.DefaultLevel, "log level: debug, info, warn or error")

	fs.Float64("max-value", def.MaxValue, "value at the end of the dial")
	fs.Int("ticks", def.TotalTicks, "number of tick intervals")
	fs.Float64("tick-length", def.TickLength, "tick length")
	fs.Float64("tick-thickness", def.TickThickness, "tick thickness")
	fs.Float64("corner-radius", def.CornerRadius, "radius of the dial corner")
	fs.Float64("padding", def.Padding, "extra space at the left and top")
	fs.Float64("label-margin", 0, "space at the right and bottom (default: half the font size)")
	fs.Float64("font-size", def.LabelFontSize, "label font size")
	fs.String("font", "", "TrueType or OpenType font file for labels (default: Go Regular)")
	fs.String("color", "black", "color of outlines and labels")
	fs.String("filled-color", "", "color of filled ticks (default: --color)")
	fs.String("pointer-color", "", "color of the pointer (default: --color)")
	fs.String("background", "white", "background color, or \"none\"")
	return fs
}

func readConfigFile(v *viper.Viper) error {
	if fname := v.GetString("config"); fname != "" {
		v.SetConfigFile(fname)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrap(errors.ErrReadConfig, err)
		}
		return nil
	}

	v.SetConfigName("gauge")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/gauge")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return errors.Wrap(errors.ErrReadConfig, err)
		}
	}
	return nil
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Width:      v.GetFloat64("width"),
		Height:     v.GetFloat64("height"),
		Scale:      v.GetFloat64("scale"),
		Value:      v.GetFloat64("value"),
		Output:     v.GetString("output"),
		Font:       v.GetString("font"),
		ConfigFile: v.ConfigFileUsed(),
	}

	level, err := logger.ParseLevel(v.GetString("log-level"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	g := gauge.Config{
		MaxValue:      v.GetFloat64("max-value"),
		TotalTicks:    v.GetInt("ticks"),
		TickLength:    v.GetFloat64("tick-length"),
		TickThickness: v.GetFloat64("tick-thickness"),
		CornerRadius:  v.GetFloat64("corner-radius"),
		Padding:       v.GetFloat64("padding"),
		LabelFontSize: v.GetFloat64("font-size"),
	}
	if v.IsSet("label-margin") {
		m := v.GetFloat64("label-margin")
		g.LabelMargin = &m
	}

	colors := []struct {
		key string
		dst *color.Color
	}{
		{"color", &g.Color},
		{"filled-color", &g.FilledColor},
		{"pointer-color", &g.PointerColor},
		{"background", &cfg.Background},
	}
	for _, c := range colors {
		col, err := ParseColor(v.GetString(c.key))
		if err != nil {
			return nil, err.WithMessage("Invalid color for " + c.key)
		}
		*c.dst = col
	}
	cfg.Gauge = g

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings.
func (c *Config) Validate() error {
	if err := c.Gauge.Validate(); err != nil {
		return errors.Wrap(errors.ErrInvalidConfig, err)
	}
	if !(c.Width > 0) || !(c.Height > 0) || math.IsInf(c.Width, 0) || math.IsInf(c.Height, 0) {
		return errors.WithData(errors.ErrInvalidConfig, "width and height must be positive")
	}
	if !(c.Scale > 0) {
		return errors.WithData(errors.ErrInvalidConfig, "scale must be positive")
	}
	if math.IsNaN(c.Value) {
		return errors.WithData(errors.ErrInvalidConfig, "value is not a number")
	}
	switch c.Format() {
	case "png", "pdf":
	default:
		return errors.WithData(errors.ErrUnsupportedFormat, c.Output)
	}
	return nil
}

// ParseColor converts an SVG color name or a hex color ("#rgb",
// "#rrggbb" or "#rrggbbaa") to a color. The empty string and "none" give
// nil.
func ParseColor(s string) (color.Color, errors.Error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "none" {
		return nil, nil
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}

	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return nil, errors.WithData(errors.ErrInvalidColor, s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return nil, errors.WithData(errors.ErrInvalidColor, s)
	}
	x, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, errors.WithData(errors.ErrInvalidColor, s)
	}
	return color.NRGBA{
		R: uint8(x >> 24),
		G: uint8(x >> 16),
		B: uint8(x >> 8),
		A: uint8(x),
	}, nil
}
