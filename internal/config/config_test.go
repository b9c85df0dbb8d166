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


package config_test

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"

	"seehuhn.de/go/gauge"
	"seehuhn.de/go/gauge/internal/config"
	"seehuhn.de/go/gauge/internal/errors"
	"seehuhn.de/go/gauge/internal/logger"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fname, []byte(content), 0o600))
	return fname
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GAUGE_CONFIG", "")

	cfg, err := config.Load(nil)
	require.NoError(t, err)

	def := gauge.DefaultConfig()
	assert.Equal(t, def.MaxValue, cfg.Gauge.MaxValue)
	assert.Equal(t, def.TotalTicks, cfg.Gauge.TotalTicks)
	assert.Equal(t, def.TickLength, cfg.Gauge.TickLength)
	assert.Equal(t, def.TickThickness, cfg.Gauge.TickThickness)
	assert.Equal(t, def.CornerRadius, cfg.Gauge.CornerRadius)
	assert.Equal(t, def.LabelFontSize, cfg.Gauge.LabelFontSize)
	assert.Nil(t, cfg.Gauge.LabelMargin, "label margin should follow the font size")
	assert.Nil(t, cfg.Gauge.FilledColor)
	assert.Equal(t, colornames.Black, cfg.Gauge.Color)
	assert.Equal(t, colornames.White, cfg.Background)

	assert.Equal(t, 300.0, cfg.Width)
	assert.Equal(t, 300.0, cfg.Height)
	assert.Equal(t, 1.0, cfg.Scale)
	assert.Equal(t, "gauge.png", cfg.Output)
	assert.Equal(t, "png", cfg.Format())
	assert.Equal(t, logger.WarnLevel, cfg.LogLevel)
	assert.Empty(t, cfg.Font)
	assert.Empty(t, cfg.ConfigFile)
}

func TestLoadFile(t *testing.T) {
	fname := writeFile(t, "gauge.toml", `
max-value = 100
ticks = 20
label-margin = 4
color = "navy"
filled-color = "#ff8000"
background = "none"
output = "out.pdf"
log-level = "debug"
font = "/usr/share/fonts/label.ttf"
`)

	cfg, err := config.Load([]string{"--config", fname})
	require.NoError(t, err)

	assert.Equal(t, fname, cfg.ConfigFile)
	assert.Equal(t, 100.0, cfg.Gauge.MaxValue)
	assert.Equal(t, 20, cfg.Gauge.TotalTicks)
	require.NotNil(t, cfg.Gauge.LabelMargin)
	assert.Equal(t, 4.0, *cfg.Gauge.LabelMargin)
	assert.Equal(t, colornames.Navy, cfg.Gauge.Color)
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0x80, A: 0xff}, cfg.Gauge.FilledColor)
	assert.Nil(t, cfg.Background)
	assert.Equal(t, "pdf", cfg.Format())
	assert.Equal(t, logger.DebugLevel, cfg.LogLevel)
	assert.Equal(t, "/usr/share/fonts/label.ttf", cfg.Font)
}

func TestLoadYAML(t *testing.T) {
	fname := writeFile(t, "gauge.yaml", "ticks: 25\ncorner-radius: 30\n")

	cfg, err := config.Load([]string{"--config=" + fname})
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Gauge.TotalTicks)
	assert.Equal(t, 30.0, cfg.Gauge.CornerRadius)
}

func TestPrecedence(t *testing.T) {
	fname := writeFile(t, "gauge.toml", "ticks = 20\nmax-value = 80\nwidth = 400\n")
	t.Setenv("GAUGE_CONFIG", fname)
	t.Setenv("GAUGE_MAX_VALUE", "90")

	cfg, err := config.Load([]string{"--ticks", "40"})
	require.NoError(t, err)

	assert.Equal(t, 40, cfg.Gauge.TotalTicks, "flag overrides file")
	assert.Equal(t, 90.0, cfg.Gauge.MaxValue, "environment overrides file")
	assert.Equal(t, 400.0, cfg.Width, "file overrides default")
}

func TestLoadErrors(t *testing.T) {
	t.Setenv("GAUGE_CONFIG", "")

	cases := []struct {
		name string
		args []string
		code errors.ErrorCode
	}{
		{"zero ticks", []string{"--ticks=0"}, errors.ErrInvalidConfig},
		{"negative max", []string{"--max-value=-1"}, errors.ErrInvalidConfig},
		{"zero width", []string{"--width=0"}, errors.ErrInvalidConfig},
		{"bad color", []string{"--color=chartreusish"}, errors.ErrInvalidColor},
		{"bad hex", []string{"--pointer-color=#12345"}, errors.ErrInvalidColor},
		{"bad format", []string{"-o", "gauge.gif"}, errors.ErrUnsupportedFormat},
		{"bad log level", []string{"--log-level=loud"}, errors.ErrInvalidLogLevel},
		{"unknown flag", []string{"--frobnicate"}, errors.ErrInvalidArgument},
		{"missing file", []string{"--config=/nonexistent/gauge.toml"}, errors.ErrReadConfig},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(tc.args)
			require.Error(t, err)
			assert.Equal(t, tc.code, errors.CodeOf(err))
			assert.True(t, errors.Is(err, errors.New(tc.code)))
		})
	}
}

func TestLoadInvalidFile(t *testing.T) {
	fname := writeFile(t, "gauge.toml", "This is not a valid TOML file\n")
	_, err := config.Load([]string{"--config", fname})
	require.Error(t, err)
	assert.Equal(t, errors.ErrReadConfig, errors.CodeOf(err))
}

func TestHelp(t *testing.T) {
	_, err := config.Load([]string{"--help"})
	assert.ErrorIs(t, err, pflag.ErrHelp)
	assert.Contains(t, config.Usage(), "--tick-length")
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in  string
		out color.Color
	}{
		{"", nil},
		{"none", nil},
		{"Red", colornames.Red},
		{" steelblue ", colornames.Steelblue},
		{"#fff", color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{"#102030", color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}},
		{"#10203080", color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x80}},
	}
	for _, tc := range cases {
		c, err := config.ParseColor(tc.in)
		if assert.Nil(t, err, tc.in) {
			assert.Equal(t, tc.out, c, tc.in)
		}
	}

	for _, in := range []string{"#12", "#ggg", "blurple", "102030"} {
		_, err := config.ParseColor(in)
		assert.NotNil(t, err, in)
	}
}
