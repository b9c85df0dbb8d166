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


// Command gauge renders an analog gauge to a PNG or PDF file.
//
// Usage:
//
//	gauge [flags]
//
// Settings are read from flags, from GAUGE_* environment variables and
// from an optional configuration file; run "gauge --help" for the list.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"seehuhn.de/go/gauge"
	"seehuhn.de/go/gauge/internal/config"
	"seehuhn.de/go/gauge/internal/errors"
	"seehuhn.de/go/gauge/internal/logger"
	"seehuhn.de/go/gauge/internal/output"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err == pflag.ErrHelp {
		fmt.Fprintf(os.Stderr, "usage: gauge [flags]\n\n%s", config.Usage())
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "gauge: %v\n", err)
		os.Exit(2)
	}

	logger.Init(cfg.LogLevel, logger.IsService())
	if cfg.ConfigFile != "" {
		logger.Debug().Str("file", cfg.ConfigFile).Msg("configuration loaded")
	}

	if err := run(cfg); err != nil {
		logger.ErrorWithCode(errors.Coded(err)).Msg("rendering failed")
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	face, err := output.LoadFace(cfg.Font)
	if err != nil {
		return err
	}
	logger.Debug().Str("family", face.Name()).Msg("label font")

	g := gauge.New(cfg.Gauge)
	g.SetLogger(logger.WithComponent("gauge"))
	g.Resize(cfg.Width, cfg.Height)
	g.SetValue(cfg.Value)
	if g.Value() != cfg.Value {
		logger.Warn().
			Float64("requested", cfg.Value).
			Float64("shown", g.Value()).
			Msg("value out of range, clamped")
	}

	opt := &output.Options{
		Scale:      cfg.Scale,
		Background: cfg.Background,
		Face:       face,
	}
	if err := output.Write(cfg.Output, cfg.Format(), g, opt); err != nil {
		return err
	}
	logger.Info().
		Str("file", cfg.Output).
		Float64("value", g.Value()).
		Float64("length", g.PathLength()).
		Msg("gauge written")
	return nil
}
