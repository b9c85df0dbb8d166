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


package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/gauge/internal/errors"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"debug":   DebugLevel,
		"INFO":    InfoLevel,
		"warn":    WarnLevel,
		"warning": WarnLevel,
		" error ": ErrorLevel,
		"fatal":   FatalLevel,
	}
	for in, expected := range cases {
		level, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, expected, level, in)
	}

	_, err := ParseLevel("verbose")
	assert.Equal(t, errors.ErrInvalidLogLevel, errors.CodeOf(err))
}

func TestInitWriter(t *testing.T) {
	defer SetLogLevel(WarnLevel)

	var buf bytes.Buffer
	InitWriter(&buf, InfoLevel, true)

	Debug().Msg("hidden")
	Info().Str("file", "gauge.png").Msg("written")
	raster := WithComponent("raster")
	raster.Warn().Msg("slow")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "written")
	assert.Contains(t, out, "gauge.png")
	assert.Contains(t, out, "raster")
}

func TestErrorWithCode(t *testing.T) {
	defer SetLogLevel(WarnLevel)

	var buf bytes.Buffer
	InitWriter(&buf, ErrorLevel, true)

	ErrorWithCode(errors.New(errors.ErrWriteOutput)).Msg("render failed")
	assert.Contains(t, buf.String(), string(errors.ErrWriteOutput))
}
