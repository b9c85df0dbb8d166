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


package errors

// ErrorCode identifies the kind of an error.
type ErrorCode string

// Error is an error with a code and optional context data.
type Error interface {
	error
	Code() ErrorCode
	WithMessage(msg string) Error
	WithData(data any) Error
	GetData() any
	Unwrap() error
}

// Error codes
const (
	ErrInternal        ErrorCode = "internal_error"
	ErrInvalidArgument ErrorCode = "invalid_argument"

	// configuration
	ErrInvalidConfig   ErrorCode = "invalid_configuration"
	ErrReadConfig      ErrorCode = "read_config_failed"
	ErrBindFlags       ErrorCode = "bind_flags_failed"
	ErrInvalidColor    ErrorCode = "invalid_color"
	ErrInvalidLogLevel ErrorCode = "invalid_log_level"

	// rendering
	ErrLoadFont          ErrorCode = "load_font_failed"
	ErrLayoutNotReady    ErrorCode = "layout_not_ready"
	ErrRenderFailed      ErrorCode = "render_failed"
	ErrUnsupportedFormat ErrorCode = "unsupported_format"
	ErrWriteOutput       ErrorCode = "write_output_failed"
)

var errorMessages = map[ErrorCode]string{
	ErrInternal:          "Internal error occurred",
	ErrInvalidArgument:   "Invalid argument provided",
	ErrInvalidConfig:     "Invalid configuration",
	ErrReadConfig:        "Failed to read configuration",
	ErrBindFlags:         "Failed to bind flags",
	ErrInvalidColor:      "Invalid color",
	ErrInvalidLogLevel:   "Invalid log level",
	ErrLoadFont:          "Failed to load font",
	ErrLayoutNotReady:    "Gauge layout is not ready",
	ErrRenderFailed:      "Failed to render gauge",
	ErrUnsupportedFormat: "Unsupported output format",
	ErrWriteOutput:       "Failed to write output",
}

// GetErrorMessage returns the default message for a given error code.
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return string(code)
}
