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


// Package errors provides error values with machine-readable codes for
// the command line tools.
package errors

import (
	"errors"
	"fmt"
)

// Basic error check functions from the standard library
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
)

type appError struct {
	code    ErrorCode
	message string
	err     error
	data    any
}

func (e *appError) Error() string {
	msg := e.message
	if msg == "" {
		msg = GetErrorMessage(e.code)
	}

	switch {
	case e.data != nil && e.err != nil:
		return fmt.Sprintf("%s: %v: %v", msg, e.data, e.err)
	case e.data != nil:
		return fmt.Sprintf("%s: %v", msg, e.data)
	case e.err != nil:
		return fmt.Sprintf("%s: %v", msg, e.err)
	}
	return msg
}

func (e *appError) Code() ErrorCode {
	return e.code
}

func (e *appError) WithMessage(msg string) Error {
	return &appError{
		code:    e.code,
		message: msg,
		err:     e.err,
		data:    e.data,
	}
}

func (e *appError) WithData(data any) Error {
	return &appError{
		code:    e.code,
		message: e.message,
		err:     e.err,
		data:    data,
	}
}

func (e *appError) GetData() any {
	return e.data
}

func (e *appError) Unwrap() error {
	return e.err
}

// Is reports whether target is an Error with the same code.
func (e *appError) Is(target error) bool {
	var t *appError
	if !errors.As(target, &t) {
		return false
	}
	return t.code == e.code && t.err == nil && t.data == nil && t.message == ""
}

// New returns an error with the given code.
func New(code ErrorCode) Error {
	return &appError{code: code}
}

// Wrap returns an error with the given code, wrapping err.
func Wrap(code ErrorCode, err error) Error {
	return &appError{code: code, err: err}
}

// WithMessage returns an error with the given code and message.
func WithMessage(code ErrorCode, msg string) Error {
	return &appError{code: code, message: msg}
}

// WithData returns an error with the given code and context data.
func WithData(code ErrorCode, data any) Error {
	return &appError{code: code, data: data}
}

// CodeOf returns the code of the first Error in the chain of err,
// or the empty string if there is none.
func CodeOf(err error) ErrorCode {
	var e Error
	if errors.As(err, &e) {
		return e.Code()
	}
	return ""
}

// Coded returns the first Error in the chain of err. Errors without a
// code are wrapped with ErrInternal.
func Coded(err error) Error {
	var e Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(ErrInternal, err)
}
