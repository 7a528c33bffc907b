/*
 * errors.go, part of xvgplot
 *
 * Copyright 2025 Raul Mera A. (rmeraaatacademicosdotutadotcl)
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package xvg

import (
	"errors"
	"fmt"
)

// Kinds of errors returned by this package. Use errors.Is on any error
// returned by Parse or RunningAverage.
var (
	ErrFileNotFound    = errors.New("file not readable")
	ErrUnsupportedType = errors.New("chart type unsupported")
	ErrFormat          = errors.New("wrong format")
	ErrWindow          = errors.New("invalid window")
)

// Error is the error type for the xvg package. It keeps the name of the
// offending file and a list of "decorations", the functions the error went
// through on its way up.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
	kind     error
}

func (err Error) Error() string {
	if err.filename == "" {
		return fmt.Sprintf("xvg: %s", err.message)
	}
	return fmt.Sprintf("xvg file %s error: %s", err.filename, err.message)
}

//Decorate Adds new information to the error and returns
//the current decorations. An empty deco adds nothing.
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the file to which the error was associated
func (err Error) FileName() string { return err.filename }

// Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

// Unwrap returns the kind of the error, one of the Err* variables.
func (err Error) Unwrap() error { return err.kind }

func newError(kind error, filename, function, format string, args ...interface{}) Error {
	return Error{
		message:  fmt.Sprintf(format, args...),
		filename: filename,
		deco:     []string{function},
		critical: true,
		kind:     kind,
	}
}

//errDecorate adds deco to err if err is an Error,
//and returns err.
func errDecorate(err error, deco string) error {
	var e Error
	if errors.As(err, &e) {
		e.deco = append(e.deco, deco)
		return e
	}
	return err
}
