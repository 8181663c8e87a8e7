/*
 * errors.go, part of goslab.
 *
 * Copyright 2026 The goslab authors
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

package slab

import "fmt"

// Errorer is the interface for errors in this library. The Decorate method
// allows adding information to an error as it travels up the call stack,
// without changing its type or wrapping it in something else. Critical
// distinguishes errors that invalidate a whole run from conditions the
// caller may choose to absorb.
type Errorer interface {
	Error() string
	Decorate(string) []string
	Critical() bool
}

// Error is the concrete error used throughout the library.
type Error struct {
	message  string
	deco     []string
	critical bool
}

// NewError builds an Error with the given message and criticality. The caller
// name, if not empty, becomes the first element of the decoration slice.
func NewError(message, caller string, critical bool) Error {
	var deco []string
	if caller != "" {
		deco = []string{caller}
	}
	return Error{message, deco, critical}
}

// Error returns the error message.
func (err Error) Error() string {
	return fmt.Sprintf("%s", err.message)
}

// Decorate adds dec to the decoration slice of the error (if dec is not
// empty) and returns the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical returns whether the error is critical or can be absorbed by the
// caller.
func (err Error) Critical() bool { return err.critical }

// ErrDecorate asserts that err implements Errorer and decorates it with the
// caller's name before returning it. It panics when used on anything that is
// not an Errorer.
func ErrDecorate(err error, caller string) error {
	err2 := err.(Errorer)
	err2.Decorate(caller)
	return err2
}

// InvalidConfig builds the critical error used for out-of-range pipeline
// parameters. These surface immediately and are never retried.
func InvalidConfig(what string, value float64, caller string) error {
	return Error{fmt.Sprintf("goslab: invalid configuration: %s = %g", what, value), []string{caller}, true}
}

// PanicMsg is the type used for the messages of panics raised by the
// fundamental accessors. It satisfies the error interface so it can be
// recovered into one.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }
