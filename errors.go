/*
 * errors.go, part of golattice.
 *
 * Copyright 2026 The golattice Authors
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

package lattice

import (
	"errors"
	"fmt"
	"strings"
)

//Sentinel errors. Every error returned by this package wraps one of them,
//so callers can tell the kinds apart with errors.Is.
var (
	//ErrTypeConversion is returned when a value can't be converted to a float.
	ErrTypeConversion = errors.New("lattice: value not convertible to float")

	//ErrCardinality is returned when the number of spacings or angles is wrong.
	ErrCardinality = errors.New("lattice: wrong number of values")

	//ErrConstraintViolation is returned when a symmetry or geometric constraint is broken.
	ErrConstraintViolation = errors.New("lattice: constraint violated")

	//ErrKeyCountMismatch is returned when a compound map has the wrong number of keys.
	ErrKeyCountMismatch = errors.New("lattice: wrong number of compound keys")

	//ErrInvalidType is returned when a compound map (or one of its values) is missing.
	ErrInvalidType = errors.New("lattice: invalid compound map")

	//ErrUnknownLabel is returned when a compound map uses labels absent from the basis.
	ErrUnknownLabel = errors.New("lattice: unknown basis label")

	//ErrReplicationCount is returned when a tiling count is smaller than 1.
	ErrReplicationCount = errors.New("lattice: replication counts must be positive")

	//ErrFormat is returned when a coordinate file can't be parsed.
	ErrFormat = errors.New("lattice: ill-formatted file")
)

//Error is the error type of the package. Besides a message that names the offending value and
//the expected shape, it carries a "decoration": the list of functions that passed the error up.
type Error struct {
	message string
	kind    error
	deco    []string
}

//newError builds an Error of the given kind, decorated with the caller's name.
func newError(kind error, caller, format string, a ...any) *Error {
	return &Error{message: fmt.Sprintf(format, a...), kind: kind, deco: []string{caller}}
}

//Error returns the message of the error, prefixed with the innermost function
//that produced it.
func (err *Error) Error() string {
	if len(err.deco) == 0 {
		return err.message
	}
	return fmt.Sprintf("%s: %s", err.deco[0], err.message)
}

//Unwrap returns the sentinel for the kind of error.
func (err *Error) Unwrap() error { return err.kind }

//Decorate adds dec to the decoration slice of the error and returns the resulting slice.
//If passed an empty string, it just returns the current value.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Trace returns the decoration as a single string, outermost caller first.
func (err *Error) Trace() string {
	r := make([]string, len(err.deco))
	for i, v := range err.deco {
		r[len(err.deco)-1-i] = v
	}
	return strings.Join(r, " > ")
}

//errDecorate decorates err with the caller's name if it is an *Error,
//and returns it unchanged otherwise.
func errDecorate(err error, caller string) error {
	var e *Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}
