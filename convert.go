/*
 * convert.go, part of golattice.
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
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"
)

//toFloat converts v to a float64. Go numeric types, numeric strings
//and json.Number are accepted. Anything else is an ErrTypeConversion.
func toFloat(v any, what string) (float64, error) {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int8:
		f = float64(t)
	case int16:
		f = float64(t)
	case int32:
		f = float64(t)
	case int64:
		f = float64(t)
	case uint:
		f = float64(t)
	case uint8:
		f = float64(t)
	case uint16:
		f = float64(t)
	case uint32:
		f = float64(t)
	case uint64:
		f = float64(t)
	case json.Number:
		p, err := t.Float64()
		if err != nil {
			return 0, newError(ErrTypeConversion, "toFloat", "%s %q can't be converted to float", what, t.String())
		}
		f = p
	case string:
		p, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, newError(ErrTypeConversion, "toFloat", "%s %q can't be converted to float", what, t)
		}
		f = p
	default:
		return 0, newError(ErrTypeConversion, "toFloat", "%s %v (%T) can't be converted to float, expected a single value", what, v, v)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, newError(ErrTypeConversion, "toFloat", "%s %v is not a finite number", what, f)
	}
	return f, nil
}

//isSequence reports whether v is a slice or an array (strings are not sequences here).
func isSequence(v any) bool {
	if v == nil {
		return false
	}
	k := reflect.TypeOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}

//toFloats converts a sequence of exactly n elements to floats. A non-sequence gives
//ErrTypeConversion, a sequence of the wrong length ErrCardinality, and the first
//element that can't be converted ErrTypeConversion.
func toFloats(v any, n int, what string) ([]float64, error) {
	if !isSequence(v) {
		return nil, newError(ErrTypeConversion, "toFloats", "%s %v (%T) should be a list of %d values", what, v, v, n)
	}
	rv := reflect.ValueOf(v)
	if rv.Len() != n {
		return nil, newError(ErrCardinality, "toFloats", "%d %s expected, %d given (%v)", n, what, rv.Len(), v)
	}
	ret := make([]float64, n)
	for i := 0; i < n; i++ {
		f, err := toFloat(rv.Index(i).Interface(), what)
		if err != nil {
			return nil, errDecorate(err, "toFloats")
		}
		ret[i] = f
	}
	return ret, nil
}
