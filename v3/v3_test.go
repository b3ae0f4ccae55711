/*
 * v3_test.go, part of golattice.
 *
 * Copyright 2013 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package v3

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMatrix(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	require.NoError(Te, err)
	assert.Equal(Te, 2, A.NVecs())
	assert.Equal(Te, [3]float64{4, 5, 6}, A.Vec(1))

	_, err = NewMatrix([]float64{1, 2})
	require.Error(Te, err)
	_, err = NewMatrix(nil)
	require.Error(Te, err)
}

func TestViews(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	require.NoError(Te, err)
	view := A.View(1, 1)
	view.Set(0, 0, 100)
	assert.Equal(Te, 100.0, A.At(1, 0), "changes in the view must reach the matrix")

	B := Zeros(4)
	B.SetMatrix(1, A)
	assert.Equal(Te, [3]float64{0, 0, 0}, B.Vec(0))
	assert.Equal(Te, [3]float64{7, 8, 9}, B.Vec(3))
	assert.Panics(Te, func() { B.SetMatrix(2, A) })
}

func TestAddSubVec(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	require.NoError(Te, err)
	B := Zeros(2)
	B.AddVec(A, [3]float64{10, 20, 30})
	assert.Equal(Te, [3]float64{11, 22, 33}, B.Vec(0))
	assert.Equal(Te, [3]float64{14, 25, 36}, B.Vec(1))
	B.SubVec(B, [3]float64{10, 20, 30})
	assert.Equal(Te, A.Vec(1), B.Vec(1))
	assert.Panics(Te, func() { Zeros(3).AddVec(A, [3]float64{}) })
}

func TestError(Te *testing.T) {
	_, err := NewMatrix([]float64{1, 2, 3, 4})
	var e *Error
	require.True(Te, errors.As(err, &e))
	assert.True(Te, e.Critical())
	assert.Equal(Te, []string{"NewMatrix", "caller"}, e.Decorate("caller"))
	assert.Equal(Te, []string{"NewMatrix", "caller"}, e.Decorate(""), "the decoration is kept in the error")
}

func TestString(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3})
	require.NoError(Te, err)
	assert.Contains(Te, A.String(), "1.000")
}
