/*
 * basis_test.go, part of golattice.
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasisImmutable(Te *testing.T) {
	b := FCC.Basis()
	labels := b.Labels()
	labels[0] = "Z"
	pts := b.Points("B")
	pts[0] = [3]float64{0.9, 0.9, 0.9}
	assert.Equal(Te, []string{"A", "B", "C", "D"}, b.Labels())
	assert.Equal(Te, [][3]float64{{0, 0.5, 0.5}}, b.Points("B"))
	assert.Equal(Te, [][3]float64{{0, 0.5, 0.5}}, FCC.Basis().Points("B"), "each call returns a fresh basis")
	assert.Nil(Te, b.Points("Q"))
	assert.True(Te, b.Has("D"))
	assert.False(Te, b.Has("E"))
	assert.Equal(Te, 4, b.NPoints())
}

func TestNewBasisMap(Te *testing.T) {
	_, err := NewBasisMap()
	assert.ErrorIs(Te, err, ErrCardinality)
	_, err = NewBasisMap(BasisSite{"A", nil})
	assert.ErrorIs(Te, err, ErrCardinality)
	_, err = NewBasisMap(BasisSite{"", [][3]float64{{0, 0, 0}}})
	assert.ErrorIs(Te, err, ErrConstraintViolation)
	_, err = NewBasisMap(BasisSite{"A", [][3]float64{{0, 0, 1}}})
	assert.ErrorIs(Te, err, ErrConstraintViolation)
	_, err = NewBasisMap(BasisSite{"A", [][3]float64{{0, -0.1, 0}}})
	assert.ErrorIs(Te, err, ErrConstraintViolation)
	_, err = NewBasisMap(BasisSite{"A", [][3]float64{{0, 0, 0}}}, BasisSite{"A", [][3]float64{{0.5, 0, 0}}})
	assert.ErrorIs(Te, err, ErrConstraintViolation)
	_, err = NewBasisMap(BasisSite{"A", [][3]float64{{0, 0, 0}}}, BasisSite{"B", [][3]float64{{0, 0, 0}}})
	assert.ErrorIs(Te, err, ErrConstraintViolation)

	b, err := NewBasisMap(BasisSite{"X", [][3]float64{{0, 0, 0}, {0.5, 0.5, 0.5}}})
	require.NoError(Te, err)
	assert.Equal(Te, 1, b.Len())
	assert.Equal(Te, 2, b.NPoints())
}
