/*
 * expand_test.go, part of golattice.
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

func TestExpandBroadcast(Te *testing.T) {
	for _, f := range Families() {
		basis := f.Basis()
		x := NewElement("Ar")
		in := Compounds{"A": x}
		got, err := ExpandCompounds(basis, in, basis.Len())
		require.NoError(Te, err, f.String())
		assert.Len(Te, got, basis.Len())
		for _, l := range basis.Labels() {
			assert.Same(Te, x, got[l])
		}
		assert.Len(Te, in, 1, "the caller's map must not be modified")
	}
}

func TestExpandFull(Te *testing.T) {
	basis := FCC.Basis()
	in := Compounds{"A": NewElement("Na"), "B": NewElement("Cl"), "C": NewElement("Cl"), "D": NewElement("Cl")}
	got, err := ExpandCompounds(basis, in, 4)
	require.NoError(Te, err)
	assert.Equal(Te, in, got)
}

func TestExpandErrors(Te *testing.T) {
	basis := Diamond.Basis()
	c := NewElement("C")
	tests := []struct {
		name string
		in   Compounds
		want error
	}{
		{"nil map", nil, ErrInvalidType},
		{"nil compound", Compounds{"A": nil}, ErrInvalidType},
		{"empty", Compounds{}, ErrKeyCountMismatch},
		{"two keys", Compounds{"A": c, "B": c}, ErrKeyCountMismatch},
		{"seven keys", Compounds{"A": c, "B": c, "C": c, "D": c, "E": c, "F": c, "G": c}, ErrKeyCountMismatch},
		{"nine keys", Compounds{"A": c, "B": c, "C": c, "D": c, "E": c, "F": c, "G": c, "H": c, "I": c}, ErrKeyCountMismatch},
		{"single key not A", Compounds{"B": c}, ErrUnknownLabel},
		{"eight wrong keys", Compounds{"A": c, "B": c, "C": c, "D": c, "E": c, "F": c, "G": c, "Z": c}, ErrUnknownLabel},
	}
	for _, tc := range tests {
		Te.Run(tc.name, func(t *testing.T) {
			got, err := ExpandCompounds(basis, tc.in, basis.Len())
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestExpandMessage(Te *testing.T) {
	_, err := ExpandCompounds(BCC.Basis(), Compounds{}, 2)
	require.Error(Te, err)
	assert.Contains(Te, err.Error(), "expected 2 or 1, received 0")
}

func TestExpandLabelCount(Te *testing.T) {
	basis := BCC.Basis()
	in := Compounds{"A": NewElement("Cs"), "B": NewElement("Cl"), "Z": NewElement("Xe")}
	got, err := ExpandCompounds(basis, in, 3)
	assert.Nil(Te, got)
	assert.ErrorIs(Te, err, ErrKeyCountMismatch)
	_, err = ExpandCompounds(nil, in, 1)
	assert.ErrorIs(Te, err, ErrKeyCountMismatch)
}
