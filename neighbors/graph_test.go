/*
 * graph_test.go, part of golattice.
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

package neighbors

import (
	"testing"

	lattice "github.com/rmera/golattice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func populate(Te *testing.T, L *lattice.Lattice, err error, n int) *lattice.Populated {
	Te.Helper()
	require.NoError(Te, err)
	P, err := L.Populate(lattice.Compounds{"A": lattice.NewElement("Ar")}, n, n, n)
	require.NoError(Te, err)
	return P
}

//center returns the index of the first site of the cell (1,1,1) in a 3x3x3 structure.
func center(L *lattice.Lattice) int {
	return ((1*3+1)*3 + 1) * L.Basis().NPoints()
}

func TestCoordination(Te *testing.T) {
	sc, err1 := lattice.NewSC(1)
	bcc, err2 := lattice.NewBCC(1)
	fcc, err3 := lattice.NewFCC(1)
	cases := []struct {
		name  string
		L     *lattice.Lattice
		err   error
		coord int
		dist  float64
	}{
		{"SC", sc, err1, 6, 1},
		{"BCC", bcc, err2, 8, 0.8660254037844386},
		{"FCC", fcc, err3, 12, 0.7071067811865476},
	}
	for _, c := range cases {
		Te.Run(c.name, func(t *testing.T) {
			P := populate(t, c.L, c.err, 3)
			G, err := Build(P, 0)
			require.NoError(t, err)
			i := center(c.L)
			assert.Equal(t, [3]int{1, 1, 1}, G.Site(i).Cell)
			assert.Equal(t, c.coord, G.Coordination(i))
			assert.Len(t, G.Neighbors(i), c.coord)
			s := G.Stats()
			assert.Equal(t, c.coord, s.MaxCoord)
			assert.InDelta(t, c.dist, s.MeanDistance, 1e-9)
			assert.InDelta(t, 0, s.StdDistance, 1e-9)
			total := 0
			for _, n := range s.Coordination {
				total += n
			}
			assert.Equal(t, P.Len(), total)
		})
	}
}

func TestCutoff(Te *testing.T) {
	L, err := lattice.NewSC(1)
	P := populate(Te, L, err, 3)
	G, err := Build(P, 1.5)
	require.NoError(Te, err)
	//6 faces and 12 edges of the surrounding cube
	assert.Equal(Te, 18, G.Coordination(center(L)))
	assert.Equal(Te, 1.5, G.Cutoff)
	assert.Equal(Te, []int{1, 3, 4, 9, 10, 12}, G.Neighbors(0))
}

func TestHops(Te *testing.T) {
	L, err := lattice.NewSC(2)
	P := populate(Te, L, err, 3)
	G, err := Build(P, 0)
	require.NoError(Te, err)
	h, ok := G.Hops(0, P.Len()-1)
	assert.True(Te, ok)
	assert.Equal(Te, 6, h)
	h, ok = G.Hops(4, 4)
	assert.True(Te, ok)
	assert.Equal(Te, 0, h)

	G, err = Build(P, 0.5)
	require.NoError(Te, err)
	_, ok = G.Hops(0, 1)
	assert.False(Te, ok)
	assert.Equal(Te, 0, G.Stats().Edges)
}

func TestEmpty(Te *testing.T) {
	L, err := lattice.NewSC(1)
	P := populate(Te, L, err, 1)
	_, err = Build(P, 0)
	assert.ErrorIs(Te, err, ErrEmpty)
	_, err = Build(nil, 1)
	assert.ErrorIs(Te, err, ErrEmpty)
}

func TestDistanceHistogram(Te *testing.T) {
	L, err := lattice.NewSC(1)
	P := populate(Te, L, err, 2)
	//8 sites: 12 pairs at 1, 12 at sqrt(2), 4 at sqrt(3)
	h, err := DistanceHistogram(P, []float64{0.5, 1.2, 1.5, 1.8}, false)
	require.NoError(Te, err)
	assert.Equal(Te, []float64{12, 12, 4}, h)
	h, err = DistanceHistogram(P, []float64{0.5, 1.2, 1.5}, true)
	require.NoError(Te, err)
	assert.Equal(Te, []float64{0.5, 0.5}, h)

	_, err = DistanceHistogram(P, []float64{2, 1}, false)
	assert.Error(Te, err)
	_, err = DistanceHistogram(nil, []float64{0, 1}, false)
	assert.ErrorIs(Te, err, ErrEmpty)
}
