/*
 * histogram.go, part of golattice.
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
	"fmt"
	"sort"

	lattice "github.com/rmera/golattice"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//DistanceHistogram counts the site-site distances of P in the bins given by dividers,
//which must be sorted and contain at least 2 values. A distance d falls in bin i if
//dividers[i] <= d < dividers[i+1]. Distances outside the range are omitted. If normalize
//is true, the counts are divided by the number of distances inside the range.
func DistanceHistogram(P *lattice.Populated, dividers []float64, normalize bool) ([]float64, error) {
	if len(dividers) < 2 || !sort.Float64sAreSorted(dividers) {
		return nil, fmt.Errorf("neighbors: at least 2 sorted dividers needed, got %v", dividers)
	}
	if P == nil || P.Len() < 2 {
		return nil, ErrEmpty
	}
	lo, hi := dividers[0], dividers[len(dividers)-1]
	d := make([]float64, 0, P.Len())
	for i := range P.Sites {
		p := P.Sites[i].Position
		for j := i + 1; j < P.Len(); j++ {
			q := P.Sites[j].Position
			dist := floats.Distance(p[:], q[:], 2)
			if dist >= lo && dist < hi {
				d = append(d, dist)
			}
		}
	}
	sort.Float64s(d)
	histo := stat.Histogram(nil, dividers, d, nil)
	if normalize && len(d) > 0 {
		floats.Scale(1/float64(len(d)), histo)
	}
	return histo, nil
}
