/*
 * expand.go, part of golattice.
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

import "sort"

//Compounds relates the labels of a basis to the compound placed on the
//corresponding sites.
type Compounds map[string]*Compound

//ExpandCompounds reconciles compounds with the labels of basis, and returns a new map with
//one compound per label. n is the number of labels of the basis, and any other value
//gives ErrKeyCountMismatch.
//
//If compounds has exactly n keys, they must be the labels of the basis, and an equivalent map is returned.
//If it has exactly 1 key, it must be the first label of the basis (conventionally "A"), and its compound is
//used for every label (a homogeneous crystal). Any other number of keys gives ErrKeyCountMismatch.
//A nil map, or a nil compound, gives ErrInvalidType. Partial maps are never filled in.
func ExpandCompounds(basis *BasisMap, compounds Compounds, n int) (Compounds, error) {
	if compounds == nil {
		return nil, newError(ErrInvalidType, "ExpandCompounds", "nil compound map given, a map from basis labels to compounds expected")
	}
	for k, v := range compounds {
		if v == nil {
			return nil, newError(ErrInvalidType, "ExpandCompounds", "nil compound given for label %q", k)
		}
	}
	if basis == nil || n != basis.Len() {
		return nil, newError(ErrKeyCountMismatch, "ExpandCompounds", "%d labels expected, but the basis has %d", n, basisLen(basis))
	}
	labels := basis.Labels()
	ret := make(Compounds, len(labels))
	switch len(compounds) {
	case n:
		for _, l := range labels {
			c, ok := compounds[l]
			if !ok {
				return nil, newError(ErrUnknownLabel, "ExpandCompounds", "compound labels %v don't match the basis labels %v", sortedKeys(compounds), labels)
			}
			ret[l] = c
		}
	case 1:
		c, ok := compounds[labels[0]]
		if !ok {
			return nil, newError(ErrUnknownLabel, "ExpandCompounds", "invalid key %v within the compound map, %q is the expected label", sortedKeys(compounds), labels[0])
		}
		for _, l := range labels {
			ret[l] = c
		}
	default:
		return nil, newError(ErrKeyCountMismatch, "ExpandCompounds", "incorrect number of keys in the compound map, expected %d or 1, received %d", n, len(compounds))
	}
	return ret, nil
}

func basisLen(b *BasisMap) int {
	if b == nil {
		return 0
	}
	return b.Len()
}

func sortedKeys(c Compounds) []string {
	ret := make([]string, 0, len(c))
	for k := range c {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}
