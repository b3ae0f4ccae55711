/*
 * basis.go, part of golattice.
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

import "fmt"

//BasisSite is a labeled set of fractional positions within one unit cell.
type BasisSite struct {
	Label  string
	Points [][3]float64
}

//BasisMap relates site labels to fractional positions within a unit cell. The order of the labels is kept, and
//determines the order in which sites are placed when a lattice is populated.
//A BasisMap can't be modified after creation, and its accessors return copies.
type BasisMap struct {
	labels []string
	points map[string][][3]float64
}

//NewBasisMap builds a BasisMap from the given sites. Labels must be non-empty and unique, each site must
//have at least one point, every fractional coordinate must be in [0,1), and no point can be repeated.
func NewBasisMap(sites ...BasisSite) (*BasisMap, error) {
	if len(sites) == 0 {
		return nil, newError(ErrCardinality, "NewBasisMap", "a basis needs at least one site")
	}
	B := &BasisMap{labels: make([]string, 0, len(sites)), points: make(map[string][][3]float64, len(sites))}
	seen := make(map[[3]float64]string)
	for _, s := range sites {
		if s.Label == "" {
			return nil, newError(ErrConstraintViolation, "NewBasisMap", "empty basis label")
		}
		if _, ok := B.points[s.Label]; ok {
			return nil, newError(ErrConstraintViolation, "NewBasisMap", "basis label %q repeated", s.Label)
		}
		if len(s.Points) == 0 {
			return nil, newError(ErrCardinality, "NewBasisMap", "basis site %q has no points", s.Label)
		}
		pts := make([][3]float64, len(s.Points))
		for i, p := range s.Points {
			for _, f := range p {
				if f < 0 || f >= 1 {
					return nil, newError(ErrConstraintViolation, "NewBasisMap", "point %v of site %q: fractional coordinates must be in [0,1)", p, s.Label)
				}
			}
			if prev, ok := seen[p]; ok {
				return nil, newError(ErrConstraintViolation, "NewBasisMap", "point %v of site %q already used by site %q", p, s.Label, prev)
			}
			seen[p] = s.Label
			pts[i] = p
		}
		B.labels = append(B.labels, s.Label)
		B.points[s.Label] = pts
	}
	return B, nil
}

//mustBasis is NewBasisMap for the built-in bases, which can't be wrong.
func mustBasis(sites ...BasisSite) *BasisMap {
	B, err := NewBasisMap(sites...)
	if err != nil {
		panic(fmt.Sprintf("invalid built-in basis: %v", err))
	}
	return B
}

//Len returns the number of labels (unique sites) in the basis.
func (B *BasisMap) Len() int {
	return len(B.labels)
}

//NPoints returns the total number of points in the basis, i.e., the number of
//sites placed in each unit cell.
func (B *BasisMap) NPoints() int {
	n := 0
	for _, v := range B.points {
		n += len(v)
	}
	return n
}

//Labels returns the labels of the basis, in order.
func (B *BasisMap) Labels() []string {
	ret := make([]string, len(B.labels))
	copy(ret, B.labels)
	return ret
}

//Has returns true if label is a label of the basis.
func (B *BasisMap) Has(label string) bool {
	_, ok := B.points[label]
	return ok
}

//Points returns a copy of the fractional positions for label, or nil if the label is not in the basis.
func (B *BasisMap) Points(label string) [][3]float64 {
	p, ok := B.points[label]
	if !ok {
		return nil
	}
	ret := make([][3]float64, len(p))
	copy(ret, p)
	return ret
}

func (B *BasisMap) String() string {
	s := ""
	for _, l := range B.labels {
		s += fmt.Sprintf("%s: %v\n", l, B.points[l])
	}
	return s
}

//The canonical bases. Each call returns a new value.

func primitiveBasis() *BasisMap {
	return mustBasis(BasisSite{"A", [][3]float64{{0, 0, 0}}})
}

func bodyCenteredBasis() *BasisMap {
	return mustBasis(
		BasisSite{"A", [][3]float64{{0, 0, 0}}},
		BasisSite{"B", [][3]float64{{0.5, 0.5, 0.5}}},
	)
}

func baseCenteredBasis() *BasisMap {
	return mustBasis(
		BasisSite{"A", [][3]float64{{0, 0, 0}}},
		BasisSite{"B", [][3]float64{{0.5, 0.5, 0}}},
	)
}

func faceCenteredSites() []BasisSite {
	return []BasisSite{
		{"A", [][3]float64{{0, 0, 0}}},
		{"B", [][3]float64{{0, 0.5, 0.5}}},
		{"C", [][3]float64{{0.5, 0, 0.5}}},
		{"D", [][3]float64{{0.5, 0.5, 0}}},
	}
}

func faceCenteredBasis() *BasisMap {
	return mustBasis(faceCenteredSites()...)
}

func diamondBasis() *BasisMap {
	sites := append(faceCenteredSites(),
		BasisSite{"E", [][3]float64{{0.25, 0.25, 0.75}}},
		BasisSite{"F", [][3]float64{{0.75, 0.25, 0.25}}},
		BasisSite{"G", [][3]float64{{0.25, 0.75, 0.25}}},
		BasisSite{"H", [][3]float64{{0.75, 0.75, 0.75}}},
	)
	return mustBasis(sites...)
}
