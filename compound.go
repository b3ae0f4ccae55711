/*
 * compound.go, part of golattice.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
	"fmt"
	"sort"

	v3 "github.com/rmera/golattice/v3"
	"gonum.org/v1/gonum/floats"
)

//Atom contains the information about an atom, except for its coordinates,
//which are kept in a v3.Matrix by the Compound that owns the atom.
type Atom struct {
	Name    string
	ID      int
	Symbol  string
	MolName string
	MolID   int
	Mass    float64
	Charge  float64
}

//NewAtom returns an atom for the element symbol, with its mass filled, if known.
func NewAtom(symbol string) *Atom {
	return &Atom{Name: symbol, Symbol: symbol, Mass: symbolMass[symbol]}
}

//Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	ret := *A
	return &ret
}

//Bond is a bond between two atoms of the same compound, given by
//their indexes in the compound.
type Bond struct {
	At1, At2 int
	Dist     float64
}

//Compound is a building block placed at the sites of a lattice: a single atom,
//or a molecule. Its coordinates are given relative to the compound origin,
//which is what ends up on the lattice site.
type Compound struct {
	Name   string
	Atoms  []*Atom
	Coords *v3.Matrix
	Bonds  []Bond
}

//NewCompound returns a compound with the given atoms and coordinates. It returns
//error if the number of atoms and coordinates don't match.
func NewCompound(name string, atoms []*Atom, coords *v3.Matrix) (*Compound, error) {
	if len(atoms) == 0 || coords == nil {
		return nil, newError(ErrInvalidType, "NewCompound", "compound %q needs at least one atom and its coordinates", name)
	}
	if coords.NVecs() != len(atoms) {
		return nil, newError(ErrCardinality, "NewCompound", "compound %q: %d atoms but %d coordinates", name, len(atoms), coords.NVecs())
	}
	for i, a := range atoms {
		if a == nil {
			return nil, newError(ErrInvalidType, "NewCompound", "compound %q: atom %d is nil", name, i)
		}
	}
	return &Compound{Name: name, Atoms: atoms, Coords: coords}, nil
}

//NewElement returns a compound with a single atom of the element symbol, at the origin.
func NewElement(symbol string) *Compound {
	return &Compound{Name: symbol, Atoms: []*Atom{NewAtom(symbol)}, Coords: v3.Zeros(1)}
}

//Len returns the number of atoms in the compound.
func (C *Compound) Len() int {
	return len(C.Atoms)
}

//Atom returns the ith atom of the compound. Panics if out of range.
func (C *Compound) Atom(i int) *Atom {
	if i >= C.Len() {
		panic("Compound: Requested Atom out of bounds")
	}
	return C.Atoms[i]
}

//Copy returns an independent copy of the compound.
func (C *Compound) Copy() *Compound {
	ret := &Compound{Name: C.Name}
	ret.Atoms = make([]*Atom, len(C.Atoms))
	for i, a := range C.Atoms {
		ret.Atoms[i] = a.Copy()
	}
	ret.Coords = v3.Zeros(C.Coords.NVecs())
	ret.Coords.Copy(C.Coords.Dense)
	ret.Bonds = make([]Bond, len(C.Bonds))
	copy(ret.Bonds, C.Bonds)
	return ret
}

//Mass returns the sum of the masses of the atoms in the compound.
func (C *Compound) Mass() float64 {
	m := 0.0
	for _, a := range C.Atoms {
		m += a.Mass
	}
	return m
}

//Translate adds pos to all the coordinates of the compound.
func (C *Compound) Translate(pos [3]float64) {
	C.Coords.AddVec(C.Coords, pos)
}

//Center moves the compound so its geometric center is at the origin, and returns
//the previous center.
func (C *Compound) Center() [3]float64 {
	var c [3]float64
	n := C.Coords.NVecs()
	for i := 0; i < n; i++ {
		v := C.Coords.Vec(i)
		floats.Add(c[:], v[:])
	}
	floats.Scale(1/float64(n), c[:])
	C.Coords.SubVec(C.Coords, c)
	return c
}

func (C *Compound) String() string {
	return fmt.Sprintf("%s (%d atoms)", C.Name, C.Len())
}

//constants from DOI:10.1186/1758-2946-3-33
const (
	tooclose = 0.63
	bondtol  = 0.45
)

//AssignBonds assigns bonds to the compound based on a simple distance
//criterium, similar to that described in DOI:10.1186/1758-2946-3-33.
//Previous bonds are discarded.
func AssignBonds(C *Compound) error {
	bonds := make([]Bond, 0, C.Len())
	tot := C.Len()
	for i := 0; i < tot; i++ {
		cov1, ok := symbolCovrad[C.Atoms[i].Symbol]
		if !ok {
			return newError(ErrInvalidType, "AssignBonds", "couldn't find the covalent radius for %s %d", C.Atoms[i].Symbol, i)
		}
		v1 := C.Coords.Vec(i)
		for j := i + 1; j < tot; j++ {
			cov2, ok := symbolCovrad[C.Atoms[j].Symbol]
			if !ok {
				return newError(ErrInvalidType, "AssignBonds", "couldn't find the covalent radius for %s %d", C.Atoms[j].Symbol, j)
			}
			v2 := C.Coords.Vec(j)
			d := floats.Distance(v1[:], v2[:], 2)
			if d < cov1+cov2+bondtol && d > tooclose {
				bonds = append(bonds, Bond{At1: i, At2: j, Dist: d})
			}
		}
	}
	//Now we check that no atom has too many bonds, removing the longest ones.
	//Bonds are sorted by distance, so we keep the shortest bonds of each atom.
	sort.SliceStable(bonds, func(i, j int) bool { return bonds[i].Dist < bonds[j].Dist })
	count := make([]int, tot)
	kept := bonds[:0]
	for _, b := range bonds {
		m1, ok1 := symbolMaxBonds[C.Atoms[b.At1].Symbol]
		m2, ok2 := symbolMaxBonds[C.Atoms[b.At2].Symbol]
		if (ok1 && count[b.At1] >= m1) || (ok2 && count[b.At2] >= m2) {
			continue
		}
		count[b.At1]++
		count[b.At2]++
		kept = append(kept, b)
	}
	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].At1 != kept[j].At1 {
			return kept[i].At1 < kept[j].At1
		}
		return kept[i].At2 < kept[j].At2
	})
	C.Bonds = kept
	return nil
}
