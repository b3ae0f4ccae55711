/*
 * lattice.go, part of golattice.
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
	"gonum.org/v1/gonum/mat"
)

//Lattice is a unit cell with a basis, ready to be populated.
//Lattices are immutable after creation.
type Lattice struct {
	name   string
	family Family
	custom bool
	spec   *Spec
	basis  *BasisMap
}

//New builds a lattice of the given family. The spacings and angles are checked and expanded according to
//the crystal system of the family:
//
//	cubic (SC, BCC, FCC, Diamond): a single value a.
//	hexagonal (Hex3D) and tetragonal (TetragonalPrim, TetragonalBody): a list [a, c].
//	orthorhombic (OrthoPrim, OrthoBase, OrthoBody, OrthoFace): a list [a, b, c].
//	monoclinic (MonoPrim, MonoBase): a list [a, b, c] with a != c, plus the angle beta != 90.
//	rhombohedral (RhombohedralPrim): a single value a, plus the angle alpha != 90.
//
//Values can be of any numeric type, or strings that can be parsed as floats.
func New(f Family, spacings any, angles ...any) (*Lattice, error) {
	if !f.valid() {
		return nil, newError(ErrInvalidType, "New", "unknown lattice family %d", int(f))
	}
	sp, an, err := f.System().params(spacings, angles)
	if err != nil {
		return nil, errDecorate(err, "New")
	}
	spec, err := newSpec(sp, an, nil)
	if err != nil {
		return nil, errDecorate(err, "New")
	}
	return &Lattice{name: f.String(), family: f, spec: spec, basis: f.Basis()}, nil
}

//NewBase builds a lattice with arbitrary parameters and basis. If vectors is nil, the lattice vectors are derived
//from the angles. Otherwise the rows of vectors are used (normalized) as lattice vectors, and angles can be
//left as zeros, in which case they are derived from the vectors.
func NewBase(name string, spacings, angles [3]float64, basis *BasisMap, vectors *mat.Dense) (*Lattice, error) {
	if basis == nil {
		return nil, newError(ErrInvalidType, "NewBase", "nil basis given")
	}
	spec, err := newSpec(spacings, angles, vectors)
	if err != nil {
		return nil, errDecorate(err, "NewBase")
	}
	if name == "" {
		name = "Lattice"
	}
	return &Lattice{name: name, custom: true, spec: spec, basis: basis}, nil
}

//Name returns the name of the lattice (the family name for built-in families).
func (L *Lattice) Name() string {
	return L.name
}

//Family returns the family of the lattice, and false if the lattice was built with NewBase.
func (L *Lattice) Family() (Family, bool) {
	return L.family, !L.custom
}

//Spec returns a copy of the geometry of the unit cell.
func (L *Lattice) Spec() *Spec {
	return L.spec.Copy()
}

//Basis returns the basis of the lattice.
func (L *Lattice) Basis() *BasisMap {
	return L.basis
}

//Typed constructors, one per family.

//NewSC returns a simple cubic lattice with spacing a.
func NewSC(a float64) (*Lattice, error) { return New(SC, a) }

//NewBCC returns a body-centered cubic lattice with spacing a.
func NewBCC(a float64) (*Lattice, error) { return New(BCC, a) }

//NewFCC returns a face-centered cubic lattice with spacing a.
func NewFCC(a float64) (*Lattice, error) { return New(FCC, a) }

//NewDiamond returns a diamond lattice with spacing a.
func NewDiamond(a float64) (*Lattice, error) { return New(Diamond, a) }

//NewHex3D returns a hexagonal lattice with a == b and c.
func NewHex3D(a, c float64) (*Lattice, error) { return New(Hex3D, []float64{a, c}) }

func NewOrthoPrim(a, b, c float64) (*Lattice, error) { return New(OrthoPrim, []float64{a, b, c}) }

func NewOrthoBase(a, b, c float64) (*Lattice, error) { return New(OrthoBase, []float64{a, b, c}) }

func NewOrthoBody(a, b, c float64) (*Lattice, error) { return New(OrthoBody, []float64{a, b, c}) }

func NewOrthoFace(a, b, c float64) (*Lattice, error) { return New(OrthoFace, []float64{a, b, c}) }

//NewMonoPrim returns a primitive monoclinic lattice. a can't be equal to c, and beta can't be 90.
func NewMonoPrim(a, b, c, beta float64) (*Lattice, error) {
	return New(MonoPrim, []float64{a, b, c}, beta)
}

//NewMonoBase returns a base-centered monoclinic lattice. a can't be equal to c, and beta can't be 90.
func NewMonoBase(a, b, c, beta float64) (*Lattice, error) {
	return New(MonoBase, []float64{a, b, c}, beta)
}

//NewRhombohedral returns a rhombohedral lattice with edge a and angle alpha (not 90).
func NewRhombohedral(a, alpha float64) (*Lattice, error) { return New(RhombohedralPrim, a, alpha) }

func NewTetragonalPrim(a, c float64) (*Lattice, error) { return New(TetragonalPrim, []float64{a, c}) }

func NewTetragonalBody(a, c float64) (*Lattice, error) { return New(TetragonalBody, []float64{a, c}) }
