/*
 * family.go, part of golattice.
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
	"fmt"
	"strings"
)

//System is a crystal system. It determines which parameters are needed
//to describe a cell and how they are expanded into 3 spacings and 3 angles.
type System int

const (
	Cubic System = iota
	Hexagonal
	Tetragonal
	Orthorhombic
	Monoclinic
	Rhombohedral
)

func (s System) String() string {
	switch s {
	case Cubic:
		return "cubic"
	case Hexagonal:
		return "hexagonal"
	case Tetragonal:
		return "tetragonal"
	case Orthorhombic:
		return "orthorhombic"
	case Monoclinic:
		return "monoclinic"
	case Rhombohedral:
		return "rhombohedral"
	}
	return fmt.Sprintf("System(%d)", int(s))
}

//Family is one of the lattice recipes the package can build.
type Family int

const (
	SC Family = iota
	BCC
	FCC
	Diamond
	Hex3D
	OrthoPrim
	OrthoBase
	OrthoBody
	OrthoFace
	MonoPrim
	MonoBase
	RhombohedralPrim
	TetragonalPrim
	TetragonalBody
)

type recipe struct {
	name   string
	system System
	basis  func() *BasisMap
	//params describes what the constructor expects, for messages and the CLI.
	params string
}

var recipes = [...]recipe{
	SC:               {"SC", Cubic, primitiveBasis, "a"},
	BCC:              {"BCC", Cubic, bodyCenteredBasis, "a"},
	FCC:              {"FCC", Cubic, faceCenteredBasis, "a"},
	Diamond:          {"Diamond", Cubic, diamondBasis, "a"},
	Hex3D:            {"Hex3D", Hexagonal, primitiveBasis, "[a, c]"},
	OrthoPrim:        {"OrthoPrim", Orthorhombic, primitiveBasis, "[a, b, c]"},
	OrthoBase:        {"OrthoBase", Orthorhombic, baseCenteredBasis, "[a, b, c]"},
	OrthoBody:        {"OrthoBody", Orthorhombic, bodyCenteredBasis, "[a, b, c]"},
	OrthoFace:        {"OrthoFace", Orthorhombic, faceCenteredBasis, "[a, b, c]"},
	MonoPrim:         {"MonoPrim", Monoclinic, primitiveBasis, "[a, b, c], beta"},
	MonoBase:         {"MonoBase", Monoclinic, baseCenteredBasis, "[a, b, c], beta"},
	RhombohedralPrim: {"RhombohedralPrim", Rhombohedral, primitiveBasis, "a, alpha"},
	TetragonalPrim:   {"TetragonalPrim", Tetragonal, primitiveBasis, "[a, c]"},
	TetragonalBody:   {"TetragonalBody", Tetragonal, bodyCenteredBasis, "[a, c]"},
}

//Families returns all the available families, in order.
func Families() []Family {
	ret := make([]Family, len(recipes))
	for i := range recipes {
		ret[i] = Family(i)
	}
	return ret
}

func (f Family) valid() bool {
	return f >= 0 && int(f) < len(recipes)
}

func (f Family) String() string {
	if !f.valid() {
		return fmt.Sprintf("Family(%d)", int(f))
	}
	return recipes[f].name
}

//System returns the crystal system of the family.
//An invalid family has an invalid system.
func (f Family) System() System {
	if !f.valid() {
		return System(-1)
	}
	return recipes[f].system
}

//Basis returns a new copy of the canonical basis of the family, or nil for an invalid family.
func (f Family) Basis() *BasisMap {
	if !f.valid() {
		return nil
	}
	return recipes[f].basis()
}

//Params returns a short description of the parameters the family needs.
func (f Family) Params() string {
	if !f.valid() {
		return ""
	}
	return recipes[f].params
}

//NeedsAngle returns true if the family needs an angle besides the spacings.
func (f Family) NeedsAngle() bool {
	s := f.System()
	return s == Monoclinic || s == Rhombohedral
}

//ParseFamily returns the family with the given name. The comparison is case-insensitive,
//and a few common aliases are accepted.
func ParseFamily(name string) (Family, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	aliases := map[string]Family{
		"simplecubic":  SC,
		"hexagonal":    Hex3D,
		"hex":          Hex3D,
		"rhombohedral": RhombohedralPrim,
	}
	if f, ok := aliases[n]; ok {
		return f, nil
	}
	for i, r := range recipes {
		if strings.ToLower(r.name) == n {
			return Family(i), nil
		}
	}
	return 0, newError(ErrInvalidType, "ParseFamily", "unknown lattice family %q", name)
}
