/*
 * doc.go, part of golattice.
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

/*
Package lattice builds crystallographic unit cells and replicates them into 3D structures, for use as
input for molecular simulations.

A lattice is built from one of the families (simple, body- and face-centered cubic, diamond, hexagonal,
orthorhombic, monoclinic, rhombohedral and tetragonal Bravais lattices), with the parameters its crystal
system needs:

	fcc, err := lattice.New(lattice.FCC, 3.615)
	hex, err := lattice.New(lattice.Hex3D, []float64{2.46, 6.71})
	mono, err := lattice.New(lattice.MonoPrim, []float64{5.1, 8.9, 9.5}, 98.0)

The parameters are checked, and expanded to 3 spacings, 3 angles and the lattice vectors.
Each family has a canonical basis: a set of labeled fractional positions in the unit cell.
Populating a lattice places a copy of a compound (an atom, or a molecule) on every basis point of every
cell of an x*y*z tiling:

	cu, err := fcc.Populate(lattice.Compounds{"A": lattice.NewElement("Cu")}, 3, 3, 3)

A compound map with a single "A" key puts the same compound on every site. Otherwise, the map
needs one compound per basis label.

The result can be written in XYZ or PDB format (optionally compressed with gzip or zstd).

The package reports errors with the Error type, which wraps one of the sentinel errors
(ErrTypeConversion, ErrCardinality, ErrConstraintViolation, etc.) so they can be checked with errors.Is.
*/
package lattice
