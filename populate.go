/*
 * populate.go, part of golattice.
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
	"math"

	v3 "github.com/rmera/golattice/v3"
	"golang.org/x/sync/errgroup"
)

//MaxSites is the largest number of sites a populated lattice can have.
const MaxSites = 1 << 28

//Site is a compound placed on a lattice.
type Site struct {
	Label string
	//Unit is the compound placed on the site. Its coordinates are absolute.
	Unit *Compound
	//Position is the cartesian position of the site.
	Position [3]float64
	//Cell contains the indexes of the unit cell where the site is.
	Cell [3]int
}

//Populated is the result of populating a lattice: the sites of every cell,
//in a deterministic order, and the cell containing them.
type Populated struct {
	Name  string
	Sites []Site
	//Cell is the unit cell of the lattice scaled by the repeats, i.e. the periodic cell
	//of the whole structure.
	Cell    *Spec
	Repeats [3]int
}

//Populate tiles the unit cell x, y and z times along the a, b and c edges, and places a copy of the corresponding
//compound on every basis point of every cell. compounds is expanded with ExpandCompounds first.
//Sites are ordered by cell, with the first index as the outermost loop and the last as the innermost,
//and, within a cell, by basis label, following the order of the basis.
func (L *Lattice) Populate(compounds Compounds, x, y, z int) (*Populated, error) {
	P, comps, err := L.prepare(compounds, x, y, z)
	if err != nil {
		return nil, errDecorate(err, "Populate")
	}
	for i := 0; i < x; i++ {
		L.fillSlab(P, comps, i)
	}
	return P, nil
}

//PopulateConc is like Populate, but the cells are placed concurrently, using up to workers goroutines
//(one per value of the first cell index). The result is identical to that of Populate.
//If workers < 1, as many goroutines as slabs are used.
func (L *Lattice) PopulateConc(compounds Compounds, x, y, z, workers int) (*Populated, error) {
	P, comps, err := L.prepare(compounds, x, y, z)
	if err != nil {
		return nil, errDecorate(err, "PopulateConc")
	}
	var g errgroup.Group
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i := 0; i < x; i++ {
		i := i
		g.Go(func() error {
			L.fillSlab(P, comps, i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return P, nil
}

//prepare checks the replication counts, expands the compounds and allocates the result.
func (L *Lattice) prepare(compounds Compounds, x, y, z int) (*Populated, Compounds, error) {
	if x < 1 || y < 1 || z < 1 {
		return nil, nil, newError(ErrReplicationCount, "prepare", "replication counts must be positive integers, got x=%d y=%d z=%d", x, y, z)
	}
	nsites := L.basis.NPoints()
	for _, r := range [3]int{x, y, z} {
		if nsites > MaxSites/r {
			return nil, nil, newError(ErrReplicationCount, "prepare", "replication counts x=%d y=%d z=%d give more than %d sites", x, y, z, MaxSites)
		}
		nsites *= r
	}
	comps, err := ExpandCompounds(L.basis, compounds, L.basis.Len())
	if err != nil {
		return nil, nil, errDecorate(err, "prepare")
	}
	P := &Populated{
		Name:    L.name,
		Sites:   make([]Site, nsites),
		Cell:    L.spec.Scaled(x, y, z),
		Repeats: [3]int{x, y, z},
	}
	return P, comps, nil
}

//fillSlab places the sites of all the cells with first index i. Each slab
//writes to its own part of P.Sites.
func (L *Lattice) fillSlab(P *Populated, comps Compounds, i int) {
	y, z := P.Repeats[1], P.Repeats[2]
	labels := L.basis.labels
	per := L.basis.NPoints()
	for j := 0; j < y; j++ {
		for k := 0; k < z; k++ {
			n := ((i*y+j)*z + k) * per
			for _, l := range labels {
				for _, f := range L.basis.points[l] {
					pos := L.spec.Cartesian([3]float64{f[0] + float64(i), f[1] + float64(j), f[2] + float64(k)})
					unit := comps[l].Copy()
					unit.Translate(pos)
					P.Sites[n] = Site{Label: l, Unit: unit, Position: pos, Cell: [3]int{i, j, k}}
					n++
				}
			}
		}
	}
}

//Len returns the number of sites.
func (P *Populated) Len() int {
	return len(P.Sites)
}

//NAtoms returns the total number of atoms in the structure.
func (P *Populated) NAtoms() int {
	n := 0
	for _, s := range P.Sites {
		n += s.Unit.Len()
	}
	return n
}

//Positions returns the positions of the sites, one per vector.
func (P *Populated) Positions() *v3.Matrix {
	ret := v3.Zeros(len(P.Sites))
	for i, s := range P.Sites {
		ret.SetVec(i, s.Position)
	}
	return ret
}

//Coords returns the coordinates of every atom in the structure, in site order.
func (P *Populated) Coords() *v3.Matrix {
	ret := v3.Zeros(P.NAtoms())
	n := 0
	for _, s := range P.Sites {
		ret.SetMatrix(n, s.Unit.Coords)
		n += s.Unit.Len()
	}
	return ret
}

//Atoms returns copies of every atom in the structure, in site order. The IDs are set
//to the position of the atom (starting from 1), the MolIDs to the position of the site
//(starting from 1), and the MolNames to the name of the compound.
func (P *Populated) Atoms() []*Atom {
	ret := make([]*Atom, 0, P.NAtoms())
	for i, s := range P.Sites {
		for _, a := range s.Unit.Atoms {
			b := a.Copy()
			b.ID = len(ret) + 1
			b.MolID = i + 1
			b.MolName = s.Unit.Name
			ret = append(ret, b)
		}
	}
	return ret
}

//Box is an axis-aligned bounding box.
type Box struct {
	Mins [3]float64
	Maxs [3]float64
}

//Lengths returns the edges of the box.
func (B Box) Lengths() [3]float64 {
	return [3]float64{B.Maxs[0] - B.Mins[0], B.Maxs[1] - B.Mins[1], B.Maxs[2] - B.Mins[2]}
}

//Box returns the axis-aligned box that contains the periodic cell of the structure.
func (P *Populated) Box() Box {
	b := Box{}
	for i := 0; i < 3; i++ {
		b.Mins[i] = math.Inf(1)
		b.Maxs[i] = math.Inf(-1)
	}
	for c := 0; c < 8; c++ {
		corner := P.Cell.Cartesian([3]float64{float64(c & 1), float64((c >> 1) & 1), float64((c >> 2) & 1)})
		for i := 0; i < 3; i++ {
			b.Mins[i] = math.Min(b.Mins[i], cleanZero(corner[i]))
			b.Maxs[i] = math.Max(b.Maxs[i], cleanZero(corner[i]))
		}
	}
	return b
}
