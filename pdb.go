/*
 * pdb.go, part of golattice.
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
	"bufio"
	"fmt"
	"io"
	"strings"
)

//PDBWrite writes the populated structure P in PDB format to out. The periodic cell goes in the CRYST1 record,
//each atom is written as a HETATM, with the site as residue (named after the compound), and the bonds within
//each compound are written as CONECT records.
func PDBWrite(out io.Writer, P *Populated) error {
	w := bufio.NewWriter(out)
	s, a := P.Cell.Spacings, P.Cell.Angles
	fmt.Fprint(w, "REMARK     WRITTEN WITH GOLATTICE\n")
	fmt.Fprintf(w, "REMARK     %s %dx%dx%d\n", P.Name, P.Repeats[0], P.Repeats[1], P.Repeats[2])
	fmt.Fprintf(w, "CRYST1%9.3f%9.3f%9.3f%7.2f%7.2f%7.2f P 1           1\n", s[0], s[1], s[2], a[0], a[1], a[2])
	atoms := P.Atoms()
	coords := P.Coords()
	for i, at := range atoms {
		c := coords.Vec(i)
		if err := pdbAtomLine(w, at, c); err != nil {
			return errDecorate(err, "PDBWrite")
		}
	}
	first := 0
	for _, site := range P.Sites {
		if err := pdbConect(w, site.Unit, first); err != nil {
			return err
		}
		first += site.Unit.Len()
	}
	if _, err := fmt.Fprint(w, "END\n"); err != nil {
		return err
	}
	return w.Flush()
}

//pdbAtomLine writes one HETATM record. Serial numbers and residue IDs
//wrap around when they don't fit in their columns.
func pdbAtomLine(w io.Writer, at *Atom, c [3]float64) error {
	resname := at.MolName
	if len(resname) > 3 {
		resname = resname[:3]
	}
	resname = strings.ToUpper(resname)
	name := at.Name
	if len(name) > 4 {
		return newError(ErrFormat, "pdbAtomLine", "atom name %q too long for a PDB file", name)
	}
	//4 chars for the atom name are used when hydrogens are included.
	format := "%-6s%5d  %-3s %3s %1s%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s  \n"
	if len(name) == 4 {
		format = "%-6s%5d %4s %3s %1s%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s  \n"
	}
	_, err := fmt.Fprintf(w, format, "HETATM", at.ID%100000, name, resname, "A", at.MolID%10000, c[0], c[1], c[2], 1.0, 0.0, at.Symbol)
	return err
}

//pdbConect writes the CONECT records for the bonds of C, whose first atom has
//the index first in the whole structure.
func pdbConect(w io.Writer, C *Compound, first int) error {
	if len(C.Bonds) == 0 {
		return nil
	}
	partners := make([][]int, C.Len())
	for _, b := range C.Bonds {
		partners[b.At1] = append(partners[b.At1], b.At2)
		partners[b.At2] = append(partners[b.At2], b.At1)
	}
	for i, p := range partners {
		//at most 4 partners per record
		for len(p) > 0 {
			n := len(p)
			if n > 4 {
				n = 4
			}
			line := fmt.Sprintf("CONECT%5d", (first+i+1)%100000)
			for _, j := range p[:n] {
				line += fmt.Sprintf("%5d", (first+j+1)%100000)
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
			p = p[n:]
		}
	}
	return nil
}

//PDBFileWrite writes the populated structure P to the PDB file pdbname, compressing
//it if the name ends in .gz or .zst.
func PDBFileWrite(pdbname string, P *Populated) error {
	out, err := createFile(pdbname)
	if err != nil {
		return err
	}
	if err := PDBWrite(out, P); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
