/*
 * xyz.go, part of golattice.
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
	"path/filepath"
	"strconv"
	"strings"

	v3 "github.com/rmera/golattice/v3"
)

//XYZWrite writes the populated structure P in XYZ format to out.
func XYZWrite(out io.Writer, P *Populated) error {
	w := bufio.NewWriter(out)
	r := P.Repeats
	if _, err := fmt.Fprintf(w, "%-4d\n%s %dx%dx%d %s\n", P.NAtoms(), P.Name, r[0], r[1], r[2], P.Cell); err != nil {
		return err
	}
	for _, s := range P.Sites {
		for i, a := range s.Unit.Atoms {
			c := s.Unit.Coords.Vec(i)
			if _, err := fmt.Fprintf(w, "%-2s  %12.6f%12.6f%12.6f\n", a.Symbol, c[0], c[1], c[2]); err != nil {
				return err
			}
		}
	}
	return w.Flush()
}

//XYZFileWrite writes the populated structure P in XYZ format to a file with name xyzname,
//which will be created for that. If the file exists it will be overwritten. If the name
//ends in .gz or .zst, the file is compressed accordingly.
func XYZFileWrite(xyzname string, P *Populated) error {
	out, err := createFile(xyzname)
	if err != nil {
		return err
	}
	if err := XYZWrite(out, P); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

//XYZRead reads a single-frame XYZ file from in and returns it as a compound. The comment
//line, if not empty, is used as the name of the compound. Bonds are not assigned.
func XYZRead(in io.Reader) (*Compound, error) {
	xyz := bufio.NewScanner(in)
	if !xyz.Scan() {
		return nil, newError(ErrFormat, "XYZRead", "empty XYZ file")
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(xyz.Text()))
	if err != nil || natoms < 1 {
		return nil, newError(ErrFormat, "XYZRead", "ill formatted XYZ file: first line %q should be the number of atoms", xyz.Text())
	}
	if !xyz.Scan() {
		return nil, newError(ErrFormat, "XYZRead", "ill formatted XYZ file: missing comment line")
	}
	name := strings.TrimSpace(xyz.Text())
	atoms := make([]*Atom, natoms)
	coords := v3.Zeros(natoms)
	for i := 0; i < natoms; i++ {
		if !xyz.Scan() {
			return nil, newError(ErrFormat, "XYZRead", "%d atoms expected, only %d found", natoms, i)
		}
		fields := strings.Fields(xyz.Text())
		if len(fields) < 4 {
			return nil, newError(ErrFormat, "XYZRead", "line %d ill formed: %q", i+3, xyz.Text())
		}
		atoms[i] = NewAtom(fields[0])
		for j := 0; j < 3; j++ {
			f, err := strconv.ParseFloat(fields[j+1], 64)
			if err != nil {
				return nil, newError(ErrFormat, "XYZRead", "line %d: can't parse coordinate %q", i+3, fields[j+1])
			}
			coords.Set(i, j, f)
		}
	}
	if err := xyz.Err(); err != nil {
		return nil, err
	}
	if name == "" {
		name = "XYZ"
	}
	return NewCompound(name, atoms, coords)
}

//XYZFileRead reads the XYZ file xyzname (which can be compressed with gzip or zstd)
//and returns a compound. If the comment line of the file is empty, the compound is named
//after the file.
func XYZFileRead(xyzname string) (*Compound, error) {
	in, err := openFile(xyzname)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	C, err := XYZRead(in)
	if err != nil {
		return nil, errDecorate(err, "XYZFileRead")
	}
	if C.Name == "XYZ" {
		base := filepath.Base(xyzname)
		C.Name = strings.SplitN(base, ".", 2)[0]
	}
	return C, nil
}
