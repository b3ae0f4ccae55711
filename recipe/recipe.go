/*
 * recipe.go, part of golattice.
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

//Package recipe reads lattice recipes from YAML files and turns them into
//populated lattices.
//
//A recipe names a family and its parameters, or a custom cell, the number of
//repeats, the compound for each basis label and the files to write:
//
//	name: CsCl
//	family: BCC
//	spacings: 4.12
//	repeat: [4, 4, 4]
//	sites:
//	  A: Cs
//	  B: {element: Cl}
//	outputs: [cscl.pdb, cscl.xyz.gz]
package recipe

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	lattice "github.com/rmera/golattice"
	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"
)

//ErrInvalid is returned (wrapped in an *OpError) when a recipe can't be used.
var ErrInvalid = errors.New("invalid recipe")

//OpError is an error in a recipe operation, with the file involved.
type OpError struct {
	Op   string
	Path string
	Err  error
}

func (e *OpError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

//Site is the compound placed on one basis label. In YAML it can be written as a bare
//element symbol, or as a mapping with either an element or an XYZ file.
type Site struct {
	Element string `yaml:"element"`
	File    string `yaml:"file"`
	//Center moves the geometric center of a compound read from a file to its origin.
	Center bool `yaml:"center"`
	//Bonds assigns bonds to a compound read from a file.
	Bonds bool `yaml:"bonds"`
}

//UnmarshalYAML accepts a scalar as an element symbol.
func (s *Site) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		s.Element = value.Value
		return nil
	}
	type plain Site
	return value.Decode((*plain)(s))
}

//BasisSite is one label of a custom basis.
type BasisSite struct {
	Label  string       `yaml:"label"`
	Points [][3]float64 `yaml:"points"`
}

//Custom describes a lattice with arbitrary cell and basis.
type Custom struct {
	Spacings [3]float64 `yaml:"spacings"`
	Angles   [3]float64 `yaml:"angles"`
	//Vectors, if given, are used instead of the angles.
	Vectors [][3]float64 `yaml:"vectors"`
	Basis   []BasisSite  `yaml:"basis"`
}

//Recipe is a lattice recipe, as read from a YAML file.
type Recipe struct {
	Name string `yaml:"name"`
	//Family and its parameters. Spacings is a single value or a list, depending on the family.
	Family   string `yaml:"family"`
	Spacings any    `yaml:"spacings"`
	Angle    any    `yaml:"angle"`
	//Custom is used instead of Family, if given.
	Custom  *Custom         `yaml:"custom"`
	Repeat  [3]int          `yaml:"repeat"`
	Sites   map[string]Site `yaml:"sites"`
	Outputs []string        `yaml:"outputs"`
	//Workers > 1 populates the lattice concurrently.
	Workers int `yaml:"workers"`
	//Dir is the directory of the recipe file, used to resolve compound files.
	Dir string `yaml:"-"`
}

//Load reads the recipe in path.
func Load(path string) (*Recipe, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &OpError{Op: "recipe.load", Path: path, Err: err}
	}
	r, err := Parse(b)
	if err != nil {
		return nil, &OpError{Op: "recipe.load", Path: path, Err: err}
	}
	r.Dir = filepath.Dir(path)
	return r, nil
}

//Parse decodes a recipe from YAML and checks its structure. The lattice parameters
//themselves are checked when the lattice is built.
func Parse(b []byte) (*Recipe, error) {
	r := new(Recipe)
	if err := yaml.Unmarshal(b, r); err != nil {
		return nil, errors.Join(ErrInvalid, err)
	}
	if err := r.check(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Recipe) check() error {
	if (r.Family == "") == (r.Custom == nil) {
		return fmt.Errorf("%w: exactly one of family and custom must be given", ErrInvalid)
	}
	if r.Family != "" && r.Spacings == nil {
		return fmt.Errorf("%w: no spacings given for family %s", ErrInvalid, r.Family)
	}
	if r.Repeat == [3]int{} {
		r.Repeat = [3]int{1, 1, 1}
	}
	if len(r.Sites) == 0 {
		return fmt.Errorf("%w: no sites given", ErrInvalid)
	}
	for l, s := range r.Sites {
		if (s.Element == "") == (s.File == "") {
			return fmt.Errorf("%w: site %s needs either an element or a file", ErrInvalid, l)
		}
	}
	return nil
}

//Lattice builds the lattice described by the recipe.
func (r *Recipe) Lattice() (*lattice.Lattice, error) {
	if r.Custom != nil {
		return r.Custom.lattice(r.Name)
	}
	f, err := lattice.ParseFamily(r.Family)
	if err != nil {
		return nil, err
	}
	if r.Angle == nil {
		return lattice.New(f, r.Spacings)
	}
	return lattice.New(f, r.Spacings, r.Angle)
}

func (c *Custom) lattice(name string) (*lattice.Lattice, error) {
	sites := make([]lattice.BasisSite, len(c.Basis))
	for i, b := range c.Basis {
		sites[i] = lattice.BasisSite{Label: b.Label, Points: b.Points}
	}
	basis, err := lattice.NewBasisMap(sites...)
	if err != nil {
		return nil, err
	}
	var vectors *mat.Dense
	if len(c.Vectors) != 0 {
		if len(c.Vectors) != 3 {
			return nil, fmt.Errorf("%w: 3 lattice vectors needed, %d given", ErrInvalid, len(c.Vectors))
		}
		vectors = mat.NewDense(3, 3, nil)
		for i, v := range c.Vectors {
			vectors.SetRow(i, v[:])
		}
	}
	return lattice.NewBase(name, c.Spacings, c.Angles, basis, vectors)
}

//Compounds returns the compound for each site label. Files are read relative
//to the directory of the recipe.
func (r *Recipe) Compounds() (lattice.Compounds, error) {
	ret := make(lattice.Compounds, len(r.Sites))
	for l, s := range r.Sites {
		if s.Element != "" {
			ret[l] = lattice.NewElement(s.Element)
			continue
		}
		fname := s.File
		if !filepath.IsAbs(fname) {
			fname = filepath.Join(r.Dir, fname)
		}
		C, err := lattice.XYZFileRead(fname)
		if err != nil {
			return nil, &OpError{Op: "recipe.compounds", Path: fname, Err: err}
		}
		if s.Center {
			C.Center()
		}
		if s.Bonds {
			if err := lattice.AssignBonds(C); err != nil {
				return nil, &OpError{Op: "recipe.compounds", Path: fname, Err: err}
			}
		}
		ret[l] = C
	}
	return ret, nil
}

//Build builds and populates the lattice of the recipe, named after the recipe.
//workers, if larger than 1, overrides the recipe's own setting.
func (r *Recipe) Build(workers int) (*lattice.Populated, error) {
	L, err := r.Lattice()
	if err != nil {
		return nil, err
	}
	comps, err := r.Compounds()
	if err != nil {
		return nil, err
	}
	if workers <= 1 {
		workers = r.Workers
	}
	x, y, z := r.Repeat[0], r.Repeat[1], r.Repeat[2]
	var P *lattice.Populated
	if workers > 1 {
		P, err = L.PopulateConc(comps, x, y, z, workers)
	} else {
		P, err = L.Populate(comps, x, y, z)
	}
	if err != nil {
		return nil, err
	}
	if r.Name != "" {
		P.Name = r.Name
	}
	return P, nil
}
