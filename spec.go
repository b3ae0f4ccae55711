/*
 * spec.go, part of golattice.
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
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//appzero is used to correct floating point errors. Everything
//equal or less than this, in absolute value, is considered zero.
const appzero float64 = 1e-12

//angletol is the tolerance, in degrees, used when comparing angles.
const angletol float64 = 1e-6

//Spec contains the geometry of a unit cell.
type Spec struct {
	Dimension int
	//Vectors contains, as rows, the unit vectors along the cell edges.
	Vectors *mat.Dense
	//Spacings are the edge lengths a, b and c.
	Spacings [3]float64
	//Angles are alpha, beta and gamma, in degrees. Alpha is the angle between
	//the b and c edges, beta between a and c, and gamma between a and b.
	Angles [3]float64
}

//newSpec validates spacings and angles and builds a Spec. If vectors is nil, the lattice vectors are
//derived from the angles. Otherwise, the given vectors are normalized and checked, and the angles, if all
//zero, are derived from them. Non-zero angles must agree with the given vectors.
func newSpec(spacings, angles [3]float64, vectors *mat.Dense) (*Spec, error) {
	for i, v := range spacings {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return nil, newError(ErrConstraintViolation, "newSpec", "lattice spacing %d is %v, spacings must be positive", i, v)
		}
	}
	S := &Spec{Dimension: 3, Spacings: spacings}
	if vectors == nil {
		if err := checkAngles(angles); err != nil {
			return nil, errDecorate(err, "newSpec")
		}
		v, err := vectorsFromAngles(angles)
		if err != nil {
			return nil, errDecorate(err, "newSpec")
		}
		S.Vectors = v
		S.Angles = angles
		return S, nil
	}
	v, err := normalizeVectors(vectors)
	if err != nil {
		return nil, errDecorate(err, "newSpec")
	}
	derived := anglesFromVectors(v)
	if angles != [3]float64{} {
		if !floats.EqualApprox(angles[:], derived[:], angletol) {
			return nil, newError(ErrConstraintViolation, "newSpec", "angles %v don't match the angles of the given lattice vectors %v", angles, derived)
		}
	}
	if err := checkAngles(derived); err != nil {
		return nil, errDecorate(err, "newSpec")
	}
	S.Vectors = v
	S.Angles = derived
	return S, nil
}

//checkAngles ensures that angles can describe a unit cell: every angle is in (0,180),
//their sum is below 360, and each is smaller than the sum of the other two.
func checkAngles(angles [3]float64) error {
	sum := 0.0
	for i, v := range angles {
		if math.IsNaN(v) || v <= 0 || v >= 180 {
			return newError(ErrConstraintViolation, "checkAngles", "angle %d is %v, angles must be in (0,180)", i, v)
		}
		sum += v
	}
	if sum >= 360 {
		return newError(ErrConstraintViolation, "checkAngles", "angles %v add up to %v, must be less than 360", angles, sum)
	}
	for i, v := range angles {
		if v >= sum-v {
			return newError(ErrConstraintViolation, "checkAngles", "angle %d (%v) must be smaller than the sum of the other two", i, v)
		}
	}
	return nil
}

func cleanZero(f float64) float64 {
	if math.Abs(f) <= appzero {
		return 0
	}
	return f
}

func deg2rad(f float64) float64 {
	return f * math.Pi / 180
}

func rad2deg(f float64) float64 {
	return f * 180 / math.Pi
}

//vectorsFromAngles returns the unit lattice vectors for the given angles, with the first
//vector along x and the second in the xy plane.
func vectorsFromAngles(angles [3]float64) (*mat.Dense, error) {
	if angles == [3]float64{90, 90, 90} {
		return identity(), nil
	}
	ca := math.Cos(deg2rad(angles[0]))
	cb := math.Cos(deg2rad(angles[1]))
	cg := math.Cos(deg2rad(angles[2]))
	sg := math.Sin(deg2rad(angles[2]))
	v3y := (ca - cb*cg) / sg
	zz := 1 - cb*cb - v3y*v3y
	if zz <= appzero {
		return nil, newError(ErrConstraintViolation, "vectorsFromAngles", "angles %v give a degenerate cell", angles)
	}
	data := []float64{
		1, 0, 0,
		cleanZero(cg), cleanZero(sg), 0,
		cleanZero(cb), cleanZero(v3y), math.Sqrt(zz),
	}
	return mat.NewDense(3, 3, data), nil
}

func identity() *mat.Dense {
	return mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
}

//normalizeVectors returns a copy of the 3x3 matrix vectors with unit rows. The vectors must be
//linearly independent and form a right-handed set.
func normalizeVectors(vectors *mat.Dense) (*mat.Dense, error) {
	r, c := vectors.Dims()
	if r != 3 || c != 3 {
		return nil, newError(ErrCardinality, "normalizeVectors", "lattice vectors must be a 3x3 matrix, got %dx%d", r, c)
	}
	ret := mat.DenseCopyOf(vectors)
	for i := 0; i < 3; i++ {
		row := ret.RawRowView(i)
		n := floats.Norm(row, 2)
		if n <= appzero {
			return nil, newError(ErrConstraintViolation, "normalizeVectors", "lattice vector %d has zero length", i)
		}
		floats.Scale(1/n, row)
	}
	det := mat.Det(ret)
	if math.Abs(det) <= appzero {
		return nil, newError(ErrConstraintViolation, "normalizeVectors", "lattice vectors are co-linear or co-planar (det=%g)", det)
	}
	if det < 0 {
		return nil, newError(ErrConstraintViolation, "normalizeVectors", "lattice vectors are not right-handed (det=%g)", det)
	}
	return ret, nil
}

//anglesFromVectors returns alpha, beta and gamma for the unit vectors in the rows of v.
func anglesFromVectors(v *mat.Dense) [3]float64 {
	a, b, c := v.RawRowView(0), v.RawRowView(1), v.RawRowView(2)
	angle := func(x, y []float64) float64 {
		d := floats.Dot(x, y)
		if math.Abs(d) <= appzero {
			return 90
		}
		d = math.Max(-1, math.Min(1, d))
		return rad2deg(math.Acos(d))
	}
	return [3]float64{angle(b, c), angle(a, c), angle(a, b)}
}

//Copy returns a deep copy of the Spec.
func (S *Spec) Copy() *Spec {
	return &Spec{
		Dimension: S.Dimension,
		Vectors:   mat.DenseCopyOf(S.Vectors),
		Spacings:  S.Spacings,
		Angles:    S.Angles,
	}
}

//Cartesian returns the cartesian position of the fractional coordinates frac.
//Fractional coordinates beyond [0,1) are allowed, so cell offsets can be added to them.
func (S *Spec) Cartesian(frac [3]float64) [3]float64 {
	var ret [3]float64
	for i := 0; i < 3; i++ {
		s := frac[i] * S.Spacings[i]
		for j := 0; j < 3; j++ {
			ret[j] += s * S.Vectors.At(i, j)
		}
	}
	return ret
}

//CellVectors returns the edges of the cell, i.e. the lattice vectors scaled by the spacings, as rows.
func (S *Spec) CellVectors() *mat.Dense {
	ret := mat.DenseCopyOf(S.Vectors)
	for i := 0; i < 3; i++ {
		floats.Scale(S.Spacings[i], ret.RawRowView(i))
	}
	return ret
}

//Volume returns the volume of the unit cell.
func (S *Spec) Volume() float64 {
	return math.Abs(mat.Det(S.CellVectors()))
}

//Scaled returns a copy of S with the spacings multiplied by x, y and z, i.e. the
//cell that contains an x*y*z tiling of S.
func (S *Spec) Scaled(x, y, z int) *Spec {
	ret := S.Copy()
	ret.Spacings[0] *= float64(x)
	ret.Spacings[1] *= float64(y)
	ret.Spacings[2] *= float64(z)
	return ret
}

//String returns a short description of the cell.
func (S *Spec) String() string {
	return fmt.Sprintf("a=%.4f b=%.4f c=%.4f alpha=%.2f beta=%.2f gamma=%.2f", S.Spacings[0], S.Spacings[1], S.Spacings[2], S.Angles[0], S.Angles[1], S.Angles[2])
}
