/*
 * lattice_test.go, part of golattice.
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
	"encoding/json"
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func TestCubicSpacings(Te *testing.T) {
	r := rand.New(rand.NewSource(42))
	for _, f := range []Family{SC, BCC, FCC, Diamond} {
		for i := 0; i < 20; i++ {
			s := 0.01 + r.Float64()*20
			L, err := New(f, s)
			require.NoError(Te, err)
			spec := L.Spec()
			assert.Equal(Te, [3]float64{s, s, s}, spec.Spacings)
			assert.Equal(Te, [3]float64{90, 90, 90}, spec.Angles)
			assert.True(Te, mat.Equal(identity(), spec.Vectors))
		}
	}
}

func TestHexagonalSpacings(Te *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		a, c := 0.1+r.Float64()*10, 0.1+r.Float64()*10
		L, err := New(Hex3D, []float64{a, c})
		require.NoError(Te, err)
		spec := L.Spec()
		assert.Equal(Te, [3]float64{a, a, c}, spec.Spacings)
		assert.Equal(Te, [3]float64{90, 90, 120}, spec.Angles)
	}
}

func TestConvertibleInputs(Te *testing.T) {
	L, err := New(FCC, "3.615")
	require.NoError(Te, err)
	assert.Equal(Te, 3.615, L.Spec().Spacings[0])

	L, err = New(TetragonalBody, []any{2, json.Number("4.5")})
	require.NoError(Te, err)
	assert.Equal(Te, [3]float64{2, 2, 4.5}, L.Spec().Spacings)

	L, err = New(OrthoFace, [3]int{1, 2, 3})
	require.NoError(Te, err)
	assert.Equal(Te, [3]float64{1, 2, 3}, L.Spec().Spacings)

	L, err = New(MonoBase, []string{"1", "2", "3"}, "100")
	require.NoError(Te, err)
	assert.Equal(Te, [3]float64{90, 100, 90}, L.Spec().Angles)
}

func TestValidators(Te *testing.T) {
	tests := []struct {
		name     string
		family   Family
		spacings any
		angles   []any
		want     error
	}{
		{"cubic list", SC, []float64{1, 2}, nil, ErrTypeConversion},
		{"cubic string", BCC, "abc", nil, ErrTypeConversion},
		{"cubic nil", FCC, nil, nil, ErrTypeConversion},
		{"cubic bool", Diamond, true, nil, ErrTypeConversion},
		{"cubic NaN", SC, math.NaN(), nil, ErrTypeConversion},
		{"cubic negative", SC, -1.0, nil, ErrConstraintViolation},
		{"cubic zero", FCC, 0, nil, ErrConstraintViolation},
		{"cubic with angle", SC, 1.0, []any{90.0}, ErrCardinality},
		{"hex scalar", Hex3D, 1.0, nil, ErrTypeConversion},
		{"hex three", Hex3D, []float64{1, 2, 3}, nil, ErrCardinality},
		{"hex one", Hex3D, []float64{1}, nil, ErrCardinality},
		{"hex bad value", Hex3D, []any{1.0, "x"}, nil, ErrTypeConversion},
		{"tetragonal three", TetragonalPrim, []float64{1, 2, 3}, nil, ErrCardinality},
		{"tetragonal string", TetragonalPrim, "1,2", nil, ErrTypeConversion},
		{"ortho two", OrthoPrim, []float64{1, 2}, nil, ErrCardinality},
		{"ortho negative", OrthoBody, []float64{1, -2, 3}, nil, ErrConstraintViolation},
		{"mono a==c", MonoPrim, []float64{2, 3, 2}, []any{100.0}, ErrConstraintViolation},
		{"mono beta 90", MonoPrim, []float64{1, 2, 3}, []any{90.0}, ErrConstraintViolation},
		{"mono beta int 90", MonoBase, []float64{1, 2, 3}, []any{90}, ErrConstraintViolation},
		{"mono no angle", MonoPrim, []float64{1, 2, 3}, nil, ErrCardinality},
		{"mono two angles", MonoPrim, []float64{1, 2, 3}, []any{100.0, 100.0}, ErrCardinality},
		{"mono angle string", MonoPrim, []float64{1, 2, 3}, []any{"beta"}, ErrTypeConversion},
		{"mono scalar", MonoPrim, 1.0, []any{100.0}, ErrTypeConversion},
		{"mono two spacings", MonoBase, []float64{1, 2}, []any{100.0}, ErrCardinality},
		{"mono beta 180", MonoPrim, []float64{1, 2, 3}, []any{180.0}, ErrConstraintViolation},
		{"rhombo 90", RhombohedralPrim, 1.0, []any{90.0}, ErrConstraintViolation},
		{"rhombo too open", RhombohedralPrim, 1.0, []any{130.0}, ErrConstraintViolation},
		{"rhombo list", RhombohedralPrim, []float64{1, 1, 1}, []any{70.0}, ErrTypeConversion},
		{"rhombo bad angle", RhombohedralPrim, 1.0, []any{nil}, ErrTypeConversion},
		{"unknown family", Family(99), 1.0, nil, ErrInvalidType},
	}
	for _, tc := range tests {
		Te.Run(tc.name, func(t *testing.T) {
			L, err := New(tc.family, tc.spacings, tc.angles...)
			require.Error(t, err)
			assert.Nil(t, L, "no partial lattice should be returned")
			assert.Truef(t, errors.Is(err, tc.want), "expected errors.Is(%v, %v)", err, tc.want)
			var e *Error
			require.True(t, errors.As(err, &e))
			assert.Contains(t, e.Trace(), "New")
		})
	}
}

func TestMonoclinicGeometry(Te *testing.T) {
	L, err := NewMonoPrim(5, 6, 7, 110)
	require.NoError(Te, err)
	spec := L.Spec()
	assert.Equal(Te, [3]float64{5, 6, 7}, spec.Spacings)
	assert.Equal(Te, [3]float64{90, 110, 90}, spec.Angles)
	got := anglesFromVectors(spec.Vectors)
	assert.True(Te, floats.EqualApprox(got[:], []float64{90, 110, 90}, 1e-9), "angles from vectors %v", got)
	assert.InDelta(Te, 5*6*7*math.Sin(110*math.Pi/180), spec.Volume(), 1e-9)
}

func TestRhombohedralGeometry(Te *testing.T) {
	L, err := NewRhombohedral(3, 70)
	require.NoError(Te, err)
	spec := L.Spec()
	assert.Equal(Te, [3]float64{3, 3, 3}, spec.Spacings)
	assert.Equal(Te, [3]float64{70, 70, 70}, spec.Angles)
	for i := 0; i < 3; i++ {
		assert.InDelta(Te, 1.0, floats.Norm(spec.Vectors.RawRowView(i), 2), 1e-12)
	}
	got := anglesFromVectors(spec.Vectors)
	assert.True(Te, floats.EqualApprox(got[:], []float64{70, 70, 70}, 1e-9), "angles from vectors %v", got)
}

func TestHexagonalVectors(Te *testing.T) {
	L, err := NewHex3D(2.46, 6.71)
	require.NoError(Te, err)
	v := L.Spec().Vectors
	assert.InDelta(Te, -0.5, v.At(1, 0), 1e-12)
	assert.InDelta(Te, math.Sqrt(3)/2, v.At(1, 1), 1e-12)
	assert.Equal(Te, []float64{0, 0, 1}, v.RawRowView(2))
}

func TestNewBase(Te *testing.T) {
	basis, err := NewBasisMap(BasisSite{"Na", [][3]float64{{0, 0, 0}}}, BasisSite{"Cl", [][3]float64{{0.5, 0.5, 0.5}}})
	require.NoError(Te, err)

	vec := mat.NewDense(3, 3, []float64{2, 0, 0, 0, 3, 0, 0, 0, 4})
	L, err := NewBase("CsCl", [3]float64{4.1, 4.1, 4.1}, [3]float64{}, basis, vec)
	require.NoError(Te, err)
	assert.Equal(Te, [3]float64{90, 90, 90}, L.Spec().Angles)
	assert.Equal(Te, "CsCl", L.Name())
	_, builtin := L.Family()
	assert.False(Te, builtin)

	_, err = NewBase("", [3]float64{1, 1, 1}, [3]float64{90, 90, 120}, basis, vec)
	assert.ErrorIs(Te, err, ErrConstraintViolation, "angles must agree with the vectors")

	left := mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, -1})
	_, err = NewBase("", [3]float64{1, 1, 1}, [3]float64{}, basis, left)
	assert.ErrorIs(Te, err, ErrConstraintViolation)

	flat := mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 1, 1, 0})
	_, err = NewBase("", [3]float64{1, 1, 1}, [3]float64{}, basis, flat)
	assert.ErrorIs(Te, err, ErrConstraintViolation)

	_, err = NewBase("", [3]float64{1, 1, 1}, [3]float64{90, 90, 90}, nil, nil)
	assert.ErrorIs(Te, err, ErrInvalidType)
}

func TestCheckAngles(Te *testing.T) {
	assert.NoError(Te, checkAngles([3]float64{90, 90, 120}))
	assert.NoError(Te, checkAngles([3]float64{60, 60, 60}))
	assert.ErrorIs(Te, checkAngles([3]float64{0, 90, 90}), ErrConstraintViolation)
	assert.ErrorIs(Te, checkAngles([3]float64{100, 100, 170}), ErrConstraintViolation)
	assert.ErrorIs(Te, checkAngles([3]float64{30, 30, 90}), ErrConstraintViolation)
}

func TestFamilies(Te *testing.T) {
	fams := Families()
	assert.Len(Te, fams, 14)
	want := map[Family]int{SC: 1, BCC: 2, FCC: 4, Diamond: 8, Hex3D: 1, OrthoPrim: 1, OrthoBase: 2,
		OrthoBody: 2, OrthoFace: 4, MonoPrim: 1, MonoBase: 2, RhombohedralPrim: 1, TetragonalPrim: 1, TetragonalBody: 2}
	for _, f := range fams {
		assert.Equal(Te, want[f], f.Basis().Len(), f.String())
		p, err := ParseFamily(f.String())
		require.NoError(Te, err)
		assert.Equal(Te, f, p)
	}
	p, err := ParseFamily("hexagonal")
	require.NoError(Te, err)
	assert.Equal(Te, Hex3D, p)
	_, err = ParseFamily("quasicrystal")
	assert.ErrorIs(Te, err, ErrInvalidType)
	assert.True(Te, MonoBase.NeedsAngle())
	assert.False(Te, FCC.NeedsAngle())
	assert.Equal(Te, Monoclinic, MonoBase.System())
}

func TestInvalidFamily(Te *testing.T) {
	f := Family(99)
	assert.Equal(Te, "Family(99)", f.String())
	assert.Equal(Te, "System(-1)", f.System().String())
	assert.Nil(Te, f.Basis())
	assert.Equal(Te, "", f.Params())
	assert.False(Te, f.NeedsAngle())
	_, err := New(f, 1.0)
	assert.ErrorIs(Te, err, ErrInvalidType)
}
