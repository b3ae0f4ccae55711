/*
 * validate.go, part of golattice.
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

import "math"

//The functions in this file check the parameters given for each crystal system
//and expand them to the full 3 spacings and 3 angles. They return on the first problem found.

var right = [3]float64{90, 90, 90}

//cubicParams expects a single value, used for a, b and c.
func cubicParams(spacings any) ([3]float64, [3]float64, error) {
	a, err := toFloat(spacings, "lattice spacing")
	if err != nil {
		return [3]float64{}, [3]float64{}, errDecorate(err, "cubicParams")
	}
	return [3]float64{a, a, a}, right, nil
}

//twoParams expects a list with a and c, and returns (a, a, c)
func twoParams(spacings any, caller string) ([3]float64, error) {
	s, err := toFloats(spacings, 2, "lattice spacings")
	if err != nil {
		return [3]float64{}, errDecorate(err, caller)
	}
	return [3]float64{s[0], s[0], s[1]}, nil
}

func hexagonalParams(spacings any) ([3]float64, [3]float64, error) {
	s, err := twoParams(spacings, "hexagonalParams")
	return s, [3]float64{90, 90, 120}, err
}

func tetragonalParams(spacings any) ([3]float64, [3]float64, error) {
	s, err := twoParams(spacings, "tetragonalParams")
	return s, right, err
}

//orthorhombicParams takes 3 independent spacings. There is no constraint
//beyond the ones every cell has.
func orthorhombicParams(spacings any) ([3]float64, [3]float64, error) {
	s, err := toFloats(spacings, 3, "lattice spacings")
	if err != nil {
		return [3]float64{}, [3]float64{}, errDecorate(err, "orthorhombicParams")
	}
	return [3]float64{s[0], s[1], s[2]}, right, nil
}

//nonRightAngle converts angle and ensures it is not 90.
func nonRightAngle(angle any, s System, caller string) (float64, error) {
	b, err := toFloat(angle, "angle")
	if err != nil {
		return 0, errDecorate(err, caller)
	}
	if math.Abs(b-90) < angletol {
		return 0, newError(ErrConstraintViolation, caller, "the angle of a %s lattice can't be 90", s)
	}
	return b, nil
}

//monoclinicParams takes 3 spacings, with a != c, and the angle beta, which can't be 90.
func monoclinicParams(spacings, beta any) ([3]float64, [3]float64, error) {
	s, err := toFloats(spacings, 3, "lattice spacings")
	if err != nil {
		return [3]float64{}, [3]float64{}, errDecorate(err, "monoclinicParams")
	}
	if s[0] == s[2] {
		return [3]float64{}, [3]float64{}, newError(ErrConstraintViolation, "monoclinicParams", "monoclinic lattices can't have a == c (%v)", s[0])
	}
	b, err := nonRightAngle(beta, Monoclinic, "monoclinicParams")
	if err != nil {
		return [3]float64{}, [3]float64{}, err
	}
	return [3]float64{s[0], s[1], s[2]}, [3]float64{90, b, 90}, nil
}

//rhombohedralParams takes a single spacing and a single angle, which can't be 90.
func rhombohedralParams(spacing, alpha any) ([3]float64, [3]float64, error) {
	a, err := toFloat(spacing, "lattice spacing")
	if err != nil {
		return [3]float64{}, [3]float64{}, errDecorate(err, "rhombohedralParams")
	}
	t, err := nonRightAngle(alpha, Rhombohedral, "rhombohedralParams")
	if err != nil {
		return [3]float64{}, [3]float64{}, err
	}
	return [3]float64{a, a, a}, [3]float64{t, t, t}, nil
}

//params dispatches to the right function for the system. Systems that need an angle
//require exactly one, the others require none.
func (s System) params(spacings any, angles []any) ([3]float64, [3]float64, error) {
	needs := s == Monoclinic || s == Rhombohedral
	if needs && len(angles) != 1 {
		return [3]float64{}, [3]float64{}, newError(ErrCardinality, "params", "%s lattices need exactly 1 angle, %d given", s, len(angles))
	}
	if !needs && len(angles) != 0 {
		return [3]float64{}, [3]float64{}, newError(ErrCardinality, "params", "%s lattices take no angle, %d given", s, len(angles))
	}
	var sp, an [3]float64
	var err error
	switch s {
	case Cubic:
		sp, an, err = cubicParams(spacings)
	case Hexagonal:
		sp, an, err = hexagonalParams(spacings)
	case Tetragonal:
		sp, an, err = tetragonalParams(spacings)
	case Orthorhombic:
		sp, an, err = orthorhombicParams(spacings)
	case Monoclinic:
		sp, an, err = monoclinicParams(spacings, angles[0])
	case Rhombohedral:
		sp, an, err = rhombohedralParams(spacings, angles[0])
	default:
		return sp, an, newError(ErrInvalidType, "params", "unknown crystal system %d", int(s))
	}
	if err != nil {
		return sp, an, errDecorate(err, "params")
	}
	return sp, an, nil
}
