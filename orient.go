/*
 * orient.go, part of goslab.
 *
 * Copyright 2026 The goslab authors
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

package slab

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// alignTol is the rotation angle under which a slab counts as already
// aligned. It also absorbs the near-zero rotation axis of an (anti)aligned
// normal, so no separate branch is needed for that case.
const alignTol = 1e-6

// Normal returns the unit surface normal of the slab, the normalized cross
// product of the first two cell vectors, with its sign chosen so that the z
// component is non-negative (the outward, upward-facing convention). It
// returns an error when the first two cell vectors are parallel, since such
// a cell has no defined surface plane.
func (S *Slab) Normal() ([3]float64, error) {
	n := Cross(S.CellVec(0), S.CellVec(1))
	n, err := Unit(n)
	if err != nil {
		return n, Error{"goslab: cell vectors 0 and 1 are parallel, surface normal undefined", []string{"Normal"}, true}
	}
	if n[2] < 0 {
		n = Scale(-1, n)
	}
	return n, nil
}

// AlignToZ returns a copy of the slab rotated so that its surface normal
// points along +z. Atom coordinates and cell vectors are rotated together:
// the coordinates about the slab's geometric center, the cell vectors about
// the origin. A slab whose normal is already within tolerance of +z is
// returned as an unrotated copy. The input slab is never modified.
func AlignToZ(S *Slab, rep ...Reporter) (*Slab, error) {
	r := PickReporter(rep)
	n, err := S.Normal()
	if err != nil {
		return nil, ErrDecorate(err, "AlignToZ")
	}
	zhat := [3]float64{0, 0, 1}
	cosang := Dot(n, zhat)
	//Acos is only defined on [-1,1]; floating point dots can stray outside.
	if cosang > 1 {
		cosang = 1
	} else if cosang < -1 {
		cosang = -1
	}
	angle := math.Acos(cosang)
	if angle <= alignTol {
		return S.Copy(), nil
	}
	axis := Cross(n, zhat)
	center := CenterOf(S.Coords)
	N := S.Copy()
	N.Coords, err = RotateAbout(S.Coords, center, Add(center, axis), angle)
	if err != nil {
		return nil, ErrDecorate(err, "AlignToZ")
	}
	R, err := Rotator(axis, angle)
	if err != nil {
		return nil, ErrDecorate(err, "AlignToZ")
	}
	cell := mat.NewDense(3, 3, nil)
	cell.Mul(S.Cell, R.T())
	N.Cell = cell
	r.Infof("rotated slab by %.2f degrees", angle*Rad2Deg)
	return N, nil
}
