/*
 * pbc.go, part of goslab.
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

import "gonum.org/v1/gonum/mat"

// MinImage returns the minimum-image version of the displacement d under the
// given cell and periodicity flags, together with its norm: among all images
// of d shifted by lattice translations along the periodic axes, the one with
// the smallest Euclidean norm. Non-periodic axes contribute no translations,
// so with PBC all false d itself comes back. The search covers one shell of
// neighbor cells per periodic axis, which is enough for any slab cell whose
// vectors are not much shorter than the distances being wrapped.
func MinImage(d [3]float64, cell *mat.Dense, pbc [3]bool) ([3]float64, float64) {
	best := d
	bestn := Norm(d)
	if !pbc[0] && !pbc[1] && !pbc[2] {
		return best, bestn
	}
	shifts := func(periodic bool) []float64 {
		if periodic {
			return []float64{-1, 0, 1}
		}
		return []float64{0}
	}
	v0 := [3]float64{cell.At(0, 0), cell.At(0, 1), cell.At(0, 2)}
	v1 := [3]float64{cell.At(1, 0), cell.At(1, 1), cell.At(1, 2)}
	v2 := [3]float64{cell.At(2, 0), cell.At(2, 1), cell.At(2, 2)}
	for _, n0 := range shifts(pbc[0]) {
		for _, n1 := range shifts(pbc[1]) {
			for _, n2 := range shifts(pbc[2]) {
				if n0 == 0 && n1 == 0 && n2 == 0 {
					continue
				}
				cand := Add(d, Add(Scale(n0, v0), Add(Scale(n1, v1), Scale(n2, v2))))
				if n := Norm(cand); n < bestn {
					best = cand
					bestn = n
				}
			}
		}
	}
	return best, bestn
}

// MinImageVec returns the minimum-image displacement vector from atom i to
// atom j of the slab, and its norm. Panics if either index is out of range.
func (S *Slab) MinImageVec(i, j int) ([3]float64, float64) {
	d := Sub(S.Vec(j), S.Vec(i))
	return MinImage(d, S.Cell, S.PBC)
}
