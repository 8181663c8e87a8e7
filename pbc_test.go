/*
 * pbc_test.go, part of goslab.
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
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestMinImage(Te *testing.T) {
	cell := mat.NewDense(3, 3, []float64{10, 0, 0, 0, 10, 0, 0, 0, 10})
	d := [3]float64{9, 0, 0}
	//fully periodic: wraps to the short image
	img, n := MinImage(d, cell, [3]bool{true, true, true})
	if math.Abs(n-1) > 1e-12 || math.Abs(img[0]+1) > 1e-12 {
		Te.Errorf("wrapped to %v (norm %g), wanted (-1,0,0)", img, n)
	}
	//not periodic along x: comes back as is
	img, n = MinImage(d, cell, [3]bool{false, true, true})
	if n != 9 || img != d {
		Te.Errorf("non-periodic axis wrapped anyway: %v (norm %g)", img, n)
	}
	//short displacements are their own minimum image
	d = [3]float64{1, 2, 3}
	img, n = MinImage(d, cell, [3]bool{true, true, true})
	if img != d || math.Abs(n-Norm(d)) > 1e-12 {
		Te.Errorf("short displacement changed: %v", img)
	}
}

func TestMinImageDiagonal(Te *testing.T) {
	cell := mat.NewDense(3, 3, []float64{10, 0, 0, 0, 10, 0, 0, 0, 10})
	d := [3]float64{9, 9, 0}
	img, n := MinImage(d, cell, [3]bool{true, true, false})
	want := math.Sqrt(2)
	if math.Abs(n-want) > 1e-12 {
		Te.Errorf("diagonal wrap gave norm %g, wanted %g (image %v)", n, want, img)
	}
}

func TestMinImageVec(Te *testing.T) {
	atoms := []*Atom{{Symbol: "Pt", Id: 0}, {Symbol: "Pt", Id: 1}}
	coords := mat.NewDense(2, 3, []float64{0.5, 5, 5, 9.5, 5, 5})
	cell := mat.NewDense(3, 3, []float64{10, 0, 0, 0, 10, 0, 0, 0, 10})
	s, err := New(atoms, coords, cell, [3]bool{true, true, true})
	if err != nil {
		Te.Fatal(err)
	}
	v, n := s.MinImageVec(0, 1)
	if math.Abs(n-1) > 1e-12 || math.Abs(v[0]+1) > 1e-12 {
		Te.Errorf("minimum image from 0 to 1: %v (norm %g), wanted (-1,0,0)", v, n)
	}
}
