/*
 * geometry.go, part of goslab.
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
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const appzero float64 = 0.0000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

const (
	Deg2Rad float64 = math.Pi / 180.0
	Rad2Deg float64 = 180.0 / math.Pi
)

//basic operations on Cartesian 3-vectors.

// Cross returns the cross product of v1 and v2.
func Cross(v1, v2 [3]float64) [3]float64 {
	return [3]float64{
		v1[1]*v2[2] - v1[2]*v2[1],
		v1[2]*v2[0] - v1[0]*v2[2],
		v1[0]*v2[1] - v1[1]*v2[0],
	}
}

// Dot returns the dot product of v1 and v2.
func Dot(v1, v2 [3]float64) float64 {
	return v1[0]*v2[0] + v1[1]*v2[1] + v1[2]*v2[2]
}

// Norm returns the Euclidean norm of v.
func Norm(v [3]float64) float64 {
	return math.Sqrt(Dot(v, v))
}

// Add returns v1+v2.
func Add(v1, v2 [3]float64) [3]float64 {
	return [3]float64{v1[0] + v2[0], v1[1] + v2[1], v1[2] + v2[2]}
}

// Sub returns v1-v2.
func Sub(v1, v2 [3]float64) [3]float64 {
	return [3]float64{v1[0] - v2[0], v1[1] - v2[1], v1[2] - v2[2]}
}

// Scale returns f*v.
func Scale(f float64, v [3]float64) [3]float64 {
	return [3]float64{f * v[0], f * v[1], f * v[2]}
}

// Unit returns the unit vector along v. It returns an error for a
// near-zero v instead of producing NaNs.
func Unit(v [3]float64) ([3]float64, error) {
	n := Norm(v)
	if n <= appzero {
		return v, Error{"goslab.Unit: near-zero vector has no direction", []string{"Unit"}, true}
	}
	return Scale(1/n, v), nil
}

// Angle takes 2 vectors and calculates the angle in radians between them.
func Angle(v1, v2 [3]float64) float64 {
	argument := Dot(v1, v2) / (Norm(v1) * Norm(v2))
	//Take care of floating point math errors
	if math.Abs(argument-1) <= appzero {
		argument = 1
	} else if math.Abs(argument+1) <= appzero {
		argument = -1
	}
	angle := math.Acos(argument)
	if math.Abs(angle) <= appzero {
		return 0.0
	}
	return angle
}

// CenterOf returns the geometric center of the rows of coords.
func CenterOf(coords *mat.Dense) [3]float64 {
	r, c := coords.Dims()
	if c != 3 || r < 1 {
		panic(fmt.Sprintf("goslab: malformed coordinate matrix (%dx%d)", r, c))
	}
	var center [3]float64
	for i := 0; i < r; i++ {
		center[0] += coords.At(i, 0)
		center[1] += coords.At(i, 1)
		center[2] += coords.At(i, 2)
	}
	return Scale(1/float64(r), center)
}

// Rotator returns the 3x3 matrix that rotates a column vector by angle
// radians around axis (Rodrigues form). Coordinates here are row vectors, so
// the matrix is applied as coords*R^T.
func Rotator(axis [3]float64, angle float64) (*mat.Dense, error) {
	u, err := Unit(axis)
	if err != nil {
		return nil, ErrDecorate(err, "Rotator")
	}
	c := math.Cos(angle)
	s := math.Sin(angle)
	t := 1 - c
	R := mat.NewDense(3, 3, []float64{
		c + u[0]*u[0]*t, u[0]*u[1]*t - u[2]*s, u[0]*u[2]*t + u[1]*s,
		u[1]*u[0]*t + u[2]*s, c + u[1]*u[1]*t, u[1]*u[2]*t - u[0]*s,
		u[2]*u[0]*t - u[1]*s, u[2]*u[1]*t + u[0]*s, c + u[2]*u[2]*t,
	})
	return R, nil
}

// RotateAbout rotates the coordinates in coords by angle radians around the
// axis given by the vector from ax1 to ax2. It returns the rotated
// coordinates; the original matrix is not affected.
func RotateAbout(coords *mat.Dense, ax1, ax2 [3]float64, angle float64) (*mat.Dense, error) {
	axis := Sub(ax2, ax1)
	R, err := Rotator(axis, angle)
	if err != nil {
		return nil, ErrDecorate(err, "RotateAbout")
	}
	r, c := coords.Dims()
	if c != 3 {
		return nil, Error{fmt.Sprintf("goslab.RotateAbout: coordinates must have 3 columns, got %d", c), []string{"RotateAbout"}, true}
	}
	centered := mat.NewDense(r, 3, nil)
	for i := 0; i < r; i++ {
		centered.Set(i, 0, coords.At(i, 0)-ax1[0])
		centered.Set(i, 1, coords.At(i, 1)-ax1[1])
		centered.Set(i, 2, coords.At(i, 2)-ax1[2])
	}
	rotated := mat.NewDense(r, 3, nil)
	rotated.Mul(centered, R.T())
	for i := 0; i < r; i++ {
		rotated.Set(i, 0, rotated.At(i, 0)+ax1[0])
		rotated.Set(i, 1, rotated.At(i, 1)+ax1[1])
		rotated.Set(i, 2, rotated.At(i, 2)+ax1[2])
	}
	return rotated, nil
}

// det3 returns the determinant of a 3x3 matrix. Panics if the matrix is not 3x3.
func det3(A mat.Matrix) float64 {
	r, c := A.Dims()
	if r != 3 || c != 3 {
		panic(PanicMsg("goslab: determinants are only available for 3x3 matrices"))
	}
	return A.At(0, 0)*(A.At(1, 1)*A.At(2, 2)-A.At(2, 1)*A.At(1, 2)) -
		A.At(1, 0)*(A.At(0, 1)*A.At(2, 2)-A.At(2, 1)*A.At(0, 2)) +
		A.At(2, 0)*(A.At(0, 1)*A.At(1, 2)-A.At(1, 1)*A.At(0, 2))
}
