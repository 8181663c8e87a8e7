/*
 * slab.go, part of goslab.
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

/**Note: some methods here panic instead of returning errors. Those are "fundamental"
 * accessors: if one of them is called on a nil slab or with an out-of-bounds index,
 * the calling program is most likely wrong and should crash.**/

// Atom contains the per-atom information for a slab, except for the
// coordinates, which are kept in a separate matrix.
type Atom struct {
	Symbol string //chemical element label. The pipeline never interprets it.
	Id     int    //zero-based position of the atom at read time.
}

// Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("goslab: attempted to copy a nil atom")
	}
	at := new(Atom)
	at.Symbol = A.Symbol
	at.Id = A.Id
	return at
}

// Slab is a periodic (or partially periodic) atomic structure: an ordered set
// of atoms, their Cartesian coordinates as the rows of an Nx3 matrix, a 3x3
// cell matrix whose rows are the cell vectors, and a periodicity flag per
// cell vector. Coordinates and cell are in the same length unit, normally
// angstroms.
type Slab struct {
	Atoms  []*Atom
	Coords *mat.Dense //Nx3
	Cell   *mat.Dense //3x3, rows are cell vectors
	PBC    [3]bool
}

// New builds a Slab from its parts. It checks that atoms and coordinates are
// consistent and that the cell is 3x3. A nil cell is replaced by the identity,
// which is only meaningful together with PBC all false.
func New(atoms []*Atom, coords *mat.Dense, cell *mat.Dense, pbc [3]bool) (*Slab, error) {
	if atoms == nil || len(atoms) < 1 {
		return nil, Error{"goslab.New: a slab needs at least one atom", []string{"New"}, true}
	}
	if coords == nil {
		return nil, Error{"goslab.New: nil coordinates", []string{"New"}, true}
	}
	r, c := coords.Dims()
	if c != 3 {
		return nil, Error{fmt.Sprintf("goslab.New: coordinates must have 3 columns, got %d", c), []string{"New"}, true}
	}
	if r != len(atoms) {
		return nil, Error{fmt.Sprintf("goslab.New: %d atoms but %d coordinate rows", len(atoms), r), []string{"New"}, true}
	}
	if cell == nil {
		cell = mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
	}
	cr, cc := cell.Dims()
	if cr != 3 || cc != 3 {
		return nil, Error{fmt.Sprintf("goslab.New: cell must be 3x3, got %dx%d", cr, cc), []string{"New"}, true}
	}
	S := &Slab{Atoms: atoms, Coords: coords, Cell: cell, PBC: pbc}
	return S, nil
}

// Len returns the number of atoms in the slab.
func (S *Slab) Len() int {
	return len(S.Atoms)
}

// Atom returns the atom corresponding to the index i.
// Panics if out of range.
func (S *Slab) Atom(i int) *Atom {
	if i < 0 || i >= S.Len() {
		panic(fmt.Sprintf("goslab: requested atom %d out of bounds (%d)", i, S.Len()))
	}
	return S.Atoms[i]
}

// XYZ returns the Cartesian coordinates of the atom i.
// Panics if out of range.
func (S *Slab) XYZ(i int) (float64, float64, float64) {
	if i < 0 || i >= S.Len() {
		panic(fmt.Sprintf("goslab: requested coordinate %d out of bounds (%d)", i, S.Len()))
	}
	return S.Coords.At(i, 0), S.Coords.At(i, 1), S.Coords.At(i, 2)
}

// Vec returns the coordinates of the atom i as a 3-vector.
// Panics if out of range.
func (S *Slab) Vec(i int) [3]float64 {
	x, y, z := S.XYZ(i)
	return [3]float64{x, y, z}
}

// CellVec returns the i-th cell vector (a row of the cell matrix).
func (S *Slab) CellVec(i int) [3]float64 {
	if i < 0 || i > 2 {
		panic(fmt.Sprintf("goslab: requested cell vector %d", i))
	}
	return [3]float64{S.Cell.At(i, 0), S.Cell.At(i, 1), S.Cell.At(i, 2)}
}

// ZColumn returns a fresh slice with the z coordinate of every atom,
// in atom order.
func (S *Slab) ZColumn() []float64 {
	zs := make([]float64, S.Len())
	for i := range zs {
		zs[i] = S.Coords.At(i, 2)
	}
	return zs
}

// Periodic returns whether the slab is periodic along at least one cell vector.
func (S *Slab) Periodic() bool {
	return S.PBC[0] || S.PBC[1] || S.PBC[2]
}

// CheckCell returns an error if the cell volume is degenerate, i.e. the cell
// vectors are not linearly independent. Minimum-image distances on such a
// cell would be garbage, so this is a hard failure, not a warning.
func (S *Slab) CheckCell() error {
	if math.Abs(det3(S.Cell)) <= appzero {
		return Error{"goslab: degenerate cell (near-zero volume)", []string{"CheckCell"}, true}
	}
	return nil
}

// Copy returns a deep copy of the slab. The copy shares nothing with the
// original, so the caller can modify either freely.
func (S *Slab) Copy() *Slab {
	if S == nil {
		panic("goslab: attempted to copy a nil slab")
	}
	N := new(Slab)
	N.Atoms = make([]*Atom, S.Len())
	for i, at := range S.Atoms {
		N.Atoms[i] = at.Copy()
	}
	N.Coords = mat.DenseCopyOf(S.Coords)
	N.Cell = mat.DenseCopyOf(S.Cell)
	N.PBC = S.PBC
	return N
}

// AppendAtom returns a copy of the slab with at appended at position pos.
// The receiver is not modified.
func (S *Slab) AppendAtom(at *Atom, pos [3]float64) *Slab {
	if at == nil {
		panic("goslab: attempted to append a nil atom")
	}
	N := new(Slab)
	N.Atoms = make([]*Atom, S.Len()+1)
	for i, v := range S.Atoms {
		N.Atoms[i] = v.Copy()
	}
	N.Atoms[S.Len()] = at.Copy()
	N.Coords = mat.NewDense(S.Len()+1, 3, nil)
	r, _ := S.Coords.Dims()
	for i := 0; i < r; i++ {
		N.Coords.Set(i, 0, S.Coords.At(i, 0))
		N.Coords.Set(i, 1, S.Coords.At(i, 1))
		N.Coords.Set(i, 2, S.Coords.At(i, 2))
	}
	N.Coords.Set(r, 0, pos[0])
	N.Coords.Set(r, 1, pos[1])
	N.Coords.Set(r, 2, pos[2])
	N.Cell = mat.DenseCopyOf(S.Cell)
	N.PBC = S.PBC
	return N
}
