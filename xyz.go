/*
 * xyz.go, part of goslab.
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
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// XYZRead reads an XYZ file into a Slab. A ".gz" suffix is decompressed
// transparently. When the comment line carries an extended-XYZ
// Lattice="ax ay az bx by bz cx cy cz" entry the cell is taken from it and
// the slab is periodic along all three vectors; otherwise the cell is the
// identity placeholder and the slab is not periodic at all.
func XYZRead(path string) (*Slab, error) {
	f, err := openStructureFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		return nil, Error{"goslab: empty XYZ file " + path, []string{"XYZRead"}, true}
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil || natoms < 1 {
		return nil, Error{fmt.Sprintf("goslab: bad atom count line in %s: %q", path, strings.TrimSpace(sc.Text())), []string{"XYZRead"}, true}
	}
	if !sc.Scan() {
		return nil, Error{"goslab: truncated XYZ file " + path, []string{"XYZRead"}, true}
	}
	cell, pbc, err := parseLattice(sc.Text())
	if err != nil {
		return nil, Error{fmt.Sprintf("goslab: bad Lattice entry in %s: %s", path, err.Error()), []string{"XYZRead"}, true}
	}
	atoms := make([]*Atom, 0, natoms)
	coords := mat.NewDense(natoms, 3, nil)
	for i := 0; i < natoms; i++ {
		if !sc.Scan() {
			return nil, Error{fmt.Sprintf("goslab: %s ends after %d of %d atoms", path, i, natoms), []string{"XYZRead"}, true}
		}
		fields := strings.Fields(sc.Text())
		if len(fields) < 4 {
			return nil, Error{fmt.Sprintf("goslab: malformed atom line %d in %s", i, path), []string{"XYZRead"}, true}
		}
		for ax := 0; ax < 3; ax++ {
			v, err := strconv.ParseFloat(fields[ax+1], 64)
			if err != nil {
				return nil, Error{fmt.Sprintf("goslab: bad coordinate on atom line %d in %s", i, path), []string{"XYZRead"}, true}
			}
			coords.Set(i, ax, v)
		}
		atoms = append(atoms, &Atom{Symbol: fields[0], Id: i})
	}
	return New(atoms, coords, cell, pbc)
}

// XYZWrite writes the slab to path in XYZ format. A periodic slab gets an
// extended-XYZ Lattice entry on the comment line so the cell survives a
// round trip.
func XYZWrite(path string, S *Slab, comment string) error {
	if S == nil || S.Len() < 1 {
		return Error{"goslab: nothing to write", []string{"XYZWrite"}, true}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	defer w.Flush()
	fmt.Fprintf(w, "%d\n", S.Len())
	if S.Periodic() {
		fmt.Fprintf(w, "Lattice=\"%g %g %g %g %g %g %g %g %g\" %s\n",
			S.Cell.At(0, 0), S.Cell.At(0, 1), S.Cell.At(0, 2),
			S.Cell.At(1, 0), S.Cell.At(1, 1), S.Cell.At(1, 2),
			S.Cell.At(2, 0), S.Cell.At(2, 1), S.Cell.At(2, 2), comment)
	} else {
		fmt.Fprintf(w, "%s\n", comment)
	}
	for i := 0; i < S.Len(); i++ {
		x, y, z := S.XYZ(i)
		fmt.Fprintf(w, "%-3s %12.6f %12.6f %12.6f\n", S.Atom(i).Symbol, x, y, z)
	}
	return nil
}

// parseLattice extracts an extended-XYZ Lattice="..." entry from an XYZ
// comment line. Without one, it returns a nil cell (New replaces it with the
// identity) and no periodicity.
func parseLattice(comment string) (*mat.Dense, [3]bool, error) {
	idx := strings.Index(comment, "Lattice=\"")
	if idx < 0 {
		return nil, [3]bool{}, nil
	}
	rest := comment[idx+len("Lattice=\""):]
	end := strings.Index(rest, "\"")
	if end < 0 {
		return nil, [3]bool{}, fmt.Errorf("unterminated Lattice quote")
	}
	fields := strings.Fields(rest[:end])
	if len(fields) != 9 {
		return nil, [3]bool{}, fmt.Errorf("expected 9 lattice components, got %d", len(fields))
	}
	vals := make([]float64, 9)
	for i, fd := range fields {
		v, err := strconv.ParseFloat(fd, 64)
		if err != nil {
			return nil, [3]bool{}, fmt.Errorf("lattice component %q is not a number", fd)
		}
		vals[i] = v
	}
	return mat.NewDense(3, 3, vals), [3]bool{true, true, true}, nil
}
