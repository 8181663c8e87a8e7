/*
 * poscar.go, part of goslab.
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

//VASP POSCAR/CONTCAR reading and writing. Only the VASP-5 flavor with a
//symbols line is supported; the elementless VASP-4 layout is rejected since
//guessing species from a file name helps nobody.

// PoscarRead reads a VASP POSCAR/CONTCAR file into a Slab. A ".gz" suffix is
// decompressed transparently. Slabs read this way are periodic along all
// three cell vectors.
func PoscarRead(path string) (*Slab, error) {
	f, err := openStructureFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	next := func() (string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", Error{"goslab: truncated POSCAR file " + path, []string{"PoscarRead"}, true}
		}
		return sc.Text(), nil
	}
	if _, err = next(); err != nil { //comment line
		return nil, err
	}
	line, err := next()
	if err != nil {
		return nil, err
	}
	scale, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil || scale <= 0 {
		return nil, Error{fmt.Sprintf("goslab: bad POSCAR scale factor in %s: %q", path, strings.TrimSpace(line)), []string{"PoscarRead"}, true}
	}
	cell := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		if line, err = next(); err != nil {
			return nil, err
		}
		v, err := parseFloats(line, 3)
		if err != nil {
			return nil, Error{fmt.Sprintf("goslab: bad cell vector %d in %s: %s", i, path, err.Error()), []string{"PoscarRead"}, true}
		}
		cell.Set(i, 0, v[0]*scale)
		cell.Set(i, 1, v[1]*scale)
		cell.Set(i, 2, v[2]*scale)
	}
	if line, err = next(); err != nil {
		return nil, err
	}
	symbols := strings.Fields(line)
	if len(symbols) == 0 {
		return nil, Error{"goslab: empty species line in " + path, []string{"PoscarRead"}, true}
	}
	if _, err := strconv.Atoi(symbols[0]); err == nil {
		return nil, Error{"goslab: " + path + " has no species symbols (VASP-4 layout); only VASP-5 POSCAR files are supported", []string{"PoscarRead"}, true}
	}
	if line, err = next(); err != nil {
		return nil, err
	}
	countfields := strings.Fields(line)
	if len(countfields) != len(symbols) {
		return nil, Error{fmt.Sprintf("goslab: %d species but %d counts in %s", len(symbols), len(countfields), path), []string{"PoscarRead"}, true}
	}
	counts := make([]int, len(countfields))
	natoms := 0
	for i, cf := range countfields {
		counts[i], err = strconv.Atoi(cf)
		if err != nil || counts[i] < 1 {
			return nil, Error{fmt.Sprintf("goslab: bad atom count %q in %s", cf, path), []string{"PoscarRead"}, true}
		}
		natoms += counts[i]
	}
	if line, err = next(); err != nil {
		return nil, err
	}
	if t := strings.TrimSpace(line); t != "" && (t[0] == 'S' || t[0] == 's') {
		//Selective dynamics; the flags per atom are ignored.
		if line, err = next(); err != nil {
			return nil, err
		}
	}
	mode := strings.TrimSpace(line)
	var cartesian bool
	switch {
	case mode != "" && (mode[0] == 'C' || mode[0] == 'c' || mode[0] == 'K' || mode[0] == 'k'):
		cartesian = true
	case mode != "" && (mode[0] == 'D' || mode[0] == 'd'):
		cartesian = false
	default:
		return nil, Error{fmt.Sprintf("goslab: bad coordinate mode %q in %s", mode, path), []string{"PoscarRead"}, true}
	}
	atoms := make([]*Atom, 0, natoms)
	coords := mat.NewDense(natoms, 3, nil)
	i := 0
	for sp, symbol := range symbols {
		for k := 0; k < counts[sp]; k++ {
			if line, err = next(); err != nil {
				return nil, err
			}
			v, err := parseFloats(line, 3)
			if err != nil {
				return nil, Error{fmt.Sprintf("goslab: bad coordinate line %d in %s: %s", i, path, err.Error()), []string{"PoscarRead"}, true}
			}
			if cartesian {
				coords.Set(i, 0, v[0]*scale)
				coords.Set(i, 1, v[1]*scale)
				coords.Set(i, 2, v[2]*scale)
			} else {
				for ax := 0; ax < 3; ax++ {
					coords.Set(i, ax, v[0]*cell.At(0, ax)+v[1]*cell.At(1, ax)+v[2]*cell.At(2, ax))
				}
			}
			atoms = append(atoms, &Atom{Symbol: symbol, Id: i})
			i++
		}
	}
	return New(atoms, coords, cell, [3]bool{true, true, true})
}

// PoscarWrite writes the slab to path as a Cartesian VASP-5 POSCAR file.
// Atoms are written grouped by species in first-appearance order, as the
// format requires; a slab with interleaved species comes back from a
// read in the grouped order.
func PoscarWrite(path string, S *Slab, comment string) error {
	if S == nil || S.Len() < 1 {
		return Error{"goslab: nothing to write", []string{"PoscarWrite"}, true}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	defer w.Flush()
	if comment == "" {
		comment = "goslab generated structure"
	}
	fmt.Fprintf(w, "%s\n", comment)
	fmt.Fprintf(w, "%19.14f\n", 1.0)
	for i := 0; i < 3; i++ {
		fmt.Fprintf(w, " %21.16f %21.16f %21.16f\n", S.Cell.At(i, 0), S.Cell.At(i, 1), S.Cell.At(i, 2))
	}
	symbols, members := groupBySymbol(S)
	for _, s := range symbols {
		fmt.Fprintf(w, " %s", s)
	}
	fmt.Fprint(w, "\n")
	for _, s := range symbols {
		fmt.Fprintf(w, " %d", len(members[s]))
	}
	fmt.Fprint(w, "\n")
	fmt.Fprint(w, "Cartesian\n")
	for _, s := range symbols {
		for _, i := range members[s] {
			x, y, z := S.XYZ(i)
			fmt.Fprintf(w, " %19.16f %19.16f %19.16f\n", x, y, z)
		}
	}
	return nil
}

// parseFloats reads at least n whitespace-separated floats from the start of
// line; extra fields are ignored.
func parseFloats(line string, n int) ([]float64, error) {
	fields := strings.Fields(line)
	if len(fields) < n {
		return nil, fmt.Errorf("expected %d fields, got %d", n, len(fields))
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, fmt.Errorf("field %d (%q) is not a number", i, fields[i])
		}
		out[i] = v
	}
	return out, nil
}
