/*
 * files_test.go, part of goslab.
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
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"gonum.org/v1/gonum/mat"
)

// mixed returns a small two-species slab with interleaved symbols, to
// exercise the grouping the POSCAR writer does.
func mixed() *Slab {
	atoms := []*Atom{
		{Symbol: "Pt", Id: 0},
		{Symbol: "O", Id: 1},
		{Symbol: "Pt", Id: 2},
	}
	coords := mat.NewDense(3, 3, []float64{
		0, 0, 0,
		1.2, 0.3, 2.0,
		2.4, 0.6, 0,
	})
	cell := mat.NewDense(3, 3, []float64{5, 0, 0, 0, 5, 0, 0, 0, 15})
	s, err := New(atoms, coords, cell, [3]bool{true, true, true})
	if err != nil {
		panic(err.Error())
	}
	return s
}

func TestPoscarRoundTrip(Te *testing.T) {
	s := mixed()
	path := filepath.Join(Te.TempDir(), "POSCAR")
	if err := PoscarWrite(path, s, "roundtrip test"); err != nil {
		Te.Fatal(err)
	}
	r, err := PoscarRead(path)
	if err != nil {
		Te.Fatal(err)
	}
	if r.Len() != s.Len() {
		Te.Fatalf("wrote %d atoms, read %d", s.Len(), r.Len())
	}
	if !mat.EqualApprox(r.Cell, s.Cell, 1e-10) {
		Te.Error("cell did not survive the round trip")
	}
	if !r.Periodic() {
		Te.Error("POSCAR slabs should be periodic")
	}
	//the writer groups by species, so the Pt atoms come first
	want := []string{"Pt", "Pt", "O"}
	for i, symbol := range want {
		if r.Atom(i).Symbol != symbol {
			Te.Errorf("atom %d is %s, wanted %s", i, r.Atom(i).Symbol, symbol)
		}
	}
	//atom 1 of the original is atom 2 of the grouped file
	x, y, z := r.XYZ(2)
	if x != 1.2 || y != 0.3 || z != 2.0 {
		Te.Errorf("O atom read back at (%g,%g,%g)", x, y, z)
	}
}

func TestPoscarRejectsVasp4(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "POSCAR")
	content := "no symbols\n1.0\n5 0 0\n0 5 0\n0 0 5\n 2\nCartesian\n0 0 0\n1 1 1\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		Te.Fatal(err)
	}
	if _, err := PoscarRead(path); err == nil {
		Te.Error("expected an error for a POSCAR without a species line")
	}
}

func TestPoscarDirect(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "POSCAR")
	content := "direct test\n1.0\n4 0 0\n0 4 0\n0 0 10\nPt\n1\nDirect\n0.5 0.5 0.25\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		Te.Fatal(err)
	}
	s, err := PoscarRead(path)
	if err != nil {
		Te.Fatal(err)
	}
	x, y, z := s.XYZ(0)
	if x != 2 || y != 2 || z != 2.5 {
		Te.Errorf("fractional coordinates converted to (%g,%g,%g), wanted (2,2,2.5)", x, y, z)
	}
}

func TestXYZRoundTrip(Te *testing.T) {
	s := mixed()
	path := filepath.Join(Te.TempDir(), "slab.xyz")
	if err := XYZWrite(path, s, "roundtrip test"); err != nil {
		Te.Fatal(err)
	}
	r, err := XYZRead(path)
	if err != nil {
		Te.Fatal(err)
	}
	if r.Len() != s.Len() {
		Te.Fatalf("wrote %d atoms, read %d", s.Len(), r.Len())
	}
	if !r.Periodic() {
		Te.Error("the Lattice entry should make the slab periodic")
	}
	if !mat.EqualApprox(r.Cell, s.Cell, 1e-10) {
		Te.Error("cell did not survive the round trip")
	}
	if !mat.EqualApprox(r.Coords, s.Coords, 1e-6) {
		Te.Error("coordinates did not survive the round trip")
	}
	for i := 0; i < s.Len(); i++ {
		if r.Atom(i).Symbol != s.Atom(i).Symbol {
			Te.Errorf("atom %d symbol %s, wanted %s", i, r.Atom(i).Symbol, s.Atom(i).Symbol)
		}
	}
}

func TestXYZNoLattice(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "mol.xyz")
	content := "2\njust a molecule\nH 0 0 0\nH 0 0 0.74\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		Te.Fatal(err)
	}
	s, err := XYZRead(path)
	if err != nil {
		Te.Fatal(err)
	}
	if s.Periodic() {
		Te.Error("an XYZ file with no Lattice entry should not be periodic")
	}
	if s.Len() != 2 {
		Te.Errorf("read %d atoms", s.Len())
	}
}

func TestGzippedRead(Te *testing.T) {
	s := mixed()
	dir := Te.TempDir()
	plain := filepath.Join(dir, "slab.xyz")
	if err := XYZWrite(plain, s, "gz test"); err != nil {
		Te.Fatal(err)
	}
	data, err := os.ReadFile(plain)
	if err != nil {
		Te.Fatal(err)
	}
	zpath := filepath.Join(dir, "slab.xyz.gz")
	f, err := os.Create(zpath)
	if err != nil {
		Te.Fatal(err)
	}
	zw := gzip.NewWriter(f)
	if _, err := zw.Write(data); err != nil {
		Te.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		Te.Fatal(err)
	}
	f.Close()
	r, err := XYZRead(zpath)
	if err != nil {
		Te.Fatal(err)
	}
	if r.Len() != s.Len() {
		Te.Errorf("read %d atoms from the gzipped file, wanted %d", r.Len(), s.Len())
	}
}
