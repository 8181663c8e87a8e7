/*
 * files.go, part of goslab.
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
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

//Shared plumbing for the structure-file readers. Readers are format-specific
//(poscar.go, xyz.go); everything here is agnostic.

// openStructureFile opens path for reading, transparently decompressing it
// when the name ends in ".gz".
func openStructureFile(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(strings.ToLower(path), ".gz") {
		return f, nil
	}
	g, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, Error{"goslab: can't decompress " + path + ": " + err.Error(), []string{"openStructureFile"}, true}
	}
	return &gzFile{g, f}, nil
}

type gzFile struct {
	*gzip.Reader
	f *os.File
}

func (g *gzFile) Close() error {
	err := g.Reader.Close()
	err2 := g.f.Close()
	if err != nil {
		return err
	}
	return err2
}

// groupBySymbol returns the distinct element symbols of the slab in first
// appearance order, and for each symbol the indices of its atoms in atom
// order. VASP files need atoms grouped by species, so writers use this to
// decide the output order.
func groupBySymbol(S *Slab) ([]string, map[string][]int) {
	symbols := make([]string, 0, 4)
	members := make(map[string][]int)
	for i, at := range S.Atoms {
		if _, ok := members[at.Symbol]; !ok {
			symbols = append(symbols, at.Symbol)
		}
		members[at.Symbol] = append(members[at.Symbol], i)
	}
	return symbols, members
}
