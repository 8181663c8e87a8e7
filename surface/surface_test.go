package surface

import (
	"fmt"
	"sort"
	"testing"

	"gonum.org/v1/gonum/mat"

	slab "github.com/sbravoc/goslab"
)

type recorder struct {
	infos []string
	warns []string
}

func (r *recorder) Infof(format string, a ...interface{}) {
	r.infos = append(r.infos, fmt.Sprintf(format, a...))
}

func (r *recorder) Warnf(format string, a ...interface{}) {
	r.warns = append(r.warns, fmt.Sprintf(format, a...))
}

// twoLayer builds a slab with a 2x2 square layer at each of the given z
// values, edge length 2.
func twoLayer(zs ...float64) *slab.Slab {
	var atoms []*slab.Atom
	var vals []float64
	id := 0
	for _, z := range zs {
		for _, xy := range [][2]float64{{0, 0}, {2, 0}, {2, 2}, {0, 2}} {
			atoms = append(atoms, &slab.Atom{Symbol: "Cu", Id: id})
			vals = append(vals, xy[0], xy[1], z)
			id++
		}
	}
	coords := mat.NewDense(len(atoms), 3, vals)
	cell := mat.NewDense(3, 3, []float64{10, 0, 0, 0, 10, 0, 0, 0, 20})
	s, err := slab.New(atoms, coords, cell, [3]bool{true, true, false})
	if err != nil {
		panic(err.Error())
	}
	return s
}

func TestPercentile(Te *testing.T) {
	xs := []float64{3, 0, 2, 1} //must not need sorted input
	if v := Percentile(xs, 0); v != 0 {
		Te.Errorf("0th percentile: %g", v)
	}
	if v := Percentile(xs, 100); v != 3 {
		Te.Errorf("100th percentile: %g", v)
	}
	if v := Percentile(xs, 50); v != 1.5 {
		Te.Errorf("50th percentile: %g", v)
	}
	if v := Percentile(xs, 25); v != 0.75 {
		Te.Errorf("25th percentile: %g", v)
	}
	if xs[0] != 3 {
		Te.Error("Percentile sorted its input in place")
	}
	single := []float64{7}
	if v := Percentile(single, 70); v != 7 {
		Te.Errorf("percentile of a single value: %g", v)
	}
}

func TestSelectTwoLayers(Te *testing.T) {
	s := twoLayer(0, 2)
	rec := new(recorder)
	surf, err := Select(s, 50, rec)
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println("surface atoms:", surf)
	if len(surf) != 4 {
		Te.Fatalf("expected the 4 top-layer atoms, got %v", surf)
	}
	sorted := append([]int{}, surf...)
	sort.Ints(sorted)
	for k, want := range []int{4, 5, 6, 7} {
		if sorted[k] != want {
			Te.Fatalf("expected atoms 4-7, got %v", surf)
		}
	}
	//every selected atom must sit at the top layer
	for _, i := range surf {
		_, _, z := s.XYZ(i)
		if z != 2 {
			Te.Errorf("atom %d at z=%g selected as surface", i, z)
		}
	}
}

func TestSelectInteriorExcluded(Te *testing.T) {
	//4 corners plus a center atom, all at the same z: the center projects
	//inside the hull and must not be surface.
	atoms := make([]*slab.Atom, 5)
	for i := range atoms {
		atoms[i] = &slab.Atom{Symbol: "Cu", Id: i}
	}
	coords := mat.NewDense(5, 3, []float64{
		0, 0, 1,
		2, 0, 1,
		2, 2, 1,
		0, 2, 1,
		1, 1, 1,
	})
	s, err := slab.New(atoms, coords, nil, [3]bool{})
	if err != nil {
		Te.Fatal(err)
	}
	surf, err := Select(s, 0)
	if err != nil {
		Te.Fatal(err)
	}
	if len(surf) != 4 {
		Te.Fatalf("expected 4 hull atoms, got %v", surf)
	}
	for _, i := range surf {
		if i == 4 {
			Te.Error("the interior atom came back as surface")
		}
	}
}

func TestSelectHullOrder(Te *testing.T) {
	//hull traversal must be counter-clockwise: the signed area of the
	//returned polygon is positive.
	s := twoLayer(0, 2)
	surf, err := Select(s, 50)
	if err != nil {
		Te.Fatal(err)
	}
	area := 0.0
	for k := range surf {
		x1, y1, _ := s.XYZ(surf[k])
		x2, y2, _ := s.XYZ(surf[(k+1)%len(surf)])
		area += x1*y2 - x2*y1
	}
	if area <= 0 {
		Te.Errorf("hull signed area %g, expected counter-clockwise (positive)", area/2)
	}
}

func TestSelectTooFewCandidates(Te *testing.T) {
	//3 atoms at z=0 and one far above: a high percentile leaves a single
	//candidate, which is returned with a warning.
	atoms := make([]*slab.Atom, 4)
	for i := range atoms {
		atoms[i] = &slab.Atom{Symbol: "Cu", Id: i}
	}
	coords := mat.NewDense(4, 3, []float64{
		0, 0, 0,
		1, 0, 0,
		0, 1, 0,
		0.5, 0.5, 5,
	})
	s, err := slab.New(atoms, coords, nil, [3]bool{})
	if err != nil {
		Te.Fatal(err)
	}
	rec := new(recorder)
	surf, err := Select(s, 90, rec)
	if err != nil {
		Te.Fatal(err)
	}
	if len(surf) != 1 || surf[0] != 3 {
		Te.Errorf("expected only atom 3, got %v", surf)
	}
	if len(rec.warns) == 0 {
		Te.Error("a too-small candidate set should be warned about")
	}
}

func TestSelectCollinear(Te *testing.T) {
	//candidates on a line have no 2D hull; all of them come back, with a
	//warning.
	atoms := make([]*slab.Atom, 4)
	for i := range atoms {
		atoms[i] = &slab.Atom{Symbol: "Cu", Id: i}
	}
	coords := mat.NewDense(4, 3, []float64{
		0, 0, 1,
		1, 0, 1,
		2, 0, 1,
		3, 0, 1,
	})
	s, err := slab.New(atoms, coords, nil, [3]bool{})
	if err != nil {
		Te.Fatal(err)
	}
	rec := new(recorder)
	surf, err := Select(s, 0, rec)
	if err != nil {
		Te.Fatal(err)
	}
	if len(surf) != 4 {
		Te.Errorf("collinear fallback should return all candidates, got %v", surf)
	}
	if len(rec.warns) == 0 {
		Te.Error("the collinear degeneracy should be warned about")
	}
}

func TestSelectBadPercentile(Te *testing.T) {
	s := twoLayer(0, 2)
	if _, err := Select(s, -1); err == nil {
		Te.Error("expected an error for a negative percentile")
	}
	if _, err := Select(s, 100.5); err == nil {
		Te.Error("expected an error for a percentile over 100")
	}
}

func TestSelectThresholdInclusive(Te *testing.T) {
	//the 100th percentile equals the top z exactly; the comparison is
	//inclusive so the top layer still qualifies.
	s := twoLayer(0, 2)
	surf, err := Select(s, 100)
	if err != nil {
		Te.Fatal(err)
	}
	if len(surf) != 4 {
		Te.Errorf("expected 4 atoms at the 100th percentile, got %v", surf)
	}
}
