/*
Package surface identifies the exposed atoms of an aligned slab. The
screening is purely geometric: atoms whose z coordinate reaches the requested
percentile are candidates, and the candidates whose xy projections sit on the
2D convex hull of the candidate set are the surface. Chemistry plays no part;
every atom is treated identically.
*/
package surface

import (
	"math"
	"sort"

	slab "github.com/sbravoc/goslab"
)

// DefPercentile is the default z-coordinate percentile for candidate
// screening.
const DefPercentile float64 = 70

// Select returns the indices of the surface atoms of S: the candidates at or
// above the percentile-th percentile of z whose xy projections are vertices
// of the candidates' 2D convex hull, in hull-traversal (counter-clockwise)
// order. When fewer than 3 candidates exist, or their projections are
// collinear so that no 2D hull can be built, Select falls back to returning
// the whole candidate set unchanged and signals a warning through the
// reporter; that degeneracy is never a hard failure. An empty return with a
// nil error means no atoms reached the threshold.
func Select(S *slab.Slab, percentile float64, rep ...slab.Reporter) ([]int, error) {
	if percentile < 0 || percentile > 100 {
		return nil, slab.InvalidConfig("percentile", percentile, "surface.Select")
	}
	r := slab.PickReporter(rep)
	zs := S.ZColumn()
	zth := Percentile(zs, percentile)
	cand := make([]int, 0, len(zs))
	for i, z := range zs {
		if z >= zth {
			cand = append(cand, i)
		}
	}
	r.Infof("%.0fth percentile z = %.3f: %d candidates", percentile, zth, len(cand))
	if len(cand) == 0 {
		r.Warnf("no surface candidates found")
		return cand, nil
	}
	if len(cand) < 3 {
		r.Warnf("only %d candidates, too few for a hull; using all of them as surface", len(cand))
		return cand, nil
	}
	pts := make([][2]float64, len(cand))
	for k, i := range cand {
		x, y, _ := S.XYZ(i)
		pts[k] = [2]float64{x, y}
	}
	hull := convexHull(pts)
	if len(hull) < 3 {
		r.Warnf("degenerate (collinear) candidate projection; using all %d candidates as surface", len(cand))
		return cand, nil
	}
	surf := make([]int, len(hull))
	for k, h := range hull {
		surf[k] = cand[h]
	}
	r.Infof("%d surface atoms found via convex hull", len(surf))
	return surf, nil
}

// Percentile returns the p-th percentile of the values in xs, with linear
// interpolation between order statistics: the value at rank (n-1)*p/100 of
// the sorted data, interpolating between the two neighboring ranks when the
// rank is fractional. xs is not modified. Panics on empty input.
func Percentile(xs []float64, p float64) float64 {
	if len(xs) == 0 {
		panic("goslab/surface: percentile of empty data")
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)
	rank := (float64(len(sorted)-1)) * p / 100.0
	lo := int(math.Floor(rank))
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
