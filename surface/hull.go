package surface

import "sort"

//There is no 2D convex hull to be had from gonum, so this is a hand-rolled
//Andrew monotone chain. It is naive but the point sets here are candidate
//surface atoms, a few dozen at most.

// convexHull returns the indices of the points of pts that are vertices of
// their 2D convex hull, in counter-clockwise traversal order starting from
// the lexicographically smallest point. Collinear points along the boundary
// are not vertices and are excluded. If all points are collinear the result
// has fewer than 3 elements; the caller decides what to do with that.
func convexHull(pts [][2]float64) []int {
	n := len(pts)
	if n < 3 {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		return idx
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		pa, pb := pts[order[a]], pts[order[b]]
		if pa[0] != pb[0] {
			return pa[0] < pb[0]
		}
		return pa[1] < pb[1]
	})
	//lower hull, then upper hull.
	hull := make([]int, 0, 2*n)
	for _, i := range order {
		for len(hull) >= 2 && crossz(pts[hull[len(hull)-2]], pts[hull[len(hull)-1]], pts[i]) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, i)
	}
	lower := len(hull) + 1
	for k := n - 2; k >= 0; k-- {
		i := order[k]
		for len(hull) >= lower && crossz(pts[hull[len(hull)-2]], pts[hull[len(hull)-1]], pts[i]) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, i)
	}
	//first and last are the same point
	return hull[:len(hull)-1]
}

// crossz is the z component of (b-a)x(c-a); positive for a counter-clockwise
// turn at b.
func crossz(a, b, c [2]float64) float64 {
	return (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
}
