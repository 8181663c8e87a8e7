/*
Package slabplot renders a top-down overview of a slab run: the xy
projection of the atoms, the candidate surface atoms, the convex-hull
boundary and the generated adsorption sites. It exists for eyeballing a
batch, nothing downstream consumes the pictures.
*/
package slabplot

import (
	"image/color"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	slab "github.com/sbravoc/goslab"
	"github.com/sbravoc/goslab/sites"
)

// Overview writes a PNG to path with the xy projection of the slab atoms,
// the hull boundary through the surface atoms, and one glyph per generated
// site (top, bridge and hollow in different colors). surfaceAtoms is the
// hull-ordered index list from surface.Select.
func Overview(S *slab.Slab, surfaceAtoms []int, generated []sites.Site, title, path string) error {
	if S == nil {
		return slab.NewError("goslab/slabplot: nil slab", "slabplot.Overview", true)
	}
	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = 3 * vg.Millimeter
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	atomPts := make(plotter.XYs, S.Len())
	for i := 0; i < S.Len(); i++ {
		x, y, _ := S.XYZ(i)
		atomPts[i].X = x
		atomPts[i].Y = y
	}
	atomsSc, err := plotter.NewScatter(atomPts)
	if err != nil {
		return err
	}
	atomsSc.GlyphStyle.Color = color.RGBA{R: 160, G: 160, B: 160, A: 255}
	atomsSc.GlyphStyle.Radius = vg.Points(2)
	p.Add(atomsSc)
	p.Legend.Add("atoms", atomsSc)

	if len(surfaceAtoms) > 0 {
		boundary := make(plotter.XYs, len(surfaceAtoms)+1)
		for k, i := range surfaceAtoms {
			x, y, _ := S.XYZ(i)
			boundary[k].X = x
			boundary[k].Y = y
		}
		boundary[len(surfaceAtoms)] = boundary[0] //close the polygon
		hullLine, err := plotter.NewLine(boundary)
		if err != nil {
			return err
		}
		hullLine.Width = vg.Points(1)
		hullLine.Color = color.RGBA{B: 255, A: 255}
		p.Add(hullLine)
		p.Legend.Add("hull", hullLine)
	}

	kinds := []struct {
		prefix string
		col    color.RGBA
	}{
		{"Top", color.RGBA{R: 200, A: 255}},
		{"Bridge", color.RGBA{G: 150, A: 255}},
		{"Hollow", color.RGBA{R: 180, B: 180, A: 255}},
	}
	for _, kind := range kinds {
		pts := make(plotter.XYs, 0, len(generated))
		for _, st := range generated {
			if strings.HasPrefix(st.Label, kind.prefix) {
				pts = append(pts, plotter.XY{X: st.Pos[0], Y: st.Pos[1]})
			}
		}
		if len(pts) == 0 {
			continue
		}
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		sc.GlyphStyle.Color = kind.col
		sc.GlyphStyle.Radius = vg.Points(2.5)
		p.Add(sc)
		p.Legend.Add(strings.ToLower(kind.prefix), sc)
	}
	return p.Save(6*vg.Inch, 6*vg.Inch, path)
}
