/*
Package sites enumerates candidate adsorption positions above the surface
atoms of an aligned slab. Three kinds of sites are proposed: top sites over
single surface atoms, bridge sites over pairs within a distance threshold,
and hollow sites over triples whose three legs are all within the threshold.
Pair and triple geometry honors the minimum-image convention, so sites are
placed correctly across periodic boundaries. The enumeration is exhaustive
and deterministic; near-duplicate sites (a bridge coinciding with a hollow,
say) are all kept, and any merging is left to whatever consumes the list.
*/
package sites

import (
	"fmt"

	slab "github.com/sbravoc/goslab"
)

const (
	defAdsDist   float64 = 1.8 //height of the adsorbate above the site, in the unit of the coordinates
	defDistThr   float64 = 3.0 //maximum surface-atom separation for bridge/hollow sites
	defMargin    float64 = 0.2 //a site must clear its base atoms by this much
	defAdsorbate string  = "H"
)

// Site is a proposed adsorption position. The label encodes the site kind
// and the contributing surface-atom indices, e.g. "Bridge_3_7".
type Site struct {
	Label string
	Pos   [3]float64
}

// Options contains the parameters for the site enumeration. All lengths are
// in the unit of the slab coordinates.
type Options struct {
	adsDist   float64
	distThr   float64
	margin    float64
	adsorbate string
	rep       slab.Reporter
}

// DefaultOptions returns the reasonable defaults for metallic slabs: the
// adsorbate 1.8 above the site, bridge/hollow partners within 3.0, and a
// 0.2 height margin.
func DefaultOptions() *Options {
	r := new(Options)
	r.adsDist = defAdsDist
	r.distThr = defDistThr
	r.margin = defMargin
	r.adsorbate = defAdsorbate
	r.rep = slab.Discard
	return r
}

// AdsDist returns the height of the proposed sites above their base atoms,
// and sets it first, if a value is given.
func (O *Options) AdsDist(d ...float64) float64 {
	if len(d) > 0 {
		O.adsDist = d[0]
	}
	return O.adsDist
}

// DistThr returns the maximum pairwise minimum-image distance for two or
// three surface atoms to support a bridge or hollow site, and sets it first,
// if a value is given.
func (O *Options) DistThr(d ...float64) float64 {
	if len(d) > 0 {
		O.distThr = d[0]
	}
	return O.distThr
}

// Margin returns the height a site must clear above its base atoms to be
// kept, and sets it first, if a value is given.
func (O *Options) Margin(m ...float64) float64 {
	if len(m) > 0 {
		O.margin = m[0]
	}
	return O.margin
}

// Adsorbate returns the element symbol placed by Place when called with an
// empty element, and sets it first, if a value is given.
func (O *Options) Adsorbate(s ...string) string {
	if len(s) > 0 && s[0] != "" {
		O.adsorbate = s[0]
	}
	return O.adsorbate
}

// Reporter returns the diagnostics sink for the enumeration, and sets it
// first, if one is given.
func (O *Options) Reporter(r ...slab.Reporter) slab.Reporter {
	if len(r) > 0 && r[0] != nil {
		O.rep = r[0]
	}
	return O.rep
}

// validate surfaces out-of-range parameters immediately. These are caller
// bugs or bad user input, never retried.
func (O *Options) validate() error {
	if O.adsDist <= 0 {
		return slab.InvalidConfig("adsDist", O.adsDist, "sites.Generate")
	}
	if O.distThr < 0 {
		return slab.InvalidConfig("distThr", O.distThr, "sites.Generate")
	}
	if O.margin < 0 {
		return slab.InvalidConfig("margin", O.margin, "sites.Generate")
	}
	return nil
}

// Generate enumerates the adsorption sites of S above the given surface
// atoms, in a deterministic order: all top sites over single atoms in the
// given surface order, then all bridge sites over pairs (i<j over positions
// in the surface sequence), then all hollow sites over triples (i<j<k).
// An empty surface produces an empty site list and a warning, not an error.
// The slab must have a non-degenerate cell whenever one of its axes is
// periodic, since pair and triple distances are minimum-image distances.
func Generate(S *slab.Slab, surfaceAtoms []int, options ...*Options) ([]Site, error) {
	var o *Options
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	} else {
		o = DefaultOptions()
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	if S.Periodic() {
		if err := S.CheckCell(); err != nil {
			return nil, slab.ErrDecorate(err, "sites.Generate")
		}
	}
	for _, idx := range surfaceAtoms {
		if idx < 0 || idx >= S.Len() {
			return nil, slab.NewError(fmt.Sprintf("goslab/sites: surface atom index %d out of range (%d atoms)", idx, S.Len()), "sites.Generate", true)
		}
	}
	if len(surfaceAtoms) == 0 {
		o.rep.Warnf("empty surface: no sites to generate")
		return []Site{}, nil
	}
	sites := make([]Site, 0, len(surfaceAtoms)*4)

	//Top
	for _, idx := range surfaceAtoms {
		base := S.Vec(idx)
		site := [3]float64{base[0], base[1], base[2] + o.adsDist}
		if site[2] > base[2]+o.margin {
			sites = append(sites, Site{fmt.Sprintf("Top_%d", idx), site})
		}
	}

	//Bridge
	for i, idx1 := range surfaceAtoms {
		for _, idx2 := range surfaceAtoms[i+1:] {
			vec, d := S.MinImageVec(idx1, idx2)
			if d > o.distThr {
				continue
			}
			p1 := S.Vec(idx1)
			mid := slab.Add(p1, slab.Scale(0.5, vec))
			site := [3]float64{mid[0], mid[1], mid[2] + o.adsDist}
			if site[2] > max2(p1[2], S.Vec(idx2)[2])+o.margin {
				sites = append(sites, Site{fmt.Sprintf("Bridge_%d_%d", idx1, idx2), site})
			}
		}
	}

	//Hollow
	n := len(surfaceAtoms)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				idx1, idx2, idx3 := surfaceAtoms[i], surfaceAtoms[j], surfaceAtoms[k]
				v12, d12 := S.MinImageVec(idx1, idx2)
				v13, d13 := S.MinImageVec(idx1, idx3)
				_, d23 := S.MinImageVec(idx2, idx3)
				if d12 > o.distThr || d13 > o.distThr || d23 > o.distThr {
					continue
				}
				p1 := S.Vec(idx1)
				centroid := slab.Add(p1, slab.Scale(1.0/3.0, slab.Add(v12, v13)))
				site := [3]float64{centroid[0], centroid[1], centroid[2] + o.adsDist}
				zmax := max2(max2(p1[2], S.Vec(idx2)[2]), S.Vec(idx3)[2])
				if site[2] > zmax+o.margin {
					sites = append(sites, Site{fmt.Sprintf("Hollow_%d_%d_%d", idx1, idx2, idx3), site})
				}
			}
		}
	}
	o.rep.Infof("%d adsorption sites generated", len(sites))
	return sites, nil
}

func max2(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
