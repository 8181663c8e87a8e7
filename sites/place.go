package sites

import (
	slab "github.com/sbravoc/goslab"
)

// Place returns a new slab equal to S plus one atom of the given element at
// the site's position. S itself is never modified. An empty element places
// the default adsorbate. No steric check is made against the existing atoms;
// filtering overlapping placements is a job for whatever scores the
// resulting structures.
func Place(S *slab.Slab, site Site, element string) (*slab.Slab, error) {
	if S == nil {
		return nil, slab.NewError("goslab/sites: nil slab", "sites.Place", true)
	}
	if element == "" {
		element = defAdsorbate
	}
	at := &slab.Atom{Symbol: element, Id: S.Len()}
	return S.AppendAtom(at, site.Pos), nil
}
