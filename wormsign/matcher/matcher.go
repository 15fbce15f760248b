package matcher

import (
	"github.com/wormsign/wormsign/internal/log"
	"github.com/wormsign/wormsign/wormsign/advisory"
	"github.com/wormsign/wormsign/wormsign/match"
	"github.com/wormsign/wormsign/wormsign/pkg"
)

// FindMatches tests every installed package for exact membership in the advisory set. Both the
// name and the version must be identical strings for a match; no fuzzy or range matching is
// applied. Matches are returned in the catalog's insertion order.
func FindMatches(catalog *pkg.Catalog, advisories advisory.Set) match.Matches {
	matches := match.NewMatches()

	for _, p := range catalog.Packages() {
		candidate := advisory.Entry{Package: p.Name, Version: p.Version}
		if !advisories.Contains(candidate) {
			continue
		}
		log.Debugf("compromised package found: %s", p)
		matches.Add(match.Match{
			Package:  p,
			Advisory: candidate,
		})
	}

	return matches
}
