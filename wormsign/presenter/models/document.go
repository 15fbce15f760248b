package models

import (
	"github.com/wormsign/wormsign/wormsign/advisory"
	"github.com/wormsign/wormsign/wormsign/match"
	"github.com/wormsign/wormsign/wormsign/pkg"
)

// Document represents the JSON document to be presented, and the structured source of truth for
// all report renderings.
type Document struct {
	Matches []Match `json:"matches"`
	Summary Summary `json:"summary"`
}

// Match is a single package flagged as a known-compromised release.
type Match struct {
	Package string `json:"package"`
	Version string `json:"version"`
}

// Summary carries the scan counts reported alongside any matches.
type Summary struct {
	PackagesScanned int `json:"packagesScanned"`
	AdvisoryEntries int `json:"advisoryEntries"`
	Infected        int `json:"infected"`
}

// NewDocument creates and populates a new Document, representing the given matches and scan scope.
func NewDocument(catalog *pkg.Catalog, advisories advisory.Set, matches match.Matches) Document {
	findings := make([]Match, 0)
	for _, m := range matches.Enumerate() {
		findings = append(findings, Match{
			Package: m.Package.Name,
			Version: m.Package.Version,
		})
	}

	return Document{
		Matches: findings,
		Summary: Summary{
			PackagesScanned: catalog.Count(),
			AdvisoryEntries: advisories.Count(),
			Infected:        matches.Count(),
		},
	}
}
