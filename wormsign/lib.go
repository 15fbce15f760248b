package wormsign

import (
	"context"

	"github.com/spf13/afero"
	"github.com/wagoodman/go-partybus"

	"github.com/wormsign/wormsign/internal/bus"
	"github.com/wormsign/wormsign/internal/log"
	"github.com/wormsign/wormsign/wormsign/advisory"
	"github.com/wormsign/wormsign/wormsign/event"
	"github.com/wormsign/wormsign/wormsign/logger"
	"github.com/wormsign/wormsign/wormsign/match"
	"github.com/wormsign/wormsign/wormsign/matcher"
	"github.com/wormsign/wormsign/wormsign/pkg"
)

// LoadAdvisorySet returns the advisory baseline to scan against. When update is true the feed is
// first downloaded from its configured URL (bounded by ctx) and cached; otherwise the existing
// cache is used as-is, which keeps scans deterministic and offline-capable.
func LoadAdvisorySet(ctx context.Context, cfg advisory.Config, update bool) (advisory.Set, error) {
	curator := advisory.NewCurator(cfg)

	if update {
		if err := curator.Update(ctx); err != nil {
			return nil, err
		}
	}

	return curator.Load()
}

// FindInfections builds the installed package catalog for the project at dir and intersects it
// with the advisory set.
func FindInfections(fs afero.Fs, dir string, advisories advisory.Set) (match.Matches, *pkg.Catalog, error) {
	bus.Publish(partybus.Event{
		Type:  event.InfectionScanningStarted,
		Value: dir,
	})

	catalog, err := pkg.Provide(fs, dir)
	if err != nil {
		return match.NewMatches(), nil, err
	}
	log.Infof("scanning %d unique packages", catalog.Count())

	return FindInfectionsForCatalog(catalog, advisories), catalog, nil
}

// FindInfectionsForCatalog intersects an already-built catalog with the advisory set.
func FindInfectionsForCatalog(catalog *pkg.Catalog, advisories advisory.Set) match.Matches {
	return matcher.FindMatches(catalog, advisories)
}

// SetLogger sets the logger object used for all logging calls.
func SetLogger(logger logger.Logger) {
	log.Log = logger
}

// SetBus sets the event bus for all library bus publish events onto (in the publisher role).
func SetBus(b *partybus.Bus) {
	bus.SetPublisher(b)
}
