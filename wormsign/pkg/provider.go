package pkg

import (
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/wormsign/wormsign/internal/log"
)

// Provide builds the installed package catalog for the project at dir, combining the declared
// manifest with the lock file when one is present. A malformed lock file downgrades to a warning
// and the scan proceeds with the declared dependencies only; a missing or malformed manifest is
// fatal.
func Provide(fs afero.Fs, dir string) (*Catalog, error) {
	declared, err := ParseManifest(fs, filepath.Join(dir, ManifestFileName))
	if err != nil {
		return nil, err
	}
	log.Infof("found %d declared packages in %s", declared.Count(), ManifestFileName)

	resolved, err := ParseLock(fs, filepath.Join(dir, LockFileName))
	if err != nil {
		log.Warnf("unable to parse %s, scanning declared dependencies only: %+v", LockFileName, err)
		resolved = NewCatalog()
	} else if resolved.Count() > 0 {
		log.Infof("found %d resolved packages in %s (including transitive dependencies)", resolved.Count(), LockFileName)
	}

	return MergeCatalogs(declared, resolved), nil
}
