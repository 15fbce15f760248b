package pkg

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/wormsign/wormsign/internal/log"
	"github.com/wormsign/wormsign/wormsign/version"
)

// ManifestFileName is the conventional name of the declared-dependency manifest.
const ManifestFileName = "package.json"

var (
	// ErrManifestMissing indicates the declared manifest is absent. No installed set can be built
	// without it, so this condition is fatal.
	ErrManifestMissing = errors.New("manifest not found")

	// ErrManifestMalformed indicates the declared manifest is present but not valid JSON.
	ErrManifestMalformed = errors.New("malformed manifest")
)

// dependencyCategories are the recognized manifest sections, in merge order. A name declared in
// more than one category resolves to the version from the later category.
var dependencyCategories = []string{
	"dependencies",
	"devDependencies",
	"peerDependencies",
	"optionalDependencies",
}

// ParseManifest extracts the declared dependency set from a package.json file, merging all
// recognized dependency categories into one catalog. Version expressions are normalized to
// concrete tokens (comparator prefixes stripped).
func ParseManifest(fs afero.Fs, path string) (*Catalog, error) {
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrManifestMissing, path)
		}
		return nil, fmt.Errorf("unable to read manifest %q: %w", path, err)
	}

	sections, err := decodeOrderedObject(content)
	if err != nil {
		return nil, fmt.Errorf("%w (%s): %v", ErrManifestMalformed, path, err)
	}

	byKey := make(map[string]json.RawMessage)
	for _, section := range sections {
		byKey[section.key] = section.raw
	}

	catalog := NewCatalog()
	for _, category := range dependencyCategories {
		raw, ok := byKey[category]
		if !ok {
			continue
		}

		deps, err := decodeOrderedObject(raw)
		if err != nil {
			return nil, fmt.Errorf("%w (%s.%s): %v", ErrManifestMalformed, path, category, err)
		}

		for _, dep := range deps {
			var expression string
			if err := json.Unmarshal(dep.raw, &expression); err != nil {
				log.Debugf("skipping manifest entry %q with non-string version", dep.key)
				continue
			}
			catalog.Set(dep.key, version.Normalize(expression))
		}
	}

	return catalog, nil
}
