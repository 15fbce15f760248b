package pkg

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
)

// LockFileName is the conventional name of the lock/resolution file.
const LockFileName = "package-lock.json"

// ErrLockMalformed indicates the lock file is present but not parseable. This is recoverable:
// callers may proceed with the declared manifest only, surfacing a warning.
var ErrLockMalformed = errors.New("malformed lock file")

const installPathSegment = "node_modules"

// lockEntry mirrors the metadata fields of interest on a single lock file record. The
// Dependencies field only appears in the nested-tree (lockfileVersion 1) shape.
type lockEntry struct {
	Version      string          `json:"version"`
	Dependencies json.RawMessage `json:"dependencies"`
}

// ParseLock extracts the resolved dependency set from a package-lock.json file. Both known schema
// shapes are applied unconditionally, since a document may provide either or both:
//   - "packages": install-path-keyed mapping (lockfileVersion 2/3)
//   - "dependencies": nested tree resolved recursively (lockfileVersion 1)
//
// An absent lock file yields an empty catalog with no error; the lock file is optional.
func ParseLock(fs afero.Fs, path string) (*Catalog, error) {
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewCatalog(), nil
		}
		return nil, fmt.Errorf("unable to read lock file %q: %w", path, err)
	}

	sections, err := decodeOrderedObject(content)
	if err != nil {
		return nil, fmt.Errorf("%w (%s): %v", ErrLockMalformed, path, err)
	}

	catalog := NewCatalog()
	for _, section := range sections {
		switch section.key {
		case "packages":
			err = resolvePathKeyed(section.raw, catalog)
		case "dependencies":
			err = resolveNestedTree(section.raw, catalog)
		}
		if err != nil {
			return nil, fmt.Errorf("%w (%s.%s): %v", ErrLockMalformed, path, section.key, err)
		}
	}

	return catalog, nil
}

// resolvePathKeyed walks the install-path-keyed "packages" mapping. The root entry (empty path)
// is skipped, and each install path is reduced to a canonical package name.
func resolvePathKeyed(raw json.RawMessage, catalog *Catalog) error {
	entries, err := decodeOrderedObject(raw)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.key == "" {
			// the root package itself, not a dependency
			continue
		}

		var meta lockEntry
		if err := json.Unmarshal(entry.raw, &meta); err != nil || meta.Version == "" {
			continue
		}

		name := canonicalName(entry.key)
		if name == "" {
			continue
		}
		catalog.Set(name, meta.Version)
	}

	return nil
}

// canonicalName reduces a dependency install path to its package name: the segments after the
// last install-root segment, keeping two segments for scoped ("@scope/name") packages and one
// otherwise. Taking the last install root means a transitive copy nested under another package's
// install directory still resolves to its own name rather than its host's.
func canonicalName(installPath string) string {
	segments := strings.Split(installPath, "/")

	start := 0
	for idx, segment := range segments {
		if segment == installPathSegment {
			start = idx + 1
		}
	}
	rest := segments[start:]

	switch {
	case len(rest) == 0:
		return ""
	case strings.HasPrefix(rest[0], "@") && len(rest) >= 2:
		return rest[0] + "/" + rest[1]
	default:
		return rest[0]
	}
}

// resolveNestedTree recursively flattens the lockfileVersion 1 "dependencies" tree. Every nested
// occurrence lands in the same flat catalog; the most recently visited occurrence of a name wins.
func resolveNestedTree(raw json.RawMessage, catalog *Catalog) error {
	entries, err := decodeOrderedObject(raw)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		var meta lockEntry
		if err := json.Unmarshal(entry.raw, &meta); err != nil {
			continue
		}

		if meta.Version != "" {
			catalog.Set(entry.key, meta.Version)
		}

		if len(meta.Dependencies) > 0 {
			if err := resolveNestedTree(meta.Dependencies, catalog); err != nil {
				return err
			}
		}
	}

	return nil
}
