package advisory

import "fmt"

// Entry identifies a single known-compromised package release by exact name and concrete version.
type Entry struct {
	Package string
	Version string
}

func (e Entry) String() string {
	return fmt.Sprintf("%s@%s", e.Package, e.Version)
}

// Set is a lookup of known-compromised (package, version) pairs. Duplicate entries collapse.
type Set map[Entry]struct{}

func NewSet(entries ...Entry) Set {
	s := make(Set)
	s.Add(entries...)
	return s
}

func (s Set) Add(entries ...Entry) {
	for _, entry := range entries {
		s[entry] = struct{}{}
	}
}

func (s Set) Contains(entry Entry) bool {
	_, ok := s[entry]
	return ok
}

func (s Set) Count() int {
	return len(s)
}
