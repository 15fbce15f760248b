package pkg

// Catalog is an insertion-ordered, name-unique collection of installed packages. Setting a name
// that is already present overwrites its version but keeps its original position.
type Catalog struct {
	names    []string
	versions map[string]string
}

func NewCatalog() *Catalog {
	return &Catalog{
		versions: make(map[string]string),
	}
}

func (c *Catalog) Set(name, version string) {
	if _, exists := c.versions[name]; !exists {
		c.names = append(c.names, name)
	}
	c.versions[name] = version
}

func (c *Catalog) Get(name string) (string, bool) {
	version, ok := c.versions[name]
	return version, ok
}

func (c *Catalog) Contains(name string) bool {
	_, ok := c.versions[name]
	return ok
}

func (c *Catalog) Count() int {
	return len(c.names)
}

// Packages returns all packages in insertion order.
func (c *Catalog) Packages() []Package {
	result := make([]Package, 0, len(c.names))
	for _, name := range c.names {
		result = append(result, Package{Name: name, Version: c.versions[name]})
	}
	return result
}

// MergeCatalogs combines the declared and lock-resolved package sets into the final installed
// catalog. Declared entries come first and their versions win for names present in both (the
// manifest expresses intent); lock-only packages are appended in their encounter order.
func MergeCatalogs(declared, resolved *Catalog) *Catalog {
	merged := NewCatalog()
	for _, p := range declared.Packages() {
		merged.Set(p.Name, p.Version)
	}
	for _, p := range resolved.Packages() {
		if !merged.Contains(p.Name) {
			merged.Set(p.Name, p.Version)
		}
	}
	return merged
}
