package pkg

import "fmt"

// Package represents one resolved dependency of the target project.
type Package struct {
	Name    string
	Version string
}

func (p Package) String() string {
	return fmt.Sprintf("%s@%s", p.Name, p.Version)
}
