package match

import (
	"fmt"

	"github.com/wormsign/wormsign/wormsign/advisory"
	"github.com/wormsign/wormsign/wormsign/pkg"
)

// Match pairs a single installed package with the advisory entry that flagged it as compromised.
type Match struct {
	Package  pkg.Package
	Advisory advisory.Entry
}

// String is the string representation of select match fields.
func (m Match) String() string {
	return fmt.Sprintf("Match(pkg=%s advisory=%q)", m.Package, m.Advisory.String())
}
