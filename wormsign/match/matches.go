package match

// Matches is an ordered collection of infection matches. Order follows the installed catalog's
// insertion order (manifest entries first, then lock-only additions).
type Matches struct {
	matches []Match
}

func NewMatches(matches ...Match) Matches {
	m := Matches{}
	m.Add(matches...)
	return m
}

func (m *Matches) Add(matches ...Match) {
	m.matches = append(m.matches, matches...)
}

func (m Matches) Count() int {
	return len(m.matches)
}

// Enumerate returns all matches in order.
func (m Matches) Enumerate() []Match {
	result := make([]Match, len(m.matches))
	copy(result, m.matches)
	return result
}
