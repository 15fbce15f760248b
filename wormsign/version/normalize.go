package version

import "strings"

// comparator symbols that may prefix a declared version expression (e.g. "^1.2.3", ">= 2.0.0")
const comparatorChars = "^~><= "

// Normalize strips any leading run of comparator/range symbols from a raw version expression and
// returns the concrete version token. No range resolution is attempted: non-concrete tokens such
// as "1.x" or "latest" pass through unchanged and will simply never match an advisory entry, since
// advisories list only concrete versions.
func Normalize(raw string) string {
	stripped := strings.TrimLeft(raw, comparatorChars)
	if idx := strings.IndexAny(stripped, " \t"); idx != -1 {
		stripped = stripped[:idx]
	}
	return stripped
}
