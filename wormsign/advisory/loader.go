package advisory

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrMalformedFeed indicates the advisory feed could not be read or parsed. A scan cannot proceed
// without a baseline, so this condition is fatal to the caller.
var ErrMalformedFeed = errors.New("malformed advisory feed")

// ParseRecords reads CSV advisory content (header row followed by "package,version[,...]" data rows)
// into a lookup Set. The header row is skipped, as is any row with fewer than two columns; extra
// columns are ignored.
func ParseRecords(reader io.Reader) (Set, error) {
	r := csv.NewReader(reader)
	// rows are allowed to carry a varying number of columns
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFeed, err)
	}

	set := NewSet()
	for idx, record := range records {
		if idx == 0 {
			// header row
			continue
		}
		if len(record) < 2 {
			continue
		}
		set.Add(Entry{
			Package: strings.TrimSpace(record[0]),
			Version: normalizeFeedVersion(record[1]),
		})
	}

	return set, nil
}

// normalizeFeedVersion trims whitespace and any leading "=" pinning from an advisory version field,
// mirroring the normalization applied to declared manifest versions.
func normalizeFeedVersion(raw string) string {
	return strings.TrimLeft(strings.TrimSpace(raw), "= ")
}
