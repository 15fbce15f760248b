package advisory

import (
	"errors"
	"strings"
	"testing"
)

func TestParseRecords(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected []Entry
	}{
		{
			name: "header row skipped",
			content: `package,version
react,19.1.1
left-pad,1.3.0
`,
			expected: []Entry{
				{Package: "react", Version: "19.1.1"},
				{Package: "left-pad", Version: "1.3.0"},
			},
		},
		{
			name: "single column rows skipped",
			content: `package,version
orphaned
chalk,5.3.0
`,
			expected: []Entry{
				{Package: "chalk", Version: "5.3.0"},
			},
		},
		{
			name: "extra columns ignored",
			content: `package,version,advisory-url
express,4.19.2,https://example.com/advisories/1
`,
			expected: []Entry{
				{Package: "express", Version: "4.19.2"},
			},
		},
		{
			name: "pinned version prefix trimmed",
			content: `package,version
lodash,=4.17.21
underscore,= 1.13.6
`,
			expected: []Entry{
				{Package: "lodash", Version: "4.17.21"},
				{Package: "underscore", Version: "1.13.6"},
			},
		},
		{
			name:    "surrounding whitespace trimmed",
			content: "package,version\n  react , 19.1.1 \n",
			expected: []Entry{
				{Package: "react", Version: "19.1.1"},
			},
		},
		{
			name: "duplicate entries collapse",
			content: `package,version
react,19.1.1
react,19.1.1
`,
			expected: []Entry{
				{Package: "react", Version: "19.1.1"},
			},
		},
		{
			name:     "header only",
			content:  "package,version\n",
			expected: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			set, err := ParseRecords(strings.NewReader(test.content))
			if err != nil {
				t.Fatalf("unexpected error: %+v", err)
			}

			if set.Count() != len(test.expected) {
				t.Errorf("unexpected entry count: expected=%d got=%d", len(test.expected), set.Count())
			}

			for _, entry := range test.expected {
				if !set.Contains(entry) {
					t.Errorf("missing expected entry: %s", entry)
				}
			}
		})
	}
}

func TestParseRecordsMalformed(t *testing.T) {
	// a bare quote cannot be recovered by the CSV reader
	content := "package,version\n\"react,19.1.1\n"

	_, err := ParseRecords(strings.NewReader(content))
	if !errors.Is(err, ErrMalformedFeed) {
		t.Errorf("expected ErrMalformedFeed, got: %+v", err)
	}
}
