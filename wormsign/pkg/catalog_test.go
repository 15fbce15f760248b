package pkg

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCatalogSetKeepsInsertionOrder(t *testing.T) {
	catalog := NewCatalog()
	catalog.Set("react", "19.1.1")
	catalog.Set("left-pad", "1.3.0")
	catalog.Set("react", "18.0.0") // overwrite keeps original position

	expected := []Package{
		{Name: "react", Version: "18.0.0"},
		{Name: "left-pad", Version: "1.3.0"},
	}

	if diff := cmp.Diff(expected, catalog.Packages()); diff != "" {
		t.Errorf("unexpected packages (-expected +actual):\n%s", diff)
	}

	if catalog.Count() != 2 {
		t.Errorf("unexpected count: %d", catalog.Count())
	}
}

func TestMergeCatalogs(t *testing.T) {
	tests := []struct {
		name     string
		declared map[string]string
		resolved map[string]string
		expected []Package
	}{
		{
			name:     "declared version wins on conflict",
			declared: map[string]string{"a": "1.0.0"},
			resolved: map[string]string{"a": "2.0.0", "b": "3.0.0"},
			expected: []Package{
				{Name: "a", Version: "1.0.0"},
				{Name: "b", Version: "3.0.0"},
			},
		},
		{
			name:     "lock-only packages appended after declared",
			declared: map[string]string{"a": "1.0.0"},
			resolved: map[string]string{"b": "2.0.0"},
			expected: []Package{
				{Name: "a", Version: "1.0.0"},
				{Name: "b", Version: "2.0.0"},
			},
		},
		{
			name:     "empty lock side",
			declared: map[string]string{"a": "1.0.0"},
			resolved: map[string]string{},
			expected: []Package{
				{Name: "a", Version: "1.0.0"},
			},
		},
		{
			name:     "empty declared side",
			declared: map[string]string{},
			resolved: map[string]string{"b": "2.0.0"},
			expected: []Package{
				{Name: "b", Version: "2.0.0"},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			declared := NewCatalog()
			for name, v := range test.declared {
				declared.Set(name, v)
			}
			resolved := NewCatalog()
			for name, v := range test.resolved {
				resolved.Set(name, v)
			}

			merged := MergeCatalogs(declared, resolved)

			if diff := cmp.Diff(test.expected, merged.Packages()); diff != "" {
				t.Errorf("unexpected merge result (-expected +actual):\n%s", diff)
			}
		})
	}
}
