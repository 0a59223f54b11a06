// Package view renders a conformer.ResultSet into reports.
//
// Views are stateless and deterministic: rendering the same ResultSet any
// number of times, in any order, yields byte-identical output and never
// mutates the set.
package view

import (
	"fmt"
	"sort"

	"github.com/roach88/conformer/pkg/conformer"
)

// View renders a result set into a report.
type View interface {
	Render(rs *conformer.ResultSet) (string, error)
}

// MissingMetadataError is returned when a view needs a metadata key that a
// case did not provide. It is a usage error in the case, not a test failure.
type MissingMetadataError struct {
	Case string // Title of the offending case
	Key  string
}

func (e *MissingMetadataError) Error() string {
	return fmt.Sprintf("view: test case %q has no text metadata %q", e.Case, e.Key)
}

// checkNotEmpty rejects sets that bypassed NewResultSet, such as a zero
// ResultSet value.
func checkNotEmpty(rs *conformer.ResultSet) error {
	if rs == nil || rs.Len() == 0 {
		return conformer.ErrEmptyResultSet
	}
	return nil
}

var registry = map[string]View{
	"text": Text{},
	"html": HTML{},
	"json": JSON{},
}

// ByName returns the view registered under name: "text", "html" or "json".
func ByName(name string) (View, error) {
	v, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown view %q: must be one of %v", name, Names())
	}
	return v, nil
}

// Names returns the registered view names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
