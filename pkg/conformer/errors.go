package conformer

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptySuite is returned when a suite has no test cases, either because
// it was built empty or because a filter removed every case.
var ErrEmptySuite = errors.New("conformer: suite has no test cases")

// ErrEmptyResultSet is returned by NewResultSet when given no results. An
// empty result set would otherwise render as "0 passed; 0 failed".
var ErrEmptyResultSet = errors.New("conformer: result set has no results")

// FactoryError is returned by Run when the factory cannot construct an
// instance of the type under test for a case.
type FactoryError struct {
	Index int    // Position of the case in the suite
	Title string // Case title, if the case describes itself
	Err   error
}

func (e *FactoryError) Error() string {
	if e.Title != "" {
		return fmt.Sprintf("conformer: factory failed for case %d (%s): %v", e.Index, e.Title, e.Err)
	}
	return fmt.Sprintf("conformer: factory failed for case %d: %v", e.Index, e.Err)
}

func (e *FactoryError) Unwrap() error {
	return e.Err
}

// FailedError reports that one or more cases of a suite failed.
// It is only produced on request, by ResultSet.Err.
type FailedError struct {
	Suite  string
	Failed []string // Titles of the failed cases, in suite order
	Total  int
}

func (e *FailedError) Error() string {
	return fmt.Sprintf("%s: %d of %d test cases failed: %s",
		e.Suite, len(e.Failed), e.Total, strings.Join(e.Failed, ", "))
}
