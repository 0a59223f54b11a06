package view

import (
	"fmt"
	"strings"

	"github.com/roach88/conformer/pkg/conformer"
)

// Text is a plain list of passing and failing cases, suitable for a
// terminal or a log:
//
//	<suite title>
//	<suite description>
//
//	<N> test result[s]
//	<case title> ... ok|FAILED
//
//	test result: ok|FAILED. <passed> passed; <failed> failed
//
// The report has no trailing newline.
type Text struct{}

// Render implements View. It fails only for a nil or empty set, which
// would otherwise print a passing report for zero cases.
func (Text) Render(rs *conformer.ResultSet) (string, error) {
	if err := checkNotEmpty(rs); err != nil {
		return "", err
	}
	results := rs.Results()

	noun := "results"
	if len(results) == 1 {
		noun = "result"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n\n%d test %s\n", rs.SuiteTitle(), rs.SuiteDescription(), len(results), noun)

	passed, failed := 0, 0
	for _, r := range results {
		status := "ok"
		if r.Passed() {
			passed++
		} else {
			failed++
			status = "FAILED"
		}
		fmt.Fprintf(&b, "%s ... %s\n", r.Title(), status)
	}

	overall := "ok"
	if failed > 0 {
		overall = "FAILED"
	}
	fmt.Fprintf(&b, "\ntest result: %s. %d passed; %d failed", overall, passed, failed)

	return b.String(), nil
}
