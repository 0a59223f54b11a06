package conformer

// ResultSet is the complete, immutable outcome of running a suite.
// It always holds at least one Result, in suite order.
type ResultSet struct {
	suiteTitle       string
	suiteDescription string
	results          []*Result
}

// NewResultSet builds a result set from per-case results in execution order.
// It returns ErrEmptyResultSet when results is empty.
//
// Each result is copied and frozen; the caller's *Result values remain
// independent of the set.
func NewResultSet(suiteTitle, suiteDescription string, results []*Result) (*ResultSet, error) {
	if len(results) == 0 {
		return nil, ErrEmptyResultSet
	}

	frozen := make([]*Result, len(results))
	for i, r := range results {
		if r == nil {
			r = NewResult("", "", false)
		}
		frozen[i] = r.freeze()
	}

	return &ResultSet{
		suiteTitle:       suiteTitle,
		suiteDescription: suiteDescription,
		results:          frozen,
	}, nil
}

// MustResultSet is like NewResultSet but panics on an empty result list.
func MustResultSet(suiteTitle, suiteDescription string, results []*Result) *ResultSet {
	rs, err := NewResultSet(suiteTitle, suiteDescription, results)
	if err != nil {
		panic(err)
	}
	return rs
}

// SuiteTitle returns the title of the suite that produced the results.
func (rs *ResultSet) SuiteTitle() string { return rs.suiteTitle }

// SuiteDescription returns the description of the suite that produced the results.
func (rs *ResultSet) SuiteDescription() string { return rs.suiteDescription }

// Results returns the per-case results in suite order.
// The returned slice is a copy; the results themselves are frozen.
func (rs *ResultSet) Results() []*Result {
	out := make([]*Result, len(rs.results))
	copy(out, rs.results)
	return out
}

// Len returns the number of results.
func (rs *ResultSet) Len() int { return len(rs.results) }

// Passed returns the number of passing cases.
func (rs *ResultSet) Passed() int {
	n := 0
	for _, r := range rs.results {
		if r.passed {
			n++
		}
	}
	return n
}

// Failed returns the number of failing cases.
func (rs *ResultSet) Failed() int {
	return len(rs.results) - rs.Passed()
}

// DidPass reports whether every case passed.
func (rs *ResultSet) DidPass() bool {
	for _, r := range rs.results {
		if !r.passed {
			return false
		}
	}
	return true
}

// Err returns a *FailedError naming the failed cases, or nil if all passed.
func (rs *ResultSet) Err() error {
	var failed []string
	for _, r := range rs.results {
		if !r.passed {
			failed = append(failed, r.title)
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return &FailedError{
		Suite:  rs.suiteTitle,
		Failed: failed,
		Total:  len(rs.results),
	}
}

// AssertDidPass panics if one or more cases failed.
// Intended for the end of a test program.
func (rs *ResultSet) AssertDidPass() {
	if err := rs.Err(); err != nil {
		panic(err)
	}
}
