package conformer

// TestCase is the contract every conformance case fulfils. T is the type
// under test. Run is called exactly once, with a freshly constructed
// instance, and must return the case's Result. A failing case returns a
// Result with passed set to false; it does not return an error.
//
// Cases of unrelated shapes can be stored together in a Suite as long as
// they share T.
type TestCase[T any] interface {
	Run(instance T) *Result
}

// Describer is implemented by cases that know their own title and
// description before they run. The runner uses it for logging and to name
// a case whose Run returned nil.
type Describer interface {
	Title() string
	Description() string
}

// CaseFunc adapts a function to the TestCase interface.
type CaseFunc[T any] func(instance T) *Result

// Run calls f(instance).
func (f CaseFunc[T]) Run(instance T) *Result {
	return f(instance)
}

// Capability probes a case for an optional, narrower interface C, such as
// one describing construction parameters for the type under test.
// Factories use it instead of type-switching on concrete case types.
func Capability[C any](tc any) (C, bool) {
	c, ok := tc.(C)
	return c, ok
}

// Suite is a titled, ordered collection of cases run and reported together.
type Suite[T any] struct {
	title       string
	description string
	cases       []TestCase[T]
}

// NewSuite creates a suite. It returns ErrEmptySuite when no cases are given,
// so an accidentally empty suite is caught where it is assembled.
func NewSuite[T any](title, description string, cases ...TestCase[T]) (*Suite[T], error) {
	if len(cases) == 0 {
		return nil, ErrEmptySuite
	}
	owned := make([]TestCase[T], len(cases))
	copy(owned, cases)
	return &Suite[T]{
		title:       title,
		description: description,
		cases:       owned,
	}, nil
}

// Title returns the suite title.
func (s *Suite[T]) Title() string { return s.title }

// Description returns the suite description.
func (s *Suite[T]) Description() string { return s.description }

// Len returns the number of cases.
func (s *Suite[T]) Len() int { return len(s.cases) }

// Cases returns the cases in declared order.
func (s *Suite[T]) Cases() []TestCase[T] {
	out := make([]TestCase[T], len(s.cases))
	copy(out, s.cases)
	return out
}

// Filter returns a new suite holding the cases for which keep returns true.
// Returns ErrEmptySuite if nothing is kept.
func (s *Suite[T]) Filter(keep func(index int, tc TestCase[T]) bool) (*Suite[T], error) {
	var kept []TestCase[T]
	for i, tc := range s.cases {
		if keep(i, tc) {
			kept = append(kept, tc)
		}
	}
	return NewSuite(s.title, s.description, kept...)
}

// caseTitle returns the self-described title of tc, if any.
func caseTitle(tc any) string {
	if d, ok := Capability[Describer](tc); ok {
		return d.Title()
	}
	return ""
}
