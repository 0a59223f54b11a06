package conformer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResultSet_EmptyIsError(t *testing.T) {
	rs, err := NewResultSet("title", "desc", nil)
	assert.Nil(t, rs)
	assert.ErrorIs(t, err, ErrEmptyResultSet)

	_, err = NewResultSet("title", "desc", []*Result{})
	assert.ErrorIs(t, err, ErrEmptyResultSet)
}

func TestMustResultSet_PanicsOnEmpty(t *testing.T) {
	assert.PanicsWithError(t, ErrEmptyResultSet.Error(), func() {
		MustResultSet("title", "desc", nil)
	})
}

func TestResultSet_PreservesOrder(t *testing.T) {
	results := []*Result{
		NewResult("first", "", true),
		NewResult("second", "", false),
		NewResult("third", "", true),
	}

	rs, err := NewResultSet("My Test Suite Title", "My Test Suite description.", results)
	require.NoError(t, err)

	assert.Equal(t, "My Test Suite Title", rs.SuiteTitle())
	assert.Equal(t, "My Test Suite description.", rs.SuiteDescription())
	require.Equal(t, 3, rs.Len())

	got := rs.Results()
	assert.Equal(t, "first", got[0].Title())
	assert.Equal(t, "second", got[1].Title())
	assert.Equal(t, "third", got[2].Title())
}

func TestResultSet_Counts(t *testing.T) {
	tests := []struct {
		name    string
		passes  []bool
		passed  int
		failed  int
		didPass bool
	}{
		{"one pass", []bool{true}, 1, 0, true},
		{"one fail", []bool{false}, 0, 1, false},
		{"pass and fail", []bool{true, false}, 1, 1, false},
		{"all pass", []bool{true, true, true}, 3, 0, true},
		{"all fail", []bool{false, false}, 0, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var results []*Result
			for _, p := range tt.passes {
				results = append(results, NewResult("case", "", p))
			}
			rs := MustResultSet("suite", "", results)

			assert.Equal(t, tt.passed, rs.Passed())
			assert.Equal(t, tt.failed, rs.Failed())
			assert.Equal(t, tt.didPass, rs.DidPass())
			if tt.didPass {
				assert.NoError(t, rs.Err())
				assert.NotPanics(t, rs.AssertDidPass)
			} else {
				assert.Error(t, rs.Err())
				assert.Panics(t, rs.AssertDidPass)
			}
		})
	}
}

func TestResultSet_ErrNamesFailedCases(t *testing.T) {
	rs := MustResultSet("Renderer", "", []*Result{
		NewResult("All Red pixels", "", false),
		NewResult("All Blue Pixels", "", true),
		NewResult("Uses final color command.", "", false),
	})

	err := rs.Err()
	var failed *FailedError
	require.True(t, errors.As(err, &failed))
	assert.Equal(t, "Renderer", failed.Suite)
	assert.Equal(t, []string{"All Red pixels", "Uses final color command."}, failed.Failed)
	assert.Equal(t, 3, failed.Total)
	assert.Equal(t, "Renderer: 2 of 3 test cases failed: All Red pixels, Uses final color command.", err.Error())
}

func TestResultSet_FreezesResults(t *testing.T) {
	original := NewResult("case", "", true)
	original.SetMetadata("k", Text("before"))

	rs := MustResultSet("suite", "", []*Result{original})

	// Later changes to the caller's result do not leak into the set.
	original.SetMetadata("k", Text("after"))
	got, _ := rs.Results()[0].MetadataText("k")
	assert.Equal(t, "before", got)

	// The set's copy refuses mutation.
	assert.Panics(t, func() {
		rs.Results()[0].SetMetadata("k", Text("mutated"))
	})
}

func TestResultSet_ResultsSliceIsCopy(t *testing.T) {
	rs := MustResultSet("suite", "", []*Result{NewResult("a", "", true), NewResult("b", "", true)})

	got := rs.Results()
	got[0] = nil

	assert.Equal(t, "a", rs.Results()[0].Title())
}

func TestResultSet_NilResultBecomesFailure(t *testing.T) {
	rs := MustResultSet("suite", "", []*Result{nil})
	assert.False(t, rs.DidPass())
}
