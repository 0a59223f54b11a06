package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/conformer/pkg/conformer"
)

func suiteOf(passes ...bool) *conformer.ResultSet {
	results := make([]*conformer.Result, 0, len(passes))
	for _, p := range passes {
		r := conformer.NewResult("Test Case Title", "Test Case Description", p)
		r.SetMetadata(conformer.HTMLVisualKey, conformer.Text("<div><em>Test case html visualization here</em></div>"))
		results = append(results, r)
	}
	return conformer.MustResultSet("My Test Suite Title", "My Test Suite description.", results)
}

func TestText_OnePassed(t *testing.T) {
	got, err := Text{}.Render(suiteOf(true))
	require.NoError(t, err)

	assert.Equal(t, "My Test Suite Title\nMy Test Suite description.\n\n1 test result\nTest Case Title ... ok\n\ntest result: ok. 1 passed; 0 failed", got)
}

func TestText_OneFailed(t *testing.T) {
	got, err := Text{}.Render(suiteOf(false))
	require.NoError(t, err)

	expected := `My Test Suite Title
My Test Suite description.

1 test result
Test Case Title ... FAILED

test result: FAILED. 0 passed; 1 failed`
	assert.Equal(t, expected, got)
}

func TestText_OnePassOneFail(t *testing.T) {
	got, err := Text{}.Render(suiteOf(true, false))
	require.NoError(t, err)

	expected := `My Test Suite Title
My Test Suite description.

2 test results
Test Case Title ... ok
Test Case Title ... FAILED

test result: FAILED. 1 passed; 1 failed`
	assert.Equal(t, expected, got)
}

func TestText_TwoPassing(t *testing.T) {
	got, err := Text{}.Render(suiteOf(true, true))
	require.NoError(t, err)

	expected := `My Test Suite Title
My Test Suite description.

2 test results
Test Case Title ... ok
Test Case Title ... ok

test result: ok. 2 passed; 0 failed`
	assert.Equal(t, expected, got)
}

func TestText_Pluralization(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "\n1 test result\n"},
		{2, "\n2 test results\n"},
		{5, "\n5 test results\n"},
	}

	for _, tt := range tests {
		passes := make([]bool, tt.n)
		got, err := Text{}.Render(suiteOf(passes...))
		require.NoError(t, err)
		assert.Contains(t, got, tt.want)
	}
}

func TestText_Deterministic(t *testing.T) {
	rs := suiteOf(true, false, true)

	first, err := Text{}.Render(rs)
	require.NoError(t, err)
	second, err := Text{}.Render(rs)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestByName(t *testing.T) {
	for _, name := range []string{"text", "html", "json"} {
		v, err := ByName(name)
		require.NoError(t, err)
		assert.NotNil(t, v)
	}

	_, err := ByName("xml")
	assert.ErrorContains(t, err, `unknown view "xml"`)
	assert.Equal(t, []string{"html", "json", "text"}, Names())
}

func TestViews_RejectEmptyResultSet(t *testing.T) {
	for _, name := range Names() {
		v, err := ByName(name)
		require.NoError(t, err)

		_, err = v.Render(&conformer.ResultSet{})
		assert.ErrorIs(t, err, conformer.ErrEmptyResultSet, name)

		_, err = v.Render(nil)
		assert.ErrorIs(t, err, conformer.ErrEmptyResultSet, name)
	}
}
