package view_test

import (
	"testing"

	"github.com/roach88/conformer/pkg/conformer"
	"github.com/roach88/conformer/pkg/conformer/conformertest"
	"github.com/roach88/conformer/pkg/conformer/view"
)

func goldenSuite() *conformer.ResultSet {
	pass := conformer.NewResult("Test Case Title", "Test Case Description", true)
	pass.SetMetadata(conformer.HTMLVisualKey, conformer.Text("<div><em>Test case html visualization here</em></div>"))
	fail := conformer.NewResult("Test Case Title", "Test Case Description", false)
	fail.SetMetadata(conformer.HTMLVisualKey, conformer.Text("<div><em>Test case html visualization here</em></div>"))

	return conformer.MustResultSet("My Test Suite Title", "My Test Suite description.",
		[]*conformer.Result{pass, fail})
}

func TestGolden_TextPassFail(t *testing.T) {
	conformertest.AssertGolden(t, "text_pass_fail", view.Text{}, goldenSuite())
}

func TestGolden_HTMLPassFail(t *testing.T) {
	conformertest.AssertGolden(t, "html_pass_fail", view.HTML{}, goldenSuite())
}
