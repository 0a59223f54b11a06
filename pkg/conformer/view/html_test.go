package view

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/conformer/pkg/conformer"
)

func TestHTML_OnePassed(t *testing.T) {
	got, err := HTML{}.Render(suiteOf(true))
	require.NoError(t, err)

	expected := `<html>
  <body>
    <h1>My Test Suite Title</h1>
    <p>My Test Suite description.</p>

    <div style="margin-bottom: 20px;">
      <div style="font-size: 24px; font-weight: bold;">
        Test Case Title
        <label style="color: rgb(50, 205, 50);"> (ok)</label>
        <p style="color: rgb(0, 0, 0); font-size: 14px; margin: 0px;">Test Case Description</p>
      </div>
      <div><em>Test case html visualization here</em></div>
    </div>
  </body>
</html>`
	assert.Equal(t, expected, got)
}

func TestHTML_OneFailed(t *testing.T) {
	got, err := HTML{}.Render(suiteOf(false))
	require.NoError(t, err)

	expected := `<html>
  <body>
    <h1>My Test Suite Title</h1>
    <p>My Test Suite description.</p>

    <div style="margin-bottom: 20px;">
      <div style="font-size: 24px; font-weight: bold;">
        Test Case Title
        <label style="color: rgb(255, 0, 0);"> (FAILED)</label>
        <p style="color: rgb(255, 0, 0); font-size: 14px; margin: 0px;">Test Case Description</p>
      </div>
      <div><em>Test case html visualization here</em></div>
    </div>
  </body>
</html>`
	assert.Equal(t, expected, got)
}

func TestHTML_EscapesIdentityButNotVisual(t *testing.T) {
	r := conformer.NewResult("a < b", "x & y", true)
	r.SetMetadata(conformer.HTMLVisualKey, conformer.Text(`<img src="data:image/png;base64,AAAA" />`))
	rs := conformer.MustResultSet("<Suite>", `"quoted"`, []*conformer.Result{r})

	got, err := HTML{}.Render(rs)
	require.NoError(t, err)

	assert.Contains(t, got, "<h1>&lt;Suite&gt;</h1>")
	assert.Contains(t, got, "<p>&#34;quoted&#34;</p>")
	assert.Contains(t, got, "        a &lt; b\n")
	assert.Contains(t, got, ">x &amp; y</p>")
	assert.Contains(t, got, `      <img src="data:image/png;base64,AAAA" />`)
}

func TestHTML_MissingVisual(t *testing.T) {
	ok := conformer.NewResult("has visual", "", true)
	ok.SetMetadata(conformer.HTMLVisualKey, conformer.Text("<p/>"))
	missing := conformer.NewResult("no visual", "", true)
	rs := conformer.MustResultSet("suite", "", []*conformer.Result{ok, missing})

	got, err := HTML{}.Render(rs)
	assert.Empty(t, got)

	var me *MissingMetadataError
	require.True(t, errors.As(err, &me))
	assert.Equal(t, "no visual", me.Case)
	assert.Equal(t, conformer.HTMLVisualKey, me.Key)
}

func TestHTML_BinaryVisualIsMissing(t *testing.T) {
	r := conformer.NewResult("binary", "", true)
	r.SetMetadata(conformer.HTMLVisualKey, conformer.Binary([]byte("<p/>")))
	rs := conformer.MustResultSet("suite", "", []*conformer.Result{r})

	_, err := HTML{}.Render(rs)
	assert.ErrorContains(t, err, `test case "binary" has no text metadata "html-visual"`)
}

func TestHTML_Deterministic(t *testing.T) {
	rs := suiteOf(true, false)

	first, err := HTML{}.Render(rs)
	require.NoError(t, err)
	second, err := HTML{}.Render(rs)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
