package view

import (
	"fmt"
	"html"
	"strings"

	"github.com/roach88/conformer/pkg/conformer"
)

// Fixed report colours.
const (
	Red   = "rgb(255, 0, 0)"
	Green = "rgb(50, 205, 50)"
	Black = "rgb(0, 0, 0)"
)

// HTML renders a self-contained HTML document with one block per case.
//
// Every case must attach a text fragment under conformer.HTMLVisualKey; it
// is inserted verbatim below the case heading. Titles and descriptions are
// HTML-escaped. Render returns *MissingMetadataError if a fragment is
// missing and conformer.ErrEmptyResultSet for a nil or empty set.
type HTML struct{}

// Render implements View.
func (HTML) Render(rs *conformer.ResultSet) (string, error) {
	if err := checkNotEmpty(rs); err != nil {
		return "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, `<html>
  <body>
    <h1>%s</h1>
    <p>%s</p>`,
		html.EscapeString(rs.SuiteTitle()),
		html.EscapeString(rs.SuiteDescription()),
	)

	for _, r := range rs.Results() {
		visual, ok := r.MetadataText(conformer.HTMLVisualKey)
		if !ok {
			return "", &MissingMetadataError{Case: r.Title(), Key: conformer.HTMLVisualKey}
		}

		label, labelColor, descColor := "(ok)", Green, Black
		if !r.Passed() {
			label, labelColor, descColor = "(FAILED)", Red, Red
		}

		fmt.Fprintf(&b, `

    <div style="margin-bottom: 20px;">
      <div style="font-size: 24px; font-weight: bold;">
        %s
        <label style="color: %s;"> %s</label>
        <p style="color: %s; font-size: 14px; margin: 0px;">%s</p>
      </div>
      %s
    </div>`,
			html.EscapeString(r.Title()),
			labelColor,
			label,
			descColor,
			html.EscapeString(r.Description()),
			visual,
		)
	}

	b.WriteString(`
  </body>
</html>`)

	return b.String(), nil
}
