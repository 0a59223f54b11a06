// Package rendersuite holds conformance cases for renderer.SimpleRenderer
// implementations and the factory that builds a renderer for each case.
package rendersuite

import (
	"bytes"
	"fmt"

	"github.com/roach88/conformer/internal/renderer"
	"github.com/roach88/conformer/pkg/conformer"
)

// Case is a conformance case for a SimpleRenderer.
type Case = conformer.TestCase[renderer.SimpleRenderer]

// Dimensions is implemented by every case in this package. The factory
// uses it to size the renderer it builds for the case.
type Dimensions interface {
	Width() int
	Height() int
}

// Metadata keys for the PNG snapshots attached by EntireBufferCase.
const (
	ActualPNGKey   = "actual.png"
	ExpectedPNGKey = "expected.png"
)

type caseInfo struct {
	title       string
	description string
	width       int
	height      int
	commands    []renderer.Command
	expected    renderer.Color
}

func (c *caseInfo) Title() string       { return c.title }
func (c *caseInfo) Description() string { return c.description }
func (c *caseInfo) Width() int          { return c.width }
func (c *caseInfo) Height() int         { return c.height }

// EntireBufferCase renders commands and compares every pixel against the
// expected colour. Its visual shows the actual and expected buffers side by
// side as PNG images.
type EntireBufferCase struct {
	caseInfo
}

// NewEntireBufferCase creates a whole-buffer comparison case.
func NewEntireBufferCase(title, description string, width, height int, commands []renderer.Command, expected renderer.Color) *EntireBufferCase {
	return &EntireBufferCase{caseInfo{
		title:       title,
		description: description,
		width:       width,
		height:      height,
		commands:    append([]renderer.Command(nil), commands...),
		expected:    expected,
	}}
}

// Run implements conformer.TestCase.
func (c *EntireBufferCase) Run(r renderer.SimpleRenderer) *conformer.Result {
	r.Render(c.commands)

	actual := r.RGBAPixels()
	expected := c.expected.Fill(c.width * c.height)
	result := conformer.NewResult(c.title, c.description, bytes.Equal(actual, expected))

	actualPNG, err := encodePNG(c.width, c.height, actual)
	if err != nil {
		result.SetMetadata(conformer.HTMLVisualKey, conformer.Text(errorHTML(err)))
		return result
	}
	expectedPNG, err := encodePNG(c.width, c.height, expected)
	if err != nil {
		result.SetMetadata(conformer.HTMLVisualKey, conformer.Text(errorHTML(err)))
		return result
	}

	result.SetMetadata(conformer.HTMLVisualKey, conformer.Text(comparisonHTML(actualPNG, expectedPNG)))
	result.SetMetadata(ActualPNGKey, conformer.Binary(actualPNG))
	result.SetMetadata(ExpectedPNGKey, conformer.Binary(expectedPNG))
	return result
}

// FirstPixelCase renders commands and checks only the first pixel.
type FirstPixelCase struct {
	caseInfo
}

// NewFirstPixelCase creates a first-pixel check.
func NewFirstPixelCase(title, description string, width, height int, commands []renderer.Command, expected renderer.Color) *FirstPixelCase {
	return &FirstPixelCase{caseInfo{
		title:       title,
		description: description,
		width:       width,
		height:      height,
		commands:    append([]renderer.Command(nil), commands...),
		expected:    expected,
	}}
}

// Run implements conformer.TestCase.
func (c *FirstPixelCase) Run(r renderer.SimpleRenderer) *conformer.Result {
	r.Render(c.commands)

	pixels := r.RGBAPixels()
	if len(pixels) < 4 {
		result := conformer.NewResult(c.title, c.description, false)
		result.SetMetadata(conformer.HTMLVisualKey, conformer.Text(
			errorHTML(fmt.Errorf("renderer returned %d bytes, want at least 4", len(pixels)))))
		return result
	}

	var actual renderer.Color
	copy(actual[:], pixels[:4])
	passed := actual == c.expected

	result := conformer.NewResult(c.title, c.description, passed)
	if passed {
		result.SetMetadata(conformer.HTMLVisualKey, conformer.Text(successHTML(c.swatch(c.expected))))
	} else {
		result.SetMetadata(conformer.HTMLVisualKey, conformer.Text(
			pixelMismatchHTML(actual, c.expected, c.swatch(actual), c.swatch(c.expected))))
	}
	return result
}

func (c *FirstPixelCase) swatch(color renderer.Color) string {
	return swatchHTML(c.width, c.height, color)
}
