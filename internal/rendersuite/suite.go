package rendersuite

import (
	"fmt"

	"github.com/roach88/conformer/internal/renderer"
	"github.com/roach88/conformer/pkg/conformer"
)

// Default suite identity.
const (
	DefaultTitle       = "Simple Renderer Test Suite"
	DefaultDescription = "Various tests to ensure that an implementation of SimpleRenderer is working properly."
)

// Factory returns a conformer.Factory that builds a fresh renderer from ctor
// for every case, sized by the case's Dimensions.
func Factory(ctor renderer.Constructor) conformer.Factory[renderer.SimpleRenderer] {
	return func(tc Case) (renderer.SimpleRenderer, error) {
		dims, ok := conformer.Capability[Dimensions](tc)
		if !ok {
			return nil, fmt.Errorf("case %T does not report renderer dimensions", tc)
		}
		if dims.Width() <= 0 || dims.Height() <= 0 {
			return nil, fmt.Errorf("invalid renderer size %dx%d", dims.Width(), dims.Height())
		}
		return ctor(dims.Width(), dims.Height()), nil
	}
}

// DefaultCases returns the built-in renderer cases.
func DefaultCases() []Case {
	return []Case{
		NewEntireBufferCase("All Red pixels", "", 256, 256,
			[]renderer.Command{renderer.AllRed}, renderer.Red),
		NewEntireBufferCase("All Blue Pixels", "", 300, 300,
			[]renderer.Command{renderer.AllBlue}, renderer.Blue),
		NewFirstPixelCase("Uses final color command.",
			"Verify that the final color is that of the final command.", 200, 200,
			[]renderer.Command{renderer.AllRed, renderer.AllBlue}, renderer.Blue),
	}
}

// Default returns the built-in suite.
func Default() *conformer.Suite[renderer.SimpleRenderer] {
	suite, err := conformer.NewSuite(DefaultTitle, DefaultDescription, DefaultCases()...)
	if err != nil {
		panic(err) // DefaultCases is never empty
	}
	return suite
}
