package rendersuite

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html"
	"image"
	"image/png"

	"github.com/roach88/conformer/internal/renderer"
)

// encodePNG encodes a flat RGBA buffer as an 8-bit RGBA PNG.
func encodePNG(width, height int, rgba []byte) ([]byte, error) {
	if len(rgba) != width*height*4 {
		return nil, fmt.Errorf("encode png: got %d bytes for a %dx%d buffer, want %d",
			len(rgba), width, height, width*height*4)
	}
	img := &image.NRGBA{
		Pix:    rgba,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func comparisonHTML(actualPNG, expectedPNG []byte) string {
	return fmt.Sprintf(`
<div style="margin-bottom: 20px;">
  <div style="display: flex; flex-wrap: wrap;">
    <div style="margin-right: 10px">
      <div>Actual</div>
      <img src="data:image/png;base64,%s" />
    </div>
    <div>
      <div>Expected</div>
      <img src="data:image/png;base64,%s" />
    </div>
  </div>
</div>
`,
		base64.StdEncoding.EncodeToString(actualPNG),
		base64.StdEncoding.EncodeToString(expectedPNG),
	)
}

func swatchHTML(width, height int, c renderer.Color) string {
	return fmt.Sprintf(`
        <div style="width: %dpx; height: %dpx; background-color: rgba(%d, %d, %d, %d);">
        </div>
`, width, height, c[0], c[1], c[2], c[3])
}

func successHTML(swatch string) string {
	return "\n<h4>Success</h4>\n" + swatch
}

func pixelMismatchHTML(actual, expected renderer.Color, actualSwatch, expectedSwatch string) string {
	return fmt.Sprintf(`<div>
  <div>
    The first pixel was %s
    %s
  </div>
  <div>
    It should have been %s
    %s
  </div>
</div>
`, actual, actualSwatch, expected, expectedSwatch)
}

func errorHTML(err error) string {
	return fmt.Sprintf("<pre>%s</pre>\n", html.EscapeString(err.Error()))
}
