package rendersuite

import (
	"fmt"

	"github.com/roach88/conformer/internal/manifest"
	"github.com/roach88/conformer/internal/renderer"
	"github.com/roach88/conformer/pkg/conformer"
)

// FromManifest builds a suite from a loaded manifest.
func FromManifest(m *manifest.Manifest) (*conformer.Suite[renderer.SimpleRenderer], error) {
	cases := make([]Case, 0, len(m.Cases))
	for i, mc := range m.Cases {
		c, err := caseFromManifest(mc)
		if err != nil {
			return nil, fmt.Errorf("case %d (%s): %w", i, mc.Title, err)
		}
		cases = append(cases, c)
	}
	return conformer.NewSuite(m.Title, m.Description, cases...)
}

func caseFromManifest(mc manifest.Case) (Case, error) {
	commands := make([]renderer.Command, 0, len(mc.Commands))
	for _, name := range mc.Commands {
		cmd, err := renderer.ParseCommand(name)
		if err != nil {
			return nil, err
		}
		commands = append(commands, cmd)
	}

	if len(mc.Expected) != 4 {
		return nil, fmt.Errorf("expected colour has %d channels, want 4", len(mc.Expected))
	}
	var expected renderer.Color
	for i, v := range mc.Expected {
		if v < 0 || v > 255 {
			return nil, fmt.Errorf("expected channel %d out of range: %d", i, v)
		}
		expected[i] = byte(v)
	}

	switch mc.Kind {
	case manifest.KindEntireBuffer:
		return NewEntireBufferCase(mc.Title, mc.Description, mc.Width, mc.Height, commands, expected), nil
	case manifest.KindFirstPixel:
		return NewFirstPixelCase(mc.Title, mc.Description, mc.Width, mc.Height, commands, expected), nil
	default:
		return nil, fmt.Errorf("unknown case kind %q", mc.Kind)
	}
}
