// Package renderer is the demo implementation target for conformance suites:
// a minimal renderer that fills an RGBA pixel buffer from a list of commands.
//
// Two implementations ship with the package. PixelBuffer is correct.
// Faulty paints the wrong colour for AllRed and exists so suites have
// something to fail against.
package renderer

import (
	"fmt"
	"sort"
	"strings"
)

// Command is a single render instruction.
type Command int

// Render commands.
const (
	AllRed Command = iota + 1
	AllBlue
)

var commandNames = map[Command]string{
	AllRed:  "AllRed",
	AllBlue: "AllBlue",
}

// String returns the command's canonical name.
func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// ParseCommand parses a command name. Matching ignores case, '-' and '_',
// so "AllRed", "all-red" and "ALL_RED" are equivalent.
func ParseCommand(name string) (Command, error) {
	norm := strings.ToLower(strings.NewReplacer("-", "", "_", "").Replace(name))
	for c, n := range commandNames {
		if strings.ToLower(n) == norm {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown render command %q", name)
}

// Color is an RGBA pixel.
type Color [4]byte

// Reference colours.
var (
	Red   = Color{255, 0, 0, 255}
	Blue  = Color{0, 0, 255, 255}
	White = Color{255, 255, 255, 255}
)

// String formats the colour as [r, g, b, a].
func (c Color) String() string {
	return fmt.Sprintf("[%d, %d, %d, %d]", c[0], c[1], c[2], c[3])
}

// Fill returns n copies of c as a flat RGBA byte slice.
func (c Color) Fill(n int) []byte {
	out := make([]byte, 0, n*4)
	for i := 0; i < n; i++ {
		out = append(out, c[:]...)
	}
	return out
}

// SimpleRenderer is the interface suites test implementations against.
type SimpleRenderer interface {
	// Render processes commands in order. Each command repaints the whole
	// buffer, so only the last one is visible.
	Render(commands []Command)

	// RGBAPixels returns a copy of the pixel buffer, four bytes per pixel,
	// row-major.
	RGBAPixels() []byte
}

// Constructor creates a renderer with a width x height buffer.
type Constructor func(width, height int) SimpleRenderer

// Registry maps implementation names to constructors.
var Registry = map[string]Constructor{
	"reference": func(w, h int) SimpleRenderer { return NewPixelBuffer(w, h) },
	"faulty":    func(w, h int) SimpleRenderer { return NewFaulty(w, h) },
}

// Lookup returns the constructor registered under name.
func Lookup(name string) (Constructor, error) {
	ctor, ok := Registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown implementation %q: must be one of %v", name, Names())
	}
	return ctor, nil
}

// Names returns the registered implementation names in sorted order.
func Names() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
