package renderer

// PixelBuffer is the reference SimpleRenderer. A new buffer is white.
type PixelBuffer struct {
	width  int
	height int
	pixels []byte
	colors map[Command]Color
}

// NewPixelBuffer creates a reference renderer. Negative sizes are treated as 0.
func NewPixelBuffer(width, height int) *PixelBuffer {
	return newBuffer(width, height, map[Command]Color{
		AllRed:  Red,
		AllBlue: Blue,
	})
}

// NewFaulty creates a renderer that paints AllRed as [11, 22, 33, 255].
// AllBlue is correct.
func NewFaulty(width, height int) *PixelBuffer {
	return newBuffer(width, height, map[Command]Color{
		AllRed:  {11, 22, 33, 255},
		AllBlue: Blue,
	})
}

func newBuffer(width, height int, colors map[Command]Color) *PixelBuffer {
	width, height = max(width, 0), max(height, 0)
	return &PixelBuffer{
		width:  width,
		height: height,
		pixels: White.Fill(width * height),
		colors: colors,
	}
}

// Width returns the buffer width in pixels.
func (b *PixelBuffer) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *PixelBuffer) Height() int { return b.height }

// Render paints the buffer with the colour of the last command.
// An empty command list or an unknown command leaves the buffer unchanged.
func (b *PixelBuffer) Render(commands []Command) {
	if len(commands) == 0 {
		return
	}
	color, ok := b.colors[commands[len(commands)-1]]
	if !ok {
		return
	}
	for i := 0; i < len(b.pixels); i += 4 {
		copy(b.pixels[i:i+4], color[:])
	}
}

// RGBAPixels returns a copy of the pixel buffer.
func (b *PixelBuffer) RGBAPixels() []byte {
	out := make([]byte, len(b.pixels))
	copy(out, b.pixels)
	return out
}
