package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		in      string
		want    Command
		wantErr bool
	}{
		{"AllRed", AllRed, false},
		{"all-red", AllRed, false},
		{"ALL_BLUE", AllBlue, false},
		{"allblue", AllBlue, false},
		{"AllGreen", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCommand(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCommand_String(t *testing.T) {
	assert.Equal(t, "AllRed", AllRed.String())
	assert.Equal(t, "AllBlue", AllBlue.String())
	assert.Equal(t, "Command(9)", Command(9).String())
}

func TestColor(t *testing.T) {
	assert.Equal(t, "[255, 0, 0, 255]", Red.String())
	assert.Equal(t, []byte{0, 0, 255, 255, 0, 0, 255, 255}, Blue.Fill(2))
	assert.Empty(t, Red.Fill(0))
}

func TestPixelBuffer_StartsWhite(t *testing.T) {
	b := NewPixelBuffer(2, 3)
	assert.Equal(t, 2, b.Width())
	assert.Equal(t, 3, b.Height())
	assert.Equal(t, White.Fill(6), b.RGBAPixels())
}

func TestPixelBuffer_LastCommandWins(t *testing.T) {
	b := NewPixelBuffer(4, 4)

	b.Render([]Command{AllRed})
	assert.Equal(t, Red.Fill(16), b.RGBAPixels())

	b.Render([]Command{AllRed, AllBlue})
	assert.Equal(t, Blue.Fill(16), b.RGBAPixels())

	b.Render(nil)
	assert.Equal(t, Blue.Fill(16), b.RGBAPixels(), "empty command list must not repaint")
}

func TestPixelBuffer_RGBAPixelsIsCopy(t *testing.T) {
	b := NewPixelBuffer(1, 1)
	px := b.RGBAPixels()
	px[0] = 0
	assert.Equal(t, White.Fill(1), b.RGBAPixels())
}

func TestPixelBuffer_NegativeSize(t *testing.T) {
	b := NewPixelBuffer(-1, 5)
	assert.Equal(t, 0, b.Width())
	assert.Empty(t, b.RGBAPixels())
}

func TestFaulty(t *testing.T) {
	b := NewFaulty(2, 2)

	b.Render([]Command{AllRed})
	assert.Equal(t, Color{11, 22, 33, 255}.Fill(4), b.RGBAPixels())

	b.Render([]Command{AllBlue})
	assert.Equal(t, Blue.Fill(4), b.RGBAPixels())
}

func TestLookup(t *testing.T) {
	assert.Equal(t, []string{"faulty", "reference"}, Names())

	ctor, err := Lookup("reference")
	require.NoError(t, err)
	r := ctor(1, 1)
	r.Render([]Command{AllRed})
	assert.Equal(t, Red.Fill(1), r.RGBAPixels())

	_, err = Lookup("gpu")
	assert.ErrorContains(t, err, `unknown implementation "gpu"`)
}
