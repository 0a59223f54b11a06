package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
version: "1.2"
title: Tiny
cases:
  - kind: first-pixel
    title: red
    width: 1
    height: 1
    commands: [all-red]
    expected: [255, 0, 0, 255]
`

func TestParseYAML_Valid(t *testing.T) {
	m, err := ParseYAML("tiny.yaml", []byte(validYAML))
	require.NoError(t, err)
	assert.Equal(t, "Tiny", m.Title)
	assert.Empty(t, m.Description)
	require.Len(t, m.Cases, 1)
	assert.Equal(t, []string{"all-red"}, m.Cases[0].Commands)
}

func TestParseYAML_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		code string
	}{
		{
			name: "syntax",
			doc:  "title: [unclosed",
			code: ErrCodeParse,
		},
		{
			name: "empty document",
			doc:  "",
			code: ErrCodeSchema,
		},
		{
			name: "no cases",
			doc:  "version: \"1.0\"\ntitle: x\ncases: []\n",
			code: ErrCodeSchema,
		},
		{
			name: "unknown top-level field",
			doc:  validYAML + "colour: red\n",
			code: ErrCodeSchema,
		},
		{
			name: "unquoted version",
			doc:  "version: 1.0\ntitle: x\ncases: [{kind: first-pixel, title: a, width: 1, height: 1, commands: [AllRed], expected: [1, 2, 3, 4]}]\n",
			code: ErrCodeSchema,
		},
		{
			name: "unknown kind",
			doc:  "version: \"1.0\"\ntitle: x\ncases: [{kind: mean-colour, title: a, width: 1, height: 1, commands: [AllRed], expected: [1, 2, 3, 4]}]\n",
			code: ErrCodeSchema,
		},
		{
			name: "channel out of range",
			doc:  "version: \"1.0\"\ntitle: x\ncases: [{kind: first-pixel, title: a, width: 1, height: 1, commands: [AllRed], expected: [1, 2, 3, 256]}]\n",
			code: ErrCodeSchema,
		},
		{
			name: "three channels",
			doc:  "version: \"1.0\"\ntitle: x\ncases: [{kind: first-pixel, title: a, width: 1, height: 1, commands: [AllRed], expected: [1, 2, 3]}]\n",
			code: ErrCodeSchema,
		},
		{
			name: "zero width",
			doc:  "version: \"1.0\"\ntitle: x\ncases: [{kind: first-pixel, title: a, width: 0, height: 1, commands: [AllRed], expected: [1, 2, 3, 4]}]\n",
			code: ErrCodeSchema,
		},
		{
			name: "unsupported version",
			doc:  "version: \"2.1\"\ntitle: x\ncases: [{kind: first-pixel, title: a, width: 1, height: 1, commands: [AllRed], expected: [1, 2, 3, 4]}]\n",
			code: ErrCodeVersion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseYAML("bad.yaml", []byte(tt.doc))
			assertCode(t, err, tt.code)
			assert.Contains(t, err.Error(), "bad.yaml")
		})
	}
}
