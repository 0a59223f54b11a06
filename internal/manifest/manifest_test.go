package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wantDefault(t *testing.T, m *Manifest) {
	t.Helper()
	assert.Equal(t, "1.0", m.Version)
	assert.Equal(t, "Simple Renderer Test Suite", m.Title)
	require.Len(t, m.Cases, 3)

	assert.Equal(t, Case{
		Kind:     KindEntireBuffer,
		Title:    "All Red pixels",
		Width:    256,
		Height:   256,
		Commands: []string{"AllRed"},
		Expected: []int{255, 0, 0, 255},
	}, m.Cases[0])

	last := m.Cases[2]
	assert.Equal(t, KindFirstPixel, last.Kind)
	assert.Equal(t, "Verify that the final color is that of the final command.", last.Description)
	assert.Equal(t, []string{"AllRed", "AllBlue"}, last.Commands)
	assert.Equal(t, []int{0, 0, 255, 255}, last.Expected)
}

func TestLoad_ExampleYAML(t *testing.T) {
	m, err := Load(filepath.Join("..", "..", "examples", "renderer.yaml"))
	require.NoError(t, err)
	wantDefault(t, m)
}

func TestLoad_ExampleCUE(t *testing.T) {
	m, err := Load(filepath.Join("..", "..", "examples", "renderer.cue"))
	require.NoError(t, err)
	wantDefault(t, m)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assertCode(t, err, ErrCodeRead)
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suite.toml")
	require.NoError(t, os.WriteFile(path, []byte(`title = "x"`), 0o644))

	_, err := Load(path)
	assertCode(t, err, ErrCodeFormat)
	assert.Contains(t, err.Error(), `".toml"`)
}

func TestCheckVersion(t *testing.T) {
	tests := []struct {
		version string
		ok      bool
	}{
		{"1.0", true},
		{"1.4.2", true},
		{"0.9", false},
		{"2.0", false},
		{"one", false},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			err := checkVersion("m.yaml", tt.version)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assertCode(t, err, ErrCodeVersion)
		})
	}
}

func TestLoadError_Format(t *testing.T) {
	err := &LoadError{Code: ErrCodeSchema, File: "suite.yaml", Message: "bad"}
	assert.Equal(t, "suite.yaml: M004: bad", err.Error())

	err = &LoadError{Code: ErrCodeSchema, Message: "bad"}
	assert.Equal(t, "M004: bad", err.Error())
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr), "want *LoadError, got %T: %v", err, err)
	assert.Equal(t, code, loadErr.Code, loadErr.Error())
}
