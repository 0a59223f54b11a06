// Package manifest loads declarative renderer suites from YAML or CUE files.
//
// A manifest names a suite and lists its cases:
//
//	version: "1.0"
//	title: Simple Renderer Test Suite
//	cases:
//	  - kind: entire-buffer
//	    title: All Red pixels
//	    width: 256
//	    height: 256
//	    commands: [AllRed]
//	    expected: [255, 0, 0, 255]
//
// YAML manifests are checked against an embedded JSON Schema, CUE manifests
// are unified with an embedded CUE definition. Both must declare a version
// accepted by SupportedVersions.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue/token"
	"github.com/hashicorp/go-version"
)

// SupportedVersions is the manifest version constraint this build accepts.
const SupportedVersions = ">= 1.0, < 2.0"

// Case kinds.
const (
	KindEntireBuffer = "entire-buffer"
	KindFirstPixel   = "first-pixel"
)

// Manifest describes a renderer suite.
type Manifest struct {
	Version     string `json:"version" yaml:"version"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Cases       []Case `json:"cases" yaml:"cases"`
}

// Case describes one renderer case.
type Case struct {
	Kind        string   `json:"kind" yaml:"kind"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Width       int      `json:"width" yaml:"width"`
	Height      int      `json:"height" yaml:"height"`
	Commands    []string `json:"commands" yaml:"commands"`
	Expected    []int    `json:"expected" yaml:"expected"`
}

// LoadError reports why a manifest could not be loaded.
type LoadError struct {
	Code    string
	File    string
	Message string
	Pos     token.Pos // CUE position if available
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	if e.File != "" {
		return fmt.Sprintf("%s: %s: %s", e.File, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Error codes.
const (
	ErrCodeRead        = "M001" // File could not be read
	ErrCodeFormat      = "M002" // Unsupported file extension
	ErrCodeParse       = "M003" // Syntax error
	ErrCodeSchema      = "M004" // Schema violation
	ErrCodeVersion     = "M005" // Unsupported manifest version
	ErrCodeSchemaSetup = "M006" // Embedded schema failed to compile
)

// Load reads a manifest file. The format is chosen by extension:
// .yaml and .yml for YAML, .cue for CUE.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeRead, File: path, Message: err.Error()}
	}

	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		return ParseYAML(path, data)
	case ".cue":
		return ParseCUE(path, data)
	default:
		return nil, &LoadError{
			Code:    ErrCodeFormat,
			File:    path,
			Message: fmt.Sprintf("unsupported manifest extension %q: must be .yaml, .yml or .cue", ext),
		}
	}
}

var supported = mustConstraint(SupportedVersions)

func mustConstraint(c string) version.Constraints {
	constraints, err := version.NewConstraint(c)
	if err != nil {
		panic(err)
	}
	return constraints
}

func checkVersion(file, v string) error {
	parsed, err := version.NewVersion(v)
	if err != nil {
		return &LoadError{Code: ErrCodeVersion, File: file, Message: fmt.Sprintf("invalid version %q: %v", v, err)}
	}
	if !supported.Check(parsed) {
		return &LoadError{
			Code:    ErrCodeVersion,
			File:    file,
			Message: fmt.Sprintf("version %s is not supported (want %s)", parsed, SupportedVersions),
		}
	}
	return nil
}
