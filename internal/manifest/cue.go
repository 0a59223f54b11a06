package manifest

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

//go:embed manifest.schema.cue
var cueSchemaSource string

// ParseCUE evaluates a CUE manifest against the #Manifest definition.
// file is used in errors and positions.
func ParseCUE(file string, data []byte) (*Manifest, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(cueSchemaSource, cue.Filename("manifest.schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, &LoadError{Code: ErrCodeSchemaSetup, File: file, Message: err.Error()}
	}
	def := schema.LookupPath(cue.ParsePath("#Manifest"))

	value := ctx.CompileBytes(data, cue.Filename(file))
	if err := value.Err(); err != nil {
		return nil, cueLoadError(ErrCodeParse, file, err)
	}

	unified := def.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, cueLoadError(ErrCodeSchema, file, err)
	}

	var m Manifest
	if err := unified.Decode(&m); err != nil {
		return nil, cueLoadError(ErrCodeSchema, file, err)
	}

	if err := checkVersion(file, m.Version); err != nil {
		return nil, err
	}
	return &m, nil
}

// cueLoadError converts the first CUE error to a LoadError with position info.
func cueLoadError(code, file string, err error) *LoadError {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return &LoadError{Code: code, File: file, Message: err.Error()}
	}

	first := errs[0]
	loadErr := &LoadError{Code: code, File: file, Message: first.Error()}
	if len(errs) > 1 {
		loadErr.Message = fmt.Sprintf("%s (and %d more errors)", first.Error(), len(errs)-1)
	}
	if positions := cueerrors.Positions(first); len(positions) > 0 {
		loadErr.Pos = positions[0]
	}
	return loadErr
}
