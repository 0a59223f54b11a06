package manifest

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed manifest.schema.json
var jsonSchemaData []byte

var (
	jsonSchema     *jsonschema.Schema
	jsonSchemaOnce sync.Once
	jsonSchemaErr  error
)

// compileJSONSchema compiles the embedded schema once.
func compileJSONSchema() (*jsonschema.Schema, error) {
	jsonSchemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonSchemaData))
		if err != nil {
			jsonSchemaErr = fmt.Errorf("unmarshal manifest schema: %w", err)
			return
		}

		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("manifest.schema.json", doc); err != nil {
			jsonSchemaErr = fmt.Errorf("add manifest schema resource: %w", err)
			return
		}

		jsonSchema, err = compiler.Compile("manifest.schema.json")
		if err != nil {
			jsonSchemaErr = fmt.Errorf("compile manifest schema: %w", err)
		}
	})
	return jsonSchema, jsonSchemaErr
}

// ParseYAML parses and validates a YAML manifest. file is used in errors.
func ParseYAML(file string, data []byte) (*Manifest, error) {
	schema, err := compileJSONSchema()
	if err != nil {
		return nil, &LoadError{Code: ErrCodeSchemaSetup, File: file, Message: err.Error()}
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &LoadError{Code: ErrCodeParse, File: file, Message: err.Error()}
	}

	// Round-trip through JSON so the validator sees JSON types.
	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeParse, File: file, Message: fmt.Sprintf("not representable as JSON: %v", err)}
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(encoded))
	if err != nil {
		return nil, &LoadError{Code: ErrCodeParse, File: file, Message: err.Error()}
	}
	if err := schema.Validate(inst); err != nil {
		return nil, &LoadError{Code: ErrCodeSchema, File: file, Message: err.Error()}
	}

	var m Manifest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return nil, &LoadError{Code: ErrCodeParse, File: file, Message: err.Error()}
	}

	if err := checkVersion(file, m.Version); err != nil {
		return nil, err
	}
	return &m, nil
}
