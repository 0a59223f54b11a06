package view

import (
	"encoding/base64"

	"github.com/roach88/conformer/internal/canon"
	"github.com/roach88/conformer/pkg/conformer"
)

// JSON renders a canonical JSON report. Titles and descriptions are
// NFC-normalised. Text metadata is written byte for byte and binary
// metadata is base64 encoded, so both round-trip exactly.
//
//	{"description":...,"failed":1,"passed":2,"results":[{"description":...,
//	 "metadata":{"k":{"kind":"text","value":"..."}},"passed":true,"title":...}],
//	 "status":"FAILED","title":...}
type JSON struct{}

// Render implements View. It returns conformer.ErrEmptyResultSet for a nil
// or empty set.
func (JSON) Render(rs *conformer.ResultSet) (string, error) {
	if err := checkNotEmpty(rs); err != nil {
		return "", err
	}
	data, err := canon.Marshal(Document(rs))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Document converts rs into the generic map encoded by JSON.
func Document(rs *conformer.ResultSet) map[string]any {
	results := make([]any, 0, rs.Len())
	for _, r := range rs.Results() {
		md := make(map[string]any)
		for _, key := range r.MetadataKeys() {
			v, _ := r.Metadata(key)
			md[key] = metaDocument(v)
		}
		results = append(results, map[string]any{
			"title":       r.Title(),
			"description": r.Description(),
			"passed":      r.Passed(),
			"metadata":    md,
		})
	}

	status := "ok"
	if !rs.DidPass() {
		status = "FAILED"
	}

	return map[string]any{
		"title":       rs.SuiteTitle(),
		"description": rs.SuiteDescription(),
		"status":      status,
		"passed":      rs.Passed(),
		"failed":      rs.Failed(),
		"results":     results,
	}
}

func metaDocument(v conformer.MetaValue) map[string]any {
	if s, ok := v.AsText(); ok {
		return map[string]any{"kind": conformer.MetaText.String(), "value": canon.Verbatim(s)}
	}
	b, _ := v.AsBinary()
	return map[string]any{"kind": conformer.MetaBinary.String(), "value": base64.StdEncoding.EncodeToString(b)}
}
