package conformer

import "sort"

// HTMLVisualKey is the reserved metadata key holding a pre-rendered HTML
// fragment for a case. The HTML view inserts it verbatim.
const HTMLVisualKey = "html-visual"

// MetaKind identifies which payload a MetaValue carries.
type MetaKind int

// Metadata value kinds.
const (
	MetaText MetaKind = iota + 1
	MetaBinary
)

// String returns the kind name used in reports and the store.
func (k MetaKind) String() string {
	switch k {
	case MetaText:
		return "text"
	case MetaBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// ParseMetaKind is the inverse of MetaKind.String.
func ParseMetaKind(s string) (MetaKind, bool) {
	switch s {
	case "text":
		return MetaText, true
	case "binary":
		return MetaBinary, true
	default:
		return 0, false
	}
}

// MetaValue is a tagged metadata value: either text or raw bytes.
// The zero value is invalid and reports Kind() == 0.
type MetaValue struct {
	kind MetaKind
	text string
	data []byte
}

// Text creates a text metadata value.
func Text(s string) MetaValue {
	return MetaValue{kind: MetaText, text: s}
}

// Binary creates a binary metadata value. The bytes are copied.
func Binary(b []byte) MetaValue {
	data := make([]byte, len(b))
	copy(data, b)
	return MetaValue{kind: MetaBinary, data: data}
}

// Kind reports which payload the value carries.
func (v MetaValue) Kind() MetaKind {
	return v.kind
}

// AsText returns the text payload. ok is false for binary values.
func (v MetaValue) AsText() (s string, ok bool) {
	if v.kind != MetaText {
		return "", false
	}
	return v.text, true
}

// AsBinary returns a copy of the binary payload. ok is false for text values.
func (v MetaValue) AsBinary() (b []byte, ok bool) {
	if v.kind != MetaBinary {
		return nil, false
	}
	out := make([]byte, len(v.data))
	copy(out, v.data)
	return out, true
}

// Result is the outcome of a single test case: its identity, whether it
// passed, and metadata attached by the case for use by views.
//
// A Result is built by the case that produced it. Once it is handed to
// NewResultSet the set keeps a frozen copy; setting metadata on a frozen
// Result panics.
type Result struct {
	title       string
	description string
	passed      bool
	metadata    map[string]MetaValue
	frozen      bool
}

// NewResult creates a result. passed cannot be changed afterwards.
func NewResult(title, description string, passed bool) *Result {
	return &Result{
		title:       title,
		description: description,
		passed:      passed,
		metadata:    make(map[string]MetaValue),
	}
}

// Title returns the case title.
func (r *Result) Title() string { return r.title }

// Description returns the case description. It may be empty.
func (r *Result) Description() string { return r.description }

// Passed reports whether the case passed.
func (r *Result) Passed() bool { return r.passed }

// SetMetadata stores value under key and returns the value it replaced, if any.
func (r *Result) SetMetadata(key string, value MetaValue) (previous MetaValue, replaced bool) {
	if r.frozen {
		panic("conformer: SetMetadata called on a result owned by a ResultSet")
	}
	if r.metadata == nil {
		r.metadata = make(map[string]MetaValue)
	}
	previous, replaced = r.metadata[key]
	r.metadata[key] = value
	return previous, replaced
}

// Metadata looks up a metadata value.
func (r *Result) Metadata(key string) (MetaValue, bool) {
	v, ok := r.metadata[key]
	return v, ok
}

// MetadataText looks up a text metadata value. ok is false when the key is
// missing or holds binary data.
func (r *Result) MetadataText(key string) (string, bool) {
	v, ok := r.metadata[key]
	if !ok {
		return "", false
	}
	return v.AsText()
}

// MetadataKeys returns all metadata keys in sorted order.
func (r *Result) MetadataKeys() []string {
	keys := make([]string, 0, len(r.metadata))
	for k := range r.metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// freeze returns a frozen deep copy of r.
func (r *Result) freeze() *Result {
	md := make(map[string]MetaValue, len(r.metadata))
	for k, v := range r.metadata {
		if v.kind == MetaBinary {
			v = Binary(v.data)
		}
		md[k] = v
	}
	return &Result{
		title:       r.title,
		description: r.description,
		passed:      r.passed,
		metadata:    md,
		frozen:      true,
	}
}
