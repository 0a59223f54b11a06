package conformer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetaValue_Text(t *testing.T) {
	v := Text("hello")

	assert.Equal(t, MetaText, v.Kind())
	s, ok := v.AsText()
	assert.True(t, ok)
	assert.Equal(t, "hello", s)

	_, ok = v.AsBinary()
	assert.False(t, ok)
}

func TestMetaValue_BinaryIsCopied(t *testing.T) {
	src := []byte{1, 2, 3}
	v := Binary(src)
	src[0] = 9

	b, ok := v.AsBinary()
	require.True(t, ok)
	assert.Equal(t, []byte{1, 2, 3}, b)

	b[1] = 9
	again, _ := v.AsBinary()
	assert.Equal(t, []byte{1, 2, 3}, again, "AsBinary must return a copy")

	_, ok = v.AsText()
	assert.False(t, ok)
}

func TestMetaKind_RoundTrip(t *testing.T) {
	for _, k := range []MetaKind{MetaText, MetaBinary} {
		got, ok := ParseMetaKind(k.String())
		require.True(t, ok)
		assert.Equal(t, k, got)
	}

	_, ok := ParseMetaKind("float")
	assert.False(t, ok)
	assert.Equal(t, "unknown", MetaKind(0).String())
}

func TestResult_Identity(t *testing.T) {
	r := NewResult("Test Case Title", "Test Case Description", true)

	assert.Equal(t, "Test Case Title", r.Title())
	assert.Equal(t, "Test Case Description", r.Description())
	assert.True(t, r.Passed())
	assert.Empty(t, r.MetadataKeys())
}

func TestResult_SetMetadataReplaces(t *testing.T) {
	r := NewResult("t", "", false)

	_, replaced := r.SetMetadata(HTMLVisualKey, Text("<p>one</p>"))
	assert.False(t, replaced)

	prev, replaced := r.SetMetadata(HTMLVisualKey, Text("<p>two</p>"))
	assert.True(t, replaced)
	s, _ := prev.AsText()
	assert.Equal(t, "<p>one</p>", s)

	got, ok := r.MetadataText(HTMLVisualKey)
	require.True(t, ok)
	assert.Equal(t, "<p>two</p>", got)
}

func TestResult_MetadataTextRejectsBinary(t *testing.T) {
	r := NewResult("t", "", true)
	r.SetMetadata("png", Binary([]byte{0x89, 'P', 'N', 'G'}))

	_, ok := r.MetadataText("png")
	assert.False(t, ok)

	_, ok = r.MetadataText("missing")
	assert.False(t, ok)

	v, ok := r.Metadata("png")
	require.True(t, ok)
	assert.Equal(t, MetaBinary, v.Kind())
}

func TestResult_MetadataKeysSorted(t *testing.T) {
	r := NewResult("t", "", true)
	r.SetMetadata("zeta", Text("z"))
	r.SetMetadata("alpha", Text("a"))
	r.SetMetadata("mid", Binary(nil))

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, r.MetadataKeys())
}

func TestResult_ZeroValueAcceptsMetadata(t *testing.T) {
	var r Result
	r.SetMetadata("k", Text("v"))

	got, ok := r.MetadataText("k")
	assert.True(t, ok)
	assert.Equal(t, "v", got)
}
