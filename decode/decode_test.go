package decode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentJSON(t *testing.T) {
	v, err := Document([]byte(`{"name": "ada", "age": 36}`))
	require.NoError(t, err)

	m, ok := v.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ada", m["name"])
	assert.Equal(t, float64(36), m["age"])
}

func TestDocumentYAML(t *testing.T) {
	v, err := Document([]byte("name: ada\nage: 36\n"))
	require.NoError(t, err)

	m, ok := v.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ada", m["name"])
	assert.Equal(t, 36, m["age"])
}

func TestDocumentScalar(t *testing.T) {
	v, err := Document([]byte(`"hello"`))
	require.NoError(t, err)
	assert.Equal(t, "hello", v)
}

func TestDocumentEmpty(t *testing.T) {
	v, err := Document([]byte("  \n"))
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestDocumentInvalid(t *testing.T) {
	_, err := Document([]byte("{ not: [valid"))
	require.Error(t, err)
}

func TestSelect(t *testing.T) {
	doc := []byte(`{"user": {"name": "ada", "tags": ["a", "b"]}}`)

	v, err := Select(doc, "user.name")
	require.NoError(t, err)
	assert.Equal(t, "ada", v)

	v, err = Select(doc, "user.tags.1")
	require.NoError(t, err)
	assert.Equal(t, "b", v)
}

func TestSelectMissingPath(t *testing.T) {
	_, err := Select([]byte(`{"a": 1}`), "b.c")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"b.c"`)
}

func TestSelectRequiresJSON(t *testing.T) {
	_, err := Select([]byte("a: 1\n"), "a")
	require.Error(t, err)
}
