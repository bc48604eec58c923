package build

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdict-go/verdict/node"
)

func TestLoadScalar(t *testing.T) {
	n, err := Load([]byte("type: string\nrequired: true\n"))
	require.NoError(t, err)

	assert.True(t, n.Validate("x").Valid())
	res := n.Validate(nil)
	require.Len(t, res.Entries(), 1)
	assert.Equal(t, "Value must be given.", res.Entries()[0].Message)
}

func TestLoadObjectTree(t *testing.T) {
	doc := []byte(`
type: object
properties:
  name:
    type: string
    required: true
  age:
    type: integer
    default: 0
  address:
    type: object
    properties:
      city:
        type: string
        required: true
`)
	n, err := Load(doc)
	require.NoError(t, err)

	res := n.Validate(map[string]any{"age": 30, "address": map[string]any{}})
	require.Len(t, res.Entries(), 2)
	assert.Equal(t, "/address/city", res.Entries()[0].Path)
	assert.Equal(t, "/name", res.Entries()[1].Path)
}

func TestLoadCombinator(t *testing.T) {
	doc := []byte(`
type: any_of
required: true
items:
  - type: integer
  - type: string
    enum: [auto]
`)
	n, err := Load(doc)
	require.NoError(t, err)

	assert.True(t, n.Validate(8080).Valid())
	assert.True(t, n.Validate("auto").Valid())

	res := n.Validate("manual")
	require.Len(t, res.Entries(), 1)
	assert.Equal(t, "Does not match any anyOf condition.", res.Entries()[0].Message)
}

func TestLoadArrayItems(t *testing.T) {
	doc := []byte(`
type: array
items:
  type: integer
`)
	n, err := Load(doc)
	require.NoError(t, err)

	res := n.Validate([]any{1, "x"})
	require.Len(t, res.Entries(), 1)
	assert.Equal(t, "/1", res.Entries()[0].Path)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing type tag", "required: true\n"},
		{"empty document", ""},
		{"non-string type", "type: 3\n"},
		{"scalar with items", "type: string\nitems:\n  - type: integer\n"},
		{"scalar with properties", "type: integer\nproperties:\n  a:\n    type: string\n"},
		{"array with item list", "type: array\nitems:\n  - type: integer\n"},
		{"combinator without items", "type: one_of\n"},
		{"unknown nested option", "type: object\nproperties:\n  a:\n    type: string\n    pattern: x\n"},
		{"malformed yaml", "type: [unclosed\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.doc))
			require.Error(t, err)
		})
	}
}

func TestLoadErrorNamesContext(t *testing.T) {
	doc := []byte(`
type: object
properties:
  level:
    type: string
    casing: upper
`)
	_, err := Load(doc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownOption))
	assert.Contains(t, err.Error(), `property "level"`)
	assert.Contains(t, err.Error(), "casing")
}

func TestLoadCombinatorItemsFailFast(t *testing.T) {
	doc := []byte(`
type: all_of
items:
  - type: no_such_type
`)
	_, err := Load(doc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownType))
	assert.False(t, errors.Is(err, node.ErrNoItems))
}
