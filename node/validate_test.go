package node

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOrFail(t *testing.T) {
	t.Run("returns input on success", func(t *testing.T) {
		got, err := ValidateOrFail(String(), "hello")
		require.NoError(t, err)
		assert.Equal(t, "hello", got)
	})

	t.Run("returns default for nil input", func(t *testing.T) {
		got, err := ValidateOrFail(Integer(WithDefault(8080)), nil)
		require.NoError(t, err)
		assert.Equal(t, 8080, got)
	})

	t.Run("returns nil for optional absence", func(t *testing.T) {
		got, err := ValidateOrFail(String(), nil)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("failure carries the full error list", func(t *testing.T) {
		n := Object(map[string]Node{
			"name": String(Required()),
			"age":  Integer(Required()),
		})

		_, err := ValidateOrFail(n, map[string]any{})
		require.Error(t, err)

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		require.Len(t, verr.Entries, 2)
		assert.Equal(t, "/age", verr.Entries[0].Path)
		assert.Equal(t, "/name", verr.Entries[1].Path)
		assert.Contains(t, verr.Error(), "2 errors")
		assert.Contains(t, verr.Error(), "/age")
	})

	t.Run("single failure message", func(t *testing.T) {
		_, err := ValidateOrFail(String(Required()), nil)
		require.Error(t, err)
		assert.Equal(t, "validation failed: /: Value must be given.", err.Error())
	})
}

func TestValidateIsIdempotent(t *testing.T) {
	anyOf, err := AnyOf([]Node{Integer(), String(WithEnum("a"))})
	require.NoError(t, err)
	schema := Object(map[string]Node{
		"value": anyOf,
		"tag":   String(Required()),
	})
	data := map[string]any{"value": true}

	first := schema.Validate(data)
	second := schema.Validate(data)
	assert.Equal(t, first.Valid(), second.Valid())
	assert.True(t, reflect.DeepEqual(first.Entries(), second.Entries()))
}

// Schema trees are read-only after construction; concurrent Validate
// calls must not interfere.
func TestValidateConcurrently(t *testing.T) {
	anyOf, err := AnyOf([]Node{String(), Integer()})
	require.NoError(t, err)
	schema := Object(map[string]Node{
		"id":    Integer(Required()),
		"value": anyOf,
	})

	valid := map[string]any{"id": 1, "value": "x"}
	invalid := map[string]any{"value": true}

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				if !schema.Validate(valid).Valid() {
					t.Error("expected valid document to pass")
					return
				}
				res := schema.Validate(invalid)
				if len(res.Entries()) != 2 {
					t.Errorf("expected 2 entries, got %d", len(res.Entries()))
					return
				}
			}
		}()
	}
	wg.Wait()
}
