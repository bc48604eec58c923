package node

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/verdict-go/verdict/result"
)

// base holds the attributes shared by every node kind and runs the
// generic validation pipeline. Concrete nodes embed it.
type base struct {
	name         string
	required     bool
	defaultValue any
	hasDefault   bool
	enumValues   []any
	description  string
	example      any
	shapes       []Shape
	parent       Node
}

func (b *base) Name() string        { return b.name }
func (b *base) Description() string { return b.description }
func (b *base) Example() any        { return b.example }
func (b *base) Required() bool      { return b.required }
func (b *base) Parent() Node        { return b.parent }
func (b *base) Children() []Node    { return nil }

func (b *base) settings() *base     { return b }
func (b *base) validateSelf() error { return nil }

// validateInto is the default node-specific step: scalar leaves have
// nothing beyond the generic pipeline.
func (b *base) validateInto(data any, r *result.Result) {
	b.process(data, r)
}

// process runs the shared pipeline against data, recording failures at
// r's current scope. It returns the effective (post-default) value and
// whether node-specific validation should continue. A false return means
// the caller must stop: either absence was legitimate, or a required or
// shape failure was already recorded.
//
// The enum check records its failure but does not stop the pipeline;
// the shape check does. The asymmetry is deliberate and relied upon by
// existing consumers.
func (b *base) process(data any, r *result.Result) (any, bool) {
	if data == nil {
		if b.required {
			r.Error("Value must be given.")
			return nil, false
		}
		if !b.hasDefault {
			return nil, false
		}
		data = b.defaultValue
		if data == nil {
			return nil, false
		}
	}

	if len(b.shapes) > 0 && !matchesAny(b.shapes, data) {
		r.Error(fmt.Sprintf("Invalid type, expected %s.", expectedShapes(b.shapes)))
		return nil, false
	}

	if len(b.enumValues) > 0 && !enumMember(b.enumValues, data) {
		r.Error(fmt.Sprintf("Value not included in enum %s.", renderEnum(b.enumValues)))
	}

	return data, true
}

// enumMember reports whether value equals one of the allowed values.
func enumMember(allowed []any, value any) bool {
	for _, v := range allowed {
		if reflect.DeepEqual(value, v) {
			return true
		}
	}
	return false
}

// renderEnum renders the allowed values as an array literal: strings
// quoted, everything else in its natural form.
func renderEnum(allowed []any) string {
	parts := make([]string, len(allowed))
	for i, v := range allowed {
		if s, ok := v.(string); ok {
			parts[i] = fmt.Sprintf("%q", s)
		} else {
			parts[i] = fmt.Sprintf("%v", v)
		}
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
