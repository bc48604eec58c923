package node

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Shape identifies a runtime shape a leaf node accepts. Combinators
// declare no shapes; shape checking is deferred entirely to their items.
type Shape string

const (
	ShapeString  Shape = "string"
	ShapeInteger Shape = "integer"
	ShapeNumber  Shape = "number"
	ShapeBoolean Shape = "boolean"
	ShapeObject  Shape = "object"
	ShapeArray   Shape = "array"
)

// matches reports whether value conforms to the shape. Integral shapes
// accept whole-valued floats, since generic JSON decoding yields float64
// for every number.
func (s Shape) matches(value any) bool {
	v := reflect.ValueOf(value)
	if !v.IsValid() {
		return false
	}

	switch s {
	case ShapeString:
		return v.Kind() == reflect.String
	case ShapeInteger:
		switch v.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return true
		case reflect.Float32, reflect.Float64:
			f := v.Float()
			return f == float64(int64(f))
		}
		return false
	case ShapeNumber:
		switch v.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64:
			return true
		}
		return false
	case ShapeBoolean:
		return v.Kind() == reflect.Bool
	case ShapeArray:
		return v.Kind() == reflect.Slice || v.Kind() == reflect.Array
	case ShapeObject:
		return v.Kind() == reflect.Map || v.Kind() == reflect.Struct
	}
	return false
}

func matchesAny(shapes []Shape, value any) bool {
	for _, s := range shapes {
		if s.matches(value) {
			return true
		}
	}
	return false
}

// expectedShapes renders the allowed shapes for the invalid-type message:
// labels sorted, de-duplicated, double-quoted, joined with " or ".
func expectedShapes(shapes []Shape) string {
	seen := make(map[string]bool, len(shapes))
	labels := make([]string, 0, len(shapes))
	for _, s := range shapes {
		label := string(s)
		if seen[label] {
			continue
		}
		seen[label] = true
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for i, label := range labels {
		labels[i] = fmt.Sprintf("%q", label)
	}
	return strings.Join(labels, " or ")
}
