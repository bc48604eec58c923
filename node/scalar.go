package node

import "github.com/verdict-go/verdict/result"

// StringNode validates string values.
type StringNode struct {
	base
}

// String creates a leaf node accepting string values.
func String(opts ...Option) *StringNode {
	n := &StringNode{}
	n.shapes = []Shape{ShapeString}
	applyOptions(&n.base, opts)
	return n
}

func (n *StringNode) Validate(data any) *result.Result { return run(n, data) }

// IntegerNode validates integral values. Whole-valued floats are
// accepted, matching the behavior of generic JSON decoding.
type IntegerNode struct {
	base
}

// Integer creates a leaf node accepting integral values.
func Integer(opts ...Option) *IntegerNode {
	n := &IntegerNode{}
	n.shapes = []Shape{ShapeInteger}
	applyOptions(&n.base, opts)
	return n
}

func (n *IntegerNode) Validate(data any) *result.Result { return run(n, data) }

// NumberNode validates numeric values, integral or floating-point.
type NumberNode struct {
	base
}

// Number creates a leaf node accepting any numeric value.
func Number(opts ...Option) *NumberNode {
	n := &NumberNode{}
	n.shapes = []Shape{ShapeNumber}
	applyOptions(&n.base, opts)
	return n
}

func (n *NumberNode) Validate(data any) *result.Result { return run(n, data) }

// BooleanNode validates boolean values.
type BooleanNode struct {
	base
}

// Boolean creates a leaf node accepting boolean values.
func Boolean(opts ...Option) *BooleanNode {
	n := &BooleanNode{}
	n.shapes = []Shape{ShapeBoolean}
	applyOptions(&n.base, opts)
	return n
}

func (n *BooleanNode) Validate(data any) *result.Result { return run(n, data) }
