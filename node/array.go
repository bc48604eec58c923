package node

import (
	"reflect"
	"strconv"

	"github.com/verdict-go/verdict/result"
)

// ArrayNode validates sequences. When an item schema is set it is
// applied to every element, with the element index as the path segment.
type ArrayNode struct {
	base
	items Node
}

// Array creates a leaf node accepting sequences. A nil items schema
// accepts elements of any shape.
func Array(items Node, opts ...Option) *ArrayNode {
	n := &ArrayNode{items: items}
	n.shapes = []Shape{ShapeArray}
	applyOptions(&n.base, opts)
	if items != nil {
		items.settings().parent = n
	}
	return n
}

func (n *ArrayNode) Validate(data any) *result.Result { return run(n, data) }

func (n *ArrayNode) Children() []Node {
	if n.items == nil {
		return nil
	}
	return []Node{n.items}
}

func (n *ArrayNode) validateInto(data any, r *result.Result) {
	effective, ok := n.process(data, r)
	if !ok || n.items == nil {
		return
	}

	v := reflect.ValueOf(effective)
	for i := 0; i < v.Len(); i++ {
		sub := result.New()
		n.items.validateInto(v.Index(i).Interface(), sub)
		r.Merge(sub, strconv.Itoa(i))
	}
}
