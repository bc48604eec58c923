package node

import "fmt"

// combination factors out the item management shared by the three
// combinators. Items are the combinator's child schemas, tried in
// declaration order. Combinators declare no shapes of their own: shape
// checking is deferred entirely to the items.
type combination struct {
	base
	kind  string
	items []Node
}

func newCombination(kind string, items []Node) combination {
	c := combination{kind: kind, items: append([]Node(nil), items...)}
	return c
}

// Children returns the items in declaration order.
func (c *combination) Children() []Node {
	return c.items
}

// validateSelf requires at least one item. It runs once, after full
// construction; a violation fails construction rather than surfacing as
// a data validation error.
func (c *combination) validateSelf() error {
	if len(c.items) == 0 {
		return fmt.Errorf("%s: %w", c.kind, ErrNoItems)
	}
	return nil
}

// adopt wires the parent back-reference into every item and applies the
// node's options.
func (c *combination) adopt(parent Node, opts []Option) {
	applyOptions(&c.base, opts)
	for _, item := range c.items {
		item.settings().parent = parent
	}
}
