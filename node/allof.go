package node

import "github.com/verdict-go/verdict/result"

// AllOfNode matches data that validates against every one of its items.
// Items validate straight into the real result with no isolation and no
// short-circuit, so a value failing three items surfaces three distinct
// errors.
type AllOfNode struct {
	combination
}

// AllOf creates a combinator requiring data to match every item. It
// fails when items is empty.
func AllOf(items []Node, opts ...Option) (*AllOfNode, error) {
	n := &AllOfNode{combination: newCombination("allOf", items)}
	n.adopt(n, opts)
	if err := n.validateSelf(); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *AllOfNode) Validate(data any) *result.Result { return run(n, data) }

func (n *AllOfNode) validateInto(data any, r *result.Result) {
	effective, ok := n.process(data, r)
	if !ok {
		return
	}

	for _, item := range n.items {
		item.validateInto(effective, r)
	}
}
