package node

import "github.com/verdict-go/verdict/result"

// OneOfNode matches data that validates cleanly against exactly one of
// its items. Matching more than one item is itself an error: oneOf is
// exclusive.
type OneOfNode struct {
	combination
}

// OneOf creates a combinator requiring data to match exactly one item.
// It fails when items is empty.
func OneOf(items []Node, opts ...Option) (*OneOfNode, error) {
	n := &OneOfNode{combination: newCombination("oneOf", items)}
	n.adopt(n, opts)
	if err := n.validateSelf(); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *OneOfNode) Validate(data any) *result.Result { return run(n, data) }

func (n *OneOfNode) validateInto(data any, r *result.Result) {
	effective, ok := n.process(data, r)
	if !ok {
		return
	}

	var winner Node
	matches := 0
	for _, item := range n.items {
		probe := result.New()
		item.validateInto(effective, probe)
		if probe.Valid() {
			if matches == 0 {
				winner = item
			}
			matches++
		}
	}

	switch {
	case matches == 0:
		r.Error("Does not match any oneOf condition.")
	case matches > 1:
		r.Error("Matches more than one oneOf condition.")
	default:
		winner.validateInto(effective, r)
	}
}
