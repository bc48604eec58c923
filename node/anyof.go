package node

import "github.com/verdict-go/verdict/result"

// AnyOfNode matches data that validates cleanly against at least one of
// its items. Items are probed in declaration order and the first clean
// match wins; order is caller-controlled and significant.
type AnyOfNode struct {
	combination
}

// AnyOf creates a combinator requiring data to match at least one item.
// It fails when items is empty.
func AnyOf(items []Node, opts ...Option) (*AnyOfNode, error) {
	n := &AnyOfNode{combination: newCombination("anyOf", items)}
	n.adopt(n, opts)
	if err := n.validateSelf(); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *AnyOfNode) Validate(data any) *result.Result { return run(n, data) }

func (n *AnyOfNode) validateInto(data any, r *result.Result) {
	effective, ok := n.process(data, r)
	if !ok {
		return
	}

	for _, item := range n.items {
		probe := result.New()
		item.validateInto(effective, probe)
		if probe.Valid() {
			// Re-run the winner against the real result so its effects
			// are recorded there; it cannot fail, the probe just passed.
			item.validateInto(effective, r)
			return
		}
	}

	// Individual item errors stay suppressed; only the aggregate
	// failure is reported.
	r.Error("Does not match any anyOf condition.")
}
