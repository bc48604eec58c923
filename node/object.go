package node

import (
	"encoding/json"
	"sort"

	"github.com/verdict-go/verdict/result"
)

// ObjectNode validates mappings with per-key property schemas. Property
// keys become path segments in the result, so an error inside the "age"
// property surfaces at "/age".
type ObjectNode struct {
	base
	properties map[string]Node
	keys       []string
}

// Object creates a leaf node accepting mappings. Each property schema is
// applied to the value under its key; a missing key validates the
// property against nil, so required properties report
// "Value must be given." at their own path.
func Object(properties map[string]Node, opts ...Option) *ObjectNode {
	n := &ObjectNode{properties: properties}
	n.shapes = []Shape{ShapeObject}
	applyOptions(&n.base, opts)

	// Fixed iteration order keeps validation output deterministic.
	n.keys = make([]string, 0, len(properties))
	for key := range properties {
		n.keys = append(n.keys, key)
	}
	sort.Strings(n.keys)

	for _, key := range n.keys {
		child := properties[key].settings()
		child.parent = n
		if child.name == "" {
			child.name = key
		}
	}
	return n
}

func (n *ObjectNode) Validate(data any) *result.Result { return run(n, data) }

// Children returns the property schemas sorted by key.
func (n *ObjectNode) Children() []Node {
	children := make([]Node, len(n.keys))
	for i, key := range n.keys {
		children[i] = n.properties[key]
	}
	return children
}

func (n *ObjectNode) validateInto(data any, r *result.Result) {
	effective, ok := n.process(data, r)
	if !ok {
		return
	}

	obj, ok := asMap(effective)
	if !ok {
		return
	}

	for _, key := range n.keys {
		sub := result.New()
		n.properties[key].validateInto(obj[key], sub)
		r.Merge(sub, key)
	}
}

// asMap coerces a value that already passed the object shape check into
// a generic mapping, round-tripping structs and typed maps through JSON.
func asMap(value any) (map[string]any, bool) {
	if m, ok := value.(map[string]any); ok {
		return m, true
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return nil, false
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, false
	}
	return m, true
}
