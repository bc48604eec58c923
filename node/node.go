package node

import (
	"github.com/verdict-go/verdict/result"
)

// Node is the contract every schema element implements. It is satisfied
// only by types in this package: the variant set is closed, and new leaf
// kinds are added as new types here rather than looked up dynamically.
type Node interface {
	// Validate checks data against this schema node and returns a fresh
	// call-scoped result. It never panics on malformed data; all
	// failures are collected into the result.
	Validate(data any) *result.Result

	// Name returns the node's diagnostic identifier, or "" if unset.
	Name() string

	// Description returns the node's documentation text, or "".
	Description() string

	// Example returns the node's documentation example value, or nil.
	Example() any

	// Required reports whether absent input at this position is an error.
	Required() bool

	// Parent returns the enclosing node, or nil for a root. The link is
	// a lookup aid only; children never own any part of their parent.
	Parent() Node

	// Children returns the node's child schema nodes in declaration
	// order, or nil for scalar leaves.
	Children() []Node

	// validateInto runs this node's checks against data, accumulating
	// failures into r at r's current scope.
	validateInto(data any, r *result.Result)

	// validateSelf enforces structural invariants once construction is
	// complete. The default is a no-op.
	validateSelf() error

	// settings exposes the shared attribute set.
	settings() *base
}

// run creates the call-scoped result for a top-level Validate.
func run(n Node, data any) *result.Result {
	r := result.New()
	n.validateInto(data, r)
	return r
}

// ValidateOrFail validates data against n and returns the effective data
// on success: the configured default when data is nil and a default is
// set, the input unchanged otherwise. On failure it returns a
// *ValidationError carrying the full error list.
func ValidateOrFail(n Node, data any) (any, error) {
	res := n.Validate(data)
	if !res.Valid() {
		return nil, &ValidationError{Entries: res.Entries()}
	}
	if s := n.settings(); data == nil && s.hasDefault {
		return s.defaultValue, nil
	}
	return data, nil
}
