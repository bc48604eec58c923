// Package node implements the schema tree and its validation engine.
//
// A schema is a tree of Node values. Leaf nodes (String, Integer, Number,
// Boolean, Object, Array) check the runtime shape of a value; combinators
// (AnyOf, OneOf, AllOf) compose child schemas with boolean-style matching
// semantics. Every node runs the same generic pipeline first: required
// check, default substitution, allowed-shape check, enum membership.
//
// # Building Schemas
//
// Nodes are built with constructors and functional options:
//
//	name := node.String(node.Required())
//	age := node.Integer(node.WithDefault(0))
//
//	user := node.Object(map[string]node.Node{
//		"name": name,
//		"age":  age,
//	})
//
//	flexible, err := node.AnyOf([]node.Node{node.String(), node.Integer()})
//
// Combinator constructors return an error when their structural
// invariants are violated (a combinator needs at least one item); a node
// never exists in an invalid state at validation time.
//
// # Validation
//
// Validate walks the data tree and returns a call-scoped result:
//
//	res := user.Validate(map[string]any{"age": 30})
//	for _, e := range res.Entries() {
//		fmt.Printf("%s: %s\n", e.Path, e.Message)
//	}
//	// /name: Value must be given.
//
// Schema trees are immutable after construction and safe for concurrent
// Validate calls; construction itself is single-threaded and must
// complete before validation starts.
package node
