// Package verdict provides a recursive schema-definition and
// data-validation engine: given a declarative schema tree, it checks
// whether a piece of structured data conforms and reports every
// violation with the path where it occurred.
//
// # Core Concepts
//
// The engine is organized around a few small packages:
//
//   - node: the schema tree and validation engine — leaf nodes check
//     runtime shapes, combinators (anyOf, oneOf, allOf) compose child
//     schemas with boolean-style matching
//   - result: the call-scoped accumulator of path-tagged errors
//   - build: the authoring boundary — type tags, option bags, and YAML
//     schema documents
//   - decode: JSON/YAML data-document decoding for callers and the CLI
//
// This root package offers one-shot helpers that tie them together.
//
// # Getting Started
//
// Compile a schema once and validate as many documents as needed:
//
//	schema, err := verdict.Compile([]byte(`
//	type: object
//	properties:
//	  name:
//	    type: string
//	    required: true
//	`))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	res := schema.Validate(map[string]any{})
//	for _, e := range res.Entries() {
//		fmt.Printf("%s: %s\n", e.Path, e.Message)
//	}
//	// /name: Value must be given.
//
// Schema trees are immutable after construction and safe for concurrent
// validation. Building schemas programmatically, without the YAML
// boundary, is done directly with the node package.
package verdict
