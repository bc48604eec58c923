package verdict

import (
	"github.com/verdict-go/verdict/build"
	"github.com/verdict-go/verdict/decode"
	"github.com/verdict-go/verdict/node"
	"github.com/verdict-go/verdict/result"
)

// Compile builds an immutable schema tree from a YAML schema document.
// The returned node is safe for concurrent Validate calls.
func Compile(schema []byte) (node.Node, error) {
	n, err := build.Load(schema)
	if err != nil {
		return nil, &Error{Op: "Compile", Kind: KindDefinition, Err: err}
	}
	return n, nil
}

// Validate compiles a YAML schema document and validates a raw JSON or
// YAML data document against it in one step. The error return covers
// schema-definition and document-decoding failures only; validation
// failures are reported through the result.
func Validate(schema, document []byte) (*result.Result, error) {
	n, err := Compile(schema)
	if err != nil {
		return nil, err
	}
	doc, err := decode.Document(document)
	if err != nil {
		return nil, &Error{Op: "Validate", Kind: KindDecode, Err: err}
	}
	return n.Validate(doc), nil
}

// ValidateOrFail is the fail-fast variant of Validate: it returns the
// effective (possibly defaulted) document on success and an *Error of
// KindValidation wrapping the full error list on failure.
func ValidateOrFail(schema, document []byte) (any, error) {
	n, err := Compile(schema)
	if err != nil {
		return nil, err
	}
	doc, err := decode.Document(document)
	if err != nil {
		return nil, &Error{Op: "ValidateOrFail", Kind: KindDecode, Err: err}
	}
	effective, err := node.ValidateOrFail(n, doc)
	if err != nil {
		return nil, &Error{Op: "ValidateOrFail", Kind: KindValidation, Err: err}
	}
	return effective, nil
}
