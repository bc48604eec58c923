package verdict

import "fmt"

// Error kinds categorize failures of the one-shot helpers.
const (
	// KindDefinition represents schema-definition errors: the schema
	// itself is malformed and could not be built.
	KindDefinition = "definition"

	// KindDecode represents errors decoding a data document before
	// validation ever starts.
	KindDecode = "decode"

	// KindValidation represents a well-formed document that does not
	// conform to the schema.
	KindValidation = "validation"
)

// Error wraps an underlying failure with the operation that failed and
// the category of error. It supports errors.Is and errors.As through
// Unwrap.
type Error struct {
	// Op is the operation that failed (e.g., "Compile", "Validate").
	Op string

	// Kind categorizes the error (KindDefinition, KindDecode,
	// KindValidation).
	Kind string

	// Err is the underlying error.
	Err error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("verdict: %s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("verdict: %s (%s): %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
