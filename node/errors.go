package node

import (
	"errors"
	"fmt"

	"github.com/verdict-go/verdict/result"
)

// ErrNoItems indicates a combination node was constructed without items.
// Use errors.Is to detect it behind wrapped construction errors.
var ErrNoItems = errors.New("combination node requires at least one item")

// ValidationError is the typed failure returned by ValidateOrFail. It
// carries the complete, ordered error list of the underlying result.
type ValidationError struct {
	Entries []result.Entry
}

func (e *ValidationError) Error() string {
	switch len(e.Entries) {
	case 0:
		return "validation failed"
	case 1:
		return fmt.Sprintf("validation failed: %s: %s", e.Entries[0].Path, e.Entries[0].Message)
	default:
		return fmt.Sprintf("validation failed: %d errors (first at %s: %s)",
			len(e.Entries), e.Entries[0].Path, e.Entries[0].Message)
	}
}
