package result

import "strings"

// RootPath is the path of the node a Result was created for.
const RootPath = "/"

// Entry is a single validation failure, tagged with the location in the
// data tree where it was detected.
type Entry struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Result accumulates validation errors for a single Validate call.
//
// A Result is call-scoped: it is created fresh for every top-level
// validation, lives only for that call, and is never cached by a node.
// Combinators additionally allocate short-lived Results to probe
// candidate items; those are discarded without ever being merged.
type Result struct {
	path    string
	entries []Entry
}

// New returns an empty Result scoped to the root path.
func New() *Result {
	return &Result{path: RootPath}
}

// Valid reports whether no errors have been recorded.
func (r *Result) Valid() bool {
	return len(r.entries) == 0
}

// Entries returns the recorded errors in the order they were added.
func (r *Result) Entries() []Entry {
	return r.entries
}

// Path returns the result's current scope path.
func (r *Result) Path() string {
	return r.path
}

// Error records a failure message at the result's current scope path.
func (r *Result) Error(message string) {
	r.entries = append(r.entries, Entry{Path: r.path, Message: message})
}

// ErrorAt records a failure message at an explicit path, overriding the
// current scope path.
func (r *Result) ErrorAt(path, message string) {
	r.entries = append(r.entries, Entry{Path: path, Message: message})
}

// Merge folds a child result into r, re-keying every child entry under
// the given segment. A child entry at the child's root lands at
// <scope>/<segment>; deeper child entries keep their relative path below
// that point.
func (r *Result) Merge(child *Result, segment string) {
	base := Join(r.path, segment)
	for _, e := range child.entries {
		r.entries = append(r.entries, Entry{
			Path:    Join(base, strings.TrimPrefix(e.Path, RootPath)),
			Message: e.Message,
		})
	}
}

// Join appends a path segment to a base path. The root path is "/",
// every descent adds "/<segment>", and there is no trailing slash.
// Segments containing "/" are not escaped; such paths are ambiguous and
// this is a documented limitation rather than something Join repairs.
func Join(base, segment string) string {
	if segment == "" {
		return base
	}
	if base == RootPath {
		return RootPath + segment
	}
	return base + "/" + segment
}
