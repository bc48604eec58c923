// Package result provides the call-scoped error accumulator used by the
// validation engine.
//
// Every validation call produces one Result holding an ordered list of
// (path, message) entries. Paths are slash-delimited locations within the
// validated data tree, with "/" denoting the root. A Result is valid iff
// it holds no entries.
//
// Results compose: a container node validates each child into a fresh
// Result and folds it back with Merge, which prefixes the child's entry
// paths with the segment the child was validated under:
//
//	sub := result.New()
//	childNode.Validate(...)        // errors recorded at "/" or below
//	r.Merge(sub, "age")            // re-keyed to "/age" or below
package result
