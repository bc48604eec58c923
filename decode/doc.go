// Package decode turns raw data documents into the generic value trees
// the validation engine consumes. It accepts JSON and YAML input and
// supports extracting a sub-document by path before validation.
package decode
