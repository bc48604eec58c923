// Package build is the construction boundary of the validation engine:
// it instantiates schema nodes from type tags and configuration bags,
// and loads whole schema trees from YAML documents.
//
// Errors raised here are schema-definition errors, a class entirely
// separate from data-validation errors: they mean the schema itself is
// malformed (unknown type tag, unrecognized option keys, a combinator
// without items) and fail construction immediately. A node that cannot
// be built never exists, so validation never sees an invalid schema.
package build
