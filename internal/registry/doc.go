// Package registry holds the generated documents of one output kind.
//
// A Registry maps a document key (a resloc.Location) to a Producer that
// builds the document on demand. Recipes never touch a Registry directly: the
// engine inserts their results, so the duplicate-key check lives in exactly
// one place.
//
// Two insertion policies exist side by side. Insert is fail-fast and reports a
// DuplicateKeyError, because two recipes targeting the same file is a bug in
// the recipe set. InsertIfAbsent is first-wins and is reserved for default
// item models, where a later recipe must not overwrite an earlier one.
package registry
