// Package dumpdiff parses bracketed object dumps, the text produced by
// Java-style toString implementations like
// Person[name=Alice, age=30, address=Address[city=NYC]], into generic value
// trees, and structurally compares two such trees, reporting every divergence
// by dot-joined path.
//
// The two halves are independent. Parse turns one dump string into an Object,
// a map-shaped tree of tagged Values. Diff takes two Objects (from Parse or
// any other producer) and returns an ordered list of Deltas: a key present on
// only one side, or a value that differs at the same path. Nested objects are
// recursed into; lists are compared as whole values.
//
// The parser is intentionally permissive. Dump text comes from serializers
// that were never meant to be machine-read back, so anything short of "no
// opening bracket at all" degrades to best-effort extraction rather than an
// error. The Strict option is available for callers that would rather fail on
// unbalanced brackets.
//
// Both Parse and Diff are pure, synchronous functions holding no shared
// state; they are safe to call concurrently as long as the trees passed in
// are not mutated from another goroutine.
package dumpdiff
