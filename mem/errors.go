package mem

import "gopkg.in/src-d/go-errors.v1"

// ErrSchema covers attribute/table lookups that fail: an unknown attribute
// passed to Project, a missing table at first access during evaluation, a
// head variable absent from every body atom, or a loaded record whose arity
// disagrees with its relation's declared header.
var ErrSchema = errors.NewKind("schema error: %s")

// ErrIO covers failures reading the database text dump format that aren't
// schema disagreements: duplicate relation names, record lines before any
// header, or tokens that don't parse as values. A line that does not match
// the header pattern is read as a record line, so a malformed header
// surfaces as one of these or as an ErrSchema arity mismatch.
var ErrIO = errors.NewKind("database load error: %s")
