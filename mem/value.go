// Package mem implements the in-memory relation store: tables, natural
// join and projection over them, and the Database they live in. The tuple
// element domain is concretized to uint64 rather than left generic: a CQ
// engine's values are opaque comparable identifiers, and a single concrete
// scalar type avoids Go generics machinery a small engine like this one
// doesn't need.
package mem

// Value is one tuple element. Values are compared and hashed by equality
// only; there is no arithmetic or ordering predicate over them.
type Value = uint64
