// Package store implements the in-memory task store: identifier
// assignment, creation of both task variants, lookup, predicate
// filtering, and completion. The store never returns a Go error from
// its operations; absent lookups use comma-ok returns and completion
// reports a structured Result, keeping every failure-like condition a
// local return value.
package store
