// Package store holds the in-memory domain collections and the
// operations that mutate them.  Stores are plain owned objects
// wired in at construction time; there is no package-level state.
// This file defines sentinel errors reused across the stores so
// that handlers can map failure cases to HTTP statuses without
// string matching.
package store

import "errors"

// ErrNotFound is returned when an operation names an id that does
// not exist in the collection.  Handlers translate this into an
// HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrInvalidCredentials is returned by Login when no user matches
// the supplied email and password exactly.  Handlers translate
// this into an HTTP 401 response.
var ErrInvalidCredentials = errors.New("invalid credentials")
