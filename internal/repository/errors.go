// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as the
// service package to distinguish between different failure scenarios
// without depending on driver-specific error codes.
package repository

import "errors"

// ErrEmailExists is returned when an insert would violate the email
// uniqueness constraint, either detected up front or as a duplicate-key
// race at the storage layer.
var ErrEmailExists = errors.New("email already exists")

// ErrSessionNotFound is returned when a session does not exist, is no
// longer active, or a rotation lost against a concurrent one. Callers
// cannot tell the three cases apart.
var ErrSessionNotFound = errors.New("session not found")
