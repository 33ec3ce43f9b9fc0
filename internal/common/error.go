// Package common defines sentinel errors shared by the store packages.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Validation errors.
	ErrInvalidRole = errors.New("invalid user role")
)
