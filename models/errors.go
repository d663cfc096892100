// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

// Error kinds shared by every layer. Concrete errors wrap exactly one of them
// so callers can classify a failure with [errors.Is] regardless of which
// package produced it.
var (
	// ErrStore marks a local persistence failure (transaction, connection,
	// scan). The operation that failed left previously committed state intact.
	ErrStore = errors.New("store error")

	// ErrAuth marks an identity provider denial or failure.
	ErrAuth = errors.New("auth error")

	// ErrSink marks a remote sink API failure (create, read, write, append).
	ErrSink = errors.New("sink error")

	// ErrValidation marks a schema or required-field violation detected
	// before any store write.
	ErrValidation = errors.New("validation error")
)

var (
	// ErrInvalidValue is returned when a captured input cannot be turned into
	// the variant required by its field type.
	ErrInvalidValue = errors.New("invalid field value")

	// ErrUnknownFieldType is returned for a field type outside the supported set.
	ErrUnknownFieldType = errors.New("unknown field type")
)
