// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-field-keeper/models"
)

// Transport sentinels mapped from HTTP status codes by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

// Identity failures. Both wrap [models.ErrAuth].
var (
	// ErrAuthDenied is returned when the identity provider rejects the
	// client credentials.
	ErrAuthDenied = fmt.Errorf("%w: credentials rejected", models.ErrAuth)

	// ErrAuthUnavailable is returned when the identity provider cannot be
	// reached or answers with a server error.
	ErrAuthUnavailable = fmt.Errorf("%w: identity provider unavailable", models.ErrAuth)

	// ErrIdentityNotInitialized is returned by Authenticate before
	// Initialize has succeeded.
	ErrIdentityNotInitialized = fmt.Errorf("%w: identity client not initialized", models.ErrAuth)
)

// ErrSheetNotFound is returned by the workbook sink for an unknown sink id.
var ErrSheetNotFound = errors.New("sheet not found")

// sinkError wraps err as a sink failure of the named operation.
func sinkError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", models.ErrSink, op, err)
}
