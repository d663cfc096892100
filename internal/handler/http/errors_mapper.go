// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-field-keeper/internal/service"
	"github.com/MKhiriev/go-field-keeper/internal/store"
	"github.com/MKhiriev/go-field-keeper/models"
)

type errorStatus struct {
	target error
	status int
}

// errorStatuses is checked in order: service errors wrap store errors, so
// the more specific targets come first.
var errorStatuses = []errorStatus{
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrRowCountMismatch, http.StatusBadRequest},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{models.ErrValidation, http.StatusBadRequest},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{store.ErrSinkNotFound, http.StatusNotFound},
	{store.ErrHeaderAlreadyExists, http.StatusConflict},
	{store.ErrClientAlreadyExists, http.StatusConflict},
	{service.ErrStorageUnavailable, http.StatusServiceUnavailable},
}

func statusFromError(err error) int {
	for _, es := range errorStatuses {
		if errors.Is(err, es.target) {
			return es.status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err. Server-side failures
// never leak their cause to the client.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		http.Error(w, http.StatusText(status), status)
		return
	}
	http.Error(w, err.Error(), status)
}
