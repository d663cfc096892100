// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-field-keeper/models"
)

// SinkRequestValidator implements [Validator] for the sink server request
// bodies.
type SinkRequestValidator struct{}

// NewSinkRequestValidator constructs a new SinkRequestValidator and returns
// it as the Validator interface.
func NewSinkRequestValidator() Validator {
	return &SinkRequestValidator{}
}

// Validate checks a request body. Field scoping is not supported: every
// rule of the request type is applied.
func (v *SinkRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	if len(fields) > 0 {
		return ErrUnknownField
	}

	switch value := obj.(type) {
	case models.TokenRequest:
		return validateTokenRequest(value)
	case *models.TokenRequest:
		return validateTokenRequest(*value)

	case models.CreateSinkRequest:
		if strings.TrimSpace(value.Title) == "" {
			return ErrEmptyTitle
		}
		return nil
	case *models.CreateSinkRequest:
		return v.Validate(ctx, *value)

	case models.HeaderRowRequest:
		if len(value.Cells) == 0 {
			return ErrEmptyCells
		}
		return nil
	case *models.HeaderRowRequest:
		return v.Validate(ctx, *value)

	case models.AppendRowsRequest:
		return validateAppendRowsRequest(value)
	case *models.AppendRowsRequest:
		return validateAppendRowsRequest(*value)

	default:
		return ErrUnsupportedType
	}
}

func validateTokenRequest(req models.TokenRequest) error {
	if strings.TrimSpace(req.ClientID) == "" {
		return ErrEmptyClientID
	}
	if req.ClientSecret == "" {
		return ErrEmptyClientSecret
	}
	return nil
}

func validateAppendRowsRequest(req models.AppendRowsRequest) error {
	if len(req.Rows) == 0 {
		return ErrEmptyRows
	}
	if req.Length != len(req.Rows) {
		return ErrLengthMismatch
	}
	for _, row := range req.Rows {
		if len(row) == 0 {
			return ErrEmptyCells
		}
	}
	return nil
}
