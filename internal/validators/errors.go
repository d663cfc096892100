// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-field-keeper/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

var (
	ErrEmptyID              = fmt.Errorf("%w: id is required", models.ErrValidation)
	ErrEmptyName            = fmt.Errorf("%w: name is required", models.ErrValidation)
	ErrEmptyFieldID         = fmt.Errorf("%w: field id is required", models.ErrValidation)
	ErrReservedFieldID      = fmt.Errorf("%w: field id is reserved", models.ErrValidation)
	ErrDuplicateFieldID     = fmt.Errorf("%w: duplicate field id", models.ErrValidation)
	ErrEmptyFieldName       = fmt.Errorf("%w: field name is required", models.ErrValidation)
	ErrInvalidFieldType     = fmt.Errorf("%w: invalid field type", models.ErrValidation)
	ErrCampaignMismatch     = fmt.Errorf("%w: entry does not belong to the campaign", models.ErrValidation)
	ErrUnknownValueKey      = fmt.Errorf("%w: value for unknown field", models.ErrValidation)
	ErrValueTypeMismatch    = fmt.Errorf("%w: value does not match field type", models.ErrValidation)
	ErrRequiredFieldMissing = fmt.Errorf("%w: required field is empty", models.ErrValidation)
	ErrInvalidCoordinates   = fmt.Errorf("%w: coordinates out of range", models.ErrValidation)
	ErrInvalidNumber        = fmt.Errorf("%w: number is not finite", models.ErrValidation)
	ErrInvalidAccuracy      = fmt.Errorf("%w: accuracy must be a finite non-negative number", models.ErrValidation)

	ErrEmptyTitle        = fmt.Errorf("%w: title is required", models.ErrValidation)
	ErrEmptyCells        = fmt.Errorf("%w: row has no cells", models.ErrValidation)
	ErrEmptyRows         = fmt.Errorf("%w: rows list cannot be empty", models.ErrValidation)
	ErrLengthMismatch    = fmt.Errorf("%w: length does not match the number of rows", models.ErrValidation)
	ErrEmptyClientID     = fmt.Errorf("%w: client id is required", models.ErrValidation)
	ErrEmptyClientSecret = fmt.Errorf("%w: client secret is required", models.ErrValidation)
)
