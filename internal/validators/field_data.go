// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/MKhiriev/go-field-keeper/models"
)

// Field name constants used to specify which parts of a campaign or an
// entry should be validated.
const (
	// FieldID targets the identifier of a campaign or an entry.
	FieldID = "id"

	// FieldName targets the campaign name.
	FieldName = "name"

	// FieldFields targets the campaign field definitions.
	FieldFields = "fields"

	// FieldCampaignID targets the owning campaign of an entry.
	FieldCampaignID = "campaign_id"

	// FieldValues targets the typed values of an entry: unknown keys, type
	// matches, finite numbers and coordinate ranges.
	FieldValues = "values"

	// FieldRequired targets the required-field check of an entry.
	FieldRequired = "required"

	// FieldLocation targets the entry-level location.
	FieldLocation = "location"
)

// reservedFieldPrefix is the prefix of capture keys that carry the entry
// location; no field may use it.
const reservedFieldPrefix = "__loc_"

// SchemaEntry pairs an entry with the campaign whose schema it must follow.
type SchemaEntry struct {
	Campaign models.Campaign
	Entry    models.Entry
}

// FieldDataValidator implements [Validator] for campaigns and entries.
type FieldDataValidator struct{}

// NewFieldDataValidator constructs a new FieldDataValidator and returns it as
// the Validator interface.
func NewFieldDataValidator() Validator {
	return &FieldDataValidator{}
}

// Validate dispatches validation by the dynamic type of obj. Supported:
// models.Campaign and SchemaEntry, as values or pointers. Returns
// ErrUnsupportedType for anything else.
func (v *FieldDataValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Campaign:
		return v.validateCampaign(ctx, value, fields...)
	case *models.Campaign:
		return v.validateCampaign(ctx, *value, fields...)

	case SchemaEntry:
		return v.validateEntry(ctx, value.Campaign, value.Entry, fields...)
	case *SchemaEntry:
		return v.validateEntry(ctx, value.Campaign, value.Entry, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateCampaign checks the campaign and its schema.
//
// Default validated fields: ID, Name, Fields.
func (v *FieldDataValidator) validateCampaign(ctx context.Context, campaign models.Campaign, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldName, FieldFields}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(campaign.ID) == "" {
				return ErrEmptyID
			}
		case FieldName:
			if strings.TrimSpace(campaign.Name) == "" {
				return ErrEmptyName
			}
		case FieldFields:
			if err := validateFieldDefinitions(campaign.Fields); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateFieldDefinitions(defs models.FieldDefinitions) error {
	seen := make(map[string]struct{}, len(defs))
	for i, def := range defs {
		id := strings.TrimSpace(def.ID)
		switch {
		case id == "":
			return fmt.Errorf("%w: field #%d", ErrEmptyFieldID, i)
		case strings.HasPrefix(id, reservedFieldPrefix):
			return fmt.Errorf("%w: %q", ErrReservedFieldID, def.ID)
		case strings.TrimSpace(def.Name) == "":
			return fmt.Errorf("%w: field %q", ErrEmptyFieldName, def.ID)
		case !def.Type.Valid():
			return fmt.Errorf("%w: field %q has type %q", ErrInvalidFieldType, def.ID, def.Type)
		}

		if _, dup := seen[def.ID]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateFieldID, def.ID)
		}
		seen[def.ID] = struct{}{}
	}
	return nil
}

// validateEntry checks the entry against the campaign schema.
//
// Default validated fields: ID, CampaignID, Values, Required, Location.
func (v *FieldDataValidator) validateEntry(ctx context.Context, campaign models.Campaign, entry models.Entry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldCampaignID, FieldValues, FieldRequired, FieldLocation}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(entry.ID) == "" {
				return ErrEmptyID
			}
		case FieldCampaignID:
			if entry.CampaignID != campaign.ID {
				return ErrCampaignMismatch
			}
		case FieldValues:
			if err := validateValues(campaign, entry.Data); err != nil {
				return err
			}
		case FieldRequired:
			for _, def := range campaign.Fields {
				if def.Required && models.IsEmptyValue(entry.Data[def.ID]) {
					return fmt.Errorf("%w: %q", ErrRequiredFieldMissing, def.Name)
				}
			}
		case FieldLocation:
			if entry.Location != nil {
				if err := validateLocation(*entry.Location); err != nil {
					return fmt.Errorf("entry location: %w", err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateValues(campaign models.Campaign, data models.FieldValues) error {
	// sorted keys keep the reported error stable
	for _, key := range data.Keys() {
		value := data[key]
		def, ok := campaign.Field(key)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownValueKey, key)
		}
		if value == nil {
			continue
		}
		if value.Type() != def.Type {
			return fmt.Errorf("%w: %q expects %s, got %s", ErrValueTypeMismatch, def.Name, def.Type, value.Type())
		}

		switch val := value.(type) {
		case models.NumberValue:
			if math.IsNaN(float64(val)) || math.IsInf(float64(val), 0) {
				return fmt.Errorf("%w: %q", ErrInvalidNumber, def.Name)
			}
		case models.LocationValue:
			if err := validateLocation(models.Location(val)); err != nil {
				return fmt.Errorf("%q: %w", def.Name, err)
			}
		case models.PolygonValue:
			for i, point := range val {
				if err := validateLocation(point); err != nil {
					return fmt.Errorf("%q vertex %d: %w", def.Name, i, err)
				}
			}
		}
	}
	return nil
}

func validateLocation(loc models.Location) error {
	if math.IsNaN(loc.Latitude) || loc.Latitude < -90 || loc.Latitude > 90 {
		return fmt.Errorf("%w: latitude %v", ErrInvalidCoordinates, loc.Latitude)
	}
	if math.IsNaN(loc.Longitude) || loc.Longitude < -180 || loc.Longitude > 180 {
		return fmt.Errorf("%w: longitude %v", ErrInvalidCoordinates, loc.Longitude)
	}
	if loc.Accuracy != nil && (math.IsNaN(*loc.Accuracy) || math.IsInf(*loc.Accuracy, 0) || *loc.Accuracy < 0) {
		return ErrInvalidAccuracy
	}
	return nil
}
