// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FieldType defines the semantic type of a campaign field.
// The value determines which [Value] variant an entry may hold for the field
// and how the value is rendered into a sink cell.
type FieldType string

const (
	// FieldText is free-form text.
	FieldText FieldType = "text"

	// FieldNumber is a numeric scalar. Capture may deliver it as a string;
	// it is coerced to float64 when the entry is built.
	FieldNumber FieldType = "number"

	// FieldDateTime is a local ISO-like date-time string, kept verbatim.
	FieldDateTime FieldType = "datetime"

	// FieldLocation is a single geographic point.
	FieldLocation FieldType = "location"

	// FieldPolygon is an ordered sequence of points (zero or more vertices).
	FieldPolygon FieldType = "polygon"

	// FieldImage is an embedded binary-as-text payload (e.g. a data URL).
	FieldImage FieldType = "image"

	// FieldBoolean is a yes/no value.
	FieldBoolean FieldType = "boolean"
)

// allowedFieldTypes is the exhaustive set of FieldType values.
var allowedFieldTypes = []FieldType{
	FieldText,
	FieldNumber,
	FieldDateTime,
	FieldLocation,
	FieldPolygon,
	FieldImage,
	FieldBoolean,
}

// Valid reports whether t is one of the supported field types.
func (t FieldType) Valid() bool {
	for _, allowed := range allowedFieldTypes {
		if t == allowed {
			return true
		}
	}
	return false
}

// FieldDefinition describes a single column of a campaign schema.
//
// ID is immutable once created: it is the key into every entry's data map.
// Name is the display name used as the sink header text.
type FieldDefinition struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Type     FieldType `json:"type"`
	Required bool      `json:"required"`
}
