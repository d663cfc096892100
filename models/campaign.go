// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Campaign is a user-defined data-collection schema plus its remote sink
// binding. It owns its entries: deleting a campaign deletes every entry whose
// CampaignID equals the campaign ID.
type Campaign struct {
	// ID is the globally unique opaque identifier of the campaign.
	ID string `json:"id"`

	// Name is the human-readable title. It is also used as the title of the
	// sink created on first sync.
	Name string `json:"name"`

	// Description is optional free-form text.
	Description string `json:"description"`

	// Fields is the ordered field list. The order fixes the column order of
	// serialized rows.
	Fields FieldDefinitions `json:"fields"`

	// SpreadsheetID identifies the remote sink. It is nil until the first
	// successful sink creation and is never reassigned afterwards.
	SpreadsheetID *string `json:"spreadsheet_id,omitempty"`

	// CreatedAt is the creation time of the campaign.
	CreatedAt time.Time `json:"created_at"`
}

// HasSink reports whether a sink has already been bound to the campaign.
func (c Campaign) HasSink() bool {
	return c.SpreadsheetID != nil && *c.SpreadsheetID != ""
}

// Field returns the definition of the field with the given id.
func (c Campaign) Field(id string) (FieldDefinition, bool) {
	for _, f := range c.Fields {
		if f.ID == id {
			return f, true
		}
	}
	return FieldDefinition{}, false
}

// FieldDefinitions is the ordered field list of a campaign. It is persisted
// as a single JSON column.
type FieldDefinitions []FieldDefinition

// Value implements [driver.Valuer].
func (f FieldDefinitions) Value() (driver.Value, error) {
	if f == nil {
		return "[]", nil
	}
	payload, err := json.Marshal([]FieldDefinition(f))
	if err != nil {
		return nil, fmt.Errorf("encode field definitions: %w", err)
	}
	return string(payload), nil
}

// Scan implements [sql.Scanner].
func (f *FieldDefinitions) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*f = FieldDefinitions{}
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return errors.New("unsupported field definitions column type")
	}

	var defs []FieldDefinition
	if err := json.Unmarshal(raw, &defs); err != nil {
		return fmt.Errorf("decode field definitions: %w", err)
	}
	*f = defs
	return nil
}
