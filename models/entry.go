// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"
)

// Entry is one captured record belonging to a [Campaign].
//
// ID and CampaignID are immutable after creation; edits replace Data,
// Location and UpdatedAt only. Synced is the per-entry watermark: once true it
// is never reset to false.
type Entry struct {
	// ID is the globally unique opaque identifier of the entry.
	ID string `json:"id"`

	// CampaignID references the owning campaign.
	CampaignID string `json:"campaign_id"`

	// Data holds one typed value per defined field, keyed by FieldDefinition.ID.
	Data FieldValues `json:"data"`

	// Location is the optional entry-level position used for map placement
	// and the leading location columns of the serialized row.
	Location *Location `json:"location,omitempty"`

	// Synced reports whether the entry has been durably appended to the sink.
	Synced bool `json:"synced"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FieldValues maps field ids to typed values.
type FieldValues map[string]Value

// Keys returns the field ids in lexical order.
func (f FieldValues) Keys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// taggedValue is the persisted form of a single [Value].
type taggedValue struct {
	Type  FieldType       `json:"type"`
	Value json.RawMessage `json:"value"`
}

// MarshalJSON encodes every value together with its type tag:
//
//	{"f1":{"type":"text","value":"hello"}}
func (f FieldValues) MarshalJSON() ([]byte, error) {
	out := make(map[string]taggedValue, len(f))
	for key, v := range f {
		if v == nil {
			continue
		}
		raw, err := marshalValue(v)
		if err != nil {
			return nil, fmt.Errorf("encode value of %q: %w", key, err)
		}
		out[key] = taggedValue{Type: v.Type(), Value: raw}
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the tagged form produced by MarshalJSON.
func (f *FieldValues) UnmarshalJSON(b []byte) error {
	var in map[string]taggedValue
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}

	values := make(FieldValues, len(in))
	for key, tagged := range in {
		v, err := unmarshalValue(tagged)
		if err != nil {
			return fmt.Errorf("decode value of %q: %w", key, err)
		}
		values[key] = v
	}
	*f = values
	return nil
}

// Value implements [driver.Valuer].
func (f FieldValues) Value() (driver.Value, error) {
	payload, err := f.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(payload), nil
}

// Scan implements [sql.Scanner].
func (f *FieldValues) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*f = FieldValues{}
		return nil
	case string:
		return f.UnmarshalJSON([]byte(v))
	case []byte:
		return f.UnmarshalJSON(v)
	}
	return errors.New("unsupported field values column type")
}

func marshalValue(v Value) (json.RawMessage, error) {
	switch val := v.(type) {
	case TextValue:
		return json.Marshal(string(val))
	case NumberValue:
		return json.Marshal(float64(val))
	case DateTimeValue:
		return json.Marshal(string(val))
	case LocationValue:
		return json.Marshal(Location(val))
	case PolygonValue:
		return json.Marshal([]Location(val))
	case ImageValue:
		return json.Marshal(string(val))
	case BooleanValue:
		return json.Marshal(bool(val))
	}
	return nil, fmt.Errorf("%w: %T", ErrUnknownFieldType, v)
}

func unmarshalValue(tagged taggedValue) (Value, error) {
	switch tagged.Type {
	case FieldText, FieldDateTime, FieldImage:
		var s string
		if err := json.Unmarshal(tagged.Value, &s); err != nil {
			return nil, err
		}
		switch tagged.Type {
		case FieldDateTime:
			return DateTimeValue(s), nil
		case FieldImage:
			return ImageValue(s), nil
		}
		return TextValue(s), nil

	case FieldNumber:
		var n float64
		if err := json.Unmarshal(tagged.Value, &n); err != nil {
			return nil, err
		}
		return NumberValue(n), nil

	case FieldBoolean:
		var b bool
		if err := json.Unmarshal(tagged.Value, &b); err != nil {
			return nil, err
		}
		return BooleanValue(b), nil

	case FieldLocation:
		var loc Location
		if err := json.Unmarshal(tagged.Value, &loc); err != nil {
			return nil, err
		}
		return LocationValue(loc), nil

	case FieldPolygon:
		var points []Location
		if err := json.Unmarshal(tagged.Value, &points); err != nil {
			return nil, err
		}
		return PolygonValue(points), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFieldType, tagged.Type)
}
