// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
)

// Value is a typed field value. The concrete variant always matches the
// declared [FieldType] of the field it is stored under; the set of variants
// is closed.
type Value interface {
	// Type returns the field type the variant belongs to.
	Type() FieldType

	// String returns the plain string representation used for sink cells.
	String() string

	isValue()
}

type (
	// TextValue holds a text field value.
	TextValue string

	// NumberValue holds a number field value.
	NumberValue float64

	// DateTimeValue holds a datetime field value, kept exactly as captured.
	DateTimeValue string

	// LocationValue holds a location field value.
	LocationValue Location

	// PolygonValue holds the ordered vertices of a polygon field value.
	PolygonValue []Location

	// ImageValue holds an embedded binary-as-text payload.
	ImageValue string

	// BooleanValue holds a boolean field value.
	BooleanValue bool
)

func (TextValue) Type() FieldType     { return FieldText }
func (NumberValue) Type() FieldType   { return FieldNumber }
func (DateTimeValue) Type() FieldType { return FieldDateTime }
func (LocationValue) Type() FieldType { return FieldLocation }
func (PolygonValue) Type() FieldType  { return FieldPolygon }
func (ImageValue) Type() FieldType    { return FieldImage }
func (BooleanValue) Type() FieldType  { return FieldBoolean }

func (TextValue) isValue()     {}
func (NumberValue) isValue()   {}
func (DateTimeValue) isValue() {}
func (LocationValue) isValue() {}
func (PolygonValue) isValue()  {}
func (ImageValue) isValue()    {}
func (BooleanValue) isValue()  {}

func (v TextValue) String() string     { return string(v) }
func (v DateTimeValue) String() string { return string(v) }
func (v ImageValue) String() string    { return string(v) }

func (v NumberValue) String() string {
	return strconv.FormatFloat(float64(v), 'f', -1, 64)
}

func (v BooleanValue) String() string {
	return strconv.FormatBool(bool(v))
}

// String renders the point as "latitude,longitude".
func (v LocationValue) String() string {
	return formatFloat(v.Latitude) + "," + formatFloat(v.Longitude)
}

// Ring returns the vertices as an orb ring in (lng, lat) order. Rings with at
// least three vertices are closed.
func (v PolygonValue) Ring() orb.Ring {
	ring := make(orb.Ring, 0, len(v)+1)
	for _, p := range v {
		ring = append(ring, p.Point())
	}
	if len(ring) >= 3 && !ring.Closed() {
		ring = append(ring, ring[0])
	}
	return ring
}

// String renders the polygon as WKT.
func (v PolygonValue) String() string {
	if len(v) == 0 {
		return wkt.MarshalString(orb.Polygon{})
	}
	return wkt.MarshalString(orb.Polygon{v.Ring()})
}

// ParseNumber coerces a captured numeric input into a [NumberValue].
// Strings are trimmed and parsed as decimal floats.
func ParseNumber(raw any) (NumberValue, error) {
	switch v := raw.(type) {
	case float64:
		return NumberValue(v), nil
	case float32:
		return NumberValue(v), nil
	case int:
		return NumberValue(v), nil
	case int64:
		return NumberValue(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidValue, v.String())
		}
		return NumberValue(f), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidValue, v)
		}
		return NumberValue(f), nil
	default:
		return 0, fmt.Errorf("%w: unsupported number input %T", ErrInvalidValue, raw)
	}
}

// NewValue builds the variant for fieldType from a loosely typed capture
// input. A nil input yields a nil Value, meaning the field is absent.
func NewValue(fieldType FieldType, raw any) (Value, error) {
	if raw == nil {
		return nil, nil
	}
	if v, ok := raw.(Value); ok {
		if v.Type() != fieldType {
			return nil, fmt.Errorf("%w: %s value for %s field", ErrInvalidValue, v.Type(), fieldType)
		}
		return v, nil
	}

	switch fieldType {
	case FieldText:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("%w: text expects a string, got %T", ErrInvalidValue, raw)
		}
		return TextValue(s), nil

	case FieldNumber:
		return ParseNumber(raw)

	case FieldDateTime:
		switch v := raw.(type) {
		case string:
			return DateTimeValue(v), nil
		case time.Time:
			return DateTimeValue(v.Format(localDateTimeLayout)), nil
		}
		return nil, fmt.Errorf("%w: datetime expects a string, got %T", ErrInvalidValue, raw)

	case FieldLocation:
		loc, err := toLocation(raw)
		if err != nil {
			return nil, err
		}
		return LocationValue(loc), nil

	case FieldPolygon:
		return toPolygon(raw)

	case FieldImage:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("%w: image expects a string payload, got %T", ErrInvalidValue, raw)
		}
		return ImageValue(s), nil

	case FieldBoolean:
		switch v := raw.(type) {
		case bool:
			return BooleanValue(v), nil
		case string:
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				return nil, fmt.Errorf("%w: %q is not a boolean", ErrInvalidValue, v)
			}
			return BooleanValue(b), nil
		}
		return nil, fmt.Errorf("%w: boolean expects a bool, got %T", ErrInvalidValue, raw)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFieldType, fieldType)
}

// IsEmptyValue reports whether v carries no user data: absent, blank text,
// blank payload or a polygon without vertices.
func IsEmptyValue(v Value) bool {
	switch val := v.(type) {
	case nil:
		return true
	case TextValue:
		return strings.TrimSpace(string(val)) == ""
	case DateTimeValue:
		return strings.TrimSpace(string(val)) == ""
	case ImageValue:
		return val == ""
	case PolygonValue:
		return len(val) == 0
	}
	return false
}

const localDateTimeLayout = "2006-01-02T15:04"

func toPolygon(raw any) (PolygonValue, error) {
	switch v := raw.(type) {
	case []Location:
		return PolygonValue(v), nil
	case []any:
		points := make(PolygonValue, 0, len(v))
		for i, item := range v {
			loc, err := toLocation(item)
			if err != nil {
				return nil, fmt.Errorf("polygon vertex %d: %w", i, err)
			}
			points = append(points, loc)
		}
		return points, nil
	}
	return nil, fmt.Errorf("%w: polygon expects a list of points, got %T", ErrInvalidValue, raw)
}

func toLocation(raw any) (Location, error) {
	switch v := raw.(type) {
	case Location:
		return v, nil
	case *Location:
		if v == nil {
			return Location{}, fmt.Errorf("%w: nil location", ErrInvalidValue)
		}
		return *v, nil
	case LocationValue:
		return Location(v), nil
	case map[string]any:
		payload, err := json.Marshal(v)
		if err != nil {
			return Location{}, fmt.Errorf("%w: %w", ErrInvalidValue, err)
		}
		var loc Location
		if err = json.Unmarshal(payload, &loc); err != nil {
			return Location{}, fmt.Errorf("%w: %w", ErrInvalidValue, err)
		}
		if _, ok := v["latitude"]; !ok {
			return Location{}, fmt.Errorf("%w: location without latitude", ErrInvalidValue)
		}
		if _, ok := v["longitude"]; !ok {
			return Location{}, fmt.Errorf("%w: location without longitude", ErrInvalidValue)
		}
		return loc, nil
	}
	return Location{}, fmt.Errorf("%w: location expects a point, got %T", ErrInvalidValue, raw)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
