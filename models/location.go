// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/paulmach/orb"
)

// Reserved capture keys that carry the entry-level location inside raw form
// data. They are split off into [Entry.Location] and never stored in
// [Entry.Data].
const (
	ReservedKeyLatitude  = "__loc_lat"
	ReservedKeyLongitude = "__loc_lng"
	ReservedKeyAccuracy  = "__loc_acc"
)

// Location is a geographic point as produced by the device geolocation API.
type Location struct {
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	Accuracy  *float64   `json:"accuracy,omitempty"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// Point returns the location as an orb point (longitude, latitude).
func (l Location) Point() orb.Point {
	return orb.Point{l.Longitude, l.Latitude}
}

// UnmarshalJSON accepts the timestamp either as RFC 3339 text or as
// milliseconds since the Unix epoch, the form emitted by browsers.
func (l *Location) UnmarshalJSON(b []byte) error {
	var aux struct {
		Latitude  float64         `json:"latitude"`
		Longitude float64         `json:"longitude"`
		Accuracy  *float64        `json:"accuracy"`
		Timestamp json.RawMessage `json:"timestamp"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	l.Latitude = aux.Latitude
	l.Longitude = aux.Longitude
	l.Accuracy = aux.Accuracy
	l.Timestamp = nil

	if len(aux.Timestamp) == 0 || string(aux.Timestamp) == "null" {
		return nil
	}

	var millis float64
	if err := json.Unmarshal(aux.Timestamp, &millis); err == nil {
		ts := time.UnixMilli(int64(millis)).UTC()
		l.Timestamp = &ts
		return nil
	}

	var ts time.Time
	if err := json.Unmarshal(aux.Timestamp, &ts); err != nil {
		return fmt.Errorf("decode location timestamp: %w", err)
	}
	l.Timestamp = &ts
	return nil
}

// SplitReservedLocation removes the reserved location keys from raw capture
// data and returns the remaining field inputs together with the entry-level
// location. The location is nil when neither latitude nor longitude is set.
// The input map is not modified.
func SplitReservedLocation(raw map[string]any) (map[string]any, *Location, error) {
	fields := make(map[string]any, len(raw))
	for k, v := range raw {
		fields[k] = v
	}

	lat, hasLat := fields[ReservedKeyLatitude]
	lng, hasLng := fields[ReservedKeyLongitude]
	acc, hasAcc := fields[ReservedKeyAccuracy]
	delete(fields, ReservedKeyLatitude)
	delete(fields, ReservedKeyLongitude)
	delete(fields, ReservedKeyAccuracy)

	if (!hasLat || lat == nil) && (!hasLng || lng == nil) {
		return fields, nil, nil
	}
	if !hasLat || lat == nil || !hasLng || lng == nil {
		return nil, nil, fmt.Errorf("%w: entry location needs both latitude and longitude", ErrInvalidValue)
	}

	latitude, err := ParseNumber(lat)
	if err != nil {
		return nil, nil, fmt.Errorf("entry latitude: %w", err)
	}
	longitude, err := ParseNumber(lng)
	if err != nil {
		return nil, nil, fmt.Errorf("entry longitude: %w", err)
	}

	loc := &Location{Latitude: float64(latitude), Longitude: float64(longitude)}
	if hasAcc && acc != nil {
		accuracy, err := ParseNumber(acc)
		if err != nil {
			return nil, nil, fmt.Errorf("entry accuracy: %w", err)
		}
		a := float64(accuracy)
		loc.Accuracy = &a
	}

	return fields, loc, nil
}
