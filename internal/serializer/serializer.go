// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package serializer flattens a campaign and its entries into string rows
// for a tabular sink.
//
// The column layout depends only on the campaign's field list: five leading
// columns (ID, Created At, Latitude, Longitude, Accuracy) followed by one
// column per field in campaign order. Every row therefore has exactly
// 5 + len(fields) cells, whatever the entry contains.
package serializer

import (
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-field-keeper/models"
)

const (
	// DefaultMaxCellLength is the largest cell, in characters, that common
	// spreadsheet sinks accept.
	DefaultMaxCellLength = 40000

	// DefaultOversizedPlaceholder replaces image payloads longer than the
	// maximum cell length.
	DefaultOversizedPlaceholder = "[image too large for sink cell]"

	// createdAtLayout is ISO-8601 in UTC with millisecond precision.
	createdAtLayout = "2006-01-02T15:04:05.000Z07:00"
)

// LeadingColumns are the fixed columns that precede the campaign fields.
var LeadingColumns = []string{"ID", "Created At", "Latitude", "Longitude", "Accuracy"}

// Serializer turns entries into rows. The zero value is not usable; build
// one with [New]. A Serializer is immutable and safe for concurrent use.
type Serializer struct {
	maxCellLength int
	placeholder   string
}

// Option configures a [Serializer].
type Option func(*Serializer)

// WithMaxCellLength sets the image size guard. Values below 1 are ignored.
func WithMaxCellLength(n int) Option {
	return func(s *Serializer) {
		if n > 0 {
			s.maxCellLength = n
		}
	}
}

// WithOversizedPlaceholder sets the text written instead of an oversized
// image payload.
func WithOversizedPlaceholder(placeholder string) Option {
	return func(s *Serializer) {
		s.placeholder = placeholder
	}
}

// New builds a Serializer with the given options applied over the defaults.
func New(opts ...Option) *Serializer {
	s := &Serializer{
		maxCellLength: DefaultMaxCellLength,
		placeholder:   DefaultOversizedPlaceholder,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MaxCellLength returns the configured image size guard.
func (s *Serializer) MaxCellLength() int {
	return s.maxCellLength
}

// Header returns the header row of the campaign: the leading columns and
// then the display name of every field.
func (s *Serializer) Header(campaign models.Campaign) []string {
	header := make([]string, 0, len(LeadingColumns)+len(campaign.Fields))
	header = append(header, LeadingColumns...)
	for _, field := range campaign.Fields {
		header = append(header, field.Name)
	}
	return header
}

// Row serializes a single entry against the campaign schema. Values stored
// under keys that are not campaign fields are ignored.
func (s *Serializer) Row(campaign models.Campaign, entry models.Entry) []string {
	row := make([]string, 0, len(LeadingColumns)+len(campaign.Fields))
	row = append(row,
		entry.ID,
		CreatedAtCell(entry.CreatedAt),
	)
	row = append(row, locationCells(entry.Location)...)

	for _, field := range campaign.Fields {
		row = append(row, s.cell(entry.Data[field.ID]))
	}
	return row
}

// Rows serializes entries in the given order.
func (s *Serializer) Rows(campaign models.Campaign, entries []models.Entry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, s.Row(campaign, entry))
	}
	return rows
}

// Serialize returns the header and the rows of entries.
func (s *Serializer) Serialize(campaign models.Campaign, entries []models.Entry) ([]string, [][]string) {
	return s.Header(campaign), s.Rows(campaign, entries)
}

func (s *Serializer) cell(value models.Value) string {
	if value == nil {
		return ""
	}

	if image, ok := value.(models.ImageValue); ok {
		if utf8.RuneCountInString(string(image)) > s.maxCellLength {
			return s.placeholder
		}
		return string(image)
	}

	return value.String()
}

func locationCells(loc *models.Location) []string {
	if loc == nil {
		return []string{"", "", ""}
	}

	accuracy := ""
	if loc.Accuracy != nil {
		accuracy = formatFloat(*loc.Accuracy)
	}

	return []string{formatFloat(loc.Latitude), formatFloat(loc.Longitude), accuracy}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// CreatedAtCell formats a timestamp the way [Serializer.Row] writes the
// Created At column.
func CreatedAtCell(t time.Time) string {
	return t.UTC().Format(createdAtLayout)
}
