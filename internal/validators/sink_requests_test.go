// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-field-keeper/models"
	"github.com/stretchr/testify/assert"
)

func TestSinkRequestValidator(t *testing.T) {
	tests := []struct {
		name    string
		obj     any
		fields  []string
		wantErr error
	}{
		{name: "token ok", obj: models.TokenRequest{ClientID: "a", ClientSecret: "b"}},
		{name: "token pointer ok", obj: &models.TokenRequest{ClientID: "a", ClientSecret: "b"}},
		{name: "token without id", obj: models.TokenRequest{ClientSecret: "b"}, wantErr: ErrEmptyClientID},
		{name: "token without secret", obj: models.TokenRequest{ClientID: "a"}, wantErr: ErrEmptyClientSecret},

		{name: "create ok", obj: models.CreateSinkRequest{Title: "Trees"}},
		{name: "create blank title", obj: &models.CreateSinkRequest{Title: "  "}, wantErr: ErrEmptyTitle},

		{name: "header ok", obj: models.HeaderRowRequest{Cells: []string{"ID"}}},
		{name: "header empty", obj: &models.HeaderRowRequest{}, wantErr: ErrEmptyCells},

		{name: "append ok", obj: models.AppendRowsRequest{Rows: [][]string{{"a"}}, Length: 1}},
		{name: "append empty", obj: models.AppendRowsRequest{}, wantErr: ErrEmptyRows},
		{name: "append length mismatch", obj: &models.AppendRowsRequest{Rows: [][]string{{"a"}}, Length: 2}, wantErr: ErrLengthMismatch},
		{name: "append empty row", obj: models.AppendRowsRequest{Rows: [][]string{{}}, Length: 1}, wantErr: ErrEmptyCells},

		{name: "scoped fields unsupported", obj: models.CreateSinkRequest{Title: "x"}, fields: []string{"title"}, wantErr: ErrUnknownField},
		{name: "unsupported type", obj: 42, wantErr: ErrUnsupportedType},
	}

	v := NewSinkRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.obj, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
