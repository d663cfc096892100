// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-field-keeper/internal/service"
	"github.com/MKhiriev/go-field-keeper/internal/store"
	"github.com/MKhiriev/go-field-keeper/internal/utils"
	"github.com/MKhiriev/go-field-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// serveAs runs handler for an authenticated client with sinkID as URL param.
func serveAs(handler http.HandlerFunc, clientID, method, sinkID, body string) *httptest.ResponseRecorder {
	req := injectNopLogger(httptest.NewRequest(method, "/", strings.NewReader(body)))

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("sinkID", sinkID)
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = context.WithValue(ctx, utils.ClientIDCtxKey, clientID)

	rr := httptest.NewRecorder()
	handler(rr, req.WithContext(ctx))
	return rr
}

func TestCreateSink(t *testing.T) {
	th := newTestHandler(t)
	th.sinkSvc.EXPECT().CreateSink(gomock.Any(), "field-1", "Trees").
		Return(models.Sink{ID: "s1", Owner: "field-1", Title: "Trees", CreatedAt: time.Now()}, nil)

	rr := serveAs(th.createSink, "field-1", http.MethodPost, "", `{"title":"Trees"}`)

	require.Equal(t, http.StatusCreated, rr.Code)
	var resp models.CreateSinkResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "s1", resp.SinkID)
}

func TestCreateSink_Errors(t *testing.T) {
	th := newTestHandler(t)

	rr := serveAs(th.createSink, "field-1", http.MethodPost, "", `not json`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	th.sinkSvc.EXPECT().CreateSink(gomock.Any(), "field-1", "").
		Return(models.Sink{}, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, models.ErrValidation))
	rr = serveAs(th.createSink, "field-1", http.MethodPost, "", `{"title":""}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestReadHeader(t *testing.T) {
	tests := []struct {
		name       string
		cells      []string
		found      bool
		err        error
		wantStatus int
		wantCells  []string
	}{
		{name: "present", cells: []string{"ID", "Created At"}, found: true, wantStatus: http.StatusOK, wantCells: []string{"ID", "Created At"}},
		{name: "absent", wantStatus: http.StatusNoContent},
		{name: "foreign sink", err: store.ErrSinkNotFound, wantStatus: http.StatusNotFound},
		{name: "storage down", err: service.ErrStorageUnavailable, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newTestHandler(t)
			th.sinkSvc.EXPECT().ReadHeader(gomock.Any(), "field-1", "s1").Return(tt.cells, tt.found, tt.err)

			rr := serveAs(th.readHeader, "field-1", http.MethodGet, "s1", "")

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantCells != nil {
				var resp models.HeaderRowResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantCells, resp.Cells)
			}
			if tt.wantStatus == http.StatusNoContent {
				assert.Empty(t, rr.Body.String())
			}
		})
	}
}

func TestWriteHeader(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "written", wantStatus: http.StatusNoContent},
		{name: "already present", err: store.ErrHeaderAlreadyExists, wantStatus: http.StatusConflict},
		{name: "foreign sink", err: store.ErrSinkNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newTestHandler(t)
			th.sinkSvc.EXPECT().WriteHeader(gomock.Any(), "field-1", "s1", []string{"ID", "Note"}).Return(tt.err)

			rr := serveAs(th.writeHeader, "field-1", http.MethodPut, "s1", `{"cells":["ID","Note"]}`)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestAppendRows(t *testing.T) {
	th := newTestHandler(t)
	rows := [][]string{{"e1", "hello"}, {"e2", "world"}}
	th.sinkSvc.EXPECT().AppendRows(gomock.Any(), "field-1", "s1", rows).Return(2, nil)

	rr := serveAs(th.appendRows, "field-1", http.MethodPost, "s1",
		`{"rows":[["e1","hello"],["e2","world"]],"length":2}`)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp models.AppendRowsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Appended)
}

func TestAppendRows_LengthMismatch(t *testing.T) {
	th := newTestHandler(t)

	// AppendRows is not expected: a truncated body never reaches the store
	rr := serveAs(th.appendRows, "field-1", http.MethodPost, "s1", `{"rows":[["e1"]],"length":2}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), ErrRowCountMismatch.Error())
}
