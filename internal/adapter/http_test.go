// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-field-keeper/internal/config"
	"github.com/MKhiriev/go-field-keeper/internal/logger"
	"github.com/MKhiriev/go-field-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) *httpSinkAdapter {
	t.Helper()
	a, err := NewHTTPSinkAdapter(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpSinkAdapter)
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "http://localhost:8080/", want: "http://localhost:8080"},
		{in: "localhost:8080", want: "http://localhost:8080"},
		{in: "  https://sinks.example.com  ", want: "https://sinks.example.com"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPSinkAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPSinkAdapter(config.ClientAdapter{}, logger.Nop())
	assert.Error(t, err)
}

// ── CreateSink ──────────────────────────────────────────────────────────────

func TestCreateSink_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/sinks", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		var req models.CreateSinkRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Trees", req.Title)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.CreateSinkResponse{SinkID: "sink-1"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetCredential(models.Credential{Token: " tok "})

	id, err := a.CreateSink(context.Background(), "Trees")
	require.NoError(t, err)
	assert.Equal(t, "sink-1", id)
}

func TestCreateSink_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("missing token"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).CreateSink(context.Background(), "Trees")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.ErrorIs(t, err, models.ErrSink)
}

func TestCreateSink_EmptyID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.CreateSinkResponse{})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).CreateSink(context.Background(), "Trees")
	assert.ErrorIs(t, err, models.ErrSink)
}

func TestCreateSink_ServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).CreateSink(context.Background(), "Trees")
	assert.ErrorIs(t, err, models.ErrSink)
}

// ── ReadHeaderRow ───────────────────────────────────────────────────────────

func TestReadHeaderRow(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    any
		want    []string
		wantErr error
	}{
		{name: "absent", status: http.StatusNoContent, want: nil},
		{name: "present", status: http.StatusOK, body: models.HeaderRowResponse{Cells: []string{"ID", "Created At"}}, want: []string{"ID", "Created At"}},
		{name: "empty cells", status: http.StatusOK, body: models.HeaderRowResponse{}, want: nil},
		{name: "unknown sink", status: http.StatusNotFound, wantErr: ErrNotFound},
		{name: "server error", status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/api/sinks/sink-1/header", r.URL.Path)
				w.WriteHeader(tt.status)
				if tt.body != nil {
					_ = json.NewEncoder(w).Encode(tt.body)
				}
			}))
			defer srv.Close()

			got, err := newTestAdapter(t, srv.URL).ReadHeaderRow(context.Background(), "sink-1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, models.ErrSink)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── WriteHeaderRow ──────────────────────────────────────────────────────────

func TestWriteHeaderRow_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/sinks/sink-1/header", r.URL.Path)

		var req models.HeaderRowRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"ID", "Name"}, req.Cells)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).WriteHeaderRow(context.Background(), "sink-1", []string{"ID", "Name"})
	assert.NoError(t, err)
}

func TestWriteHeaderRow_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("sink header already exists"))
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).WriteHeaderRow(context.Background(), "sink-1", []string{"ID"})
	assert.ErrorIs(t, err, ErrConflict)
	assert.ErrorIs(t, err, models.ErrSink)
}

// ── AppendRows ──────────────────────────────────────────────────────────────

func TestAppendRows_Success(t *testing.T) {
	rows := [][]string{{"e1", "a"}, {"e2", "b"}}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/sinks/sink-1/rows", r.URL.Path)

		var req models.AppendRowsRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, rows, req.Rows)
		assert.Equal(t, 2, req.Length)

		_ = json.NewEncoder(w).Encode(models.AppendRowsResponse{Appended: len(req.Rows)})
	}))
	defer srv.Close()

	assert.NoError(t, newTestAdapter(t, srv.URL).AppendRows(context.Background(), "sink-1", rows))
}

func TestAppendRows_PartialAppendIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.AppendRowsResponse{Appended: 1})
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).AppendRows(context.Background(), "sink-1", [][]string{{"a"}, {"b"}})
	assert.ErrorIs(t, err, models.ErrSink)
}

func TestAppendRows_ServiceUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).AppendRows(context.Background(), "sink-1", [][]string{{"a"}})
	assert.ErrorIs(t, err, ErrServiceUnavailable)
}
