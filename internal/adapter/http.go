// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-field-keeper/internal/config"
	"github.com/MKhiriev/go-field-keeper/internal/logger"
	"github.com/MKhiriev/go-field-keeper/internal/utils"
	"github.com/MKhiriev/go-field-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpSinkAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPSinkAdapter constructs an HTTP/REST implementation of
// [SinkAdapter] talking to the sink server. It normalises and validates the
// base URL from adapterCfg.HTTPAddress and configures the underlying HTTP
// client with the resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPSinkAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (SinkAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(
		utils.WithBaseURL(baseURL),
		utils.WithTimeout(adapterCfg.RequestTimeout),
	)

	return &httpSinkAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetCredential implements [SinkAdapter]. The bearer token is attached to
// every following request.
func (h *httpSinkAdapter) SetCredential(cred models.Credential) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(cred.Token)
}

func (h *httpSinkAdapter) bearer() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// CreateSink implements [SinkAdapter] with POST /api/sinks.
func (h *httpSinkAdapter) CreateSink(ctx context.Context, title string) (string, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.CreateSinkRequest{Title: title}).
		Post("/api/sinks")
	if err != nil {
		return "", sinkError("create sink request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", sinkError("create sink", err)
	}

	var created models.CreateSinkResponse
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return "", sinkError("decode create sink response", err)
	}
	if created.SinkID == "" {
		return "", sinkError("create sink", fmt.Errorf("server returned an empty sink id"))
	}

	return created.SinkID, nil
}

// ReadHeaderRow implements [SinkAdapter] with GET /api/sinks/{id}/header.
// The server answers 204 No Content while no header has been written.
func (h *httpSinkAdapter) ReadHeaderRow(ctx context.Context, sinkID string) ([]string, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("sinkID", sinkID).
		Get("/api/sinks/{sinkID}/header")
	if err != nil {
		return nil, sinkError("read header request", err)
	}
	if resp.StatusCode() == http.StatusNoContent {
		return nil, nil
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, sinkError("read header", err)
	}

	var header models.HeaderRowResponse
	if err = json.Unmarshal(resp.Body(), &header); err != nil {
		return nil, sinkError("decode header response", err)
	}
	if len(header.Cells) == 0 {
		return nil, nil
	}

	return header.Cells, nil
}

// WriteHeaderRow implements [SinkAdapter] with PUT /api/sinks/{id}/header.
// A sink that already has a header answers 409 ([ErrConflict]).
func (h *httpSinkAdapter) WriteHeaderRow(ctx context.Context, sinkID string, row []string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("sinkID", sinkID).
		SetHeader("Content-Type", "application/json").
		SetBody(models.HeaderRowRequest{Cells: row}).
		Put("/api/sinks/{sinkID}/header")
	if err != nil {
		return sinkError("write header request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return sinkError("write header", err)
	}

	return nil
}

// AppendRows implements [SinkAdapter] with POST /api/sinks/{id}/rows. The
// request carries the row count and the server must confirm every row.
func (h *httpSinkAdapter) AppendRows(ctx context.Context, sinkID string, rows [][]string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("sinkID", sinkID).
		SetHeader("Content-Type", "application/json").
		SetBody(models.AppendRowsRequest{Rows: rows, Length: len(rows)}).
		Post("/api/sinks/{sinkID}/rows")
	if err != nil {
		return sinkError("append rows request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return sinkError("append rows", err)
	}

	var appended models.AppendRowsResponse
	if err = json.Unmarshal(resp.Body(), &appended); err != nil {
		return sinkError("decode append response", err)
	}
	if appended.Appended != len(rows) {
		return sinkError("append rows", fmt.Errorf("server stored %d of %d rows", appended.Appended, len(rows)))
	}

	h.logger.Debug().
		Str("func", "httpSinkAdapter.AppendRows").
		Str("sink_id", sinkID).
		Int("rows", len(rows)).
		Msg("rows appended")

	return nil
}

func (h *httpSinkAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.bearer(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
