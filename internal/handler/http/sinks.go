// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-field-keeper/internal/logger"
	"github.com/MKhiriev/go-field-keeper/internal/utils"
	"github.com/MKhiriev/go-field-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createSink(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	owner, _ := utils.GetClientIDFromContext(ctx)

	var req models.CreateSinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, ErrInvalidJSON)
		return
	}

	sink, err := h.services.SinkService.CreateSink(ctx, owner, req.Title)
	if err != nil {
		log.Err(err).Str("owner", owner).Msg("sink was not created")
		writeError(w, err)
		return
	}

	log.Info().Str("owner", owner).Str("sink_id", sink.ID).Msg("sink created")

	utils.WriteJSON(w, models.CreateSinkResponse{SinkID: sink.ID}, http.StatusCreated)
}

// readHeader answers 204 No Content while the sink has no header.
func (h *Handler) readHeader(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	owner, _ := utils.GetClientIDFromContext(ctx)
	sinkID := chi.URLParam(r, "sinkID")

	cells, found, err := h.services.SinkService.ReadHeader(ctx, owner, sinkID)
	if err != nil {
		log.Err(err).Str("sink_id", sinkID).Msg("header was not read")
		writeError(w, err)
		return
	}
	if !found {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	utils.WriteJSON(w, models.HeaderRowResponse{Cells: cells}, http.StatusOK)
}

// writeHeader answers 409 Conflict when the sink already has a header.
func (h *Handler) writeHeader(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	owner, _ := utils.GetClientIDFromContext(ctx)
	sinkID := chi.URLParam(r, "sinkID")

	var req models.HeaderRowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, ErrInvalidJSON)
		return
	}

	if err := h.services.SinkService.WriteHeader(ctx, owner, sinkID, req.Cells); err != nil {
		log.Err(err).Str("sink_id", sinkID).Msg("header was not written")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) appendRows(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	owner, _ := utils.GetClientIDFromContext(ctx)
	sinkID := chi.URLParam(r, "sinkID")

	var req models.AppendRowsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, ErrInvalidJSON)
		return
	}
	if req.Length != len(req.Rows) {
		log.Error().Int("length", req.Length).Int("rows", len(req.Rows)).Msg(ErrRowCountMismatch.Error())
		writeError(w, ErrRowCountMismatch)
		return
	}

	appended, err := h.services.SinkService.AppendRows(ctx, owner, sinkID, req.Rows)
	if err != nil {
		log.Err(err).Str("sink_id", sinkID).Int("rows", len(req.Rows)).Msg("rows were not appended")
		writeError(w, err)
		return
	}

	log.Debug().Str("sink_id", sinkID).Int("appended", appended).Msg("rows appended")

	utils.WriteJSON(w, models.AppendRowsResponse{Appended: appended}, http.StatusOK)
}
