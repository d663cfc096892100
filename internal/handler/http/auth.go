// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-field-keeper/internal/logger"
	"github.com/MKhiriev/go-field-keeper/internal/utils"
	"github.com/MKhiriev/go-field-keeper/models"
)

// issueToken exchanges client credentials for a bearer token.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, ErrInvalidJSON)
		return
	}

	token, err := h.services.AuthService.IssueToken(ctx, req)
	if err != nil {
		log.Err(err).Str("client_id", req.ClientID).Msg("token was not issued")
		writeError(w, err)
		return
	}

	resp := models.TokenResponse{AccessToken: token.SignedString}
	if token.ExpiresAt != nil {
		resp.ExpiresAt = token.ExpiresAt.Time
	}

	log.Debug().Str("client_id", req.ClientID).Time("expires_at", resp.ExpiresAt).Msg("token issued")

	utils.WriteJSON(w, resp, http.StatusOK)
}
