// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-field-keeper/internal/service"
	"github.com/MKhiriev/go-field-keeper/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func postToken(th *testHandler, body string) *httptest.ResponseRecorder {
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/api/auth/token", strings.NewReader(body)))
	rr := httptest.NewRecorder()
	th.issueToken(rr, req)
	return rr
}

func TestIssueToken_Success(t *testing.T) {
	th := newTestHandler(t)
	expiresAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	th.authSvc.EXPECT().
		IssueToken(gomock.Any(), models.TokenRequest{ClientID: "field-1", ClientSecret: "s3cret"}).
		Return(models.Token{
			RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(expiresAt)},
			SignedString:     "signed.jwt.token",
		}, nil)

	rr := postToken(th, `{"client_id":"field-1","client_secret":"s3cret"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp models.TokenResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "signed.jwt.token", resp.AccessToken)
	assert.True(t, expiresAt.Equal(resp.ExpiresAt))
}

func TestIssueToken_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{name: "invalid json", body: `{"client_id":`, wantStatus: http.StatusBadRequest},
		{name: "missing fields", body: `{}`, serviceErr: service.ErrInvalidDataProvided, wantStatus: http.StatusBadRequest},
		{name: "wrong secret", body: `{"client_id":"a","client_secret":"b"}`, serviceErr: service.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized},
		{name: "server failure", body: `{"client_id":"a","client_secret":"b"}`, serviceErr: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newTestHandler(t)
			if tt.serviceErr != nil {
				th.authSvc.EXPECT().IssueToken(gomock.Any(), gomock.Any()).Return(models.Token{}, tt.serviceErr)
			}

			rr := postToken(th, tt.body)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}
