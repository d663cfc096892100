// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-field-keeper/internal/service"
	"github.com/MKhiriev/go-field-keeper/internal/utils"
	"github.com/MKhiriev/go-field-keeper/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func executeAuth(th *testHandler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/test", nil))
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	th.auth(next).ServeHTTP(rr, req)
	return rr
}

func tokenFor(clientID string) models.Token {
	return models.Token{
		RegisteredClaims: jwt.RegisteredClaims{Subject: clientID},
		ClientID:         clientID,
	}
}

func TestAuth_StoresClientID(t *testing.T) {
	th := newTestHandler(t)
	th.authSvc.EXPECT().ParseToken(gomock.Any(), "good-token").Return(tokenFor("field-1"), nil)

	var gotClientID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClientID, _ = utils.GetClientIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rr := executeAuth(th, "Bearer good-token", next)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "field-1", gotClientID)
}

func TestAuth_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		setup    func(th *testHandler)
		wantBody string
	}{
		{name: "no header", header: "", setup: func(*testHandler) {}, wantBody: ErrEmptyAuthorizationHeader.Error()},
		{name: "no token", header: "Bearer", setup: func(*testHandler) {}, wantBody: ErrInvalidAuthorizationHeader.Error()},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", setup: func(*testHandler) {}, wantBody: ErrInvalidAuthorizationHeader.Error()},
		{
			name:   "expired token",
			header: "Bearer stale",
			setup: func(th *testHandler) {
				th.authSvc.EXPECT().ParseToken(gomock.Any(), "stale").Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)
			},
			wantBody: http.StatusText(http.StatusUnauthorized),
		},
		{
			name:   "token without subject",
			header: "Bearer anonymous",
			setup: func(th *testHandler) {
				th.authSvc.EXPECT().ParseToken(gomock.Any(), "anonymous").Return(models.Token{}, nil)
			},
			wantBody: http.StatusText(http.StatusUnauthorized),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newTestHandler(t)
			tt.setup(th)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
			})

			rr := executeAuth(th, tt.header, next)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.wantBody)
			assert.False(t, nextCalled, "next must not run for a rejected request")
		})
	}
}
