// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-field-keeper/internal/logger"
	"github.com/MKhiriev/go-field-keeper/internal/mock"
	"github.com/MKhiriev/go-field-keeper/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// testHandler bundles a Handler with the mocks behind its services.
type testHandler struct {
	*Handler
	authSvc    *mock.MockAuthService
	sinkSvc    *mock.MockSinkService
	appInfoSvc *mock.MockAppInfoService
}

func newTestHandler(t *testing.T) *testHandler {
	t.Helper()
	ctrl := gomock.NewController(t)

	th := &testHandler{
		authSvc:    mock.NewMockAuthService(ctrl),
		sinkSvc:    mock.NewMockSinkService(ctrl),
		appInfoSvc: mock.NewMockAppInfoService(ctrl),
	}
	th.Handler = NewHandler(&service.Services{
		AuthService:    th.authSvc,
		SinkService:    th.sinkSvc,
		AppInfoService: th.appInfoSvc,
	}, logger.Nop())

	return th
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
}

func TestGetServerVersion(t *testing.T) {
	th := newTestHandler(t)
	th.appInfoSvc.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rec := httptest.NewRecorder()
	th.getServerVersion(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.2.3", rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
}
