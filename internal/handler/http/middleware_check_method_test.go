// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/api/version", func(w http.ResponseWriter, r *http.Request) {})
	router.Route("/api/sinks/{sinkID}", func(r chi.Router) {
		r.Get("/header", func(w http.ResponseWriter, r *http.Request) {})
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{name: "registered route", method: http.MethodGet, path: "/api/version", want: http.StatusOK},
		{name: "wrong method", method: http.MethodDelete, path: "/api/version", want: http.StatusNotFound},
		{name: "parameterised route", method: http.MethodGet, path: "/api/sinks/s1/header", want: http.StatusOK},
		{name: "wrong method on parameterised route", method: http.MethodPatch, path: "/api/sinks/s1/header", want: http.StatusNotFound},
		{name: "unknown path", method: http.MethodGet, path: "/api/nothing", want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.want, rr.Code)
		})
	}
}
