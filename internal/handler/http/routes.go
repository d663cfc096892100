// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router of the sink API.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)
	router.Use(middleware.Compress(5, "application/json"))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
		r.Post("/api/auth/token", h.issueToken)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/sinks", h.createSink)
		r.Route("/api/sinks/{sinkID}", func(r chi.Router) {
			r.Get("/header", h.readHeader)
			r.Put("/header", h.writeHeader)
			r.Post("/rows", h.appendRows)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
