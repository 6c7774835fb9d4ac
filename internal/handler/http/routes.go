// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)
		r.Get("/capabilities", h.getCapabilities)

		r.Route("/qr", func(r chi.Router) {
			r.Post("/generate", h.generate)
			r.Post("/download/{format}", h.download)
		})

		r.Route("/history", func(r chi.Router) {
			r.Get("/", h.listHistory)
			r.Delete("/", h.clearHistory)
			r.Post("/{id}/restore", h.restoreHistory)
			r.Post("/{id}/share", h.shareHistory)
		})
	})

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(methodNotAllowed(router))

	return router
}
