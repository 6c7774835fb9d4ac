// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-qr-keeper/internal/logger"
	"github.com/MKhiriev/go-qr-keeper/internal/utils"
	"github.com/MKhiriev/go-qr-keeper/models"
)

var routeMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// methodNotAllowed is registered as the router's MethodNotAllowed handler. It
// answers 405 with an Allow header listing the methods the path does accept,
// so front-ends get a JSON error like every other failure.
//
// Allowed methods are found with [chi.Routes.Match], which walks mounted
// sub-routers and expands URL parameters.
func methodNotAllowed(router chi.Routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var allowed []string
		for _, method := range routeMethods {
			if router.Match(chi.NewRouteContext(), method, r.URL.Path) {
				allowed = append(allowed, method)
			}
		}

		w.Header().Set("Allow", strings.Join(allowed, ", "))
		body := models.ErrorResponse{Error: http.StatusText(http.StatusMethodNotAllowed)}
		if _, err := utils.WriteJSON(w, body, http.StatusMethodNotAllowed); err != nil {
			logger.FromRequest(r).Err(err).Msg("error writing error response")
		}
	}
}

// routeNotFound answers unknown paths with a JSON 404.
func routeNotFound(w http.ResponseWriter, r *http.Request) {
	body := models.ErrorResponse{Error: http.StatusText(http.StatusNotFound)}
	if _, err := utils.WriteJSON(w, body, http.StatusNotFound); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing error response")
	}
}
