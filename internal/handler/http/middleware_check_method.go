// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-smooai-config/internal/utils"
	"github.com/MKhiriev/go-smooai-config/models"
)

// methodNotAllowed is registered with chi.Mux.MethodNotAllowed. It keeps the
// 405 status chi would send but answers with the JSON error shape used by
// every other endpoint.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, models.ErrorResponse{
		Error: "method " + r.Method + " not allowed for " + r.URL.Path,
	}, http.StatusMethodNotAllowed)
}

// notFound is registered with chi.Mux.NotFound.
func notFound(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, models.ErrorResponse{
		Error: "no route for " + r.URL.Path,
	}, http.StatusNotFound)
}
