// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-smooai-config/internal/cascade"
	"github.com/MKhiriev/go-smooai-config/internal/keycase"
	"github.com/MKhiriev/go-smooai-config/internal/utils"
	"github.com/MKhiriev/go-smooai-config/models"
)

// getValues answers GET /organizations/{orgID}/config/values with every
// resolved value of the requested environment.
func (h *Handler) getValues(w http.ResponseWriter, r *http.Request) {
	snap, err := h.snapshot(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.ValuesResponse{Values: snap.Values()}, http.StatusOK)
}

// getValue answers GET /organizations/{orgID}/config/values/{key}. The key
// may be given in source form; it is canonicalized before the lookup.
func (h *Handler) getValue(w http.ResponseWriter, r *http.Request) {
	snap, err := h.snapshot(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	key := chi.URLParam(r, "key")
	value, ok := snap.Get(keycase.Derive(key))
	if !ok {
		h.writeError(w, r, fmt.Errorf("%w: %s", ErrKeyNotFound, key))
		return
	}

	_, _ = utils.WriteJSON(w, models.ValueResponse{Value: value}, http.StatusOK)
}

func (h *Handler) snapshot(r *http.Request) (*cascade.MergedConfig, error) {
	if orgID := chi.URLParam(r, "orgID"); h.orgID != "" && orgID != h.orgID {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOrganization, orgID)
	}

	env := r.URL.Query().Get("environment")
	return h.services.Resolver.ResolveEnvironment(r.Context(), env)
}

// reloadConfig answers POST /api/config/reload by rebuilding the default
// snapshot and returning its values.
func (h *Handler) reloadConfig(w http.ResponseWriter, r *http.Request) {
	h.services.Resolver.Invalidate()

	snap, err := h.services.Resolver.Reload(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	logFrom(r, h.logger).Info().Strs("sources", snap.Sources()).Msg("config reloaded")
	_, _ = utils.WriteJSON(w, models.ValuesResponse{Values: snap.Values()}, http.StatusOK)
}
