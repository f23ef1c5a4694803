package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-smooai-config/internal/errs"
	"github.com/MKhiriev/go-smooai-config/internal/service"
	"github.com/MKhiriev/go-smooai-config/internal/utils"
	"github.com/MKhiriev/go-smooai-config/models"
)

var errorStatusMap = []struct {
	target error
	status int
}{
	{ErrKeyNotFound, http.StatusNotFound},
	{ErrUnknownOrganization, http.StatusNotFound},
	{ErrInvalidSchemaBody, http.StatusBadRequest},
	{service.ErrIncompatibleSchema, http.StatusUnprocessableEntity},

	{errs.ErrDiscovery, http.StatusServiceUnavailable},
	{errs.ErrMissingRequiredFile, http.StatusServiceUnavailable},
	{errs.ErrLoad, http.StatusInternalServerError},
	{errs.ErrValidation, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.target) {
			return entry.status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err and an ErrorResponse
// body.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		logFrom(r, h.logger).Err(err).Msg("request failed")
	}
	_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, status)
}
