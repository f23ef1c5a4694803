package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-smooai-config/internal/utils"
	"github.com/MKhiriev/go-smooai-config/models"
)

// maxSchemaBody bounds the compatibility request body.
const maxSchemaBody = 1 << 20

// checkSchemaCompatibility answers POST /api/schema/compatibility. The body
// is a JSON Schema document; the response lists every construct that is not
// portable. Findings are reported with 200; only a malformed body is an
// error.
func (h *Handler) checkSchemaCompatibility(w http.ResponseWriter, r *http.Request) {
	var doc map[string]any
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSchemaBody)).Decode(&doc); err != nil || doc == nil {
		h.writeError(w, r, fmt.Errorf("%w: %v", ErrInvalidSchemaBody, err))
		return
	}

	report := h.services.SchemaService.Check(doc)
	_, _ = utils.WriteJSON(w, models.CompatibilityResponse{
		Valid:  report.Valid(),
		Issues: report,
	}, http.StatusOK)
}
