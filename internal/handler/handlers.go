package handler

import (
	"github.com/MKhiriev/go-smooai-config/internal/config"
	"github.com/MKhiriev/go-smooai-config/internal/handler/http"
	"github.com/MKhiriev/go-smooai-config/internal/logger"
	"github.com/MKhiriev/go-smooai-config/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers enabled by settings. The HTTP
// handler answers only for settings.Remote.OrgID when one is configured.
func NewHandlers(services *service.Services, settings *config.Settings, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if settings.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, settings.Remote.OrgID, logger),
	}, nil
}
