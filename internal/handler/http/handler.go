package http

import (
	"github.com/MKhiriev/go-smooai-config/internal/logger"
	"github.com/MKhiriev/go-smooai-config/internal/service"
	"github.com/MKhiriev/go-smooai-config/internal/utils"
)

type Handler struct {
	services *service.Services

	// orgID, when set, is the only organization the API answers for.
	orgID string

	traceIDs *utils.UUIDGenerator
	logger   *logger.Logger
}

func NewHandler(services *service.Services, orgID string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		orgID:    orgID,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
