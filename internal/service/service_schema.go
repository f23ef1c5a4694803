package service

import (
	"fmt"

	"github.com/MKhiriev/go-smooai-config/internal/compat"
	"github.com/MKhiriev/go-smooai-config/internal/logger"
	"github.com/MKhiriev/go-smooai-config/internal/schema"
	"github.com/MKhiriev/go-smooai-config/models"
)

type schemaService struct {
	logger *logger.Logger
}

func NewSchemaService(log *logger.Logger) SchemaService {
	return &schemaService{logger: logger.OrNop(log)}
}

func (s *schemaService) Check(doc map[string]any) models.CompatibilityReport {
	report := compat.Validate(doc)
	if !report.Valid() {
		s.logger.Debug().Int("issues", len(report)).Msg("schema compatibility issues found")
	}
	return report
}

// CheckSchema validates the combined document of s, which holds every tier
// under its own property, so each issue path names its tier.
func (s *schemaService) CheckSchema(def *schema.Schema) models.CompatibilityReport {
	return s.Check(def.JSONSchema())
}

func (s *schemaService) RequireCompatible(doc map[string]any) error {
	report := s.Check(doc)
	if report.Valid() {
		return nil
	}

	first := report[0]
	return fmt.Errorf("%w: %d issue(s), first at %s: %s", ErrIncompatibleSchema, len(report), first.Path, first.Message)
}
