package service

import (
	"context"

	"github.com/MKhiriev/go-smooai-config/internal/cascade"
	"github.com/MKhiriev/go-smooai-config/internal/schema"
	"github.com/MKhiriev/go-smooai-config/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CascadeLoader builds a merged snapshot for a runtime context. It is
// satisfied by *cascade.Loader.
type CascadeLoader interface {
	Load(ctx context.Context, s *schema.Schema, rc models.RuntimeContext) (*cascade.MergedConfig, error)
}

// DirInvalidator drops a cached directory lookup. It is satisfied by
// *locator.Locator.
type DirInvalidator interface {
	Invalidate()
}

// ConfigResolver caches the file-based snapshot of each environment.
type ConfigResolver interface {
	// Resolve returns the snapshot of the resolver's own runtime context.
	Resolve(ctx context.Context) (*cascade.MergedConfig, error)

	// ResolveEnvironment returns the snapshot for another environment with
	// the same locality and cloud. An empty env means the default one.
	ResolveEnvironment(ctx context.Context, env string) (*cascade.MergedConfig, error)

	// Reload rebuilds the default snapshot. The previous snapshot is kept
	// when the rebuild fails.
	Reload(ctx context.Context) (*cascade.MergedConfig, error)

	// Invalidate drops every cached snapshot and the cached directory.
	Invalidate()

	// Context returns the runtime context the resolver was built for.
	Context() models.RuntimeContext
}

// ConfigManager layers file, remote and environment values and serves them
// per tier.
type ConfigManager interface {
	GetPublicConfig(ctx context.Context, key string) (any, error)
	GetSecretConfig(ctx context.Context, key string) (any, error)
	GetFeatureFlag(ctx context.Context, key string) (any, error)

	// Values returns a copy of the whole layered tree.
	Values(ctx context.Context) (map[string]any, error)

	Invalidate()
}

// SchemaService checks schemas against the supported JSON Schema subset.
type SchemaService interface {
	Check(doc map[string]any) models.CompatibilityReport
	CheckSchema(s *schema.Schema) models.CompatibilityReport

	// RequireCompatible returns ErrIncompatibleSchema when doc has any issue.
	RequireCompatible(doc map[string]any) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionResponse
}
