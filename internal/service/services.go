package service

import (
	"fmt"

	"github.com/MKhiriev/go-smooai-config/internal/adapter"
	"github.com/MKhiriev/go-smooai-config/internal/cascade"
	"github.com/MKhiriev/go-smooai-config/internal/config"
	"github.com/MKhiriev/go-smooai-config/internal/locator"
	"github.com/MKhiriev/go-smooai-config/internal/logger"
	"github.com/MKhiriev/go-smooai-config/internal/schema"
	"github.com/MKhiriev/go-smooai-config/internal/source"
	"github.com/MKhiriev/go-smooai-config/models"
)

type Services struct {
	Locator       *locator.Locator
	Resolver      ConfigResolver
	ConfigManager ConfigManager
	SchemaService SchemaService
	AppInfo       AppInfoService
}

// Deps are the optional in-process inputs of [NewServices].
type Deps struct {
	Schema  *schema.Schema
	Natives source.Natives
	Manager ManagerOptions
	Build   models.AppBuildInfo
}

// NewServices wires the locator, cascade loader, resolver and manager from
// settings. The remote adapter is created only when settings enable it.
func NewServices(settings *config.Settings, deps Deps, log *logger.Logger) (*Services, error) {
	log = logger.OrNop(log)

	loc := locator.New(
		locator.WithDirName(settings.Discovery.DirName),
		locator.WithLevelsUp(settings.Discovery.LevelsUpLimit),
		locator.WithOverrideDir(settings.Discovery.ConfigDir),
		locator.WithCacheTTL(settings.Discovery.CacheTTL),
	)

	loader := cascade.New(
		cascade.WithLocator(loc),
		cascade.WithNatives(deps.Natives),
		cascade.WithLogger(log.GetChildLogger()),
	)

	rc := settings.RuntimeContext()
	resolver := NewResolver(loader, deps.Schema, rc, loc, log.GetChildLogger())

	var remote adapter.RemoteAdapter
	if settings.Remote.Enabled() {
		var err error
		remote, err = adapter.NewHTTPRemoteAdapter(settings.Remote, rc.Env, log.GetChildLogger())
		if err != nil {
			return nil, fmt.Errorf("error creating remote adapter: %w", err)
		}
	}

	opts := deps.Manager
	if opts.EnvPrefix == "" {
		opts.EnvPrefix = settings.Runtime.EnvPrefix
	}

	return &Services{
		Locator:       loc,
		Resolver:      resolver,
		ConfigManager: NewConfigManager(resolver, remote, deps.Schema, opts, log.GetChildLogger()),
		SchemaService: NewSchemaService(log.GetChildLogger()),
		AppInfo:       NewAppInfoService(deps.Build, log),
	}, nil
}
