package service

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/MKhiriev/go-smooai-config/internal/adapter"
	"github.com/MKhiriev/go-smooai-config/internal/deferred"
	"github.com/MKhiriev/go-smooai-config/internal/envconfig"
	"github.com/MKhiriev/go-smooai-config/internal/errs"
	"github.com/MKhiriev/go-smooai-config/internal/keycase"
	"github.com/MKhiriev/go-smooai-config/internal/logger"
	"github.com/MKhiriev/go-smooai-config/internal/merge"
	"github.com/MKhiriev/go-smooai-config/internal/schema"
	"github.com/MKhiriev/go-smooai-config/models"
)

// DefaultTierCacheTTL bounds how long a value read through a tier accessor
// is reused.
const DefaultTierCacheTTL = 24 * time.Hour

// ManagerOptions configures a [ConfigManager].
type ManagerOptions struct {
	// EnvPrefix is stripped from environment variable names.
	EnvPrefix string

	// Environ replaces the process environment. Nil reads os.Environ.
	Environ map[string]string

	// CacheTTL bounds the per-tier caches. Zero selects DefaultTierCacheTTL.
	CacheTTL time.Duration

	// Deferred values are computed from the fully layered tree, after
	// remote and environment values have been applied.
	Deferred map[string]deferred.Func
}

type configManager struct {
	resolver ConfigResolver
	remote   adapter.RemoteAdapter
	schema   *schema.Schema
	opts     ManagerOptions

	mu     sync.Mutex
	merged map[string]any
	caches map[models.Tier]*expirable.LRU[string, any]

	logger *logger.Logger
}

// NewConfigManager returns a [ConfigManager] layering, from lowest to
// highest precedence, the resolver's file snapshot, the remote values (when
// remote is not nil) and the environment. All layers load lazily on first
// access.
func NewConfigManager(resolver ConfigResolver, remote adapter.RemoteAdapter, s *schema.Schema, opts ManagerOptions, log *logger.Logger) ConfigManager {
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = DefaultTierCacheTTL
	}

	m := &configManager{
		resolver: resolver,
		remote:   remote,
		schema:   s,
		opts:     opts,
		logger:   logger.OrNop(log),
	}
	m.resetCaches()
	return m
}

func (m *configManager) GetPublicConfig(ctx context.Context, key string) (any, error) {
	return m.getFromTier(ctx, models.TierPublic, key)
}

func (m *configManager) GetSecretConfig(ctx context.Context, key string) (any, error) {
	return m.getFromTier(ctx, models.TierSecret, key)
}

func (m *configManager) GetFeatureFlag(ctx context.Context, key string) (any, error) {
	return m.getFromTier(ctx, models.TierFeatureFlag, key)
}

func (m *configManager) Values(ctx context.Context) (map[string]any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.initialize(ctx); err != nil {
		return nil, err
	}
	return merge.Maps(nil, m.merged), nil
}

func (m *configManager) Invalidate() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.merged = nil
	m.resetCaches()
	if m.resolver != nil {
		m.resolver.Invalidate()
	}
	if m.remote != nil {
		m.remote.InvalidateCache()
	}
}

func (m *configManager) resetCaches() {
	m.caches = make(map[models.Tier]*expirable.LRU[string, any], len(models.Tiers))
	for _, tier := range models.Tiers {
		m.caches[tier] = expirable.NewLRU[string, any](0, nil, m.opts.CacheTTL)
	}
}

// getFromTier returns the value of key, or nil when it is unset. Keys may be
// given in source or canonical form. With a schema, the key must be declared
// in tier; the built-in keys belong to the public tier.
func (m *configManager) getFromTier(ctx context.Context, tier models.Tier, key string) (any, error) {
	canonical := keycase.Derive(key)

	if m.schema != nil {
		field, ok := m.schema.Field(canonical)
		if !ok || field.Tier != tier {
			return nil, fmt.Errorf("%w: %s is not a %s key", ErrKeyNotInTier, key, tier)
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	cache := m.caches[tier]
	if v, ok := cache.Get(canonical); ok {
		return v, nil
	}

	if err := m.initialize(ctx); err != nil {
		return nil, err
	}

	value := merge.Merge(nil, m.merged[canonical])
	cache.Add(canonical, value)
	return value, nil
}

// initialize must be called with m.mu held.
func (m *configManager) initialize(ctx context.Context) error {
	if m.merged != nil {
		return nil
	}

	rc := models.RuntimeContext{Env: models.DefaultEnv}
	if m.resolver != nil {
		rc = m.resolver.Context()
	}

	fileLayer, err := m.fileLayer(ctx)
	if err != nil {
		return err
	}

	remoteLayer, err := m.remoteLayer(ctx, rc.Env)
	if err != nil {
		return err
	}

	var envLayer map[string]any
	if m.opts.Environ == nil {
		envLayer = envconfig.FromOS(m.schema, m.opts.EnvPrefix, rc)
	} else {
		envLayer = envconfig.Load(m.schema, m.opts.EnvPrefix, m.opts.Environ, rc)
	}
	envLayer, err = m.schema.Coerce(envLayer, "env")
	if err != nil {
		return err
	}

	merged := merge.Fold(fileLayer, remoteLayer, envLayer)
	for key, fn := range m.opts.Deferred {
		merged[keycase.Derive(key)] = fn
	}

	resolved, err := deferred.Resolve(merged, m.schema)
	if err != nil {
		return err
	}

	m.merged = resolved
	return nil
}

// fileLayer returns the resolver snapshot. A missing configuration directory
// yields an empty layer; every other failure is returned.
func (m *configManager) fileLayer(ctx context.Context) (map[string]any, error) {
	if m.resolver == nil {
		return map[string]any{}, nil
	}

	snap, err := m.resolver.Resolve(ctx)
	switch {
	case errors.Is(err, errs.ErrDiscovery):
		m.logger.Debug().Err(err).Msg("no config directory, file layer is empty")
		return map[string]any{}, nil
	case err != nil:
		return nil, err
	}
	return snap.Values(), nil
}

// remoteLayer fetches every remote value. Transport failures are logged and
// yield an empty layer; values of the wrong type are returned as errors.
func (m *configManager) remoteLayer(ctx context.Context, env string) (map[string]any, error) {
	if m.remote == nil {
		return map[string]any{}, nil
	}

	values, err := m.remote.GetAllValues(ctx, env)
	if err != nil {
		m.logger.Warn().Err(err).Str("env", env).Msg("failed to fetch remote config")
		return map[string]any{}, nil
	}

	coerced, err := m.schema.Coerce(maps.Clone(values), "remote")
	if err != nil {
		return nil, err
	}
	return coerced, nil
}
