// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-smooai-config/internal/cascade"
	"github.com/MKhiriev/go-smooai-config/internal/logger"
	"github.com/MKhiriev/go-smooai-config/internal/schema"
	"github.com/MKhiriev/go-smooai-config/models"
)

type configResolver struct {
	loader CascadeLoader
	schema *schema.Schema
	rc     models.RuntimeContext
	dirs   DirInvalidator

	mu        sync.RWMutex
	snapshots map[string]*cascade.MergedConfig
	// generation is bumped by Invalidate; a load only stores its snapshot
	// when no invalidation happened while it ran.
	generation uint64

	// build serializes cascade loads so concurrent misses load once.
	build sync.Mutex

	logger *logger.Logger
}

// NewResolver returns a [ConfigResolver] for rc. dirs may be nil.
func NewResolver(loader CascadeLoader, s *schema.Schema, rc models.RuntimeContext, dirs DirInvalidator, log *logger.Logger) ConfigResolver {
	return &configResolver{
		loader:    loader,
		schema:    s,
		rc:        rc,
		dirs:      dirs,
		snapshots: make(map[string]*cascade.MergedConfig),
		logger:    logger.OrNop(log),
	}
}

func (r *configResolver) Context() models.RuntimeContext {
	return r.rc
}

func (r *configResolver) Resolve(ctx context.Context) (*cascade.MergedConfig, error) {
	return r.ResolveEnvironment(ctx, "")
}

func (r *configResolver) ResolveEnvironment(ctx context.Context, env string) (*cascade.MergedConfig, error) {
	rc := r.contextFor(env)

	if snap := r.cached(rc.Env); snap != nil {
		r.logger.Debug().Str("env", rc.Env).Msg("config snapshot cache hit")
		return snap, nil
	}

	r.build.Lock()
	defer r.build.Unlock()

	if snap := r.cached(rc.Env); snap != nil {
		return snap, nil
	}
	return r.load(ctx, rc)
}

func (r *configResolver) Reload(ctx context.Context) (*cascade.MergedConfig, error) {
	r.build.Lock()
	defer r.build.Unlock()

	return r.load(ctx, r.rc)
}

func (r *configResolver) Invalidate() {
	r.mu.Lock()
	r.snapshots = make(map[string]*cascade.MergedConfig)
	r.generation++
	r.mu.Unlock()

	if r.dirs != nil {
		r.dirs.Invalidate()
	}
	r.logger.Debug().Msg("config snapshots invalidated")
}

func (r *configResolver) contextFor(env string) models.RuntimeContext {
	rc := r.rc
	if env != "" {
		rc.Env = env
	}
	return rc
}

func (r *configResolver) cached(env string) *cascade.MergedConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshots[env]
}

// load must be called with r.build held. The snapshot is returned to the
// caller even when an Invalidate raced with the load, but it is cached only
// when none did.
func (r *configResolver) load(ctx context.Context, rc models.RuntimeContext) (*cascade.MergedConfig, error) {
	if r.loader == nil {
		return nil, ErrNoLoader
	}

	r.mu.RLock()
	generation := r.generation
	r.mu.RUnlock()

	snap, err := r.loader.Load(ctx, r.schema, rc)
	if err != nil {
		r.logger.Err(err).Str("env", rc.Env).Msg("config resolution failed")
		return nil, err
	}

	r.mu.Lock()
	stale := generation != r.generation
	if !stale {
		r.snapshots[rc.Env] = snap
	}
	r.mu.Unlock()

	if stale {
		r.logger.Debug().Str("env", rc.Env).Msg("config invalidated during load, snapshot not cached")
	}

	r.logger.Debug().
		Str("env", rc.Env).
		Strs("sources", snap.Sources()).
		Int("keys", len(snap.Keys())).
		Msg("config resolved")
	return snap, nil
}
