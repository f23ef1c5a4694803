// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cascade builds a configuration snapshot from the layered source
// files of a configuration directory.
//
// For a runtime context the cascade is, from least to most specific:
//
//	default                   always, required
//	local                     when IsLocal
//	{env}                     when env is known
//	{env}.{provider}          when provider is known
//	{env}.{provider}.{region} when region is known
//
// Each stem resolves to at most one source: an in-process tree registered
// for the stem, otherwise the file "{stem}.{ext}" whose loader has the
// highest priority. Sources are coerced through the schema and folded in
// order, so later stems win. The built-in keys are injected last and
// deferred values are then resolved against the final snapshot.
package cascade

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"

	"github.com/MKhiriev/go-smooai-config/internal/deferred"
	"github.com/MKhiriev/go-smooai-config/internal/errs"
	"github.com/MKhiriev/go-smooai-config/internal/locator"
	"github.com/MKhiriev/go-smooai-config/internal/logger"
	"github.com/MKhiriev/go-smooai-config/internal/merge"
	"github.com/MKhiriev/go-smooai-config/internal/schema"
	"github.com/MKhiriev/go-smooai-config/internal/source"
	"github.com/MKhiriev/go-smooai-config/models"
)

// StemDefault is the mandatory first stem of every cascade.
const StemDefault = "default"

// StemLocal is loaded only for local runs.
const StemLocal = "local"

// DirLocator finds the configuration directory and exposes the filesystem
// it lives on. It is satisfied by *locator.Locator.
type DirLocator interface {
	Locate(opts locator.Options) (string, error)
	Fs() afero.Fs
}

// Loader resolves cascades. It holds no per-resolution state and is safe for
// concurrent use.
type Loader struct {
	locator  DirLocator
	registry *source.Registry
	natives  source.Natives
	log      *logger.Logger
}

// Option configures a [Loader].
type Option func(*Loader)

// WithLocator sets the directory locator. Without one only native sources
// are consulted.
func WithLocator(l DirLocator) Option {
	return func(c *Loader) { c.locator = l }
}

// WithRegistry replaces the default file loaders.
func WithRegistry(r *source.Registry) Option {
	return func(c *Loader) { c.registry = r }
}

// WithNatives registers in-process source trees by stem.
func WithNatives(n source.Natives) Option {
	return func(c *Loader) { c.natives = n }
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *logger.Logger) Option {
	return func(c *Loader) { c.log = l }
}

// New returns a cascade loader.
func New(opts ...Option) *Loader {
	c := &Loader{
		registry: source.DefaultRegistry(),
		log:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = logger.OrNop(c.log)
	return c
}

// Candidates returns the cascade stems for rc in merge order.
func Candidates(rc models.RuntimeContext) []string {
	stems := []string{StemDefault}
	if rc.IsLocal {
		stems = append(stems, StemLocal)
	}
	if rc.EnvKnown() {
		stems = append(stems, rc.Env)
	}
	if rc.ProviderKnown() {
		stems = append(stems, rc.Env+"."+rc.Provider)
	}
	if rc.RegionKnown() {
		stems = append(stems, rc.Env+"."+rc.Provider+"."+rc.Region)
	}
	return stems
}

// Load resolves the cascade for rc. s may be nil, in which case values are
// only re-keyed to canonical form. Any error aborts the whole resolution; no
// partial snapshot is returned.
func (c *Loader) Load(ctx context.Context, s *schema.Schema, rc models.RuntimeContext) (*MergedConfig, error) {
	var (
		dir     string
		entries []string
		fs      afero.Fs
	)

	if c.locator != nil {
		var err error
		dir, err = c.locator.Locate(locator.Options{})
		if err != nil {
			return nil, err
		}
		fs = c.locator.Fs()
		entries, err = listFiles(fs, dir)
		if err != nil {
			return nil, errs.New(errs.ErrDiscovery, "reading config directory %s: %v", dir, err)
		}
	}

	stems := Candidates(rc)
	c.log.Debug().Strs("stems", stems).Str("dir", dir).Msg("resolving cascade")

	merged := make(map[string]any)
	sources := make([]string, 0, len(stems))

	for _, stem := range stems {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		tree, origin, err := c.loadStem(ctx, fs, dir, entries, stem)
		if err != nil {
			return nil, err
		}
		if origin == "" {
			if stem == StemDefault {
				return nil, errs.New(errs.ErrMissingRequiredFile, "required %q config not found in %s", StemDefault, describeDir(dir))
			}
			c.log.Debug().Str("stem", stem).Msg("no source for stem")
			continue
		}

		coerced, err := s.Coerce(tree, origin)
		if err != nil {
			return nil, err
		}
		merged = merge.Maps(merged, coerced)
		sources = append(sources, origin)
		c.log.Debug().Str("stem", stem).Str("source", origin).Int("keys", len(coerced)).Msg("merged source")
	}

	for k, v := range schema.BuiltInValues(rc) {
		merged[k] = v
	}

	var checker deferred.Checker
	if s != nil {
		checker = s
	}
	resolved, err := deferred.Resolve(merged, checker)
	if err != nil {
		return nil, err
	}

	return NewMergedConfig(resolved, rc, sources), nil
}

// loadStem returns the tree for stem and a description of its origin. An
// empty origin means no source exists for the stem.
func (c *Loader) loadStem(ctx context.Context, fs afero.Fs, dir string, entries []string, stem string) (map[string]any, string, error) {
	if tree, ok := c.natives.Lookup(stem); ok {
		return tree, "native:" + stem, nil
	}
	if fs == nil {
		return nil, "", nil
	}

	name, loader, err := c.match(entries, stem)
	if err != nil || loader == nil {
		return nil, "", err
	}

	path := filepath.Join(dir, name)
	tree, err := loader.Load(ctx, fs, path)
	if err != nil {
		return nil, "", &errs.LoadError{Path: path, Err: err}
	}
	return tree, path, nil
}

// match picks the file for stem among entries: "{stem}.{ext}" with no further
// dot in ext and a registered loader. The loader registered first wins.
func (c *Loader) match(entries []string, stem string) (string, source.Loader, error) {
	pattern := escapeGlob(stem) + ".*"

	var (
		bestName   string
		bestLoader source.Loader
		bestPrio   int
	)
	for _, name := range entries {
		ok, err := doublestar.Match(pattern, name)
		if err != nil {
			return "", nil, errs.New(errs.ErrDiscovery, "bad cascade stem %q: %v", stem, err)
		}
		if !ok {
			continue
		}

		ext := name[len(stem)+1:]
		if ext == "" || strings.Contains(ext, ".") {
			continue
		}

		loader, prio, known := c.registry.Lookup(ext)
		if !known {
			c.log.Debug().Str("file", name).Msg("no loader for extension, skipping")
			continue
		}
		if bestLoader == nil || prio < bestPrio {
			bestName, bestLoader, bestPrio = name, loader, prio
		}
	}
	return bestName, bestLoader, nil
}

func listFiles(fs afero.Fs, dir string) ([]string, error) {
	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		if !info.IsDir() {
			names = append(names, info.Name())
		}
	}
	return names, nil
}

func escapeGlob(s string) string {
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(`*?[]{}\`, r) {
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func describeDir(dir string) string {
	if dir == "" {
		return "native sources"
	}
	return dir
}
