// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package source turns configuration source files into value trees.
//
// A [Loader] handles one or more file extensions. The [Registry] keeps loaders
// in priority order: when several files share a cascade stem (for example
// default.json and default.yaml) the file whose loader was registered first
// is the one that is loaded.
//
// In-process trees registered through [Natives] take precedence over any
// file for the same stem and may hold deferred values.
package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

// Loader decodes a single source file into a tree keyed by strings.
type Loader interface {
	// Name identifies the loader in logs.
	Name() string
	// Extensions lists the file extensions handled, without the leading dot.
	Extensions() []string
	// Load reads and decodes the file at path.
	Load(ctx context.Context, fs afero.Fs, path string) (map[string]any, error)
}

// Registry is an ordered set of loaders.
type Registry struct {
	loaders []Loader
	byExt   map[string]int
}

// NewRegistry returns a registry holding loaders in the given priority order.
func NewRegistry(loaders ...Loader) *Registry {
	r := &Registry{byExt: make(map[string]int)}
	for _, l := range loaders {
		r.Register(l)
	}
	return r
}

// DefaultRegistry returns the standard loaders: JSON, YAML, TOML, CUE,
// dotenv and executable scripts, in that priority.
func DefaultRegistry() *Registry {
	return NewRegistry(
		JSONLoader{},
		YAMLLoader{},
		TOMLLoader{},
		CUELoader{},
		DotenvLoader{},
		ExecLoader{},
	)
}

// Register appends l with the lowest priority. Extensions already claimed by
// an earlier loader keep their original owner.
func (r *Registry) Register(l Loader) {
	r.loaders = append(r.loaders, l)
	idx := len(r.loaders) - 1
	for _, ext := range l.Extensions() {
		ext = strings.ToLower(strings.TrimPrefix(ext, "."))
		if _, taken := r.byExt[ext]; !taken {
			r.byExt[ext] = idx
		}
	}
}

// Lookup returns the loader for ext and its priority (lower wins).
func (r *Registry) Lookup(ext string) (Loader, int, bool) {
	idx, ok := r.byExt[strings.ToLower(strings.TrimPrefix(ext, "."))]
	if !ok {
		return nil, 0, false
	}
	return r.loaders[idx], idx, true
}

// Loaders returns the registered loaders in priority order.
func (r *Registry) Loaders() []Loader {
	out := make([]Loader, len(r.loaders))
	copy(out, r.loaders)
	return out
}

// Natives holds in-process value trees keyed by cascade stem
// ("default", "local", "production.aws", ...).
type Natives map[string]map[string]any

// Register stores tree under stem, replacing any previous tree.
func (n Natives) Register(stem string, tree map[string]any) Natives {
	n[stem] = tree
	return n
}

// Lookup returns the tree registered for stem.
func (n Natives) Lookup(stem string) (map[string]any, bool) {
	if n == nil {
		return nil, false
	}
	tree, ok := n[stem]
	return tree, ok
}

// normalize converts decoder output into map[string]any / []any trees.
func normalize(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			n, err := normalize(val)
			if err != nil {
				return nil, err
			}
			out[k] = n
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string key %v (%T)", k, k)
			}
			n, err := normalize(val)
			if err != nil {
				return nil, err
			}
			out[key] = n
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			n, err := normalize(val)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	default:
		return v, nil
	}
}

// asTree normalizes a decoded document and requires an object at the top.
func asTree(v any) (map[string]any, error) {
	if v == nil {
		return map[string]any{}, nil
	}
	n, err := normalize(v)
	if err != nil {
		return nil, err
	}
	tree, ok := n.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotAnObject, v)
	}
	return tree, nil
}
