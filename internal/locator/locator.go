// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package locator finds the directory that holds the configuration cascade.
//
// Resolution order:
//  1. an explicitly pinned directory (fatal if it does not exist);
//  2. <cwd>/.smooai-config, then <cwd>/smooai-config;
//  3. the same two names in each parent directory, up to a fixed number of
//     levels (default 5).
//
// A successful discovery is remembered in a single-entry TTL cache owned by
// the [Locator]. Cached directories are re-checked on every hit and dropped
// when they no longer exist.
package locator

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/spf13/afero"

	"github.com/MKhiriev/go-smooai-config/internal/errs"
)

const (
	// DefaultDirName is the conventional configuration directory name.
	DefaultDirName = "smooai-config"
	// DefaultLevelsUp is the default depth of the upward search.
	DefaultLevelsUp = 5
	// DefaultCacheTTL bounds how long a discovered directory is trusted.
	DefaultCacheTTL = time.Hour
)

// Options tune a single [Locator.Locate] call.
type Options struct {
	// IgnoreCache forces a fresh filesystem lookup and refreshes the cache.
	IgnoreCache bool
}

// Locator resolves the configuration directory. The zero value is not
// usable; construct with [New].
type Locator struct {
	fs          afero.Fs
	getwd       func() (string, error)
	dirName     string
	levelsUp    int
	overrideDir string

	mu    sync.Mutex
	cache *expirable.LRU[string, string]
}

// Option configures a [Locator].
type Option func(*Locator)

// WithFs replaces the filesystem, mainly for tests with afero.NewMemMapFs.
func WithFs(fs afero.Fs) Option {
	return func(l *Locator) { l.fs = fs }
}

// WithGetwd replaces the working directory lookup.
func WithGetwd(getwd func() (string, error)) Option {
	return func(l *Locator) { l.getwd = getwd }
}

// WithDirName changes the directory name searched for. Both the dotted and
// the plain spelling are tried.
func WithDirName(name string) Option {
	return func(l *Locator) {
		if name != "" {
			l.dirName = name
		}
	}
}

// WithLevelsUp sets the maximum number of parent directories searched.
// Non-positive values keep the default.
func WithLevelsUp(n int) Option {
	return func(l *Locator) {
		if n > 0 {
			l.levelsUp = n
		}
	}
}

// WithOverrideDir pins the configuration directory and disables discovery.
func WithOverrideDir(dir string) Option {
	return func(l *Locator) { l.overrideDir = dir }
}

// WithCacheTTL sets the lifetime of the cached directory.
func WithCacheTTL(ttl time.Duration) Option {
	return func(l *Locator) {
		l.cache = expirable.NewLRU[string, string](1, nil, ttl)
	}
}

// New builds a Locator over the OS filesystem and working directory.
func New(opts ...Option) *Locator {
	l := &Locator{
		fs:       afero.NewOsFs(),
		getwd:    os.Getwd,
		dirName:  DefaultDirName,
		levelsUp: DefaultLevelsUp,
		cache:    expirable.NewLRU[string, string](1, nil, DefaultCacheTTL),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Fs returns the filesystem the locator searches.
func (l *Locator) Fs() afero.Fs {
	return l.fs
}

// Locate returns the configuration directory.
func (l *Locator) Locate(opts Options) (string, error) {
	if l.overrideDir != "" {
		if l.isDir(l.overrideDir) {
			return l.overrideDir, nil
		}
		return "", errs.New(errs.ErrDiscovery, "directory in SMOOAI_ENV_CONFIG_DIR does not exist: %s", l.overrideDir)
	}

	cwd, err := l.getwd()
	if err != nil {
		return "", errs.New(errs.ErrDiscovery, "failed to get working directory: %v", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if !opts.IgnoreCache {
		if dir, ok := l.cache.Get(cwd); ok {
			if l.isDir(dir) {
				return dir, nil
			}
			l.cache.Remove(cwd)
		}
	}

	dir, err := l.search(cwd)
	if err != nil {
		return "", err
	}

	l.cache.Add(cwd, dir)
	return dir, nil
}

// Invalidate drops the cached directory.
func (l *Locator) Invalidate() {
	l.mu.Lock()
	l.cache.Purge()
	l.mu.Unlock()
}

func (l *Locator) search(cwd string) (string, error) {
	if dir, ok := l.probe(cwd); ok {
		return dir, nil
	}

	current := cwd
	for range l.levelsUp {
		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
		if dir, ok := l.probe(current); ok {
			return dir, nil
		}
	}

	return "", errs.New(errs.ErrDiscovery, "could not find config directory, searched %d levels up from %s", l.levelsUp, cwd)
}

func (l *Locator) probe(base string) (string, bool) {
	for _, name := range []string{"." + l.dirName, l.dirName} {
		dir := filepath.Join(base, name)
		if l.isDir(dir) {
			return dir, true
		}
	}
	return "", false
}

func (l *Locator) isDir(path string) bool {
	ok, err := afero.DirExists(l.fs, path)
	return err == nil && ok
}

// String implements fmt.Stringer for debug logging.
func (l *Locator) String() string {
	if l.overrideDir != "" {
		return fmt.Sprintf("locator(pinned=%s)", l.overrideDir)
	}
	return fmt.Sprintf("locator(name=%s, levels=%d)", l.dirName, l.levelsUp)
}
