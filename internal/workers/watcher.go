// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/MKhiriev/go-smooai-config/internal/logger"
)

// DefaultDebounce collapses bursts of events, such as an editor writing a
// temp file and renaming it, into one invalidation.
const DefaultDebounce = 200 * time.Millisecond

// DirWatcher invalidates its targets whenever a file in the configuration
// directory is created, written, removed or renamed.
type DirWatcher struct {
	dir      string
	targets  []Invalidator
	debounce time.Duration
	logger   *logger.Logger
}

func NewDirWatcher(dir string, debounce time.Duration, logger *logger.Logger, targets ...Invalidator) *DirWatcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &DirWatcher{
		dir:      dir,
		targets:  targets,
		debounce: debounce,
		logger:   logger,
	}
}

func (d *DirWatcher) Run(ctx context.Context) error {
	log := logger.OrNop(d.logger)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating watcher: %w", err)
	}
	defer watcher.Close()

	if err = watcher.Add(d.dir); err != nil {
		return fmt.Errorf("error watching %s: %w", d.dir, err)
	}
	log.Info().Str("dir", d.dir).Msg("watching config directory")

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			log.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("config file changed")
			if timer == nil {
				timer = time.NewTimer(d.debounce)
			} else {
				timer.Reset(d.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			for _, t := range d.targets {
				t.Invalidate()
			}
			log.Info().Str("dir", d.dir).Msg("config cache invalidated")

		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(werr).Msg("watcher error")
		}
	}
}

func relevant(event fsnotify.Event) bool {
	return event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Remove) ||
		event.Has(fsnotify.Rename)
}
