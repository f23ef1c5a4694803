package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// settingsBuilder collects Settings from several sources in priority order.
// mergo.Merge without override keeps the first non-zero value, so sources
// must be added highest priority first.
type settingsBuilder struct {
	sources []*Settings
	err     error
}

func newSettingsBuilder() *settingsBuilder {
	return &settingsBuilder{
		sources: make([]*Settings, 0, 4),
	}
}

func (b *settingsBuilder) build() (*Settings, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building settings: %w", b.err)
	}

	settings := new(Settings)
	for _, src := range b.sources {
		if err := mergo.Merge(settings, src); err != nil {
			return nil, fmt.Errorf("error merging settings: %w", err)
		}
	}

	if err := settings.validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

func (b *settingsBuilder) withFlags(flags *Settings) *settingsBuilder {
	if flags != nil {
		b.sources = append(b.sources, flags)
	}
	return b
}

func (b *settingsBuilder) withEnv() *settingsBuilder {
	envSettings := &Settings{}
	if err := parseEnv(envSettings); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.sources = append(b.sources, envSettings)
	return b
}

// withJSON loads the settings file named by the highest-priority source
// that names one.
func (b *settingsBuilder) withJSON() *settingsBuilder {
	var path string
	for _, src := range b.sources {
		if src.JSONFilePath != "" {
			path = src.JSONFilePath
			break
		}
	}
	if path == "" {
		return b
	}

	jsonSettings, err := parseJSON(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.sources = append(b.sources, jsonSettings)
	return b
}

func (b *settingsBuilder) withDefaults() *settingsBuilder {
	b.sources = append(b.sources, defaults())
	return b
}
