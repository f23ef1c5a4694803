// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/go-smooai-config/internal/cloud"
	"github.com/MKhiriev/go-smooai-config/internal/utils"
	"github.com/MKhiriev/go-smooai-config/models"
)

// Settings holds the inputs of the resolution engine itself: where to look
// for the configuration directory, which runtime context to resolve for and
// how to reach the remote configuration platform.
//
// Struct tags:
//   - env : environment variable name (caarlos0/env).
//   - json: key in the optional JSON settings file.
type Settings struct {
	// Discovery controls how the configuration directory is found.
	Discovery Discovery

	// Runtime selects the cascade files and the built-in key values.
	Runtime Runtime

	// Remote configures the optional remote value source.
	Remote Remote

	// Server configures the local development API.
	Server Server

	// JSONFilePath is the optional path to a JSON settings file.
	// Env: SMOOAI_CONFIG_SETTINGS, flag: --settings.
	JSONFilePath string `env:"SMOOAI_CONFIG_SETTINGS"`
}

// Discovery configures the directory locator.
type Discovery struct {
	// ConfigDir pins the configuration directory and disables discovery.
	// Env: SMOOAI_ENV_CONFIG_DIR
	ConfigDir string `env:"SMOOAI_ENV_CONFIG_DIR"`

	// DirName is the directory name searched for (both ".name" and "name").
	// Env: SMOOAI_CONFIG_DIR_NAME
	DirName string `env:"SMOOAI_CONFIG_DIR_NAME"`

	// LevelsUpLimit bounds the upward search.
	// Env: SMOOAI_CONFIG_LEVELS_UP_LIMIT
	LevelsUpLimit int `env:"SMOOAI_CONFIG_LEVELS_UP_LIMIT"`

	// CacheTTL is how long a discovered directory is trusted.
	// Env: SMOOAI_CONFIG_DIR_CACHE_TTL
	CacheTTL time.Duration `env:"SMOOAI_CONFIG_DIR_CACHE_TTL"`
}

// Runtime carries the runtime context inputs.
type Runtime struct {
	// Env is the logical environment name.
	// Env: SMOOAI_CONFIG_ENV
	Env string `env:"SMOOAI_CONFIG_ENV"`

	// IsLocal is a boolean flag in string form ("true"/"1" are true). It is
	// kept as a string so that an explicit "false" is distinguishable from
	// unset when sources are merged.
	// Env: IS_LOCAL
	IsLocal string `env:"IS_LOCAL"`

	// CloudProvider and CloudRegion override cloud detection.
	// Env: SMOOAI_CONFIG_CLOUD_PROVIDER, SMOOAI_CONFIG_CLOUD_REGION
	CloudProvider string `env:"SMOOAI_CONFIG_CLOUD_PROVIDER"`
	CloudRegion   string `env:"SMOOAI_CONFIG_CLOUD_REGION"`

	// EnvPrefix is stripped from environment variable names before they are
	// matched against schema keys.
	// Env: SMOOAI_CONFIG_ENV_PREFIX
	EnvPrefix string `env:"SMOOAI_CONFIG_ENV_PREFIX"`
}

// Remote configures the remote configuration platform client.
type Remote struct {
	// APIURL is the base URL of the platform API. Empty disables the client.
	// Env: SMOOAI_CONFIG_API_URL
	APIURL string `env:"SMOOAI_CONFIG_API_URL"`

	// APIKey is sent as a bearer token. It is never serialized, so logging
	// Settings does not leak it.
	// Env: SMOOAI_CONFIG_API_KEY
	APIKey string `env:"SMOOAI_CONFIG_API_KEY" json:"-"`

	// OrgID is the organization whose values are fetched.
	// Env: SMOOAI_CONFIG_ORG_ID
	OrgID string `env:"SMOOAI_CONFIG_ORG_ID"`

	// CacheTTL bounds how long fetched values are reused.
	// Env: SMOOAI_CONFIG_CACHE_TTL
	CacheTTL time.Duration `env:"SMOOAI_CONFIG_CACHE_TTL"`

	// RequestTimeout bounds a single HTTP request.
	// Env: SMOOAI_CONFIG_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"SMOOAI_CONFIG_REQUEST_TIMEOUT"`
}

// Enabled reports whether a remote source is configured.
func (r Remote) Enabled() bool {
	return r.APIURL != ""
}

// Server holds the local development API settings.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: SMOOAI_CONFIG_SERVER_ADDRESS
	HTTPAddress string `env:"SMOOAI_CONFIG_SERVER_ADDRESS"`

	// RequestTimeout bounds handler execution.
	// Env: SMOOAI_CONFIG_SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"SMOOAI_CONFIG_SERVER_REQUEST_TIMEOUT"`
}

// Defaults used when no source sets a value.
const (
	DefaultDirName        = "smooai-config"
	DefaultLevelsUpLimit  = 5
	DefaultDirCacheTTL    = time.Hour
	DefaultRemoteCacheTTL = 5 * time.Minute
	DefaultRequestTimeout = 10 * time.Second
	DefaultHTTPAddress    = "localhost:8787"
)

func defaults() *Settings {
	return &Settings{
		Discovery: Discovery{
			DirName:       DefaultDirName,
			LevelsUpLimit: DefaultLevelsUpLimit,
			CacheTTL:      DefaultDirCacheTTL,
		},
		Runtime: Runtime{
			Env: models.DefaultEnv,
		},
		Remote: Remote{
			CacheTTL:       DefaultRemoteCacheTTL,
			RequestTimeout: DefaultRequestTimeout,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}

// Load assembles Settings from, in decreasing priority: the values bound to
// command-line flags (may be nil), environment variables, the JSON settings
// file and the built-in defaults.
func Load(flags *Settings) (*Settings, error) {
	return newSettingsBuilder().
		withFlags(flags).
		withEnv().
		withJSON().
		withDefaults().
		build()
}

// RuntimeContext builds the runtime context, detecting the cloud from the
// process environment.
func (s *Settings) RuntimeContext() models.RuntimeContext {
	return s.RuntimeContextFrom(cloud.FromOS())
}

// RuntimeContextFrom builds the runtime context from an already detected
// cloud region. Provider/region set in Settings take precedence; when only
// one of them is set the other is "unknown".
func (s *Settings) RuntimeContextFrom(detected models.CloudRegion) models.RuntimeContext {
	region := detected
	if s.Runtime.CloudProvider != "" || s.Runtime.CloudRegion != "" {
		region = models.CloudRegion{Provider: models.Unknown, Region: models.Unknown}
		if s.Runtime.CloudProvider != "" {
			region.Provider = s.Runtime.CloudProvider
		}
		if s.Runtime.CloudRegion != "" {
			region.Region = s.Runtime.CloudRegion
		}
	}

	env := s.Runtime.Env
	if env == "" {
		env = models.DefaultEnv
	}

	return models.RuntimeContext{
		IsLocal:  utils.CoerceBoolean(s.Runtime.IsLocal),
		Env:      env,
		Provider: region.Provider,
		Region:   region.Region,
	}
}
