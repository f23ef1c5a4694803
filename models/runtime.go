// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Unknown is the value reported for a provider or region that could not be
// detected. The cascade treats it the same as an empty string.
const Unknown = "unknown"

// Cloud provider identifiers reported by the region detector.
const (
	ProviderAWS   = "aws"
	ProviderAzure = "azure"
	ProviderGCP   = "gcp"
)

// DefaultEnv is the logical environment used when none is configured.
const DefaultEnv = "development"

// CloudRegion is the result of cloud provider detection.
type CloudRegion struct {
	Provider string `json:"provider"`
	Region   string `json:"region"`
}

// RuntimeContext describes where the configuration is being resolved.
//
// It selects which cascade files apply and supplies the values of the
// built-in keys ENV, IS_LOCAL, REGION and CLOUD_PROVIDER.
type RuntimeContext struct {
	// IsLocal enables the "local" cascade file.
	IsLocal bool `json:"is_local"`

	// Env is the logical environment name, e.g. "development" or "production".
	Env string `json:"env"`

	// Provider is the detected cloud provider, or [Unknown].
	Provider string `json:"provider"`

	// Region is the detected cloud region, or [Unknown].
	Region string `json:"region"`
}

// EnvKnown reports whether the environment-specific cascade file applies.
func (rc RuntimeContext) EnvKnown() bool {
	return known(rc.Env)
}

// ProviderKnown reports whether the "{env}.{provider}" cascade file applies.
func (rc RuntimeContext) ProviderKnown() bool {
	return rc.EnvKnown() && known(rc.Provider)
}

// RegionKnown reports whether the "{env}.{provider}.{region}" cascade file applies.
func (rc RuntimeContext) RegionKnown() bool {
	return rc.ProviderKnown() && known(rc.Region)
}

func known(s string) bool {
	return s != "" && s != Unknown
}
