// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cloud classifies the cloud provider and region the process runs in
// by inspecting well-known vendor environment variables.
package cloud

import (
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/MKhiriev/go-smooai-config/models"
)

// signals are the environment variables consulted by [Detect], grouped by
// vendor. Within a group the first non-empty variable wins.
type signals struct {
	OverrideProvider string `env:"SMOOAI_CONFIG_CLOUD_PROVIDER"`
	OverrideRegion   string `env:"SMOOAI_CONFIG_CLOUD_REGION"`

	AWSRegion        string `env:"AWS_REGION"`
	AWSDefaultRegion string `env:"AWS_DEFAULT_REGION"`

	AzureRegion   string `env:"AZURE_REGION"`
	AzureLocation string `env:"AZURE_LOCATION"`

	GoogleCloudRegion     string `env:"GOOGLE_CLOUD_REGION"`
	CloudSDKComputeRegion string `env:"CLOUDSDK_COMPUTE_REGION"`
}

// Detect classifies provider and region from the given environment.
//
// Priority:
//  1. explicit SMOOAI_CONFIG_CLOUD_PROVIDER / SMOOAI_CONFIG_CLOUD_REGION
//     (either one set is an override; the missing half is "unknown");
//  2. AWS_REGION, AWS_DEFAULT_REGION;
//  3. AZURE_REGION, AZURE_LOCATION;
//  4. GOOGLE_CLOUD_REGION, CLOUDSDK_COMPUTE_REGION;
//  5. unknown/unknown.
func Detect(environ map[string]string) models.CloudRegion {
	if environ == nil {
		environ = map[string]string{}
	}

	var s signals
	// only plain string fields, parsing cannot fail
	_ = env.ParseWithOptions(&s, env.Options{Environment: environ})

	if s.OverrideProvider != "" || s.OverrideRegion != "" {
		return models.CloudRegion{
			Provider: orUnknown(s.OverrideProvider),
			Region:   orUnknown(s.OverrideRegion),
		}
	}

	if r := first(s.AWSRegion, s.AWSDefaultRegion); r != "" {
		return models.CloudRegion{Provider: models.ProviderAWS, Region: r}
	}
	if r := first(s.AzureRegion, s.AzureLocation); r != "" {
		return models.CloudRegion{Provider: models.ProviderAzure, Region: r}
	}
	if r := first(s.GoogleCloudRegion, s.CloudSDKComputeRegion); r != "" {
		return models.CloudRegion{Provider: models.ProviderGCP, Region: r}
	}

	return models.CloudRegion{Provider: models.Unknown, Region: models.Unknown}
}

// FromOS runs [Detect] against the process environment.
func FromOS() models.CloudRegion {
	return Detect(env.ToMap(os.Environ()))
}

func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func orUnknown(s string) string {
	if s == "" {
		return models.Unknown
	}
	return s
}
