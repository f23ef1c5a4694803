// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
)

// validate checks the merged [Settings] before they are used.
func (s *Settings) validate() error {
	if s.Discovery.LevelsUpLimit < 0 || s.Discovery.CacheTTL < 0 {
		return fmt.Errorf("%w: levels up %d, cache ttl %s",
			ErrInvalidDiscoverySettings, s.Discovery.LevelsUpLimit, s.Discovery.CacheTTL)
	}

	if s.Remote.CacheTTL < 0 || s.Remote.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative duration", ErrInvalidRemoteSettings)
	}
	if s.Remote.Enabled() && s.Remote.OrgID == "" {
		return fmt.Errorf("%w: api url set without org id", ErrInvalidRemoteSettings)
	}

	if s.Server.HTTPAddress != "" {
		if _, _, err := net.SplitHostPort(s.Server.HTTPAddress); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidServerSettings, err)
		}
	}

	return nil
}
