package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// jsonSettings is the on-disk layout of the settings file.
type jsonSettings struct {
	Discovery struct {
		ConfigDir     string   `json:"config_dir"`
		DirName       string   `json:"dir_name"`
		LevelsUpLimit int      `json:"levels_up_limit"`
		CacheTTL      Duration `json:"cache_ttl"`
	} `json:"discovery"`

	Runtime struct {
		Env           string `json:"env"`
		IsLocal       *bool  `json:"is_local"`
		CloudProvider string `json:"cloud_provider"`
		CloudRegion   string `json:"cloud_region"`
		EnvPrefix     string `json:"env_prefix"`
	} `json:"runtime"`

	Remote struct {
		APIURL         string   `json:"api_url"`
		APIKey         string   `json:"api_key"`
		OrgID          string   `json:"org_id"`
		CacheTTL       Duration `json:"cache_ttl"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"remote"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server"`
}

func parseJSON(path string) (*Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading settings file: %w", err)
	}
	defer f.Close()

	var js jsonSettings
	if err := json.NewDecoder(f).Decode(&js); err != nil {
		return nil, fmt.Errorf("error decoding settings file: %w", err)
	}

	s := &Settings{
		Discovery: Discovery{
			ConfigDir:     js.Discovery.ConfigDir,
			DirName:       js.Discovery.DirName,
			LevelsUpLimit: js.Discovery.LevelsUpLimit,
			CacheTTL:      time.Duration(js.Discovery.CacheTTL),
		},
		Runtime: Runtime{
			Env:           js.Runtime.Env,
			CloudProvider: js.Runtime.CloudProvider,
			CloudRegion:   js.Runtime.CloudRegion,
			EnvPrefix:     js.Runtime.EnvPrefix,
		},
		Remote: Remote{
			APIURL:         js.Remote.APIURL,
			APIKey:         js.Remote.APIKey,
			OrgID:          js.Remote.OrgID,
			CacheTTL:       time.Duration(js.Remote.CacheTTL),
			RequestTimeout: time.Duration(js.Remote.RequestTimeout),
		},
		Server: Server{
			HTTPAddress:    js.Server.HTTPAddress,
			RequestTimeout: time.Duration(js.Server.RequestTimeout),
		},
	}
	if js.Runtime.IsLocal != nil {
		s.Runtime.IsLocal = fmt.Sprint(*js.Runtime.IsLocal)
	}

	return s, nil
}

// Duration is a time.Duration that unmarshals from "1h30m" style strings as
// well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
