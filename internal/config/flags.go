package config

import (
	"errors"
	"net"
	"strconv"

	"github.com/spf13/pflag"
)

// NetAddress is a "host:port" pair usable as a command-line flag value.
type NetAddress struct {
	Host string
	Port int
}

var _ pflag.Value = (*NetAddress)(nil)

// String returns "host:port", or "" when neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses "host:port". The host must be "localhost", empty or an IP.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}

// FlagSettings holds the values bound by [BindFlags]. Call Settings after
// the flag set has been parsed.
type FlagSettings struct {
	settings Settings
	address  NetAddress
}

// BindFlags registers the engine flags on fs.
//
// Flags:
//
//	--config-dir       pinned configuration directory
//	--levels-up        maximum upward search depth
//	--env              logical environment name
//	--local            enable the "local" cascade file
//	--cloud-provider   cloud provider override
//	--cloud-region     cloud region override
//	--env-prefix       prefix stripped from environment variable names
//	--api-url          remote platform base URL
//	--api-key          remote platform API key
//	--org-id           remote organization id
//	--cache-ttl        remote value cache TTL (e.g. 5m)
//	--request-timeout  remote request timeout (e.g. 10s)
//	--address          development server address host:port
//	--settings         JSON settings file
func BindFlags(fs *pflag.FlagSet) *FlagSettings {
	f := &FlagSettings{}
	s := &f.settings

	fs.StringVar(&s.Discovery.ConfigDir, "config-dir", "", "Pinned configuration directory")
	fs.IntVar(&s.Discovery.LevelsUpLimit, "levels-up", 0, "Maximum number of parent directories searched")
	fs.StringVar(&s.Runtime.Env, "env", "", "Logical environment name")
	fs.StringVar(&s.Runtime.IsLocal, "local", "", "Enable the local cascade file")
	fs.Lookup("local").NoOptDefVal = "true"
	fs.StringVar(&s.Runtime.CloudProvider, "cloud-provider", "", "Cloud provider override")
	fs.StringVar(&s.Runtime.CloudRegion, "cloud-region", "", "Cloud region override")
	fs.StringVar(&s.Runtime.EnvPrefix, "env-prefix", "", "Prefix stripped from environment variable names")
	fs.StringVar(&s.Remote.APIURL, "api-url", "", "Remote platform base URL")
	fs.StringVar(&s.Remote.APIKey, "api-key", "", "Remote platform API key")
	fs.StringVar(&s.Remote.OrgID, "org-id", "", "Remote organization id")
	fs.DurationVar(&s.Remote.CacheTTL, "cache-ttl", 0, "Remote value cache TTL (e.g. 5m)")
	fs.DurationVar(&s.Remote.RequestTimeout, "request-timeout", 0, "Remote request timeout (e.g. 10s)")
	fs.Var(&f.address, "address", "Development server address host:port")
	fs.StringVar(&s.JSONFilePath, "settings", "", "JSON settings file path")

	return f
}

// Settings returns the flag values as a Settings source.
func (f *FlagSettings) Settings() *Settings {
	out := f.settings
	out.Server.HTTPAddress = f.address.String()
	return &out
}
