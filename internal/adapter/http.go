package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/MKhiriev/go-smooai-config/internal/config"
	"github.com/MKhiriev/go-smooai-config/internal/logger"
	"github.com/MKhiriev/go-smooai-config/internal/utils"
	"github.com/MKhiriev/go-smooai-config/models"
)

const (
	valuesPath = "/organizations/{orgID}/config/values"
	valuePath  = "/organizations/{orgID}/config/values/{key}"
)

type httpRemoteAdapter struct {
	client *utils.HTTPClient

	orgID      string
	defaultEnv string

	// cache is keyed by "environment:key".
	cache *expirable.LRU[string, any]

	logger *logger.Logger
}

// NewHTTPRemoteAdapter constructs the HTTP/REST implementation of
// [RemoteAdapter]. Every request carries remoteCfg.APIKey as a bearer token.
// defaultEnv is used when a call passes an empty environment. A zero
// remoteCfg.CacheTTL keeps cached values until they are invalidated.
//
// Returns an error wrapping [ErrNotConfigured] if the base URL or the
// organization is missing, or if the URL cannot be parsed.
func NewHTTPRemoteAdapter(remoteCfg config.Remote, defaultEnv string, log *logger.Logger) (RemoteAdapter, error) {
	if remoteCfg.OrgID == "" {
		return nil, fmt.Errorf("%w: empty organization id", ErrNotConfigured)
	}
	baseURL, err := normalizeBaseURL(remoteCfg.APIURL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid api url: %v", ErrNotConfigured, err)
	}
	if defaultEnv == "" {
		defaultEnv = models.DefaultEnv
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(remoteCfg.RequestTimeout).
		SetHeader("Accept", "application/json")
	if remoteCfg.APIKey != "" {
		client.SetAuthToken(remoteCfg.APIKey)
	}

	return &httpRemoteAdapter{
		client:     client,
		orgID:      remoteCfg.OrgID,
		defaultEnv: defaultEnv,
		cache:      expirable.NewLRU[string, any](0, nil, remoteCfg.CacheTTL),
		logger:     logger.OrNop(log),
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpRemoteAdapter) environment(env string) string {
	if env != "" {
		return env
	}
	return h.defaultEnv
}

func cacheKey(env, key string) string {
	return env + ":" + key
}

// GetValue implements [RemoteAdapter]. It sends
// GET /organizations/{orgID}/config/values/{key}?environment={env}.
func (h *httpRemoteAdapter) GetValue(ctx context.Context, key, environment string) (any, error) {
	env := h.environment(environment)
	if v, ok := h.cache.Get(cacheKey(env, key)); ok {
		h.logger.Debug().Str("key", key).Str("environment", env).Msg("remote value cache hit")
		return v, nil
	}

	var result models.ValueResponse
	resp, err := h.request(ctx, env).
		SetPathParam("key", key).
		SetResult(&result).
		Get(valuePath)
	if err != nil {
		return nil, fmt.Errorf("config get value: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("config get value: %w", err)
	}

	h.cache.Add(cacheKey(env, key), result.Value)
	return result.Value, nil
}

// GetAllValues implements [RemoteAdapter]. It sends
// GET /organizations/{orgID}/config/values?environment={env}.
func (h *httpRemoteAdapter) GetAllValues(ctx context.Context, environment string) (map[string]any, error) {
	env := h.environment(environment)

	var result models.ValuesResponse
	resp, err := h.request(ctx, env).
		SetResult(&result).
		Get(valuesPath)
	if err != nil {
		return nil, fmt.Errorf("config get all values: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("config get all values: %w", err)
	}

	if result.Values == nil {
		result.Values = make(map[string]any)
	}
	for key, value := range result.Values {
		h.cache.Add(cacheKey(env, key), value)
	}

	h.logger.Debug().
		Str("environment", env).
		Int("count", len(result.Values)).
		Msg("fetched remote values")
	return result.Values, nil
}

// InvalidateCache implements [RemoteAdapter].
func (h *httpRemoteAdapter) InvalidateCache() {
	h.cache.Purge()
}

// InvalidateEnvironment implements [RemoteAdapter].
func (h *httpRemoteAdapter) InvalidateEnvironment(environment string) {
	prefix := cacheKey(environment, "")
	for _, k := range h.cache.Keys() {
		if strings.HasPrefix(k, prefix) {
			h.cache.Remove(k)
		}
	}
}

// request prepares a call for env. A trace id found in ctx is forwarded so
// remote calls show up under the same trace as the inbound request.
func (h *httpRemoteAdapter) request(ctx context.Context, env string) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		ForceContentType("application/json").
		SetPathParam("orgID", h.orgID).
		SetQueryParam("environment", env)

	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(utils.TraceIDHeader, traceID)
	}
	return req
}
