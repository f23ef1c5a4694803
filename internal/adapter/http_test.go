// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-smooai-config/internal/config"
	"github.com/MKhiriev/go-smooai-config/internal/logger"
	"github.com/MKhiriev/go-smooai-config/internal/utils"
)

// newTestAdapter returns an adapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string, ttl time.Duration) *httpRemoteAdapter {
	t.Helper()
	cfg := config.Remote{
		APIURL:         serverURL,
		APIKey:         "secret-key",
		OrgID:          "org-1",
		CacheTTL:       ttl,
		RequestTimeout: 5 * time.Second,
	}

	a, err := NewHTTPRemoteAdapter(cfg, "production", logger.Nop())
	require.NoError(t, err)
	return a.(*httpRemoteAdapter)
}

func writeBody(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNewHTTPRemoteAdapter_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Remote
	}{
		{"missing org", config.Remote{APIURL: "http://localhost"}},
		{"missing url", config.Remote{OrgID: "org"}},
		{"bad url", config.Remote{APIURL: "http://", OrgID: "org"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHTTPRemoteAdapter(tt.cfg, "", nil)
			assert.ErrorIs(t, err, ErrNotConfigured)
		})
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL(" api.example.com/v1/ ")
	require.NoError(t, err)
	assert.Equal(t, "http://api.example.com/v1", got)

	got, err = normalizeBaseURL("https://api.example.com")
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", got)
}

// ── GetValue ────────────────────────────────────────────────────────────────

func TestGetValue_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/organizations/org-1/config/values/API_URL", r.URL.Path)
		assert.Equal(t, "staging", r.URL.Query().Get("environment"))
		assert.Equal(t, "Bearer secret-key", r.Header.Get("Authorization"))

		writeBody(w, http.StatusOK, `{"value":"https://api.staging"}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, 0)
	got, err := a.GetValue(context.Background(), "API_URL", "staging")

	require.NoError(t, err)
	assert.Equal(t, "https://api.staging", got)
}

func TestGetValue_ForwardsTraceID(t *testing.T) {
	var got atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.Store(r.Header.Get(utils.TraceIDHeader))
		writeBody(w, http.StatusOK, `{"value":1}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, 0)
	ctx := utils.WithTraceID(context.Background(), "trace-42")
	_, err := a.GetValue(ctx, "MAX_RETRIES", "")

	require.NoError(t, err)
	assert.Equal(t, "trace-42", got.Load())
}

func TestGetValue_DefaultEnvironment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "production", r.URL.Query().Get("environment"))
		writeBody(w, http.StatusOK, `{"value":3}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, 0)
	got, err := a.GetValue(context.Background(), "MAX_RETRIES", "")

	require.NoError(t, err)
	assert.Equal(t, float64(3), got)
}

func TestGetValue_CachedUntilInvalidated(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeBody(w, http.StatusOK, `{"value":true}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, 0)
	ctx := context.Background()

	for range 3 {
		v, err := a.GetValue(ctx, "ENABLE_DEBUG", "production")
		require.NoError(t, err)
		assert.Equal(t, true, v)
	}
	assert.Equal(t, int32(1), calls.Load())

	a.InvalidateCache()
	_, err := a.GetValue(ctx, "ENABLE_DEBUG", "production")
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestGetValue_CacheExpires(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeBody(w, http.StatusOK, `{"value":"x"}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, 20*time.Millisecond)
	ctx := context.Background()

	_, err := a.GetValue(ctx, "K", "")
	require.NoError(t, err)
	time.Sleep(60 * time.Millisecond)
	_, err = a.GetValue(ctx, "K", "")
	require.NoError(t, err)

	assert.Equal(t, int32(2), calls.Load())
}

func TestGetValue_ErrorMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusTooManyRequests, ErrTooManyRequests},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusServiceUnavailable, ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("nope"))
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL, 0)
			_, err := a.GetValue(context.Background(), "K", "")

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "nope")
		})
	}
}

func TestGetValue_UnmappedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, 0)
	_, err := a.GetValue(context.Background(), "K", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

func TestGetValue_ErrorNotCached(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		writeBody(w, http.StatusOK, `{"value":"ok"}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, 0)
	_, err := a.GetValue(context.Background(), "K", "")
	require.Error(t, err)

	v, err := a.GetValue(context.Background(), "K", "")
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
}

// ── GetAllValues ────────────────────────────────────────────────────────────

func TestGetAllValues_PopulatesCache(t *testing.T) {
	var single atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/organizations/org-1/config/values":
			assert.Equal(t, "production", r.URL.Query().Get("environment"))
			writeBody(w, http.StatusOK, `{"values":{"API_URL":"https://prod","MAX_RETRIES":5,"HOSTS":["a","b"]}}`)
		default:
			single.Add(1)
			writeBody(w, http.StatusOK, `{"value":"unexpected"}`)
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, 0)
	ctx := context.Background()

	values, err := a.GetAllValues(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"API_URL":     "https://prod",
		"MAX_RETRIES": float64(5),
		"HOSTS":       []any{"a", "b"},
	}, values)

	v, err := a.GetValue(ctx, "API_URL", "production")
	require.NoError(t, err)
	assert.Equal(t, "https://prod", v)
	assert.Equal(t, int32(0), single.Load())
}

func TestGetAllValues_EmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, http.StatusOK, `{}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, 0)
	values, err := a.GetAllValues(context.Background(), "dev")

	require.NoError(t, err)
	assert.NotNil(t, values)
	assert.Empty(t, values)
}

func TestGetAllValues_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, 0)
	_, err := a.GetAllValues(context.Background(), "")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── invalidation ────────────────────────────────────────────────────────────

func TestInvalidateEnvironment_OnlyThatEnvironment(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeBody(w, http.StatusOK, `{"value":"`+r.URL.Query().Get("environment")+`"}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, 0)
	ctx := context.Background()

	_, err := a.GetValue(ctx, "K", "staging")
	require.NoError(t, err)
	_, err = a.GetValue(ctx, "K", "production")
	require.NoError(t, err)
	require.Equal(t, int32(2), calls.Load())

	a.InvalidateEnvironment("staging")

	v, err := a.GetValue(ctx, "K", "production")
	require.NoError(t, err)
	assert.Equal(t, "production", v)
	assert.Equal(t, int32(2), calls.Load())

	v, err = a.GetValue(ctx, "K", "staging")
	require.NoError(t, err)
	assert.Equal(t, "staging", v)
	assert.Equal(t, int32(3), calls.Load())
}

func TestGetValue_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, http.StatusOK, `{"value":1}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.GetValue(ctx, "K", "")
	assert.ErrorIs(t, err, context.Canceled)
}
