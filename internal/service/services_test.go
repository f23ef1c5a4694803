package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-smooai-config/internal/config"
	"github.com/MKhiriev/go-smooai-config/internal/locator"
	"github.com/MKhiriev/go-smooai-config/internal/schema"
	"github.com/MKhiriev/go-smooai-config/models"
)

func writeConfigDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), ".smooai-config")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestNewServices_EndToEnd(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{
		"default.json":    `{"apiUrl": "http://localhost:3000", "maxRetries": 3}`,
		"production.yaml": "apiUrl: https://api.example.com\n",
	})

	settings := &config.Settings{
		Discovery: config.Discovery{ConfigDir: dir},
		Runtime: config.Runtime{
			Env:           "production",
			CloudProvider: models.Unknown,
		},
	}
	def := schema.MustDefine(
		[]schema.FieldDef{schema.Def("apiUrl", schema.String), schema.Def("maxRetries", schema.Number)},
		nil, nil,
	)

	svcs, err := NewServices(settings, Deps{
		Schema:  def,
		Build:   models.NewAppBuildInfo("1.2.3", "", ""),
		Manager: ManagerOptions{Environ: map[string]string{}},
	}, nil)
	require.NoError(t, err)

	ctx := context.Background()

	snap, err := svcs.Resolver.Resolve(ctx)
	require.NoError(t, err)
	v, _ := snap.Get("API_URL")
	assert.Equal(t, "https://api.example.com", v)

	v, err = svcs.ConfigManager.GetPublicConfig(ctx, "maxRetries")
	require.NoError(t, err)
	assert.Equal(t, float64(3), v)

	located, err := svcs.Locator.Locate(locator.Options{})
	require.NoError(t, err)
	assert.Equal(t, dir, located)

	assert.Equal(t, "1.2.3", svcs.AppInfo.GetAppVersion(ctx).Version)
}

func TestNewServices_BadRemoteSettings(t *testing.T) {
	settings := &config.Settings{Remote: config.Remote{APIURL: "http://"}}

	_, err := NewServices(settings, Deps{}, nil)
	assert.Error(t, err)
}
