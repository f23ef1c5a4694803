package cascade

import (
	"context"
	"fmt"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-smooai-config/internal/deferred"
	"github.com/MKhiriev/go-smooai-config/internal/errs"
	"github.com/MKhiriev/go-smooai-config/internal/locator"
	"github.com/MKhiriev/go-smooai-config/internal/schema"
	"github.com/MKhiriev/go-smooai-config/internal/source"
	"github.com/MKhiriev/go-smooai-config/models"
)

const dir = "/app/.smooai-config"

func newFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(dir, 0o755))
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, dir+"/"+name, []byte(content), 0o644))
	}
	return fs
}

func newLoader(fs afero.Fs, opts ...Option) *Loader {
	loc := locator.New(
		locator.WithFs(fs),
		locator.WithGetwd(func() (string, error) { return "/app", nil }),
	)
	return New(append([]Option{WithLocator(loc)}, opts...)...)
}

var fullContext = models.RuntimeContext{IsLocal: true, Env: "development", Provider: "aws", Region: "us-east-1"}

// ── candidates ────────────────────────────────────────────────────────────────

func TestCandidates(t *testing.T) {
	tests := []struct {
		name     string
		rc       models.RuntimeContext
		expected []string
	}{
		{"everything known", fullContext, []string{"default", "local", "development", "development.aws", "development.aws.us-east-1"}},
		{"not local", models.RuntimeContext{Env: "production", Provider: "gcp", Region: "us-central1"}, []string{"default", "production", "production.gcp", "production.gcp.us-central1"}},
		{"unknown provider", models.RuntimeContext{Env: "production", Provider: "unknown", Region: "us-east-1"}, []string{"default", "production"}},
		{"unknown region", models.RuntimeContext{Env: "staging", Provider: "azure", Region: "unknown"}, []string{"default", "staging", "staging.azure"}},
		{"no env", models.RuntimeContext{IsLocal: true, Provider: "aws", Region: "us-east-1"}, []string{"default", "local"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Candidates(tt.rc))
		})
	}
}

// ── resolution ────────────────────────────────────────────────────────────────

func TestLoad_CascadeOrder(t *testing.T) {
	fs := newFs(t, map[string]string{
		"default.json":                   `{"A":1,"B":1}`,
		"local.json":                     `{"A":2}`,
		"development.json":               `{"B":2}`,
		"development.aws.json":           `{"A":3}`,
		"development.aws.us-east-1.json": `{"A":4}`,
		"production.json":                `{"A":99,"B":99}`,
	})

	cfg, err := newLoader(fs).Load(context.Background(), nil, fullContext)

	require.NoError(t, err)
	a, _ := cfg.Get("A")
	b, _ := cfg.Get("B")
	assert.EqualValues(t, 4, a)
	assert.EqualValues(t, 2, b)
	assert.Equal(t, []string{
		dir + "/default.json",
		dir + "/local.json",
		dir + "/development.json",
		dir + "/development.aws.json",
		dir + "/development.aws.us-east-1.json",
	}, cfg.Sources())
	assert.Equal(t, fullContext, cfg.Context())
}

func TestLoad_OptionalFilesMayBeAbsent(t *testing.T) {
	fs := newFs(t, map[string]string{
		"default.json":         `{"A":1}`,
		"development.aws.json": `{"A":3}`,
	})

	cfg, err := newLoader(fs).Load(context.Background(), nil, fullContext)

	require.NoError(t, err)
	a, _ := cfg.Get("A")
	assert.EqualValues(t, 3, a)
	assert.Len(t, cfg.Sources(), 2)
}

func TestLoad_InjectsBuiltIns(t *testing.T) {
	fs := newFs(t, map[string]string{"default.json": `{"ENV":"spoofed","API_URL":"x"}`})

	cfg, err := newLoader(fs).Load(context.Background(), nil, fullContext)

	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"API_URL":        "x",
		"ENV":            "development",
		"IS_LOCAL":       true,
		"REGION":         "us-east-1",
		"CLOUD_PROVIDER": "aws",
	}, cfg.Values())
	assert.Equal(t, []string{"API_URL", "CLOUD_PROVIDER", "ENV", "IS_LOCAL", "REGION"}, cfg.Keys())
}

func TestLoad_MissingDefault(t *testing.T) {
	fs := newFs(t, map[string]string{"development.json": `{"A":1}`})

	_, err := newLoader(fs).Load(context.Background(), nil, fullContext)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrMissingRequiredFile)
	assert.Contains(t, err.Error(), dir)
}

func TestLoad_DiscoveryErrorPropagates(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/app", 0o755))

	_, err := newLoader(fs).Load(context.Background(), nil, fullContext)

	assert.ErrorIs(t, err, errs.ErrDiscovery)
}

func TestLoad_ParseErrorCarriesPath(t *testing.T) {
	fs := newFs(t, map[string]string{
		"default.json":     `{"A":1}`,
		"development.yaml": "A: [unclosed",
	})

	_, err := newLoader(fs).Load(context.Background(), nil, fullContext)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrLoad)
	var le *errs.LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, dir+"/development.yaml", le.Path)
}

func TestLoad_MixedFormats(t *testing.T) {
	fs := newFs(t, map[string]string{
		"default.json":          `{"API_URL":"https://default","HOSTS":["a","b"]}`,
		"development.yaml":      "HOSTS: [c]\n",
		"development.aws.toml":  "API_URL = \"https://aws\"\n",
		"development.aws.cue":   "API_URL: \"https://cue\"\n",
		"local.env":             "MAX_RETRIES=7\n",
		"development.notes.txt": "ignored",
	})

	cfg, err := newLoader(fs).Load(context.Background(), nil, fullContext)

	require.NoError(t, err)
	values := cfg.Values()
	assert.Equal(t, "https://aws", values["API_URL"], "toml outranks cue")
	assert.Equal(t, []any{"c"}, values["HOSTS"], "arrays replace")
	assert.Equal(t, "7", values["MAX_RETRIES"])
}

func TestLoad_LoaderPriority(t *testing.T) {
	fs := newFs(t, map[string]string{
		"default.yaml": "A: yaml\n",
		"default.json": `{"A":"json"}`,
		"default.ini":  "A=ini",
	})

	cfg, err := newLoader(fs).Load(context.Background(), nil, models.RuntimeContext{})
	require.NoError(t, err)
	a, _ := cfg.Get("A")
	assert.Equal(t, "json", a)

	yamlFirst := source.NewRegistry(source.YAMLLoader{}, source.JSONLoader{})
	cfg, err = newLoader(fs, WithRegistry(yamlFirst)).Load(context.Background(), nil, models.RuntimeContext{})
	require.NoError(t, err)
	a, _ = cfg.Get("A")
	assert.Equal(t, "yaml", a)
}

func TestLoad_StemMustMatchWholeName(t *testing.T) {
	fs := newFs(t, map[string]string{
		"default.json":         `{"A":1}`,
		"development.aws.json": `{"A":3}`,
		"developments.json":    `{"A":5}`,
	})

	rc := models.RuntimeContext{Env: "development", Provider: "unknown"}
	cfg, err := newLoader(fs).Load(context.Background(), nil, rc)

	require.NoError(t, err)
	a, _ := cfg.Get("A")
	assert.EqualValues(t, 1, a)
	assert.Equal(t, []string{dir + "/default.json"}, cfg.Sources())
}

// ── schema ────────────────────────────────────────────────────────────────────

func TestLoad_CoercesThroughSchema(t *testing.T) {
	s := schema.MustDefine(
		[]schema.FieldDef{schema.Def("apiUrl", schema.String), schema.Def("maxRetries", schema.Number)},
		nil,
		[]schema.FieldDef{schema.Def("enableNewUI", schema.Boolean)},
	)
	fs := newFs(t, map[string]string{
		"default.json": `{"apiUrl":"https://a","maxRetries":"3","enableNewUI":"1"}`,
		"local.env":    "MAX_RETRIES=5\n",
	})

	cfg, err := newLoader(fs).Load(context.Background(), s, fullContext)

	require.NoError(t, err)
	values := cfg.Values()
	assert.Equal(t, "https://a", values["API_URL"])
	assert.Equal(t, 5, values["MAX_RETRIES"])
	assert.Equal(t, true, values["ENABLE_NEW_UI"])
}

func TestLoad_ValidationErrorAborts(t *testing.T) {
	s := schema.MustDefine([]schema.FieldDef{schema.Def("maxRetries", schema.Number)}, nil, nil)
	fs := newFs(t, map[string]string{
		"default.json":     `{"maxRetries":1}`,
		"development.json": `{"maxRetries":"lots"}`,
	})

	_, err := newLoader(fs).Load(context.Background(), s, fullContext)

	require.ErrorIs(t, err, errs.ErrValidation)
	var ve *errs.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, dir+"/development.json", ve.Source)
}

// ── natives and deferred values ───────────────────────────────────────────────

func TestLoad_NativesWinOverFiles(t *testing.T) {
	fs := newFs(t, map[string]string{
		"default.json":     `{"A":"file"}`,
		"development.json": `{"B":"file"}`,
	})
	natives := source.Natives{}.Register("development", map[string]any{"B": "native"})

	cfg, err := newLoader(fs, WithNatives(natives)).Load(context.Background(), nil, fullContext)

	require.NoError(t, err)
	values := cfg.Values()
	assert.Equal(t, "file", values["A"])
	assert.Equal(t, "native", values["B"])
	assert.Contains(t, cfg.Sources(), "native:development")
}

func TestLoad_NativesOnly(t *testing.T) {
	natives := source.Natives{}.
		Register("default", map[string]any{"X": 10}).
		Register("development", map[string]any{
			"Y": deferred.Func(func(cfg map[string]any) any { return cfg["X"].(int) * 2 }),
		})

	cfg, err := New(WithNatives(natives)).Load(context.Background(), nil, fullContext)

	require.NoError(t, err)
	x, _ := cfg.Get("X")
	y, _ := cfg.Get("Y")
	assert.Equal(t, 10, x)
	assert.Equal(t, 20, y)

	_, err = New().Load(context.Background(), nil, fullContext)
	assert.ErrorIs(t, err, errs.ErrMissingRequiredFile)
}

func TestLoad_DeferredSeesRegionOverride(t *testing.T) {
	s := schema.MustDefine(
		[]schema.FieldDef{schema.Def("host", schema.String), schema.Def("apiUrl", schema.String)},
		nil, nil,
	)
	fs := newFs(t, map[string]string{
		"default.json":                   `{"host":"localhost"}`,
		"development.aws.us-east-1.json": `{"host":"use1.internal"}`,
	})
	natives := source.Natives{}.Register("development.aws", map[string]any{
		"apiUrl": deferred.Func(func(cfg map[string]any) any {
			return fmt.Sprintf("https://%s/%s", cfg["HOST"], cfg["REGION"])
		}),
	})

	cfg, err := newLoader(fs, WithNatives(natives)).Load(context.Background(), s, fullContext)

	require.NoError(t, err)
	url, _ := cfg.Get("API_URL")
	assert.Equal(t, "https://use1.internal/us-east-1", url)
}

func TestLoad_DeferredWrongTypeFails(t *testing.T) {
	s := schema.MustDefine([]schema.FieldDef{schema.Def("port", schema.Number)}, nil, nil)
	natives := source.Natives{}.Register("default", map[string]any{
		"port": deferred.Func(func(map[string]any) any { return "8080" }),
	})

	_, err := New(WithNatives(natives)).Load(context.Background(), s, fullContext)

	require.ErrorIs(t, err, errs.ErrValidation)
	assert.Contains(t, err.Error(), "PORT")
}

func TestLoad_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	natives := source.Natives{}.Register("default", map[string]any{"A": 1})

	_, err := New(WithNatives(natives)).Load(ctx, nil, fullContext)

	assert.ErrorIs(t, err, context.Canceled)
}

// ── snapshot ──────────────────────────────────────────────────────────────────

func TestMergedConfig_IsImmutable(t *testing.T) {
	in := map[string]any{"DB": map[string]any{"HOST": "a"}}
	cfg := NewMergedConfig(in, models.RuntimeContext{}, nil)

	in["DB"].(map[string]any)["HOST"] = "changed"
	got, ok := cfg.Get("DB")
	require.True(t, ok)
	assert.Equal(t, map[string]any{"HOST": "a"}, got)

	got.(map[string]any)["HOST"] = "changed"
	cfg.Values()["DB"].(map[string]any)["HOST"] = "changed"
	again, _ := cfg.Get("DB")
	assert.Equal(t, map[string]any{"HOST": "a"}, again)

	_, ok = cfg.Get("MISSING")
	assert.False(t, ok)
}

func TestEscapeGlob(t *testing.T) {
	assert.Equal(t, `dev\[1\]`, escapeGlob("dev[1]"))
	assert.Equal(t, "production.aws", escapeGlob("production.aws"))
}
