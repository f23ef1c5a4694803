package keycase

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"apiUrl", "API_URL"},
		{"maxRetries", "MAX_RETRIES"},
		{"enableDebug", "ENABLE_DEBUG"},
		{"database", "DATABASE"},
		{"dbPassword", "DB_PASSWORD"},
		{"enableNewUI", "ENABLE_NEW_UI"},
		{"maintenanceMode", "MAINTENANCE_MODE"},

		// already canonical
		{"API_URL", "API_URL"},
		{"MAX_RETRIES", "MAX_RETRIES"},
		{"DATABASE", "DATABASE"},
		{"APIKEY", "APIKEY"},

		// acronyms
		{"apiURL", "API_URL"},
		{"myAPIKey", "MY_API_KEY"},
		{"APIKey", "API_KEY"},
		{"HTTPServerPort", "HTTP_SERVER_PORT"},

		// digits stay with the preceding word
		{"v2Beta", "V2_BETA"},
		{"oauth2Token", "OAUTH2_TOKEN"},
		{"retry3", "RETRY3"},

		// separators force a boundary and are dropped
		{"api_url", "API_URL"},
		{"api url", "API_URL"},
		{"enable-new-ui", "ENABLE_NEW_UI"},
		{"db.host", "DB_HOST"},
		{"__leading", "LEADING"},
		{"trailing__", "TRAILING"},
		{"Mixed_Case", "MIXED_CASE"},

		// edge cases
		{"", ""},
		{"a", "A"},
		{"A", "A"},
		{"hello", "HELLO"},
		{"---", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Derive(tt.input))
		})
	}
}

// The chain below splits into twelve words, not ten. The smooai Go SDK's
// CamelToUpperSnake (config/utils.go) produces the same twelve, and keys
// stored by that SDK must derive identically here.
func TestDerive_LongCamelChain(t *testing.T) {
	key := "myAPIKeyV2BetaTestProdStagingDevLocalTestProd"

	assert.Equal(t, "MY_API_KEY_V2_BETA_TEST_PROD_STAGING_DEV_LOCAL_TEST_PROD", Derive(key))
	assert.Equal(t,
		[]string{"my", "API", "Key", "V2", "Beta", "Test", "Prod", "Staging", "Dev", "Local", "Test", "Prod"},
		Words(key),
	)
}

func TestIsCanonical(t *testing.T) {
	assert.True(t, IsCanonical("A"))
	assert.True(t, IsCanonical("API_URL_2"))
	assert.False(t, IsCanonical("_API"))
	assert.False(t, IsCanonical("API__URL"))
	assert.False(t, IsCanonical("Api"))
	assert.False(t, IsCanonical(""))
}

func TestDerive_Idempotent_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("derive is idempotent on identifiers", prop.ForAll(
		func(key string) bool {
			once := Derive(key)
			return Derive(once) == once
		},
		gen.Identifier(),
	))

	properties.Property("derive output is canonical", prop.ForAll(
		func(key string) bool {
			out := Derive(key)
			return out == "" || IsCanonical(out)
		},
		gen.Identifier(),
	))

	properties.TestingRun(t)
}
