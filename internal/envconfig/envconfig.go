// Package envconfig reads configuration overrides from environment variables.
//
// Only variables naming a canonical schema key (optionally behind a prefix)
// are picked up. Values are strings and are converted according to the slot
// type of the key.
package envconfig

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/MKhiriev/go-smooai-config/internal/schema"
	"github.com/MKhiriev/go-smooai-config/internal/utils"
	"github.com/MKhiriev/go-smooai-config/models"
)

// Load extracts schema keys from environ.
//
// A variable is used when its name, with prefix removed if present, is a
// declared non-built-in canonical key. When both PREFIX_KEY and KEY are set
// the prefixed one wins. Booleans use [utils.CoerceBoolean]; numbers are
// parsed and kept as strings when unparsable; external slots are decoded as
// JSON when possible. The built-in keys are always set from rc.
//
// Values are not validated here. Callers pass the result through
// [schema.Schema.Coerce] so an unparsable number or a value rejected by an
// external validator surfaces as a ValidationError.
func Load(s *schema.Schema, prefix string, environ map[string]string, rc models.RuntimeContext) map[string]any {
	result := make(map[string]any)

	for _, key := range s.Keys() {
		if schema.IsBuiltIn(key) {
			continue
		}

		raw, ok := lookup(environ, prefix, key)
		if !ok {
			continue
		}

		field, _ := s.Field(key)
		result[key] = convert(field.Type.Kind(), raw)
	}

	for k, v := range schema.BuiltInValues(rc) {
		result[k] = v
	}
	return result
}

// FromOS runs [Load] against the process environment.
func FromOS(s *schema.Schema, prefix string, rc models.RuntimeContext) map[string]any {
	return Load(s, prefix, env.ToMap(os.Environ()), rc)
}

func lookup(environ map[string]string, prefix, key string) (string, bool) {
	if prefix != "" {
		if v, ok := environ[prefix+key]; ok {
			return v, true
		}
	}
	v, ok := environ[key]
	return v, ok
}

func convert(kind schema.Kind, raw string) any {
	switch kind {
	case schema.KindBoolean:
		return utils.CoerceBoolean(raw)
	case schema.KindNumber:
		if n, err := utils.ParseNumber(raw); err == nil {
			return n
		}
	case schema.KindExternal:
		var parsed any
		if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &parsed); err == nil {
			return parsed
		}
	}
	return raw
}
