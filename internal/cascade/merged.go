package cascade

import (
	"maps"
	"slices"

	"github.com/MKhiriev/go-smooai-config/internal/merge"
	"github.com/MKhiriev/go-smooai-config/models"
)

// MergedConfig is a fully resolved configuration snapshot. It is never
// modified after construction; accessors return copies.
type MergedConfig struct {
	values  map[string]any
	context models.RuntimeContext
	sources []string
}

// NewMergedConfig wraps resolved values. values is copied.
func NewMergedConfig(values map[string]any, rc models.RuntimeContext, sources []string) *MergedConfig {
	return &MergedConfig{
		values:  merge.Maps(nil, values),
		context: rc,
		sources: slices.Clone(sources),
	}
}

// Get returns the value stored under the canonical key.
func (m *MergedConfig) Get(key string) (any, bool) {
	v, ok := m.values[key]
	if !ok {
		return nil, false
	}
	return merge.Merge(nil, v), true
}

// Values returns a copy of every value.
func (m *MergedConfig) Values() map[string]any {
	return merge.Maps(nil, m.values)
}

// Keys returns the canonical keys in sorted order.
func (m *MergedConfig) Keys() []string {
	return slices.Sorted(maps.Keys(m.values))
}

// Context returns the runtime context the snapshot was resolved for.
func (m *MergedConfig) Context() models.RuntimeContext {
	return m.context
}

// Sources lists the sources merged into the snapshot, in cascade order.
func (m *MergedConfig) Sources() []string {
	return slices.Clone(m.sources)
}
