// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package merge implements the deep merge used to fold cascade layers.
//
// Rules, applied at every node of the source tree:
//   - arrays (slices) replace the target node entirely, never concatenate;
//   - keyed structures merge key by key, keeping target-only keys;
//   - everything else (strings, numbers, booleans, nil, functions, structs)
//     overwrites the target node.
//
// Merge never mutates its inputs and the returned tree shares no maps or
// slices with either of them.
package merge

import (
	"reflect"

	"github.com/mohae/deepcopy"
)

// Merge returns source merged over target.
func Merge(target, source any) any {
	if isList(source) {
		return deepcopy.Copy(source)
	}

	src, ok := asMap(source)
	if !ok {
		return source
	}

	dst := make(map[string]any, len(src))
	if tm, ok := asMap(target); ok {
		for k, v := range tm {
			dst[k] = Merge(nil, v)
		}
	}

	for k, v := range src {
		if existing, exists := dst[k]; exists {
			dst[k] = Merge(existing, v)
		} else {
			dst[k] = Merge(nil, v)
		}
	}
	return dst
}

// Maps merges source over target and always returns a non-nil map.
func Maps(target, source map[string]any) map[string]any {
	merged, ok := Merge(target, source).(map[string]any)
	if !ok || merged == nil {
		return make(map[string]any)
	}
	return merged
}

// Fold merges layers left to right over an empty map: later layers win.
func Fold(layers ...map[string]any) map[string]any {
	out := make(map[string]any)
	for _, layer := range layers {
		out = Maps(out, layer)
	}
	return out
}

func isList(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}

// asMap views v as a string-keyed map. map[string]any is returned as is;
// other string-keyed map types are converted.
func asMap(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}
	if v == nil {
		return nil, false
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}

	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}
