// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package deferred resolves configuration values that are computed from the
// rest of the configuration.
//
// A [Func] may be registered for any top-level key by an in-process source.
// It stays in the merged tree as a placeholder until every cascade layer has
// been folded, and is then invoked once against the final snapshot. This
// lets a value set early in the cascade depend on a value overridden later.
package deferred

import (
	"fmt"
	"maps"
	"slices"

	"github.com/mohae/deepcopy"

	"github.com/MKhiriev/go-smooai-config/internal/errs"
)

// Func computes a configuration value from the merged configuration.
type Func func(config map[string]any) any

// Checker validates the value a [Func] returned for key. It is satisfied by
// *schema.Schema.
type Checker interface {
	Check(key string, value any) (any, error)
}

// IsDeferred reports whether v is a deferred value.
func IsDeferred(v any) bool {
	_, ok := v.(Func)
	return ok
}

// Pending returns the sorted keys of tree whose values are deferred.
func Pending(tree map[string]any) []string {
	var keys []string
	for k, v := range tree {
		if IsDeferred(v) {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return keys
}

// Resolve returns a copy of merged with every deferred value replaced by its
// result.
//
// Every function receives the same snapshot: merged without the unresolved
// deferred entries. Functions never observe each other's results, so the
// outcome does not depend on evaluation order. Each call gets its own deep
// copy of the snapshot and cannot affect the others.
//
// When checker is non-nil each result is validated strictly against its
// declared slot. A function that panics is reported as a validation error.
func Resolve(merged map[string]any, checker Checker) (map[string]any, error) {
	pending := Pending(merged)

	out := maps.Clone(merged)
	if out == nil {
		out = make(map[string]any)
	}
	if len(pending) == 0 {
		return out, nil
	}

	snapshot := make(map[string]any, len(merged))
	for k, v := range merged {
		if !IsDeferred(v) {
			snapshot[k] = v
		}
	}

	for _, key := range pending {
		fn := merged[key].(Func)

		value, err := call(fn, key, snapshot)
		if err != nil {
			return nil, err
		}

		if checker != nil {
			value, err = checker.Check(key, value)
			if err != nil {
				return nil, err
			}
		}
		out[key] = value
	}

	return out, nil
}

func call(fn Func, key string, snapshot map[string]any) (value any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &errs.ValidationError{
				Key:      key,
				Expected: "computed value",
				Got:      nil,
				Source:   "deferred",
				Reason:   fmt.Errorf("deferred function panicked: %v", r),
			}
		}
	}()

	view, _ := deepcopy.Copy(snapshot).(map[string]any)
	return fn(view), nil
}
