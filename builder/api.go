// SPDX-License-Identifier: MIT
// Package: poset/builder
//
// api.go - public entry points: Build, Apply and the Constructor type.
//
// Constructors are declared in impl_*.go. Each one:
//   - validates its parameters first and returns sentinel errors;
//   - inserts elements in a documented, stable order;
//   - adds relations in a stable order, skipping pairs already implied.

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/poset/registry"
)

// Constructor populates poset id of r using the resolved configuration.
type Constructor func(r *registry.Registry, id registry.PosetID, cfg builderConfig) error

// Build creates a new poset in r, applies cons in order and returns its id.
// On failure the new poset is deleted again and the first error is returned.
func Build(r *registry.Registry, bopts []BuilderOption, cons ...Constructor) (registry.PosetID, error) {
	id := r.New()
	if err := Apply(r, id, bopts, cons...); err != nil {
		_ = r.Delete(id)
		return 0, err
	}

	return id, nil
}

// Apply runs cons in order against the existing poset id. Elements created
// before a failing constructor stay in place.
func Apply(r *registry.Registry, id registry.PosetID, bopts []BuilderOption, cons ...Constructor) error {
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("builder: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(r, id, cfg); err != nil {
			return fmt.Errorf("builder: %w", err)
		}
	}

	return nil
}

// insertAll inserts names in order, tagging failures with method.
func insertAll(method string, r *registry.Registry, id registry.PosetID, names []string) error {
	for _, name := range names {
		if err := r.Insert(id, name); err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
	}

	return nil
}

// relate records a ≤ b; a pair already in the closure is not an error.
func relate(method string, r *registry.Registry, id registry.PosetID, a, b string) error {
	err := r.Add(id, a, b)
	if err == nil || errors.Is(err, registry.ErrRelationExists) {
		return nil
	}

	return fmt.Errorf("%s: %w", method, err)
}

// names returns cfg.idFn(0..n-1).
func names(cfg builderConfig, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = cfg.idFn(i)
	}

	return out
}
