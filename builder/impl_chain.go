// SPDX-License-Identifier: MIT
// Package: poset/builder
//
// impl_chain.go - Chain(n) and Antichain(n).
//
// Contract:
//   - 1 ≤ n ≤ 4096 (ErrTooFewElements / ErrTooLarge).
//   - Elements are named cfg.idFn(0..n-1) and inserted in index order.
//   - Chain adds the covers i → i+1, so i ≤ j exactly when i ≤ j as indices.
//   - Antichain adds nothing: every pair of distinct elements is incomparable.
//
// Complexity: Chain O(n²) closure work in total; Antichain O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/poset/registry"
)

const (
	methodChain     = "Chain"
	methodAntichain = "Antichain"
	minChainLen     = 1
	maxElements     = 1 << 12
)

// Chain returns a Constructor for the total order on n elements.
func Chain(n int) Constructor {
	return func(r *registry.Registry, id registry.PosetID, cfg builderConfig) error {
		if n < minChainLen {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainLen, ErrTooFewElements)
		}
		if n > maxElements {
			return fmt.Errorf("%s: n=%d > max=%d: %w", methodChain, n, maxElements, ErrTooLarge)
		}
		ids := names(cfg, n)
		if err := insertAll(methodChain, r, id, ids); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := relate(methodChain, r, id, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Antichain returns a Constructor for n pairwise incomparable elements.
func Antichain(n int) Constructor {
	return func(r *registry.Registry, id registry.PosetID, cfg builderConfig) error {
		if n < minChainLen {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodAntichain, n, minChainLen, ErrTooFewElements)
		}
		if n > maxElements {
			return fmt.Errorf("%s: n=%d > max=%d: %w", methodAntichain, n, maxElements, ErrTooLarge)
		}

		return insertAll(methodAntichain, r, id, names(cfg, n))
	}
}
