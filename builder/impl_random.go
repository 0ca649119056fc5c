// SPDX-License-Identifier: MIT
// Package: poset/builder
//
// impl_random.go - RandomOrder(n, p).
//
// Contract:
//   - 1 ≤ n ≤ 4096 (ErrTooFewElements / ErrTooLarge), p ∈ [0,1] and not NaN
//     (ErrInvalidProbability),
//     cfg.rng set (ErrNeedRandSource), checked in that order.
//   - Elements cfg.idFn(0..n-1); for every index pair i < j, in increasing
//     (i, j) order, one draw decides whether i ≤ j is requested.
//   - Every pair is drawn for, even when already implied, so the RNG stream
//     and therefore the result depend only on (n, p, seed).
//
// Complexity: O(n²) draws; closure work bounded by O(n³).

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/poset/registry"
)

const (
	methodRandomOrder = "RandomOrder"
	minProbability    = 0.0
	maxProbability    = 1.0
)

// RandomOrder returns a Constructor for a random partial order on n elements
// that is compatible with index order.
func RandomOrder(n int, p float64) Constructor {
	return func(r *registry.Registry, id registry.PosetID, cfg builderConfig) error {
		if n < minChainLen {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomOrder, n, minChainLen, ErrTooFewElements)
		}
		if n > maxElements {
			return fmt.Errorf("%s: n=%d > max=%d: %w", methodRandomOrder, n, maxElements, ErrTooLarge)
		}
		if math.IsNaN(p) || p < minProbability || p > maxProbability {
			return fmt.Errorf("%s: p=%g: %w", methodRandomOrder, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomOrder, ErrNeedRandSource)
		}

		ids := names(cfg, n)
		if err := insertAll(methodRandomOrder, r, id, ids); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := relate(methodRandomOrder, r, id, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
