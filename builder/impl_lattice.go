// SPDX-License-Identifier: MIT
// Package: poset/builder
//
// impl_lattice.go - BooleanLattice(k) and Divisors(n).
//
// BooleanLattice:
//   - 1 ≤ k ≤ 12 (ErrTooFewElements / ErrTooLarge).
//   - Elements are the subsets of a k-set, named as k-digit bit strings
//     ("000", "001", ...), ordered by inclusion.
//   - Covers s → s ∪ {i} are added in increasing (s, i) order.
//
// Divisors:
//   - 1 ≤ n ≤ 1_000_000 (ErrTooFewElements / ErrTooLarge).
//   - Elements are the divisors of n in decimal, ordered by divisibility.
//
// Complexity: BooleanLattice O(2ᵏ) elements, O(4ᵏ) closure work;
// Divisors O(√n + d²) for d divisors.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/poset/registry"
)

const (
	methodBoolean  = "BooleanLattice"
	methodDivisors = "Divisors"
	minBooleanRank = 1
	maxBooleanRank = 12
	minDivisorsN   = 1
	maxDivisorsN   = 1_000_000
)

// BooleanLattice returns a Constructor for the subsets of a k-element set.
func BooleanLattice(k int) Constructor {
	return func(r *registry.Registry, id registry.PosetID, _ builderConfig) error {
		switch {
		case k < minBooleanRank:
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodBoolean, k, minBooleanRank, ErrTooFewElements)
		case k > maxBooleanRank:
			return fmt.Errorf("%s: k=%d > max=%d: %w", methodBoolean, k, maxBooleanRank, ErrTooLarge)
		}
		size := 1 << k
		bits := func(s int) string { return fmt.Sprintf("%0*b", k, s) }

		ids := make([]string, size)
		for s := range ids {
			ids[s] = bits(s)
		}
		if err := insertAll(methodBoolean, r, id, ids); err != nil {
			return err
		}
		for s := 0; s < size; s++ {
			for i := 0; i < k; i++ {
				if s&(1<<i) != 0 {
					continue
				}
				if err := relate(methodBoolean, r, id, ids[s], ids[s|1<<i]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Divisors returns a Constructor for the divisors of n under divisibility.
func Divisors(n int) Constructor {
	return func(r *registry.Registry, id registry.PosetID, _ builderConfig) error {
		switch {
		case n < minDivisorsN:
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodDivisors, n, minDivisorsN, ErrTooFewElements)
		case n > maxDivisorsN:
			return fmt.Errorf("%s: n=%d > max=%d: %w", methodDivisors, n, maxDivisorsN, ErrTooLarge)
		}

		divs := divisorsOf(n)
		ids := make([]string, len(divs))
		for i, d := range divs {
			ids[i] = strconv.Itoa(d)
		}
		if err := insertAll(methodDivisors, r, id, ids); err != nil {
			return err
		}
		for i, d := range divs {
			for j := i + 1; j < len(divs); j++ {
				if divs[j]%d != 0 {
					continue
				}
				if err := relate(methodDivisors, r, id, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// divisorsOf lists the divisors of n in increasing order.
func divisorsOf(n int) []int {
	var low, high []int
	for d := 1; d*d <= n; d++ {
		if n%d != 0 {
			continue
		}
		low = append(low, d)
		if d*d != n {
			high = append(high, n/d)
		}
	}
	for i := len(high) - 1; i >= 0; i-- {
		low = append(low, high[i])
	}

	return low
}
