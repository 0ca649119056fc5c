// SPDX-License-Identifier: MIT
// Package: poset/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; constructors attach their method name as
// context using %w.

package builder

import "errors"

// ErrTooFewElements indicates a size parameter below the constructor's minimum.
var ErrTooFewElements = errors.New("builder: parameter too small")

// ErrTooLarge indicates a size parameter above the constructor's maximum.
var ErrTooLarge = errors.New("builder: parameter too large")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor passed to Build or Apply.
// Registry failures during construction are returned wrapped as they are,
// so callers match them with the registry sentinels.
var ErrConstructFailed = errors.New("builder: construction failed")
