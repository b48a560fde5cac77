// SPDX-License-Identifier: MIT
// Package: waypath/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Constructors attach context with %w and never panic.

package builder

import "errors"

// ErrTooSmall indicates a board dimension below the constructor's minimum.
var ErrTooSmall = errors.New("builder: board too small")

// ErrInvalidProbability indicates a wall probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")
