// SPDX-License-Identifier: MIT
// Package: lvmaze/bintree
//
// errors.go — sentinel errors for the bintree package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Context is attached with %w at the failure site ("Generate: rows=1 ...").
//   • Generation never panics; option constructors may (see options.go).

package bintree

import "errors"

// ErrInvalidDimensions indicates rows or cols below the minimum of 2.
// The room-indexing scheme needs at least one odd row and one odd column.
var ErrInvalidDimensions = errors.New("bintree: rows and cols must be at least 2")

// ErrNeedRandSource indicates Generate was called without WithSeed or
// WithRand. There is no hidden global source.
var ErrNeedRandSource = errors.New("bintree: rng is required")
