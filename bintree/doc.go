// Package bintree generates perfect mazes with the binary-tree method.
//
// What
//
//   - Generate(rows, cols, opts...) returns a *grid.Grid whose Open cells
//     form a spanning tree over the rooms (odd row, odd column cells), plus
//     exactly two Opening cells on the border.
//   - FromSeed(rows, cols, randomExit, seed) is the same with explicit
//     arguments.
//
// Options
//
//   - WithSeed(seed) / WithRand(r): the random source. One is required;
//     there is no package-level generator.
//   - WithRandomExit(true): openings drawn uniformly from border cells
//     (always distinct). Default false: fixed at (0, cols−2) and (rows−1, 1).
//
// Errors
//
//   - ErrInvalidDimensions: rows or cols < 2.
//   - ErrNeedRandSource: no RNG configured.
//
// Determinism
//
//	Rooms are carved in row-major order and the RNG is consumed in a fixed
//	pattern (one Intn(2) per room with two choices, then two draws for random
//	exits), so a seed fully determines the grid.
package bintree
