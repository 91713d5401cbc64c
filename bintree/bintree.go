// SPDX-License-Identifier: MIT
// Package: lvmaze/bintree
//
// bintree.go — binary-tree perfect-maze carving.
//
// Canonical model:
//   • Rooms are the cells at odd row and odd column; everything else starts
//     as Wall.
//   • Rooms are visited once, row-major. Each room carves exactly one wall:
//     towards the room above (r−2, c) or the room to the right (r, c+2).
//     Above exists iff r−2 ≥ 1; right exists iff c+2 ≤ cols−1.
//   • When both exist a single rng.Intn(2) draw picks (0 = up, 1 = right).
//     When one exists it is carved without a draw. The top-right room has
//     neither and carves nothing.
//   • Two distinct border cells become Opening.
//
// Invariants:
//   • R rooms yield R−1 carved walls; the open cells form a tree
//     (connected, acyclic) before openings are placed.
//   • Same seed, same dimensions, same options → identical grid.
//
// Complexity:
//   • Time:  O(rows·cols).
//   • Space: O(rows·cols) for the grid; O(rows+cols) for the border list.

package bintree

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/grid"
)

const (
	methodGenerate = "Generate"
	// minDim is the smallest rows/cols with at least one room.
	minDim = 2
)

// Generate builds a rows×cols perfect maze with two openings.
// An RNG is required (WithSeed or WithRand).
// Returns ErrInvalidDimensions if rows or cols < 2, ErrNeedRandSource if no
// RNG was configured.
func Generate(rows, cols int, opts ...Option) (*grid.Grid, error) {
	if rows < minDim || cols < minDim {
		return nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
			methodGenerate, rows, cols, minDim, ErrInvalidDimensions)
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, ErrNeedRandSource)
	}

	g, err := grid.New(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}

	rooms := markRooms(g)
	for _, room := range rooms {
		carve(g, room, cfg)
	}
	placeOpenings(g, cfg)

	return g, nil
}

// FromSeed is Generate with an explicit seed and exit policy.
func FromSeed(rows, cols int, randomExit bool, seed int64) (*grid.Grid, error) {
	return Generate(rows, cols, WithSeed(seed), WithRandomExit(randomExit))
}

// IsRoom reports whether c is a room position: odd row and odd column.
func IsRoom(c grid.Coord) bool {
	return c.Row%2 == 1 && c.Col%2 == 1
}

// RoomCount returns the number of rooms in a rows×cols maze.
func RoomCount(rows, cols int) int {
	if rows < 1 || cols < 1 {
		return 0
	}
	return (rows / 2) * (cols / 2)
}

// markRooms opens every room and returns them in row-major order.
func markRooms(g *grid.Grid) []grid.Coord {
	rooms := make([]grid.Coord, 0, RoomCount(g.Rows(), g.Cols()))
	for r := 1; r < g.Rows(); r += 2 {
		for c := 1; c < g.Cols(); c += 2 {
			room := grid.At(r, c)
			_ = g.Set(room, grid.Open) // in bounds by construction
			rooms = append(rooms, room)
		}
	}
	return rooms
}

// carve removes the wall between room and one of its up/right room
// neighbors, drawing from the RNG only when both are available.
func carve(g *grid.Grid, room grid.Coord, cfg config) {
	canUp := room.Row-2 >= 1
	canRight := room.Col+2 <= g.Cols()-1

	var dir grid.Direction
	switch {
	case canUp && canRight:
		if cfg.rng.Intn(2) == 0 {
			dir = grid.Up
		} else {
			dir = grid.Right
		}
	case canUp:
		dir = grid.Up
	case canRight:
		dir = grid.Right
	default:
		return
	}
	_ = g.Set(room.Add(dir), grid.Open) // the wall between two in-bounds rooms
}

// placeOpenings marks two distinct border cells as Opening.
// Fixed exits are (0, cols−2) and (rows−1, 1).
func placeOpenings(g *grid.Grid, cfg config) {
	var in, out grid.Coord
	if cfg.randomExit {
		border := g.Border()
		i := cfg.rng.Intn(len(border))
		j := cfg.rng.Intn(len(border) - 1)
		if j >= i {
			j++
		}
		in, out = border[i], border[j]
	} else {
		in = grid.At(0, g.Cols()-2)
		out = grid.At(g.Rows()-1, 1)
	}
	_ = g.Set(in, grid.Opening)
	_ = g.Set(out, grid.Opening)
}
