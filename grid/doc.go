// Package grid is the shared 2-D cell buffer used by every maze stage.
//
// What:
//
//   - Grid is a fixed rows×cols rectangle of Cell values, row-major, 0-indexed.
//   - Cell is a tagged state: Wall (the zero value), Open or Opening.
//   - Coord addresses a cell as (Row, Col); Direction steps between cells.
//   - Path is an ordered, 4-connected sequence of Coords.
//
// Conventions:
//
//   - New initializes every cell to Wall.
//   - Get and Set fail with ErrOutOfBounds for coordinates outside the grid;
//     Lookup is the non-erroring variant used inside scans.
//   - Directions is the single declared neighbor order {Up, Down, Left, Right}.
//     Neighbors, Components and all callers in this module iterate in that
//     order, which is what makes tie-breaks reproducible.
//   - Grids are values owned by their caller. Stages that need to change a
//     grid Clone it first; nothing in this module aliases a caller's grid.
//
// Display:
//
//	Format and Parse convert to and from rows of runes. The glyphs are chosen
//	by the caller through Glyphs; DefaultGlyphs is only a convenience.
//
// Complexity:
//
//   - Get/Set/Lookup/InBounds: O(1).
//   - Find/Count/Clone/Equal/Format: O(rows·cols).
//   - Components: O(rows·cols·4) time, O(rows·cols) memory.
package grid
