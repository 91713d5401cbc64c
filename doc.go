// Package lvmaze generates, analyzes and solves rectangular grid mazes.
//
// A maze is a grid of cells, each a Wall, Open, or Opening (an entrance
// or exit on the border). The work is split into small packages that each
// own one stage:
//
//	grid/      — the Grid, Coord, Direction and Path types, text glyphs
//	bintree/   — binary-tree carving with fixed or random openings
//	exits/     — opening classification and encircled-opening checks
//	floodfill/ — shortest paths by labeled flood fill and backtracking
//	overlay/   — paints a path onto a display copy of a grid
//	maze/      — the analyze → solve → overlay pipeline, perfect-maze checks
//	render/    — raster images and PNG output
//
// Quick start:
//
//	g, err := bintree.FromSeed(15, 31, false, 42)
//	if err != nil {
//		return err
//	}
//	painted, out, err := maze.Render(g)
//	if err != nil {
//		return err
//	}
//	if out.Kind == maze.Solved {
//		for _, line := range grid.Format(painted, grid.DefaultGlyphs) {
//			fmt.Println(line)
//		}
//	}
//
// Paths returned by floodfill and maze run from the goal back to the start;
// use Result.Forward or Path.Reversed for the opposite order.
//
// The cmd/mazegen command wraps the pipeline for the terminal.
//
// None of the library packages log or print; failures are returned as
// wrapped sentinel errors that callers match with errors.Is.
package lvmaze
