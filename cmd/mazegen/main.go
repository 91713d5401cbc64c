// Command mazegen generates a binary-tree maze, optionally solves it, and
// writes it as text or PNG.
//
//	mazegen -rows 15 -cols 31 -seed 7 -solve
//	mazegen -format png -output maze.png -random-exit
//
// Defaults come from MAZE_* environment variables, read from .env when
// present.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvmaze/bintree"
	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/render"
)

var log = logrus.New()

var errUsage = errors.New("mazegen: invalid arguments")

func main() {
	log.SetOutput(os.Stderr)
	defaults, err := loadEnv()
	if err != nil {
		log.WithError(err).Error("reading environment")
		os.Exit(1)
	}
	os.Exit(run(os.Args[1:], defaults, os.Stdout))
}

// parseFlags overlays command-line flags on defaults.
func parseFlags(args []string, defaults Config) (Config, error) {
	cfg := defaults
	fs := flag.NewFlagSet("mazegen", flag.ContinueOnError)
	fs.IntVar(&cfg.Rows, "rows", defaults.Rows, "The height of the maze, in cells (at least 2).")
	fs.IntVar(&cfg.Cols, "cols", defaults.Cols, "The width of the maze, in cells (at least 2).")
	fs.Int64Var(&cfg.Seed, "seed", defaults.Seed, "Random seed. Negative picks one from the clock.")
	fs.BoolVar(&cfg.RandomExit, "random-exit", defaults.RandomExit, "Place the openings at random border cells.")
	fs.BoolVar(&cfg.Solve, "solve", defaults.Solve, "Mark the shortest path between the openings.")
	fs.StringVar(&cfg.Format, "format", defaults.Format, "Output format: text or png.")
	fs.StringVar(&cfg.Output, "output", defaults.Output, "Output file. Empty writes to stdout.")
	fs.IntVar(&cfg.CellPixels, "cell-pixels", defaults.CellPixels, "PNG cell size in pixels.")
	fs.IntVar(&cfg.Margin, "margin", defaults.Margin, "PNG white frame in pixels.")
	fs.StringVar(&cfg.LogLevel, "log-level", defaults.LogLevel, "Log level (debug, info, warn, error).")
	if err := fs.Parse(args); err != nil {
		return cfg, fmt.Errorf("%w: %v", errUsage, err)
	}
	cfg.Format = strings.ToLower(cfg.Format)
	if cfg.Format != "text" && cfg.Format != "png" {
		return cfg, fmt.Errorf("%w: unknown format %q", errUsage, cfg.Format)
	}
	if cfg.CellPixels < 1 || cfg.Margin < 0 {
		return cfg, fmt.Errorf("%w: cell-pixels must be positive and margin non-negative", errUsage)
	}
	return cfg, nil
}

// run executes one generation and returns the process exit code.
func run(args []string, defaults Config, stdout io.Writer) int {
	cfg, err := parseFlags(args, defaults)
	if err != nil {
		log.WithError(err).Error("parsing flags")
		return 1
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithError(err).Error("parsing log level")
		return 1
	}
	log.SetLevel(level)

	if cfg.Seed < 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	fields := logrus.Fields{
		"rows":        cfg.Rows,
		"cols":        cfg.Cols,
		"seed":        cfg.Seed,
		"random_exit": cfg.RandomExit,
	}

	g, err := bintree.FromSeed(cfg.Rows, cfg.Cols, cfg.RandomExit, cfg.Seed)
	if err != nil {
		log.WithFields(fields).WithError(err).Error("generating maze")
		return 1
	}
	st, err := maze.Inspect(g)
	if err != nil {
		log.WithFields(fields).WithError(err).Error("inspecting maze")
		return 1
	}
	log.WithFields(fields).WithFields(logrus.Fields{
		"open":     st.Open,
		"openings": st.Openings,
	}).Info("maze generated")

	if cfg.Solve {
		painted, out, err := maze.Render(g)
		if err != nil {
			log.WithFields(fields).WithError(err).Error("solving maze")
			return 1
		}
		entry := log.WithFields(fields).WithField("outcome", out.Kind.String())
		switch out.Kind {
		case maze.NoPath:
			entry.WithField("encircled", out.Encircled).Warn("no path between openings")
		default:
			entry.WithField("length", out.Path.Len()).Info("maze solved")
		}
		g = painted
	}

	if cfg.Output == "" {
		if err := write(stdout, g, cfg); err != nil {
			log.WithError(err).WithField("format", cfg.Format).Error("writing maze")
			return 1
		}
		return 0
	}

	f, err := os.Create(cfg.Output)
	if err != nil {
		log.WithError(err).WithField("output", cfg.Output).Error("creating output file")
		return 1
	}
	if err := write(f, g, cfg); err != nil {
		_ = f.Close()
		log.WithError(err).WithField("format", cfg.Format).Error("writing maze")
		return 1
	}
	if err := f.Close(); err != nil {
		log.WithError(err).WithField("output", cfg.Output).Error("closing output file")
		return 1
	}
	log.WithField("output", cfg.Output).Info("maze written")
	return 0
}

func write(w io.Writer, g *grid.Grid, cfg Config) error {
	if cfg.Format == "png" {
		return render.PNG(w, g, render.WithCellPixels(cfg.CellPixels), render.WithMargin(cfg.Margin))
	}
	for _, line := range grid.Format(g, grid.DefaultGlyphs) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
