package render

import "fmt"

const (
	// DefaultCellPixels is the side length of one cell in pixels.
	DefaultCellPixels = 8
	// DefaultMargin is the width of the white frame PNG adds.
	DefaultMargin = 0
)

// Option customizes Image and PNG.
type Option func(*config)

type config struct {
	cellPixels int
	margin     int
}

func newConfig(opts ...Option) config {
	cfg := config{cellPixels: DefaultCellPixels, margin: DefaultMargin}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithCellPixels sets the side length of one cell. Panics if n < 1.
func WithCellPixels(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("render: WithCellPixels(%d)", n))
	}
	return func(c *config) {
		c.cellPixels = n
	}
}

// WithMargin sets a white frame of n pixels around the maze. Panics if n < 0.
func WithMargin(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("render: WithMargin(%d)", n))
	}
	return func(c *config) {
		c.margin = n
	}
}
