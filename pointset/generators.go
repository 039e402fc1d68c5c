// SPDX-License-Identifier: MIT
package pointset

import (
	"math"

	"github.com/katalvlaran/qedelaunay/predicates"
)

// Regular returns n points evenly spaced on a circle of the given
// radius, starting at angle 0 and proceeding counterclockwise — the
// standard stress case for cocircular-point handling (every adjacent
// 4-tuple sampled from a regular n-gon sits on one circle by
// construction). n must be at least 3; radius must be positive.
func Regular(n int, radius float64, opts ...Option) ([]predicates.Point, error) {
	if n < 3 {
		return nil, ErrTooFewPoints
	}
	if radius <= 0 {
		return nil, ErrInvalidRadius
	}
	cfg := newConfig(opts...)

	pts := make([]predicates.Point, n)
	spacing := radius * 2 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = jitter(predicates.Point{
			X: radius * math.Cos(theta),
			Y: radius * math.Sin(theta),
		}, cfg, spacing)
	}

	return pts, nil
}

// Grid returns a rows-by-cols lattice of points spaced one unit apart,
// row-major (index = row*cols + col), origin at (0,0). rows and cols
// must each be at least 1, and rows*cols must be at least 2.
func Grid(rows, cols int, opts ...Option) ([]predicates.Point, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if rows*cols < 2 {
		return nil, ErrTooFewPoints
	}
	cfg := newConfig(opts...)

	pts := make([]predicates.Point, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			pts = append(pts, jitter(predicates.Point{X: float64(c), Y: float64(r)}, cfg, 1))
		}
	}

	return pts, nil
}

// Collinear returns n points spaced one unit apart along the x axis,
// starting at (0,0) — the degenerate input every Delaunay
// implementation must handle without panicking or fabricating a
// triangle: the builder is expected to report zero triangles. n must
// be at least 2.
func Collinear(n int, opts ...Option) ([]predicates.Point, error) {
	if n < 2 {
		return nil, ErrTooFewPoints
	}
	cfg := newConfig(opts...)

	pts := make([]predicates.Point, n)
	for i := 0; i < n; i++ {
		pts[i] = jitter(predicates.Point{X: float64(i), Y: 0}, cfg, 1)
	}

	return pts, nil
}

// Uniform returns n points with coordinates drawn independently and
// uniformly from [0, extent) x [0, extent). n must be at least 2 and
// extent must be positive. WithJitter has no effect here; use WithSeed
// or WithRand to control reproducibility.
func Uniform(n int, extent float64, opts ...Option) ([]predicates.Point, error) {
	if n < 2 {
		return nil, ErrTooFewPoints
	}
	if extent <= 0 {
		return nil, ErrInvalidRadius
	}
	cfg := newConfig(opts...)

	pts := make([]predicates.Point, n)
	for i := 0; i < n; i++ {
		pts[i] = predicates.Point{
			X: cfg.rng.Float64() * extent,
			Y: cfg.rng.Float64() * extent,
		}
	}

	return pts, nil
}

func jitter(p predicates.Point, cfg *config, spacing float64) predicates.Point {
	if cfg.jitter <= 0 {
		return p
	}
	amp := cfg.jitter * spacing
	return predicates.Point{
		X: p.X + (cfg.rng.Float64()*2-1)*amp,
		Y: p.Y + (cfg.rng.Float64()*2-1)*amp,
	}
}
