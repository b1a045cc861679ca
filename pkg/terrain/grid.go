// Package terrain holds decoded elevation grids and turns them into
// normalized point clouds.
package terrain

import (
	"fmt"
	"math"

	"github.com/Faultbox/srtm-terrain/pkg/formats"
)

// Grid is an immutable, row-major, square grid of elevation samples in
// meters.
type Grid struct {
	side    int
	samples []float64
}

// NewGrid copies samples into a new grid. The sample count must be a
// perfect square; an empty slice gives an empty grid.
func NewGrid(samples []float64) (*Grid, error) {
	side, ok := squareSide(len(samples))
	if !ok {
		return nil, fmt.Errorf("%w: %d samples", ErrNotSquare, len(samples))
	}
	return &Grid{
		side:    side,
		samples: append([]float64(nil), samples...),
	}, nil
}

// gridFromHGT widens a decoded tile into a grid.
func gridFromHGT(h *formats.HGT) *Grid {
	samples := make([]float64, len(h.Samples))
	for i, v := range h.Samples {
		samples[i] = float64(v)
	}
	return &Grid{side: h.Side, samples: samples}
}

// Side returns the number of samples per row (and per column).
func (g *Grid) Side() int { return g.side }

// Len returns the total number of samples.
func (g *Grid) Len() int { return len(g.samples) }

// InBounds reports whether (row, col) addresses a sample.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < g.side && col < g.side
}

// At returns the sample at (row, col) without bounds checking.
func (g *Grid) At(row, col int) float64 {
	return g.samples[row*g.side+col]
}

// Samples returns a copy of the row-major samples.
func (g *Grid) Samples() []float64 {
	return append([]float64(nil), g.samples...)
}

// squareSide returns sqrt(n) and whether n is a perfect square.
func squareSide(n int) (int, bool) {
	if n < 0 {
		return 0, false
	}
	side := int(math.Round(math.Sqrt(float64(n))))
	return side, side*side == n
}
