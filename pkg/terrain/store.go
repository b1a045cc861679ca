package terrain

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/Faultbox/srtm-terrain/internal/logger"
	"github.com/Faultbox/srtm-terrain/pkg/formats"
)

// ColorPointStep is the sampling step used by AllNormalizedPoints. It
// keeps a full SRTM1 tile at roughly half a million vertices.
const ColorPointStep = 5

// Store owns a decoded elevation grid and answers lookups against it.
// The grid is never modified; min/max are computed on first use.
type Store struct {
	grid  *Grid
	voids int

	rangeOnce sync.Once
	min, max  float64
}

// Stats summarizes the elevation distribution of a store.
type Stats struct {
	Min, Max float64
	Mean     float64
	StdDev   float64 // Population standard deviation
	Median   float64
	Voids    int // Samples that were void in the source file
}

// NewStore wraps an existing grid.
func NewStore(g *Grid) *Store {
	return &Store{grid: g}
}

// Load decodes the HGT file at path as a side x side tile.
func Load(path string, side int) (*Store, error) {
	if side <= 0 {
		return nil, fmt.Errorf("%w: side %d", ErrInvalidArgument, side)
	}

	hgt, err := formats.ParseHGTFile(path, side)
	if errors.Is(err, formats.ErrInvalidHGTSide) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	if err != nil {
		return nil, err
	}

	s := &Store{grid: gridFromHGT(hgt), voids: hgt.Voids}
	logger.Named("terrain").Debug("loaded tile",
		zap.String("path", path),
		zap.Int("side", side),
		zap.Int("voids", hgt.Voids))
	return s, nil
}

// Open decodes an uncompressed HGT file, inferring the side length from
// the file size.
func Open(path string) (*Store, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFileAccess, path, err)
	}
	side := formats.HGTSideForSize(fi.Size())
	if side == 0 {
		return nil, fmt.Errorf("%w: %s: size %d is not a square tile", ErrInvalidArgument, path, fi.Size())
	}
	return Load(path, side)
}

// Grid returns the underlying grid.
func (s *Store) Grid() *Grid { return s.grid }

// Width returns the grid side length.
func (s *Store) Width() int { return s.grid.side }

// Height returns the grid side length; grids are always square.
func (s *Store) Height() int { return s.grid.side }

// Voids returns the number of void samples replaced while decoding.
func (s *Store) Voids() int { return s.voids }

// ElevationAt returns the sample at (row, col).
func (s *Store) ElevationAt(row, col int) (float64, error) {
	if !s.grid.InBounds(row, col) {
		return 0, fmt.Errorf("%w: (%d, %d) outside %dx%d grid", ErrIndexOutOfRange, row, col, s.grid.side, s.grid.side)
	}
	return s.grid.At(row, col), nil
}

// MinElevation returns the lowest sample, or 0 for an empty grid.
func (s *Store) MinElevation() float64 {
	s.computeRange()
	return s.min
}

// MaxElevation returns the highest sample, or 0 for an empty grid.
func (s *Store) MaxElevation() float64 {
	s.computeRange()
	return s.max
}

func (s *Store) computeRange() {
	s.rangeOnce.Do(func() {
		if len(s.grid.samples) == 0 {
			return
		}
		s.min = floats.Min(s.grid.samples)
		s.max = floats.Max(s.grid.samples)
	})
}

// Points returns the normalized point cloud of the grid at the given step.
func (s *Store) Points(step int) ([]Point, error) {
	return NormalizePoints(s.grid.samples, step)
}

// AllNormalizedPoints returns interleaved position+color vertices
// (x, y, z, r, g, b) sampled every ColorPointStep rows and columns.
func (s *Store) AllNormalizedPoints() []float32 {
	// Cannot fail: the grid is square and the step is positive.
	v, _ := ColoredPoints(s.grid.samples, ColorPointStep)
	return v
}

// Stats computes summary statistics over the whole grid.
func (s *Store) Stats() Stats {
	st := Stats{
		Min:   s.MinElevation(),
		Max:   s.MaxElevation(),
		Voids: s.voids,
	}
	if len(s.grid.samples) == 0 {
		return st
	}

	st.Mean, st.StdDev = stat.PopMeanStdDev(s.grid.samples, nil)

	sorted := s.grid.Samples()
	sort.Float64s(sorted)
	st.Median = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	return st
}
