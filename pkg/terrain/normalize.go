package terrain

import (
	"fmt"

	"github.com/Faultbox/srtm-terrain/pkg/math"
)

// Point is a normalized terrain point: X and Y in about [-1, 1] from the
// column and row, Z in [-1, 1] from the elevation.
type Point = math.Vec3

// Sample is any numeric type an elevation buffer may be stored as.
type Sample interface {
	~int16 | ~int32 | ~int | ~float32 | ~float64
}

// heightScale converts meters to scene units in ColoredPoints.
const heightScale = 0.001

// normContext holds the per-call values both normalizers derive from the
// whole grid. All arithmetic is float32 so output is identical whatever
// the sample type.
type normContext struct {
	side     int
	min, max float32
	span     float32 // max - min
	offset   float32 // grid index that maps to 0
}

func newNormContext[S Sample](samples []S, step int) (normContext, error) {
	if step < 1 {
		return normContext{}, fmt.Errorf("%w: got %d", ErrInvalidStep, step)
	}
	side, ok := squareSide(len(samples))
	if !ok {
		return normContext{}, fmt.Errorf("%w: %d samples", ErrNotSquare, len(samples))
	}

	ctx := normContext{side: side, offset: 1}
	if side > 1 {
		ctx.offset = float32(side-1) / 2
	}
	if len(samples) == 0 {
		return ctx, nil
	}

	ctx.min, ctx.max = float32(samples[0]), float32(samples[0])
	for _, s := range samples[1:] {
		v := float32(s)
		if v < ctx.min {
			ctx.min = v
		}
		if v > ctx.max {
			ctx.max = v
		}
	}
	ctx.span = ctx.max - ctx.min
	return ctx, nil
}

// count returns how many points a pass at the given step produces.
func (c normContext) count(step int) int {
	n := (c.side + step - 1) / step
	return n * n
}

// planar maps a grid index onto [-1, 1]. The upper end is exact only for
// odd sides.
func (c normContext) planar(i int) float32 {
	if c.offset == 0 {
		return 0
	}
	return (float32(i) - c.offset) / c.offset
}

// height maps an elevation to [0, 1]; a flat grid maps to 0.
func (c normContext) height(e float32) float32 {
	if c.span == 0 {
		return 0
	}
	return (e - c.min) / c.span
}

// NormalizePoints converts a square row-major grid into points, visiting
// rows 0, step, 2*step... and within each row the same columns. The i-th
// point therefore corresponds to row (i / n)*step, column (i % n)*step
// where n = ceil(side/step).
//
// A step below 1 or a non-square sample count is an error. An empty grid
// yields an empty slice.
func NormalizePoints[S Sample](samples []S, step int) ([]Point, error) {
	ctx, err := newNormContext(samples, step)
	if err != nil {
		return nil, err
	}

	points := make([]Point, 0, ctx.count(step))
	for row := 0; row < ctx.side; row += step {
		py := ctx.planar(row)
		for col := 0; col < ctx.side; col += step {
			var pz float32
			if ctx.span != 0 {
				pz = ctx.height(float32(samples[row*ctx.side+col]))*2 - 1
			}
			points = append(points, Point{X: ctx.planar(col), Y: py, Z: pz})
		}
	}
	return points, nil
}

// ColoredPoints converts a square grid into interleaved vertices
// (x, y, z, r, g, b). X and Y follow NormalizePoints; Z is the raw
// elevation scaled by 0.001 and the color is TrafficLight of the
// normalized height.
func ColoredPoints[S Sample](samples []S, step int) ([]float32, error) {
	ctx, err := newNormContext(samples, step)
	if err != nil {
		return nil, err
	}

	out := make([]float32, 0, ctx.count(step)*6)
	for row := 0; row < ctx.side; row += step {
		py := ctx.planar(row)
		for col := 0; col < ctx.side; col += step {
			e := float32(samples[row*ctx.side+col])
			r, g, b := TrafficLight(ctx.height(e))
			out = append(out, ctx.planar(col), py, e*heightScale, r, g, b)
		}
	}
	return out, nil
}
