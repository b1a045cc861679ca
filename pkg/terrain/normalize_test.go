package terrain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePoints_ThreeByThree(t *testing.T) {
	t.Parallel()

	points, err := NormalizePoints([]float32{0, 1, 2, 3, 4, 5, 6, 7, 8}, 1)
	require.NoError(t, err)
	require.Len(t, points, 9)

	want := []Point{
		{X: -1, Y: -1, Z: -1}, {X: 0, Y: -1, Z: -0.75}, {X: 1, Y: -1, Z: -0.5},
		{X: -1, Y: 0, Z: -0.25}, {X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0.25},
		{X: -1, Y: 1, Z: 0.5}, {X: 0, Y: 1, Z: 0.75}, {X: 1, Y: 1, Z: 1},
	}
	if diff := cmp.Diff(want, points); diff != "" {
		t.Errorf("NormalizePoints mismatch (-want +got):\n%s", diff)
	}

	// Corners and center are exact.
	assert.Equal(t, Point{X: -1, Y: -1, Z: -1}, points[0])
	assert.Equal(t, Point{X: 0, Y: 0, Z: 0}, points[4])
	assert.Equal(t, Point{X: 1, Y: 1, Z: 1}, points[8])
}

func TestNormalizePoints_SampleTypesAgree(t *testing.T) {
	t.Parallel()

	ints := []int16{-20, 5, 130, 77, 0, 42, 8848, -1, 300}
	floats := make([]float64, len(ints))
	for i, v := range ints {
		floats[i] = float64(v)
	}

	a, err := NormalizePoints(ints, 2)
	require.NoError(t, err)
	b, err := NormalizePoints(floats, 2)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestNormalizePoints_Step(t *testing.T) {
	t.Parallel()

	// 5x5 grid whose value encodes its own index.
	samples := make([]float64, 25)
	for i := range samples {
		samples[i] = float64(i)
	}

	points, err := NormalizePoints(samples, 2)
	require.NoError(t, err)
	require.Len(t, points, 9) // rows and cols 0, 2, 4

	// offset = 2, so columns 0, 2, 4 map to -1, 0, 1.
	wantXY := [][2]float32{
		{-1, -1}, {0, -1}, {1, -1},
		{-1, 0}, {0, 0}, {1, 0},
		{-1, 1}, {0, 1}, {1, 1},
	}
	for i, p := range points {
		assert.Equal(t, wantXY[i][0], p.X, "point %d X", i)
		assert.Equal(t, wantXY[i][1], p.Y, "point %d Y", i)
	}

	// Row-major with stride: point i is sample (row, col) = (2*(i/3), 2*(i%3)).
	for i, p := range points {
		idx := 2*(i/3)*5 + 2*(i%3)
		wantZ := float32(idx)/24*2 - 1
		assert.InDelta(t, wantZ, p.Z, 1e-6, "point %d Z", i)
	}
}

func TestNormalizePoints_StepLargerThanGrid(t *testing.T) {
	t.Parallel()

	points, err := NormalizePoints([]int16{4, 1, 3, 1}, 10)
	require.NoError(t, err)
	require.Len(t, points, 1)
	// 2x2 grid: offset 0.5 so column 0 maps to -1.
	assert.Equal(t, Point{X: -1, Y: -1, Z: 1}, points[0])
}

func TestNormalizePoints_EvenSideIsApproximate(t *testing.T) {
	t.Parallel()

	points, err := NormalizePoints(make([]float32, 16), 1)
	require.NoError(t, err)
	// offset = 1.5: indices 0..3 map to -1, -1/3, 1/3, 1.
	opt := cmpopts.EquateApprox(0, 1e-6)
	got := []float32{points[0].X, points[1].X, points[2].X, points[3].X}
	if diff := cmp.Diff([]float32{-1, -1.0 / 3, 1.0 / 3, 1}, got, opt); diff != "" {
		t.Errorf("X mapping mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizePoints_SingleSample(t *testing.T) {
	t.Parallel()

	points, err := NormalizePoints([]float64{1234}, 1)
	require.NoError(t, err)
	require.Len(t, points, 1)
	// side 1 uses offset 1: index 0 maps to -1, flat grid maps to z 0.
	assert.Equal(t, Point{X: -1, Y: -1, Z: 0}, points[0])
}

func TestNormalizePoints_FlatGrid(t *testing.T) {
	t.Parallel()

	samples := make([]int16, 49)
	for i := range samples {
		samples[i] = 250
	}

	for _, step := range []int{1, 2, 3, 7} {
		points, err := NormalizePoints(samples, step)
		require.NoError(t, err)
		for _, p := range points {
			assert.Zero(t, p.Z, "step %d", step)
		}
	}
}

func TestNormalizePoints_Empty(t *testing.T) {
	t.Parallel()

	for _, step := range []int{1, 2, 100} {
		points, err := NormalizePoints([]float32{}, step)
		require.NoError(t, err)
		assert.NotNil(t, points)
		assert.Empty(t, points)
	}

	points, err := NormalizePoints[float64](nil, 1)
	require.NoError(t, err)
	assert.Empty(t, points)
}

func TestNormalizePoints_InvalidStep(t *testing.T) {
	t.Parallel()

	for _, step := range []int{0, -1, -100} {
		_, err := NormalizePoints([]float32{1, 2, 3, 4}, step)
		assert.ErrorIs(t, err, ErrInvalidArgument, "step %d", step)
		assert.ErrorIs(t, err, ErrInvalidStep, "step %d", step)

		_, err = NormalizePoints([]float32{}, step)
		assert.ErrorIs(t, err, ErrInvalidArgument, "empty input, step %d", step)
	}
}

func TestNormalizePoints_NotSquare(t *testing.T) {
	t.Parallel()

	for _, n := range []int{2, 3, 5, 8, 10, 15, 17} {
		_, err := NormalizePoints(make([]float64, n), 1)
		assert.ErrorIs(t, err, ErrInvalidArgument, "%d samples", n)
		assert.ErrorIs(t, err, ErrNotSquare, "%d samples", n)
	}
}

func TestColoredPoints(t *testing.T) {
	t.Parallel()

	v, err := ColoredPoints([]float64{0, 1000, 2000, 3000, 4000, 5000, 6000, 7000, 8000}, 1)
	require.NoError(t, err)
	require.Len(t, v, 9*6)

	opt := cmpopts.EquateApprox(0, 1e-5)

	// First vertex: lowest sample, blue only.
	if diff := cmp.Diff([]float32{-1, -1, 0, 0, 0, 1}, v[0:6], opt); diff != "" {
		t.Errorf("vertex 0 mismatch (-want +got):\n%s", diff)
	}
	// Center: t = 0.5 takes the upper branch.
	if diff := cmp.Diff([]float32{0, 0, 4, 0, 2, 0.5}, v[24:30], opt); diff != "" {
		t.Errorf("vertex 4 mismatch (-want +got):\n%s", diff)
	}
	// Last vertex: highest sample.
	if diff := cmp.Diff([]float32{1, 1, 8, 1, 1, 0}, v[48:54], opt); diff != "" {
		t.Errorf("vertex 8 mismatch (-want +got):\n%s", diff)
	}
}

func TestColoredPoints_FlatGridIsGreenless(t *testing.T) {
	t.Parallel()

	v, err := ColoredPoints([]int16{10, 10, 10, 10}, 1)
	require.NoError(t, err)
	for i := 0; i < len(v); i += 6 {
		assert.InDelta(t, 0.01, v[i+2], 1e-7)
		r, g, b := v[i+3], v[i+4], v[i+5]
		assert.Equal(t, [3]float32{0, 0, 1}, [3]float32{r, g, b})
	}
}

func TestColoredPoints_Errors(t *testing.T) {
	t.Parallel()

	_, err := ColoredPoints([]float64{1, 2, 3}, 1)
	assert.ErrorIs(t, err, ErrNotSquare)
	_, err = ColoredPoints([]float64{1}, 0)
	assert.ErrorIs(t, err, ErrInvalidStep)
}

func TestTrafficLight(t *testing.T) {
	t.Parallel()

	tests := []struct {
		t       float32
		r, g, b float32
	}{
		{0, 0, 0, 1},
		{0.25, 0, 0.5, 0.75},
		{0.5, 0, 2, 0.5},
		{0.75, 0.5, 1.5, 0.25},
		{1, 1, 1, 0},
		{-3, 0, 0, 1}, // clamped to 0
		{7, 1, 1, 0},  // clamped to 1
	}

	for _, tc := range tests {
		r, g, b := TrafficLight(tc.t)
		assert.InDelta(t, tc.r, r, 1e-6, "r at t=%v", tc.t)
		assert.InDelta(t, tc.g, g, 1e-6, "g at t=%v", tc.t)
		assert.InDelta(t, tc.b, b, 1e-6, "b at t=%v", tc.t)
	}
}
