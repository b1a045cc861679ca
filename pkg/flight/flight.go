// Package flight generates random straight-line flight paths over a
// rectangular area at a fixed altitude.
package flight

import (
	"github.com/Faultbox/srtm-terrain/pkg/math"
	"github.com/Faultbox/srtm-terrain/pkg/rand"
)

// Region is the rectangle paths are drawn from, in grid/world units.
type Region struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Normalized returns the region with Min <= Max on both axes.
func (r Region) Normalized() Region {
	if r.MinX > r.MaxX {
		r.MinX, r.MaxX = r.MaxX, r.MinX
	}
	if r.MinY > r.MaxY {
		r.MinY, r.MaxY = r.MaxY, r.MinY
	}
	return r
}

// Contains reports whether (x, y) lies inside the region, edges included.
func (r Region) Contains(x, y float32) bool {
	n := r.Normalized()
	return x >= float32(n.MinX) && x <= float32(n.MaxX) &&
		y >= float32(n.MinY) && y <= float32(n.MaxY)
}

// Path is a straight flight segment.
type Path struct {
	Start math.Vec3
	End   math.Vec3
}

// Length returns the straight-line distance from Start to End.
func (p Path) Length() float32 {
	return p.Start.Distance(p.End)
}

// Waypoints returns n evenly spaced points from Start to End inclusive.
// n < 2 returns just the endpoints.
func (p Path) Waypoints(n int) []math.Vec3 {
	if n < 2 {
		return []math.Vec3{p.Start, p.End}
	}
	pts := make([]math.Vec3, n)
	for i := range n {
		pts[i] = p.Start.Lerp(p.End, float32(i)/float32(n-1))
	}
	pts[n-1] = p.End
	return pts
}

// Generator draws flight paths. It owns its PRNG and is not safe for
// concurrent use.
type Generator struct {
	region   Region
	altitude float32
	rng      *rand.Rand
}

// NewGenerator returns a generator over the given bounds. A seed of 0
// seeds from the runtime; any other seed gives a reproducible sequence.
func NewGenerator(minX, minY, maxX, maxY int, altitude float32, seed uint64) *Generator {
	return &Generator{
		region:   Region{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY},
		altitude: altitude,
		rng:      rand.New(seed),
	}
}

// Region returns the bounds as given to NewGenerator.
func (g *Generator) Region() Region { return g.region }

// Altitude returns the fixed altitude of every generated point.
func (g *Generator) Altitude() float32 { return g.altitude }

// Seed returns the PRNG seed in use, which for a 0 seed is the one drawn
// from the runtime.
func (g *Generator) Seed() uint64 { return g.rng.Seed() }

// GenerateFlightPath draws a start and an end point uniformly from the
// region. Draws happen in the order start X, start Y, end X, end Y.
func (g *Generator) GenerateFlightPath() Path {
	r := g.region.Normalized()
	minX, maxX := float32(r.MinX), float32(r.MaxX)
	minY, maxY := float32(r.MinY), float32(r.MaxY)

	startX := g.rng.Range(minX, maxX)
	startY := g.rng.Range(minY, maxY)
	endX := g.rng.Range(minX, maxX)
	endY := g.rng.Range(minY, maxY)

	return Path{
		Start: math.Vec3{X: startX, Y: startY, Z: g.altitude},
		End:   math.Vec3{X: endX, Y: endY, Z: g.altitude},
	}
}

// GenerateFlightPaths draws n consecutive paths.
func (g *Generator) GenerateFlightPaths(n int) []Path {
	paths := make([]Path, 0, max(n, 0))
	for range n {
		paths = append(paths, g.GenerateFlightPath())
	}
	return paths
}
