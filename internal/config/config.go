// Package config handles hgttool configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all tool settings.
type Config struct {
	Terrain TerrainConfig `yaml:"terrain"`
	Flight  FlightConfig  `yaml:"flight"`
	Export  ExportConfig  `yaml:"export"`
	Logging LoggingConfig `yaml:"logging"`
}

// TerrainConfig selects the tile and how densely it is sampled.
type TerrainConfig struct {
	Path string `yaml:"path"` // HGT file (.hgt, .hgt.gz, .hgt.zst)
	Side int    `yaml:"side"` // Samples per row; 0 infers from the file size
	Step int    `yaml:"step"` // Subsampling step for point output
}

// FlightConfig describes the region flight paths are drawn from.
type FlightConfig struct {
	MinX     int     `yaml:"min_x"`
	MinY     int     `yaml:"min_y"`
	MaxX     int     `yaml:"max_x"`
	MaxY     int     `yaml:"max_y"`
	Altitude float32 `yaml:"altitude"`
	Seed     uint64  `yaml:"seed"` // 0 = random
	Count    int     `yaml:"count"`
}

// ExportConfig holds point export settings.
type ExportConfig struct {
	Color    bool `yaml:"color"`    // Export interleaved position+color vertices
	Compress bool `yaml:"compress"` // Deflate the msgpack stream
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Terrain: TerrainConfig{
			Side: 0,
			Step: 1,
		},
		Flight: FlightConfig{
			MinX:     0,
			MinY:     0,
			MaxX:     3600,
			MaxY:     3600,
			Altitude: 1000,
			Seed:     0,
			Count:    1,
		},
		Export: ExportConfig{
			Color:    false,
			Compress: true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks values that cannot be fixed up silently.
func (c *Config) Validate() error {
	if c.Terrain.Side < 0 {
		return fmt.Errorf("%w: terrain.side %d is negative", ErrInvalidConfig, c.Terrain.Side)
	}
	if c.Terrain.Step < 1 {
		return fmt.Errorf("%w: terrain.step must be >= 1, got %d", ErrInvalidConfig, c.Terrain.Step)
	}
	if c.Flight.Count < 0 {
		return fmt.Errorf("%w: flight.count %d is negative", ErrInvalidConfig, c.Flight.Count)
	}
	return nil
}
