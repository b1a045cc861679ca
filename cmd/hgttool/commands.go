package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/srtm-terrain/internal/config"
	"github.com/Faultbox/srtm-terrain/internal/export"
	"github.com/Faultbox/srtm-terrain/internal/logger"
	"github.com/Faultbox/srtm-terrain/internal/report"
	"github.com/Faultbox/srtm-terrain/pkg/flight"
	"github.com/Faultbox/srtm-terrain/pkg/formats"
	"github.com/Faultbox/srtm-terrain/pkg/terrain"
)

var errUsage = errors.New("invalid arguments, see 'hgttool help'")

// loadTile loads path with the configured side, inferring it from the file
// size when the side is 0.
func loadTile(cfg *config.Config, path string) (*terrain.Store, error) {
	if cfg.Terrain.Side > 0 {
		return terrain.Load(path, cfg.Terrain.Side)
	}
	return terrain.Open(path)
}

// tileArg picks the tile path from args or falls back to -hgt / config.
// It returns the remaining arguments.
func tileArg(cfg *config.Config, args []string, rest int) (string, []string, error) {
	if len(args) > rest {
		return args[0], args[1:], nil
	}
	if cfg.Terrain.Path == "" {
		return "", nil, fmt.Errorf("%w: no tile given", errUsage)
	}
	return cfg.Terrain.Path, args, nil
}

type tileInfo struct {
	path  string
	store *terrain.Store
	tile  string
}

func cmdInfo(cfg *config.Config, args []string) error {
	if len(args) == 0 && cfg.Terrain.Path != "" {
		args = []string{cfg.Terrain.Path}
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: info needs at least one tile", errUsage)
	}

	// Tiles are independent, so decode them in parallel.
	infos := make([]tileInfo, len(args))
	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range args {
		eg.Go(func() error {
			store, err := loadTile(cfg, path)
			if err != nil {
				return err
			}
			infos[i] = tileInfo{path: path, store: store, tile: "-"}
			if name, err := formats.ParseTileName(path); err == nil {
				infos[i].tile = name.String()
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	for i, info := range infos {
		if i > 0 {
			fmt.Println()
		}
		st := info.store.Stats()
		fmt.Printf("File:    %s\n", info.path)
		fmt.Printf("Tile:    %s\n", info.tile)
		fmt.Printf("Size:    %dx%d\n", info.store.Width(), info.store.Height())
		fmt.Printf("Min:     %.0f m\n", st.Min)
		fmt.Printf("Max:     %.0f m\n", st.Max)
		fmt.Printf("Mean:    %.1f m (stddev %.1f)\n", st.Mean, st.StdDev)
		fmt.Printf("Median:  %.0f m\n", st.Median)
		fmt.Printf("Voids:   %d\n", st.Voids)
	}
	return nil
}

func cmdPoints(cfg *config.Config, args []string) error {
	path, _, err := tileArg(cfg, args, 0)
	if err != nil {
		return err
	}
	store, err := loadTile(cfg, path)
	if err != nil {
		return err
	}

	step := cfg.Terrain.Step
	points, err := store.Points(step)
	if err != nil {
		return err
	}
	logger.Debug("normalized tile", zap.String("path", path), zap.Int("step", step), zap.Int("points", len(points)))

	fmt.Printf("File:    %s\n", path)
	fmt.Printf("Step:    %d\n", step)
	fmt.Printf("Points:  %d\n", len(points))
	if len(points) > 0 {
		first, last := points[0], points[len(points)-1]
		fmt.Printf("First:   (%.4f, %.4f, %.4f)\n", first.X, first.Y, first.Z)
		fmt.Printf("Last:    (%.4f, %.4f, %.4f)\n", last.X, last.Y, last.Z)
	}
	return nil
}

func cmdExport(cfg *config.Config, args []string) error {
	path, rest, err := tileArg(cfg, args, 1)
	if err != nil {
		return err
	}
	if len(rest) != 1 {
		return fmt.Errorf("%w: export needs an output path", errUsage)
	}
	out := rest[0]

	store, err := loadTile(cfg, path)
	if err != nil {
		return err
	}

	var pc *export.PointCloud
	if cfg.Export.Color {
		pc = &export.PointCloud{
			Source: filepath.Base(path),
			Side:   store.Width(),
			Step:   terrain.ColorPointStep,
			Layout: export.LayoutXYZRGB,
			Data:   store.AllNormalizedPoints(),
		}
	} else {
		points, err := store.Points(cfg.Terrain.Step)
		if err != nil {
			return err
		}
		pc = export.FromPoints(filepath.Base(path), store.Width(), cfg.Terrain.Step, points)
	}

	if err := export.WriteFile(out, pc, cfg.Export.Compress); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	logger.Info("exported point cloud",
		zap.String("out", out),
		zap.String("layout", string(pc.Layout)),
		zap.Int("points", pc.Count()),
		zap.Bool("compressed", cfg.Export.Compress))
	fmt.Printf("Wrote %d points to %s\n", pc.Count(), out)
	return nil
}

func cmdHist(cfg *config.Config, args []string) error {
	path, rest, err := tileArg(cfg, args, 1)
	if err != nil {
		return err
	}
	if len(rest) != 1 {
		return fmt.Errorf("%w: hist needs an output path", errUsage)
	}

	store, err := loadTile(cfg, path)
	if err != nil {
		return err
	}

	title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if err := report.SaveHistogram(store, rest[0], report.DefaultHistogramOptions(title)); err != nil {
		return err
	}
	fmt.Printf("Wrote histogram to %s\n", rest[0])
	return nil
}

func cmdFlight(cfg *config.Config, args []string) error {
	count := cfg.Flight.Count
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("%w: count must be a positive integer", errUsage)
		}
		count = n
	}

	fc := cfg.Flight
	gen := flight.NewGenerator(fc.MinX, fc.MinY, fc.MaxX, fc.MaxY, fc.Altitude, fc.Seed)
	logger.Debug("flight generator", zap.Uint64("seed", gen.Seed()), zap.Any("region", gen.Region()))

	fmt.Printf("Seed: %d\n", gen.Seed())
	for i, p := range gen.GenerateFlightPaths(count) {
		fmt.Printf("%3d  (%.2f, %.2f, %.1f) -> (%.2f, %.2f, %.1f)  %.2f\n", i+1,
			p.Start.X, p.Start.Y, p.Start.Z,
			p.End.X, p.End.Y, p.End.Z,
			p.Length())
	}
	return nil
}

func cmdConfig(cfg *config.Config, args []string) error {
	if len(args) > 0 {
		if err := cfg.SaveTo(args[0]); err != nil {
			return err
		}
		fmt.Printf("Wrote config to %s\n", args[0])
		return nil
	}

	path, err := cfg.Save()
	if err != nil {
		return err
	}
	fmt.Printf("Wrote config to %s\n", path)
	return nil
}
