// Package report renders elevation summaries to image files.
package report

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/Faultbox/srtm-terrain/pkg/terrain"
)

// ErrNoSamples is returned when there is nothing to plot.
var ErrNoSamples = errors.New("no samples to plot")

// HistogramOptions controls histogram rendering.
type HistogramOptions struct {
	Title  string
	Bins   int
	Width  vg.Length
	Height vg.Length
}

// DefaultHistogramOptions returns a 64-bin, 8x5 inch histogram.
func DefaultHistogramOptions(title string) HistogramOptions {
	return HistogramOptions{
		Title:  title,
		Bins:   64,
		Width:  8 * vg.Inch,
		Height: 5 * vg.Inch,
	}
}

// SaveHistogram writes an elevation histogram of s to path. The image
// format follows the extension (.png, .svg, .pdf).
func SaveHistogram(s *terrain.Store, path string, opts HistogramOptions) error {
	samples := s.Grid().Samples()
	if len(samples) == 0 {
		return ErrNoSamples
	}
	if opts.Bins < 1 {
		opts.Bins = 1
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "Elevation (m)"
	p.Y.Label.Text = "Samples"

	h, err := plotter.NewHist(plotter.Values(samples), opts.Bins)
	if err != nil {
		return fmt.Errorf("building histogram: %w", err)
	}
	h.FillColor = color.RGBA{R: 70, G: 130, B: 90, A: 255}
	p.Add(h)

	st := s.Stats()
	mean, err := plotter.NewLine(plotter.XYs{{X: st.Mean, Y: 0}, {X: st.Mean, Y: maxBin(h)}})
	if err != nil {
		return fmt.Errorf("building mean marker: %w", err)
	}
	mean.Color = color.RGBA{R: 200, G: 40, B: 40, A: 255}
	mean.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(mean)
	p.Legend.Add(fmt.Sprintf("mean %.1f m", st.Mean), mean)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return p.Save(opts.Width, opts.Height, path)
}

func maxBin(h *plotter.Histogram) float64 {
	var m float64
	for _, b := range h.Bins {
		if b.Weight > m {
			m = b.Weight
		}
	}
	return m
}
