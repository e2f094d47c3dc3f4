// SPDX-License-Identifier: MIT

// Package report renders frontier and timing charts with gonum/plot.
// The output format follows the file extension passed to Save (png, svg,
// pdf, eps, jpg, tif).
package report

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/dapfront/pareto"
)

// ErrNoData is returned when there is nothing to draw.
var ErrNoData = errors.New("report: no data")

// ErrNonPositive is returned when a log-scaled chart receives a value ≤ 0.
var ErrNonPositive = errors.New("report: non-positive value on log axis")

// Default canvas size.
const (
	Width  = 6.4 * vg.Inch
	Height = 4.8 * vg.Inch
)

// Series is one labelled polyline.
type Series struct {
	Label string
	X, Y  []float64
}

func toXYs(pts []pareto.Point) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, p := range pts {
		xys[i].X, xys[i].Y = p.Cost, p.Diversity
	}

	return xys
}

// Frontier draws the approximate front (and the exact one when non-empty)
// in the cost/diversity plane.
func Frontier(title string, approx, exact []pareto.Point) (*plot.Plot, error) {
	if len(approx) == 0 && len(exact) == 0 {
		return nil, ErrNoData
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Cost"
	p.Y.Label.Text = "Diversity"
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	layers := []struct {
		label string
		pts   []pareto.Point
		shape draw.GlyphDrawer
		c     color.Color
	}{
		{"Approximation", approx, draw.CircleGlyph{}, plotutil.Color(0)},
		{"Exact", exact, draw.CrossGlyph{}, plotutil.Color(1)},
	}
	for _, l := range layers {
		if len(l.pts) == 0 {
			continue
		}
		s, err := plotter.NewScatter(toXYs(l.pts))
		if err != nil {
			return nil, fmt.Errorf("report: %s: %w", l.label, err)
		}
		s.GlyphStyle.Shape = l.shape
		s.GlyphStyle.Color = l.c
		s.GlyphStyle.Radius = vg.Points(3)
		p.Add(s)
		p.Legend.Add(l.label, s)
	}

	return p, nil
}

// Timings draws running time against instance size. With logScale the x
// axis is log2-spaced and the y axis log10-spaced.
func Timings(series []Series, logScale bool) (*plot.Plot, error) {
	if len(series) == 0 {
		return nil, ErrNoData
	}

	p := plot.New()
	p.Title.Text = "Running time"
	p.X.Label.Text = "Size of instance"
	p.Y.Label.Text = "Running time (s)"
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	p.Legend.Left = true
	if logScale {
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: 3}
	}

	for i, s := range series {
		if len(s.X) != len(s.Y) || len(s.X) == 0 {
			return nil, fmt.Errorf("report: series %q has %d x and %d y values: %w", s.Label, len(s.X), len(s.Y), ErrNoData)
		}
		xys := make(plotter.XYs, len(s.X))
		for j := range s.X {
			if logScale && (s.X[j] <= 0 || s.Y[j] <= 0) {
				return nil, fmt.Errorf("report: series %q point %d: %w", s.Label, j, ErrNonPositive)
			}
			xys[j].X, xys[j].Y = s.X[j], s.Y[j]
		}
		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, fmt.Errorf("report: %s: %w", s.Label, err)
		}
		line.Color = plotutil.Color(i)
		points.GlyphStyle.Color = plotutil.Color(i)
		points.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(line, points)
		p.Legend.Add(s.Label, line, points)
	}

	return p, nil
}

// Save writes p to path, creating parent directories.
func Save(p *plot.Plot, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	if err := p.Save(Width, Height, path); err != nil {
		return fmt.Errorf("report: save %s: %w", path, err)
	}

	return nil
}
