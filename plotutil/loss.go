// Copyright 2025 The Descent Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package plotutil renders training diagnostics to image files.
package plotutil

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrInvalidArgument is returned for empty histories or bad windows.
var ErrInvalidArgument = errors.New("invalid argument")

// Window selects a half-open iteration range [Start, End) of a loss
// history. A zero End means the end of the history.
type Window struct {
	Start int
	End   int
}

// LossCurve writes a line plot of history to path. The image format
// follows the file extension (.png, .svg, .pdf).
func LossCurve(history []float64, w Window, path string) error {
	if len(history) == 0 {
		return fmt.Errorf("%w: empty history", ErrInvalidArgument)
	}
	end := w.End
	if end == 0 {
		end = len(history)
	}
	if w.Start < 0 || end > len(history) || w.Start >= end {
		return fmt.Errorf("%w: window [%d, %d) over %d iterations", ErrInvalidArgument, w.Start, end, len(history))
	}

	pts := make(plotter.XYs, end-w.Start)
	for i := range pts {
		pts[i].X = float64(w.Start + i)
		pts[i].Y = history[w.Start+i]
	}

	p := plot.New()
	p.Title.Text = "Training loss"
	p.X.Label.Text = "Iteration"
	p.Y.Label.Text = "MSE"

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("build loss curve: %w", err)
	}
	p.Add(line, plotter.NewGrid())

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("save loss curve: %w", err)
	}
	return nil
}
