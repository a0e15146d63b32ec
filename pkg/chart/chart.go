// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package chart renders the results of a match as images.
package chart

import (
	"fmt"
	"image/color"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"laptudirm.com/x/arena/pkg/outcome"
)

// Options configures the size of a rendered chart. The image format is
// picked from the extension of the output path.
type Options struct {
	Width, Height vg.Length
}

var (
	DefaultResultsOptions = Options{Width: 10 * vg.Inch, Height: 1.5 * vg.Inch}
	DefaultScoresOptions  = Options{Width: 10 * vg.Inch, Height: 6 * vg.Inch}
)

var (
	WinColor  = color.RGBA{G: 128, A: 255}
	DrawColor = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	LossColor = color.RGBA{R: 255, A: 255}
)

// Results draws the tally as a single horizontal bar split into win, draw,
// and loss segments, each labelled with its percentage, and saves it to
// the given path. The raw counts are shown above the bar.
func Results(tally outcome.Tally, path string, opts Options) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf(
		"Wins: %d    Draws: %d    Losses: %d",
		tally.Wins, tally.Draws, tally.Losses,
	)
	p.HideAxes()

	segments := []struct {
		count int
		pct   float64
		color color.Color
	}{
		{tally.Wins, tally.WinPct, WinColor},
		{tally.Draws, tally.DrawPct, DrawColor},
		{tally.Losses, tally.LossPct, LossColor},
	}

	var labels plotter.XYLabels
	var below *plotter.BarChart
	offset := 0
	for _, segment := range segments {
		bar, err := plotter.NewBarChart(plotter.Values{float64(segment.count)}, opts.Height/3)
		if err != nil {
			return err
		}

		bar.Horizontal = true
		bar.Color = segment.color
		bar.LineStyle.Width = 0
		if below != nil {
			bar.StackOn(below)
		}

		p.Add(bar)
		below = bar

		// Only label the segments which are actually visible.
		if segment.count > 0 {
			labels.XYs = append(labels.XYs, plotter.XY{X: float64(offset) + float64(segment.count)/2})
			labels.Labels = append(labels.Labels, fmt.Sprintf("%g%%", segment.pct))
		}

		offset += segment.count
	}

	if len(labels.Labels) > 0 {
		texts, err := plotter.NewLabels(labels)
		if err != nil {
			return err
		}

		for i := range texts.TextStyle {
			texts.TextStyle[i].XAlign = text.XCenter
			texts.TextStyle[i].YAlign = text.YCenter
		}

		p.Add(texts)
	}

	p.X.Min, p.X.Max = 0, float64(max(tally.Total(), 1))

	logrus.WithFields(logrus.Fields{
		"file":  path,
		"games": tally.Total(),
	}).Debug("Saving results chart")

	return p.Save(opts.Width, opts.Height, path)
}

// Scores plots the cumulative score of both players over the games of the
// match and saves it to the given path. The names label the two lines.
func Scores(series outcome.Series, names [2]string, path string, opts Options) error {
	p := plot.New()
	p.Title.Text = "Player Scores"
	p.X.Label.Text = "Games"
	p.Y.Label.Text = "Score"
	p.Legend.Top = true
	p.Legend.Left = true

	p.Add(plotter.NewGrid())

	if series.Len() == 0 {
		// Nothing to plot, keep the axes sane.
		p.X.Min, p.X.Max = 0, 1
		p.Y.Min, p.Y.Max = 0, 1
	}

	for i, scores := range [2][]int{series.Player1, series.Player2} {
		if len(scores) == 0 {
			continue
		}

		line, err := plotter.NewLine(points(scores))
		if err != nil {
			return err
		}

		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1.5)

		p.Add(line)
		p.Legend.Add(names[i], line)
	}

	logrus.WithFields(logrus.Fields{
		"file":  path,
		"games": series.Len(),
	}).Debug("Saving scores chart")

	return p.Save(opts.Width, opts.Height, path)
}

// points converts a score series into plottable points, the x coordinate of
// each point being the index of its game.
func points(scores []int) plotter.XYs {
	xys := make(plotter.XYs, len(scores))
	for i, score := range scores {
		xys[i].X = float64(i)
		xys[i].Y = float64(score)
	}

	return xys
}
