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

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/arena/internal/util"
	"laptudirm.com/x/arena/pkg/chart"
	arena "laptudirm.com/x/arena/pkg/common"
	"laptudirm.com/x/arena/pkg/outcome"
	"laptudirm.com/x/arena/pkg/results"
)

// arena analyze
func Analyze() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [results-file]",
		Short: "Render the result and score charts of a match",
		Args:  cobra.MaximumNArgs(1),
		Long: heredoc.Doc(`analyze tallies the wins, draws, and losses of the
			match in the given results file (results.txt by default)
			and renders two charts from them:

			- a bar showing the share of wins, draws, and losses of
			  the first player, written to results.png.
			- the cumulative score of both the players after every
			  game, written to scores.png.

			Players swap sides every game, so a decisive result is
			credited according to the game's position in the match.`),

		RunE: runAnalyze,
	}

	chartFlags(cmd)
	return cmd
}

func chartFlags(cmd *cobra.Command) {
	cmd.Flags().String("results-chart", arena.DefaultResultsChart, "Path to write the results chart to")
	cmd.Flags().String("scores-chart", arena.DefaultScoresChart, "Path to write the scores chart to")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	v, err := config(cmd, args)
	if err != nil {
		return err
	}

	paths := arena.Paths(v)

	file, err := results.Load(paths.Input)
	if err != nil {
		return err
	}

	tally := outcome.ComputeTally(file.Outcomes)
	series := outcome.ComputeScoreSeries(file.Outcomes)

	if tally.Total() == 0 {
		logrus.WithField("file", paths.Input).Warn("No games found, rendering an empty report")
	}

	logrus.WithFields(logrus.Fields{
		"players": file.Players,
		"wins":    tally.Wins,
		"draws":   tally.Draws,
		"losses":  tally.Losses,
	}).Info("Tallied match results")

	util.StartSpinner("Rendering charts")
	defer util.PauseSpinner()

	for _, path := range []string{paths.ResultsChart, paths.ScoresChart} {
		if err := arena.TryMkdir(filepath.Dir(path)); err != nil {
			return err
		}
	}

	if err := chart.Results(tally, paths.ResultsChart, chart.DefaultResultsOptions); err != nil {
		return fmt.Errorf("render results chart: %w", err)
	}

	if err := chart.Scores(series, file.Names, paths.ScoresChart, chart.DefaultScoresOptions); err != nil {
		return fmt.Errorf("render scores chart: %w", err)
	}

	util.PauseSpinner()
	logrus.Infof("Wrote \x1b[32m%s\x1b[0m and \x1b[32m%s\x1b[0m", paths.ResultsChart, paths.ScoresChart)
	return nil
}
