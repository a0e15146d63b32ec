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
	"io"
	"math"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/arena/pkg/outcome"
	"laptudirm.com/x/arena/pkg/results"
	"laptudirm.com/x/arena/pkg/stats"
)

// arena report
func Report() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [results-file]",
		Short: "Print a summary of a match's results",
		Args:  cobra.MaximumNArgs(1),
		Long: heredoc.Doc(`report prints the game counts, per colour results, final
			scores, and the estimated elo difference between the players
			of the match in the given results file (results.txt by
			default), along with the arena's prediction accuracy and
			losses on time when the file records them.

			Consecutive games are played from the same opening with
			the sides swapped, so they are also counted as game pairs
			and the elo is estimated from the pairs, unless --legacy
			is given. If both --elo0 and --elo1 are given, the
			log-likelihood ratio of the two elo hypotheses is reported
			too.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := config(cmd, args)
			if err != nil {
				return err
			}

			file, err := results.Load(v.GetString("input"))
			if err != nil {
				return err
			}

			legacy, _ := cmd.Flags().GetBool("legacy")
			summary := Summarize(file, legacy)

			if cmd.Flag("elo0").Changed && cmd.Flag("elo1").Changed {
				elo0, _ := cmd.Flags().GetFloat64("elo0")
				elo1, _ := cmd.Flags().GetFloat64("elo1")
				alpha, _ := cmd.Flags().GetFloat64("alpha")
				beta, _ := cmd.Flags().GetFloat64("beta")
				summary.Test = NewTest(summary, legacy, elo0, elo1, alpha, beta)
			}

			switch format, _ := cmd.Flags().GetString("format"); format {
			case "yaml":
				encoder := yaml.NewEncoder(cmd.OutOrStdout())
				if err := encoder.Encode(summary); err != nil {
					return err
				}
				return encoder.Close()
			case "text", "":
				summary.Print(cmd.OutOrStdout())
				return nil
			default:
				return fmt.Errorf("report: invalid format %s", format)
			}
		},
	}

	cmd.Flags().StringP("format", "f", "text", "Output format: text or yaml")
	cmd.Flags().Float64("elo0", 0, "The null elo hypothesis")
	cmd.Flags().Float64("elo1", 0, "The alternate elo hypothesis")
	cmd.Flags().Float64("alpha", 0.05, "Type I error probability")
	cmd.Flags().Float64("beta", 0.05, "Type II error probability")
	cmd.Flags().Bool("legacy", false, "Use the trinomial model instead of game pairs")

	return cmd
}

// Summary is the report of a single match.
type Summary struct {
	Players string        `yaml:"players"`
	Games   int           `yaml:"games"`
	Tally   outcome.Tally   `yaml:"tally"`
	Colours outcome.Colours `yaml:"colours"`
	Penta   outcome.Penta   `yaml:"penta"`

	Scores []Score `yaml:"scores"`

	Elo struct {
		Model string  `yaml:"model"`
		Elo   float64 `yaml:"elo"`
		Error float64 `yaml:"error"`
		LOS   float64 `yaml:"los"`
	} `yaml:"elo"`

	Prediction *results.Prediction `yaml:"prediction,omitempty"`
	TimeLosses []results.TimeLoss  `yaml:"time-losses,omitempty"`

	Test *Test `yaml:"sprt,omitempty"`
}

// Score is the final score of a player in the match.
type Score struct {
	Name  string `yaml:"name"`
	Score int    `yaml:"score"`
}

// Test is the state of a sequential probability ratio test over the match.
type Test struct {
	Elo0    float64    `yaml:"elo0"`
	Elo1    float64    `yaml:"elo1"`
	Bounds  [2]float64 `yaml:"bounds"`
	LLR     float64    `yaml:"llr"`
	Verdict string     `yaml:"verdict"`
}

// Summarize computes the Summary of the match in the given file. The elo
// is estimated from the game pairs, or from the single games if legacy.
func Summarize(file *results.File, legacy bool) Summary {
	var summary Summary
	summary.Players = file.Players
	summary.Games = len(file.Outcomes)
	summary.Tally = outcome.ComputeTally(file.Outcomes)
	summary.Colours = outcome.ComputeColours(file.Outcomes)
	summary.Penta = outcome.ComputePenta(file.Outcomes)
	summary.Prediction = file.Prediction
	summary.TimeLosses = file.TimeLosses

	score1, score2 := outcome.ComputeScoreSeries(file.Outcomes).Final()
	summary.Scores = []Score{
		{Name: file.Names[0], Score: score1},
		{Name: file.Names[1], Score: score2},
	}

	var lower, elo, upper float64
	if legacy {
		summary.Elo.Model = "trinomial"
		lower, elo, upper = stats.Elo(summary.Tally.Wins, summary.Tally.Draws, summary.Tally.Losses)
	} else {
		penta := summary.Penta
		summary.Elo.Model = "pentanomial"
		lower, elo, upper = stats.PentaElo(
			penta.LossLoss, penta.DrawLoss,
			penta.DrawDraw,
			penta.WinDraw, penta.WinWin,
		)
	}

	summary.Elo.Elo = elo
	summary.Elo.Error = stats.ErrorMargin(lower, elo, upper)
	summary.Elo.LOS = stats.LOS(summary.Tally.Wins, summary.Tally.Losses)

	return summary
}

// NewTest runs an SPRT of elo0 against elo1 on the summary's results.
func NewTest(summary Summary, legacy bool, elo0, elo1, alpha, beta float64) *Test {
	test := Test{Elo0: elo0, Elo1: elo1}
	test.Bounds[0], test.Bounds[1] = stats.StoppingBounds(alpha, beta)

	if legacy {
		tally := summary.Tally
		test.LLR = stats.SPRT(tally.Wins, tally.Draws, tally.Losses, elo0, elo1)
	} else {
		penta := summary.Penta
		test.LLR = stats.PentaSPRT(
			penta.LossLoss, penta.DrawLoss,
			penta.DrawDraw,
			penta.WinDraw, penta.WinWin,
			elo0, elo1,
		)
	}

	switch {
	case test.LLR <= test.Bounds[0]:
		test.Verdict = "H0 Accepted"
	case test.LLR >= test.Bounds[1]:
		test.Verdict = "H1 Accepted"
	default:
		test.Verdict = "Inconclusive"
	}

	return &test
}

// Print writes the summary as a box drawn table to w.
func (summary Summary) Print(w io.Writer) {
	tally, penta := summary.Tally, summary.Penta
	white, black := summary.Colours.White, summary.Colours.Black

	lines := []string{
		fmt.Sprintf("║ MATCH | %s", summary.Players),
		fmt.Sprintf("║ GAMES | N: %d W: %d L: %d D: %d", summary.Games, tally.Wins, tally.Losses, tally.Draws),
		fmt.Sprintf("║ PCT   | W: %.2f%% L: %.2f%% D: %.2f%%", tally.WinPct, tally.LossPct, tally.DrawPct),
		fmt.Sprintf("║ WHITE | W: %d L: %d D: %d", white.Wins, white.Losses, white.Draws),
		fmt.Sprintf("║ BLACK | W: %d L: %d D: %d", black.Wins, black.Losses, black.Draws),
		fmt.Sprintf("║ ELO   | %.2f +- %.2f (95%%)", noNegativeZero(summary.Elo.Elo), summary.Elo.Error),
		fmt.Sprintf("║ LOS   | %.2f%%", summary.Elo.LOS*100),
		fmt.Sprintf(
			"║ PENTA | [%d, %d, %d, %d, %d]",
			penta.LossLoss, penta.DrawLoss,
			penta.DrawDraw,
			penta.WinDraw, penta.WinWin,
		),
	}

	for _, score := range summary.Scores {
		lines = append(lines, fmt.Sprintf("║ SCORE | %s: %d", score.Name, score.Score))
	}

	if prediction := summary.Prediction; prediction != nil {
		lines = append(lines, fmt.Sprintf(
			"║ PRED  | %d/%d (%.2f%%)",
			prediction.Successes, prediction.Attempts, prediction.Accuracy()*100,
		))
	}

	for _, loss := range summary.TimeLosses {
		lines = append(lines, fmt.Sprintf("║ TIME  | %s: %d", loss.Engine, loss.Losses))
	}

	if test := summary.Test; test != nil {
		lines = append(lines, fmt.Sprintf(
			"║ LLR   | %.2f (%.2f, %.2f) [%.2f, %.2f]",
			noNegativeZero(test.LLR), test.Bounds[0], test.Bounds[1], test.Elo0, test.Elo1,
		))
		lines = append(lines, fmt.Sprintf("║ SPRT  | %s", test.Verdict))
	}

	fmt.Fprintln(w, "╔═════════════════════════════════════════════════╗")
	for _, line := range lines {
		fmt.Fprintf(w, "%-50s║\n", line)
	}
	fmt.Fprintln(w, "╚═════════════════════════════════════════════════╝")
}

// noNegativeZero maps values which would print as -0.00 to zero.
func noNegativeZero(x float64) float64 {
	if math.Abs(x) < 0.005 {
		return 0
	}
	return x
}
