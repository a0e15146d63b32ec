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

// Package outcome interprets the encoded game outcomes written by the arena
// and derives the win/draw/loss tally and cumulative score series from them.
package outcome

import "math"

// Outcome is the encoded result of a single game, as written on the
// "Results =>" line of an arena results file. The meaning of a decisive
// outcome depends on the game's index, since the players swap sides every
// game.
type Outcome int

const (
	Drawn     Outcome = 0 // the game was drawn
	FirstWins Outcome = 1 // the side listed first in the game won

	// Any other value means the side listed second won. The arena writes
	// -1 for this, older logs use 2.
	SecondWins Outcome = 2
)

// ResultAt returns the Result of the outcome when it is the i-th (zero
// based) game of the sequence. On even games player 1 is listed first, on
// odd games the order is reversed.
func (outcome Outcome) ResultAt(i int) Result {
	switch {
	case outcome == Drawn:
		return Draw
	case (outcome == FirstWins) == (i%2 == 0):
		return Win
	default:
		return Loss
	}
}

// Tally is the aggregate win/draw/loss count of a sequence of outcomes,
// counted from player 1's side, along with each count's share of the total
// in percent.
type Tally struct {
	Wins   int `yaml:"wins"`
	Draws  int `yaml:"draws"`
	Losses int `yaml:"losses"`

	WinPct  float64 `yaml:"win-pct"`
	DrawPct float64 `yaml:"draw-pct"`
	LossPct float64 `yaml:"loss-pct"`
}

// Total returns the number of games in the tally.
func (tally Tally) Total() int {
	return tally.Wins + tally.Draws + tally.Losses
}

// ComputeTally counts the wins, draws, and losses in the given outcomes and
// calculates their percentages, rounded to two decimal places with halves
// rounded away from zero. An empty sequence yields an all zero Tally.
func ComputeTally(outcomes []Outcome) Tally {
	var tally Tally
	for i, outcome := range outcomes {
		tally.add(outcome.ResultAt(i))
	}

	tally.fillPercentages()
	return tally
}

func (tally *Tally) add(result Result) {
	switch result {
	case Win:
		tally.Wins++
	case Draw:
		tally.Draws++
	case Loss:
		tally.Losses++
	}
}

func (tally *Tally) fillPercentages() {
	total := tally.Total()
	if total == 0 {
		return
	}

	tally.WinPct = percentage(tally.Wins, total)
	tally.DrawPct = percentage(tally.Draws, total)
	tally.LossPct = percentage(tally.Losses, total)
}

// Colours splits player 1's tally by the colour player 1 had in each game.
type Colours struct {
	White Tally `yaml:"white"`
	Black Tally `yaml:"black"`
}

// ComputeColours tallies player 1's results separately for the games it
// played as white, the even games, and as black, the odd games.
func ComputeColours(outcomes []Outcome) Colours {
	var colours Colours
	for i, outcome := range outcomes {
		side := &colours.White
		if i%2 == 1 {
			side = &colours.Black
		}

		side.add(outcome.ResultAt(i))
	}

	colours.White.fillPercentages()
	colours.Black.fillPercentages()
	return colours
}

func percentage(count, total int) float64 {
	return math.Round(float64(count)/float64(total)*100*100) / 100
}

// Series holds the cumulative score of each player after every game.
type Series struct {
	Player1 []int `yaml:"player1"`
	Player2 []int `yaml:"player2"`
}

// Len returns the number of games in the series.
func (series Series) Len() int {
	return len(series.Player1)
}

// Final returns the scores of both the players after the last game, or
// zeros if the series is empty.
func (series Series) Final() (player1, player2 int) {
	if n := series.Len(); n > 0 {
		return series.Player1[n-1], series.Player2[n-1]
	}

	return 0, 0
}

// ComputeScoreSeries calculates the running score of both players over the
// given outcomes. A draw gives each player 1 point while a decisive game
// gives the winner 2 points. Entry i of each series is the player's score
// right after game i.
func ComputeScoreSeries(outcomes []Outcome) Series {
	series := Series{
		Player1: make([]int, 0, len(outcomes)),
		Player2: make([]int, 0, len(outcomes)),
	}

	score1, score2 := 0, 0
	for i, outcome := range outcomes {
		points1, points2 := outcome.ResultAt(i).Points()
		score1 += points1
		score2 += points2

		series.Player1 = append(series.Player1, score1)
		series.Player2 = append(series.Player2, score2)
	}

	return series
}
