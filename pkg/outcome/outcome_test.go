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

package outcome

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultAt(t *testing.T) {
	cases := []struct {
		outcome Outcome
		index   int
		want    Result
	}{
		{Drawn, 0, Draw},
		{Drawn, 1, Draw},
		{FirstWins, 0, Win},
		{FirstWins, 1, Loss},
		{SecondWins, 0, Loss},
		{SecondWins, 1, Win},
		{Outcome(-1), 2, Loss},
		{Outcome(-1), 3, Win},
		{Outcome(7), 5, Win},
	}

	for _, c := range cases {
		assert.Equalf(t, c.want, c.outcome.ResultAt(c.index), "outcome %d at game %d", c.outcome, c.index)
	}
}

func TestComputeTally(t *testing.T) {
	cases := []struct {
		name     string
		outcomes []Outcome
		want     Tally
	}{
		{
			name:     "single draw",
			outcomes: []Outcome{0},
			want:     Tally{Draws: 1, DrawPct: 100},
		},
		{
			name:     "first side wins on even game",
			outcomes: []Outcome{1},
			want:     Tally{Wins: 1, WinPct: 100},
		},
		{
			name:     "second side wins on even game",
			outcomes: []Outcome{2},
			want:     Tally{Losses: 1, LossPct: 100},
		},
		{
			name:     "first side wins twice",
			outcomes: []Outcome{1, 1},
			want:     Tally{Wins: 1, Losses: 1, WinPct: 50, LossPct: 50},
		},
		{
			name:     "thirds are rounded",
			outcomes: []Outcome{1, 0, 1},
			want:     Tally{Wins: 2, Draws: 1, WinPct: 66.67, DrawPct: 33.33},
		},
		{
			name:     "arena encoding",
			outcomes: []Outcome{1, -1, -1, 1, 0, 0, 1, 1},
			want:     Tally{Wins: 3, Draws: 2, Losses: 3, WinPct: 37.5, DrawPct: 25, LossPct: 37.5},
		},
		{
			name:     "empty",
			outcomes: nil,
			want:     Tally{},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, ComputeTally(c.outcomes))
		})
	}
}

func TestComputeScoreSeries(t *testing.T) {
	cases := []struct {
		name     string
		outcomes []Outcome
		player1  []int
		player2  []int
	}{
		{"single draw", []Outcome{0}, []int{1}, []int{1}},
		{"first side wins on even game", []Outcome{1}, []int{2}, []int{0}},
		{"second side wins on even game", []Outcome{2}, []int{0}, []int{2}},
		{"first side wins twice", []Outcome{1, 1}, []int{2, 2}, []int{0, 2}},
		{"mixed", []Outcome{0, 2, -1, 1}, []int{1, 3, 3, 3}, []int{1, 1, 3, 5}},
		{"empty", nil, []int{}, []int{}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			series := ComputeScoreSeries(c.outcomes)
			assert.Equal(t, c.player1, series.Player1)
			assert.Equal(t, c.player2, series.Player2)
		})
	}
}

func TestSeriesFinal(t *testing.T) {
	p1, p2 := ComputeScoreSeries(nil).Final()
	assert.Zero(t, p1)
	assert.Zero(t, p2)

	p1, p2 = ComputeScoreSeries([]Outcome{1, 0, 1}).Final()
	assert.Equal(t, 5, p1)
	assert.Equal(t, 1, p2)
}

// TestInvariants checks the tally and series against each other on random
// outcome sequences.
func TestInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for run := 0; run < 200; run++ {
		outcomes := make([]Outcome, 1+rng.Intn(100))
		for i := range outcomes {
			outcomes[i] = Outcome(rng.Intn(4) - 1)
		}

		tally := ComputeTally(outcomes)
		series := ComputeScoreSeries(outcomes)

		require.Equal(t, len(outcomes), tally.Total())
		require.Equal(t, len(outcomes), series.Len())
		require.Len(t, series.Player2, len(outcomes))

		for i := range outcomes {
			require.Equal(t, 2*(i+1), series.Player1[i]+series.Player2[i], "combined score after game %d", i)
		}

		p1, p2 := series.Final()
		assert.Equal(t, 2*tally.Wins+tally.Draws, p1)
		assert.Equal(t, 2*tally.Losses+tally.Draws, p2)

		assert.InDelta(t, 100, tally.WinPct+tally.DrawPct+tally.LossPct, 0.03)
	}
}

func TestComputeColours(t *testing.T) {
	// white: win, draw, loss; black: win, loss, win
	outcomes := []Outcome{1, -1, 0, 1, -1, -1}

	colours := ComputeColours(outcomes)
	assert.Equal(t, Tally{Wins: 1, Draws: 1, Losses: 1, WinPct: 33.33, DrawPct: 33.33, LossPct: 33.33}, colours.White)
	assert.Equal(t, Tally{Wins: 2, Losses: 1, WinPct: 66.67, LossPct: 33.33}, colours.Black)

	tally := ComputeTally(outcomes)
	assert.Equal(t, tally.Wins, colours.White.Wins+colours.Black.Wins)
	assert.Equal(t, tally.Draws, colours.White.Draws+colours.Black.Draws)
	assert.Equal(t, tally.Losses, colours.White.Losses+colours.Black.Losses)

	assert.Equal(t, Colours{}, ComputeColours(nil))
}

func TestComputePenta(t *testing.T) {
	// pairs: (1,-1) win-win, (1,1) win-loss, (0,0) draw-draw,
	// (0,2) draw-win, (2,1) loss-loss, trailing 1 ignored
	outcomes := []Outcome{1, -1, 1, 1, 0, 0, 0, 2, 2, 1, 1}

	penta := ComputePenta(outcomes)
	assert.Equal(t, Penta{LossLoss: 1, DrawDraw: 2, WinDraw: 1, WinWin: 1}, penta)
	assert.Equal(t, 5, penta.Pairs())

	assert.Zero(t, ComputePenta([]Outcome{1}).Pairs())
}

func TestResultString(t *testing.T) {
	assert.Equal(t, "1-0", Win.String())
	assert.Equal(t, "1/2-1/2", Draw.String())
	assert.Equal(t, "0-1", Loss.String())
	assert.Equal(t, "?-?", Result(5).String())
}

func TestPoints(t *testing.T) {
	for _, result := range []Result{Win, Draw, Loss} {
		p1, p2 := result.Points()
		assert.Equal(t, 2, p1+p2, result.String())
	}
}
