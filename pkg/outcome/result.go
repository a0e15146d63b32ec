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

// Result represents the result of a single game from player 1's side.
type Result int

const (
	Win  Result = +1
	Draw Result = 0
	Loss Result = -1
)

// Points returns the score awarded to each player for the given Result.
// Every game is worth two points, split 1-1 on a draw or 2-0 otherwise.
func (result Result) Points() (player1, player2 int) {
	return int(1 + result), int(1 - result)
}

// String returns a string representation of the given Result.
func (result Result) String() string {
	switch result {
	case Win:
		return "1-0"
	case Draw:
		return "1/2-1/2"
	case Loss:
		return "0-1"
	default:
		return "?-?"
	}
}

// PairResult represents the result of a single game pair.
type PairResult int

const (
	WinWin   = PairResult(Win + Win)   // Player 1 Double kills
	WinDraw  = PairResult(Win + Draw)  // Player 1 Wins and Holds
	DrawDraw = PairResult(Draw + Draw) // Win-Loss or Draw-Draw
	DrawLoss = PairResult(Draw + Loss) // Player 2 Wins and Holds
	LossLoss = PairResult(Loss + Loss) // Player 2 Double kills
)

// GetPairResult returns the PairResult given the Result of each game in the
// pair. The two games of a pair are played with the sides swapped.
func GetPairResult(result1, result2 Result) PairResult {
	return PairResult(result1 + result2)
}
