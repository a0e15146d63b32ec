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

// Penta counts the game pairs of a sequence by their PairResult.
type Penta struct {
	LossLoss int `yaml:"loss-loss"`
	DrawLoss int `yaml:"draw-loss"`
	DrawDraw int `yaml:"draw-draw"`
	WinDraw  int `yaml:"win-draw"`
	WinWin   int `yaml:"win-win"`
}

// Pairs returns the number of game pairs counted.
func (penta Penta) Pairs() int {
	return penta.LossLoss + penta.DrawLoss + penta.DrawDraw + penta.WinDraw + penta.WinWin
}

// ComputePenta groups the outcomes into pairs of consecutive games, which
// share an opening with the sides swapped, and counts each kind of pair.
// A trailing game without a partner is not counted.
func ComputePenta(outcomes []Outcome) Penta {
	var penta Penta
	for i := 0; i+1 < len(outcomes); i += 2 {
		switch GetPairResult(outcomes[i].ResultAt(i), outcomes[i+1].ResultAt(i+1)) {
		case LossLoss:
			penta.LossLoss++
		case DrawLoss:
			penta.DrawLoss++
		case DrawDraw:
			penta.DrawDraw++
		case WinDraw:
			penta.WinDraw++
		case WinWin:
			penta.WinWin++
		}
	}

	return penta
}
