// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
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

package stats

import "math"

// Elo returns the likely elo difference of player 1 over player 2 along
// with its p < 0.05 upper bound and lower bound, called mu, muMax, and
// muMin respectively. All three are zero when no games were played.
func Elo(ws, ds, ls int) (muMin float64, mu float64, muMax float64) {
	if ws+ds+ls == 0 {
		return 0, 0, 0
	}

	return bounds(trinomial(ws, ds, ls))
}

// PentaElo calculates the best fit elo for the given game pair results using
// a pentanomial model, along with its error bounds with p < 0.05.
func PentaElo(lls, lds, dds, wds, wws int) (muMin float64, mu float64, muMax float64) {
	if lls+lds+dds+wds+wws == 0 {
		return 0, 0, 0
	}

	return bounds(pentanomial(lls, lds, dds, wds, wws))
}

// ErrorMargin returns the larger distance from mu to one of its bounds.
func ErrorMargin(muMin, mu, muMax float64) float64 {
	return math.Abs(math.Max(muMax-mu, mu-muMin))
}

// LOS returns the likelihood of superiority of player 1 over player 2, the
// probability that player 1 is the stronger one. Draws do not affect it.
func LOS(ws, ls int) float64 {
	if ws+ls == 0 {
		return 0.5
	}

	return 0.5 + 0.5*math.Erf(float64(ws-ls)/math.Sqrt(2*float64(ws+ls)))
}
