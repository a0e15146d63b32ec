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

// StoppingBounds returns the log-likelihood ratios at which a sequential
// probability ratio test with the given type I and II error probabilities
// accepts H0 (lower) or H1 (upper).
func StoppingBounds(alpha, beta float64) (lower float64, upper float64) {
	lower = math.Log(beta / (1 - alpha))
	upper = math.Log((1 - beta) / alpha)
	return
}

// SPRT does a statistical probability ratio test calculation on the given
// number of wins, draws, and losses and returns the log-likelihood ratio
// (llr) for whether elo0 or elo1 is more likely to be correct.
func SPRT(ws, ds, ls int, elo0, elo1 float64) (llr float64) {
	w := float64(ws) + 0.5
	d := float64(ds) + 0.5
	l := float64(ls) + 0.5

	N := w + d + l // total number of games
	_, dlo := wdlToElo(w/N, d/N, l/N)

	w0, d0, l0 := eloToWDL(elo0, dlo) // elo0 WDL probabilities
	w1, d1, l1 := eloToWDL(elo1, dlo) // elo1 WDL probabilities

	// log-likelihood ratio (llr)
	return w*math.Log(w1/w0) +
		d*math.Log(d1/d0) +
		l*math.Log(l1/l0)
}

// PentaSPRT takes the results of the game pairs and the two elo hypotheses
// and returns a log-likelihood ratio which compares the fit of the two
// hypotheses to the game pair data using a pentanomial model.
func PentaSPRT(lls, lds, dds, wds, wws int, elo0, elo1 float64) (llr float64) {
	dist, N := pentanomial(lls, lds, dds, wds, wws)

	// standard deviation (multiplied by sqrt of N) of the random variable
	r := math.Sqrt(dist.variance(dist.mean()))

	// deviation to the score bounds
	r0 := dist.variance(nEloToScore(elo0, r))
	r1 := dist.variance(nEloToScore(elo1, r))

	if r0 == 0 || r1 == 0 {
		return 0
	}

	// note: this is not the exact llr formula but rather a simplified yet
	// very accurate approximation. see http://hardy.uhasselt.be/Fishtest/support_MLE_multinomial.pdf
	return 0.5 * N * math.Log(r0/r1)
}
