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

// Package stats estimates the strength difference between the two players
// of a match from its game results.
package stats

import "math"

// outcomes is a discrete distribution of per-game (or per-pair) scores,
// each score normalized to the range [0, 1].
type outcomes []struct {
	p     float64 // measured probability
	score float64 // normalized score
}

// mean returns the empirical mean score of the distribution.
func (dist outcomes) mean() (mu float64) {
	for _, o := range dist {
		mu += o.p * o.score
	}
	return mu
}

// variance returns the variance of the distribution's score around mu.
func (dist outcomes) variance(mu float64) (v float64) {
	for _, o := range dist {
		v += o.p * math.Pow(o.score-mu, 2)
	}
	return v
}

// trinomial builds a win/draw/loss distribution. A 0.5 prior is added to
// every count so that empty counts never produce infinities.
func trinomial(ws, ds, ls int) (dist outcomes, n float64) {
	n = float64(ws+ds+ls) + 1.5
	return outcomes{
		{(float64(ws) + 0.5) / n, 1.0},
		{(float64(ds) + 0.5) / n, 0.5},
		{(float64(ls) + 0.5) / n, 0.0},
	}, n
}

// pentanomial builds a game pair distribution, with a 0.5 prior added to
// every count like trinomial.
func pentanomial(lls, lds, dds, wds, wws int) (dist outcomes, n float64) {
	n = float64(lls+lds+dds+wds+wws) + 2.5
	return outcomes{
		{(float64(wws) + 0.5) / n, 1.00},
		{(float64(wds) + 0.5) / n, 0.75},
		{(float64(dds) + 0.5) / n, 0.50},
		{(float64(lds) + 0.5) / n, 0.25},
		{(float64(lls) + 0.5) / n, 0.00},
	}, n
}

// bounds returns the p < 0.05 confidence interval of the elo for the
// given distribution measured over n samples.
func bounds(dist outcomes, n float64) (muMin float64, mu float64, muMax float64) {
	mu = dist.mean()
	sigma := math.Sqrt(dist.variance(mu)) / math.Sqrt(n)

	muMin = mu + phiInv(0.025)*sigma // lower bound
	muMax = mu + phiInv(0.975)*sigma // upper bound

	return clampElo(muMin), clampElo(mu), clampElo(muMax)
}

// clampElo converts a score fraction to an elo difference, returning zero
// for fractions which have no finite elo.
func clampElo(x float64) float64 {
	switch {
	case x <= 0, x >= 1:
		return 0

	default:
		elo := -400 * math.Log10(1/x-1)
		if elo == 0 {
			return 0 // not -0
		}
		return elo
	}
}

// eloToWDL converts the bayesian elo to its wdl probabilities.
func eloToWDL(elo, dlo float64) (w float64, d float64, l float64) {
	w = 1 / (1 + math.Pow(10, (-elo+dlo)/400)) // win probability sigmoid
	l = 1 / (1 + math.Pow(10, (+elo+dlo)/400)) // loss probability sigmoid
	d = 1 - w - l                              // draw probability curve
	return w, d, l
}

// wdlToElo converts the wdl probabilities to it's bayesian elo.
func wdlToElo(w, d, l float64) (elo float64, dlo float64) {
	elo = 200 * math.Log10((w/l)*((1-l)/(1-w)))
	dlo = 200 * math.Log10(((1-l)/l)*((1-w)/w))
	return elo, dlo
}

func phiInv(p float64) float64 {
	return math.Sqrt2 * math.Erfinv(2*p-1)
}

func nEloToScore(nelo, r float64) float64 {
	return nelo*math.Sqrt2*r/(800/math.Ln10) + 0.5
}
