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

// Package stats estimates the strength difference between two engines
// from the results of the games they played against each other.
package stats

import "math"

// Elo returns the likely elo difference of the first engine along with
// its p < 0.05 lower and upper bounds, from its game results. A Dirichlet
// prior of 0.5 is added to each count.
func Elo(wins, draws, losses int) (lower float64, elo float64, upper float64) {
	n := float64(wins+draws+losses) + 1.5

	w := (float64(wins) + 0.5) / n
	d := (float64(draws) + 0.5) / n
	l := (float64(losses) + 0.5) / n

	// empirical mean score
	mu := w + d/2

	sigma := math.Sqrt(
		w*math.Pow(1-mu, 2)+
			d*math.Pow(0.5-mu, 2)+
			l*math.Pow(0-mu, 2),
	) / math.Sqrt(n)

	return scoreToElo(mu + phiInv(0.025)*sigma),
		scoreToElo(mu),
		scoreToElo(mu + phiInv(0.975)*sigma)
}

// PentaElo is Elo for game pair results, which removes the noise of the
// openings since both engines play both sides of each one. The pairs are
// counted by outcome, from a double loss at index 0 to a double win at
// index 4.
func PentaElo(pairs [5]int) (lower float64, elo float64, upper float64) {
	n := 2.5
	for _, count := range pairs {
		n += float64(count)
	}

	// Score of each outcome, from loss-loss to win-win.
	scores := [5]float64{0, 0.25, 0.5, 0.75, 1}

	var p [5]float64
	mu := 0.0
	for i, count := range pairs {
		p[i] = (float64(count) + 0.5) / n
		mu += p[i] * scores[i]
	}

	variance := 0.0
	for i := range p {
		variance += p[i] * math.Pow(scores[i]-mu, 2)
	}

	sigma := math.Sqrt(variance) / math.Sqrt(n)

	return scoreToElo(mu + phiInv(0.025)*sigma),
		scoreToElo(mu),
		scoreToElo(mu + phiInv(0.975)*sigma)
}

// scoreToElo converts an expected score to an elo difference. Scores of
// 0 or 1 have no finite elo and are reported as 0.
func scoreToElo(x float64) float64 {
	switch {
	case x <= 0, x >= 1:
		return 0

	default:
		return -400 * math.Log10(1/x-1)
	}
}

// phiInv is the quantile function of the standard normal distribution.
func phiInv(p float64) float64 {
	return math.Sqrt2 * math.Erfinv(2*p-1)
}
