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

package search

import (
	"fmt"
	"math"

	"laptudirm.com/x/corners/pkg/game"
)

// Side is the role a team plays in the search: team A maximizes the
// rating and team B minimizes it.
type Side uint8

const (
	Maximizer Side = iota
	Minimizer
)

// SideOf returns the side played by the given team. It panics if the team
// is not one of the two players.
func SideOf(team game.Team) Side {
	switch team {
	case game.TeamA:
		return Maximizer
	case game.TeamB:
		return Minimizer
	default:
		panic(fmt.Sprintf("search: team %q has no side", team.String()))
	}
}

// Initial returns the worst possible value for the side, which every real
// value improves upon.
func (side Side) Initial() float64 {
	if side == Maximizer {
		return math.Inf(-1)
	}

	return math.Inf(+1)
}

// Better returns the value the side prefers out of a and b. On a tie the
// first argument is returned.
func (side Side) Better(a, b float64) float64 {
	if side == Maximizer {
		if b > a {
			return b
		}
		return a
	}

	if b < a {
		return b
	}
	return a
}

func (side Side) String() string {
	if side == Maximizer {
		return "maximizer"
	}

	return "minimizer"
}
