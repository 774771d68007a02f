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

package match

import "laptudirm.com/x/corners/pkg/game"

// Result represents the result of a single game from the point of view of
// team A.
type Result int

const (
	Win  Result = +1
	Draw Result = 0
	Loss Result = -1
)

// GameLostBy maps the losing team to the game's Result.
var GameLostBy = [game.TeamN]Result{
	game.TeamA: Loss,
	game.TeamB: Win,
}

// GameWonBy maps the winning team to the game's Result.
var GameWonBy = [game.TeamN]Result{
	game.Empty: Draw,
	game.TeamA: Win,
	game.TeamB: Loss,
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

// PairResult represents the result of a game pair, in which both engines
// play both teams, from the point of view of the first engine.
type PairResult int

const (
	LossLoss PairResult = iota // Engine 2 double kills
	DrawLoss                   // Engine 2 wins and holds
	DrawDraw                   // Win-Loss or Draw-Draw
	WinDraw                    // Engine 1 wins and holds
	WinWin                     // Engine 1 double kills
)

// GetPairResult returns the PairResult given the Result of each game in
// the pair, both seen from the first engine.
func GetPairResult(result1, result2 Result) PairResult {
	return PairResult(result1 + result2 + 2)
}
