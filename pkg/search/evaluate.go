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

	"laptudirm.com/x/corners/pkg/game"
	"laptudirm.com/x/corners/pkg/tree"
)

// WinScore is the magnitude of the rating given to a decided position.
const WinScore = 1000

// Evaluator statically rates a position where the search stops, either
// because the game is over or because the depth limit was reached.
//
// A nil Evaluator leaves the stored rating of such nodes untouched, so
// they keep the neutral value they were created with.
type Evaluator func(node *tree.Node) float64

// Occupancy rates a position by how many of its target corner cells each
// team holds: team A's count minus team B's count, or ±WinScore once a
// team has won.
func Occupancy(node *tree.Node) float64 {
	switch node.Winner() {
	case game.TeamA:
		return +WinScore
	case game.TeamB:
		return -WinScore
	}

	config := node.Config()
	return float64(config.CornerCount(node.Board, game.TeamA) - config.CornerCount(node.Board, game.TeamB))
}

// NewEvaluator returns the evaluator with the given name. The "none"
// evaluator, also selected by an empty name, is nil.
func NewEvaluator(name string) (Evaluator, error) {
	switch name {
	case "none", "":
		return nil, nil
	case "occupancy":
		return Occupancy, nil
	default:
		return nil, fmt.Errorf("new evaluator: invalid heuristic %s", name)
	}
}
