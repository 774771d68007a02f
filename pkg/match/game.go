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

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/corners/pkg/game"
	"laptudirm.com/x/corners/pkg/search"
	"laptudirm.com/x/corners/pkg/tree"
)

// EngineConfig describes one searching player.
type EngineConfig struct {
	Name      string `yaml:"name"`
	Algorithm string `yaml:"algorithm"`
	Depth     int    `yaml:"depth"`
	Heuristic string `yaml:"heuristic"`
}

// Searcher creates a searcher for the engine. The engine's depth replaces
// the one from the game configuration. An engine has to search at least one
// ply to pick a move.
func (engine EngineConfig) Searcher(config *game.Config) (*search.Searcher, error) {
	if engine.Depth < 1 {
		return nil, fmt.Errorf("engine %s: search depth %d is not positive", engine.Name, engine.Depth)
	}

	algorithm, err := search.ParseAlgorithm(engine.Algorithm)
	if err != nil {
		return nil, err
	}

	evaluate, err := search.NewEvaluator(engine.Heuristic)
	if err != nil {
		return nil, err
	}

	engineConfig := *config
	engineConfig.MaxDepth = engine.Depth

	searcher := search.New(&engineConfig, algorithm)
	searcher.Evaluate = evaluate
	return searcher, nil
}

type Config struct {
	Game  *game.Config
	Start game.Board

	// MoveLimit is the number of plies after which the game is adjudicated
	// by piece occupancy.
	MoveLimit int

	// Engines[0] plays team A, which moves first, and Engines[1] team B.
	Engines [2]EngineConfig
}

// Reasons for the end of a game.
const (
	ReasonCorner    = "Corner Filled"
	ReasonNoMoves   = "No Legal Moves"
	ReasonMoveLimit = "Move Limit"
)

// Run plays a single game and returns its result from team A's point of
// view along with the reason the game ended.
func Run(config *Config) (Result, string, error) {
	var searchers [2]*search.Searcher
	for i, engine := range config.Engines {
		searcher, err := engine.Searcher(config.Game)
		if err != nil {
			return Draw, "", err
		}

		searchers[i] = searcher
	}

	node := tree.NewRoot(config.Game, config.Start.Clone(), game.TeamA)
	if winner := node.Winner(); winner != game.Empty {
		return GameWonBy[winner], ReasonCorner, nil
	}

	engineToMove := 0
	for ply := 0; ply < config.MoveLimit; ply++ {
		best, value := searchers[engineToMove].BestMove(node)
		if best == nil {
			return GameLostBy[node.ToMove], ReasonNoMoves, nil
		}

		logrus.WithFields(logrus.Fields{
			"engine": config.Engines[engineToMove].Name,
			"move":   best.LastMove,
			"value":  value,
		}).Trace("engine moved")

		// Only the chosen position is kept, the rest of the tree is
		// dropped along with the old root.
		node = tree.NewRoot(config.Game, best.Board, best.ToMove)
		if winner := node.Winner(); winner != game.Empty {
			return GameWonBy[winner], ReasonCorner, nil
		}

		engineToMove ^= 1
	}

	switch score := search.Occupancy(node); {
	case score > 0:
		return Win, ReasonMoveLimit, nil
	case score < 0:
		return Loss, ReasonMoveLimit, nil
	default:
		return Draw, ReasonMoveLimit, nil
	}
}
