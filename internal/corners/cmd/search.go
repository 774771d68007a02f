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

package cmd

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/corners/pkg/game"
	"laptudirm.com/x/corners/pkg/render"
	"laptudirm.com/x/corners/pkg/search"
	"laptudirm.com/x/corners/pkg/tree"
)

// corners search
func Search(settings *Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [board]",
		Short: "Search a position and print its value and best move",
		Args:  cobra.MaximumNArgs(1),
		Long: heredoc.Doc(`search evaluates the given board, or the starting board if
			none is given, and prints the value of the position for the
			team to move along with the move which achieves it.

			A board is written as its rows of 0 (empty), 1 (team A), and
			2 (team B) separated by slashes, like 22000/20000/00000/00001/00011.
			Positive values favor team A, negative values team B.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := settings.Config.StartBoard()
			if err != nil {
				return err
			}

			if len(args) == 1 {
				if board, err = game.ParseBoard(args[0]); err != nil {
					return err
				}
			}

			marker, _ := cmd.Flags().GetString("to-move")
			toMove, err := game.NewTeam(marker)
			if err != nil || !toMove.IsPlayer() {
				return fmt.Errorf("search: invalid team to move %q", marker)
			}

			gameConfig, searcher, err := newSearcher(cmd, settings)
			if err != nil {
				return err
			}

			if board.Size() != gameConfig.Size {
				return fmt.Errorf("search: %dx%d board does not match configured size %d", board.Size(), board.Size(), gameConfig.Size)
			}

			root := tree.NewRoot(gameConfig, board, toMove)

			var best *tree.Node
			var value float64
			working(cmd.ErrOrStderr(), "searching...", func() {
				best, value = searcher.BestMove(root)
			})

			logrus.WithFields(logrus.Fields{
				"algorithm": searcher.Algorithm,
				"depth":     gameConfig.MaxDepth,
				"nodes":     searcher.Nodes,
			}).Debug("search complete")

			out := cmd.OutOrStdout()
			fmt.Fprint(out, render.Board(root))
			fmt.Fprintf(out, "\nValue:     %v\n", value)
			switch winner := root.Winner(); {
			case winner != game.Empty:
				fmt.Fprintf(out, "Best Move: none, team %s has already won\n", winner)
			case best == nil:
				fmt.Fprintf(out, "Best Move: none, team %s has no legal moves\n", toMove)
			default:
				fmt.Fprintf(out, "Best Move: %s\n", best.LastMove)
			}
			fmt.Fprintf(out, "Nodes:     %d\n", searcher.Nodes)

			return nil
		},
	}

	cmd.Flags().StringP("to-move", "m", "1", "Team to move (1 or 2)")
	addSearchFlags(cmd)

	return cmd
}

func addSearchFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("algorithm", "a", "", "Search algorithm (minimax or alpha-beta)")
	cmd.Flags().IntP("depth", "d", 0, "Maximum search depth")
	cmd.Flags().String("heuristic", "", "Static evaluation (none or occupancy)")
}

// newSearcher builds the game configuration and the searcher from the
// loaded configuration and the search flags which were set.
func newSearcher(cmd *cobra.Command, settings *Settings) (*game.Config, *search.Searcher, error) {
	options := *settings.Config

	if cmd.Flag("algorithm").Changed {
		options.Algorithm, _ = cmd.Flags().GetString("algorithm")
	}

	if cmd.Flag("heuristic").Changed {
		options.Heuristic, _ = cmd.Flags().GetString("heuristic")
	}

	if cmd.Flag("depth").Changed {
		options.MaxDepth, _ = cmd.Flags().GetInt("depth")
		if options.MaxDepth < 1 {
			return nil, nil, fmt.Errorf("search: depth %d is not positive", options.MaxDepth)
		}
	}

	gameConfig := options.Game()
	searcher, err := options.Searcher(gameConfig)
	if err != nil {
		return nil, nil, err
	}

	if logrus.IsLevelEnabled(logrus.TraceLevel) {
		searcher.Trace = func(node *tree.Node, depth int) {
			logrus.WithFields(logrus.Fields{
				"depth": depth,
				"move":  node.LastMove,
				"board": node.Board.String(),
			}).Trace("visiting node")
		}
	}

	return gameConfig, searcher, nil
}
