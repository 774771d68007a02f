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
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/corners/pkg/game"
	"laptudirm.com/x/corners/pkg/render"
	"laptudirm.com/x/corners/pkg/tree"
)

// corners play
func Play(settings *Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game against the engine",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`play starts a game from the starting board. Team A (1) moves
			first. The human plays the team given with --human and the
			engine plays the other one; with --human none the engine
			plays both teams.

			Moves are typed as the source square followed by the
			destination square, like e5d4. Type quit to stop the game.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			human, _ := cmd.Flags().GetString("human")

			humanTeam := game.Empty
			if human != "none" {
				var err error
				if humanTeam, err = game.NewTeam(human); err != nil || !humanTeam.IsPlayer() {
					return fmt.Errorf("play: invalid human team %q", human)
				}
			}

			board, err := settings.Config.StartBoard()
			if err != nil {
				return err
			}

			gameConfig, searcher, err := newSearcher(cmd, settings)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			input := bufio.NewScanner(cmd.InOrStdin())

			node := tree.NewRoot(gameConfig, board, game.TeamA)
			fmt.Fprint(out, render.Board(node))

			if winner := node.Winner(); winner != game.Empty {
				fmt.Fprintf(out, "Team %s fills the corner and wins.\n", winner)
				return nil
			}

			for ply := 0; ply < settings.Config.MoveLimit; ply++ {
				var next *tree.Node
				if node.ToMove == humanTeam {
					if next, err = readMove(out, input, node); err != nil {
						return err
					}

					if next == nil {
						fmt.Fprintln(out, "Game stopped.")
						return nil
					}
				} else {
					working(cmd.ErrOrStderr(), "thinking...", func() {
						next, _ = searcher.BestMove(node)
					})

					if next == nil {
						fmt.Fprintf(out, "Team %s has no legal moves, team %s wins.\n", node.ToMove, node.ToMove.Other())
						return nil
					}

					logrus.WithFields(logrus.Fields{
						"rating": node.Rating,
						"nodes":  searcher.Nodes,
					}).Debug("engine search complete")
				}

				fmt.Fprintf(out, "\nTeam %s plays %s\n", node.ToMove, next.LastMove)
				fmt.Fprint(out, render.Board(next))

				if winner := next.Winner(); winner != game.Empty {
					fmt.Fprintf(out, "Team %s fills the corner and wins.\n", winner)
					return nil
				}

				// Keep only the chosen position; the rest of the searched
				// tree is garbage once the old root is dropped.
				node = tree.NewRoot(gameConfig, next.Board, next.ToMove)
			}

			fmt.Fprintf(out, "Move limit of %d reached.\n", settings.Config.MoveLimit)
			return nil
		},
	}

	cmd.Flags().String("human", "1", "Team played by the human (1, 2, or none)")
	addSearchFlags(cmd)

	return cmd
}

// readMove prompts until a legal move is entered and returns the position
// it leads to. It returns nil if the input ends or the player quits.
func readMove(out io.Writer, input *bufio.Scanner, node *tree.Node) (*tree.Node, error) {
	for {
		fmt.Fprintf(out, "Team %s> ", node.ToMove)
		if !input.Scan() {
			return nil, input.Err()
		}

		line := strings.TrimSpace(input.Text())
		switch line {
		case "":
			continue
		case "quit", "exit":
			return nil, nil
		}

		move, err := game.ParseMove(line)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}

		if !node.Board.Contains(move.From) || !node.Board.Contains(move.To) {
			fmt.Fprintf(out, "illegal move %s: off the board\n", move)
			continue
		}

		if next := node.Child(move); next != nil {
			return next, nil
		}

		fmt.Fprintf(out, "illegal move %s\n", move)
	}
}
