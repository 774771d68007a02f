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
	"github.com/spf13/cobra"

	"laptudirm.com/x/corners/pkg/match"
)

// corners match
func Match(settings *Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Play a series of games between two engine configurations",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`match plays game pairs between two engines, each configured
			with its own algorithm, depth, and heuristic. In every pair
			both engines play both teams from the same opening, and the
			score is reported with elo estimates after every pair.

			Games which reach the move limit are adjudicated by how many
			of its target corner cells each team holds.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			var engines [2]match.EngineConfig
			for i := range engines {
				engine := &engines[i]
				engine.Algorithm, _ = cmd.Flags().GetString(fmt.Sprintf("algorithm%d", i+1))
				engine.Depth, _ = cmd.Flags().GetInt(fmt.Sprintf("depth%d", i+1))
				engine.Heuristic, _ = cmd.Flags().GetString(fmt.Sprintf("heuristic%d", i+1))

				if engine.Algorithm == "" {
					engine.Algorithm = settings.Config.Algorithm
				}
				if engine.Heuristic == "" {
					engine.Heuristic = settings.Config.Heuristic
				}
				if engine.Depth <= 0 {
					engine.Depth = settings.Config.MaxDepth
				}

				engine.Name = fmt.Sprintf("%d:%s/%d/%s", i+1, engine.Algorithm, engine.Depth, engine.Heuristic)

				// Fail before any game is started.
				if _, err := engine.Searcher(settings.Config.Game()); err != nil {
					return err
				}
			}

			gameConfig := settings.Config.Game()

			var book *match.OpeningBook
			openings, _ := cmd.Flags().GetString("openings")
			order, _ := cmd.Flags().GetString("order")
			if openings != "" {
				var err error
				if book, err = match.NewBook(openings, order, gameConfig.Size); err != nil {
					return err
				}
			} else {
				start, err := settings.Config.StartBoard()
				if err != nil {
					return err
				}

				if book, err = match.NewBookFromBoards(order, start); err != nil {
					return err
				}
			}

			pairs, _ := cmd.Flags().GetInt("pairs")
			concurrency, _ := cmd.Flags().GetInt("concurrency")

			series := match.NewSeries(match.SeriesConfig{
				Game:        gameConfig,
				MoveLimit:   settings.Config.MoveLimit,
				Engines:     engines,
				GamePairs:   pairs,
				Concurrency: concurrency,
			}, book)
			series.Output = cmd.OutOrStdout()

			return series.Start()
		},
	}

	for i := 1; i <= 2; i++ {
		cmd.Flags().String(fmt.Sprintf("algorithm%d", i), "", fmt.Sprintf("Search algorithm of engine %d", i))
		cmd.Flags().Int(fmt.Sprintf("depth%d", i), 0, fmt.Sprintf("Search depth of engine %d", i))
		cmd.Flags().String(fmt.Sprintf("heuristic%d", i), "", fmt.Sprintf("Static evaluation of engine %d", i))
	}

	cmd.Flags().IntP("pairs", "p", 10, "Number of game pairs to play")
	cmd.Flags().IntP("concurrency", "j", 1, "Number of games to play at once")
	cmd.Flags().StringP("openings", "o", "", "File with one starting board per line")
	cmd.Flags().String("order", "sequential", "Order of the openings (sequential or random)")

	return cmd
}
