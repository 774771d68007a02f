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
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/corners/pkg/game"
	"laptudirm.com/x/corners/pkg/match/stats"
)

type SeriesConfig struct {
	Game      *game.Config
	MoveLimit int

	// The two engines playing the series.
	Engines [2]EngineConfig

	// Number of game pairs to play. In every pair each engine plays
	// both teams from the same opening.
	GamePairs int

	// Number of games played concurrently.
	Concurrency int
}

// NewSeries creates a series which takes its openings from the book.
func NewSeries(config SeriesConfig, openings *OpeningBook) *Series {
	if config.Concurrency < 1 {
		config.Concurrency = 1
	}

	return &Series{
		Config:   config,
		Output:   os.Stdout,
		openings: openings,
	}
}

// Series is a set of game pairs between two engines.
type Series struct {
	Config SeriesConfig

	// Output is where the score table is reported.
	Output io.Writer

	openings *OpeningBook

	// Results of the games from the first engine's point of view.
	Wins, Draws, Losses int

	// Number of game pairs by PairResult.
	Pairs [5]int
}

// Game is a single game of a series.
type Game struct {
	Config

	Pair, Number int

	// Swapped is set when the first engine plays team B.
	Swapped bool
}

// Outcome is the result of a game from the first engine's point of view.
type Outcome struct {
	Game *Game

	Result Result
	Reason string
}

func (outcome Outcome) String() string {
	switch outcome.Result {
	case Win:
		return fmt.Sprintf("%s wins by %s", outcome.Game.Engines[0].Name, outcome.Reason)
	case Loss:
		return fmt.Sprintf("%s wins by %s", outcome.Game.Engines[1].Name, outcome.Reason)
	default:
		return fmt.Sprintf("Draw by %s", outcome.Reason)
	}
}

// Start plays all the games of the series and returns once they are over.
func (series *Series) Start() error {
	games := make(chan *Game)
	outcomes := make(chan Outcome, 2*series.Config.GamePairs)
	errs := make(chan error, series.Config.Concurrency)

	// Closing done stops the scheduler if the series ends early.
	done := make(chan struct{})
	defer close(done)

	for i := 0; i < series.Config.Concurrency; i++ {
		go series.thread(games, outcomes, errs)
	}

	go series.schedule(games, done)

	pending := map[int]Result{}
	for played := 0; played < 2*series.Config.GamePairs; played++ {
		var outcome Outcome
		select {
		case outcome = <-outcomes:
		case err := <-errs:
			return err
		}

		series.record(outcome)
		logrus.Infof(
			"\x1b[32mFinished\x1b[0m Game #%d: %s vs %s: %s",
			outcome.Game.Number,
			outcome.Game.Engines[0].Name,
			outcome.Game.Engines[1].Name,
			outcome,
		)

		if first, found := pending[outcome.Game.Pair]; found {
			series.Pairs[GetPairResult(first, outcome.Result)]++
			delete(pending, outcome.Game.Pair)
			series.Report()
		} else {
			pending[outcome.Game.Pair] = outcome.Result
		}
	}

	return nil
}

func (series *Series) schedule(games chan<- *Game, done <-chan struct{}) {
	defer close(games)

	for pair := 0; pair < series.Config.GamePairs; pair++ {
		if pair > 0 {
			series.openings.Next()
		}

		start := series.openings.Current()
		for i := 0; i < 2; i++ {
			engines := series.Config.Engines
			if i == 1 {
				engines[0], engines[1] = engines[1], engines[0]
			}

			g := &Game{
				Config: Config{
					Game:      series.Config.Game,
					Start:     start,
					MoveLimit: series.Config.MoveLimit,
					Engines:   engines,
				},

				Pair:    pair,
				Number:  2*pair + i + 1,
				Swapped: i == 1,
			}

			select {
			case games <- g:
			case <-done:
				return
			}
		}
	}
}

func (series *Series) thread(games <-chan *Game, outcomes chan<- Outcome, errs chan<- error) {
	for g := range games {
		logrus.Infof(
			"\x1b[33mStarting\x1b[0m Game #%d: %s vs %s (\x1b[33m%s\x1b[0m)",
			g.Number,
			g.Engines[0].Name,
			g.Engines[1].Name,
			g.Start,
		)

		result, reason, err := Run(&g.Config)
		if err != nil {
			errs <- fmt.Errorf("game #%d: %w", g.Number, err)
			return
		}

		// Restore the original engine order so that the outcome is seen
		// from the first engine's point of view.
		if g.Swapped {
			result = -result
			g.Engines[0], g.Engines[1] = g.Engines[1], g.Engines[0]
		}

		outcomes <- Outcome{Game: g, Result: result, Reason: reason}
	}
}

func (series *Series) record(outcome Outcome) {
	switch outcome.Result {
	case Win:
		series.Wins++
	case Loss:
		series.Losses++
	default:
		series.Draws++
	}
}

// Report prints the score of the series with its elo estimates.
func (series *Series) Report() {
	lower, elo, upper := stats.Elo(series.Wins, series.Draws, series.Losses)
	pentaLower, pentaElo, pentaUpper := stats.PentaElo(series.Pairs)

	out := series.Output
	fmt.Fprintln(out, "╔══════════════════════════════════════════════════════════╗")
	fmt.Fprintf(out, "║ %-24s vs %-24s    ║\n", series.Config.Engines[0].Name, series.Config.Engines[1].Name)
	fmt.Fprintln(out, "╠══════════════════════════════════════════════════════════╣")
	fmt.Fprintf(out, "║ Games   W: %-5d D: %-5d L: %-5d                       ║\n", series.Wins, series.Draws, series.Losses)
	fmt.Fprintf(out, "║ Pairs   %5d %5d %5d %5d %5d                      ║\n", series.Pairs[0], series.Pairs[1], series.Pairs[2], series.Pairs[3], series.Pairs[4])
	fmt.Fprintf(out, "║ Elo     %+7.1f [%+7.1f, %+7.1f]                      ║\n", elo, lower, upper)
	fmt.Fprintf(out, "║ Pair Elo%+7.1f [%+7.1f, %+7.1f]                      ║\n", pentaElo, pentaLower, pentaUpper)
	fmt.Fprintln(out, "╚══════════════════════════════════════════════════════════╝")
}
