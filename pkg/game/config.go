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

package game

// Style holds the display attributes of a marker. The game itself does
// not care about them; they are only read by renderers.
type Style struct {
	Color string
}

// Config describes the game being searched. A Config is created once at
// the program boundary and passed by pointer to everything that needs it;
// it must not be modified after a search has started.
type Config struct {
	// Size is the side length of the square board.
	Size int

	// Deltas are the single step offsets a piece may move along.
	Deltas []Delta

	// MaxDepth is the depth at which a search stops expanding nodes.
	MaxDepth int

	// Teams maps every marker to its display attributes.
	Teams [TeamN]Style
}

// KingDeltas are the eight orthogonal and diagonal single step offsets.
var KingDeltas = []Delta{
	{-1, -1}, {-1, 0}, {-1, +1},
	{0, -1}, {0, +1},
	{+1, -1}, {+1, 0}, {+1, +1},
}

// DefaultConfig returns the reference configuration: a 5x5 board, king
// steps, and a search depth of 2.
func DefaultConfig() *Config {
	return &Config{
		Size:     5,
		Deltas:   append([]Delta(nil), KingDeltas...),
		MaxDepth: 2,
		Teams: [TeamN]Style{
			Empty: {Color: "white"},
			TeamA: {Color: "blue"},
			TeamB: {Color: "red"},
		},
	}
}

// InCorner reports whether the square belongs to the corner the given
// team has to fill. Team A's target is the triangle of cells with
// row+col <= Size at the top-left, which is Team B's home, and Team B's
// target is the same triangle mirrored through the centre.
func (config *Config) InCorner(team Team, square Square) bool {
	switch team {
	case TeamA:
		return square.Row+square.Col <= config.Size
	case TeamB:
		return (config.Size-1-square.Row)+(config.Size-1-square.Col) <= config.Size
	default:
		return false
	}
}

// CornerSize returns the number of cells in a target corner, which is
// the number of pieces a team needs to win (19 on a 5x5 board).
func (config *Config) CornerSize() int {
	n := 0
	for row := 0; row < config.Size; row++ {
		for col := 0; col < config.Size; col++ {
			if config.InCorner(TeamA, Square{row, col}) {
				n++
			}
		}
	}
	return n
}

// CornerCount returns how many of the team's target corner cells are
// occupied by the team's own pieces.
func (config *Config) CornerCount(board Board, team Team) int {
	n := 0
	for row := range board {
		for col, cell := range board[row] {
			if cell == team && config.InCorner(team, Square{row, col}) {
				n++
			}
		}
	}
	return n
}

// Winner returns the team which has filled its target corner, or Empty if
// neither has. Team A is checked first.
func (config *Config) Winner(board Board) Team {
	required := config.CornerSize()
	switch {
	case config.CornerCount(board, TeamA) == required:
		return TeamA
	case config.CornerCount(board, TeamB) == required:
		return TeamB
	default:
		return Empty
	}
}

// StartBoard returns the default starting position: each team occupies
// the cells with row+col <= 1 of its own home corner, Team B at the
// top-left and Team A mirrored at the bottom-right.
func (config *Config) StartBoard() Board {
	board := NewBoard(config.Size)
	last := config.Size - 1
	for row := 0; row < config.Size; row++ {
		for col := 0; col < config.Size; col++ {
			if row+col <= 1 {
				board[row][col] = TeamB
				board[last-row][last-col] = TeamA
			}
		}
	}
	return board
}
