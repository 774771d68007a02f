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

import (
	"errors"
	"fmt"
	"strings"
)

// Board is a square grid of occupancy markers indexed as [row][col].
type Board [][]Team

// NewBoard returns an empty board of the given size.
func NewBoard(size int) Board {
	board := make(Board, size)
	for row := range board {
		board[row] = make([]Team, size)
	}
	return board
}

// ParseBoard parses a board from its rows of 0/1/2 markers. Rows may be
// separated by '/' or by newlines, and the board has to be square.
func ParseBoard(str string) (Board, error) {
	str = strings.ReplaceAll(strings.TrimSpace(str), "\r", "")
	rows := strings.FieldsFunc(str, func(r rune) bool {
		return r == '/' || r == '\n'
	})

	if len(rows) == 0 {
		return nil, errors.New("parse board: empty board")
	}

	board := NewBoard(len(rows))
	for row, line := range rows {
		line = strings.TrimSpace(line)
		if len(line) != len(rows) {
			return nil, fmt.Errorf("parse board: row %d has %d cells, expected %d", row+1, len(line), len(rows))
		}

		for col := range line {
			team, err := NewTeam(line[col : col+1])
			if err != nil {
				return nil, fmt.Errorf("parse board: row %d: %w", row+1, err)
			}

			board[row][col] = team
		}
	}

	return board, nil
}

// Size returns the side length of the board.
func (board Board) Size() int {
	return len(board)
}

// Clone returns a deep copy of the board which shares no memory with it.
func (board Board) Clone() Board {
	clone := make(Board, len(board))
	for row := range board {
		clone[row] = append([]Team(nil), board[row]...)
	}
	return clone
}

// Contains reports whether the square lies on the board.
func (board Board) Contains(square Square) bool {
	return square.Row >= 0 && square.Row < len(board) &&
		square.Col >= 0 && square.Col < len(board)
}

// At returns the marker at the given square. Out of bounds access panics.
func (board Board) At(square Square) Team {
	board.mustContain(square)
	return board[square.Row][square.Col]
}

// Set places a marker at the given square. Out of bounds access panics.
func (board Board) Set(square Square, team Team) {
	board.mustContain(square)
	board[square.Row][square.Col] = team
}

// Apply returns a new board with the move played by the given team. The
// receiver is left untouched.
func (board Board) Apply(move Move, team Team) Board {
	next := board.Clone()
	next.Set(move.To, team)
	next.Set(move.From, Empty)
	return next
}

// Count returns the number of cells holding the given marker.
func (board Board) Count(team Team) int {
	n := 0
	for _, row := range board {
		for _, cell := range row {
			if cell == team {
				n++
			}
		}
	}
	return n
}

// Equal reports whether both boards hold the same markers.
func (board Board) Equal(other Board) bool {
	if len(board) != len(other) {
		return false
	}

	for row := range board {
		if len(board[row]) != len(other[row]) {
			return false
		}

		for col := range board[row] {
			if board[row][col] != other[row][col] {
				return false
			}
		}
	}

	return true
}

// String returns the '/' separated textual form of the board, which can
// be parsed back with ParseBoard.
func (board Board) String() string {
	var str strings.Builder
	for row := range board {
		if row > 0 {
			str.WriteByte('/')
		}

		for _, cell := range board[row] {
			str.WriteString(cell.String())
		}
	}

	return str.String()
}

func (board Board) mustContain(square Square) {
	if !board.Contains(square) {
		panic(fmt.Sprintf("game: square %v out of bounds on %dx%d board", square, len(board), len(board)))
	}
}
