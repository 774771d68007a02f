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
	"fmt"
	"strconv"
)

// Square is a (row, col) coordinate on the board.
type Square struct {
	Row, Col int
}

// Add returns the square offset by the given delta.
func (square Square) Add(delta Delta) Square {
	return Square{Row: square.Row + delta.Row, Col: square.Col + delta.Col}
}

// String returns the name of the square: the column as a letter followed
// by the 1-based row, so that (0, 0) is a1 and (2, 1) is b3.
func (square Square) String() string {
	if square.Col < 0 || square.Col >= 26 || square.Row < 0 {
		return fmt.Sprintf("(%d,%d)", square.Row, square.Col)
	}

	return string(rune('a'+square.Col)) + strconv.Itoa(square.Row+1)
}

// ParseSquare parses a square name like "c4".
func ParseSquare(name string) (Square, error) {
	if len(name) < 2 || name[0] < 'a' || name[0] > 'z' {
		return Square{}, fmt.Errorf("parse square: invalid square %q", name)
	}

	row, err := strconv.Atoi(name[1:])
	if err != nil || row < 1 {
		return Square{}, fmt.Errorf("parse square: invalid row in %q", name)
	}

	return Square{Row: row - 1, Col: int(name[0] - 'a')}, nil
}

// Delta is a movement offset applied to a square.
type Delta struct {
	Row, Col int
}

// Move is a single step of a piece from one square to another.
type Move struct {
	From, To Square
}

// String returns the move as the concatenation of its square names.
func (move Move) String() string {
	return move.From.String() + move.To.String()
}

// ParseMove parses a move like "a1b2". Square names are split where the
// second column letter starts.
func ParseMove(str string) (Move, error) {
	split := -1
	for i := 1; i < len(str); i++ {
		if str[i] >= 'a' && str[i] <= 'z' {
			split = i
			break
		}
	}

	if split == -1 {
		return Move{}, fmt.Errorf("parse move: invalid move %q", str)
	}

	from, err := ParseSquare(str[:split])
	if err != nil {
		return Move{}, fmt.Errorf("parse move: %w", err)
	}

	to, err := ParseSquare(str[split:])
	if err != nil {
		return Move{}, fmt.Errorf("parse move: %w", err)
	}

	return Move{From: from, To: to}, nil
}
