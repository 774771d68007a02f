package game

import "testing"

func TestCornerSize(t *testing.T) {
	config := DefaultConfig()
	if n := config.CornerSize(); n != 19 {
		t.Fatalf("expected 19 corner cells on 5x5, got %d", n)
	}
}

func fillCorner(config *Config, board Board, team Team, skip int) {
	for row := range board {
		for col := range board[row] {
			if config.InCorner(team, Square{row, col}) {
				if skip > 0 {
					skip--
					continue
				}
				board[row][col] = team
			}
		}
	}
}

func TestWinner(t *testing.T) {
	config := DefaultConfig()

	if w := config.Winner(NewBoard(5)); w != Empty {
		t.Fatalf("empty board should have no winner, got %s", w)
	}

	board := NewBoard(5)
	fillCorner(config, board, TeamA, 0)
	if w := config.Winner(board); w != TeamA {
		t.Fatalf("expected team A to win, got %s", w)
	}

	board = NewBoard(5)
	fillCorner(config, board, TeamA, 1)
	if n := config.CornerCount(board, TeamA); n != 18 {
		t.Fatalf("expected 18 filled cells, got %d", n)
	}
	if w := config.Winner(board); w != Empty {
		t.Fatalf("18 of 19 cells should not win, got %s", w)
	}

	board = NewBoard(5)
	fillCorner(config, board, TeamB, 0)
	if w := config.Winner(board); w != TeamB {
		t.Fatalf("expected team B to win, got %s", w)
	}
}

func TestStartBoard(t *testing.T) {
	config := DefaultConfig()
	board := config.StartBoard()

	if board.String() != "22000/20000/00000/00001/00011" {
		t.Fatalf("unexpected start board %q", board.String())
	}
	if config.CornerCount(board, TeamA) != 0 || config.CornerCount(board, TeamB) != 0 {
		t.Fatal("no team should start inside its target corner")
	}
}
