package game

import "testing"

func TestParseBoard(t *testing.T) {
	board, err := ParseBoard("00000/01000/00000/00020/00000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if board.Size() != 5 {
		t.Fatalf("expected size 5, got %d", board.Size())
	}
	if board[1][1] != TeamA || board[3][3] != TeamB {
		t.Fatalf("pieces parsed at wrong squares: %s", board)
	}
	if board.String() != "00000/01000/00000/00020/00000" {
		t.Fatalf("unexpected string form %q", board.String())
	}
}

func TestParseBoardNewlines(t *testing.T) {
	board, err := ParseBoard("120\n000\r\n002\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if board.String() != "120/000/002" {
		t.Fatalf("unexpected board %q", board.String())
	}
}

func TestParseBoardErrors(t *testing.T) {
	tests := []string{
		"",
		"000/00/000",
		"000/030/000",
		"0000/0000",
	}

	for _, test := range tests {
		if _, err := ParseBoard(test); err == nil {
			t.Errorf("expected error parsing %q", test)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	board := NewBoard(3)
	board[0][0] = TeamA

	clone := board.Clone()
	clone[0][0] = TeamB
	clone[2][2] = TeamA

	if board[0][0] != TeamA || board[2][2] != Empty {
		t.Fatal("modifying a clone changed the original board")
	}
	if !board.Equal(board.Clone()) {
		t.Fatal("clone should equal the original")
	}
}

func TestApply(t *testing.T) {
	board := NewBoard(3)
	board[1][1] = TeamA

	move := Move{From: Square{1, 1}, To: Square{0, 2}}
	next := board.Apply(move, TeamA)

	if next[1][1] != Empty || next[0][2] != TeamA {
		t.Fatalf("move not applied: %s", next)
	}
	if board[1][1] != TeamA || board[0][2] != Empty {
		t.Fatal("apply modified the receiver")
	}
}

func TestOutOfBoundsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on out of bounds square")
		}
	}()

	NewBoard(5).At(Square{5, 0})
}

func TestOtherPanicsOnEmpty(t *testing.T) {
	if TeamA.Other() != TeamB || TeamB.Other() != TeamA {
		t.Fatal("teams should be each other's opponents")
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for the opponent of an empty cell")
		}
	}()

	Empty.Other()
}
