package search

import (
	"testing"

	"laptudirm.com/x/corners/pkg/game"
	"laptudirm.com/x/corners/pkg/tree"
)

func TestOccupancy(t *testing.T) {
	config := game.DefaultConfig()

	tests := []struct {
		board string
		want  float64
	}{
		{"22000/20000/00000/00001/00011", 0},
		{"22000/00100/00000/00000/00001", 1},
		{"00000/00000/00200/00000/10000", 0},
		{"10000/01000/00000/00002/00000", 1},
	}

	for _, test := range tests {
		root := tree.NewRoot(config, mustParse(t, test.board), game.TeamA)
		if got := Occupancy(root); got != test.want {
			t.Errorf("%s: expected %v, got %v", test.board, test.want, got)
		}
	}

	if got := Occupancy(tree.NewRoot(config, wonBoard(), game.TeamB)); got != WinScore {
		t.Errorf("expected %v for a won position, got %v", float64(WinScore), got)
	}
}
