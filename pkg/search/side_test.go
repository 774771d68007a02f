package search

import (
	"math"
	"testing"

	"laptudirm.com/x/corners/pkg/game"
)

func TestSides(t *testing.T) {
	if SideOf(game.TeamA) != Maximizer || SideOf(game.TeamB) != Minimizer {
		t.Fatal("team A should maximize and team B minimize")
	}
	if !math.IsInf(Maximizer.Initial(), -1) || !math.IsInf(Minimizer.Initial(), +1) {
		t.Fatal("unexpected initial values")
	}
}

func TestBetter(t *testing.T) {
	tests := []struct {
		side Side
		a, b float64
		want float64
	}{
		{Maximizer, 1, 2, 2},
		{Maximizer, 3, 2, 3},
		{Minimizer, 1, 2, 1},
		{Minimizer, 3, 2, 2},
		{Maximizer, math.Inf(-1), -7, -7},
		{Minimizer, math.Inf(+1), 7, 7},
	}

	for _, test := range tests {
		if got := test.side.Better(test.a, test.b); got != test.want {
			t.Errorf("%s.Better(%v, %v) = %v, want %v", test.side, test.a, test.b, got, test.want)
		}
	}
}

func TestSideOfEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()

	SideOf(game.Empty)
}

func TestParseAlgorithm(t *testing.T) {
	for name, want := range map[string]Algorithm{
		"":           AlphaBetaAlgorithm,
		"alpha-beta": AlphaBetaAlgorithm,
		"minimax":    MinimaxAlgorithm,
	} {
		got, err := ParseAlgorithm(name)
		if err != nil || got != want {
			t.Errorf("ParseAlgorithm(%q) = %v, %v", name, got, err)
		}
	}

	if _, err := ParseAlgorithm("mcts"); err == nil {
		t.Error("expected error for an unknown algorithm")
	}
}

func TestNewEvaluator(t *testing.T) {
	if eval, err := NewEvaluator("none"); err != nil || eval != nil {
		t.Fatalf("expected nil evaluator, got error %v", err)
	}
	if eval, err := NewEvaluator("occupancy"); err != nil || eval == nil {
		t.Fatalf("expected occupancy evaluator, got error %v", err)
	}
	if _, err := NewEvaluator("neural"); err == nil {
		t.Fatal("expected error for an unknown heuristic")
	}
}
