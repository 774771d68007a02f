package search

import (
	"hash/fnv"
	"math"
	"math/rand"
	"testing"

	"laptudirm.com/x/corners/pkg/game"
	"laptudirm.com/x/corners/pkg/tree"
)

func mustParse(t *testing.T, str string) game.Board {
	t.Helper()
	board, err := game.ParseBoard(str)
	if err != nil {
		t.Fatalf("parse board %q: %v", str, err)
	}
	return board
}

func configWithDepth(depth int) *game.Config {
	config := game.DefaultConfig()
	config.MaxDepth = depth
	return config
}

// hashEvaluator gives every position a pseudo-random but reproducible
// rating, which makes for trees with lots of distinct values.
func hashEvaluator(node *tree.Node) float64 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(node.Board.String()))
	return float64(h.Sum32()%101) - 50
}

func randomBoard(r *rand.Rand, size, pieces int) game.Board {
	board := game.NewBoard(size)
	for _, team := range []game.Team{game.TeamA, game.TeamB} {
		for placed := 0; placed < pieces; {
			row, col := r.Intn(size), r.Intn(size)
			if board[row][col] == game.Empty {
				board[row][col] = team
				placed++
			}
		}
	}
	return board
}

func TestAlphaBetaMatchesMinimax(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for i := 0; i < 25; i++ {
		board := randomBoard(r, 5, 3)
		for depth := 1; depth <= 3; depth++ {
			for _, team := range []game.Team{game.TeamA, game.TeamB} {
				config := configWithDepth(depth)

				minimax := New(config, MinimaxAlgorithm)
				minimax.Evaluate = hashEvaluator
				alphaBeta := New(config, AlphaBetaAlgorithm)
				alphaBeta.Evaluate = hashEvaluator

				want := minimax.Minimax(tree.NewRoot(config, board.Clone(), team), team)
				got := alphaBeta.AlphaBeta(tree.NewRoot(config, board.Clone(), team), team)

				if got != want {
					t.Fatalf("%s depth %d team %s: alpha-beta %v != minimax %v", board, depth, team, got, want)
				}
				if alphaBeta.Nodes > minimax.Nodes {
					t.Fatalf("%s depth %d: alpha-beta visited %d nodes, minimax %d", board, depth, alphaBeta.Nodes, minimax.Nodes)
				}
			}
		}
	}
}

func wonBoard() game.Board {
	board := game.NewBoard(5)
	for row := range board {
		for col := range board[row] {
			if row+col <= 5 {
				board[row][col] = game.TeamA
			}
		}
	}
	return board
}

func TestTerminalShortCircuit(t *testing.T) {
	config := configWithDepth(3)

	searches := map[string]func(*game.Config, *tree.Node, game.Team) float64{
		"minimax":    Minimax,
		"alpha-beta": AlphaBeta,
	}

	for name, search := range searches {
		root := tree.NewRoot(config, wonBoard(), game.TeamB)
		root.Rating = 42

		if got := search(config, root, game.TeamB); got != 42 {
			t.Errorf("%s: expected stored rating 42, got %v", name, got)
		}
		if root.Generated() {
			t.Errorf("%s: children generated for a decided position", name)
		}
	}
}

func TestDepthZero(t *testing.T) {
	config := configWithDepth(0)
	root := tree.NewRoot(config, config.StartBoard(), game.TeamA)
	root.Rating = -3

	if got := Minimax(config, root, game.TeamA); got != -3 {
		t.Fatalf("minimax: expected -3, got %v", got)
	}
	if got := AlphaBeta(config, root, game.TeamA); got != -3 {
		t.Fatalf("alpha-beta: expected -3, got %v", got)
	}
	if root.Generated() {
		t.Fatal("children generated with a depth limit of zero")
	}
}

func TestNeutralDefault(t *testing.T) {
	config := configWithDepth(2)
	root := tree.NewRoot(config, config.StartBoard(), game.TeamA)

	if got := Minimax(config, root, game.TeamA); got != 0 {
		t.Fatalf("expected 0 without an evaluator, got %v", got)
	}
	for _, child := range root.Children() {
		if child.Rating != 0 {
			t.Fatalf("expected every child rated 0, got %v", child.Rating)
		}
	}
}

func TestNoMovesRating(t *testing.T) {
	config := configWithDepth(2)
	root := tree.NewRoot(config, mustParse(t, "12000/22000/00000/00000/00000"), game.TeamA)

	value := Minimax(config, root, game.TeamA)
	if !math.IsInf(value, -1) {
		t.Fatalf("expected -Inf for a maximizer without moves, got %v", value)
	}
	if root.Rating != value {
		t.Fatal("rating not written back")
	}
}

func ratings(node *tree.Node, out []float64) []float64 {
	out = append(out, node.Rating)
	if node.Generated() {
		for _, child := range node.Children() {
			out = ratings(child, out)
		}
	}
	return out
}

func TestDeterminism(t *testing.T) {
	config := configWithDepth(3)
	board := mustParse(t, "21000/00200/00000/01000/00001")

	first := New(config, MinimaxAlgorithm)
	first.Evaluate = hashEvaluator
	second := New(config, MinimaxAlgorithm)
	second.Evaluate = hashEvaluator

	a := tree.NewRoot(config, board.Clone(), game.TeamB)
	b := tree.NewRoot(config, board.Clone(), game.TeamB)
	first.Minimax(a, game.TeamB)
	second.Minimax(b, game.TeamB)

	ra, rb := ratings(a, nil), ratings(b, nil)
	if len(ra) != len(rb) {
		t.Fatalf("trees differ in size: %d != %d", len(ra), len(rb))
	}
	for i := range ra {
		if ra[i] != rb[i] {
			t.Fatalf("node %d: rating %v != %v", i, ra[i], rb[i])
		}
	}
}

func TestTwoPieceScenario(t *testing.T) {
	// Team A's piece on c2 keeps team B's b1 piece from stepping into
	// its corner, so A's best is to move the other piece and keep the
	// block: one A piece in A's corner against none of B's.
	config := configWithDepth(2)
	board := mustParse(t, "22000/00100/00000/00000/00001")

	for _, algorithm := range []Algorithm{MinimaxAlgorithm, AlphaBetaAlgorithm} {
		searcher := New(config, algorithm)
		searcher.Evaluate = Occupancy

		root := tree.NewRoot(config, board.Clone(), game.TeamA)
		best, value := searcher.BestMove(root)

		if value != 1 {
			t.Errorf("%s: expected value 1, got %v", algorithm, value)
		}
		if root.Rating != value {
			t.Errorf("%s: root rating %v not updated to %v", algorithm, root.Rating, value)
		}
		if best == nil || best.LastMove.String() != "e5d4" {
			t.Errorf("%s: expected best move e5d4, got %v", algorithm, best)
		}
	}
}

func TestTrace(t *testing.T) {
	config := configWithDepth(2)
	searcher := New(config, AlphaBetaAlgorithm)

	visits, deepest := 0, 0
	searcher.Trace = func(node *tree.Node, depth int) {
		visits++
		if depth > deepest {
			deepest = depth
		}
	}

	searcher.Search(tree.NewRoot(config, config.StartBoard(), game.TeamA), game.TeamA)

	if visits != searcher.Nodes {
		t.Fatalf("trace saw %d nodes, searcher counted %d", visits, searcher.Nodes)
	}
	if deepest != 2 {
		t.Fatalf("expected the search to reach depth 2, got %d", deepest)
	}
}

func TestBestMoveWithoutMoves(t *testing.T) {
	config := configWithDepth(2)
	root := tree.NewRoot(config, mustParse(t, "12000/22000/00000/00000/00000"), game.TeamA)

	best, _ := New(config, AlphaBetaAlgorithm).BestMove(root)
	if best != nil {
		t.Fatalf("expected no move, got %v", best.LastMove)
	}
}

func TestBestMoveWithoutSearchedChildren(t *testing.T) {
	won := game.NewBoard(5)
	for row := range won {
		for col := range won[row] {
			if row+col <= 5 {
				won[row][col] = game.TeamA
			}
		}
	}

	tests := []struct {
		name  string
		depth int
		board game.Board
	}{
		{"zero depth", 0, game.DefaultConfig().StartBoard()},
		{"decided", 2, won},
	}

	for _, test := range tests {
		config := configWithDepth(test.depth)
		for _, algorithm := range []Algorithm{MinimaxAlgorithm, AlphaBetaAlgorithm} {
			root := tree.NewRoot(config, test.board.Clone(), game.TeamA)
			best, _ := New(config, algorithm).BestMove(root)

			if best == nil {
				t.Fatalf("%s/%s: expected a move, got none", test.name, algorithm)
			}
			if first := root.Children()[0]; best != first {
				t.Errorf("%s/%s: expected the first move %s, got %s", test.name, algorithm, first.LastMove, best.LastMove)
			}
		}
	}
}
