package render

import (
	"strings"
	"testing"

	"github.com/fatih/color"

	"laptudirm.com/x/corners/pkg/game"
	"laptudirm.com/x/corners/pkg/tree"
)

func TestBoardPlain(t *testing.T) {
	color.NoColor = true

	config := game.DefaultConfig()
	root := tree.NewRoot(config, config.StartBoard(), game.TeamA)

	expected := strings.Join([]string{
		"    a   b   c   d   e ",
		"  ┌───┬───┬───┬───┬───┐",
		"1 │ 2 │ 2 │   │   │   │",
		"  ├───┼───┼───┼───┼───┤",
		"2 │ 2 │   │   │   │   │",
		"  ├───┼───┼───┼───┼───┤",
		"3 │   │   │   │   │   │",
		"  ├───┼───┼───┼───┼───┤",
		"4 │   │   │   │   │ 1 │",
		"  ├───┼───┼───┼───┼───┤",
		"5 │   │   │   │ 1 │ 1 │",
		"  └───┴───┴───┴───┴───┘",
		"",
	}, "\n")

	if got := Board(root); got != expected {
		t.Fatalf("unexpected rendering:\n%s\nexpected:\n%s", got, expected)
	}
}

func TestBoardLastMove(t *testing.T) {
	color.NoColor = true

	config := game.DefaultConfig()
	root := tree.NewRoot(config, config.StartBoard(), game.TeamA)

	move, _ := game.ParseMove("e5d4")
	child := root.Child(move)
	if child == nil {
		t.Fatal("expected e5d4 to be legal")
	}

	rendered := Board(child)
	if !strings.Contains(rendered, "5 │   │   │   │ 1 │ X │") {
		t.Fatalf("source square not marked:\n%s", rendered)
	}
}

func TestValidColor(t *testing.T) {
	if !ValidColor("blue") || ValidColor("chartreuse") {
		t.Fatal("unexpected color validation")
	}
}
