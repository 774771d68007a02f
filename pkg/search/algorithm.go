package search

import "fmt"

// Algorithm names one of the search algorithms.
type Algorithm string

const (
	MinimaxAlgorithm   Algorithm = "minimax"
	AlphaBetaAlgorithm Algorithm = "alpha-beta"
)

// ParseAlgorithm returns the algorithm with the given name. An empty name
// selects alpha-beta.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "alpha-beta", "alphabeta", "":
		return AlphaBetaAlgorithm, nil
	case "minimax":
		return MinimaxAlgorithm, nil
	default:
		return "", fmt.Errorf("parse algorithm: invalid algorithm %s", name)
	}
}
