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

// Package search implements adversarial searches over a tree of positions.
//
// Both searches write the value they compute for a node into its Rating,
// so after a search the root's children can be queried for the move which
// achieves the root's value. A tree must not be searched concurrently.
package search

import (
	"math"

	"laptudirm.com/x/corners/pkg/game"
	"laptudirm.com/x/corners/pkg/tree"
)

// Searcher runs searches with a fixed configuration.
type Searcher struct {
	Config *game.Config

	Algorithm Algorithm

	// Evaluate rates the nodes where the search stops. See Evaluator.
	Evaluate Evaluator

	// Trace, if set, is called with every node the search visits along
	// with its depth. It is meant for debugging output.
	Trace func(node *tree.Node, depth int)

	// Nodes is the number of nodes visited by the searches so far.
	Nodes int
}

// New creates a Searcher with the given configuration and algorithm
// which leaves stopped nodes unevaluated.
func New(config *game.Config, algorithm Algorithm) *Searcher {
	return &Searcher{
		Config:    config,
		Algorithm: algorithm,
	}
}

// Minimax returns the minimax value of the node with the given team to
// move, searching to the configured depth.
func Minimax(config *game.Config, node *tree.Node, toMove game.Team) float64 {
	return New(config, MinimaxAlgorithm).Minimax(node, toMove)
}

// AlphaBeta returns the same value as Minimax but skips the branches which
// can not change it.
func AlphaBeta(config *game.Config, node *tree.Node, toMove game.Team) float64 {
	return New(config, AlphaBetaAlgorithm).AlphaBeta(node, toMove)
}

// Search runs the searcher's algorithm on the node.
func (searcher *Searcher) Search(node *tree.Node, toMove game.Team) float64 {
	if searcher.Algorithm == MinimaxAlgorithm {
		return searcher.Minimax(node, toMove)
	}

	return searcher.AlphaBeta(node, toMove)
}

// BestMove searches the node from the point of view of its team to move
// and returns the first child which achieves the searched value. The child
// is nil only if the node has no legal moves. When the search stops at the
// node itself, as with a zero depth or a decided position, no child is
// rated and the first legal move is returned.
func (searcher *Searcher) BestMove(node *tree.Node) (*tree.Node, float64) {
	value := searcher.Search(node, node.ToMove)

	children := node.Children()
	if len(children) == 0 {
		return nil, value
	}

	if best := node.ChildWithRating(value); best != nil {
		return best, value
	}

	return children[0], value
}

func (searcher *Searcher) Minimax(node *tree.Node, toMove game.Team) float64 {
	return searcher.minimax(node, toMove, 0)
}

func (searcher *Searcher) minimax(node *tree.Node, toMove game.Team, depth int) float64 {
	if searcher.visit(node, depth) {
		return node.Rating
	}

	side := SideOf(toMove)
	value := side.Initial()

	for _, child := range node.Children() {
		value = side.Better(value, searcher.minimax(child, toMove.Other(), depth+1))
	}

	node.Rating = value
	return value
}

func (searcher *Searcher) AlphaBeta(node *tree.Node, toMove game.Team) float64 {
	return searcher.alphaBeta(node, toMove, 0, math.Inf(-1), math.Inf(+1))
}

func (searcher *Searcher) alphaBeta(node *tree.Node, toMove game.Team, depth int, alpha, beta float64) float64 {
	if searcher.visit(node, depth) {
		return node.Rating
	}

	side := SideOf(toMove)
	value := side.Initial()

	for _, child := range node.Children() {
		value = side.Better(value, searcher.alphaBeta(child, toMove.Other(), depth+1, alpha, beta))

		if side == Maximizer {
			alpha = math.Max(alpha, value)
		} else {
			beta = math.Min(beta, value)
		}

		if beta <= alpha {
			break
		}
	}

	node.Rating = value
	return value
}

// visit records a visit to the node and reports whether the search stops
// there, in which case the node's rating is final.
func (searcher *Searcher) visit(node *tree.Node, depth int) bool {
	searcher.Nodes++
	if searcher.Trace != nil {
		searcher.Trace(node, depth)
	}

	if depth >= searcher.Config.MaxDepth || node.Winner() != game.Empty {
		if searcher.Evaluate != nil {
			node.Rating = searcher.Evaluate(node)
		}

		return true
	}

	return false
}
