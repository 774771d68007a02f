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

// Package tree implements the tree of positions explored by a search.
//
// A Node owns its board and its children: children are generated lazily,
// at most once, and every child holds an independent copy of the board.
// Nodes are not safe for concurrent use.
package tree

import (
	"fmt"

	"laptudirm.com/x/corners/pkg/game"
)

// Node is a single position in the game tree along with the team to move
// from it.
type Node struct {
	config *game.Config

	Board  game.Board
	ToMove game.Team

	// LastMove is the move which produced this node from its parent. It
	// is nil for the root of a tree.
	LastMove *game.Move

	// Rating is the value assigned to the node by the last search which
	// visited it, from the maximizing team's point of view.
	Rating float64

	children  []*Node
	generated bool

	// positions records the board of every generated child, so that
	// multi-step moves can skip positions which were already reached.
	positions []game.Board
}

// NewRoot creates the root node of a new tree. It panics if the board's
// size does not match the configuration or the team to move is invalid.
func NewRoot(config *game.Config, board game.Board, toMove game.Team) *Node {
	if board.Size() != config.Size {
		panic(fmt.Sprintf("tree: %dx%d board does not match configured size %d", board.Size(), board.Size(), config.Size))
	}

	return newNode(config, board, toMove, nil)
}

func newNode(config *game.Config, board game.Board, toMove game.Team, lastMove *game.Move) *Node {
	if !toMove.IsPlayer() {
		panic(fmt.Sprintf("tree: invalid team to move %q", toMove.String()))
	}

	return &Node{
		config:   config,
		Board:    board,
		ToMove:   toMove,
		LastMove: lastMove,
	}
}

// Config returns the configuration the tree was created with.
func (node *Node) Config() *game.Config {
	return node.config
}

// Winner returns the team which has won in this position, or game.Empty
// if the game is still going on.
func (node *Node) Winner() game.Team {
	return node.config.Winner(node.Board)
}

// Generated reports whether the children of the node have been generated.
func (node *Node) Generated() bool {
	return node.generated
}

// Children returns the children of the node, generating them on the first
// call. Later calls return the same cached slice. The children are ordered
// by source square in row-major order, then by the configured deltas.
func (node *Node) Children() []*Node {
	if !node.generated {
		node.generate()
	}

	return node.children
}

func (node *Node) generate() {
	node.generated = true

	for row := range node.Board {
		for col := range node.Board[row] {
			if node.Board[row][col] != node.ToMove {
				continue
			}

			from := game.Square{Row: row, Col: col}
			for _, delta := range node.config.Deltas {
				to := from.Add(delta)
				if !node.Board.Contains(to) || node.Board.At(to) != game.Empty {
					continue
				}

				node.addChild(game.Move{From: from, To: to})
			}
		}
	}
}

// TODO: add multi-step jump moves over adjacent pieces once their rules
// are settled; HasPosition is meant to prune repeated jump chains.

func (node *Node) addChild(move game.Move) *Node {
	board := node.Board.Apply(move, node.ToMove)
	child := newNode(node.config, board, node.ToMove.Other(), &move)

	node.children = append(node.children, child)
	node.positions = append(node.positions, board)
	return child
}

// Positions returns the boards of all the generated children.
func (node *Node) Positions() []game.Board {
	return node.positions
}

// HasPosition reports whether a child with the given board has already
// been generated.
func (node *Node) HasPosition(board game.Board) bool {
	for _, position := range node.positions {
		if position.Equal(board) {
			return true
		}
	}

	return false
}

// ChildWithRating returns the first child, in generation order, whose
// rating is equal to the given one. It returns nil if there is none. Only
// already generated children are considered.
func (node *Node) ChildWithRating(rating float64) *Node {
	for _, child := range node.children {
		if child.Rating == rating {
			return child
		}
	}

	return nil
}

// Child returns the child produced by the given move, or nil if the move
// is not legal in this position.
func (node *Node) Child(move game.Move) *Node {
	for _, child := range node.Children() {
		if *child.LastMove == move {
			return child
		}
	}

	return nil
}
