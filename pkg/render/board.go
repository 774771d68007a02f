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

package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"laptudirm.com/x/corners/pkg/game"
	"laptudirm.com/x/corners/pkg/tree"
)

var colors = map[string]color.Attribute{
	"black":   color.FgBlack,
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,
}

// ValidColor reports whether the renderer knows the named color.
func ValidColor(name string) bool {
	_, found := colors[name]
	return found
}

func paint(name string) *color.Color {
	attr, found := colors[name]
	if !found {
		attr = color.FgWhite
	}

	return color.New(attr, color.Bold)
}

// Board draws the node's board as a grid. Markers are colored with the
// styles from the node's configuration. If the node was reached by a move,
// its source square is drawn as a red X and its destination in green.
func Board(node *tree.Node) string {
	config := node.Config()
	size := node.Board.Size()

	var str strings.Builder
	line := func(left, middle, right string) {
		str.WriteString("  " + left)
		for col := 0; col < size; col++ {
			if col > 0 {
				str.WriteString(middle)
			}
			str.WriteString("───")
		}
		str.WriteString(right + "\n")
	}

	str.WriteString("  ")
	for col := 0; col < size; col++ {
		fmt.Fprintf(&str, "  %c ", 'a'+col)
	}
	str.WriteString("\n")

	line("┌", "┬", "┐")
	for row := 0; row < size; row++ {
		if row > 0 {
			line("├", "┼", "┤")
		}

		fmt.Fprintf(&str, "%-2d│", row+1)
		for col := 0; col < size; col++ {
			str.WriteString(" " + cell(config, node, game.Square{Row: row, Col: col}) + " │")
		}
		str.WriteString("\n")
	}
	line("└", "┴", "┘")

	return str.String()
}

func cell(config *game.Config, node *tree.Node, square game.Square) string {
	team := node.Board.At(square)

	marker := team.String()
	if team == game.Empty {
		marker = " "
	}

	style := config.Teams[team].Color
	if node.LastMove != nil {
		switch square {
		case node.LastMove.To:
			style = "green"
		case node.LastMove.From:
			style, marker = "red", "X"
		}
	}

	return paint(style).Sprint(marker)
}
